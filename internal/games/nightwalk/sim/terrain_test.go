package sim

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/vovakirdan/nightwalk/internal/config"
)

func testTerrainConfig() config.TerrainConfig {
	cfg := config.DefaultNightwalkConfig()
	cfg.Normalize()
	return cfg.Terrain
}

func TestGeneratorClampsCorruptState(t *testing.T) {
	cfg := testTerrainConfig()
	g := NewGenerator(cfg, rand.New(rand.NewSource(1)))
	g.SetState(GeneratorState{
		LeftCounter:  -4,
		RightCounter: -1,
		LeftSpacing:  -9,
		RightSpacing: -2,
		Benches:      []BenchState{{Counter: -3, Spacing: -1, Remaining: -7}},
	})

	r := Row{Tiles: make([]Tile, cfg.Width)}
	g.Fill(&r)

	s := g.State()
	if s.LeftCounter < 0 || s.RightCounter < 0 || s.LeftSpacing < 0 || s.RightSpacing < 0 {
		t.Errorf("light state left negative: %+v", s)
	}
	if len(s.Benches) != len(cfg.Benches.Columns) {
		t.Fatalf("bench state len = %d, want %d", len(s.Benches), len(cfg.Benches.Columns))
	}
	for i, b := range s.Benches {
		if b.Counter < 0 || b.Spacing < 0 || b.Remaining < 0 {
			t.Errorf("bench %d state left negative: %+v", i, b)
		}
	}
}

func TestGeneratorOneMedianFeaturePerRow(t *testing.T) {
	cfg := testTerrainConfig()
	g := NewGenerator(cfg, rand.New(rand.NewSource(42)))

	const n = 3000
	rows := make([]Row, n)
	for i := range rows {
		rows[i].Tiles = make([]Tile, cfg.Width)
		g.Fill(&rows[i])
	}

	perColumn := map[int]int{}
	for i, r := range rows {
		count := 0
		for c, tile := range r.Tiles {
			if tile == TileBench {
				count++
				perColumn[c]++
			}
		}
		if count > 1 {
			t.Fatalf("row %d holds %d benches: %v", i, count, r.Tiles)
		}
		if r.Tiles[0] != TileHedge && r.Tiles[0] != TileLight {
			t.Fatalf("row %d left border = %v", i, r.Tiles[0])
		}
		if r.Tiles[cfg.Width-1] != TileHedge && r.Tiles[cfg.Width-1] != TileLight {
			t.Fatalf("row %d right border = %v", i, r.Tiles[cfg.Width-1])
		}
	}

	for _, bc := range cfg.Benches.Columns {
		if perColumn[bc.Column] == 0 {
			t.Errorf("column %d never got a bench", bc.Column)
		}
		// Every run spans exactly the configured height
		run := 0
		for i, r := range rows {
			if r.Tiles[bc.Column] == TileBench {
				run++
				continue
			}
			if run != 0 && run != cfg.Benches.Height {
				t.Fatalf("column %d: bench run of %d rows ending at %d, want %d", bc.Column, run, i, cfg.Benches.Height)
			}
			run = 0
		}
	}
}

func TestGeneratorBenchSpacingStartsAfterRun(t *testing.T) {
	cfg := testTerrainConfig()
	cfg.Benches.Columns = cfg.Benches.Columns[:1]
	cfg.Benches.Height = 3
	cfg.Benches.MinSpacing = 6
	cfg.Benches.Span = 0
	col := cfg.Benches.Columns[0].Column
	g := NewGenerator(cfg, rand.New(rand.NewSource(3)))

	var runs, gaps []int
	run, gap := 0, 0
	for i := 0; i < 200; i++ {
		r := Row{Tiles: make([]Tile, cfg.Width)}
		g.Fill(&r)
		if r.Tiles[col] == TileBench {
			if run == 0 && len(runs) > 0 {
				gaps = append(gaps, gap)
			}
			run++
			gap = 0
			continue
		}
		if run > 0 {
			runs = append(runs, run)
		}
		run = 0
		gap++
	}

	if len(gaps) < 3 {
		t.Fatalf("only %d gaps between benches in 200 rows", len(gaps))
	}
	for i, n := range gaps {
		// Idle rows are counted from the row after a bench ends
		if n != cfg.Benches.MinSpacing-1 {
			t.Errorf("gap %d = %d rows, want %d", i, n, cfg.Benches.MinSpacing-1)
		}
	}
	for i, n := range runs {
		if n != cfg.Benches.Height {
			t.Errorf("run %d = %d rows, want %d", i, n, cfg.Benches.Height)
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	cfg := testTerrainConfig()
	g1 := NewGenerator(cfg, rand.New(rand.NewSource(7)))
	g2 := NewGenerator(cfg, rand.New(rand.NewSource(7)))

	for i := 0; i < 500; i++ {
		a := Row{Tiles: make([]Tile, cfg.Width)}
		b := Row{Tiles: make([]Tile, cfg.Width)}
		g1.Fill(&a)
		g2.Fill(&b)
		for c := range a.Tiles {
			if a.Tiles[c] != b.Tiles[c] {
				t.Fatalf("row %d differs at column %d: %v vs %v", i, c, a.Tiles, b.Tiles)
			}
		}
	}
}

func checkRing(t *testing.T, tr *Terrain, size int) {
	t.Helper()
	rows := tr.Rows()
	if len(rows) != size {
		t.Fatalf("ring size = %d, want %d", len(rows), size)
	}
	ys := make([]float64, len(rows))
	for i, r := range rows {
		ys[i] = r.Y
	}
	sort.Float64s(ys)
	for i := 1; i < len(ys); i++ {
		if ys[i] == ys[i-1] {
			t.Fatalf("duplicate row y %v", ys[i])
		}
		if gap := ys[i] - ys[i-1]; math.Abs(gap-tr.tile) > 1e-6 {
			t.Fatalf("row gap = %v, want %v", gap, tr.tile)
		}
	}
	if ys[len(ys)-1] >= tr.TrailingEdge() {
		t.Fatalf("row at %v left past the trailing edge %v", ys[len(ys)-1], tr.TrailingEdge())
	}
}

func TestTerrainConservation(t *testing.T) {
	cfg := testTerrainConfig()
	rng := rand.New(rand.NewSource(3))
	tr := NewTerrain(cfg, NewGenerator(cfg, rng))
	size := cfg.ViewRows + cfg.ExtraRows
	checkRing(t, tr, size)

	deltas := rand.New(rand.NewSource(11))
	recycled := 0
	for i := 0; i < 5000; i++ {
		recycled += len(tr.Scroll(deltas.Float64() * 30))
		checkRing(t, tr, size)
	}
	if recycled == 0 {
		t.Error("no rows recycled")
	}
}

func TestTerrainScrollIgnoresNonPositive(t *testing.T) {
	cfg := testTerrainConfig()
	tr := NewTerrain(cfg, NewGenerator(cfg, rand.New(rand.NewSource(1))))
	before := make([]float64, tr.Len())
	for i, r := range tr.Rows() {
		before[i] = r.Y
	}

	for _, d := range []float64{0, -10, math.NaN()} {
		if got := tr.Scroll(d); got != nil {
			t.Errorf("Scroll(%v) recycled %v", d, got)
		}
	}
	for i, r := range tr.Rows() {
		if r.Y != before[i] {
			t.Errorf("slot %d moved from %v to %v", i, before[i], r.Y)
		}
	}
}

func TestTerrainHugeDelta(t *testing.T) {
	cfg := testTerrainConfig()
	tr := NewTerrain(cfg, NewGenerator(cfg, rand.New(rand.NewSource(1))))
	tr.Scroll(math.Inf(1))
	checkRing(t, tr, cfg.ViewRows+cfg.ExtraRows)
}

func TestFalloffShape(t *testing.T) {
	cfg := config.DefaultNightwalkConfig().Lighting

	if got := Falloff(cfg, 0); got != cfg.Peak {
		t.Errorf("Falloff(0) = %v, want peak %v", got, cfg.Peak)
	}
	if got := Falloff(cfg, cfg.Range); got != cfg.Floor {
		t.Errorf("Falloff(range) = %v, want floor %v", got, cfg.Floor)
	}
	if got := Falloff(cfg, 100); got != cfg.Floor {
		t.Errorf("Falloff(100) = %v, want floor %v", got, cfg.Floor)
	}

	prev := Falloff(cfg, 0)
	for d := 0.0; d <= 12; d += 0.05 {
		b := Falloff(cfg, d)
		if b > prev+1e-12 {
			t.Fatalf("falloff increased at %v: %v > %v", d, b, prev)
		}
		if b < cfg.Floor || b > cfg.Peak {
			t.Fatalf("falloff %v out of [%v, %v] at %v", b, cfg.Floor, cfg.Peak, d)
		}
		prev = b
	}

	// Stepped: values inside one quantization step are equal
	if Falloff(cfg, 1.0) != Falloff(cfg, 1.0+cfg.Step/2) {
		t.Error("falloff not quantized to step")
	}
}

func TestLazyRelightMatchesRecompute(t *testing.T) {
	full := config.DefaultNightwalkConfig()
	full.Normalize()
	cfg := full.Terrain
	tr := NewTerrain(cfg, NewGenerator(cfg, rand.New(rand.NewSource(5))))
	lazy := NewField(full.Lighting, tr)

	for i := 0; i < 2000; i++ {
		lazy.Relight(tr.Scroll(7.5))
		if i%50 != 0 {
			continue
		}
		fresh := NewField(full.Lighting, tr)
		for slot := 0; slot < tr.Len(); slot++ {
			for c := 0; c < cfg.Width; c++ {
				if lazy.At(slot, c) != fresh.At(slot, c) {
					t.Fatalf("tick %d slot %d col %d: lazy %v, full %v", i, slot, c, lazy.At(slot, c), fresh.At(slot, c))
				}
			}
		}
	}
}

func TestFieldBrightestAtLights(t *testing.T) {
	full := config.DefaultNightwalkConfig()
	full.Normalize()
	cfg := full.Terrain
	tr := NewTerrain(cfg, NewGenerator(cfg, rand.New(rand.NewSource(9))))
	f := NewField(full.Lighting, tr)

	for slot, r := range tr.Rows() {
		for c, tile := range r.Tiles {
			b := f.At(slot, c)
			if tile == TileLight && b != full.Lighting.Peak {
				t.Errorf("light at slot %d col %d has brightness %v", slot, c, b)
			}
			if b < full.Lighting.Floor || b > full.Lighting.Peak {
				t.Errorf("brightness %v out of range", b)
			}
		}
	}
	if got := f.At(-1, 0); got != full.Lighting.Floor {
		t.Errorf("out of range lookup = %v, want floor", got)
	}
}
