package sim

import (
	"math/rand"

	"github.com/vovakirdan/nightwalk/internal/config"
)

// GeneratorState is the continuation state carried between rows so that
// multi-row features continue across calls.
type GeneratorState struct {
	LeftCounter  int
	RightCounter int
	LeftSpacing  int
	RightSpacing int
	Benches      []BenchState // One per configured bench column, in check order
}

// BenchState tracks one median column.
type BenchState struct {
	Counter   int
	Spacing   int
	Remaining int // Rows still to draw for the bench in progress
}

// Generator fills rows from its continuation state and a seeded source.
type Generator struct {
	cfg   config.TerrainConfig
	rng   *rand.Rand
	state GeneratorState
}

// NewGenerator creates a generator. The rng is shared with the kernel so a
// single seed reproduces a whole session.
func NewGenerator(cfg config.TerrainConfig, rng *rand.Rand) *Generator {
	g := &Generator{cfg: cfg, rng: rng}
	g.state = GeneratorState{
		LeftSpacing:  g.spacing(cfg.Lights.MinSpacing, cfg.Lights.InitialSpan),
		RightSpacing: g.spacing(cfg.Lights.MinSpacing, cfg.Lights.InitialSpan),
		Benches:      make([]BenchState, len(cfg.Benches.Columns)),
	}
	for i := range g.state.Benches {
		g.state.Benches[i].Spacing = g.spacing(cfg.Benches.MinSpacing, cfg.Benches.Span)
	}
	return g
}

// State returns a copy of the continuation state.
func (g *Generator) State() GeneratorState {
	s := g.state
	s.Benches = append([]BenchState(nil), g.state.Benches...)
	return s
}

// SetState replaces the continuation state. Values are clamped on the next Fill.
func (g *Generator) SetState(s GeneratorState) {
	s.Benches = append([]BenchState(nil), s.Benches...)
	g.state = s
}

func (g *Generator) spacing(min, span int) int {
	if span <= 0 {
		return min
	}
	return min + g.rng.Intn(span)
}

// clamp pulls corrupted counters back to zero.
func (g *Generator) clamp() {
	s := &g.state
	s.LeftCounter = max(s.LeftCounter, 0)
	s.RightCounter = max(s.RightCounter, 0)
	s.LeftSpacing = max(s.LeftSpacing, 0)
	s.RightSpacing = max(s.RightSpacing, 0)
	if len(s.Benches) != len(g.cfg.Benches.Columns) {
		benches := make([]BenchState, len(g.cfg.Benches.Columns))
		copy(benches, s.Benches)
		s.Benches = benches
	}
	for i := range s.Benches {
		b := &s.Benches[i]
		b.Counter = max(b.Counter, 0)
		b.Spacing = max(b.Spacing, 0)
		b.Remaining = max(b.Remaining, 0)
	}
}

// Fill regenerates the tiles of r in place.
func (g *Generator) Fill(r *Row) {
	g.clamp()
	w := g.cfg.Width
	if len(r.Tiles) != w {
		r.Tiles = make([]Tile, w)
	}

	for c := range r.Tiles {
		r.Tiles[c] = TilePath
	}
	for _, gc := range g.cfg.GrassColumns {
		if gc > 0 && gc < w-1 {
			r.Tiles[gc] = TileGrass
		}
	}
	for _, bc := range g.cfg.Benches.Columns {
		if bc.Column > 0 && bc.Column < w-1 {
			r.Tiles[bc.Column] = TileGrass
		}
	}

	r.Tiles[0] = g.border(&g.state.LeftCounter, &g.state.LeftSpacing)
	r.Tiles[w-1] = g.border(&g.state.RightCounter, &g.state.RightSpacing)

	if g.cfg.Benches.Enabled && len(g.cfg.Benches.Columns) > 0 {
		g.bench(r)
	}
}

// border advances one side's light counter and returns the border tile.
func (g *Generator) border(counter, spacing *int) Tile {
	*counter++
	if *counter >= *spacing {
		*counter = 0
		*spacing = g.spacing(g.cfg.Lights.MinSpacing, g.cfg.Lights.Span)
		return TileLight
	}
	return TileHedge
}

// bench places at most one bench in the row. A bench in progress always
// continues; otherwise the first column in check order whose counter is due
// starts a new bench and later due columns wait for the next free row.
func (g *Generator) bench(r *Row) {
	benches := g.state.Benches
	for i := range benches {
		if benches[i].Remaining > 0 {
			g.place(r, i)
			benches[i].Remaining--
			g.tickIdle(i)
			return
		}
	}

	started := -1
	for i := range benches {
		b := &benches[i]
		if b.Counter+1 < b.Spacing {
			continue
		}
		g.place(r, i)
		b.Counter = 0
		b.Spacing = g.spacing(g.cfg.Benches.MinSpacing, g.cfg.Benches.Span)
		b.Remaining = g.cfg.Benches.Height - 1
		started = i
		break
	}
	g.tickIdle(started)
}

// tickIdle advances the counters of every column except skip.
// Counters of due columns saturate at their spacing while they wait.
func (g *Generator) tickIdle(skip int) {
	for i := range g.state.Benches {
		if i == skip {
			continue
		}
		b := &g.state.Benches[i]
		if b.Counter+1 < b.Spacing {
			b.Counter++
		} else {
			b.Counter = max(b.Spacing-1, 0)
		}
	}
}

func (g *Generator) place(r *Row, i int) {
	if c := g.cfg.Benches.Columns[i].Column; c > 0 && c < len(r.Tiles)-1 {
		r.Tiles[c] = TileBench
	}
}
