package sim

import (
	"math"
	"sort"

	"github.com/vovakirdan/nightwalk/internal/config"
)

// Recycled reports a ring slot that moved from the trailing edge to the top.
type Recycled struct {
	Slot int
	OldY float64
}

// Terrain is a fixed ring of rows. Rows are allocated once and refilled in
// place when they scroll past the trailing edge.
type Terrain struct {
	rows     []Row
	gen      *Generator
	tile     float64
	trailing float64 // Y at or beyond which a row is recycled
}

// NewTerrain builds the ring and fills it bottom-up, so the generator
// sees rows in the order they will later scroll into view.
func NewTerrain(cfg config.TerrainConfig, gen *Generator) *Terrain {
	n := cfg.ViewRows + cfg.ExtraRows
	t := &Terrain{
		rows:     make([]Row, n),
		gen:      gen,
		tile:     cfg.TileSize,
		trailing: float64(cfg.ViewRows)*cfg.TileSize + cfg.TrailingRows*cfg.TileSize,
	}

	bottom := t.trailing - t.tile
	for i := n - 1; i >= 0; i-- {
		r := &t.rows[i]
		r.Tiles = make([]Tile, cfg.Width)
		r.Y = bottom - float64(n-1-i)*t.tile
		gen.Fill(r)
	}
	return t
}

// Len returns the ring size.
func (t *Terrain) Len() int {
	return len(t.rows)
}

// Rows returns the ring in slot order. Callers must not modify it.
func (t *Terrain) Rows() []Row {
	return t.rows
}

// Row returns the row in a slot.
func (t *Terrain) Row(slot int) Row {
	return t.rows[slot]
}

// TrailingEdge returns the recycle threshold in view space.
func (t *Terrain) TrailingEdge() float64 {
	return t.trailing
}

// MinY returns the topmost row position.
func (t *Terrain) MinY() float64 {
	min := t.rows[0].Y
	for _, r := range t.rows[1:] {
		if r.Y < min {
			min = r.Y
		}
	}
	return min
}

// SortedSlots returns slot indices ordered top to bottom.
func (t *Terrain) SortedSlots() []int {
	slots := make([]int, len(t.rows))
	for i := range slots {
		slots[i] = i
	}
	sort.Slice(slots, func(a, b int) bool {
		return t.rows[slots[a]].Y < t.rows[slots[b]].Y
	})
	return slots
}

// Scroll moves every row down by delta and recycles rows that reached the
// trailing edge. Non-positive deltas are ignored and a single call never
// moves the ring more than its own height.
func (t *Terrain) Scroll(delta float64) []Recycled {
	if !(delta > 0) {
		return nil
	}
	delta = math.Min(delta, float64(len(t.rows))*t.tile)
	for i := range t.rows {
		t.rows[i].Y += delta
	}

	var out []Recycled
	for {
		slot := t.lowest()
		r := &t.rows[slot]
		if r.Y < t.trailing {
			break
		}
		out = append(out, Recycled{Slot: slot, OldY: r.Y})
		r.Y = t.MinY() - t.tile
		t.gen.Fill(r)
	}
	return out
}

// lowest returns the slot with the largest Y.
func (t *Terrain) lowest() int {
	best := 0
	for i := range t.rows {
		if t.rows[i].Y > t.rows[best].Y {
			best = i
		}
	}
	return best
}
