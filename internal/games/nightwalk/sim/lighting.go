package sim

import (
	"math"

	"github.com/vovakirdan/nightwalk/internal/config"
)

// Falloff returns the brightness contributed by a light d tiles away.
// Distance is quantized to cfg.Step, so the curve is a non-increasing step
// function from Peak at the source down to Floor at Range.
func Falloff(cfg config.LightingConfig, d float64) float64 {
	if d < 0 || math.IsNaN(d) {
		d = 0
	}
	q := math.Floor(d/cfg.Step) * cfg.Step
	if q >= cfg.Range {
		return cfg.Floor
	}
	f := 1 - q/cfg.Range
	return cfg.Floor + (cfg.Peak-cfg.Floor)*f*f
}

// Field caches one brightness per ring slot and column.
type Field struct {
	cfg     config.LightingConfig
	terrain *Terrain
	tile    float64
	window  float64 // Rows beyond which a light cannot lift the floor
	cells   [][]float64
}

// NewField creates a field over the terrain and computes it fully.
func NewField(cfg config.LightingConfig, terrain *Terrain) *Field {
	f := &Field{
		cfg:     cfg,
		terrain: terrain,
		tile:    terrain.tile,
		window:  math.Ceil(cfg.Range),
		cells:   make([][]float64, terrain.Len()),
	}
	for i, r := range terrain.Rows() {
		f.cells[i] = make([]float64, len(r.Tiles))
	}
	f.Recompute()
	return f
}

// At returns the cached brightness of a tile. Out-of-range lookups get the floor.
func (f *Field) At(slot, col int) float64 {
	if slot < 0 || slot >= len(f.cells) || col < 0 || col >= len(f.cells[slot]) {
		return f.cfg.Floor
	}
	return f.cells[slot][col]
}

// Recompute relights every slot.
func (f *Field) Recompute() {
	for slot := range f.cells {
		f.relightSlot(slot)
	}
}

// Relight recomputes only slots within the light window of a recycled row,
// at either its old or its new position.
func (f *Field) Relight(changed []Recycled) {
	if len(changed) == 0 {
		return
	}
	rows := f.terrain.Rows()
	reach := f.window * f.tile
	for slot, r := range rows {
		for _, c := range changed {
			newY := rows[c.Slot].Y
			if math.Abs(r.Y-newY) <= reach || math.Abs(r.Y-c.OldY) <= reach {
				f.relightSlot(slot)
				break
			}
		}
	}
}

// relightSlot takes the max contribution of every light in the window.
func (f *Field) relightSlot(slot int) {
	rows := f.terrain.Rows()
	target := rows[slot]
	cells := f.cells[slot]
	for c := range cells {
		cells[c] = f.cfg.Floor
	}

	for _, src := range rows {
		// Rows sit a whole tile apart; rounding keeps scroll drift out of the distance
		dy := math.Round((src.Y - target.Y) / f.tile)
		if math.Abs(dy) > f.window {
			continue
		}
		for lc, t := range src.Tiles {
			if !t.EmitsLight() {
				continue
			}
			for c := range cells {
				d := math.Hypot(float64(c-lc), dy)
				if b := Falloff(f.cfg, d); b > cells[c] {
					cells[c] = b
				}
			}
		}
	}
}
