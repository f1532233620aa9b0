// Package sim is the Night Walk simulation kernel: a ring of procedurally
// generated rows scrolling toward the viewer, a lighting field over them,
// and the entities, meters and state machine that make up a session.
//
// The kernel is single-threaded. One driver calls Tick once per frame and
// reads the accessors afterwards; nothing here blocks or performs I/O.
package sim

// Tile is a terrain code.
type Tile uint8

const (
	TilePath Tile = iota
	TileHedge
	TileLight
	TileGrass
	TileBench
)

// String returns a short name for the tile.
func (t Tile) String() string {
	switch t {
	case TilePath:
		return "path"
	case TileHedge:
		return "hedge"
	case TileLight:
		return "light"
	case TileGrass:
		return "grass"
	case TileBench:
		return "bench"
	default:
		return "unknown"
	}
}

// EmitsLight reports whether the tile is a light source.
func (t Tile) EmitsLight() bool {
	return t == TileLight
}

// Row is one lane-width slice of terrain. Y is the top edge in view space.
// Rows are identified by their ring slot, never by content.
type Row struct {
	Tiles []Tile
	Y     float64
}

// Has reports whether any column of the row holds tile t.
func (r Row) Has(t Tile) bool {
	for _, v := range r.Tiles {
		if v == t {
			return true
		}
	}
	return false
}

// At returns the tile at col, or TileHedge outside the lane.
func (r Row) At(col int) Tile {
	if col < 0 || col >= len(r.Tiles) {
		return TileHedge
	}
	return r.Tiles[col]
}
