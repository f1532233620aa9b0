package sim

import "github.com/vovakirdan/nightwalk/internal/config"

// Rows returns the ring in slot order. Callers must not modify it.
func (k *Kernel) Rows() []Row {
	return k.terrain.Rows()
}

// SortedSlots returns slot indices ordered top to bottom.
func (k *Kernel) SortedSlots() []int {
	return k.terrain.SortedSlots()
}

// Brightness returns the lighting of a tile.
func (k *Kernel) Brightness(slot, col int) float64 {
	return k.light.At(slot, col)
}

// Entities returns copies of the live entities.
func (k *Kernel) Entities() []Entity {
	out := make([]Entity, len(k.entities))
	for i, e := range k.entities {
		out[i] = *e
	}
	return out
}

// Avatar returns the avatar position.
func (k *Kernel) Avatar() Avatar {
	return k.avatar
}

// Phase returns the state machine phase.
func (k *Kernel) Phase() Phase {
	return k.machine.Phase()
}

// Outcome returns how the session ended, if it has.
func (k *Kernel) Outcome() Outcome {
	return k.machine.Outcome()
}

// Meters returns the current meter levels.
func (k *Kernel) Meters() MeterValues {
	return k.meters.values()
}

// Score returns the cumulative score.
func (k *Kernel) Score() int {
	return int(k.score)
}

// Disabled returns the disabled identities, sorted.
func (k *Kernel) Disabled() []string {
	return k.mutations.Sorted()
}

// Blocked reports whether scrolling is halted by a bench.
func (k *Kernel) Blocked() bool {
	return k.blocker.blocked
}

// Catalog returns the session's structure catalog.
func (k *Kernel) Catalog() Catalog {
	return k.catalog
}

// Config returns the normalized configuration in use.
func (k *Kernel) Config() config.NightwalkConfig {
	return k.cfg
}

// Transformations returns the transformation count.
func (k *Kernel) Transformations() int {
	return k.machine.Transformations()
}

// ElapsedMs returns the simulated time played.
func (k *Kernel) ElapsedMs() float64 {
	return k.elapsed
}

// Snapshot is a deep copy of everything a renderer needs for one frame.
type Snapshot struct {
	Rows            []Row
	Slots           []int // Top to bottom
	Brightness      [][]float64
	Entities        []Entity
	Avatar          Avatar
	Phase           Phase
	Outcome         Outcome
	Meters          MeterValues
	Score           int
	Disabled        []string
	Blocked         bool
	Transformations int
	EmpowerLeftMs   float64
	HazardNear      float64
	ElapsedMs       float64
	Catalog         string
}

// Snapshot copies the session state. The result shares nothing with the kernel.
func (k *Kernel) Snapshot() Snapshot {
	rows := k.terrain.Rows()
	s := Snapshot{
		Rows:            make([]Row, len(rows)),
		Slots:           k.terrain.SortedSlots(),
		Brightness:      make([][]float64, len(rows)),
		Entities:        k.Entities(),
		Avatar:          k.avatar,
		Phase:           k.machine.Phase(),
		Outcome:         k.machine.Outcome(),
		Meters:          k.meters.values(),
		Score:           k.Score(),
		Disabled:        k.mutations.Sorted(),
		Blocked:         k.blocker.blocked,
		Transformations: k.machine.Transformations(),
		EmpowerLeftMs:   k.machine.EmpowerLeft(),
		HazardNear:      k.hazardNear(),
		ElapsedMs:       k.elapsed,
		Catalog:         k.catalog.Name,
	}
	for i, r := range rows {
		s.Rows[i] = Row{Tiles: append([]Tile(nil), r.Tiles...), Y: r.Y}
		b := make([]float64, len(r.Tiles))
		for c := range b {
			b[c] = k.light.At(i, c)
		}
		s.Brightness[i] = b
	}
	return s
}
