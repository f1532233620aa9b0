package sim

import (
	"math"

	"github.com/vovakirdan/nightwalk/internal/core"
)

// Meter is a scalar bounded to [0, max].
type Meter struct {
	value float64
	max   float64
}

// NewMeter creates an empty meter.
func NewMeter(max float64) Meter {
	return Meter{max: math.Max(max, 0)}
}

// Add adds d and clamps. NaN deltas are dropped.
func (m *Meter) Add(d float64) {
	if math.IsNaN(d) {
		return
	}
	m.value = core.ClampF(m.value+d, 0, m.max)
}

// Reset empties the meter.
func (m *Meter) Reset() {
	m.value = 0
}

// Full reports whether the meter is at max.
func (m Meter) Full() bool {
	return m.value >= m.max
}

// Value returns the current level.
func (m Meter) Value() float64 {
	return m.value
}

// Max returns the upper bound.
func (m Meter) Max() float64 {
	return m.max
}

// Meters is the avatar's resource meter set.
type Meters struct {
	Hazard   Meter // Exposure to hazards; full means transformation
	Benefit  Meter // Collectibles while Normal; full means Empowered
	Recovery Meter // Collectibles while Transformed; full means recovered
}

func newMeters(max float64) Meters {
	return Meters{Hazard: NewMeter(max), Benefit: NewMeter(max), Recovery: NewMeter(max)}
}

func (m *Meters) resetAll() {
	m.Hazard.Reset()
	m.Benefit.Reset()
	m.Recovery.Reset()
}

// MeterValues is a plain copy of the meter levels.
type MeterValues struct {
	Hazard   float64
	Benefit  float64
	Recovery float64
	Max      float64
}

func (m Meters) values() MeterValues {
	return MeterValues{
		Hazard:   m.Hazard.Value(),
		Benefit:  m.Benefit.Value(),
		Recovery: m.Recovery.Value(),
		Max:      m.Hazard.Max(),
	}
}
