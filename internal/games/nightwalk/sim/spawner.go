package sim

import (
	"math/rand"

	"github.com/vovakirdan/nightwalk/internal/config"
)

// SpawnTarget names what a countdown creates.
type SpawnTarget struct {
	Class Class
	Kind  string // Shop kind or collectible kind
	Shop  int    // Index into the shop config for benefit structures
}

// world is the part of the kernel the spawner drives.
type world interface {
	// trySpawn creates the target and reports whether it succeeded. A false
	// return means a constraint blocked the spawn and it should be retried.
	trySpawn(t SpawnTarget) bool
}

// Countdown is one class's spawn timer in ms.
type Countdown struct {
	Target    SpawnTarget
	Remaining float64
	window    config.SpawnWindow
	scaled    bool // Shortened by difficulty
}

// Spawner owns an independent countdown per entity class.
type Spawner struct {
	rng        *rand.Rand
	scale      func(ms float64) float64
	countdowns []*Countdown
}

// NewSpawner builds the countdowns for every enabled spawn window. scale
// shortens hazard intervals as difficulty rises; nil means unscaled.
func NewSpawner(cfg config.NightwalkConfig, rng *rand.Rand, scale func(ms float64) float64) *Spawner {
	if scale == nil {
		scale = func(ms float64) float64 { return ms }
	}
	s := &Spawner{rng: rng, scale: scale}

	s.add(SpawnTarget{Class: ClassHazardStructure}, cfg.Hazards.Structure.Spawn, true)
	s.add(SpawnTarget{Class: ClassHazardAgent}, cfg.Hazards.Agent.Spawn, true)
	for i, shop := range cfg.Benefits.Shops {
		s.add(SpawnTarget{Class: ClassBenefitStructure, Kind: shop.Kind, Shop: i}, shop.Spawn, false)
	}
	s.add(SpawnTarget{Class: ClassCollectible, Kind: "zine"}, cfg.Collectibles.Zine, false)
	return s
}

func (s *Spawner) add(t SpawnTarget, w config.SpawnWindow, scaled bool) {
	if !w.Enabled {
		return
	}
	c := &Countdown{Target: t, window: w, scaled: scaled}
	c.Remaining = s.draw(c)
	s.countdowns = append(s.countdowns, c)
}

// draw returns a fresh uniform countdown in [min, min+span).
func (s *Spawner) draw(c *Countdown) float64 {
	ms := c.window.MinMs + s.rng.Float64()*c.window.SpanMs
	if c.scaled {
		ms = s.scale(ms)
	}
	return ms
}

// Countdowns returns the timers in creation order.
func (s *Spawner) Countdowns() []Countdown {
	out := make([]Countdown, len(s.countdowns))
	for i, c := range s.countdowns {
		out[i] = *c
	}
	return out
}

// Update decrements every countdown. An expired countdown spawns and
// redraws; if the spawn is rejected it stays expired and retries next tick.
func (s *Spawner) Update(dtMs float64, w world) {
	for _, c := range s.countdowns {
		c.Remaining -= dtMs
		if c.Remaining > 0 {
			continue
		}
		if w.trySpawn(c.Target) {
			c.Remaining = s.draw(c)
		}
	}
}
