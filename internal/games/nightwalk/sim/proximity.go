package sim

import (
	"math"

	"github.com/vovakirdan/nightwalk/internal/core"
)

// intensity maps a distance to (0, 1] inside radius and 0 outside.
func intensity(d, radius float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	return 1 - d/radius
}

// proximity applies continuous hazard accumulation, the structure pull,
// disable contact and one-shot pickups for one tick.
func (k *Kernel) proximity(dtMs float64) {
	t := k.tile
	immune := k.machine.Immune()
	sec := dtMs / 1000

	kept := k.entities[:0]
	for _, e := range k.entities {
		switch e.Class {
		case ClassHazardStructure:
			if !e.Active {
				break
			}
			if immune {
				if core.Dist(k.avatar.center(), e.Center()) < k.cfg.Hazards.Structure.DisableRadius*t {
					k.disable(e)
				}
				break
			}
			door := e.Door(t)
			in := intensity(core.Dist(k.avatar.center(), door), e.Radius)
			if in == 0 {
				break
			}
			k.meters.Hazard.Add(in * k.cfg.Hazards.Structure.Rate * sec)
			k.pull(door, in, dtMs)

		case ClassHazardAgent:
			if immune || !e.Active {
				break
			}
			in := intensity(core.Dist(k.avatar.center(), e.Center()), e.Radius)
			k.meters.Hazard.Add(in * k.cfg.Hazards.Agent.Rate * sec)

		case ClassCollectible:
			if core.Dist(k.avatar.center(), e.Center()) < k.cfg.Collectibles.PickupRadius*t {
				k.pickup(e)
				continue
			}
		}
		kept = append(kept, e)
	}
	clear(k.entities[len(kept):])
	k.entities = kept
}

// pull nudges the avatar toward a door. One tick never moves it more than
// a tile and never carries it past the door.
func (k *Kernel) pull(door core.Vec, in, dtMs float64) {
	c := k.avatar.center()
	step := door.Sub(c)
	f := math.Min(in*k.cfg.Hazards.Structure.PullFactor*(dtMs/16), 1)
	step = core.Vec{X: step.X * f, Y: step.Y * f}
	if l := step.Len(); l > k.tile {
		step = core.Vec{X: step.X / l * k.tile, Y: step.Y / l * k.tile}
	}
	k.avatar.X += step.X
	k.avatar.Y += step.Y
	k.clampAvatar()
}

// disable adds a structure's identity to the mutation set.
func (k *Kernel) disable(e *Entity) {
	e.Active = false
	if !k.mutations.Disable(e.Identity) {
		return
	}
	k.score += float64(k.cfg.States.DisableBonus)
	k.emit(Event{Kind: EventStructureDisabled, Identity: e.Identity, Value: k.cfg.States.DisableBonus})
}

// pickup consumes a collectible. Its gain goes to the benefit meter while
// Normal and to the recovery meter while Transformed; points always count.
func (k *Kernel) pickup(e *Entity) {
	value := k.cfg.Collectibles.Values[e.Kind]
	switch k.machine.Phase() {
	case PhaseNormal:
		k.meters.Benefit.Add(k.cfg.Collectibles.Gain)
	case PhaseTransformed:
		k.meters.Recovery.Add(k.cfg.Collectibles.Gain)
	}
	k.score += float64(value)
	k.emit(Event{Kind: EventPickup, Identity: e.Kind, Value: value})
}

// dispense hands out one collectible from every shop the avatar is near.
func (k *Kernel) dispense() {
	r := k.cfg.Benefits.DispenseRadius * k.tile
	n := len(k.entities)
	for i := 0; i < n; i++ {
		e := k.entities[i]
		if e.Class != ClassBenefitStructure || e.Dispensed {
			continue
		}
		if core.Dist(k.avatar.center(), e.Center()) >= r {
			continue
		}
		e.Dispensed = true
		kind := k.cfg.Benefits.Shops[k.shopIndex(e.Kind)].Dispenses

		// Drop it on the lane tile next to the shop front
		col := e.Col + int(e.W/k.tile)
		if e.Side == SideRight {
			col = e.Col - 1
		}
		col = core.Clamp(col, 1, k.cfg.Terrain.Width-2)
		c := k.newEntity(ClassCollectible, kind)
		c.Col = col
		c.X = float64(col) * k.tile
		c.Y = e.Y + e.H/2 - k.tile/2
		c.W, c.H = k.tile, k.tile
		c.Active = true
		k.emit(Event{Kind: EventDispensed, Identity: kind})
	}
}

// roam steps hazard agents sideways inside the interior columns.
func (k *Kernel) roam(dtMs float64) {
	cfg := k.cfg.Hazards.Agent
	lo, hi := 2, k.cfg.Terrain.Width-3
	for _, e := range k.entities {
		if e.Class != ClassHazardAgent {
			continue
		}
		e.moveAcc += dtMs
		for e.moveAcc >= cfg.MoveMs {
			e.moveAcc -= cfg.MoveMs
			if k.rng.Float64() < cfg.FlipChance {
				e.Dir = -e.Dir
			}
			next := e.Col + e.Dir
			if next < lo || next > hi {
				e.Dir = -e.Dir
				next = e.Col + e.Dir
			}
			e.Col = core.Clamp(next, lo, max(lo, hi))
			e.X = float64(e.Col) * k.tile
		}
	}
}

// hazardNear reports the strongest hazard intensity at the avatar, for the HUD.
func (k *Kernel) hazardNear() float64 {
	best := 0.0
	for _, e := range k.entities {
		if !e.Active {
			continue
		}
		var p core.Vec
		switch e.Class {
		case ClassHazardStructure:
			p = e.Door(k.tile)
		case ClassHazardAgent:
			p = e.Center()
		default:
			continue
		}
		best = math.Max(best, intensity(core.Dist(k.avatar.center(), p), e.Radius))
	}
	return best
}
