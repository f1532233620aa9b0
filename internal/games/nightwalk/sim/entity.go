package sim

import "github.com/vovakirdan/nightwalk/internal/core"

// Class is an entity class.
type Class uint8

const (
	ClassHazardStructure Class = iota
	ClassHazardAgent
	ClassBenefitStructure
	ClassCollectible
)

// String returns the class name used in events and logs.
func (c Class) String() string {
	switch c {
	case ClassHazardStructure:
		return "hazard_structure"
	case ClassHazardAgent:
		return "hazard_agent"
	case ClassBenefitStructure:
		return "benefit_structure"
	case ClassCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Side is the lane edge a structure is anchored to.
type Side int8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Opposite returns the other side. SideNone has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Entity is anything that scrolls with the terrain. X and Y are the top-left
// corner in view space; W and H are world units.
type Entity struct {
	ID       int
	Class    Class
	Kind     string // House name, shop kind or collectible kind
	Identity string // Stable identity; hazard structures only
	Side     Side
	Col      int
	X, Y     float64
	W, H     float64
	Radius   float64 // Radius of effect in world units; 0 means none
	Active   bool

	Dir       int     // Agents: -1 or +1
	moveAcc   float64 // Agents: ms since the last step
	Dispensed bool    // Shops: already handed out a collectible
}

// Center returns the center point.
func (e Entity) Center() core.Vec {
	return core.Vec{X: e.X + e.W/2, Y: e.Y + e.H/2}
}

// Door returns the attraction point of a structure: the tile facing the
// lane, seven tenths of the way down.
func (e Entity) Door(tile float64) core.Vec {
	y := e.Y + 0.7*e.H
	if e.Side == SideRight {
		return core.Vec{X: e.X + 0.5*tile, Y: y}
	}
	return core.Vec{X: e.X + e.W - 0.5*tile, Y: y}
}

// overlapsY reports whether two vertical spans intersect.
func overlapsY(aY, aH, bY, bH float64) bool {
	return aY < bY+bH && bY < aY+aH
}
