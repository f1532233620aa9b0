package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/nightwalk/internal/config"
	"github.com/vovakirdan/nightwalk/internal/core"
)

// maxTickMs caps a single step so a stalled driver cannot teleport the world.
const maxTickMs = 250

// Avatar is the player: a lane column plus a continuous center point.
type Avatar struct {
	Col  int
	X, Y float64
}

func (a Avatar) center() core.Vec {
	return core.Vec{X: a.X, Y: a.Y}
}

// Kernel is one play session.
type Kernel struct {
	cfg   config.NightwalkConfig
	tile  float64
	viewH float64
	rng   *rand.Rand

	terrain    *Terrain
	light      *Field
	spawner    *Spawner
	difficulty *config.DifficultyManager
	catalog    Catalog

	entities []*Entity
	nextID   int
	spawned  int // Hazard structures spawned so far; indexes the catalog

	avatar    Avatar
	meters    Meters
	machine   Machine
	mutations MutationSet
	blocker   blocker
	input     edgeDetector

	elapsed float64
	score   float64
	events  []Event
}

// New creates a session. cfg is normalized on a private copy; a nil audio
// collaborator is replaced by a silent one.
func New(cfg config.NightwalkConfig, seed int64, audio Audio) *Kernel {
	cfg = cfg.Clone()
	cfg.Normalize()
	if audio == nil {
		audio = nopAudio{}
	}

	rng := rand.New(rand.NewSource(seed))
	t := cfg.Terrain.TileSize
	k := &Kernel{
		cfg:        cfg,
		tile:       t,
		viewH:      float64(cfg.Terrain.ViewRows) * t,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		meters:     newMeters(cfg.Meters.Max),
		machine:    NewMachine(cfg.States),
		mutations:  NewMutationSet(),
		blocker:    blocker{audio: audio},
	}
	k.catalog = NewCatalog(cfg.Catalog, rng)
	k.terrain = NewTerrain(cfg.Terrain, NewGenerator(cfg.Terrain, rng))
	k.light = NewField(cfg.Lighting, k.terrain)
	k.spawner = NewSpawner(cfg, rng, func(ms float64) float64 {
		return k.difficulty.Interval(ms, k.Score(), k.elapsed)
	})

	row := cfg.Avatar.StartRow
	if row <= 0 {
		row = cfg.Terrain.ViewRows - 3
	}
	col := cfg.Terrain.Width / 2
	k.avatar = Avatar{Col: col, X: (float64(col) + 0.5) * t, Y: (float64(row) + 0.5) * t}
	k.clampAvatar()
	return k
}

// Tick advances the session by dtMs. Non-positive deltas and ticks after
// GameOver change nothing.
func (k *Kernel) Tick(dtMs float64, in Input) StepResult {
	if !(dtMs > 0) || k.machine.Phase() == PhaseGameOver {
		res := k.result()
		res.Events = nil
		return res
	}
	dtMs = math.Min(dtMs, maxTickMs)
	k.events = nil

	pressed := k.input.pressed(in)

	delta := 0.0
	if !k.blocker.blocked {
		delta = k.speed() * dtMs / 1000
	}
	k.light.Relight(k.terrain.Scroll(delta))
	k.scrollEntities(delta)

	k.move(pressed)
	if ev, ok := k.blocker.update(IsBlocked(k.cfg.Terrain, k.terrain.Rows(), k.avatar)); ok {
		k.emit(ev)
	}

	k.roam(dtMs)
	k.dispense()
	k.spawner.Update(dtMs, k)
	k.proximity(dtMs)

	done := k.catalog.Len() > 0 && k.mutations.Len() >= k.catalog.Len()
	events, bonus := k.machine.Evaluate(dtMs, &k.meters, done)
	k.score += float64(bonus)
	k.emit(events...)

	if k.machine.Phase() == PhaseGameOver {
		k.blocker.halt()
		return k.result()
	}
	k.elapsed += dtMs
	k.score += k.cfg.States.ScorePerMs * dtMs
	return k.result()
}

func (k *Kernel) result() StepResult {
	return StepResult{
		Phase:   k.machine.Phase(),
		Outcome: k.machine.Outcome(),
		Score:   k.Score(),
		Events:  k.events,
	}
}

func (k *Kernel) emit(ev ...Event) {
	k.events = append(k.events, ev...)
}

// speed is the scroll speed in units per second, after difficulty and slowdown.
func (k *Kernel) speed() float64 {
	s := k.difficulty.Speed(k.cfg.Scroll.BaseSpeed, k.Score(), k.elapsed)
	if k.cfg.Scroll.SlowdownThreshold > 0 && k.meters.Hazard.Value() >= k.cfg.Scroll.SlowdownThreshold {
		s *= k.cfg.Scroll.SlowdownFactor
	}
	return s
}

// scrollEntities moves entities with the terrain and drops those past the
// trailing edge.
func (k *Kernel) scrollEntities(delta float64) {
	edge := k.terrain.TrailingEdge()
	kept := k.entities[:0]
	for _, e := range k.entities {
		e.Y += delta
		if e.Y >= edge {
			k.emit(Event{Kind: EventDespawned, Identity: e.label()})
			continue
		}
		kept = append(kept, e)
	}
	clear(k.entities[len(kept):])
	k.entities = kept
}

// move applies one frame of discrete avatar moves.
func (k *Kernel) move(p Input) {
	switch {
	case p.Left && !p.Right:
		k.step(k.avatar.Col - 1)
	case p.Right && !p.Left:
		k.step(k.avatar.Col + 1)
	}

	lo, hi := k.yBounds()
	if p.Up && !p.Down && !k.blocker.blocked && k.avatar.Y-k.tile >= lo {
		k.avatar.Y -= k.tile
	}
	if p.Down && !p.Up && k.avatar.Y+k.tile <= hi {
		k.avatar.Y += k.tile
	}
}

// step moves laterally if the blocking rule allows it. Rejected moves are no-ops.
func (k *Kernel) step(to int) {
	if !CanMoveTo(k.cfg.Terrain, k.terrain.Rows(), k.avatar.Y, k.avatar.Col, to) {
		return
	}
	k.avatar.Col = to
	k.avatar.X = (float64(to) + 0.5) * k.tile
}

func (k *Kernel) yBounds() (lo, hi float64) {
	lo = float64(k.cfg.Avatar.MinRow)*k.tile + k.tile/2
	hi = k.viewH - float64(k.cfg.Avatar.BottomMargin)*k.tile + k.tile/2
	return lo, hi
}

// clampAvatar keeps the avatar inside the lane and re-derives its column.
func (k *Kernel) clampAvatar() {
	w := k.cfg.Terrain.Width
	k.avatar.X = core.ClampF(k.avatar.X, 1.5*k.tile, (float64(w)-1.5)*k.tile)
	lo, hi := k.yBounds()
	k.avatar.Y = core.ClampF(k.avatar.Y, lo, hi)
	k.avatar.Col = core.Clamp(int(k.avatar.X/k.tile), 1, w-2)
}

func (k *Kernel) newEntity(c Class, kind string) *Entity {
	k.nextID++
	e := &Entity{ID: k.nextID, Class: c, Kind: kind}
	k.entities = append(k.entities, e)
	return e
}

// trySpawn places a new entity just above the viewport.
func (k *Kernel) trySpawn(t SpawnTarget) bool {
	switch t.Class {
	case ClassHazardStructure:
		return k.spawnStructure()
	case ClassHazardAgent:
		k.spawnAgent()
		return true
	case ClassBenefitStructure:
		return k.spawnShop(t)
	case ClassCollectible:
		k.spawnCollectible(t.Kind)
		return true
	}
	return false
}

// spawnStructure enforces the singleton rule: no second active hazard
// structure. A structure whose identity was disabled comes back as a ruin.
func (k *Kernel) spawnStructure() bool {
	if k.catalog.Len() == 0 {
		return false
	}
	for _, e := range k.entities {
		if e.Class == ClassHazardStructure && e.Active {
			return false
		}
	}
	cfg := k.cfg.Hazards.Structure
	side := SideLeft
	if k.rng.Intn(2) == 1 {
		side = SideRight
	}
	w, h := float64(cfg.Width)*k.tile, float64(cfg.Height)*k.tile
	if k.sideOccupied(side, h) {
		return false
	}

	house, id := k.catalog.Identity(k.spawned)
	k.spawned++
	e := k.newEntity(ClassHazardStructure, house)
	e.Identity = id
	e.Side = side
	k.anchor(e, cfg.Width, w, h)
	e.Radius = cfg.Radius * k.tile
	e.Active = !k.mutations.IsDisabled(id)
	k.emit(Event{Kind: EventSpawned, Identity: id})
	return true
}

// spawnShop faces the side opposite the active hazard structure.
func (k *Kernel) spawnShop(t SpawnTarget) bool {
	cfg := k.cfg.Benefits
	side := SideNone
	for _, e := range k.entities {
		if e.Class == ClassHazardStructure && e.Active {
			side = e.Side.Opposite()
			break
		}
	}
	if side == SideNone {
		side = SideLeft
		if k.rng.Intn(2) == 1 {
			side = SideRight
		}
	}
	w, h := float64(cfg.Width)*k.tile, float64(cfg.Height)*k.tile
	if k.sideOccupied(side, h) {
		return false
	}

	e := k.newEntity(ClassBenefitStructure, t.Kind)
	e.Side = side
	k.anchor(e, cfg.Width, w, h)
	e.Active = true
	k.emit(Event{Kind: EventSpawned, Identity: t.Kind})
	return true
}

func (k *Kernel) spawnAgent() {
	cfg := k.cfg.Hazards.Agent
	span := max(k.cfg.Terrain.Width-4, 1)
	e := k.newEntity(ClassHazardAgent, "agent")
	e.Col = 2 + k.rng.Intn(span)
	e.X = float64(e.Col) * k.tile
	e.Y = -k.tile
	e.W, e.H = k.tile, k.tile
	e.Radius = cfg.Radius * k.tile
	e.Dir = 1
	if k.rng.Intn(2) == 0 {
		e.Dir = -1
	}
	e.Active = true
	k.emit(Event{Kind: EventSpawned, Identity: e.label()})
}

func (k *Kernel) spawnCollectible(kind string) {
	e := k.newEntity(ClassCollectible, kind)
	e.Col = 1 + k.rng.Intn(k.cfg.Terrain.Width-2)
	e.X = float64(e.Col) * k.tile
	e.Y = -k.tile
	e.W, e.H = k.tile, k.tile
	e.Active = true
	k.emit(Event{Kind: EventSpawned, Identity: kind})
}

// anchor places a side structure flush with its lane edge above the viewport.
func (k *Kernel) anchor(e *Entity, cols int, w, h float64) {
	e.Col = 0
	if e.Side == SideRight {
		e.Col = k.cfg.Terrain.Width - cols
	}
	e.X = float64(e.Col) * k.tile
	e.Y = -h
	e.W, e.H = w, h
}

// sideOccupied reports whether a side structure already covers the spawn area.
func (k *Kernel) sideOccupied(side Side, h float64) bool {
	for _, e := range k.entities {
		if e.Side == side && overlapsY(-h, h, e.Y, e.H) {
			return true
		}
	}
	return false
}

func (k *Kernel) shopIndex(kind string) int {
	for i, s := range k.cfg.Benefits.Shops {
		if s.Kind == kind {
			return i
		}
	}
	return 0
}

func (e *Entity) label() string {
	if e.Identity != "" {
		return e.Identity
	}
	return e.Kind
}
