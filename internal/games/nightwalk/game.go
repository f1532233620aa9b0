// Package nightwalk adapts the Night Walk simulation kernel to the game
// platform. Two variants are registered: the full campus walk with hazard
// and benefit structures, and the park walk with only benches and lamps.
package nightwalk

import (
	"github.com/vovakirdan/nightwalk/internal/config"
	"github.com/vovakirdan/nightwalk/internal/core"
	"github.com/vovakirdan/nightwalk/internal/games/nightwalk/sim"
	"github.com/vovakirdan/nightwalk/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// university overrides the catalog selection
var university string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetUniversity selects a catalog by name. Empty picks one per session.
func SetUniversity(name string) {
	university = name
}

// Game implements registry.Game for one Night Walk variant.
type Game struct {
	variant     string
	runtime     core.RuntimeConfig
	cfg         config.NightwalkConfig
	kernel      *sim.Kernel
	audio       sim.Audio
	paused      bool
	pausedAudio bool // Audio was paused by the pause toggle
}

// New creates the campus variant.
func New() *Game {
	return &Game{variant: config.VariantNightwalk}
}

// NewPark creates the park variant.
func NewPark() *Game {
	return &Game{variant: config.VariantPark}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantPark {
		return "Night Walk: Park"
	}
	return "Night Walk"
}

// SetAudio sets the soundtrack this game drives from the next Reset on.
// Nil silences it.
func (g *Game) SetAudio(a sim.Audio) {
	g.audio = a
}

// Reset loads the variant config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		cfg = config.DefaultFor(g.variant)
		cfg.Normalize()
	}
	if difficultyPreset != "" {
		config.ApplyNightwalkPreset(&cfg, difficultyPreset)
	}
	if university != "" {
		if _, ok := cfg.Catalog.FindUniversity(university); ok {
			cfg.Catalog.University = university
		}
	}

	g.cfg = cfg
	g.paused = false
	g.pausedAudio = false
	g.kernel = sim.New(cfg, runtime.Seed, g.audio)
}

// Step advances the session by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.kernel == nil {
		return core.StepResult{State: g.State()}
	}
	over := g.kernel.Phase() == sim.PhaseGameOver

	if in.Has(core.ActionPause) && !over {
		g.setPaused(!g.paused)
	}
	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	res := g.kernel.Tick(g.runtime.TickMillis(), sim.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
	})

	events := make([]core.Event, len(res.Events))
	for i, ev := range res.Events {
		events[i] = core.Event{Kind: string(ev.Kind), Identity: ev.Identity, Value: ev.Value}
	}
	return core.StepResult{State: g.State(), Events: events}
}

// setPaused freezes the session. Audio is paused with it and resumed only
// if the pause stopped it.
func (g *Game) setPaused(p bool) {
	g.paused = p
	if g.audio == nil {
		return
	}
	if p && g.audio.IsPlaying() && !g.kernel.Blocked() {
		g.audio.Pause()
		g.pausedAudio = true
	}
	if !p && g.pausedAudio {
		g.audio.Resume()
		g.pausedAudio = false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.kernel == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.kernel.Score(),
		GameOver: g.kernel.Phase() == sim.PhaseGameOver,
		Paused:   g.paused,
		Won:      g.kernel.Outcome() == sim.OutcomeVictory,
	}
}

// Summary describes the session for run history.
func (g *Game) Summary() core.RunSummary {
	if g.kernel == nil {
		return core.RunSummary{Outcome: "quit"}
	}
	outcome := "quit"
	switch g.kernel.Outcome() {
	case sim.OutcomeDefeat:
		outcome = "defeat"
	case sim.OutcomeVictory:
		outcome = "victory"
	}
	return core.RunSummary{
		Score:           g.kernel.Score(),
		Outcome:         outcome,
		Transformations: g.kernel.Transformations(),
		Disabled:        len(g.kernel.Disabled()),
		DurationMs:      int64(g.kernel.ElapsedMs()),
		Catalog:         g.kernel.Catalog().Name,
	}
}

// Register both variants with the registry
func init() {
	registry.Register(config.VariantNightwalk, func() registry.Game {
		return New()
	})
	registry.Register(config.VariantPark, func() registry.Game {
		return NewPark()
	})
}
