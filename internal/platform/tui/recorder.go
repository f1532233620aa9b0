package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightwalk/internal/core"
	"github.com/vovakirdan/nightwalk/internal/registry"
	"github.com/vovakirdan/nightwalk/internal/storage"
)

// Cuer plays a one-shot sound for an event kind.
type Cuer interface {
	Cue(kind string)
}

// Options configures a game model beyond the game, store and runtime config.
type Options struct {
	Logger *log.Logger // Nil discards
	Player string      // Recorded with the run; empty for local play
	Cues   Cuer        // Nil plays no cues
}

// debugEvents are logged at Debug; everything else at Info.
var debugEvents = map[string]bool{
	"blocked":   true,
	"unblocked": true,
	"spawned":   true,
	"despawned": true,
}

// recorder logs game events and writes each session's score and run once.
type recorder struct {
	store  *storage.Store
	logger *log.Logger
	player string
	cues   Cuer
	saved  bool
}

func newRecorder(store *storage.Store, opts Options) *recorder {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &recorder{
		store:  store,
		logger: logger,
		player: opts.Player,
		cues:   opts.Cues,
	}
}

// observe logs the events of one step and saves once the game is over.
func (r *recorder) observe(game registry.Game, res core.StepResult) {
	for _, ev := range res.Events {
		kv := []any{"game", game.ID(), "user", r.player, "identity", ev.Identity, "value", ev.Value}
		if debugEvents[ev.Kind] {
			r.logger.Debug(ev.Kind, kv...)
		} else {
			r.logger.Info(ev.Kind, kv...)
		}
		if r.cues != nil {
			r.cues.Cue(ev.Kind)
		}
	}

	if res.State.GameOver {
		r.finish(game, res.State)
	}
}

// finish writes the high score and run history. Later calls are no-ops
// until reset.
func (r *recorder) finish(game registry.Game, state core.GameState) {
	if r.saved {
		return
	}
	r.saved = true

	if r.store == nil {
		return
	}

	if state.GameOver && state.Score > 0 {
		if _, err := r.store.SaveScore(game.ID(), state.Score); err != nil {
			r.logger.Warn("could not save score", "game", game.ID(), "error", err)
		}
	}

	s, ok := game.(registry.Summarizer)
	if !ok {
		return
	}
	run := s.Summary()
	if run.DurationMs <= 0 {
		return
	}
	if _, err := r.store.SaveRun(game.ID(), r.player, run); err != nil {
		r.logger.Warn("could not save run", "game", game.ID(), "error", err)
		return
	}
	r.logger.Info("run saved", "game", game.ID(), "user", r.player, "outcome", run.Outcome, "score", run.Score)
}

// reset arms the recorder for a restarted session.
func (r *recorder) reset() {
	r.saved = false
}
