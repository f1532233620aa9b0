package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightwalk/internal/core"
	"github.com/vovakirdan/nightwalk/internal/storage"
)

// stubGame is a registry.Game with a fixed summary.
type stubGame struct {
	state   core.GameState
	summary core.RunSummary
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.state }
func (g *stubGame) Summary() core.RunSummary             { return g.summary }

type cueRecorder struct {
	kinds []string
}

func (c *cueRecorder) Cue(kind string) { c.kinds = append(c.kinds, kind) }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecorderSavesOnce(t *testing.T) {
	store := openStore(t)
	rec := newRecorder(store, Options{Player: "alice"})
	game := &stubGame{
		state:   core.GameState{Score: 500, GameOver: true},
		summary: core.RunSummary{Score: 500, Outcome: "defeat", DurationMs: 42000, Catalog: "USC"},
	}

	for i := 0; i < 3; i++ {
		rec.observe(game, core.StepResult{State: game.state})
	}

	scores, _ := store.TopScores("stub", 10)
	if len(scores) != 1 || scores[0].Score != 500 {
		t.Errorf("scores = %+v, want one of 500", scores)
	}
	runs, _ := store.PlayerRuns("alice", 10)
	if len(runs) != 1 || runs[0].Outcome != "defeat" || runs[0].Catalog != "USC" {
		t.Errorf("runs = %+v, want one defeat at USC", runs)
	}

	rec.reset()
	rec.observe(game, core.StepResult{State: game.state})
	runs, _ = store.PlayerRuns("alice", 10)
	if len(runs) != 2 {
		t.Errorf("expected a second run after reset, got %d", len(runs))
	}
}

func TestRecorderQuitSavesRunOnly(t *testing.T) {
	store := openStore(t)
	rec := newRecorder(store, Options{})
	game := &stubGame{
		state:   core.GameState{Score: 120},
		summary: core.RunSummary{Score: 120, Outcome: "quit", DurationMs: 3000},
	}

	rec.finish(game, game.State())

	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("quit run saved a high score of %d", high)
	}
	runs, _ := store.RecentRuns("stub", 10)
	if len(runs) != 1 || runs[0].Outcome != "quit" {
		t.Errorf("runs = %+v, want one quit", runs)
	}
}

func TestRecorderSkipsEmptyRun(t *testing.T) {
	store := openStore(t)
	rec := newRecorder(store, Options{})
	game := &stubGame{summary: core.RunSummary{Outcome: "quit"}}

	rec.finish(game, game.State())

	if runs, _ := store.RecentRuns("stub", 10); len(runs) != 0 {
		t.Errorf("zero-length run was saved: %+v", runs)
	}
}

func TestRecorderLogsAndCues(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	cues := &cueRecorder{}
	rec := newRecorder(nil, Options{Logger: logger, Player: "bob", Cues: cues})
	game := &stubGame{}

	rec.observe(game, core.StepResult{Events: []core.Event{
		{Kind: "blocked"},
		{Kind: "transformed", Value: 1},
		{Kind: "structure_disabled", Identity: "Sigma Chi_0"},
	}})

	out := buf.String()
	if strings.Contains(out, "blocked") {
		t.Error("blocked event logged above debug level")
	}
	if !strings.Contains(out, "transformed") || !strings.Contains(out, "Sigma Chi_0") {
		t.Errorf("expected info events in log, got %q", out)
	}
	if !strings.Contains(out, "bob") {
		t.Errorf("expected user in log, got %q", out)
	}
	if strings.Join(cues.kinds, ",") != "blocked,transformed,structure_disabled" {
		t.Errorf("cues = %v", cues.kinds)
	}
}

func TestRecorderNilStore(t *testing.T) {
	rec := newRecorder(nil, Options{})
	game := &stubGame{
		state:   core.GameState{Score: 10, GameOver: true},
		summary: core.RunSummary{Score: 10, Outcome: "defeat", DurationMs: 1000},
	}
	rec.observe(game, core.StepResult{State: game.state})
	if !rec.saved {
		t.Error("recorder not marked saved")
	}
}
