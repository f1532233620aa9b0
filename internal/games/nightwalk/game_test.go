package nightwalk

import (
	"strings"
	"testing"

	"github.com/vovakirdan/nightwalk/internal/config"
	"github.com/vovakirdan/nightwalk/internal/core"
	"github.com/vovakirdan/nightwalk/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

type recordingAudio struct {
	playing bool
	calls   []string
}

func (a *recordingAudio) Pause()          { a.playing = false; a.calls = append(a.calls, "pause") }
func (a *recordingAudio) Resume()         { a.playing = true; a.calls = append(a.calls, "resume") }
func (a *recordingAudio) IsPlaying() bool { return a.playing }

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{config.VariantNightwalk, config.VariantPark} {
		if !registry.Exists(id) {
			t.Fatalf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatal(err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %s, want %s", g.ID(), id)
		}
		if _, ok := g.(registry.Summarizer); !ok {
			t.Errorf("%s does not implement Summarizer", id)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 40 {
		case 0:
			inputs[i].Set(core.ActionLeft)
		case 20:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() core.GameState {
		g := New()
		g.Reset(testRuntime(99))
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return st
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
	if s1.Score == 0 {
		t.Error("score did not advance")
	}
}

func TestPauseFreezesSession(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause not applied")
	}

	score := g.State().Score
	elapsed := g.kernel.ElapsedMs()
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != score || g.kernel.ElapsedMs() != elapsed {
		t.Error("session advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("unpause not applied")
	}
}

func TestPauseTogglesAudio(t *testing.T) {
	a := &recordingAudio{playing: true}
	g := NewPark()
	g.SetAudio(a)
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	g.Step(pause)

	if strings.Join(a.calls, ",") != "pause,resume" {
		t.Errorf("audio calls = %v, want pause then resume", a.calls)
	}
}

func TestParkHasNoSpawns(t *testing.T) {
	g := NewPark()
	g.Reset(testRuntime(5))
	for i := 0; i < 3000; i++ {
		res := g.Step(core.NewInputFrame())
		for _, ev := range res.Events {
			if ev.Kind == "spawned" {
				t.Fatalf("park spawned %q", ev.Identity)
			}
		}
	}
}

func TestSummaryBeforeEnd(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}

	s := g.Summary()
	if s.Outcome != "quit" {
		t.Errorf("outcome = %s, want quit", s.Outcome)
	}
	if s.DurationMs < 1900 || s.DurationMs > 2100 {
		t.Errorf("duration = %d, want about 2000", s.DurationMs)
	}
	if s.Catalog == "" {
		t.Error("summary missing catalog")
	}
}

func TestUniversitySelection(t *testing.T) {
	SetUniversity("UCLA")
	defer SetUniversity("")

	g := New()
	g.Reset(testRuntime(8))
	if got := g.kernel.Catalog().Name; got != "UCLA" {
		t.Errorf("catalog = %s, want UCLA", got)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Night Walk") {
		t.Error("HUD title missing")
	}
	if !strings.ContainsRune(out, AvatarChar) {
		t.Error("avatar not drawn")
	}
	if !strings.Contains(out, "Score") {
		t.Error("score missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small message")
	}
}

func TestBarWidth(t *testing.T) {
	tests := []struct {
		v, max float64
		want   string
	}{
		{0, 5, "[..........]"},
		{2.5, 5, "[#####.....]"},
		{5, 5, "[##########]"},
		{9, 5, "[##########]"},
	}
	for _, tt := range tests {
		if got := bar(tt.v, tt.max); got != tt.want {
			t.Errorf("bar(%v, %v) = %s, want %s", tt.v, tt.max, got, tt.want)
		}
	}
}
