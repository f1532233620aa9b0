package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/nightwalk/internal/games/nightwalk/sim"
)

var _ sim.Audio = (*Player)(nil)

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	p.Start()
	p.Pause()
	p.Resume()
	p.Cue("pickup")
	if p.IsPlaying() {
		t.Error("uninitialized player reports playing")
	}
	p.Cleanup()
}

func TestPlayerPauseResume(t *testing.T) {
	p := NewPlayer(0.5)
	if err := p.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer p.Cleanup()

	if p.IsPlaying() {
		t.Error("playing before Start")
	}
	p.Start()
	if !p.IsPlaying() {
		t.Fatal("not playing after Start")
	}
	p.Pause()
	if p.IsPlaying() {
		t.Error("playing after Pause")
	}
	p.Resume()
	if !p.IsPlaying() {
		t.Error("not playing after Resume")
	}

	if err := p.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
}

func TestPlayerCleanupKeepsSpeaker(t *testing.T) {
	p := NewPlayer(0.5)
	if err := p.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer p.Cleanup()

	p.Start()
	p.Cleanup()
	if p.IsPlaying() {
		t.Fatal("playing after Cleanup")
	}
	if !p.initialized {
		t.Fatal("Cleanup closed the speaker")
	}

	p.Start()
	if !p.IsPlaying() {
		t.Error("Start after Cleanup did not restart the ambience")
	}
}

func TestNightGenerator(t *testing.T) {
	rate := beep.SampleRate(48000)
	g1 := NewNightGenerator(rate)
	g2 := NewNightGenerator(rate)

	a := make([][2]float64, rate.N(2e9)) // two seconds
	b := make([][2]float64, len(a))
	n, ok := g1.Stream(a)
	if n != len(a) || !ok {
		t.Fatalf("Stream() = %d, %v; want %d, true", n, ok, len(a))
	}
	g2.Stream(b)

	var peak float64
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between generators", i)
		}
		if a[i][0] != a[i][1] {
			t.Fatalf("sample %d is not centered", i)
		}
		if v := a[i][0]; v > peak {
			peak = v
		} else if -v > peak {
			peak = -v
		}
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak = %f, want in (0, 1]", peak)
	}
	if g1.Err() != nil {
		t.Errorf("unexpected error: %v", g1.Err())
	}
}

func TestCueSound(t *testing.T) {
	rate := beep.SampleRate(48000)

	tests := []struct {
		kind string
		want bool
	}{
		{"pickup", true},
		{"empowered", true},
		{"structure_disabled", true},
		{"transformed", true},
		{"game_over", true},
		{"blocked", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s := CueSound(tt.kind, rate)
			if (s != nil) != tt.want {
				t.Fatalf("CueSound(%q) present = %v, want %v", tt.kind, s != nil, tt.want)
			}
			if s == nil {
				return
			}

			// Cues are finite and stay in range
			buf := make([][2]float64, 512)
			total := 0
			for i := 0; i < 1000; i++ {
				n, ok := s.Stream(buf)
				for _, smp := range buf[:n] {
					if smp[0] < -1 || smp[0] > 1 {
						t.Fatalf("sample out of range: %f", smp[0])
					}
				}
				total += n
				if !ok {
					break
				}
			}
			if total == 0 || total >= 1000*len(buf) {
				t.Errorf("cue length = %d samples, want finite and non-empty", total)
			}
		})
	}
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(newTone(beep.SampleRate(48000), 440, 1e8, 0, 0, 1), 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %f, want silence", i, buf[i][0])
		}
	}
}
