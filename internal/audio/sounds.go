package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// NightGenerator synthesizes an endless ambience: a low drone with a little
// hiss under periodic cricket chirps. Noise comes from a fixed-seed LCG so
// the output is reproducible.
type NightGenerator struct {
	sr     beep.SampleRate
	pos    int
	period int // Samples per chirp cycle
	chirp  int // Samples of one chirp
	seed   int64
}

// NewNightGenerator creates an ambience generator.
func NewNightGenerator(sr beep.SampleRate) *NightGenerator {
	return &NightGenerator{
		sr:     sr,
		period: sr.N(1400 * time.Millisecond),
		chirp:  sr.N(150 * time.Millisecond),
		seed:   1,
	}
}

func (g *NightGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		drone := 0.08*math.Sin(2*math.Pi*55*t) + 0.04*math.Sin(2*math.Pi*82.5*t)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		hiss := 0.01 * (float64(g.seed)/float64(0x7fffffff)*2 - 1)

		chirp := 0.0
		if p := g.pos % g.period; p < g.chirp {
			env := math.Sin(math.Pi * float64(p) / float64(g.chirp))
			gate := 0.5 + 0.5*math.Sin(2*math.Pi*40*t) // trill
			chirp = 0.06 * env * gate * math.Sin(2*math.Pi*4500*t)
		}

		sample := drone + hiss + chirp
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NightGenerator) Err() error {
	return nil
}

// tone is a finite sine with a linear attack and release.
type tone struct {
	sr       beep.SampleRate
	freq     float64
	pos      int
	total    int
	attack   int
	release  int
	amp      float64
	overtone float64 // Relative level of the octave above
}

func newTone(sr beep.SampleRate, freq float64, d, attack, release time.Duration, amp float64) *tone {
	return &tone{
		sr:      sr,
		freq:    freq,
		total:   sr.N(d),
		attack:  sr.N(attack),
		release: sr.N(release),
		amp:     amp,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		t := float64(o.pos) / float64(o.sr)

		env := 1.0
		if o.attack > 0 && o.pos < o.attack {
			env = float64(o.pos) / float64(o.attack)
		}
		if rs := o.total - o.release; o.release > 0 && o.pos >= rs {
			env = math.Min(env, float64(o.total-o.pos)/float64(o.release))
		}

		v := math.Sin(2*math.Pi*o.freq*t) + o.overtone*math.Sin(4*math.Pi*o.freq*t)
		v *= o.amp * env / (1 + o.overtone)

		samples[i][0] = v
		samples[i][1] = v
		o.pos++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// CueSound returns the one-shot sound for an event kind, or nil if the kind
// has none.
func CueSound(kind string, sr beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch kind {
	case "pickup":
		return newTone(sr, 880, 120*ms, 5*ms, 80*ms, 0.3)
	case "empowered":
		return beep.Seq(
			newTone(sr, 659.25, 100*ms, 5*ms, 40*ms, 0.3),
			newTone(sr, 987.77, 180*ms, 5*ms, 120*ms, 0.3),
		)
	case "structure_disabled":
		bell := newTone(sr, 1318.51, 300*ms, 2*ms, 250*ms, 0.25)
		bell.overtone = 0.4
		return bell
	case "transformed":
		return beep.Seq(
			newTone(sr, 220, 150*ms, 10*ms, 60*ms, 0.35),
			newTone(sr, 146.83, 300*ms, 10*ms, 200*ms, 0.35),
		)
	case "game_over":
		return newTone(sr, 110, 600*ms, 20*ms, 450*ms, 0.4)
	default:
		return nil
	}
}

// withVolume scales a stream linearly. Zero or less is silent since
// math.Log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
