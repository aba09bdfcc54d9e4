package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/alien-attack/internal/core"
)

// A minor arpeggio, one note per eighth at 120 BPM.
var songNotes = []float64{220.00, 261.63, 329.63, 440.00, 329.63, 261.63, 220.00, 164.81}

const songNote = 250 * time.Millisecond

// synthesize renders the fallback sound for a cue.
func synthesize(cue core.Cue, songLen time.Duration) *beep.Buffer {
	var s beep.Streamer
	switch cue {
	case core.CueSong:
		s = song(songLen)
	case core.CuePickup:
		s = beep.Seq(tone(880, 80*time.Millisecond, 0.4), tone(1320, 80*time.Millisecond, 0.4))
	case core.CueFire:
		s = newSweep(900, 200, 150*time.Millisecond)
	case core.CueExplosion:
		s = newNoiseBurst(400*time.Millisecond, 1)
	case core.CueLost:
		s = beep.Seq(
			tone(440, 250*time.Millisecond, 0.5),
			tone(330, 250*time.Millisecond, 0.5),
			tone(220, 500*time.Millisecond, 0.5),
		)
	default:
		s = generators.Silence(sampleRate.N(10 * time.Millisecond))
	}

	buf := beep.NewBuffer(Format)
	buf.Append(s)
	return buf
}

// song loops the arpeggio phrase for d, or plays it once when d is too short.
func song(d time.Duration) beep.Streamer {
	phrase := beep.NewBuffer(Format)
	for _, f := range songNotes {
		phrase.Append(tone(f, songNote, 0.25))
	}
	if d <= 0 || sampleRate.N(d) <= phrase.Len() {
		return phrase.Streamer(0, phrase.Len())
	}
	return beep.Take(sampleRate.N(d), beep.Loop(-1, phrase.Streamer(0, phrase.Len())))
}

// tone is a faded sine note.
func tone(freq float64, d time.Duration, gain float64) beep.Streamer {
	n := sampleRate.N(d)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return generators.Silence(n)
	}
	return newFade(beep.Take(n, sine), n, gain)
}

// fade applies a gain with a short linear attack and a release over the last quarter.
type fade struct {
	s     beep.Streamer
	pos   int
	total int
	gain  float64
}

func newFade(s beep.Streamer, total int, gain float64) *fade {
	return &fade{s: s, total: total, gain: gain}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	attack := max(f.total/50, 1)
	release := max(f.total/4, 1)
	for i := 0; i < n; i++ {
		v := f.gain
		if f.pos < attack {
			v *= float64(f.pos) / float64(attack)
		}
		if left := f.total - f.pos; left < release {
			v *= float64(max(left, 0)) / float64(release)
		}
		samples[i][0] *= v
		samples[i][1] *= v
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// sweep is a square wave gliding from one pitch to another.
type sweep struct {
	from, to float64
	pos      int
	total    int
	phase    float64
}

func newSweep(from, to float64, d time.Duration) *sweep {
	return &sweep{from: from, to: to, total: sampleRate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		val := 0.2
		if s.phase >= 0.5 {
			val = -0.2
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noiseBurst is white noise over a low rumble with an exponential decay.
type noiseBurst struct {
	rng   *rand.Rand
	pos   int
	total int
}

func newNoiseBurst(d time.Duration, seed int64) *noiseBurst {
	return &noiseBurst{rng: rand.New(rand.NewSource(seed)), total: sampleRate.N(d)}
}

func (g *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(sampleRate)
		env := math.Exp(-t * 8)
		noise := g.rng.Float64()*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*60*t)
		val := env * (0.3*noise + rumble)

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *noiseBurst) Err() error { return nil }
