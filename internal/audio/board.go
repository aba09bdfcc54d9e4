// Package audio plays the game's sound cues through the beep speaker.
// Samples come from WAV files in the media directory when present and
// are synthesized otherwise. Without an audio device the board stays silent.
package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Format is the format every sound is converted to before playback.
var Format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// Sample sources reported by Source.
const (
	SourceWAV   = "wav"
	SourceSynth = "synth"
)

// cueFiles maps cues to the sample file names looked up in the media directory.
var cueFiles = map[core.Cue]string{
	core.CueSong:      "Arpeggio1 120.wav",
	core.CuePickup:    "beep.wav",
	core.CueFire:      "fireball.wav",
	core.CueExplosion: "grenade.wav",
	core.CueLost:      "lost.wav",
}

var allCues = []core.Cue{core.CueSong, core.CuePickup, core.CueFire, core.CueExplosion, core.CueLost}

// Board owns the decoded sounds and the speaker mixer.
type Board struct {
	mu      sync.Mutex
	cfg     config.AudioConfig
	songLen time.Duration
	logger  *log.Logger

	sounds  map[core.Cue]*beep.Buffer
	sources map[core.Cue]string
	mixer   *beep.Mixer
	song    *beep.Ctrl
	active  bool
}

// New creates a silent board. songLen is how long a synthesized song
// should run before the next song cue restarts it.
func New(cfg config.AudioConfig, songLen time.Duration, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Board{
		cfg:     cfg,
		songLen: songLen,
		logger:  logger,
		sounds:  make(map[core.Cue]*beep.Buffer),
		sources: make(map[core.Cue]string),
		mixer:   &beep.Mixer{},
	}
}

// Load prepares a buffer for every cue. A missing or unreadable sample
// falls back to a synthesized one.
func (b *Board) Load() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, cue := range allCues {
		path := filepath.Join(b.cfg.MediaDir, cueFiles[cue])
		buf, err := loadSample(path)
		if err == nil {
			b.sounds[cue] = buf
			b.sources[cue] = SourceWAV
			b.logger.Debug("loaded sample", "cue", cue, "path", path)
			continue
		}

		if !os.IsNotExist(err) {
			b.logger.Warn("sample unusable, synthesizing", "cue", cue, "err", err)
		}
		b.sounds[cue] = synthesize(cue, b.songLen)
		b.sources[cue] = SourceSynth
	}
}

// Start opens the audio device. On failure the board stays silent and
// the error is returned for logging; the game runs on without sound.
func (b *Board) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.active {
		return nil
	}
	if !b.cfg.Enabled {
		b.logger.Info("audio disabled")
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		b.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.active = true
	return nil
}

// Active reports whether sounds reach a device.
func (b *Board) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// Source reports where the cue's sound came from, or "" before Load.
func (b *Board) Source(cue core.Cue) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sources[cue]
}

// Play starts the sound for each cue. The song cue replaces any song
// that is still playing.
func (b *Board) Play(cues ...core.Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, cue := range cues {
		buf := b.sounds[cue]
		if buf == nil {
			continue
		}
		s := withVolume(buf.Streamer(0, buf.Len()), b.cfg.Volume)
		if cue == core.CueSong {
			if b.song != nil {
				b.song.Streamer = nil // the mixer drops it on the next pass
			}
			b.song = &beep.Ctrl{Streamer: s}
			s = b.song
		}
		b.mixer.Add(s)
	}
}

// Close stops every sound and releases the device.
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	b.active = false
}

// loadSample decodes a WAV file into a buffer in Format.
func loadSample(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	s, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(Format)
	buf.Append(src)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s has no samples", path)
	}
	return buf, nil
}

// withVolume scales s by a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume is made silent instead.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	vol = core.ClampF(vol, 0, 1)
	if vol == 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
