package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/alien-attack/internal/config"
	"github.com/vovakirdan/alien-attack/internal/core"
)

// writeTone writes a short mono sine WAV at the given rate.
func writeTone(t *testing.T, path string, rate beep.SampleRate) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sine, err := generators.SineTone(rate, 440)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, beep.Take(rate.N(100*time.Millisecond), sine), format); err != nil {
		t.Fatalf("wav.Encode() failed: %v", err)
	}
}

func TestSynthesizeEveryCue(t *testing.T) {
	for _, cue := range allCues {
		buf := synthesize(cue, 0)
		if buf.Len() == 0 {
			t.Errorf("synthesize(%v) produced no samples", cue)
		}
	}
}

func TestSynthesizedSongLength(t *testing.T) {
	short := synthesize(core.CueSong, 0)
	phrase := sampleRate.N(songNote) * len(songNotes)
	if short.Len() != phrase {
		t.Errorf("song without a length = %d samples, expected one phrase of %d", short.Len(), phrase)
	}

	long := synthesize(core.CueSong, 5*time.Second)
	if long.Len() != sampleRate.N(5*time.Second) {
		t.Errorf("song length = %d samples, expected %d", long.Len(), sampleRate.N(5*time.Second))
	}
}

func TestLoadSample(t *testing.T) {
	dir := t.TempDir()

	same := filepath.Join(dir, "same.wav")
	writeTone(t, same, sampleRate)
	buf, err := loadSample(same)
	if err != nil {
		t.Fatalf("loadSample() failed: %v", err)
	}
	if buf.Len() != sampleRate.N(100*time.Millisecond) {
		t.Errorf("buffer length = %d, expected %d", buf.Len(), sampleRate.N(100*time.Millisecond))
	}

	// Other rates are resampled to the playback rate
	low := filepath.Join(dir, "low.wav")
	writeTone(t, low, 22050)
	buf, err = loadSample(low)
	if err != nil {
		t.Fatalf("loadSample() failed: %v", err)
	}
	want := sampleRate.N(100 * time.Millisecond)
	if got := buf.Len(); got < want-100 || got > want+100 {
		t.Errorf("resampled length = %d, expected about %d", got, want)
	}
}

func TestLoadSampleErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := loadSample(filepath.Join(dir, "missing.wav")); !os.IsNotExist(err) {
		t.Errorf("missing file error = %v, expected not-exist", err)
	}

	junk := filepath.Join(dir, "junk.wav")
	if err := os.WriteFile(junk, []byte("not a wav file"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSample(junk); err == nil {
		t.Error("junk file should fail to decode")
	}
}

func TestBoardLoadSources(t *testing.T) {
	dir := t.TempDir()
	writeTone(t, filepath.Join(dir, "fireball.wav"), sampleRate)
	if err := os.WriteFile(filepath.Join(dir, "grenade.wav"), []byte("junk"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultInvadersConfig().Audio
	cfg.MediaDir = dir
	b := New(cfg, time.Second, nil)

	if b.Source(core.CueFire) != "" {
		t.Error("Source() before Load should be empty")
	}
	b.Load()

	tests := []struct {
		cue  core.Cue
		want string
	}{
		{core.CueFire, SourceWAV},
		{core.CueExplosion, SourceSynth}, // unreadable file
		{core.CuePickup, SourceSynth},    // missing file
		{core.CueSong, SourceSynth},
		{core.CueLost, SourceSynth},
	}

	for _, tc := range tests {
		if got := b.Source(tc.cue); got != tc.want {
			t.Errorf("Source(%v) = %q, expected %q", tc.cue, got, tc.want)
		}
	}
}

func TestBoardDisabledIsSilent(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Audio
	cfg.Enabled = false
	cfg.MediaDir = t.TempDir()
	b := New(cfg, time.Second, nil)
	b.Load()

	if err := b.Start(); err != nil {
		t.Fatalf("Start() with audio disabled failed: %v", err)
	}
	if b.Active() {
		t.Error("disabled board should not be active")
	}

	// Must be safe without a device
	b.Play(core.CueSong, core.CueFire, core.CueExplosion)
	b.Close()
}

func TestWithVolume(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1, 0.5},
		{0.5, 0.25},
		{0, 0},
		{2, 0.5}, // clamped to 1
	}

	for _, tc := range tests {
		samples := make([][2]float64, 4)
		s := withVolume(constant(0.5, 4), tc.vol)
		n, _ := s.Stream(samples)
		if n != 4 {
			t.Fatalf("streamed %d samples, expected 4", n)
		}
		if got := samples[0][0]; got < tc.want-1e-9 || got > tc.want+1e-9 {
			t.Errorf("withVolume(%v) sample = %v, expected %v", tc.vol, got, tc.want)
		}
	}
}

// constant streams n samples of value v.
func constant(v float64, n int) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if n <= 0 {
			return 0, false
		}
		count := min(len(samples), n)
		for i := 0; i < count; i++ {
			samples[i] = [2]float64{v, v}
		}
		n -= count
		return count, true
	})
}
