package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded YAML and DefaultInvadersConfig differ:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("planet:\n  damage: 10\nstars:\n  max: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Planet.Damage != 10 {
		t.Errorf("Planet.Damage = %d, expected 10", cfg.Planet.Damage)
	}
	if cfg.Stars.Max != 5 {
		t.Errorf("Stars.Max = %d, expected 5", cfg.Stars.Max)
	}
	// Untouched keys keep their defaults
	if cfg.Planet.MaxLife != 100 {
		t.Errorf("Planet.MaxLife = %d, expected default 100", cfg.Planet.MaxLife)
	}
	if len(cfg.Levels.Chart) != 6 {
		t.Errorf("chart should keep 6 default rows, got %d", len(cfg.Levels.Chart))
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte(`[planet]
damage = 8

[audio]
enabled = false

[[levels.chart]]
threshold = 0
spawn_chance = 40
acceleration = 0.05

[[levels.chart]]
threshold = 2000
spawn_chance = 20
acceleration = 0.1
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.Planet.Damage != 8 || cfg.Planet.MaxLife != 100 {
		t.Errorf("planet = %+v, expected damage 8 over defaults", cfg.Planet)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled by the file")
	}
	want := []ChartRow{{0, 40, 0.05}, {2000, 20, 0.1}}
	if !reflect.DeepEqual(cfg.Levels.Chart, want) {
		t.Errorf("chart = %+v, expected %+v", cfg.Levels.Chart, want)
	}

	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("[planet\ndamage ="), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadInvaders(bad); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadInvaders(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	unsorted := filepath.Join(dir, "unsorted.yaml")
	body := "levels:\n  chart:\n    - {threshold: 500, spawn_chance: 10, acceleration: 0.1}\n    - {threshold: 100, spawn_chance: 10, acceleration: 0.1}\n"
	if err := os.WriteFile(unsorted, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadInvaders(unsorted); !errors.Is(err, ErrUnsortedChart) {
		t.Errorf("unsorted chart error = %v, expected ErrUnsortedChart", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		want   error
	}{
		{"zero width", func(c *InvadersConfig) { c.World.Width = 0 }, ErrBadWorld},
		{"drag zero", func(c *InvadersConfig) { c.World.Drag = 0 }, ErrBadDrag},
		{"drag above one", func(c *InvadersConfig) { c.World.Drag = 1.1 }, ErrBadDrag},
		{"empty chart", func(c *InvadersConfig) { c.Levels.Chart = nil }, ErrEmptyChart},
		{"duplicate threshold", func(c *InvadersConfig) { c.Levels.Chart[1].Threshold = 100 }, ErrUnsortedChart},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}

	cfg := DefaultInvadersConfig()
	cfg.Levels.Chart[0].SpawnChance = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero spawn chance should fail validation")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultInvadersConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Levels.Chart[0].SpawnChance != 200 {
		t.Errorf("easy spawn chance = %d, expected 200", easy.Levels.Chart[0].SpawnChance)
	}
	if easy.Levels.Chart[0].Acceleration != 0.005 {
		t.Errorf("easy acceleration = %v, expected 0.005", easy.Levels.Chart[0].Acceleration)
	}

	hard := DefaultInvadersConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Levels.Chart[5].SpawnChance != 17 {
		t.Errorf("hard top-row spawn chance = %d, expected 17", hard.Levels.Chart[5].SpawnChance)
	}

	fixed := DefaultInvadersConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Levels.Progressive {
		t.Error("fixed preset should disable progression")
	}

	normal := DefaultInvadersConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultInvadersConfig()) {
		t.Error("normal preset should leave the config unchanged")
	}
}
