package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(appDir, configFile), "grid:\n  width: 10\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Width != 10 {
		t.Errorf("Grid.Width = %d, want 10", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 20 {
		t.Errorf("Grid.Height = %d, want default 20", cfg.Grid.Height)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(appDir, configFile), "grid:\n  width: 2\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Width != 12 {
		t.Errorf("Grid.Width = %d, want default 12", cfg.Grid.Width)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", `
rules:
  win_score: 4096
pieces:
  randomizer: bag
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", path, err)
	}
	if cfg.Rules.WinScore != 4096 {
		t.Errorf("WinScore = %d, want 4096", cfg.Rules.WinScore)
	}
	if cfg.Rules.WinTile != 2048 {
		t.Errorf("WinTile = %d, want default 2048", cfg.Rules.WinTile)
	}
	if cfg.Pieces.Randomizer != "bag" {
		t.Errorf("Randomizer = %q, want bag", cfg.Pieces.Randomizer)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		path       string
		validation bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"broken yaml", writeConfig(t, dir, "broken.yaml", "grid: [1, 2"), false},
		{"invalid value", writeConfig(t, dir, "bad.yaml", "rules:\n  spawn_four_chance: 1.5\n"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			var vErr *ValidationError
			if got := errors.As(err, &vErr); got != tc.validation {
				t.Errorf("errors.As(ValidationError) = %v, want %v (err: %v)", got, tc.validation, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"narrow grid", func(c *Config) { c.Grid.Width = 3 }, "grid.width"},
		{"short grid", func(c *Config) { c.Grid.Height = 0 }, "grid.height"},
		{"zero win score", func(c *Config) { c.Rules.WinScore = 0 }, "rules.win_score"},
		{"negative chance", func(c *Config) { c.Rules.SpawnFourChance = -0.1 }, "rules.spawn_four_chance"},
		{"zero fall ticks", func(c *Config) { c.Timing.FallTicks = 0 }, "timing.fall_ticks"},
		{"min above fall", func(c *Config) { c.Timing.MinFallTicks = 60 }, "timing.min_fall_ticks"},
		{"unknown randomizer", func(c *Config) { c.Pieces.Randomizer = "tgm" }, "pieces.randomizer"},
		{"unknown progression", func(c *Config) { c.Difficulty.Progression.Type = "lines" }, "difficulty.progression.type"},
		{"level out of range", func(c *Config) { c.Difficulty.InitialLevel = 2 }, "difficulty.initial_level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("Field = %q, want %q", vErr.Field, tc.field)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; want normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}
