// Package config provides YAML-based game configuration loading and
// difficulty management for Tetris 2048.
package config

import (
	"fmt"

	"github.com/vovakirdan/tetris2048/internal/grid"
	"github.com/vovakirdan/tetris2048/internal/tetromino"
)

// Config contains all configuration for a game of Tetris 2048.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playfield size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines scoring and win conditions.
type RulesConfig struct {
	WinScore        int     `yaml:"win_score"`
	WinTile         int     `yaml:"win_tile"`
	SpawnFourChance float64 `yaml:"spawn_four_chance"`
}

// TimingConfig defines fall speeds in simulation ticks per row.
type TimingConfig struct {
	FallTicks     int `yaml:"fall_ticks"`
	SoftDropTicks int `yaml:"soft_drop_ticks"`
	MinFallTicks  int `yaml:"min_fall_ticks"`
}

// PiecesConfig defines how pieces are generated.
type PiecesConfig struct {
	Randomizer string `yaml:"randomizer"` // "uniform" or "bag"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// GridSize returns the playfield dimensions for the engine.
func (c Config) GridSize() grid.Config {
	return grid.Config{Height: c.Grid.Height, Width: c.Grid.Width}
}

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

// minGridSide is the smallest playfield side that still fits every piece.
const minGridSide = 4

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Grid.Width < minGridSide:
		return &ValidationError{Field: "grid.width", Message: fmt.Sprintf("must be at least %d", minGridSide)}
	case c.Grid.Height < minGridSide:
		return &ValidationError{Field: "grid.height", Message: fmt.Sprintf("must be at least %d", minGridSide)}
	case c.Rules.WinScore <= 0:
		return &ValidationError{Field: "rules.win_score", Message: "must be positive"}
	case c.Rules.WinTile <= 0:
		return &ValidationError{Field: "rules.win_tile", Message: "must be positive"}
	case c.Rules.SpawnFourChance < 0 || c.Rules.SpawnFourChance > 1:
		return &ValidationError{Field: "rules.spawn_four_chance", Message: "must be within [0, 1]"}
	case c.Timing.FallTicks <= 0:
		return &ValidationError{Field: "timing.fall_ticks", Message: "must be positive"}
	case c.Timing.SoftDropTicks <= 0:
		return &ValidationError{Field: "timing.soft_drop_ticks", Message: "must be positive"}
	case c.Timing.MinFallTicks <= 0 || c.Timing.MinFallTicks > c.Timing.FallTicks:
		return &ValidationError{Field: "timing.min_fall_ticks", Message: "must be within [1, fall_ticks]"}
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return &ValidationError{Field: "difficulty.initial_level", Message: "must be within [0, 1]"}
	}

	if _, err := tetromino.ParseRandomizer(c.Pieces.Randomizer); err != nil {
		return &ValidationError{Field: "pieces.randomizer", Message: err.Error()}
	}

	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return &ValidationError{
			Field:   "difficulty.progression.type",
			Message: fmt.Sprintf("unknown progression %q", c.Difficulty.Progression.Type),
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
