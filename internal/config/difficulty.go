package config

import (
	"math"

	"github.com/vovakirdan/tetris2048/internal/core"
)

// DifficultyManager calculates the fall speed based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	timing       TimingConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, timing TimingConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		timing:       timing,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FallInterval returns the number of ticks between automatic one-row falls.
// It shrinks linearly from fall_ticks at level 0 to min_fall_ticks at level 1.
func (d *DifficultyManager) FallInterval(score int, ticks int) int {
	level := d.Level(score, ticks)
	span := float64(d.timing.FallTicks - d.timing.MinFallTicks)
	interval := d.timing.FallTicks - int(math.Round(level*span))
	return core.Clamp(interval, max(d.timing.MinFallTicks, 1), max(d.timing.FallTicks, 1))
}

// SoftDropInterval returns the number of ticks between falls while soft drop is held.
// It is never slower than the automatic fall.
func (d *DifficultyManager) SoftDropInterval(score int, ticks int) int {
	return max(1, min(d.timing.SoftDropTicks, d.FallInterval(score, ticks)))
}
