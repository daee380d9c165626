package config

import (
	_ "embed"
)

//go:embed defaults/tetris2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/tetris2048.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  12,
			Height: 20,
		},
		Rules: RulesConfig{
			WinScore:        2048,
			WinTile:         2048,
			SpawnFourChance: 0.5,
		},
		Timing: TimingConfig{
			FallTicks:     30,
			SoftDropTicks: 2,
			MinFallTicks:  4,
		},
		Pieces: PiecesConfig{
			Randomizer: "uniform",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 4096,
			},
		},
	}
}
