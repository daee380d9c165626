package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/platform/tui"
	"github.com/vovakirdan/tetris2048/internal/registry"
)

const defaultMode = "classic"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (classic if omitted).

Modes:
  classic  - Reach the winning score or build the winning tile
  endless  - Play until the stack tops out

Controls:
  Left/Right, A/D  - Move
  Up, W, X         - Rotate clockwise
  Down, S          - Soft drop
  Space, H         - Hard drop
  P                - Pause
  R                - Restart
  B/Esc            - Leave (when paused or over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the slowest fall speed, speeds up with score
  normal - Start at 30% speed, speeds up with score
  hard   - Start at 70% speed, speeds up with score
  fixed  - No progression, stays at the config's initial level

Examples:
  tetris2048 play
  tetris2048 play endless
  tetris2048 play --difficulty hard --seed 42
  tetris2048 play --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := defaultMode
	if len(args) == 1 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (run 'tetris2048 modes' to see available modes)", mode)
	}

	game, err := registry.Create(mode, gameConfig)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStoreOptional()
	defer closeStore(store)

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
