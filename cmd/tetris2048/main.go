// tetris2048 is a terminal game where tetrominoes of numbered tiles fall,
// equal tiles merge vertically and full rows clear.
//
// Usage:
//
//	tetris2048 play [mode]     - Play a mode (default: classic)
//	tetris2048 menu            - Pick a mode interactively
//	tetris2048 modes           - List available modes
//	tetris2048 scores [mode]   - Show high scores for a mode
//	tetris2048 serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.tetris2048/scores.db)
//	--config <path>        - Load game settings from a YAML file
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/config"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tetris2048/internal/games/tetris2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	// Set up before any subcommand runs
	gameConfig config.Config
	logger     *log.Logger
	logCloser  func() error
)

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	if logCloser != nil {
		logCloser() //nolint:errcheck // Nothing useful to do on exit
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris2048",
	Short: "Tetris 2048 - falling blocks with merging numbers",
	Long: `Tetris 2048 combines falling tetrominoes with 2048-style merging.

Every tile carries a power of two. When a piece lands, equal tiles stacked
directly on top of each other merge, loose fragments fall, and full rows
clear for the sum of their tiles.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  modes    - Show all available modes
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  tetris2048 play
  tetris2048 play endless --difficulty hard
  tetris2048 menu
  tetris2048 serve --ssh :2222
  tetris2048 scores classic`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tetris2048/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal UI commands log nothing otherwise)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads the game configuration.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	l, closer, err := newLogger(flagLogLevel, flagLogFile, usesTerminalUI(cmd))
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}
	gameConfig = cfg

	logger.Debug("configuration loaded",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"win_score", cfg.Rules.WinScore,
		"randomizer", cfg.Pieces.Randomizer,
		"difficulty", flagDifficulty,
	)
	return nil
}

// usesTerminalUI reports whether the command takes over the terminal.
func usesTerminalUI(cmd *cobra.Command) bool {
	return cmd == playCmd || cmd == menuCmd
}
