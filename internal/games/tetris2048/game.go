// Package tetris2048 implements the Tetris 2048 game: tetrominoes of
// numbered tiles fall into a grid, equal tiles merge vertically, loose
// fragments settle and full rows clear.
package tetris2048

import (
	"math/rand"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/grid"
	"github.com/vovakirdan/tetris2048/internal/registry"
	"github.com/vovakirdan/tetris2048/internal/tetromino"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// softDropHoldTicks is how long one soft drop press keeps the fast fall
// speed. Terminal key repeat re-arms it while the key is held.
const softDropHoldTicks = 8

// Game implements Tetris 2048.
type Game struct {
	mode Mode
	cfg  config.Config
	rng  *rand.Rand
	tick uint64

	grid       *grid.Grid
	gen        *tetromino.Generator
	piece      *tetromino.Piece
	difficulty *config.DifficultyManager
	phase      Phase

	score  int
	lines  int
	merges int
	last   Resolution // Outcome of the most recent lock

	fallTimer int // Ticks since the piece last fell
	softHold  int // Ticks of soft drop left

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates a game in the given mode.
func New(mode Mode, cfg config.Config) *Game {
	return &Game{mode: mode, cfg: cfg}
}

func init() {
	registry.Register(string(ModeClassic), func(cfg config.Config) registry.Game {
		return New(ModeClassic, cfg)
	})
	registry.Register(string(ModeEndless), func(cfg config.Config) registry.Game {
		return New(ModeEndless, cfg)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Tetris 2048 (Endless)"
	}
	return "Tetris 2048"
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Play until the stack tops out"
	}
	return "Reach the winning score or build the winning tile"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.merges = 0
	g.last = Resolution{}
	g.fallTimer = 0
	g.softHold = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	randomizer, err := tetromino.ParseRandomizer(g.cfg.Pieces.Randomizer)
	if err != nil {
		randomizer = tetromino.Uniform
	}

	g.grid = grid.New(g.cfg.GridSize())
	g.gen = tetromino.NewGenerator(tetromino.GeneratorConfig{
		Grid:       g.cfg.GridSize(),
		Randomizer: randomizer,
		FourChance: g.cfg.Rules.SpawnFourChance,
	}, g.rng)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Timing)

	g.spawn()
	g.checkScreenSize()
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// spawn promotes the previewed piece to the falling piece.
func (g *Game) spawn() {
	g.phase = PhaseSpawning
	g.piece = g.gen.Next()
	g.grid.SetActive(g.piece)
	g.fallTimer = 0
	g.softHold = 0
	g.phase = PhaseFalling
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.phase.Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if g.phase.Terminal() || g.piece == nil {
		return core.StepResult{State: g.State()}
	}

	locked := g.applyInput(in)
	if !locked {
		locked = g.applyGravity()
	}

	return core.StepResult{State: g.State(), Locked: locked}
}

// applyInput moves the falling piece. Reports whether the piece locked.
func (g *Game) applyInput(in core.InputFrame) bool {
	if in.Has(core.ActionLeft) {
		g.piece.Move(g.grid, tetromino.Left)
	}
	if in.Has(core.ActionRight) {
		g.piece.Move(g.grid, tetromino.Right)
	}
	if in.Has(core.ActionRotate) {
		g.piece.Rotate(g.grid)
	}

	if in.Has(core.ActionHardDrop) {
		g.piece.HardDrop(g.grid)
		g.Resolve()
		return true
	}

	if in.Has(core.ActionDown) {
		g.softHold = softDropHoldTicks
		g.fallTimer = 0
		if !g.piece.Move(g.grid, tetromino.Down) {
			g.Resolve()
			return true
		}
	}
	return false
}

// applyGravity advances the fall timer and drops the piece one row when it
// expires. Reports whether the piece locked.
func (g *Game) applyGravity() bool {
	g.fallTimer++
	interval := g.FallInterval()
	if g.softHold > 0 {
		g.softHold--
		interval = g.difficulty.SoftDropInterval(g.score, int(g.tick))
	}
	if g.fallTimer < interval {
		return false
	}

	g.fallTimer = 0
	if g.piece.Move(g.grid, tetromino.Down) {
		return false
	}
	g.Resolve()
	return true
}

// FallInterval returns the current number of ticks per automatic fall.
func (g *Game) FallInterval() int {
	return g.difficulty.FallInterval(g.score, int(g.tick))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	maxTile := 0
	if g.grid != nil {
		maxTile = g.grid.MaxValue()
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase.Terminal(),
		Won:      g.phase == PhaseWon,
		Paused:   g.paused || g.tooSmall,
		MaxTile:  maxTile,
		Lines:    g.lines,
		Merges:   g.merges,
	}
}

// Phase returns the current step phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// LastResolution returns the outcome of the most recent lock.
func (g *Game) LastResolution() Resolution {
	return g.last
}
