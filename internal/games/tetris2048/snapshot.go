package tetris2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "classic" or "endless"
	Phase     string
	Score     int
	Lines     int
	Merges    int
	MaxTile   int
	Board     [][]int // Tile values, row 0 = floor
	Piece     string  // Kind of the falling piece, empty between lock and spawn
	PieceRow  int
	PieceCol  int
	Next      string // Kind of the previewed piece
	FallEvery int    // Current ticks per automatic fall
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.phase == PhaseWon:
		state = StateWin
	case g.phase == PhaseGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Phase:     g.phase.String(),
		Score:     g.score,
		Lines:     g.lines,
		Merges:    g.merges,
		MaxTile:   g.grid.MaxValue(),
		Board:     g.grid.Values(),
		FallEvery: g.FallInterval(),
		State:     state,
	}
	if g.piece != nil {
		pos := g.piece.Position()
		snap.Piece = g.piece.Kind().String()
		snap.PieceRow = pos.Row
		snap.PieceCol = pos.Col
	}
	if next := g.gen.Peek(); next != nil {
		snap.Next = next.Kind().String()
	}
	return snap
}
