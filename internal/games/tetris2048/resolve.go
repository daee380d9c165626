package tetris2048

import "github.com/vovakirdan/tetris2048/internal/grid"

// Phase is a stage of the lock-to-spawn step sequence.
type Phase int

const (
	PhaseFalling Phase = iota
	PhaseLocking
	PhaseMerging
	PhaseSettling
	PhaseClearing
	PhaseSpawning
	PhaseGameOver
	PhaseWon
)

// String returns the phase name used in snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseMerging:
		return "merging"
	case PhaseSettling:
		return "settling"
	case PhaseClearing:
		return "clearing"
	case PhaseSpawning:
		return "spawning"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// Resolution is the outcome of locking one piece.
type Resolution struct {
	Locked     bool
	GameOver   bool
	Won        bool
	Merges     []grid.MergeEvent
	MergeScore int
	DropPasses int   // Gravity passes until nothing floated
	Cleared    []int // Rows removed, ascending, as numbered before removal
	LineScore  int
}

// Score returns the points gained by this lock.
func (r Resolution) Score() int {
	return r.MergeScore + r.LineScore
}

// Resolve locks the falling piece where it is and runs the rest of the step
// synchronously: merge cascade, clump gravity, one line clear, then spawn.
// It ends in PhaseFalling with a new piece, or in a terminal phase.
func (g *Game) Resolve() Resolution {
	if g.piece == nil || g.phase.Terminal() {
		return Resolution{}
	}

	res := Resolution{Locked: true}
	defer func() { g.last = res }()

	g.phase = PhaseLocking
	over := g.grid.Lock(g.piece.Block())
	g.piece = nil
	if over {
		g.phase = PhaseGameOver
		res.GameOver = true
		return res
	}

	g.phase = PhaseMerging
	won := false
	res.MergeScore = g.grid.Cascade(func(e grid.MergeEvent) {
		res.Merges = append(res.Merges, e)
		if g.winsWithTile(e.Value) {
			won = true
		}
	})
	g.score += res.MergeScore
	g.merges += len(res.Merges)

	g.phase = PhaseSettling
	res.DropPasses = g.grid.DropClumps()

	g.phase = PhaseClearing
	if rows := g.grid.FindFullRows(); len(rows) > 0 {
		res.Cleared = rows
		res.LineScore = g.grid.ScoreForRows(rows)
		g.score += res.LineScore
		g.lines += len(rows)
		g.grid.RemoveRows(rows)
	}

	if won || g.winsWithScore() {
		g.phase = PhaseWon
		res.Won = true
		return res
	}

	g.spawn()
	return res
}

// winsWithTile reports whether a merged value meets the winning tile.
func (g *Game) winsWithTile(value int) bool {
	return g.mode == ModeClassic && value >= g.cfg.Rules.WinTile
}

// winsWithScore reports whether the score meets the winning score.
func (g *Game) winsWithScore() bool {
	return g.mode == ModeClassic && g.score >= g.cfg.Rules.WinScore
}
