package tetris2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tetris2048/internal/core"
	"github.com/vovakirdan/tetris2048/internal/grid"
)

const (
	cellWidth = 5  // Characters per grid column
	panelW    = 17 // Width of the side panel
	panelGap  = 1  // Space between board and panel
	hudHeight = 1  // Title row above the board
)

// tileColors maps tile values to display colors. Larger values use
// the color of the highest entry below them.
var tileColors = []struct {
	value int
	color core.Color
}{
	{2, core.ColorWhite},
	{4, core.ColorBrightYellow},
	{8, core.ColorOrange},
	{16, core.ColorBrightRed},
	{32, core.ColorRed},
	{64, core.ColorMagenta},
	{128, core.ColorBrightMagenta},
	{256, core.ColorPink},
	{512, core.ColorCyan},
	{1024, core.ColorBrightCyan},
	{2048, core.ColorGold},
	{4096, core.ColorBrightGreen},
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	c := core.ColorDefault
	for _, tc := range tileColors {
		if value < tc.value {
			break
		}
		c = tc.color
	}
	return c
}

// tileLabel formats a tile value to fit in one cell.
func tileLabel(value int) string {
	s := strconv.Itoa(value)
	if len(s) >= cellWidth {
		s = strconv.Itoa(value/1024) + "k"
	}
	return fmt.Sprintf("%*s ", cellWidth-1, s)
}

// boardSize returns the board frame dimensions.
func (g *Game) boardSize() (w, h int) {
	return g.cfg.Grid.Width*cellWidth + 2, g.cfg.Grid.Height + 2
}

// minScreenSize returns the smallest screen that fits the layout.
func (g *Game) minScreenSize() (w, h int) {
	bw, bh := g.boardSize()
	return bw + panelGap + panelW, bh + hudHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bw, bh := g.boardSize()
	totalW := bw + panelGap + panelW
	board := core.NewRect((g.screenW-totalW)/2, hudHeight, bw, bh)
	panelX := board.Right() + panelGap

	dst.DrawTextCentered(0, g.Title())
	g.renderBoard(dst, board)
	g.renderPanel(dst, panelX, board.Y)
	dst.DrawTextCentered(g.screenH-1, g.Controls())
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderBoard draws the frame, the locked tiles and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBoxColor(board, core.ColorGray)

	h := g.grid.Height()
	cellPos := func(row, col int) (int, int) {
		return board.X + 1 + col*cellWidth, board.Y + 1 + (h - 1 - row)
	}

	for row := 0; row < h; row++ {
		for col := 0; col < g.grid.Width(); col++ {
			x, y := cellPos(row, col)
			if t := g.grid.At(row, col); t != nil {
				drawTile(dst, x, y, t)
				continue
			}
			dst.DrawTextColor(x, y, "   . ", core.ColorGray)
		}
	}

	if g.piece == nil {
		return
	}
	for _, pl := range g.piece.Tiles() {
		if pl.Row >= h {
			continue
		}
		x, y := cellPos(pl.Row, pl.Col)
		drawTile(dst, x, y, pl.Tile)
	}
}

// drawTile draws one tile label in its value color.
func drawTile(dst *core.Screen, x, y int, t *grid.Tile) {
	color := TileColor(t.Value)
	if t.Clearing {
		color = core.ColorBrightWhite
	}
	dst.DrawTextColor(x, y, tileLabel(t.Value), color)
}

// renderPanel draws the score, stats and next piece preview.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	lines := []string{
		fmt.Sprintf("Score  %d", g.score),
		fmt.Sprintf("Max    %d", g.grid.MaxValue()),
		fmt.Sprintf("Lines  %d", g.lines),
		fmt.Sprintf("Merges %d", g.merges),
		fmt.Sprintf("Speed  %d%%", int(g.difficulty.Level(g.score, int(g.tick))*100)),
	}
	if g.mode == ModeClassic {
		lines = append(lines, fmt.Sprintf("Goal   %d", g.cfg.Rules.WinScore))
	} else {
		lines = append(lines, "Endless")
	}
	for i, line := range lines {
		dst.DrawText(x, y+i, line)
	}

	y += len(lines) + 1
	dst.DrawText(x, y, "Next")
	next := g.gen.Peek()
	if next == nil {
		return
	}
	block := next.Block()
	box := core.NewRect(x, y+1, panelW, block.Rows()+2)
	dst.DrawBoxColor(box, core.ColorGray)
	offsetX := x + 1 + (panelW-2-block.Cols()*cellWidth)/2
	for r, line := range block.Tiles {
		for c, t := range line {
			if t != nil {
				drawTile(dst, offsetX+c*cellWidth, box.Y+1+r, t)
			}
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.phase == PhaseWon:
		g.drawOverlay(dst, board, "YOU WIN!",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Max tile: %d", g.grid.MaxValue()),
			"Press R to restart")
	case g.phase == PhaseGameOver:
		g.drawOverlay(dst, board, "GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Max tile: %d", g.grid.MaxValue()),
			"Press R to restart")
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←→ move  ↑ rotate  ↓ soft drop  Space drop  P pause  R restart  Q quit"
}
