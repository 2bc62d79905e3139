package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Visual layout constants. Each grid cell is drawn cellW characters wide so
// the small board fills a readable portion of the terminal.
const (
	cellW     = 5
	hudHeight = 2
)

// Visual characters for rendering.
const (
	FrogChar    = '◉'
	CarBodyChar = '█'
	GoalChar    = '▒'
	CurbChar    = '═'
	DividerChar = '┄'
)

// carKindColors maps car kinds to screen colors.
var carKindColors = map[CarKind]core.Color{
	KindSedan:  core.ColorBlue,
	KindTaxi:   core.ColorBrightYellow,
	KindTruck:  core.ColorMagenta,
	KindPolice: core.ColorWhite,
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	boardW := g.grid.Columns * cellW
	boardH := (g.grid.Lanes+1)*2 + 1
	if dst.Width() < boardW+2 || dst.Height() < hudHeight+boardH {
		g.drawCenteredMessage(dst, "Window too small", "Resize to continue")
		return
	}

	offsetX := (dst.Width() - boardW) / 2
	offsetY := hudHeight + (dst.Height()-hudHeight-boardH)/2

	g.renderBoard(dst, offsetX, offsetY)
	g.renderCars(dst, offsetX, offsetY)
	g.renderFrog(dst, offsetX, offsetY)

	switch g.phase {
	case PhaseWaiting:
		g.drawCenteredMessage(dst, "FROGGER", "Press Enter to start")
	case PhaseWin:
		g.drawCenteredMessage(dst, "You made it!", fmt.Sprintf("Streak: %d  |  Enter: next round", g.score))
	case PhaseLose:
		g.drawCenteredMessage(dst, "Splat!", "Press Enter to try again")
	}
}

// rowY maps a grid row to a screen line.
func rowY(offsetY, row int) int {
	return offsetY + row*2
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Frogger | Streak: %d  Best: %d", g.score, g.highScore)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the goal band, lane dividers and the start curb.
func (g *Game) renderBoard(dst *core.Screen, offsetX, offsetY int) {
	boardW := g.grid.Columns * cellW

	// Goal band
	goalY := rowY(offsetY, g.grid.GoalRow())
	for x := 0; x < boardW; x++ {
		dst.SetColored(offsetX+x, goalY, GoalChar, core.ColorGreen)
	}

	// Dividers between road rows
	for row := 1; row <= g.grid.Lanes; row++ {
		y := rowY(offsetY, row) - 1
		for x := 0; x < boardW; x += 2 {
			dst.SetColored(offsetX+x, y, DividerChar, core.ColorGray)
		}
	}

	// Curb below the start row
	curbY := rowY(offsetY, g.grid.StartRow()) + 1
	for x := 0; x < boardW; x++ {
		dst.SetColored(offsetX+x, curbY, CurbChar, core.ColorGray)
	}
}

// renderCars draws every car at its continuous position.
func (g *Game) renderCars(dst *core.Screen, offsetX, offsetY int) {
	boardW := g.grid.Columns * cellW

	for _, c := range g.traffic.Cars() {
		y := rowY(offsetY, c.Lane+1)
		x := int(math.Round(c.Position * cellW))
		color := carKindColors[c.Kind]

		// Body is one grid cell minus a gap so adjacent cars stay distinct
		for dx := 0; dx < cellW-1; dx++ {
			px := x + dx
			if px < 0 || px >= boardW {
				continue
			}
			dst.SetColored(offsetX+px, y, CarBodyChar, color)
		}
	}
}

// renderFrog draws the frog centered in its cell.
func (g *Game) renderFrog(dst *core.Screen, offsetX, offsetY int) {
	x := offsetX + g.agent.Column*cellW + cellW/2
	y := rowY(offsetY, g.agent.Row)
	dst.SetColored(x, y, FrogChar, core.ColorBrightGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
