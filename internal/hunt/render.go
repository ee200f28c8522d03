package hunt

import (
	"fmt"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Board layout on screen: a HUD line, a separator, then the boxed grid with
// each cell three characters wide, then the status panel.
const (
	hudHeight   = 2
	cellWidth   = 3
	statusLines = 7
)

// RequiredSize returns the screen size needed to render a rows x cols board.
func RequiredSize(rows, cols int) (w, h int) {
	w = max(cols*cellWidth+2, 32)
	h = hudHeight + rows + 2 + statusLines
	return w, h
}

// Render draws the board and status panel. When cursor is non-nil the
// coordinate is highlighted, which the setup UI uses for placement.
func (g *Game) Render(dst *core.Screen, cursor *core.Coord) {
	g.Snapshot().Render(dst, cursor)
}

// Render draws the snapshot into dst.
func (s Snapshot) Render(dst *core.Screen, cursor *core.Coord) {
	dst.Clear()

	hud := fmt.Sprintf(" Treasure Hunt — %s", stageTitle(s.Stage))
	dst.DrawText(0, 0, hud)
	for x, n := 0, dst.Width(); x < n; x++ {
		dst.Set(x, 1, '─')
	}

	w, h := RequiredSize(s.Rows, s.Cols)
	if dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", w, h))
		return
	}

	boardW := s.Cols*cellWidth + 2
	ox := (dst.Width() - boardW) / 2
	oy := hudHeight
	dst.DrawBox(ox, oy, boardW, s.Rows+2)

	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			pos := core.At(r, c)
			cell := s.Cell(pos)
			x := ox + 1 + c*cellWidth
			y := oy + 1 + r
			if cursor != nil && *cursor == pos {
				dst.SetColored(x, y, '[', core.ColorWhite)
				dst.SetColored(x+2, y, ']', core.ColorWhite)
			}
			dst.SetColored(x+1, y, cell.Symbol(), cellColor(cell))
		}
	}

	s.renderStatus(dst, oy+s.Rows+2)
}

func (s Snapshot) renderStatus(dst *core.Screen, y int) {
	x := 1
	if s.Stage == StageSetup {
		dst.DrawText(x, y, fmt.Sprintf("Treasures placed: %d", s.TotalTreasures))
		if s.Hunter == nil {
			dst.DrawTextColored(x, y+1, "Place a hunter before starting", core.ColorYellow)
		} else {
			dst.DrawText(x, y+1, fmt.Sprintf("Hunter at %v", *s.Hunter))
		}
		return
	}

	dst.DrawText(x, y, fmt.Sprintf("Rounds completed: %d", s.Rounds))
	dst.DrawText(x, y+1, "Treasures remaining:")
	for i, v := range TreasureValues {
		dst.DrawTextColored(x+2+i*8, y+2, fmt.Sprintf("%d: %d", v, s.Treasures[v]), cellColor(TreasureCell(v)))
	}
	dst.DrawText(x, y+3, fmt.Sprintf("Score: %d", s.Score))
	if s.Stage == StageEnd {
		dst.DrawTextColored(x, y+4, "Performance Index: "+s.PerformanceIndex.StringFixed(2), core.ColorGreen)
		dst.DrawText(x, y+5, "Game over: "+s.EndReason.String())
	}
}

func stageTitle(s Stage) string {
	switch s {
	case StageSetup:
		return "Setup Stage"
	case StagePlay:
		return "Play Stage"
	case StageEnd:
		return "End Stage"
	default:
		return ""
	}
}

func cellColor(c Cell) core.Color {
	switch c.kind {
	case KindObstacle:
		return core.ColorGray
	case KindHunter:
		return core.ColorCyan
	case KindTreasure:
		switch c.value {
		case 5:
			return core.ColorYellow
		case 6:
			return core.ColorOrange
		case 7:
			return core.ColorMagenta
		case 8:
			return core.ColorRed
		}
	}
	return core.ColorDefault
}
