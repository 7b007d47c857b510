package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bricks/internal/breakout"
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Glyphs used to fill entities.
const (
	PaddleGlyph  = '▀'
	BallGlyph    = '●'
	BlockGlyph   = '█'
	SpecialGlyph = '▓'
)

// Overlay texts for the non-playing phases.
const (
	MenuText = "Press SPACE to start"
)

// Projection maps playfield units to terminal cells.
type Projection struct {
	CellW, CellH float64
}

// NewProjection creates a projection from the display config.
func NewProjection(cfg config.DisplayConfig) Projection {
	return Projection{CellW: cfg.CellWidth, CellH: cfg.CellHeight}
}

// Bounds returns the playfield size covered by a terminal of w x h cells.
func (p Projection) Bounds(w, h int) core.Bounds {
	return core.Bounds{W: float64(w) * p.CellW, H: float64(h) * p.CellH}
}

// Cells returns the cell rectangle covering r. Every entity is at least one cell.
func (p Projection) Cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X / p.CellW))
	y = int(math.Round(r.Y / p.CellH))
	right := int(math.Round(r.Right() / p.CellW))
	bottom := int(math.Round(r.Bottom() / p.CellH))
	return x, y, max(1, right-x), max(1, bottom-y)
}

// BlockColor picks a block color from its kind and remaining lives.
func BlockColor(b breakout.BlockView) core.Color {
	if b.Kind == breakout.BlockSpawnBallOnDeath {
		return core.ColorBlue
	}
	switch b.Lives {
	case 3:
		return core.ColorGreen
	case 2:
		return core.ColorRed
	case 1:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// OverlayText returns the title shown for a phase, or "" while playing.
func OverlayText(snap breakout.Snapshot) string {
	switch snap.Phase {
	case breakout.PhaseMenu:
		return MenuText
	case breakout.PhaseLevelCompleted:
		return fmt.Sprintf("level complete! total score: %d", snap.Score)
	case breakout.PhaseDead:
		return fmt.Sprintf("you lost. total score: %d", snap.Score)
	default:
		return ""
	}
}

// DrawSnapshot renders one frame into the screen buffer.
func DrawSnapshot(s *core.Screen, snap breakout.Snapshot, p Projection) {
	s.Clear()

	if text := OverlayText(snap); text != "" {
		drawTitle(s, text)
		return
	}

	for _, b := range snap.Blocks {
		x, y, w, h := p.Cells(b.Rect)
		glyph := BlockGlyph
		if b.Kind == breakout.BlockSpawnBallOnDeath {
			glyph = SpecialGlyph
		}
		// Leave the last column blank so neighbours stay distinguishable
		s.DrawRect(x, y, max(1, w-1), h, glyph, BlockColor(b))
	}

	x, y, w, h := p.Cells(snap.Player)
	s.DrawRect(x, y, w, h, PaddleGlyph, core.ColorWhite)

	for _, b := range snap.Balls {
		x, y, w, h := p.Cells(b)
		s.DrawRect(x, y, w, h, BallGlyph, core.ColorWhite)
	}

	s.DrawText(2, 0, fmt.Sprintf("lives: %d", snap.Lives))
	s.DrawTextCentered(0, fmt.Sprintf("score: %d", snap.Score))
}

// drawTitle draws boxed text in the middle of the screen.
func drawTitle(s *core.Screen, text string) {
	y := s.Height() / 2
	w := len([]rune(text)) + 4
	s.DrawBox((s.Width()-w)/2, y-1, w, 3)
	s.DrawTextCentered(y, text)
}
