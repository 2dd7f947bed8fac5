package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomlayout/internal/layout"
	"github.com/samdwyer/roomlayout/internal/tiles"
)

// Renderer draws room grids onto a Canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a renderer drawing onto canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws grid with its highest row at the top of the canvas, and the
// status text on the last line. A nil grid draws only the status line.
func (r *Renderer) Render(grid *layout.RoomGrid, status string) {
	r.canvas.Clear()
	_, height := r.canvas.Size()

	if grid != nil {
		if _, maxY, ok := grid.Bounds(); ok {
			for _, cell := range grid.Cells() {
				glyph, style := r.cellStyle(cell)
				r.canvas.SetContent(cell.X, maxY-cell.Y, glyph, style)
			}
		}
	}

	if height > 0 {
		r.drawText(status, height-1)
	}
	r.canvas.Show()
}

// cellStyle returns the glyph and style for an occupied cell, taken from the
// texture its tile was created with. Tiles with the placeholder texture fall
// back to plain '.' and '#'.
func (r *Renderer) cellStyle(cell layout.GridCell) (rune, tcell.Style) {
	if h := tiles.TextureOf(cell.Tile); !h.IsZero() {
		return h.Glyph, tcell.StyleDefault.Foreground(h.Color)
	}
	switch cell.Spec.Type {
	case layout.TileWall:
		return '#', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	default:
		return '.', tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

func (r *Renderer) drawText(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
