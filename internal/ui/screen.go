// Package ui draws room grids in the terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface the renderer needs.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
}

// Screen is the terminal Canvas. It also supplies the viewer's key events.
type Screen struct {
	term tcell.Screen
}

var _ Canvas = (*Screen)(nil)

// NewScreen takes over the terminal with a black background.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal. A pending PollEvent then returns nil.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks until the next key or resize event.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

func (s *Screen) Clear() { s.term.Clear() }

func (s *Screen) Show() { s.term.Show() }

// SetContent draws r at (x, y); room glyphs never combine.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

func (s *Screen) Size() (width, height int) { return s.term.Size() }
