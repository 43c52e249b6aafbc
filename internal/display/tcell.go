package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen renders to a real terminal through tcell. It owns the terminal
// for its whole lifetime: callers must invoke Fini on shutdown to restore
// the previous terminal mode.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	s.HideCursor()
	s.Clear()

	return &Screen{
		screen: s,
		style:  tcell.StyleDefault,
	}, nil
}

func (s *Screen) DrawText(row, col int, text string) error {
	runes := []rune(text)

	if err := s.checkBounds(row, col, row, col+len(runes)-1); err != nil {
		return err
	}

	for i, r := range runes {
		s.screen.SetContent(col+i, row, r, nil, s.style)
	}
	return nil
}

func (s *Screen) DrawFrame(top, left, bottom, right int) error {
	if top >= bottom || left >= right {
		return fmt.Errorf("invalid frame corners (%d,%d)-(%d,%d)", top, left, bottom, right)
	}
	if err := s.checkBounds(top, left, bottom, right); err != nil {
		return err
	}

	for x := left + 1; x < right; x++ {
		s.screen.SetContent(x, top, '─', nil, s.style)
		s.screen.SetContent(x, bottom, '─', nil, s.style)
	}
	for y := top + 1; y < bottom; y++ {
		s.screen.SetContent(left, y, '│', nil, s.style)
		s.screen.SetContent(right, y, '│', nil, s.style)
	}

	s.screen.SetContent(left, top, '┌', nil, s.style)
	s.screen.SetContent(right, top, '┐', nil, s.style)
	s.screen.SetContent(left, bottom, '└', nil, s.style)
	s.screen.SetContent(right, bottom, '┘', nil, s.style)

	return nil
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Size() (rows, cols int) {
	w, h := s.screen.Size()
	return h, w
}

// Fini restores the terminal to its previous mode. Safe to call once.
func (s *Screen) Fini() {
	s.screen.Fini()
}

// WaitQuit blocks until an interrupt key is pressed (Ctrl+C, Esc or q)
// or the screen is finalized. tcell runs the terminal in raw mode, so
// Ctrl+C arrives here as a key event rather than a SIGINT.
func (s *Screen) WaitQuit() {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return
			}
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			// Screen finalized.
			return
		}
	}
}

func (s *Screen) checkBounds(top, left, bottom, right int) error {
	rows, cols := s.Size()
	if top < 0 || left < 0 || bottom >= rows || right >= cols {
		return fmt.Errorf("region (%d,%d)-(%d,%d) exceeds %dx%d surface: %w",
			top, left, bottom, right, rows, cols, ErrSurfaceTooSmall)
	}
	return nil
}
