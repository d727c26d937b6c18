package render

import "github.com/gdamore/tcell/v2"

// ScreenSink draws frames on a tcell.Screen
type ScreenSink struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenSink wraps an initialized screen
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Clear blanks the back buffer
func (s *ScreenSink) Clear() {
	s.screen.Clear()
}

// Print writes runes left to right; cells past the screen edge are dropped by tcell
func (s *ScreenSink) Print(x, y int, text string) {
	col := x
	for _, r := range text {
		s.screen.SetContent(col, y, r, nil, s.style)
		col++
	}
}

// ShowCursor positions the terminal cursor
func (s *ScreenSink) ShowCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}

// Flush pushes changed cells to the terminal
// tcell reports no write errors from Show, so this always succeeds
func (s *ScreenSink) Flush() error {
	s.screen.Show()
	return nil
}
