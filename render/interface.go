package render

// Sink receives the directives of one frame
// Clear starts a frame, Flush ends it; failures surface from Flush
type Sink interface {
	// Clear blanks the whole surface
	Clear()

	// Print writes text starting at column x, row y
	Print(x, y int, text string)

	// ShowCursor places the visible cursor at (x, y)
	ShowCursor(x, y int)

	// Flush presents the frame
	Flush() error
}
