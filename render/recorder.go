package render

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/lixenwraith/turngrid/core"
)

// Recorder is an in-memory sink that keeps the last flushed frame as text
// Rows are joined by '\n'; writes outside width x height are clipped
// If out is set every flushed frame is also written there
type Recorder struct {
	width, height int
	cells         []rune
	cursor        core.Point
	frame         bytes.Buffer
	frames        int
	out           io.Writer
}

// NewRecorder creates a recorder of the given surface size
func NewRecorder(width, height int, out io.Writer) *Recorder {
	r := &Recorder{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
		out:    out,
	}
	r.Clear()
	return r
}

// Clear fills the surface with spaces
func (r *Recorder) Clear() {
	for i := range r.cells {
		r.cells[i] = ' '
	}
}

// Print writes text at (x, y), clipping at the surface edge
func (r *Recorder) Print(x, y int, text string) {
	if y < 0 || y >= r.height {
		return
	}
	col := x
	for _, ch := range text {
		if col >= r.width {
			return
		}
		if col >= 0 {
			r.cells[y*r.width+col] = ch
		}
		col++
	}
}

// ShowCursor records the cursor position
func (r *Recorder) ShowCursor(x, y int) {
	r.cursor = core.Point{X: x, Y: y}
}

// Flush snapshots the surface into the frame buffer and forwards it to out
func (r *Recorder) Flush() error {
	r.frame.Reset()
	for y := 0; y < r.height; y++ {
		if y > 0 {
			r.frame.WriteByte('\n')
		}
		for _, ch := range r.cells[y*r.width : (y+1)*r.width] {
			r.frame.WriteRune(ch)
		}
	}
	r.frames++

	if r.out == nil {
		return nil
	}
	if _, err := r.out.Write(r.frame.Bytes()); err != nil {
		return errors.Wrap(err, "write frame")
	}
	if _, err := io.WriteString(r.out, "\n"); err != nil {
		return errors.Wrap(err, "write frame")
	}
	return nil
}

// Frame returns a copy of the last flushed frame
func (r *Recorder) Frame() []byte {
	return bytes.Clone(r.frame.Bytes())
}

// Cursor returns the last cursor position
func (r *Recorder) Cursor() core.Point {
	return r.cursor
}

// Frames returns how many frames were flushed
func (r *Recorder) Frames() int {
	return r.frames
}

// RuneAt returns the current surface rune at (x, y)
func (r *Recorder) RuneAt(x, y int) rune {
	return r.cells[y*r.width+x]
}
