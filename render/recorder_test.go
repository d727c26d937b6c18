package render

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/turngrid/core"
)

func TestRecorder_FrameLayout(t *testing.T) {
	rec := NewRecorder(4, 2, nil)

	rec.Clear()
	rec.Print(0, 0, "....")
	rec.Print(0, 1, "#..#")
	rec.Print(1, 1, "@")
	rec.ShowCursor(1, 1)
	require.NoError(t, rec.Flush())

	assert.Equal(t, "....\n#@.#", string(rec.Frame()))
	assert.Equal(t, core.Point{X: 1, Y: 1}, rec.Cursor())
	assert.Equal(t, '@', rec.RuneAt(1, 1))
	assert.Equal(t, 1, rec.Frames())
}

func TestRecorder_ClipsOutsideSurface(t *testing.T) {
	rec := NewRecorder(3, 1, nil)

	rec.Print(-1, 0, "abcd")
	rec.Print(0, 1, "zzz")
	rec.Print(0, -1, "zzz")
	require.NoError(t, rec.Flush())

	assert.Equal(t, "bcd", string(rec.Frame()))
}

func TestRecorder_ClearBlanks(t *testing.T) {
	rec := NewRecorder(2, 1, nil)
	rec.Print(0, 0, "xy")
	rec.Clear()
	require.NoError(t, rec.Flush())

	assert.Equal(t, "  ", string(rec.Frame()))
}

func TestRecorder_WritesToOut(t *testing.T) {
	var out bytes.Buffer
	rec := NewRecorder(2, 2, &out)
	rec.Print(0, 0, "ab")
	rec.Print(0, 1, "cd")
	require.NoError(t, rec.Flush())

	assert.Equal(t, "ab\ncd\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRecorder_WriteErrorPropagates(t *testing.T) {
	rec := NewRecorder(1, 1, failingWriter{})

	err := rec.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
