package system

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/turngrid/config"
	"github.com/lixenwraith/turngrid/core"
	"github.com/lixenwraith/turngrid/engine"
	"github.com/lixenwraith/turngrid/input"
	"github.com/lixenwraith/turngrid/render"
	"github.com/lixenwraith/turngrid/status"
)

func newDefaultGame(t *testing.T, src engine.EventSource, sink render.Sink) (*engine.Game, *engine.GameContext) {
	t.Helper()
	cfg := config.Default()
	m, world, err := cfg.Build()
	require.NoError(t, err)
	keys, err := cfg.KeyTable()
	require.NoError(t, err)

	ctx := engine.NewGameContext(world, m, nil, status.NewRegistry())
	g, err := engine.NewGame(ctx, src, NewMovementSystem(ctx, keys, nil), NewRenderSystem(ctx, sink))
	require.NoError(t, err)
	return g, ctx
}

func TestIntegration_ScriptedSession(t *testing.T) {
	rec := render.NewRecorder(100, 20, nil)
	// From (2,2): c is blocked by the D at (3,3), d steps to (3,2), x to (3,3) is blocked, w to (3,1)
	src := input.NewScriptSource(append(input.KeyEvents("cdxw"), input.EscapeEvent())...)

	g, ctx := newDefaultGame(t, src, rec)
	require.NoError(t, g.Run())

	assert.Equal(t, engine.StateStopped, g.State())
	assert.Equal(t, int64(5), g.Turn())
	assert.Equal(t, 5, rec.Frames())
	assert.Equal(t, core.Point{X: 3, Y: 1}, rec.Cursor())

	rows := strings.Split(string(rec.Frame()), "\n")
	require.Len(t, rows, 20)
	assert.Equal(t, "...@", rows[1][:4])
	assert.Equal(t, "...D", rows[3][:4])
	assert.Equal(t, "....D", rows[4][:5])
	assert.Equal(t, "#.#", rows[5][5:8])
	assert.Equal(t, "#", rows[6][5:6])

	snap := ctx.Status.Snapshot()
	assert.Equal(t, int64(2), snap[status.KeyMovesApplied])
	assert.Equal(t, int64(2), snap[status.KeyMovesBlocked])
	assert.Equal(t, int64(5), snap[status.KeyTurns])
}

func TestIntegration_WalkThroughWall(t *testing.T) {
	rec := render.NewRecorder(100, 20, nil)
	// (2,2) → d (3,2) → d (4,2) → c (5,3) → x (5,4) → x (5,5) which is a wall tile
	src := input.NewScriptSource(append(input.KeyEvents("ddcxx"), input.EscapeEvent())...)

	g, ctx := newDefaultGame(t, src, rec)
	require.NoError(t, g.Run())

	_, pos, err := ctx.World.PlayerPosition()
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 5, Y: 5}, pos)
	assert.Equal(t, '@', rec.RuneAt(5, 5))
}

func TestIntegration_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(100, 20)

	screen.InjectKey(tcell.KeyRune, 'D', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	g, ctx := newDefaultGame(t, screen, render.NewScreenSink(screen))
	require.NoError(t, g.Run())

	_, pos, err := ctx.World.PlayerPosition()
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 3, Y: 1}, pos)

	cells, width, _ := screen.GetContents()
	runeAt := func(x, y int) rune {
		c := cells[y*width+x]
		if len(c.Runes) == 0 {
			return ' '
		}
		return c.Runes[0]
	}
	assert.Equal(t, '@', runeAt(3, 1))
	assert.Equal(t, '.', runeAt(2, 2), "old player cell repainted as floor")
	assert.Equal(t, 'D', runeAt(3, 3))
	assert.Equal(t, '#', runeAt(7, 5))

	x, y, _ := screen.GetCursor()
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)
}
