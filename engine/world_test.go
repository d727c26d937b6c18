package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/turngrid/component"
	"github.com/lixenwraith/turngrid/core"
)

func spawn(w *World, x, y int, glyph rune, blocking, player bool) core.Entity {
	cs := w.Components
	eb := w.NewEntity()
	With(eb, cs.Actor, component.ActorComponent{HP: 10})
	With(eb, cs.Position, component.PositionComponent{X: x, Y: y})
	With(eb, cs.Blockable, component.BlockableComponent{Blocking: blocking})
	With(eb, cs.Glyph, component.GlyphComponent{Rune: glyph})
	if player {
		With(eb, cs.Player, component.PlayerComponent{})
	}
	return eb.Build()
}

func TestWorld_PlayerExactlyOne(t *testing.T) {
	w := NewWorld()
	spawn(w, 3, 3, 'D', true, false)

	_, err := w.Player()
	assert.ErrorIs(t, err, ErrNoPlayer)

	p := spawn(w, 2, 2, '@', true, true)
	got, err := w.Player()
	require.NoError(t, err)
	assert.Equal(t, p, got)

	spawn(w, 4, 4, '@', true, true)
	_, err = w.Player()
	assert.ErrorIs(t, err, ErrMultiplePlayers)
}

func TestWorld_PlayerPosition(t *testing.T) {
	w := NewWorld()
	p := spawn(w, 2, 5, '@', true, true)

	e, pos, err := w.PlayerPosition()
	require.NoError(t, err)
	assert.Equal(t, p, e)
	assert.Equal(t, core.Point{X: 2, Y: 5}, pos)

	// A player tag without a position counts as no player
	unplaced := NewWorld()
	With(unplaced.NewEntity(), unplaced.Components.Player, component.PlayerComponent{}).Build()
	_, _, err = unplaced.PlayerPosition()
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestWorld_Validate(t *testing.T) {
	m := core.NewMap(10, 10, core.TileFloor)

	t.Run("no player", func(t *testing.T) {
		w := NewWorld()
		spawn(w, 1, 1, 'D', true, false)
		assert.ErrorIs(t, w.Validate(m), ErrNoPlayer)
	})

	t.Run("two players", func(t *testing.T) {
		w := NewWorld()
		spawn(w, 1, 1, '@', true, true)
		spawn(w, 2, 2, '@', true, true)
		assert.ErrorIs(t, w.Validate(m), ErrMultiplePlayers)
	})

	t.Run("body off map", func(t *testing.T) {
		w := NewWorld()
		spawn(w, 1, 1, '@', true, true)
		spawn(w, 10, 0, 'D', true, false)
		assert.ErrorIs(t, w.Validate(m), ErrOutOfBounds)
	})

	t.Run("bare position off map is allowed", func(t *testing.T) {
		w := NewWorld()
		spawn(w, 1, 1, '@', true, true)
		e := w.CreateEntity()
		w.Components.Position.Set(e, component.PositionComponent{X: -5, Y: 50})
		assert.NoError(t, w.Validate(m))
	})

	t.Run("valid", func(t *testing.T) {
		w := NewWorld()
		spawn(w, 2, 2, '@', true, true)
		spawn(w, 3, 3, 'D', true, false)
		assert.NoError(t, w.Validate(m))
	})
}

func TestWorld_BodiesAndRenderablesOrder(t *testing.T) {
	w := NewWorld()
	a := spawn(w, 1, 1, 'a', true, true)
	b := spawn(w, 2, 2, 'b', false, false)

	// Glyph-only entity without position is skipped
	loose := w.CreateEntity()
	w.Components.Glyph.Set(loose, component.GlyphComponent{Rune: 'x'})

	type body struct {
		p core.Point
		b bool
	}
	var bodies []body
	for p, blocking := range w.Bodies() {
		bodies = append(bodies, body{p, blocking})
	}
	assert.Equal(t, []body{{core.Point{X: 1, Y: 1}, true}, {core.Point{X: 2, Y: 2}, false}}, bodies)

	var glyphs []rune
	for _, g := range w.Renderables() {
		glyphs = append(glyphs, g.Rune)
	}
	assert.Equal(t, []rune{'a', 'b'}, glyphs)
	assert.Less(t, uint64(a), uint64(b))
}

func TestWorld_EntityCountTracksIssuedIDs(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, 0, w.EntityCount())

	spawn(w, 1, 1, '@', true, true)
	spawn(w, 2, 2, 'D', true, false)
	assert.Equal(t, 2, w.EntityCount())
	assert.Equal(t, core.Entity(3), w.CreateEntity())
}
