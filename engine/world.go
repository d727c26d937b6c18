package engine

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/lixenwraith/turngrid/component"
	"github.com/lixenwraith/turngrid/core"
)

// World is the entity store: entity ids plus one typed store per component
// Entities are only created during setup; nothing is removed while the game runs
type World struct {
	nextEntityID core.Entity

	Components ComponentStore
}

// NewWorld creates an empty world with all component stores initialized
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
	}
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// EntityCount returns the number of ids issued so far
func (w *World) EntityCount() int {
	return int(w.nextEntityID - 1)
}

// Player returns the single entity carrying PlayerComponent
func (w *World) Player() (core.Entity, error) {
	switch n := w.Components.Player.Count(); n {
	case 0:
		return core.NilEntity, ErrNoPlayer
	case 1:
		return w.Components.Player.Entities()[0], nil
	default:
		return core.NilEntity, errors.Wrapf(ErrMultiplePlayers, "found %d", n)
	}
}

// PlayerPosition returns the player entity and its position
func (w *World) PlayerPosition() (core.Entity, core.Point, error) {
	player, err := w.Player()
	if err != nil {
		return core.NilEntity, core.Point{}, err
	}
	pos, ok := w.Components.Position.Get(player)
	if !ok {
		return player, core.Point{}, errors.Wrapf(ErrNoPlayer, "player %d has no position", player)
	}
	return player, pos.Point(), nil
}

// Validate checks the setup invariants: exactly one player,
// and every renderable or blockable body inside the map
func (w *World) Validate(m *core.Map) error {
	if _, _, err := w.PlayerPosition(); err != nil {
		return err
	}

	for e, pos := range w.Components.Position.All() {
		if !w.Components.Glyph.Has(e) && !w.Components.Blockable.Has(e) {
			continue
		}
		if !m.Contains(pos.Point()) {
			return errors.Wrapf(ErrOutOfBounds, "entity %d at %s, map %dx%d",
				e, pos.Point(), m.Width(), m.Height())
		}
	}
	return nil
}

// Bodies yields (position, blocking) for every positioned blockable entity, ascending by id
func (w *World) Bodies() iter.Seq2[core.Point, bool] {
	cs := w.Components
	entities := w.Query().With(cs.Blockable).With(cs.Position).Execute()
	return func(yield func(core.Point, bool) bool) {
		for _, e := range entities {
			b, _ := cs.Blockable.Get(e)
			pos, _ := cs.Position.Get(e)
			if !yield(pos.Point(), b.Blocking) {
				return
			}
		}
	}
}

// Renderables yields (position, glyph) for every entity with both components, ascending by id
func (w *World) Renderables() iter.Seq2[component.PositionComponent, component.GlyphComponent] {
	cs := w.Components
	entities := w.Query().With(cs.Glyph).With(cs.Position).Execute()
	return func(yield func(component.PositionComponent, component.GlyphComponent) bool) {
		for _, e := range entities {
			pos, _ := cs.Position.Get(e)
			g, _ := cs.Glyph.Get(e)
			if !yield(pos, g) {
				return
			}
		}
	}
}
