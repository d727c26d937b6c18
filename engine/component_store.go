package engine

import (
	"github.com/lixenwraith/turngrid/component"
)

// ComponentStore provides cached pointers to typed component stores
// Systems copy it once at construction instead of looking stores up per call
type ComponentStore struct {
	Actor     *Store[component.ActorComponent]
	Position  *Store[component.PositionComponent]
	Blockable *Store[component.BlockableComponent]
	Glyph     *Store[component.GlyphComponent]
	Player    *Store[component.PlayerComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Actor:     NewStore[component.ActorComponent](),
		Position:  NewStore[component.PositionComponent](),
		Blockable: NewStore[component.BlockableComponent](),
		Glyph:     NewStore[component.GlyphComponent](),
		Player:    NewStore[component.PlayerComponent](),
	}
}
