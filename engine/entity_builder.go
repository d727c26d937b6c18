package engine

import "github.com/lixenwraith/turngrid/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components.
// The entity ID is reserved upfront; components are staged and only committed by Build().
//
// Example usage:
//
//	e := engine.With(
//	    engine.With(world.NewEntity(), world.Components.Glyph, component.GlyphComponent{Rune: 'D'}),
//	    world.Components.Position, component.PositionComponent{X: 3, Y: 3},
//	).Build()
type EntityBuilder struct {
	world   *World
	entity  core.Entity
	pending []func()
	built   bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID.
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With stages a component of type T for the entity being built.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.pending = append(eb.pending, func() { store.Set(e, component) })
	return eb
}

// Build commits all staged components and returns the entity ID.
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		return eb.entity
	}
	eb.built = true
	for _, apply := range eb.pending {
		apply()
	}
	eb.pending = nil
	return eb.entity
}
