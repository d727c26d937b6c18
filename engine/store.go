package engine

import (
	"iter"
	"slices"

	"github.com/lixenwraith/turngrid/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern: map for lookup, entity slice kept sorted by id for deterministic iteration
// Not synchronized, the owning Game is the only writer
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity // Ascending entity ids that have this component
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 16),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		i, _ := slices.BinarySearch(s.entities, e)
		s.entities = slices.Insert(s.entities, i, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Entities returns a copy of all entities with this component, ascending by id
func (s *Store[T]) Entities() []core.Entity {
	return slices.Clone(s.entities)
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// All iterates entity/component pairs in ascending entity order
// Mutating the store during iteration is not supported
func (s *Store[T]) All() iter.Seq2[core.Entity, T] {
	return func(yield func(core.Entity, T) bool) {
		for _, e := range s.entities {
			if !yield(e, s.components[e]) {
				return
			}
		}
	}
}
