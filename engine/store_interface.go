package engine

import (
	"github.com/lixenwraith/turngrid/core"
)

// QueryableStore is the type-erased view of a Store used by QueryBuilder
type QueryableStore interface {
	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// Entities returns all entities that have this component type, ascending by id
	Entities() []core.Entity
}
