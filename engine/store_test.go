package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/turngrid/component"
	"github.com/lixenwraith/turngrid/core"
)

func TestStore_SetGetHas(t *testing.T) {
	s := NewStore[component.ActorComponent]()

	s.Set(1, component.ActorComponent{HP: 10})
	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, uint32(10), got.HP)

	// Update keeps a single entry
	s.Set(1, component.ActorComponent{HP: 7})
	assert.Equal(t, 1, s.Count())
	got, _ = s.Get(1)
	assert.Equal(t, uint32(7), got.HP)

	assert.True(t, s.Has(1))
	assert.False(t, s.Has(42))
	_, ok = s.Get(42)
	assert.False(t, ok)
}

func TestStore_EntitiesAscendingRegardlessOfInsertOrder(t *testing.T) {
	s := NewStore[component.GlyphComponent]()
	for _, e := range []core.Entity{5, 2, 9, 1} {
		s.Set(e, component.GlyphComponent{Rune: rune('a' + e)})
	}

	assert.Equal(t, []core.Entity{1, 2, 5, 9}, s.Entities())

	var order []core.Entity
	for e := range s.All() {
		order = append(order, e)
	}
	assert.Equal(t, []core.Entity{1, 2, 5, 9}, order)
}

func TestStore_EntitiesReturnsCopy(t *testing.T) {
	s := NewStore[component.PlayerComponent]()
	s.Set(1, component.PlayerComponent{})

	list := s.Entities()
	list[0] = 99

	assert.Equal(t, []core.Entity{1}, s.Entities())
}

func TestStore_AllStopsEarly(t *testing.T) {
	s := NewStore[component.ActorComponent]()
	s.Set(1, component.ActorComponent{})
	s.Set(2, component.ActorComponent{})
	s.Set(3, component.ActorComponent{})

	n := 0
	for range s.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
