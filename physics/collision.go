package physics

import (
	"iter"

	"github.com/lixenwraith/turngrid/core"
)

// IsBlocked reports whether moving onto target is illegal
// A target outside the map rectangle is blocked before the map is indexed.
// Otherwise any blocking body standing on target blocks it.
// Terrain is not consulted: a Wall tile without a blocking body on it is passable.
func IsBlocked(target core.Point, m *core.Map, bodies iter.Seq2[core.Point, bool]) bool {
	if !m.Contains(target) {
		return true
	}
	for pos, blocking := range bodies {
		if blocking && pos == target {
			return true
		}
	}
	return false
}
