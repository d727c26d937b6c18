package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/turngrid/core"
	"github.com/lixenwraith/turngrid/status"
)

// GameContext bundles the state shared by the turn loop and its systems
// It is built once during setup and passed explicitly to every system constructor.
// Single-threaded: only the Game goroutine touches World and Map.
type GameContext struct {
	World  *World
	Map    *core.Map
	Status *status.Registry
	Logger *zap.Logger
}

// NewGameContext wires a context, filling optional collaborators with no-op defaults
func NewGameContext(world *World, m *core.Map, logger *zap.Logger, reg *status.Registry) *GameContext {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &GameContext{
		World:  world,
		Map:    m,
		Status: reg,
		Logger: logger,
	}
}
