package system

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/turngrid/component"
	"github.com/lixenwraith/turngrid/core"
	"github.com/lixenwraith/turngrid/engine"
	"github.com/lixenwraith/turngrid/input"
	"github.com/lixenwraith/turngrid/physics"
	"github.com/lixenwraith/turngrid/status"
)

// StepSound is notified after every accepted move
type StepSound interface {
	Step()
}

// MovementSystem turns a key press into one player step
type MovementSystem struct {
	world   *engine.World
	gameMap *core.Map
	keys    *input.KeyTable
	sound   StepSound
	logger  *zap.Logger

	// Cached metric pointers
	statApplied *atomic.Int64
	statBlocked *atomic.Int64
	statIgnored *atomic.Int64
}

// NewMovementSystem creates a movement system; nil keys selects the default table, nil sound is silent
func NewMovementSystem(ctx *engine.GameContext, keys *input.KeyTable, sound StepSound) *MovementSystem {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &MovementSystem{
		world:       ctx.World,
		gameMap:     ctx.Map,
		keys:        keys,
		sound:       sound,
		logger:      ctx.Logger.Named("movement"),
		statApplied: ctx.Status.Counter(status.KeyMovesApplied),
		statBlocked: ctx.Status.Counter(status.KeyMovesBlocked),
		statIgnored: ctx.Status.Counter(status.KeyEventsIgnored),
	}
}

// Apply moves the player one cell if ev is a bound movement key and the target is free
// A nil or unbound event is a no-op. A blocked move leaves the player in place and is not an error.
// A missing or duplicated player is returned as an error.
func (s *MovementSystem) Apply(ev tcell.Event) error {
	if ev == nil {
		return nil
	}

	dir, ok := s.keys.Direction(ev)
	if !ok {
		s.statIgnored.Add(1)
		return nil
	}

	player, pos, err := s.world.PlayerPosition()
	if err != nil {
		return err
	}

	// Signed addition: a step off the top or left edge goes negative and fails the bounds check
	target := pos.Add(dir.Delta())
	if physics.IsBlocked(target, s.gameMap, s.world.Bodies()) {
		s.statBlocked.Add(1)
		s.logger.Debug("move blocked",
			zap.Stringer("dir", dir),
			zap.Stringer("from", pos),
			zap.Stringer("to", target))
		return nil
	}

	s.world.Components.Position.Set(player, component.PositionAt(target))
	s.statApplied.Add(1)
	s.logger.Debug("moved",
		zap.Stringer("dir", dir),
		zap.Stringer("from", pos),
		zap.Stringer("to", target))

	if s.sound != nil {
		s.sound.Step()
	}
	return nil
}
