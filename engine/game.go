package engine

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/turngrid/input"
	"github.com/lixenwraith/turngrid/status"
)

// EventSource supplies input events, blocking until one is available
// A nil event means the source is closed; tcell.Screen satisfies this
type EventSource interface {
	PollEvent() tcell.Event
}

// Mover consumes one input event per turn; nil means no input
type Mover interface {
	Apply(ev tcell.Event) error
}

// Renderer draws one full frame per turn
type Renderer interface {
	Render() error
}

// Game is the turn driver: movement, render, then wait for the next event
type Game struct {
	ctx      *GameContext
	source   EventSource
	movement Mover
	render   Renderer

	state  GameState
	turn   int64
	turns  *atomic.Int64
	logger *zap.Logger
}

// NewGame validates the world and wires the turn loop
// Setup errors (player count, bodies off the map) are returned before any system runs
func NewGame(ctx *GameContext, source EventSource, movement Mover, render Renderer) (*Game, error) {
	if err := ctx.World.Validate(ctx.Map); err != nil {
		return nil, errors.Wrap(err, "invalid world")
	}
	return &Game{
		ctx:      ctx,
		source:   source,
		movement: movement,
		render:   render,
		state:    StateAwaitingInput,
		turns:    ctx.Status.Counter(status.KeyTurns),
		logger:   ctx.Logger.Named("game"),
	}, nil
}

// Run loops until a quit key or a fatal error
// Quit returns nil; fatal errors stop the loop and are returned with context attached
func (g *Game) Run() error {
	if g.state == StateStopped {
		return errors.New("game already stopped")
	}

	// First turn runs with no input so the initial state is drawn before any key is read
	var ev tcell.Event
	for {
		g.state = StateUpdating
		if err := g.movement.Apply(ev); err != nil {
			return g.fail(errors.Wrap(err, "movement"))
		}

		g.state = StateRendering
		if err := g.render.Render(); err != nil {
			return g.fail(errors.Wrap(err, "render"))
		}

		g.turn++
		g.turns.Add(1)

		g.state = StateAwaitingInput
		ev = g.source.PollEvent()
		if ev == nil {
			return g.fail(ErrInputClosed)
		}
		if input.IsQuit(ev) {
			g.state = StateStopped
			g.logger.Info("quit requested", zap.Int64("turn", g.turn))
			return nil
		}
	}
}

// State returns the current driver state
func (g *Game) State() GameState {
	return g.state
}

// Turn returns the number of completed movement+render cycles
func (g *Game) Turn() int64 {
	return g.turn
}

func (g *Game) fail(err error) error {
	g.state = StateStopped
	g.logger.Error("turn loop stopped", zap.Int64("turn", g.turn), zap.Error(err))
	return err
}
