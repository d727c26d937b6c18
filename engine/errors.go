package engine

import "github.com/pkg/errors"

var (
	// ErrNoPlayer is returned when an operation requires the player entity and none exists
	ErrNoPlayer = errors.New("no player entity")

	// ErrMultiplePlayers is returned when more than one entity carries the player tag
	ErrMultiplePlayers = errors.New("multiple player entities")

	// ErrOutOfBounds is returned when a positioned body lies outside the map
	ErrOutOfBounds = errors.New("entity position out of map bounds")

	// ErrInputClosed is returned when the input source stops delivering events
	ErrInputClosed = errors.New("input source closed")
)
