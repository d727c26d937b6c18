package config

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/lixenwraith/turngrid/core"
)

// Validate checks the config without building anything
// Player count and entity placement are checked here so errors name the config entry
func (c *Config) Validate() error {
	m := c.Map
	if m.Width <= 0 || m.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "map size %dx%d", m.Width, m.Height)
	}
	if _, ok := core.ParseTile(m.Fill); !ok {
		return errors.Wrapf(ErrInvalidConfig, "map fill %q", m.Fill)
	}
	for i, w := range m.Walls {
		if len(w) != 2 {
			return errors.Wrapf(ErrInvalidConfig, "wall %d: want [x, y], got %v", i, w)
		}
		if w[0] < 0 || w[0] >= m.Width || w[1] < 0 || w[1] >= m.Height {
			return errors.Wrapf(ErrInvalidConfig, "wall %d at (%d,%d) outside map", i, w[0], w[1])
		}
	}

	players := 0
	for i, e := range c.Entities {
		if utf8.RuneCountInString(e.Glyph) != 1 {
			return errors.Wrapf(ErrInvalidConfig, "entity %d: glyph %q must be one character", i, e.Glyph)
		}
		if e.X < 0 || e.X >= m.Width || e.Y < 0 || e.Y >= m.Height {
			return errors.Wrapf(ErrInvalidConfig, "entity %d at (%d,%d) outside map", i, e.X, e.Y)
		}
		if e.Player {
			players++
		}
	}
	if players != 1 {
		return errors.Wrapf(ErrInvalidConfig, "want exactly one player entity, got %d", players)
	}

	if _, err := c.KeyTable(); err != nil {
		return err
	}

	if c.Log.Debug && c.Log.Dir == "" {
		return errors.Wrap(ErrInvalidConfig, "log dir required when debug is on")
	}
	return nil
}
