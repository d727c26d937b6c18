package config

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/lixenwraith/turngrid/component"
	"github.com/lixenwraith/turngrid/core"
	"github.com/lixenwraith/turngrid/engine"
)

// Build creates the map and populates a fresh world from the config
// Entities are created in config order, which fixes their draw order
func (c *Config) Build() (*core.Map, *engine.World, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	fill, _ := core.ParseTile(c.Map.Fill)
	m := core.NewMap(c.Map.Width, c.Map.Height, fill)
	for _, w := range c.Map.Walls {
		m.Set(w[0], w[1], core.TileWall)
	}

	world := engine.NewWorld()
	cs := world.Components
	for _, ec := range c.Entities {
		r, _ := utf8.DecodeRuneInString(ec.Glyph)

		eb := world.NewEntity()
		engine.With(eb, cs.Actor, component.ActorComponent{HP: ec.HP})
		engine.With(eb, cs.Position, component.PositionComponent{X: ec.X, Y: ec.Y})
		engine.With(eb, cs.Blockable, component.BlockableComponent{Blocking: ec.Blocking})
		engine.With(eb, cs.Glyph, component.GlyphComponent{Rune: r})
		if ec.Player {
			engine.With(eb, cs.Player, component.PlayerComponent{})
		}
		eb.Build()
	}

	if err := world.Validate(m); err != nil {
		return nil, nil, errors.Wrap(err, "build world")
	}
	return m, world, nil
}
