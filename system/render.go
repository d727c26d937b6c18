package system

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/turngrid/core"
	"github.com/lixenwraith/turngrid/engine"
	"github.com/lixenwraith/turngrid/render"
	"github.com/lixenwraith/turngrid/status"
)

// RenderSystem repaints the full map and every renderable entity each turn
type RenderSystem struct {
	world   *engine.World
	gameMap *core.Map
	sink    render.Sink
	logger  *zap.Logger

	// Row buffer reused across frames
	line []rune

	statFrames *atomic.Int64
}

// NewRenderSystem creates a render system drawing into sink
func NewRenderSystem(ctx *engine.GameContext, sink render.Sink) *RenderSystem {
	return &RenderSystem{
		world:      ctx.World,
		gameMap:    ctx.Map,
		sink:       sink,
		logger:     ctx.Logger.Named("render"),
		line:       make([]rune, 0, ctx.Map.Width()),
		statFrames: ctx.Status.Counter(status.KeyFrames),
	}
}

// Render draws terrain row by row, overlays entity glyphs in ascending entity order,
// parks the cursor on the player and flushes the sink
func (s *RenderSystem) Render() error {
	_, playerPos, err := s.world.PlayerPosition()
	if err != nil {
		return err
	}

	s.sink.Clear()

	for y := 0; y < s.gameMap.Height(); y++ {
		s.line = s.line[:0]
		for x := 0; x < s.gameMap.Width(); x++ {
			s.line = append(s.line, s.gameMap.At(x, y).Rune())
		}
		s.sink.Print(0, y, string(s.line))
	}

	// Later entities overdraw earlier ones on a shared cell
	for pos, glyph := range s.world.Renderables() {
		s.sink.Print(pos.X, pos.Y, string(glyph.Rune))
	}

	s.sink.ShowCursor(playerPos.X, playerPos.Y)

	if err := s.sink.Flush(); err != nil {
		return errors.Wrap(err, "flush frame")
	}

	frame := s.statFrames.Add(1)
	if ce := s.logger.Check(zap.DebugLevel, "frame"); ce != nil {
		fields := []zap.Field{zap.Int64("frame", frame), zap.Stringer("player", playerPos)}
		if d, ok := s.sink.(*render.DigestSink); ok {
			fields = append(fields, zap.Uint64("digest", d.Last()))
		}
		ce.Write(fields...)
	}
	return nil
}
