package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Player plays short feedback sounds through the system speaker
// A disabled or failed Player is silent; every method is safe on it
type Player struct {
	config     *AudioConfig
	sampleRate beep.SampleRate
	started    bool
}

// NewPlayer creates a Player and opens the speaker when audio is enabled
// On speaker failure the returned Player is silent and the error is reported for logging
func NewPlayer(cfg *AudioConfig) (*Player, error) {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config:     cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
	}
	if !cfg.Enabled {
		return p, nil
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return p, errors.Wrap(err, "speaker init")
	}
	p.started = true
	return p, nil
}

// Enabled reports whether sounds will actually play
func (p *Player) Enabled() bool {
	return p != nil && p.started
}

// Step plays the movement tick
func (p *Player) Step() {
	if !p.Enabled() {
		return
	}
	sine, err := generators.SineTone(p.sampleRate, p.config.StepFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(p.sampleRate.N(p.config.StepDuration), sine))
}

// Close releases the speaker
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Close()
	p.started = false
}
