package audio

import "time"

// AudioConfig holds step sound settings
type AudioConfig struct {
	Enabled      bool
	SampleRate   int
	StepFreq     float64       // Hz
	StepDuration time.Duration // Length of one step tick
}

// DefaultAudioConfig returns disabled audio with a short 880Hz tick
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		SampleRate:   44100,
		StepFreq:     880,
		StepDuration: 30 * time.Millisecond,
	}
}
