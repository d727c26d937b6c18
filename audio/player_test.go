package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer_DisabledIsSilent(t *testing.T) {
	p, err := NewPlayer(DefaultAudioConfig())
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	// Must not touch the speaker
	p.Step()
	p.Close()
}

func TestNewPlayer_NilConfigUsesDefaults(t *testing.T) {
	p, err := NewPlayer(nil)
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.Equal(t, 44100, p.config.SampleRate)
}

func TestPlayer_NilReceiver(t *testing.T) {
	var p *Player
	assert.False(t, p.Enabled())
	p.Step()
	p.Close()
}
