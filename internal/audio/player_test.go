package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDoesNotTouchAudioDevice(t *testing.T) {
	p := New()

	assert.False(t, p.IsPlaying())
	assert.False(t, p.initDone)

	// Stop and Close before any Play must be safe no-ops; in particular
	// Close must not terminate a portaudio that was never initialized.
	p.Stop()
	p.Close()
	assert.False(t, p.initDone)
}

func TestInitFailureIsSticky(t *testing.T) {
	p := New()
	p.initDone = true
	p.initErr = assert.AnError

	assert.ErrorIs(t, p.ensureInit(), assert.AnError)

	// Close must not terminate after a failed initialization
	p.Close()
}
