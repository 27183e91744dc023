package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The notifications checkbox is created from notifyEnabled in onReady,
// so the persisted setting must survive construction.
func TestNewSeedsNotificationState(t *testing.T) {
	assert.True(t, New(Callbacks{}, true).notifyEnabled)
	assert.False(t, New(Callbacks{}, false).notifyEnabled)
}
