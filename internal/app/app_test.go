package app

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchGuard(t *testing.T) {
	a := &App{}

	assert.True(t, a.tryBeginFetch())
	assert.False(t, a.tryBeginFetch())

	a.endFetch()
	assert.True(t, a.tryBeginFetch())
}

func TestOverlappingTriggersRunOneFetch(t *testing.T) {
	a := &App{}

	var started atomic.Int32
	release := make(chan struct{})

	// Same shape as fetchAndShow: claim the guard, then work in the
	// background until released.
	trigger := func() {
		if !a.tryBeginFetch() {
			return
		}
		go func() {
			defer a.endFetch()
			started.Add(1)
			<-release
		}()
	}

	trigger()
	trigger()
	trigger()

	assert.Eventually(t, func() bool { return started.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, a.tryBeginFetch(), "guard must stay held while the fetch runs")

	close(release)
	assert.Eventually(t, a.tryBeginFetch, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), started.Load())
}
