package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartAndStop(t *testing.T) {
	var ticks atomic.Int32
	s := New(func() { ticks.Add(1) })

	assert.False(t, s.IsRunning())

	s.Start(10 * time.Millisecond)
	assert.True(t, s.IsRunning())

	assert.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	assert.False(t, s.IsRunning())

	// No more ticks after stop settles
	time.Sleep(20 * time.Millisecond)
	n := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, ticks.Load())
}

func TestRestartReplacesInterval(t *testing.T) {
	var ticks atomic.Int32
	s := New(func() { ticks.Add(1) })
	defer s.Stop()

	s.Start(time.Hour)
	s.Start(10 * time.Millisecond)

	assert.Eventually(t, func() bool {
		return ticks.Load() >= 1
	}, time.Second, 5*time.Millisecond)
}

func TestStopWhenNotRunning(t *testing.T) {
	s := New(nil)
	s.Stop() // must not panic
	assert.False(t, s.IsRunning())
}
