package popup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quran-reminder/internal/i18n"
)

func TestMeasureGrowsWithContent(t *testing.T) {
	both := Content{ShowArabic: true, ShowTranslation: true}
	arabicOnly := Content{ShowArabic: true}
	persianOnly := Content{ShowTranslation: true}

	wb, hb := measure(both)
	wa, ha := measure(arabicOnly)
	wp, hp := measure(persianOnly)

	assert.Equal(t, wb, wa)
	assert.Equal(t, wb, wp)
	assert.Greater(t, hb, ha)
	assert.Equal(t, ha, hp)
}

func TestProgressClamps(t *testing.T) {
	assert.Equal(t, float32(0), progress(-time.Second, time.Second))
	assert.Equal(t, float32(1), progress(2*time.Second, time.Second))
	assert.InDelta(t, 0.5, progress(500*time.Millisecond, time.Second), 0.001)
}

func TestEasingEndpoints(t *testing.T) {
	assert.InDelta(t, 0, easeOutCubic(0), 0.001)
	assert.InDelta(t, 1, easeOutCubic(1), 0.001)
	assert.InDelta(t, 0, easeInOutQuad(0), 0.001)
	assert.InDelta(t, 1, easeInOutQuad(1), 0.001)
}

func TestFadeScalesAlpha(t *testing.T) {
	th := Light()

	full := fade(th.Text, 1)
	assert.Equal(t, th.Text.A, full.A)

	half := fade(th.Text, 0.5)
	assert.Equal(t, uint8(float32(th.Text.A)*0.5), half.A)
	assert.Equal(t, th.Text.R, half.R)

	gone := fade(th.Text, 0)
	assert.Equal(t, uint8(0), gone.A)
}

func TestAutoCloseSignalsStopChannel(t *testing.T) {
	w := New()
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.shownAt = time.Now().Add(-time.Minute)
	w.deadline = w.shownAt.Add(time.Second)
	w.phase = phaseVisible
	stopCh := w.stopCh

	// Deadline passed: the popup starts fading out
	assert.False(t, w.checkDeadline())
	assert.Equal(t, phaseOut, w.phase)

	// Fade-out finished: the window must be told to close
	w.outStart = time.Now().Add(-fadeOutDuration)
	assert.True(t, w.checkDeadline())

	w.closeAsync(stopCh)
	select {
	case <-stopCh:
	default:
		t.Fatal("stop channel not closed")
	}
	assert.False(t, w.IsVisible())

	// A duplicate signal and a late Hide are no-ops
	w.closeAsync(stopCh)
	w.Hide()
}

func TestWindowTitleDistinctFromSettingsWindow(t *testing.T) {
	settingsTitle := i18n.T("app_name") + " - " + i18n.T("settings_title")
	assert.NotContains(t, settingsTitle, windowTitle)
}

func TestThemesDiffer(t *testing.T) {
	light := Light()
	dark := Dark()
	assert.NotEqual(t, light.BG, dark.BG)
	// Both share the green accent
	assert.Equal(t, light.Accent, dark.Accent)
}
