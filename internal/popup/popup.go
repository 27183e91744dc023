// Package popup provides the floating ayah notification window.
package popup

import (
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
)

// phase is the animation phase of the window.
type phase int

const (
	phaseIn      phase = iota // slide/fade in
	phaseVisible              // steady
	phaseOut                  // fade out before close
)

const (
	slideInDuration = 400 * time.Millisecond
	fadeOutDuration = 400 * time.Millisecond
	refreshRate     = 33 * time.Millisecond // ~30fps while animating
)

// Content is the verse text shown by the popup.
type Content struct {
	Arabic          string
	Translation     string
	Reference       string
	ShowArabic      bool
	ShowTranslation bool
}

// Window manages the floating notification.
type Window struct {
	mu      sync.Mutex
	content Content
	theme   Theme

	shownAt  time.Time
	deadline time.Time
	phase    phase
	outStart time.Time

	closeBtn widget.Clickable

	width  int
	height int

	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a popup window.
func New() *Window {
	return &Window{theme: Light()}
}

// windowTitle must not be a regexp match for any other window of the
// app (the settings window is titled "Quran Reminder - Settings"), or
// positionWindow would move the wrong one.
const windowTitle = "Quran Reminder Popup"

// Show displays the given content for the given duration (non-blocking).
// If the popup is already visible its content is replaced and the
// close timer restarts.
func (w *Window) Show(content Content, theme Theme, duration time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.content = content
	w.theme = theme
	w.shownAt = time.Now()
	w.deadline = w.shownAt.Add(duration)
	w.phase = phaseIn
	w.width, w.height = measure(content)

	if w.running {
		if w.window != nil {
			w.window.Option(app.Size(unit.Dp(w.width), unit.Dp(w.height)))
			w.window.Invalidate()
		}
		return
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop()
}

// Hide closes the popup immediately, skipping the fade-out.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	// Wait for the window to close
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// IsVisible reports whether the popup is currently shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// beginClose starts the fade-out animation. Idempotent.
func (w *Window) beginClose() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase == phaseOut {
		return
	}
	w.phase = phaseOut
	w.outStart = time.Now()
	if w.window != nil {
		w.window.Invalidate()
	}
}

// measure returns the window size in dp for the given content.
func measure(c Content) (width, height int) {
	width = 360
	height = 120
	if c.ShowArabic {
		height += 50
	}
	if c.ShowTranslation {
		height += 50
	}
	return width, height
}

func (w *Window) runEventLoop() {
	// Capture the channels of this run: the fields are reset by Hide or
	// closeAsync, possibly while the goroutines below are still selecting.
	w.mu.Lock()
	width, height := w.width, w.height
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.mu.Unlock()

	defer close(doneCh)

	win := new(app.Window)
	win.Option(
		app.Title(windowTitle),
		app.Size(unit.Dp(width), unit.Dp(height)),
		app.Decorated(false), // Borderless
	)

	w.mu.Lock()
	w.window = win
	w.mu.Unlock()

	var ops op.Ops

	// Position window after it appears
	go positionWindow(windowTitle, width, height)

	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	// Invalidation and close goroutine
	go func() {
		for {
			select {
			case <-stopCh:
				win.Perform(system.ActionClose)
				return
			case <-ticker.C:
				if w.checkDeadline() {
					w.closeAsync(stopCh)
					continue
				}
				win.Invalidate()
			}
		}
	}()

	for {
		switch e := win.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.frame(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// checkDeadline advances the animation phase from the ticker goroutine.
// It reports whether the fade-out finished and the window should close.
func (w *Window) checkDeadline() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	var startOut, finish bool
	switch w.phase {
	case phaseIn:
		if now.Sub(w.shownAt) >= slideInDuration {
			w.phase = phaseVisible
		}
		if now.After(w.deadline) {
			startOut = true
		}
	case phaseVisible:
		if now.After(w.deadline) {
			startOut = true
		}
	case phaseOut:
		if now.Sub(w.outStart) >= fadeOutDuration {
			finish = true
		}
	}
	if startOut {
		w.phase = phaseOut
		w.outStart = now
	}
	return finish
}

// closeAsync tears down the window from one of its own goroutines, where
// Hide would deadlock waiting on doneCh. No-op when another Show or Hide
// already replaced the stop channel.
func (w *Window) closeAsync(stopCh chan struct{}) {
	w.mu.Lock()
	if w.stopCh != stopCh {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.stopCh = nil
	w.mu.Unlock()

	close(stopCh)
}

// snapshot returns the state needed to draw one frame.
func (w *Window) snapshot() (Content, Theme, phase, time.Time, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.content, w.theme, w.phase, w.shownAt, w.outStart
}

func (w *Window) frame(gtx layout.Context) {
	// ESC closes the popup
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			go w.Hide()
			return
		}
	}

	if w.closeBtn.Clicked(gtx) {
		w.beginClose()
	}

	content, theme, ph, shownAt, outStart := w.snapshot()

	now := time.Now()
	opacity := float32(1)
	slide := float32(0)
	switch ph {
	case phaseIn:
		t := progress(now.Sub(shownAt), slideInDuration)
		opacity = easeInOutQuad(t)
		slide = 1 - easeOutCubic(t)
	case phaseOut:
		opacity = 1 - easeInOutQuad(progress(now.Sub(outStart), fadeOutDuration))
	}

	w.draw(gtx, content, theme, opacity, slide)
}

// progress maps an elapsed time to [0, 1] over the given duration.
func progress(elapsed, total time.Duration) float32 {
	if elapsed >= total {
		return 1
	}
	if elapsed < 0 {
		return 0
	}
	return float32(elapsed) / float32(total)
}

func easeOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

func easeInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
