// Package settings provides the Gio-based settings window.
package settings

import (
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"

	"quran-reminder/internal/config"
	"quran-reminder/internal/i18n"
)

// Colors are defined in widgets.go

// Window represents the settings dialog window.
type Window struct {
	mu     sync.Mutex
	config *config.Config

	// Window state
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// UI state - pending values, written to config on apply
	intervalMinutes int
	duration        int
	maxLength       int
	language        config.DisplayLanguage
	theme           config.Theme

	// Widgets - steppers
	intervalDec widget.Clickable
	intervalInc widget.Clickable
	durationDec widget.Clickable
	durationInc widget.Clickable
	maxLenDec   widget.Clickable
	maxLenInc   widget.Clickable

	// Widgets - selectors
	langButtons  map[config.DisplayLanguage]*widget.Clickable
	themeButtons map[config.Theme]*widget.Clickable

	// Widgets - toggles
	autoStart  widget.Bool
	recitation widget.Bool

	// Widgets - UI language
	selectedUILang i18n.Language
	uiLangButtons  map[i18n.Language]*widget.Clickable

	// Widgets - buttons
	applyBtn  widget.Clickable
	cancelBtn widget.Clickable

	// Scroll state
	contentList widget.List

	// Callbacks
	onApply        func()
	onUILangChange func(lang i18n.Language)
}

// New creates a new settings window.
func New(cfg *config.Config) *Window {
	w := &Window{
		config:       cfg,
		langButtons:  make(map[config.DisplayLanguage]*widget.Clickable),
		themeButtons: make(map[config.Theme]*widget.Clickable),
	}

	for _, l := range []config.DisplayLanguage{config.LangBoth, config.LangArabic, config.LangPersian} {
		w.langButtons[l] = new(widget.Clickable)
	}
	for _, t := range []config.Theme{config.ThemeLight, config.ThemeDark} {
		w.themeButtons[t] = new(widget.Clickable)
	}

	w.uiLangButtons = make(map[i18n.Language]*widget.Clickable)
	for _, lang := range i18n.AvailableLanguages() {
		w.uiLangButtons[lang] = new(widget.Clickable)
	}

	w.contentList.Axis = layout.Vertical

	w.reloadFromConfig()

	return w
}

// reloadFromConfig resets the pending UI state to the saved configuration.
func (w *Window) reloadFromConfig() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.intervalMinutes = w.config.IntervalMinutes()
	w.duration = w.config.NotificationDuration()
	w.maxLength = w.config.MaxLength()
	w.language = w.config.Language()
	w.theme = w.config.Theme()
	w.autoStart.Value = w.config.AutoStart()
	w.recitation.Value = w.config.Recitation()
	w.selectedUILang = i18n.GetLanguage()
}

// OnApply sets the callback for when the user saves changes.
func (w *Window) OnApply(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onApply = fn
}

// OnUILangChange sets the callback for when the user changes the UI language.
func (w *Window) OnUILangChange(fn func(lang i18n.Language)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUILangChange = fn
}

// Show displays the settings window (non-blocking).
func (w *Window) Show() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	w.reloadFromConfig()

	go w.runEventLoop()
}

// Hide closes the settings window.
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

	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Window) runEventLoop() {
	defer close(w.doneCh)

	w.window = new(app.Window)
	w.window.Option(
		app.Title(i18n.T("app_name")+" - "+i18n.T("settings_title")),
		app.Size(unit.Dp(420), unit.Dp(560)),
		app.MinSize(unit.Dp(380), unit.Dp(480)),
	)

	var ops op.Ops

	// Invalidation goroutine
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-w.stopCh:
				if w.window != nil {
					w.window.Perform(system.ActionClose)
				}
				return
			case <-ticker.C:
				if w.window != nil {
					w.window.Invalidate()
				}
			}
		}
	}()

	for {
		switch e := w.window.Event().(type) {
		case app.DestroyEvent:
			w.mu.Lock()
			if w.running {
				w.running = false
				if w.stopCh != nil {
					close(w.stopCh)
					w.stopCh = nil
				}
			}
			w.mu.Unlock()
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.handleEvents(gtx)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) handleEvents(gtx layout.Context) {
	// Steppers
	w.handleStepper(gtx, &w.intervalDec, &w.intervalInc, &w.intervalMinutes,
		stepFor(w.intervalMinutes), config.MinIntervalMinutes, config.MaxIntervalMinutes)
	w.handleStepper(gtx, &w.durationDec, &w.durationInc, &w.duration,
		5, config.MinDuration, config.MaxDuration)
	w.handleStepper(gtx, &w.maxLenDec, &w.maxLenInc, &w.maxLength,
		50, config.MinMaxLength, config.MaxMaxLength)

	// Verse language selector
	for lang, btn := range w.langButtons {
		if btn.Clicked(gtx) {
			w.mu.Lock()
			w.language = lang
			w.mu.Unlock()
		}
	}

	// Theme selector
	for theme, btn := range w.themeButtons {
		if btn.Clicked(gtx) {
			w.mu.Lock()
			w.theme = theme
			w.mu.Unlock()
		}
	}

	// UI language buttons - apply immediately
	for lang, btn := range w.uiLangButtons {
		if btn.Clicked(gtx) {
			w.mu.Lock()
			if w.selectedUILang != lang {
				w.selectedUILang = lang
				i18n.SetLanguage(lang)
				w.config.SetUILanguage(string(lang))
				callback := w.onUILangChange
				w.mu.Unlock()
				if callback != nil {
					callback(lang)
				}
			} else {
				w.mu.Unlock()
			}
		}
	}

	if w.cancelBtn.Clicked(gtx) {
		w.Hide()
	}

	if w.applyBtn.Clicked(gtx) {
		w.applySettings()
	}
}

// handleStepper adjusts *value by step on minus/plus clicks, clamped to [lo, hi].
func (w *Window) handleStepper(gtx layout.Context, dec, inc *widget.Clickable, value *int, step, lo, hi int) {
	if dec.Clicked(gtx) {
		w.mu.Lock()
		*value -= step
		if *value < lo {
			*value = lo
		}
		w.mu.Unlock()
	}
	if inc.Clicked(gtx) {
		w.mu.Lock()
		*value += step
		if *value > hi {
			*value = hi
		}
		w.mu.Unlock()
	}
}

// stepFor picks a coarser step for long intervals.
func stepFor(minutes int) int {
	if minutes >= 120 {
		return 30
	}
	if minutes >= 30 {
		return 15
	}
	return 5
}

func (w *Window) applySettings() {
	w.mu.Lock()
	interval := w.intervalMinutes
	duration := w.duration
	maxLength := w.maxLength
	language := w.language
	theme := w.theme
	autoStart := w.autoStart.Value
	recitation := w.recitation.Value
	callback := w.onApply
	w.mu.Unlock()

	w.config.SetIntervalMinutes(interval)
	w.config.SetNotificationDuration(duration)
	w.config.SetMaxLength(maxLength)
	w.config.SetLanguage(language)
	w.config.SetTheme(theme)
	w.config.SetAutoStart(autoStart)
	w.config.SetRecitation(recitation)

	if callback != nil {
		callback()
	}

	w.Hide()
}

func (w *Window) getValues() (interval, duration, maxLength int, language config.DisplayLanguage, theme config.Theme) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.intervalMinutes, w.duration, w.maxLength, w.language, w.theme
}

func (w *Window) getSelectedUILang() i18n.Language {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectedUILang
}
