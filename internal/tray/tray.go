// Package tray provides the system tray icon and menu.
package tray

import (
	"github.com/getlantern/systray"

	"quran-reminder/embedded"
	"quran-reminder/internal/i18n"
)

// State represents the application state shown in the tray.
type State int

const (
	StateIdle State = iota
	StateFetching
	StatePaused
)

// Callbacks holds the menu event handlers.
type Callbacks struct {
	OnShowNow             func()
	OnStart               func()
	OnPause               func()
	OnNotificationsToggle func() bool
	OnSettingsClick       func()
	OnAboutClick          func()
	OnQuit                func()
}

// Tray manages the system tray icon.
type Tray struct {
	callbacks     Callbacks
	notifyEnabled bool // initial state of the notifications checkbox

	status     *systray.MenuItem
	showNowBtn *systray.MenuItem
	startBtn   *systray.MenuItem
	pauseBtn   *systray.MenuItem
	notifyOn   *systray.MenuItem
	settings   *systray.MenuItem
	aboutBtn   *systray.MenuItem
	quitBtn    *systray.MenuItem
}

// New creates a new Tray. notificationsEnabled seeds the notifications
// checkbox from the persisted setting.
func New(callbacks Callbacks, notificationsEnabled bool) *Tray {
	return &Tray{
		callbacks:     callbacks,
		notifyEnabled: notificationsEnabled,
	}
}

// Run starts the system tray. Blocks the calling goroutine.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(embedded.IconIdle)
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Status
	t.status = systray.AddMenuItem(i18n.T("tray_ready"), "")
	t.status.Disable()

	systray.AddSeparator()

	// Show now
	t.showNowBtn = systray.AddMenuItem(i18n.T("tray_show_now"), i18n.T("tray_show_now_hint"))

	systray.AddSeparator()

	// Start / pause reminders
	t.startBtn = systray.AddMenuItem(i18n.T("tray_start"), i18n.T("tray_start_hint"))
	t.pauseBtn = systray.AddMenuItem(i18n.T("tray_pause"), i18n.T("tray_pause_hint"))
	t.pauseBtn.Disable()

	// Notifications
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.notifyEnabled)

	// Settings
	t.settings = systray.AddMenuItem(i18n.T("tray_settings"), i18n.T("tray_settings_hint"))

	systray.AddSeparator()

	// About
	t.aboutBtn = systray.AddMenuItem(i18n.T("tray_about"), i18n.T("tray_about_hint"))

	// Quit
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		case <-t.showNowBtn.ClickedCh:
			if t.callbacks.OnShowNow != nil {
				t.callbacks.OnShowNow()
			}

		case <-t.startBtn.ClickedCh:
			if t.callbacks.OnStart != nil {
				t.callbacks.OnStart()
			}

		case <-t.pauseBtn.ClickedCh:
			if t.callbacks.OnPause != nil {
				t.callbacks.OnPause()
			}

		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				enabled := t.callbacks.OnNotificationsToggle()
				if enabled {
					t.notifyOn.Check()
				} else {
					t.notifyOn.Uncheck()
				}
			}

		case <-t.settings.ClickedCh:
			if t.callbacks.OnSettingsClick != nil {
				t.callbacks.OnSettingsClick()
			}

		case <-t.aboutBtn.ClickedCh:
			if t.callbacks.OnAboutClick != nil {
				t.callbacks.OnAboutClick()
			}

		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
		}
	}
}

// SetState updates the icon, tooltip and status line.
func (t *Tray) SetState(state State) {
	switch state {
	case StateIdle:
		systray.SetIcon(embedded.IconIdle)
		systray.SetTooltip(i18n.T("app_name") + " - " + i18n.T("tray_ready"))
		if t.status != nil {
			t.status.SetTitle(i18n.T("tray_ready"))
		}
	case StateFetching:
		systray.SetIcon(embedded.IconFetching)
		systray.SetTooltip(i18n.T("app_name") + " - " + i18n.T("tray_fetching"))
		if t.status != nil {
			t.status.SetTitle(i18n.T("tray_fetching"))
		}
	case StatePaused:
		systray.SetIcon(embedded.IconPaused)
		systray.SetTooltip(i18n.T("app_name") + " - " + i18n.T("tray_paused"))
		if t.status != nil {
			t.status.SetTitle(i18n.T("tray_paused"))
		}
	}
}

// SetRunning flips the start/pause menu items to match the scheduler state.
func (t *Tray) SetRunning(running bool) {
	if t.startBtn == nil || t.pauseBtn == nil {
		return
	}
	if running {
		t.startBtn.Disable()
		t.pauseBtn.Enable()
	} else {
		t.startBtn.Enable()
		t.pauseBtn.Disable()
	}
}

func (t *Tray) onExit() {
	// Cleanup on exit
}

// Quit closes the system tray.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI re-applies all menu texts in the current language.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.status != nil {
		t.status.SetTitle(i18n.T("tray_ready"))
	}
	if t.showNowBtn != nil {
		t.showNowBtn.SetTitle(i18n.T("tray_show_now"))
		t.showNowBtn.SetTooltip(i18n.T("tray_show_now_hint"))
	}
	if t.startBtn != nil {
		t.startBtn.SetTitle(i18n.T("tray_start"))
		t.startBtn.SetTooltip(i18n.T("tray_start_hint"))
	}
	if t.pauseBtn != nil {
		t.pauseBtn.SetTitle(i18n.T("tray_pause"))
		t.pauseBtn.SetTooltip(i18n.T("tray_pause_hint"))
	}
	if t.notifyOn != nil {
		t.notifyOn.SetTitle(i18n.T("tray_notifications"))
		t.notifyOn.SetTooltip(i18n.T("tray_notifications_hint"))
	}
	if t.settings != nil {
		t.settings.SetTitle(i18n.T("tray_settings"))
		t.settings.SetTooltip(i18n.T("tray_settings_hint"))
	}
	if t.aboutBtn != nil {
		t.aboutBtn.SetTitle(i18n.T("tray_about"))
		t.aboutBtn.SetTooltip(i18n.T("tray_about_hint"))
	}
	if t.quitBtn != nil {
		t.quitBtn.SetTitle(i18n.T("tray_quit"))
		t.quitBtn.SetTooltip(i18n.T("tray_quit_hint"))
	}
}
