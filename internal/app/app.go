// Package app contains the main application logic.
package app

import (
	"context"
	"log"
	"sync"
	"time"

	"quran-reminder/internal/audio"
	"quran-reminder/internal/config"
	"quran-reminder/internal/dialog"
	"quran-reminder/internal/hotkey"
	"quran-reminder/internal/i18n"
	"quran-reminder/internal/notify"
	"quran-reminder/internal/popup"
	"quran-reminder/internal/quran"
	"quran-reminder/internal/scheduler"
	"quran-reminder/internal/settings"
	"quran-reminder/internal/tray"
)

// fetchTimeout bounds a single fetch-and-show cycle.
const fetchTimeout = 2 * time.Minute

// App represents the main application.
type App struct {
	mu          sync.Mutex
	config      *config.Config
	client      *quran.Client
	scheduler   *scheduler.Scheduler
	player      *audio.Player
	notifier    *notify.Notifier
	tray        *tray.Tray
	hotkey      *hotkey.Handler
	popupWin    *popup.Window
	settingsWin *settings.Window
	fetching    bool // guard against overlapping fetches
}

// New creates a new application.
func New() *App {
	cfg := config.New()

	// Initialize the UI language from config
	if uiLang := cfg.UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	app := &App{
		config:   cfg,
		client:   quran.NewClient(cfg.Edition()),
		player:   audio.New(),
		notifier: notify.New(cfg.NotificationsEnabled()),
		popupWin: popup.New(),
	}

	app.scheduler = scheduler.New(app.fetchAndShow)

	// Global hotkey shows an ayah on demand
	app.hotkey = hotkey.New(app.fetchAndShow)

	app.settingsWin = settings.New(cfg)
	app.settingsWin.OnApply(func() {
		// Restart the timer with the new interval if reminders are running
		if app.scheduler.IsRunning() {
			app.scheduler.Start(time.Duration(app.config.IntervalMinutes()) * time.Minute)
		}
		// Re-register the hotkey in case it changed
		if err := app.hotkey.Register(app.config.Hotkey()); err != nil {
			log.Printf("Hotkey registration failed: %v", err)
		}
	})
	app.settingsWin.OnUILangChange(func(lang i18n.Language) {
		app.tray.RefreshUI()
	})

	app.tray = tray.New(tray.Callbacks{
		OnShowNow: app.fetchAndShow,
		OnStart: func() {
			app.startReminders()
		},
		OnPause: func() {
			app.stopReminders()
		},
		OnNotificationsToggle: func() bool {
			enabled := app.config.ToggleNotifications()
			app.notifier.SetEnabled(enabled)
			return enabled
		},
		OnSettingsClick: func() {
			app.settingsWin.Show()
		},
		OnAboutClick: func() {
			dialog.ShowAbout()
		},
		OnQuit: func() {
			app.Close()
		},
	}, cfg.NotificationsEnabled())

	return app
}

// Run starts the application. Blocks until the tray exits.
func (a *App) Run() {
	a.tray.Run(func() {
		if err := a.hotkey.Register(a.config.Hotkey()); err != nil {
			log.Printf("Hotkey registration failed: %v", err)
		}

		if a.config.AutoStart() {
			a.startRemindersSilent()
			a.tray.SetRunning(true)
		} else {
			a.tray.SetState(tray.StatePaused)
			a.tray.SetRunning(false)
		}
	})
}

// startReminders starts the periodic timer and announces it.
func (a *App) startReminders() {
	a.startRemindersSilent()
	a.tray.SetRunning(true)
	a.tray.SetState(tray.StateIdle)
	a.notifier.Started(a.config.IntervalMinutes())
}

func (a *App) startRemindersSilent() {
	a.scheduler.Start(time.Duration(a.config.IntervalMinutes()) * time.Minute)
}

// stopReminders stops the periodic timer and announces it.
func (a *App) stopReminders() {
	a.scheduler.Stop()
	a.tray.SetRunning(false)
	a.tray.SetState(tray.StatePaused)
	a.notifier.Paused()
}

// tryBeginFetch marks a fetch as in flight. It returns false when one
// is already running, so overlapping triggers collapse into a single
// fetch.
func (a *App) tryBeginFetch() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fetching {
		return false
	}
	a.fetching = true
	return true
}

func (a *App) endFetch() {
	a.mu.Lock()
	a.fetching = false
	a.mu.Unlock()
}

// fetchAndShow fetches a random ayah and displays the popup.
// Errors stay silent: the reminder simply skips a beat.
func (a *App) fetchAndShow() {
	if !a.tryBeginFetch() {
		return
	}

	go func() {
		defer a.endFetch()

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if !a.client.Online(ctx) {
			log.Printf("Fetch skipped: offline")
			return
		}

		a.tray.SetState(tray.StateFetching)
		defer a.restoreTrayState()

		ayah, err := a.client.FetchRandom(ctx, a.config.MaxLength())
		if err != nil {
			log.Printf("Fetch failed: %v", err)
			return
		}

		a.showAyah(ayah)
	}()
}

// showAyah displays the popup for the configured duration and optionally
// plays the recitation.
func (a *App) showAyah(ayah quran.Ayah) {
	lang := a.config.Language()
	content := popup.Content{
		Arabic:          ayah.Arabic,
		Translation:     ayah.Translation,
		Reference:       ayah.Reference(),
		ShowArabic:      lang != config.LangPersian,
		ShowTranslation: lang != config.LangArabic,
	}

	theme := popup.Light()
	if a.config.Theme() == config.ThemeDark {
		theme = popup.Dark()
	}

	duration := time.Duration(a.config.NotificationDuration()) * time.Second
	a.popupWin.Show(content, theme, duration)

	if a.config.Recitation() {
		a.player.Play(context.Background(), ayah.AudioURL())
	}
}

// restoreTrayState puts the tray back to idle or paused after a fetch.
func (a *App) restoreTrayState() {
	if a.scheduler.IsRunning() {
		a.tray.SetState(tray.StateIdle)
	} else {
		a.tray.SetState(tray.StatePaused)
	}
}

// Close releases application resources.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.hotkey != nil {
		a.hotkey.Unregister()
	}

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	if a.player != nil {
		a.player.Close()
	}

	if a.popupWin != nil {
		a.popupWin.Hide()
	}

	if a.settingsWin != nil {
		a.settingsWin.Hide()
	}
}
