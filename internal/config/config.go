// Package config provides application configuration persisted to a file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// DisplayLanguage selects which verse texts the popup shows.
type DisplayLanguage string

const (
	LangBoth    DisplayLanguage = "both"
	LangArabic  DisplayLanguage = "arabic"
	LangPersian DisplayLanguage = "persian"
)

// Theme selects the popup color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Value ranges for the numeric settings.
const (
	MinIntervalMinutes = 1
	MaxIntervalMinutes = 1440
	MinMaxLength       = 100
	MaxMaxLength       = 500
	MinDuration        = 5
	MaxDuration        = 60
)

// DefaultEdition is the translation edition requested from the API.
const DefaultEdition = "fa.ansarian"

// Modifier represents a hotkey modifier.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key represents a hotkey key.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyQ      Key = "q"
	KeyA      Key = "a"
	KeyS      Key = "s"
	KeyD      Key = "d"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
)

// HotkeyConfig holds the show-now hotkey settings.
type HotkeyConfig struct {
	Modifiers []Modifier `json:"modifiers"`
	Key       Key        `json:"key"`
}

// String returns the human-readable combination, e.g. "ctrl+shift+q".
func (h HotkeyConfig) String() string {
	result := ""
	for _, m := range h.Modifiers {
		if result != "" {
			result += "+"
		}
		result += string(m)
	}
	if result != "" {
		result += "+"
	}
	result += string(h.Key)
	return result
}

// configData is the serialized form.
type configData struct {
	IntervalMinutes      int             `json:"interval_minutes"`
	MaxLength            int             `json:"max_length"`
	AutoStart            bool            `json:"auto_start"`
	Language             DisplayLanguage `json:"language"`
	NotificationDuration int             `json:"notification_duration"`
	Theme                Theme           `json:"theme"`
	Notifications        bool            `json:"notifications"`
	Recitation           bool            `json:"recitation"`
	Edition              string          `json:"edition,omitempty"`
	Hotkey               HotkeyConfig    `json:"hotkey"`
	UILanguage           string          `json:"ui_language,omitempty"`
}

// Config holds the application settings.
type Config struct {
	mu                   sync.RWMutex
	intervalMinutes      int
	maxLength            int
	autoStart            bool
	language             DisplayLanguage
	notificationDuration int
	theme                Theme
	notifications        bool
	recitation           bool
	edition              string
	hotkey               HotkeyConfig
	uiLanguage           string
	configPath           string
}

// New creates a configuration, loading from file or using defaults.
func New() *Config {
	c := defaults()

	// Config file lives next to the executable
	execPath, err := os.Executable()
	if err == nil {
		execPath, err = filepath.EvalSymlinks(execPath)
		if err == nil {
			execDir := filepath.Dir(execPath)
			c.configPath = filepath.Join(execDir, "config.json")
		}
	}

	c.load()

	return c
}

// NewAt creates a configuration backed by the given file path.
func NewAt(path string) *Config {
	c := defaults()
	c.configPath = path
	c.load()
	return c
}

func defaults() *Config {
	return &Config{
		intervalMinutes:      60,
		maxLength:            250,
		autoStart:            true,
		language:             LangBoth,
		notificationDuration: 25,
		theme:                ThemeLight,
		notifications:        true,
		recitation:           false,
		edition:              DefaultEdition,
		hotkey: HotkeyConfig{
			Modifiers: []Modifier{ModCtrl, ModShift},
			Key:       KeyQ,
		},
		uiLanguage: "en",
	}
}

// load reads the configuration from file. Missing or corrupt files
// leave the defaults in place.
func (c *Config) load() {
	if c.configPath == "" {
		return
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return
	}

	// Pre-fill with the current values so fields absent from the file
	// keep their defaults instead of collapsing to zero.
	cfg := configData{
		IntervalMinutes:      c.intervalMinutes,
		MaxLength:            c.maxLength,
		AutoStart:            c.autoStart,
		Language:             c.language,
		NotificationDuration: c.notificationDuration,
		Theme:                c.theme,
		Notifications:        c.notifications,
		Recitation:           c.recitation,
		Edition:              c.edition,
		Hotkey:               c.hotkey,
		UILanguage:           c.uiLanguage,
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return
	}

	c.intervalMinutes = clamp(cfg.IntervalMinutes, MinIntervalMinutes, MaxIntervalMinutes)
	c.maxLength = clamp(cfg.MaxLength, MinMaxLength, MaxMaxLength)
	c.autoStart = cfg.AutoStart
	if cfg.Language != "" {
		c.language = normalizeLanguage(cfg.Language)
	}
	c.notificationDuration = clamp(cfg.NotificationDuration, MinDuration, MaxDuration)
	if cfg.Theme == ThemeDark {
		c.theme = ThemeDark
	} else {
		c.theme = ThemeLight
	}
	c.notifications = cfg.Notifications
	c.recitation = cfg.Recitation
	if cfg.Edition != "" {
		c.edition = cfg.Edition
	}
	if cfg.Hotkey.Key != "" {
		c.hotkey = cfg.Hotkey
	}
	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
}

// save writes the configuration to file.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	cfg := configData{
		IntervalMinutes:      c.intervalMinutes,
		MaxLength:            c.maxLength,
		AutoStart:            c.autoStart,
		Language:             c.language,
		NotificationDuration: c.notificationDuration,
		Theme:                c.theme,
		Notifications:        c.notifications,
		Recitation:           c.recitation,
		Edition:              c.edition,
		Hotkey:               c.hotkey,
		UILanguage:           c.uiLanguage,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}

	os.WriteFile(c.configPath, data, 0644)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalizeLanguage(l DisplayLanguage) DisplayLanguage {
	switch l {
	case LangArabic, LangPersian:
		return l
	default:
		return LangBoth
	}
}

// IntervalMinutes returns the reminder interval in minutes.
func (c *Config) IntervalMinutes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.intervalMinutes
}

// SetIntervalMinutes sets the reminder interval in minutes.
func (c *Config) SetIntervalMinutes(m int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.intervalMinutes = clamp(m, MinIntervalMinutes, MaxIntervalMinutes)
	c.save()
}

// MaxLength returns the display message length bound in runes.
func (c *Config) MaxLength() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxLength
}

// SetMaxLength sets the display message length bound.
func (c *Config) SetMaxLength(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxLength = clamp(n, MinMaxLength, MaxMaxLength)
	c.save()
}

// AutoStart reports whether reminders start automatically on launch.
func (c *Config) AutoStart() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.autoStart
}

// SetAutoStart sets whether reminders start automatically on launch.
func (c *Config) SetAutoStart(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoStart = enabled
	c.save()
}

// Language returns the verse display language.
func (c *Config) Language() DisplayLanguage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// SetLanguage sets the verse display language.
func (c *Config) SetLanguage(lang DisplayLanguage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = normalizeLanguage(lang)
	c.save()
}

// NotificationDuration returns how long the popup stays on screen, in seconds.
func (c *Config) NotificationDuration() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notificationDuration
}

// SetNotificationDuration sets how long the popup stays on screen, in seconds.
func (c *Config) SetNotificationDuration(s int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notificationDuration = clamp(s, MinDuration, MaxDuration)
	c.save()
}

// Theme returns the popup color scheme.
func (c *Config) Theme() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.theme
}

// SetTheme sets the popup color scheme.
func (c *Config) SetTheme(t Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t == ThemeDark {
		c.theme = ThemeDark
	} else {
		c.theme = ThemeLight
	}
	c.save()
}

// SetNotifications enables or disables system notifications.
func (c *Config) SetNotifications(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = enabled
	c.save()
}

// ToggleNotifications flips the notifications setting and returns the new value.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// NotificationsEnabled reports whether system notifications are enabled.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// Recitation reports whether recitation audio playback is enabled.
func (c *Config) Recitation() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recitation
}

// SetRecitation enables or disables recitation audio playback.
func (c *Config) SetRecitation(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recitation = enabled
	c.save()
}

// Edition returns the translation edition identifier.
func (c *Config) Edition() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.edition
}

// SetEdition sets the translation edition identifier.
func (c *Config) SetEdition(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id == "" {
		id = DefaultEdition
	}
	c.edition = id
	c.save()
}

// Hotkey returns the show-now hotkey.
func (c *Config) Hotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// SetHotkey sets the show-now hotkey.
func (c *Config) SetHotkey(hk HotkeyConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hotkey = hk
	c.save()
}

// UILanguage returns the interface language.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage sets the interface language.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}

// AvailableModifiers returns the selectable hotkey modifiers.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCtrl, ModShift, ModAlt, ModSuper}
}
