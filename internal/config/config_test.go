package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "config.json"))

	assert.Equal(t, 60, c.IntervalMinutes())
	assert.Equal(t, 250, c.MaxLength())
	assert.True(t, c.AutoStart())
	assert.Equal(t, LangBoth, c.Language())
	assert.Equal(t, 25, c.NotificationDuration())
	assert.Equal(t, ThemeLight, c.Theme())
	assert.True(t, c.NotificationsEnabled())
	assert.False(t, c.Recitation())
	assert.Equal(t, DefaultEdition, c.Edition())
	assert.Equal(t, "ctrl+shift+q", c.Hotkey().String())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := NewAt(path)
	c.SetIntervalMinutes(15)
	c.SetMaxLength(300)
	c.SetLanguage(LangArabic)
	c.SetNotificationDuration(10)
	c.SetTheme(ThemeDark)
	c.SetAutoStart(false)
	c.SetRecitation(true)
	c.SetUILanguage("fa")

	reloaded := NewAt(path)
	assert.Equal(t, 15, reloaded.IntervalMinutes())
	assert.Equal(t, 300, reloaded.MaxLength())
	assert.Equal(t, LangArabic, reloaded.Language())
	assert.Equal(t, 10, reloaded.NotificationDuration())
	assert.Equal(t, ThemeDark, reloaded.Theme())
	assert.False(t, reloaded.AutoStart())
	assert.True(t, reloaded.Recitation())
	assert.Equal(t, "fa", reloaded.UILanguage())
}

func TestCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	c := NewAt(path)
	assert.Equal(t, 60, c.IntervalMinutes())
	assert.Equal(t, LangBoth, c.Language())
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"language": "arabic"}`), 0644))

	c := NewAt(path)
	assert.Equal(t, LangArabic, c.Language())

	// Everything the file does not mention keeps its default
	assert.Equal(t, 60, c.IntervalMinutes())
	assert.Equal(t, 250, c.MaxLength())
	assert.Equal(t, 25, c.NotificationDuration())
	assert.True(t, c.AutoStart())
	assert.True(t, c.NotificationsEnabled())
	assert.Equal(t, DefaultEdition, c.Edition())
	assert.Equal(t, "ctrl+shift+q", c.Hotkey().String())
}

func TestExplicitFalseSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := NewAt(path)
	c.SetNotifications(false)
	c.SetAutoStart(false)

	reloaded := NewAt(path)
	assert.False(t, reloaded.NotificationsEnabled())
	assert.False(t, reloaded.AutoStart())
}

func TestClampOnSet(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "config.json"))

	c.SetIntervalMinutes(0)
	assert.Equal(t, MinIntervalMinutes, c.IntervalMinutes())

	c.SetIntervalMinutes(100000)
	assert.Equal(t, MaxIntervalMinutes, c.IntervalMinutes())

	c.SetMaxLength(10)
	assert.Equal(t, MinMaxLength, c.MaxLength())

	c.SetNotificationDuration(1000)
	assert.Equal(t, MaxDuration, c.NotificationDuration())
}

func TestClampOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(map[string]any{
		"interval_minutes":      0,
		"max_length":            9999,
		"notification_duration": 1,
		"language":              "klingon",
		"theme":                 "sepia",
		"notifications":         true,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	c := NewAt(path)
	assert.Equal(t, MinIntervalMinutes, c.IntervalMinutes())
	assert.Equal(t, MaxMaxLength, c.MaxLength())
	assert.Equal(t, MinDuration, c.NotificationDuration())
	assert.Equal(t, LangBoth, c.Language())
	assert.Equal(t, ThemeLight, c.Theme())
}

func TestToggleNotifications(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "config.json"))

	assert.False(t, c.ToggleNotifications())
	assert.False(t, c.NotificationsEnabled())
	assert.True(t, c.ToggleNotifications())
}

func TestHotkeyString(t *testing.T) {
	tests := []struct {
		name string
		hk   HotkeyConfig
		want string
	}{
		{"modifiers and key", HotkeyConfig{Modifiers: []Modifier{ModCtrl, ModShift}, Key: KeyQ}, "ctrl+shift+q"},
		{"single modifier", HotkeyConfig{Modifiers: []Modifier{ModAlt}, Key: KeySpace}, "alt+space"},
		{"key only", HotkeyConfig{Key: KeyF1}, "f1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hk.String())
		})
	}
}
