package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quran-reminder/internal/config"
)

func TestHotkeyDisplay(t *testing.T) {
	tests := []struct {
		name string
		hk   config.HotkeyConfig
		want string
	}{
		{
			name: "ctrl shift q",
			hk: config.HotkeyConfig{
				Modifiers: []config.Modifier{config.ModCtrl, config.ModShift},
				Key:       config.KeyQ,
			},
			want: "Ctrl + Shift + Q",
		},
		{
			name: "super space",
			hk: config.HotkeyConfig{
				Modifiers: []config.Modifier{config.ModSuper},
				Key:       config.KeySpace,
			},
			want: "Super + Space",
		},
		{
			name: "alt return",
			hk: config.HotkeyConfig{
				Modifiers: []config.Modifier{config.ModAlt},
				Key:       config.KeyReturn,
			},
			want: "Alt + Enter",
		},
		{
			name: "function key",
			hk: config.HotkeyConfig{
				Modifiers: []config.Modifier{config.ModCtrl},
				Key:       config.KeyF2,
			},
			want: "Ctrl + F2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hotkeyDisplay(tt.hk))
		})
	}
}

func TestStepForScalesWithInterval(t *testing.T) {
	assert.Equal(t, 5, stepFor(1))
	assert.Equal(t, 5, stepFor(25))
	assert.Equal(t, 15, stepFor(60))
	assert.Equal(t, 30, stepFor(240))
}
