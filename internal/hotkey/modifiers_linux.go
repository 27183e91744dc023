//go:build linux

package hotkey

import (
	"golang.design/x/hotkey"

	"quran-reminder/internal/config"
)

// modifierMap maps config.Modifier -> hotkey.Modifier on Linux
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCtrl:  hotkey.ModCtrl,
	config.ModShift: hotkey.ModShift,
	config.ModAlt:   hotkey.Mod1, // Alt = Mod1 on X11
	config.ModSuper: hotkey.Mod4, // Super/Win = Mod4 on X11
}
