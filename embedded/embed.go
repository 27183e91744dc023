// Package embedded contains the application's embedded resources.
package embedded

import (
	_ "embed"
)

// IconIdle - tray icon while idle (grey).
//
//go:embed icon_idle.png
var IconIdle []byte

// IconFetching - tray icon while fetching an ayah (green).
//
//go:embed icon_fetching.png
var IconFetching []byte

// IconPaused - tray icon while reminders are paused (orange).
//
//go:embed icon_paused.png
var IconPaused []byte
