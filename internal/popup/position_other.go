//go:build !linux

package popup

// positionWindow is a stub for non-Linux platforms. Window managers on
// Windows/macOS place undecorated windows differently and need native calls.
func positionWindow(windowTitle string, width, height int) {
}
