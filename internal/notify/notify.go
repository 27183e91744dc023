// Package notify provides system notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"quran-reminder/internal/i18n"
)

// Notifier sends system notifications.
type Notifier struct {
	enabled bool
}

// New creates a new Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// SetEnabled turns notifications on or off.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Started announces that periodic reminders are running.
func (n *Notifier) Started(intervalMinutes int) {
	n.notify(i18n.T("notify_started"), fmt.Sprintf(i18n.T("notify_started_hint"), intervalMinutes))
}

// Paused announces that periodic reminders are paused.
func (n *Notifier) Paused() {
	n.notify(i18n.T("notify_paused"), i18n.T("notify_paused_hint"))
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Notification errors are not critical
	_ = beeep.Notify(i18n.T("app_name")+": "+title, message, "")
}
