// Package dialog provides native message dialogs.
package dialog

import (
	"github.com/ncruces/zenity"

	"quran-reminder/internal/i18n"
)

// ShowAbout shows the about dialog.
func ShowAbout() {
	zenity.Info(i18n.T("about_text"), zenity.Title(i18n.T("about_title")))
}
