// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	EN Language = "en"
	FA Language = "fa"
)

var (
	mu      sync.RWMutex
	current = EN // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	EN: {
		// App
		"app_name":    "Quran Reminder",
		"app_tooltip": "Quran Reminder - periodic ayah notifications",

		// Tray menu
		"tray_ready":              "Ready",
		"tray_fetching":           "Fetching ayah...",
		"tray_paused":             "Paused",
		"tray_show_now":           "Show Ayah Now",
		"tray_show_now_hint":      "Fetch and display a random ayah",
		"tray_start":              "Start Reminders",
		"tray_start_hint":         "Resume periodic reminders",
		"tray_pause":              "Pause Reminders",
		"tray_pause_hint":         "Pause periodic reminders",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show system notifications",
		"tray_settings":           "Settings...",
		"tray_settings_hint":      "Interval, language, theme",
		"tray_about":              "About",
		"tray_about_hint":         "About Quran Reminder",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close application",

		// Notifications
		"notify_started":      "Reminders Started",
		"notify_started_hint": "You will receive a reminder every %d minutes",
		"notify_paused":       "Reminders Paused",
		"notify_paused_hint":  "Periodic reminders have been paused",

		// Popup window
		"popup_title": "قرآن",

		// Settings window
		"settings_title":           "Settings",
		"settings_reminders":       "Reminders",
		"settings_interval":        "Interval (minutes)",
		"settings_duration":        "Notification duration (seconds)",
		"settings_max_length":      "Max text length",
		"settings_display":         "Display",
		"settings_language":        "Verse language",
		"settings_lang_both":       "Arabic & Persian",
		"settings_lang_arabic":     "Arabic only",
		"settings_lang_persian":    "Persian only",
		"settings_theme":           "Theme",
		"settings_theme_light":     "Light",
		"settings_theme_dark":      "Dark",
		"settings_auto_start":      "Start reminders on launch",
		"settings_recitation":      "Play recitation audio",
		"settings_recitation_hint": "Stream the reciter audio with each ayah",
		"settings_hotkey":          "Show-now hotkey",
		"settings_ui_language":     "Interface language",
		"settings_apply":           "Save",
		"settings_cancel":          "Cancel",

		// Dialogs
		"about_title": "About Quran Reminder",
		"about_text":  "Quran Reminder shows a random ayah with its Persian translation at a fixed interval.\n\nVerses are provided by the AlQuran Cloud API.",
	},

	FA: {
		// App
		"app_name":    "یادآور قرآن",
		"app_tooltip": "یادآور قرآن - نمایش دوره‌ای آیات",

		// Tray menu
		"tray_ready":              "آماده",
		"tray_fetching":           "در حال دریافت آیه...",
		"tray_paused":             "متوقف",
		"tray_show_now":           "نمایش آیه",
		"tray_show_now_hint":      "دریافت و نمایش یک آیه تصادفی",
		"tray_start":              "شروع یادآوری",
		"tray_start_hint":         "ادامه یادآوری دوره‌ای",
		"tray_pause":              "توقف یادآوری",
		"tray_pause_hint":         "توقف یادآوری دوره‌ای",
		"tray_notifications":      "اعلان‌ها",
		"tray_notifications_hint": "نمایش اعلان‌های سیستم",
		"tray_settings":           "تنظیمات...",
		"tray_settings_hint":      "بازه زمانی، زبان، پوسته",
		"tray_about":              "درباره",
		"tray_about_hint":         "درباره یادآور قرآن",
		"tray_quit":               "خروج",
		"tray_quit_hint":          "بستن برنامه",

		// Notifications
		"notify_started":      "یادآوری شروع شد",
		"notify_started_hint": "هر %d دقیقه یک یادآوری دریافت می‌کنید",
		"notify_paused":       "یادآوری متوقف شد",
		"notify_paused_hint":  "یادآوری دوره‌ای متوقف شده است",

		// Popup window
		"popup_title": "قرآن",

		// Settings window
		"settings_title":           "تنظیمات",
		"settings_reminders":       "یادآوری",
		"settings_interval":        "بازه زمانی (دقیقه)",
		"settings_duration":        "مدت نمایش اعلان (ثانیه)",
		"settings_max_length":      "حداکثر طول متن",
		"settings_display":         "نمایش",
		"settings_language":        "زبان آیه",
		"settings_lang_both":       "عربی و فارسی",
		"settings_lang_arabic":     "فقط عربی",
		"settings_lang_persian":    "فقط فارسی",
		"settings_theme":           "پوسته",
		"settings_theme_light":     "روشن",
		"settings_theme_dark":      "تیره",
		"settings_auto_start":      "شروع یادآوری هنگام اجرا",
		"settings_recitation":      "پخش صوت تلاوت",
		"settings_recitation_hint": "پخش صدای قاری همراه با هر آیه",
		"settings_hotkey":          "کلید میانبر نمایش",
		"settings_ui_language":     "زبان رابط کاربری",
		"settings_apply":           "ذخیره",
		"settings_cancel":          "انصراف",

		// Dialogs
		"about_title": "درباره یادآور قرآن",
		"about_text":  "یادآور قرآن در بازه‌های زمانی مشخص یک آیه تصادفی را همراه با ترجمه فارسی نمایش می‌دهد.\n\nآیات از سرویس AlQuran Cloud دریافت می‌شوند.",
	},
}

// T returns the translation for the given key.
// Falls back to English, then to the key itself.
func T(key string) string {
	mu.RLock()
	lang := current
	mu.RUnlock()

	if msg, ok := translations[lang][key]; ok {
		return msg
	}
	if msg, ok := translations[EN][key]; ok {
		return msg
	}
	return key
}

// SetLanguage changes the current UI language.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := translations[lang]; ok {
		current = lang
	}
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns the list of supported UI languages.
func AvailableLanguages() []Language {
	return []Language{EN, FA}
}
