package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLanguageIsEnglish(t *testing.T) {
	SetLanguage(EN)
	assert.Equal(t, EN, GetLanguage())
	assert.Equal(t, "Quran Reminder", T("app_name"))
}

func TestSwitchLanguage(t *testing.T) {
	SetLanguage(FA)
	defer SetLanguage(EN)

	assert.Equal(t, FA, GetLanguage())
	assert.Equal(t, "یادآور قرآن", T("app_name"))
}

func TestUnknownLanguageIgnored(t *testing.T) {
	SetLanguage(EN)
	SetLanguage(Language("de"))
	assert.Equal(t, EN, GetLanguage())
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	SetLanguage(EN)
	assert.Equal(t, "no_such_key", T("no_such_key"))
}

func TestAllKeysTranslated(t *testing.T) {
	// Every English key must have a Persian counterpart
	for key := range translations[EN] {
		_, ok := translations[FA][key]
		assert.True(t, ok, "missing fa translation for %q", key)
	}
	for key := range translations[FA] {
		_, ok := translations[EN][key]
		assert.True(t, ok, "missing en translation for %q", key)
	}
}
