package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{in: "ar", want: LocaleArabic},
		{in: "en", want: LocaleEnglish},
		{in: "EN", want: LocaleEnglish},
		{in: "en-US", want: LocaleEnglish},
		{in: "ar_YE", want: LocaleArabic},
		{in: "en-US,en;q=0.9", want: LocaleEnglish},
		{in: "", want: DefaultLocale},
		{in: "fr", want: DefaultLocale},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.in), tt.in)
	}
}

func TestTextIn(t *testing.T) {
	txt := Text{Ar: "مرحبا", En: "Hello"}

	assert.Equal(t, "مرحبا", txt.In(LocaleArabic))
	assert.Equal(t, "Hello", txt.In(LocaleEnglish))
	assert.Equal(t, "مرحبا", txt.In(Locale("??")))
}

func TestScreenTitle(t *testing.T) {
	assert.Equal(t, "المتجر الزراعي", ScreenTitle("shop", LocaleArabic))
	assert.Equal(t, "Merchant Dashboard", ScreenTitle("merchant", LocaleEnglish))

	// Unregistered screens echo the raw name.
	assert.Equal(t, "mystery", ScreenTitle("mystery", LocaleArabic))
}

func TestRTL(t *testing.T) {
	assert.True(t, LocaleArabic.RTL())
	assert.False(t, LocaleEnglish.RTL())
}

func TestNotificationMessages(t *testing.T) {
	ar := NewOrderMessage(LocaleArabic, "صالح", "زيت النيم", 2)
	assert.Contains(t, ar, "صالح")
	assert.Contains(t, ar, "زيت النيم")

	en := ProductApprovedMessage(LocaleEnglish, "Neem Oil")
	assert.Contains(t, en, "Neem Oil")
}
