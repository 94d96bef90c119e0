// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"mazraa/internal/i18n"

	"github.com/labstack/echo/v4"
)

const localeContextKey = "locale"

// Locale resolves the request display language from the X-Locale header,
// falling back to Accept-Language and then the default (Arabic).
func Locale(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		hint := c.Request().Header.Get("X-Locale")
		if hint == "" {
			hint = c.Request().Header.Get("Accept-Language")
		}

		c.Set(localeContextKey, i18n.Parse(hint))

		return next(c)
	}
}

// LocaleFromContext returns the locale resolved by the Locale middleware.
func LocaleFromContext(c echo.Context) i18n.Locale {
	if loc, ok := c.Get(localeContextKey).(i18n.Locale); ok {
		return loc
	}

	return i18n.DefaultLocale
}
