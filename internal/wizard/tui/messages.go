package tui

import (
	"github.com/MartinRain/sinope-130/internal/flow"
	"github.com/MartinRain/sinope-130/internal/settings"
	"github.com/MartinRain/sinope-130/internal/urls"
)

// ErrorMessage returns the banner text for a form error tag.
func ErrorMessage(tag string) string {
	switch tag {
	case flow.ErrorInvalidAuth:
		return "Invalid email or password"
	case flow.ErrorCannotConnect:
		return "Could not reach Neviweb"
	default:
		return "Unexpected error: " + tag
	}
}

// ErrorHint returns the line shown under the banner for a form error tag.
func ErrorHint(tag string) string {
	switch tag {
	case flow.ErrorInvalidAuth:
		return "Use the Neviweb app login. Forgot it? " + urls.PasswordReset
	case flow.ErrorCannotConnect:
		return "Check your internet connection and try again. See " + urls.TroubleshootingGuide
	default:
		return ""
	}
}

// FieldLabel returns the display label of a configuration key.
func FieldLabel(key string) string {
	switch key {
	case settings.KeyUsername:
		return "Email"
	case settings.KeyPassword:
		return "Password"
	case settings.KeyNetwork:
		return "Network"
	case settings.KeyNetwork2:
		return "Network 2"
	case settings.KeyNetwork3:
		return "Network 3"
	case settings.KeyScanInterval:
		return "Scan interval"
	case settings.KeyStatInterval:
		return "Stat interval"
	case settings.KeyHomekitMode:
		return "HomeKit mode"
	case settings.KeyIgnoreMiwi:
		return "Ignore Miwi"
	case settings.KeyNotify:
		return "Notify"
	default:
		return key
	}
}
