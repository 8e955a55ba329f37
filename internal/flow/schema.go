package flow

import (
	"strconv"

	"github.com/MartinRain/sinope-130/internal/settings"
)

// FieldKind tells the front end how to render and coerce a field.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldPassword
	FieldBool
	FieldInt
	FieldSelect
)

// String returns the kind name
func (k FieldKind) String() string {
	switch k {
	case FieldString:
		return "string"
	case FieldPassword:
		return "password"
	case FieldBool:
		return "bool"
	case FieldInt:
		return "int"
	case FieldSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Field describes one form input.
type Field struct {
	Key      string
	Kind     FieldKind
	Required bool

	// Default is the pre-filled value, valid when HasDefault is set
	Default    string
	HasDefault bool

	// Choices lists the accepted values of a FieldSelect
	Choices []string
}

// UserSchema is the form of the credential step.
func UserSchema() []Field {
	return []Field{
		{Key: settings.KeyUsername, Kind: FieldString, Required: true},
		{Key: settings.KeyPassword, Kind: FieldPassword, Required: true},
		{Key: settings.KeyNetwork, Kind: FieldString},
		{Key: settings.KeyNetwork2, Kind: FieldString},
		{Key: settings.KeyNetwork3, Kind: FieldString},
	}
}

// OptionsSchema is the form of the options step, pre-filled with defaults.
func OptionsSchema(defaults settings.Settings) []Field {
	choices := make([]string, len(settings.NotifyModes))
	for i, m := range settings.NotifyModes {
		choices[i] = string(m)
	}

	withDefault := func(key string, kind FieldKind, value string) Field {
		return Field{Key: key, Kind: kind, Default: value, HasDefault: true}
	}

	notify := withDefault(settings.KeyNotify, FieldSelect, string(defaults.Notify))
	notify.Choices = choices

	return []Field{
		withDefault(settings.KeyScanInterval, FieldInt, strconv.Itoa(defaults.ScanInterval)),
		withDefault(settings.KeyHomekitMode, FieldBool, strconv.FormatBool(defaults.HomekitMode)),
		withDefault(settings.KeyIgnoreMiwi, FieldBool, strconv.FormatBool(defaults.IgnoreMiwi)),
		withDefault(settings.KeyStatInterval, FieldInt, strconv.Itoa(defaults.StatInterval)),
		notify,
		withDefault(settings.KeyNetwork, FieldString, defaults.Network),
		withDefault(settings.KeyNetwork2, FieldString, defaults.Network2),
		withDefault(settings.KeyNetwork3, FieldString, defaults.Network3),
	}
}
