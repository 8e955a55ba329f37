package settings

import (
	"fmt"
	"strconv"
)

// Configuration keys as persisted in entry data and options.
const (
	KeyUsername     = "username"
	KeyPassword     = "password"
	KeyScanInterval = "scan_interval"
	KeyHomekitMode  = "homekit_mode"
	KeyIgnoreMiwi   = "ignore_miwi"
	KeyStatInterval = "stat_interval"
	KeyNotify       = "notify"
	KeyNetwork      = "network"
	KeyNetwork2     = "network2"
	KeyNetwork3     = "network3"
)

// Defaults for every options field.
const (
	DefaultScanInterval = 540  // seconds between device polls
	DefaultStatInterval = 1800 // seconds between energy statistics refreshes
	DefaultHomekitMode  = false
	DefaultIgnoreMiwi   = false
	DefaultNotify       = NotifyNothing
)

// NotifyMode selects where the integration reports device errors.
type NotifyMode string

const (
	NotifyBoth         NotifyMode = "both"
	NotifyLogging      NotifyMode = "logging"
	NotifyNothing      NotifyMode = "nothing"
	NotifyNotification NotifyMode = "notification"
)

// NotifyModes lists the accepted notify values in form order.
var NotifyModes = []NotifyMode{NotifyBoth, NotifyLogging, NotifyNothing, NotifyNotification}

// Valid reports whether m is one of NotifyModes.
func (m NotifyMode) Valid() bool {
	for _, mode := range NotifyModes {
		if m == mode {
			return true
		}
	}
	return false
}

// optionKeys lists the option keys in form order.
var optionKeys = []string{
	KeyScanInterval, KeyHomekitMode, KeyIgnoreMiwi, KeyStatInterval,
	KeyNotify, KeyNetwork, KeyNetwork2, KeyNetwork3,
}

// NetworkKeys lists the network identifier keys in positional order.
var NetworkKeys = []string{KeyNetwork, KeyNetwork2, KeyNetwork3}

// Settings is the options record of one entry.
type Settings struct {
	ScanInterval int        `yaml:"scan_interval" json:"scan_interval"`
	HomekitMode  bool       `yaml:"homekit_mode" json:"homekit_mode"`
	IgnoreMiwi   bool       `yaml:"ignore_miwi" json:"ignore_miwi"`
	StatInterval int        `yaml:"stat_interval" json:"stat_interval"`
	Notify       NotifyMode `yaml:"notify" json:"notify"`
	Network      string     `yaml:"network" json:"network"`
	Network2     string     `yaml:"network2" json:"network2"`
	Network3     string     `yaml:"network3" json:"network3"`
}

// Defaults returns the record used when nothing is stored.
func Defaults() Settings {
	return Settings{
		ScanInterval: DefaultScanInterval,
		HomekitMode:  DefaultHomekitMode,
		IgnoreMiwi:   DefaultIgnoreMiwi,
		StatInterval: DefaultStatInterval,
		Notify:       DefaultNotify,
	}
}

// Networks returns the three network identifiers in order.
func (s Settings) Networks() [3]string {
	return [3]string{s.Network, s.Network2, s.Network3}
}

// ToMap returns the record in the persisted map shape. Every key is present.
func (s Settings) ToMap() map[string]any {
	return map[string]any{
		KeyScanInterval: s.ScanInterval,
		KeyHomekitMode:  s.HomekitMode,
		KeyIgnoreMiwi:   s.IgnoreMiwi,
		KeyStatInterval: s.StatInterval,
		KeyNotify:       string(s.Notify),
		KeyNetwork:      s.Network,
		KeyNetwork2:     s.Network2,
		KeyNetwork3:     s.Network3,
	}
}

// FormValues returns the record as form strings keyed like ToMap.
func (s Settings) FormValues() map[string]string {
	return map[string]string{
		KeyScanInterval: strconv.Itoa(s.ScanInterval),
		KeyHomekitMode:  strconv.FormatBool(s.HomekitMode),
		KeyIgnoreMiwi:   strconv.FormatBool(s.IgnoreMiwi),
		KeyStatInterval: strconv.Itoa(s.StatInterval),
		KeyNotify:       string(s.Notify),
		KeyNetwork:      s.Network,
		KeyNetwork2:     s.Network2,
		KeyNetwork3:     s.Network3,
	}
}

// FieldError reports a form value that could not be accepted.
type FieldError struct {
	Key    string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Key, e.Value, e.Reason)
}
