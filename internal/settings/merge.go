package settings

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Stored overlays options on top of data, the way an entry's current state is
// read: a key present in options wins over the same key in data.
func Stored(data, options map[string]any) map[string]any {
	merged := make(map[string]any, len(data)+len(options))
	for k, v := range data {
		merged[k] = v
	}
	for k, v := range options {
		merged[k] = v
	}
	return merged
}

// Merge returns the settings record for an options step.
//
// With a nil override it returns the form defaults: each field comes from
// stored when present and coercible, otherwise from Defaults. With an
// override it returns the override unchanged; a submission replaces the whole
// record rather than patching the stored one.
func Merge(stored map[string]any, override *Settings) Settings {
	if override != nil {
		return *override
	}

	s := Defaults()
	if v, ok := seconds(stored[KeyScanInterval]); ok {
		s.ScanInterval = v
	}
	if v, ok := boolean(stored[KeyHomekitMode]); ok {
		s.HomekitMode = v
	}
	if v, ok := boolean(stored[KeyIgnoreMiwi]); ok {
		s.IgnoreMiwi = v
	}
	if v, ok := seconds(stored[KeyStatInterval]); ok {
		s.StatInterval = v
	}
	if v, ok := stored[KeyNotify].(string); ok && NotifyMode(v).Valid() {
		s.Notify = NotifyMode(v)
	} else if v, ok := stored[KeyNotify].(NotifyMode); ok && v.Valid() {
		s.Notify = v
	}
	if v, ok := stored[KeyNetwork].(string); ok {
		s.Network = v
	}
	if v, ok := stored[KeyNetwork2].(string); ok {
		s.Network2 = v
	}
	if v, ok := stored[KeyNetwork3].(string); ok {
		s.Network3 = v
	}
	return s
}

// seconds coerces a stored interval to whole seconds. Durations are
// truncated, numeric strings and duration strings ("9m") are accepted.
func seconds(v any) (int, bool) {
	switch n := v.(type) {
	case time.Duration:
		return int(n / time.Second), true
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return floatSeconds(float64(n))
	case float64:
		return floatSeconds(n)
	case string:
		return parseSeconds(n)
	default:
		return 0, false
	}
}

func floatSeconds(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func parseSeconds(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatSeconds(f)
	}
	if d, err := time.ParseDuration(s); err == nil {
		return int(d / time.Second), true
	}
	return 0, false
}

func boolean(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	default:
		return false, false
	}
}
