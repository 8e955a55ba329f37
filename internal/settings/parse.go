package settings

import (
	"strconv"
	"strings"
)

// FieldErrors collects every rejected field of one submission.
type FieldErrors []*FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, len(fe))
	for i, e := range fe {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// ByKey returns the rejection reason per field key.
func (fe FieldErrors) ByKey() map[string]string {
	out := make(map[string]string, len(fe))
	for _, e := range fe {
		out[e.Key] = e.Reason
	}
	return out
}

// Parse converts a raw options submission into a Settings record. Keys that
// are absent take their default; unknown keys are ignored. Intervals must be
// positive integers, flags must parse as booleans and notify must be one of
// NotifyModes. All offending fields are reported as FieldErrors.
func Parse(raw map[string]string) (Settings, error) {
	s := Defaults()
	var errs FieldErrors

	parseInterval := func(key string, dst *int) {
		v, ok := raw[key]
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, &FieldError{Key: key, Value: v, Reason: "must be a whole number of seconds"})
			return
		}
		if n <= 0 {
			errs = append(errs, &FieldError{Key: key, Value: v, Reason: "must be greater than zero"})
			return
		}
		*dst = n
	}
	parseFlag := func(key string, dst *bool) {
		v, ok := raw[key]
		if !ok {
			return
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, &FieldError{Key: key, Value: v, Reason: "must be true or false"})
			return
		}
		*dst = b
	}

	parseInterval(KeyScanInterval, &s.ScanInterval)
	parseFlag(KeyHomekitMode, &s.HomekitMode)
	parseFlag(KeyIgnoreMiwi, &s.IgnoreMiwi)
	parseInterval(KeyStatInterval, &s.StatInterval)

	if v, ok := raw[KeyNotify]; ok {
		mode := NotifyMode(strings.TrimSpace(v))
		if mode.Valid() {
			s.Notify = mode
		} else {
			errs = append(errs, &FieldError{Key: KeyNotify, Value: v, Reason: "must be one of both, logging, nothing, notification"})
		}
	}

	if v, ok := raw[KeyNetwork]; ok {
		s.Network = v
	}
	if v, ok := raw[KeyNetwork2]; ok {
		s.Network2 = v
	}
	if v, ok := raw[KeyNetwork3]; ok {
		s.Network3 = v
	}

	if len(errs) > 0 {
		return Settings{}, errs
	}
	return s, nil
}
