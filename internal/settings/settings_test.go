package settings

import "testing"

func TestNotifyModeValid(t *testing.T) {
	for _, m := range NotifyModes {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	for _, m := range []NotifyMode{"", "Both", "email"} {
		if m.Valid() {
			t.Errorf("%q should not be valid", m)
		}
	}
}

func TestToMapHasEveryKey(t *testing.T) {
	m := Defaults().ToMap()

	keys := []string{KeyScanInterval, KeyHomekitMode, KeyIgnoreMiwi, KeyStatInterval, KeyNotify, KeyNetwork, KeyNetwork2, KeyNetwork3}
	if len(m) != len(keys) {
		t.Errorf("ToMap() has %d keys, want %d", len(m), len(keys))
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			t.Errorf("ToMap() missing %s", k)
		}
	}
	if m[KeyNotify] != "nothing" {
		t.Errorf("notify = %v, want plain string nothing", m[KeyNotify])
	}
}

func TestToMapFeedsMerge(t *testing.T) {
	s := Settings{300, true, false, 600, NotifyLogging, "a", "b", "c"}
	if got := Merge(s.ToMap(), nil); got != s {
		t.Errorf("Merge(ToMap()) = %+v, want %+v", got, s)
	}
}

func TestNetworks(t *testing.T) {
	s := Settings{Network: "a", Network3: "c"}
	if got := s.Networks(); got != [3]string{"a", "", "c"} {
		t.Errorf("Networks() = %v", got)
	}
}
