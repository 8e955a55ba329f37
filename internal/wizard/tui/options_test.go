package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/flow"
	"github.com/MartinRain/sinope-130/internal/settings"
)

func newTestOptions(options map[string]any) OptionsModel {
	return NewOptionsModel(flow.NewOptionsFlow(entries.Snapshot{ID: "abc", Options: options}))
}

func press(m OptionsModel, msgs ...tea.KeyMsg) OptionsModel {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(OptionsModel)
	}
	return m
}

func (m OptionsModel) rowIndex(key string) int {
	for i, r := range m.Rows {
		if r.field.Key == key {
			return i
		}
	}
	return -1
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestOptionsModel_Defaults(t *testing.T) {
	m := newTestOptions(nil)

	if got, want := m.Values(), settings.Defaults().FormValues(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestOptionsModel_PrefilledFromEntry(t *testing.T) {
	m := newTestOptions(map[string]any{
		settings.KeyHomekitMode: true,
		settings.KeyNotify:      "logging",
		settings.KeyNetwork:     "Home",
	})

	values := m.Values()
	if values[settings.KeyHomekitMode] != "true" || values[settings.KeyNotify] != "logging" || values[settings.KeyNetwork] != "Home" {
		t.Errorf("Values() = %v", values)
	}
}

func TestOptionsModel_KeepsLongStoredValues(t *testing.T) {
	network := strings.Repeat("Chalet", 30)
	m := newTestOptions(map[string]any{
		settings.KeyNetwork:      network,
		settings.KeyScanInterval: 1234567890,
	})

	values := m.Values()
	if values[settings.KeyNetwork] != network {
		t.Errorf("network = %q, want %q", values[settings.KeyNetwork], network)
	}
	if values[settings.KeyScanInterval] != "1234567890" {
		t.Errorf("scan_interval = %q, want 1234567890", values[settings.KeyScanInterval])
	}

	updated, _ := m.Update(keyEnter)
	res, ok := updated.(OptionsModel).Outcome()
	if !ok || res.Data[settings.KeyNetwork] != network || res.Data[settings.KeyScanInterval] != 1234567890 {
		t.Errorf("Outcome() = %+v/%v", res, ok)
	}
}

func TestOptionsModel_ToggleAndCycle(t *testing.T) {
	m := newTestOptions(nil)

	// scan_interval -> homekit_mode
	m = press(m, keyTab, keySpace)
	if m.Values()[settings.KeyHomekitMode] != "true" {
		t.Errorf("homekit_mode = %s, want true", m.Values()[settings.KeyHomekitMode])
	}

	for m.Focus != m.rowIndex(settings.KeyNotify) {
		m = press(m, keyTab)
	}
	m = press(m, keyRight)
	if got := m.Values()[settings.KeyNotify]; got != "notification" {
		t.Errorf("notify after right = %s, want notification", got)
	}
	m = press(m, keyRight)
	if got := m.Values()[settings.KeyNotify]; got != "both" {
		t.Errorf("notify should wrap to both, got %s", got)
	}
	m = press(m, keyLeft)
	if got := m.Values()[settings.KeyNotify]; got != "notification" {
		t.Errorf("notify after left = %s, want notification", got)
	}
}

func TestOptionsModel_RejectsBadInterval(t *testing.T) {
	m := newTestOptions(nil)
	m.Rows[m.rowIndex(settings.KeyScanInterval)].input.SetValue("soon")

	updated, cmd := m.Update(keyEnter)
	m = updated.(OptionsModel)

	if _, ok := m.Outcome(); ok {
		t.Fatal("invalid submission should not finish the flow")
	}
	if cmd != nil {
		t.Error("invalid submission should not quit")
	}
	if m.FieldErrors[settings.KeyScanInterval] == "" {
		t.Errorf("FieldErrors = %v, want scan_interval", m.FieldErrors)
	}
}

func TestOptionsModel_Submit(t *testing.T) {
	m := newTestOptions(map[string]any{settings.KeyNetwork: "Home"})
	m.Rows[m.rowIndex(settings.KeyStatInterval)].input.SetValue("900")
	m.Rows[m.rowIndex(settings.KeyNetwork)].input.SetValue("")

	updated, cmd := m.Update(keyEnter)
	m = updated.(OptionsModel)

	res, ok := m.Outcome()
	if !ok || res.Type != flow.ResultCreateEntry || res.Title != flow.OptionsTitle {
		t.Fatalf("Outcome() = %+v/%v", res, ok)
	}
	if res.Data[settings.KeyStatInterval] != 900 {
		t.Errorf("stat_interval = %v, want 900", res.Data[settings.KeyStatInterval])
	}
	if res.Data[settings.KeyNetwork] != "" {
		t.Errorf("network = %v, a cleared field should be stored empty", res.Data[settings.KeyNetwork])
	}
	if !isQuit(cmd) {
		t.Error("model should quit after saving")
	}
}

func TestOptionsModel_TypingInNetworkAcceptsSpaces(t *testing.T) {
	m := newTestOptions(nil)
	for m.Focus != m.rowIndex(settings.KeyNetwork) {
		m = press(m, keyTab)
	}

	m = press(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("My")},
		keySpace,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Home")},
	)
	if got := m.Values()[settings.KeyNetwork]; got != "My Home" {
		t.Errorf("network = %q, want %q", got, "My Home")
	}
}
