package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/settings"
)

const redacted = "********"

// entryView is the printable form of an entry. The password is redacted
// and the effective options are resolved.
type entryView struct {
	ID        string            `json:"entry_id" yaml:"entry_id"`
	Title     string            `json:"title" yaml:"title"`
	UniqueID  string            `json:"unique_id" yaml:"unique_id"`
	Version   int               `json:"version" yaml:"version"`
	CreatedAt string            `json:"created_at" yaml:"created_at"`
	UpdatedAt string            `json:"updated_at" yaml:"updated_at"`
	Data      map[string]any    `json:"data" yaml:"data"`
	Options   map[string]any    `json:"options,omitempty" yaml:"options,omitempty"`
	Effective settings.Settings `json:"effective" yaml:"effective"`
}

func newEntryView(e *entries.Entry) entryView {
	snap := e.Snapshot()
	if _, ok := snap.Data[settings.KeyPassword]; ok {
		snap.Data[settings.KeyPassword] = redacted
	}
	return entryView{
		ID:        e.ID,
		Title:     e.Title,
		UniqueID:  e.UniqueID,
		Version:   e.Version,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05 MST"),
		UpdatedAt: e.UpdatedAt.Format("2006-01-02 15:04:05 MST"),
		Data:      snap.Data,
		Options:   snap.Options,
		Effective: settings.Merge(settings.Stored(snap.Data, snap.Options), nil),
	}
}

// writeStructured prints v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not structured", format)
	}
}

// formatDetailedEntry renders an entry the way `show` prints it.
func formatDetailedEntry(v entryView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", v.Title)
	fmt.Fprintf(&b, "  Entry ID:       %s\n", v.ID)
	fmt.Fprintf(&b, "  Unique ID:      %s\n", v.UniqueID)
	fmt.Fprintf(&b, "  Created:        %s\n", v.CreatedAt)
	fmt.Fprintf(&b, "  Updated:        %s\n", v.UpdatedAt)

	b.WriteString("\nAccount:\n")
	fmt.Fprintf(&b, "  Username:       %v\n", v.Data[settings.KeyUsername])
	fmt.Fprintf(&b, "  Password:       %s\n", redacted)

	s := v.Effective
	b.WriteString("\nOptions:\n")
	fmt.Fprintf(&b, "  Scan interval:  %ds\n", s.ScanInterval)
	fmt.Fprintf(&b, "  Stat interval:  %ds\n", s.StatInterval)
	fmt.Fprintf(&b, "  HomeKit mode:   %s\n", formatBool(s.HomekitMode))
	fmt.Fprintf(&b, "  Ignore Miwi:    %s\n", formatBool(s.IgnoreMiwi))
	fmt.Fprintf(&b, "  Notify:         %s\n", s.Notify)
	for i, n := range s.Networks() {
		if n == "" {
			n = "-"
		}
		fmt.Fprintf(&b, "  Network %d:      %s\n", i+1, n)
	}
	if len(v.Options) == 0 {
		b.WriteString("  (defaults; run 'neviweb-cfg options' to change)\n")
	}

	return b.String()
}

func formatBool(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

// shortID returns the first block of a UUID for tables.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
