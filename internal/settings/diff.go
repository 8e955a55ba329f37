package settings

import (
	"fmt"
	"strings"
)

// Change is one option that differs between two records.
type Change struct {
	Key string
	Old string
	New string
}

// Diff lists the options that differ from old to new, in form order.
func Diff(old, new Settings) []Change {
	before, after := old.FormValues(), new.FormValues()

	var changes []Change
	for _, key := range optionKeys {
		if before[key] != after[key] {
			changes = append(changes, Change{Key: key, Old: before[key], New: after[key]})
		}
	}
	return changes
}

// FormatDiff returns the changes as "key: old → new" lines.
func FormatDiff(changes []Change) string {
	if len(changes) == 0 {
		return "(no changes)\n"
	}

	var b strings.Builder
	for _, c := range changes {
		fmt.Fprintf(&b, "  %s: %s → %s\n", c.Key, quoteEmpty(c.Old), quoteEmpty(c.New))
	}
	return b.String()
}

func quoteEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
