package entries

import (
	"maps"
	"time"
)

// Domain is the integration domain entries are registered under.
const Domain = "neviweb130"

// FlowVersion is the schema version written by the setup wizard.
const FlowVersion = 1

// File is the on-disk document.
type File struct {
	Version int      `yaml:"version"`
	Entries []*Entry `yaml:"entries,omitempty"`
}

// Entry is one configured account.
type Entry struct {
	ID        string         `yaml:"entry_id" json:"entry_id"`
	Domain    string         `yaml:"domain" json:"domain"`
	Version   int            `yaml:"version" json:"version"`
	Title     string         `yaml:"title" json:"title"`
	UniqueID  string         `yaml:"unique_id" json:"unique_id"`
	Data      map[string]any `yaml:"data" json:"data"`
	Options   map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
	CreatedAt time.Time      `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time      `yaml:"updated_at" json:"updated_at"`
}

// Snapshot is a read-only copy of an entry's maps handed to the options
// wizard.
type Snapshot struct {
	ID      string
	Title   string
	Data    map[string]any
	Options map[string]any
}

// Snapshot copies the entry's data and options.
func (e *Entry) Snapshot() Snapshot {
	return Snapshot{
		ID:      e.ID,
		Title:   e.Title,
		Data:    maps.Clone(e.Data),
		Options: maps.Clone(e.Options),
	}
}

// clone returns a copy safe to hand outside the store lock.
func (e *Entry) clone() *Entry {
	c := *e
	c.Data = maps.Clone(e.Data)
	c.Options = maps.Clone(e.Options)
	return &c
}
