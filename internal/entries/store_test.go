package entries

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "entries.yaml"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return store
}

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	}

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if !strings.Contains(dir, "neviweb130") {
		t.Errorf("GetConfigDir() = %v, should contain 'neviweb130'", dir)
	}
	if runtime.GOOS == "linux" && dir != filepath.Join("/tmp/xdg", "neviweb130") {
		t.Errorf("GetConfigDir() = %v, should honour XDG_CONFIG_HOME", dir)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if filepath.Base(path) != "entries.yaml" {
		t.Errorf("DefaultPath() should end with entries.yaml, got %v", path)
	}
}

func TestOpenMissingFile(t *testing.T) {
	store := newTestStore(t)

	if got := store.List(); len(got) != 0 {
		t.Errorf("List() = %d entries, want 0", len(got))
	}
}

func TestAddAndHasUniqueID(t *testing.T) {
	store := newTestStore(t)

	data := map[string]any{"username": "jane@example.com", "password": "pw", "network": "Home"}
	entry, err := store.Add(Domain, "jane@example.com", "jane@example.com", data)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if entry.ID == "" || len(entry.ID) != 36 {
		t.Errorf("ID = %q, want a uuid", entry.ID)
	}
	if entry.Version != FlowVersion {
		t.Errorf("Version = %d, want %d", entry.Version, FlowVersion)
	}
	if !store.HasUniqueID(Domain, "jane@example.com") {
		t.Error("HasUniqueID() = false after Add()")
	}
	if store.HasUniqueID("other", "jane@example.com") {
		t.Error("HasUniqueID() should be scoped to the domain")
	}

	data["network"] = "mutated"
	stored, _ := store.Get(entry.ID)
	if stored.Data["network"] != "Home" {
		t.Error("Add() must copy the data map")
	}
}

func TestAddDuplicate(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add(Domain, "jane@example.com", "jane", nil); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	_, err := store.Add(Domain, "jane@example.com", "jane again", nil)
	if !errors.Is(err, ErrAlreadyConfigured) {
		t.Errorf("Add() error = %v, want ErrAlreadyConfigured", err)
	}
	if len(store.List()) != 1 {
		t.Error("duplicate must not be stored")
	}
}

func TestGetReferences(t *testing.T) {
	store := newTestStore(t)

	jane, _ := store.Add(Domain, "jane@example.com", "Jane", nil)
	_, _ = store.Add(Domain, "bob@example.com", "Bob", nil)

	for _, ref := range []string{jane.ID, "jane@example.com", "Jane", jane.ID[:8]} {
		got, err := store.Get(ref)
		if err != nil {
			t.Errorf("Get(%q) error = %v", ref, err)
			continue
		}
		if got.ID != jane.ID {
			t.Errorf("Get(%q) = %s, want %s", ref, got.ID, jane.ID)
		}
	}

	if _, err := store.Get("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(nobody) error = %v, want ErrNotFound", err)
	}
	if _, err := store.Get(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(\"\") error = %v, want ErrNotFound", err)
	}
}

func TestGetAmbiguousTitle(t *testing.T) {
	store := newTestStore(t)
	_, _ = store.Add(Domain, "a@example.com", "Home", nil)
	_, _ = store.Add(Domain, "b@example.com", "Home", nil)

	if _, err := store.Get("Home"); !errors.Is(err, ErrAmbiguous) {
		t.Errorf("Get(Home) error = %v, want ErrAmbiguous", err)
	}
}

func TestUpdateOptions(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	entry, _ := store.Add(Domain, "jane@example.com", "Jane", map[string]any{"network": "Home"})

	store.now = func() time.Time { return base.Add(time.Hour) }
	updated, err := store.UpdateOptions("Jane", map[string]any{"scan_interval": 600})
	if err != nil {
		t.Fatalf("UpdateOptions() error = %v", err)
	}

	if updated.Options["scan_interval"] != 600 {
		t.Errorf("Options = %v, want scan_interval 600", updated.Options)
	}
	if updated.Data["network"] != "Home" {
		t.Error("UpdateOptions() must leave data untouched")
	}
	if !updated.UpdatedAt.Equal(base.Add(time.Hour)) || !updated.CreatedAt.Equal(entry.CreatedAt) {
		t.Errorf("timestamps = %v / %v", updated.CreatedAt, updated.UpdatedAt)
	}

	if _, err := store.UpdateOptions("nobody", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateOptions(nobody) error = %v, want ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)
	_, _ = store.Add(Domain, "a@example.com", "A", nil)
	b, _ := store.Add(Domain, "b@example.com", "B", nil)

	if err := store.Remove("A"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	list := store.List()
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("List() after Remove = %v", list)
	}
	if store.HasUniqueID(Domain, "a@example.com") {
		t.Error("removed entry should free its unique ID")
	}
	if err := store.Remove("A"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove() error = %v, want ErrNotFound", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, "entries.yaml")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	entry, _ := store.Add(Domain, "jane@example.com", "jane@example.com", map[string]any{
		"username": "jane@example.com",
		"password": "pw",
		"network":  "Home",
	})
	_, _ = store.UpdateOptions(entry.ID, map[string]any{
		"scan_interval": 600,
		"homekit_mode":  true,
		"notify":        "both",
	})

	if err := store.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be gone after Save()")
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("Open() reload error = %v", err)
	}
	got, err := reloaded.Get(entry.ID)
	if err != nil {
		t.Fatalf("Get() after reload error = %v", err)
	}

	if got.Data["network"] != "Home" || got.Data["password"] != "pw" {
		t.Errorf("Data = %v", got.Data)
	}
	if got.Options["scan_interval"] != 600 || got.Options["homekit_mode"] != true || got.Options["notify"] != "both" {
		t.Errorf("Options = %v", got.Options)
	}
	if !got.CreatedAt.Equal(entry.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, entry.CreatedAt)
	}
}

func TestOpenRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.yaml")
	if err := os.WriteFile(path, []byte("version: 7\nentries: []\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Open() should reject an unsupported version")
	}
}

func TestOpenCommentOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.yaml")
	if err := os.WriteFile(path, []byte("# nothing yet\n"), 0600); err != nil {
		t.Fatal(err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(store.List()) != 0 {
		t.Error("comment-only file should give an empty store")
	}
}

func TestOpenMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken yaml", "version: [\n"},
		{"null entry", "version: 1\nentries:\n  - ~\n"},
		{"null among entries", "version: 1\nentries:\n  - id: abc\n    title: Jane\n  - null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "entries.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			if _, err := Open(path); err == nil {
				t.Error("Open() should fail on a malformed entries file")
			}
		})
	}
}

func TestSnapshotCopiesMaps(t *testing.T) {
	entry := &Entry{
		ID:      "id",
		Title:   "Jane",
		Data:    map[string]any{"network": "Home"},
		Options: map[string]any{"notify": "both"},
	}

	snap := entry.Snapshot()
	snap.Data["network"] = "changed"
	snap.Options["notify"] = "changed"

	if entry.Data["network"] != "Home" || entry.Options["notify"] != "both" {
		t.Error("Snapshot() must not alias the entry maps")
	}
}

func TestListOrder(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	store.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, _ = store.Add(Domain, "late@example.com", "late", nil)
	store.now = func() time.Time { return base }
	_, _ = store.Add(Domain, "early@example.com", "early", nil)

	list := store.List()
	if list[0].Title != "early" || list[1].Title != "late" {
		t.Errorf("List() order = %s, %s; want early, late", list[0].Title, list[1].Title)
	}
}
