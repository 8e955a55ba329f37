package entries

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	appName     = "neviweb130"
	entriesFile = "entries.yaml"
	fileVersion = 1
)

var (
	// ErrNotFound is returned when no entry matches a reference
	ErrNotFound = errors.New("entry not found")
	// ErrAmbiguous is returned when a reference matches several entries
	ErrAmbiguous = errors.New("entry reference is ambiguous")
	// ErrAlreadyConfigured is returned when adding a second entry with the
	// same unique ID
	ErrAlreadyConfigured = errors.New("entry already configured")
)

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/neviweb130 or $HOME/.config/neviweb130
//   - macOS: $HOME/.config/neviweb130
//   - Windows: %LOCALAPPDATA%\neviweb130
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// DefaultPath returns the default entries file path.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, entriesFile), nil
}

// Store holds the configured entries of one file.
type Store struct {
	path string
	now  func() time.Time

	mu   sync.Mutex
	file File
}

// Open loads the entries file at path, or the default location when path is
// empty. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, fmt.Errorf("failed to get entries path: %w", err)
		}
	}

	s := &Store{
		path: path,
		now:  time.Now,
		file: File{Version: fileVersion},
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entries file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.file); err != nil {
		return nil, fmt.Errorf("failed to parse entries file: %w", err)
	}
	if s.file.Version == 0 && len(s.file.Entries) == 0 {
		// Empty or comment-only file
		s.file.Version = fileVersion
	}
	if s.file.Version != fileVersion {
		return nil, fmt.Errorf("unsupported entries file version: %d (expected %d)", s.file.Version, fileVersion)
	}

	for i, e := range s.file.Entries {
		if e == nil {
			return nil, fmt.Errorf("failed to parse entries file: entry %d is empty", i+1)
		}
		if e.Data == nil {
			e.Data = make(map[string]any)
		}
	}

	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// List returns copies of all entries, oldest first.
func (s *Store) List() []*Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Entry, 0, len(s.file.Entries))
	for _, e := range s.file.Entries {
		out = append(out, e.clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Get finds an entry by entry ID, unique ID, title or an unambiguous entry ID
// prefix, in that order of precedence.
func (s *Store) Get(ref string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(ref)
	if err != nil {
		return nil, err
	}
	return e.clone(), nil
}

func (s *Store) lookup(ref string) (*Entry, error) {
	if ref == "" {
		return nil, ErrNotFound
	}

	for _, match := range []func(*Entry) bool{
		func(e *Entry) bool { return e.ID == ref },
		func(e *Entry) bool { return e.UniqueID == ref },
		func(e *Entry) bool { return e.Title == ref },
		func(e *Entry) bool { return strings.HasPrefix(e.ID, ref) },
	} {
		var found []*Entry
		for _, e := range s.file.Entries {
			if match(e) {
				found = append(found, e)
			}
		}
		switch len(found) {
		case 0:
			continue
		case 1:
			return found[0], nil
		default:
			return nil, fmt.Errorf("%w: %q matches %d entries", ErrAmbiguous, ref, len(found))
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, ref)
}

// HasUniqueID reports whether an entry of domain already uses uniqueID.
func (s *Store) HasUniqueID(domain, uniqueID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.file.Entries {
		if e.Domain == domain && e.UniqueID == uniqueID {
			return true
		}
	}
	return false
}

// Add creates an entry. The data map is copied.
func (s *Store) Add(domain, uniqueID, title string, data map[string]any) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.file.Entries {
		if e.Domain == domain && e.UniqueID == uniqueID {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyConfigured, uniqueID)
		}
	}

	now := s.now().UTC()
	entry := &Entry{
		ID:        uuid.NewString(),
		Domain:    domain,
		Version:   FlowVersion,
		Title:     title,
		UniqueID:  uniqueID,
		Data:      maps.Clone(data),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if entry.Data == nil {
		entry.Data = make(map[string]any)
	}

	s.file.Entries = append(s.file.Entries, entry)
	return entry.clone(), nil
}

// UpdateOptions replaces the options of the entry referenced by ref.
func (s *Store) UpdateOptions(ref string, options map[string]any) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(ref)
	if err != nil {
		return nil, err
	}
	e.Options = maps.Clone(options)
	e.UpdatedAt = s.now().UTC()
	return e.clone(), nil
}

// Remove deletes the entry referenced by ref.
func (s *Store) Remove(ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.lookup(ref)
	if err != nil {
		return err
	}

	kept := s.file.Entries[:0]
	for _, e := range s.file.Entries {
		if e != target {
			kept = append(kept, e)
		}
	}
	s.file.Entries = kept
	return nil
}

// Save writes the store to disk atomically.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(&s.file)
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	header := []byte(`# neviweb130 configuration entries
# Written by neviweb-cfg. Entry data contains account passwords;
# keep this file private.

`)
	data = append(header, data...)

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary entries file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save entries file: %w", err)
	}

	return nil
}
