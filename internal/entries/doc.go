// Package entries persists configured neviweb130 entries.
//
// Each Entry represents one Neviweb account. Its Data map holds the values
// submitted during setup (credentials and network identifiers) and its
// Options map holds later adjustments made through the options wizard. The
// store reads and writes a single YAML file and never interprets the maps
// beyond the unique ID used to reject duplicate accounts.
//
// # File Location
//
//   - Linux: $XDG_CONFIG_HOME/neviweb130/entries.yaml or $HOME/.config/neviweb130/entries.yaml
//   - macOS: $HOME/.config/neviweb130/entries.yaml
//   - Windows: %LOCALAPPDATA%\neviweb130\entries.yaml
//
// # Security
//
// Entry data includes the account password, which the integration needs to
// open sessions. The file is written with mode 0600 inside a 0700 directory.
//
// # Usage Example
//
//	store, err := entries.Open("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entry, err := store.Add(entries.Domain, "jane@example.com", "jane@example.com", data)
//	if errors.Is(err, entries.ErrAlreadyConfigured) {
//	    // account already set up
//	}
//
//	if err := store.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Store methods are safe for concurrent use; Save writes atomically through a
// temporary file and rename.
package entries
