// Neviweb-cfg sets up and maintains neviweb130 config entries.
//
// It checks Neviweb account credentials against the Neviweb login service,
// stores the resulting entry, and edits the entry's polling and notification
// options. Entries are kept in a YAML file in the user config directory.
//
// Usage:
//
//	neviweb-cfg [command] [flags]
//
// Running without arguments launches the interactive setup wizard.
// See 'neviweb-cfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/MartinRain/sinope-130/internal/logging"
)

func main() {
	a := newApp()
	err := newRootCmd(a).Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
