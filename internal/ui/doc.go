// Package ui provides terminal output components for the neviweb-cfg CLI.
//
// Unlike the interactive wizard in internal/wizard/tui, these components
// follow a "run once and exit" pattern: commands such as validate, list and
// remove print a header, a short list of steps and a result box, then exit.
//
// # Components
//
//   - Header: command banner with the command path and its parameters
//   - Result: success, failure and warning boxes
//   - Runner: header, step lines and result for a short operation
//   - Confirm and ReadPassword: the only prompts outside the TUI
//
// # Logging Integration
//
// Logging is controlled via NEVIWEB_LOG_LEVEL. When unset, zap logging is
// silent so the styled output stays clean.
package ui
