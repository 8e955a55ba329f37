package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/logging"
	"github.com/MartinRain/sinope-130/internal/neviweb"
	"github.com/MartinRain/sinope-130/internal/version"
)

// Output formats accepted by --format
const (
	formatDetailed = "detailed"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

var (
	// errCancelled is returned when the user backs out of a prompt or form.
	errCancelled = errors.New("cancelled")

	errBlankUsername = errors.New("username must not be blank")
	errBlankPassword = errors.New("password must not be empty")
)

// requireCredentials rejects blank credentials before anything is sent to
// the login endpoint. The password itself is sent untrimmed.
func requireCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errBlankUsername
	}
	if strings.TrimSpace(password) == "" {
		return errBlankPassword
	}
	return nil
}

// app holds the state shared by all commands of one invocation
type app struct {
	v          *viper.Viper
	cfg        *appConfig
	configFile string
	format     string

	stdin  *os.File
	stdout io.Writer
	stderr io.Writer

	// interactive reports whether forms can be shown
	interactive func() bool
	doer        neviweb.Doer
}

func newApp() *app {
	return &app{
		v:           newViper(),
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		interactive: stdinIsTerminal,
	}
}

// load resolves the configuration and starts logging. It runs before every
// command.
func (a *app) load(cmd *cobra.Command, args []string) error {
	switch a.format {
	case formatDetailed, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", a.format, formatDetailed, formatJSON, formatYAML)
	}

	cfg, err := loadAppConfig(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.LogLevel != "" {
		if err := logging.Initialize(cfg.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
	}
	logging.Debug("configuration loaded")
	return nil
}

// validator builds the credential checker from the configuration.
func (a *app) validator() *neviweb.Validator {
	doer := a.doer
	if doer == nil {
		doer = &http.Client{Timeout: a.cfg.Timeout}
	}
	return neviweb.NewValidator(doer,
		neviweb.WithLoginURL(a.cfg.LoginURL),
		neviweb.WithUserAgent(version.UserAgent()),
	)
}

// store opens the entry file named by the configuration.
func (a *app) store() (*entries.Store, error) {
	store, err := entries.Open(a.cfg.EntriesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open entries: %w", err)
	}
	return store, nil
}
