package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/neviweb"
)

// Configuration keys. Each is read from the config file, from NEVIWEB_<KEY>
// and from the matching root flag.
const (
	keyLoginURL    = "login_url"
	keyTimeout     = "timeout"
	keyEntriesFile = "entries_file"
	keyLogLevel    = "log_level"

	envPrefix      = "NEVIWEB"
	configName     = "neviweb-cfg"
	defaultTimeout = 10 * time.Second
)

// appConfig is the resolved configuration of one invocation
type appConfig struct {
	LoginURL    string
	Timeout     time.Duration
	EntriesFile string
	LogLevel    string

	// ConfigFile is the file that was read, empty when none was found
	ConfigFile string
}

// newViper returns a viper instance with defaults, env binding and the
// standard config search path.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if dir, err := entries.GetConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLoginURL, neviweb.DefaultLoginURL)
	v.SetDefault(keyTimeout, defaultTimeout)
	v.SetDefault(keyEntriesFile, "")
	v.SetDefault(keyLogLevel, "")
	return v
}

// bindFlags binds the root persistent flags to their configuration keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		keyLoginURL:    "login-url",
		keyTimeout:     "timeout",
		keyEntriesFile: "entries-file",
		keyLogLevel:    "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return nil
}

// loadAppConfig reads the config file (if any) and resolves every key.
// A missing config file is not an error; an explicitly named one is.
func loadAppConfig(v *viper.Viper, configFile string) (*appConfig, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &appConfig{
		LoginURL:    strings.TrimSpace(v.GetString(keyLoginURL)),
		Timeout:     v.GetDuration(keyTimeout),
		EntriesFile: v.GetString(keyEntriesFile),
		LogLevel:    v.GetString(keyLogLevel),
		ConfigFile:  v.ConfigFileUsed(),
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("invalid %s %q: must be a positive duration", keyTimeout, v.GetString(keyTimeout))
	}

	u, err := url.Parse(cfg.LoginURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid %s %q: must be an http(s) URL", keyLoginURL, cfg.LoginURL)
	}

	return cfg, nil
}
