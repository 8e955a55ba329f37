package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MartinRain/sinope-130/internal/neviweb"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadAppConfig(newViper(), "")
	if err != nil {
		t.Fatalf("loadAppConfig() error = %v", err)
	}
	if cfg.LoginURL != neviweb.DefaultLoginURL {
		t.Errorf("LoginURL = %s, want %s", cfg.LoginURL, neviweb.DefaultLoginURL)
	}
	if cfg.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, defaultTimeout)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("ConfigFile = %s, want none", cfg.ConfigFile)
	}
}

func TestLoadAppConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	confDir := filepath.Join(dir, "neviweb130")
	if err := os.MkdirAll(confDir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "login_url: http://localhost:8080/api/login\ntimeout: 3s\nentries_file: /tmp/e.yaml\n"
	if err := os.WriteFile(filepath.Join(confDir, configName+".yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NEVIWEB_TIMEOUT", "45s")

	cfg, err := loadAppConfig(newViper(), "")
	if err != nil {
		t.Fatalf("loadAppConfig() error = %v", err)
	}
	if cfg.LoginURL != "http://localhost:8080/api/login" {
		t.Errorf("LoginURL = %s", cfg.LoginURL)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, env should win over the file", cfg.Timeout)
	}
	if cfg.EntriesFile != "/tmp/e.yaml" {
		t.Errorf("EntriesFile = %s", cfg.EntriesFile)
	}
	if !strings.HasSuffix(cfg.ConfigFile, configName+".yaml") {
		t.Errorf("ConfigFile = %s", cfg.ConfigFile)
	}
}

func TestLoadAppConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
		want string
	}{
		{"zero timeout", map[string]string{"NEVIWEB_TIMEOUT": "0s"}, "", "timeout"},
		{"relative url", map[string]string{"NEVIWEB_LOGIN_URL": "neviweb.com/api/login"}, "", "login_url"},
		{"ftp url", map[string]string{"NEVIWEB_LOGIN_URL": "ftp://neviweb.com"}, "", "login_url"},
		{"missing explicit file", nil, "does-not-exist.yaml", "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			file := tt.file
			if file != "" {
				file = filepath.Join(dir, file)
			}

			_, err := loadAppConfig(newViper(), file)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("loadAppConfig() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestFlagOverridesEnv(t *testing.T) {
	env := newTestEnv(t, 200, `{}`)
	t.Setenv("NEVIWEB_LOGIN_URL", "http://unused.invalid/api/login")

	// run() passes --login-url, which must win
	out, err := env.run("pw\n", "validate", "--username", "jane@example.com", "--format", "json")
	if err != nil {
		t.Fatalf("validate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, env.loginURL) {
		t.Errorf("output = %s, want login URL %s", out, env.loginURL)
	}
}
