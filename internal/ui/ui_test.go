package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{10, MinTerminalWidth},
		{80, 80},
		{400, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Credential check", "neviweb-cfg validate", map[string]string{
		"Login URL": "https://neviweb.com/api/login",
		"Account":   "j***@example.com",
	}).SetWidth(80)

	out := h.Render()
	for _, want := range []string{"CREDENTIAL CHECK", "neviweb-cfg validate", "Account:", "j***@example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if strings.Index(out, "Account:") > strings.Index(out, "Login URL:") {
		t.Error("params should be sorted by key")
	}
}

func TestResultRender(t *testing.T) {
	success := NewSuccessResult("Entry created", map[string]string{"Title": "jane"}).SetWidth(80).Render()
	if !strings.Contains(success, "SUCCESS") || !strings.Contains(success, "jane") {
		t.Errorf("success box = %q", success)
	}

	failure := NewFailureResult("Login failed", errors.New("boom"), []string{"check the password"}).SetWidth(80).Render()
	for _, want := range []string{"FAILED", "Error: boom", "Troubleshooting:", "check the password"} {
		if !strings.Contains(failure, want) {
			t.Errorf("failure box missing %q", want)
		}
	}

	warning := NewWarningResult("Already configured", nil).AddDetail("Entry", "abc").SetWidth(80).Render()
	if !strings.Contains(warning, "WARNING") || !strings.Contains(warning, "abc") {
		t.Errorf("warning box = %q", warning)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"y", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := Confirm(strings.NewReader(tt.input), &out, "Continue?"); got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRunnerSuccess(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(RunnerConfig{Title: "Credential check", Command: "neviweb-cfg validate", Output: &out}).SetWidth(80)

	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(250 * time.Millisecond)
		return tick
	}

	details, err := r.Run(func(onStep StepCallback) (map[string]string, error) {
		onStep("Contacting Neviweb", StepRunning, "")
		onStep("Contacting Neviweb", StepComplete, "accepted")
		return map[string]string{"Result": "accepted"}, nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if details["Duration"] != "250ms" {
		t.Errorf("Duration = %s, want 250ms", details["Duration"])
	}
	for _, want := range []string{"CREDENTIAL CHECK", "Contacting Neviweb", "(accepted)", "Credential check complete"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunnerFailure(t *testing.T) {
	var out bytes.Buffer
	wantErr := errors.New("unreachable")
	r := NewRunner(RunnerConfig{
		Title:           "Credential check",
		Output:          &out,
		Troubleshooting: func(error) []string { return []string{"check your network"} },
	}).SetWidth(80)

	_, err := r.Run(func(onStep StepCallback) (map[string]string, error) {
		onStep("Contacting Neviweb", StepFailed, "cannot_connect")
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}
	for _, want := range []string{"Credential check failed", "unreachable", "check your network"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}
