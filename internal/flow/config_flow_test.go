package flow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/MartinRain/sinope-130/internal/entries"
	"github.com/MartinRain/sinope-130/internal/neviweb"
	"github.com/MartinRain/sinope-130/internal/settings"
)

// fakeValidator returns a fixed result and counts calls
type fakeValidator struct {
	result neviweb.Result
	calls  int
	last   [2]string
}

func (v *fakeValidator) Validate(ctx context.Context, username, password string) neviweb.Result {
	v.calls++
	v.last = [2]string{username, password}
	return v.result
}

// fakeRegistry knows a fixed set of unique IDs
type fakeRegistry map[string]bool

func (r fakeRegistry) HasUniqueID(domain, uniqueID string) bool {
	return domain == entries.Domain && r[uniqueID]
}

func TestStepUser_ShowsForm(t *testing.T) {
	v := &fakeValidator{}
	f := NewConfigFlow(v, fakeRegistry{})

	res := f.StepUser(context.Background(), nil)

	if res.Type != ResultForm || res.StepID != StepUser {
		t.Fatalf("StepUser(nil) = %s/%s, want form/user", res.Type, res.StepID)
	}
	if res.HasErrors() {
		t.Errorf("Errors = %v, want none", res.Errors)
	}
	if v.calls != 0 {
		t.Error("rendering the form must not validate")
	}

	username, ok := res.Field(settings.KeyUsername)
	if !ok || !username.Required {
		t.Error("username should be a required field")
	}
	password, ok := res.Field(settings.KeyPassword)
	if !ok || !password.Required || password.Kind != FieldPassword {
		t.Error("password should be a required password field")
	}
	for _, key := range settings.NetworkKeys {
		field, ok := res.Field(key)
		if !ok || field.Required {
			t.Errorf("%s should be an optional field", key)
		}
	}
}

func TestStepUser_Accepted(t *testing.T) {
	v := &fakeValidator{result: neviweb.Accepted}
	f := NewConfigFlow(v, fakeRegistry{})

	in := &UserInput{Username: "jane@example.com", Password: "pw", Network: "Home", Network3: "Garage"}
	res := f.StepUser(context.Background(), in)

	if res.Type != ResultCreateEntry {
		t.Fatalf("Type = %s, want create_entry", res.Type)
	}
	if res.Title != "jane@example.com" {
		t.Errorf("Title = %s, want the username", res.Title)
	}

	want := map[string]any{
		settings.KeyUsername: "jane@example.com",
		settings.KeyPassword: "pw",
		settings.KeyNetwork:  "Home",
		settings.KeyNetwork3: "Garage",
	}
	if len(res.Data) != len(want) {
		t.Errorf("Data = %v, want %v", res.Data, want)
	}
	for k, v := range want {
		if res.Data[k] != v {
			t.Errorf("Data[%s] = %v, want %v", k, res.Data[k], v)
		}
	}
	if _, ok := res.Data[settings.KeyNetwork2]; ok {
		t.Error("omitted network2 should not appear in data")
	}

	if v.last != [2]string{"jane@example.com", "pw"} {
		t.Errorf("validator got %v", v.last)
	}
	if f.UniqueID() != "jane@example.com" {
		t.Errorf("UniqueID() = %s", f.UniqueID())
	}
}

func TestStepUser_Rejections(t *testing.T) {
	tests := []struct {
		result neviweb.Result
		want   string
	}{
		{neviweb.InvalidAuth, ErrorInvalidAuth},
		{neviweb.CannotConnect, ErrorCannotConnect},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			f := NewConfigFlow(&fakeValidator{result: tt.result}, fakeRegistry{})

			in := &UserInput{Username: "jane@example.com", Password: "pw", Network2: "Cottage"}
			res := f.StepUser(context.Background(), in)

			if res.Type != ResultForm || res.StepID != StepUser {
				t.Fatalf("result = %s/%s, want form/user", res.Type, res.StepID)
			}
			if res.Errors[ErrorBase] != tt.want {
				t.Errorf("Errors = %v, want base=%s", res.Errors, tt.want)
			}
			if res.Suggested[settings.KeyUsername] != "jane@example.com" || res.Suggested[settings.KeyNetwork2] != "Cottage" {
				t.Errorf("Suggested = %v, should keep the submission", res.Suggested)
			}
			if _, ok := res.Suggested[settings.KeyPassword]; ok {
				t.Error("the password must not be suggested back")
			}
		})
	}
}

func TestStepUser_DuplicateAbortsWithoutValidating(t *testing.T) {
	v := &fakeValidator{result: neviweb.Accepted}
	f := NewConfigFlow(v, fakeRegistry{"jane@example.com": true})

	res := f.StepUser(context.Background(), &UserInput{Username: "jane@example.com", Password: "pw"})

	if res.Type != ResultAbort || res.Reason != AbortAlreadyConfigured {
		t.Errorf("result = %s/%s, want abort/already_configured", res.Type, res.Reason)
	}
	if v.calls != 0 {
		t.Errorf("validator called %d times, want 0", v.calls)
	}
}

func TestStepUser_ResubmitAfterError(t *testing.T) {
	v := &fakeValidator{result: neviweb.InvalidAuth}
	f := NewConfigFlow(v, fakeRegistry{})

	first := f.StepUser(context.Background(), &UserInput{Username: "jane@example.com", Password: "wrong"})
	if first.Type != ResultForm {
		t.Fatalf("first submission = %s, want form", first.Type)
	}

	v.result = neviweb.Accepted
	second := f.StepUser(context.Background(), &UserInput{Username: "jane@example.com", Password: "right"})
	if second.Type != ResultCreateEntry {
		t.Errorf("second submission = %s, want create_entry", second.Type)
	}
	if v.calls != 2 {
		t.Errorf("validator called %d times, want 2", v.calls)
	}
}

func TestStepUser_WithStoreAndLoginServer(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"session":"abc"}`))
	}))
	defer server.Close()

	store, err := entries.Open(filepath.Join(t.TempDir(), "entries.yaml"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	validator := neviweb.NewValidator(server.Client(), neviweb.WithLoginURL(server.URL))

	in := &UserInput{Username: "jane@example.com", Password: "pw"}

	res := NewConfigFlow(validator, store).StepUser(context.Background(), in)
	if res.Type != ResultCreateEntry {
		t.Fatalf("first setup = %s, want create_entry", res.Type)
	}
	if _, err := store.Add(entries.Domain, in.Username, res.Title, res.Data); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	res = NewConfigFlow(validator, store).StepUser(context.Background(), in)
	if res.Type != ResultAbort {
		t.Errorf("second setup = %s, want abort", res.Type)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("login server saw %d requests, want 1", n)
	}
}

func TestStepUser_LoginErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"code":"LOGIN_007"}}`))
	}))
	defer server.Close()

	validator := neviweb.NewValidator(server.Client(), neviweb.WithLoginURL(server.URL))
	res := NewConfigFlow(validator, nil).StepUser(context.Background(), &UserInput{Username: "jane@example.com", Password: "bad"})

	if res.Errors[ErrorBase] != ErrorInvalidAuth {
		t.Errorf("Errors = %v, want base=invalid_auth", res.Errors)
	}
}

func TestUserInputData(t *testing.T) {
	data := UserInput{Username: "u", Password: "p", Network2: "n2"}.Data()

	if len(data) != 3 || data[settings.KeyNetwork2] != "n2" {
		t.Errorf("Data() = %v", data)
	}
}
