package neviweb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MartinRain/sinope-130/internal/logging"
	"github.com/MartinRain/sinope-130/internal/urls"
	"github.com/MartinRain/sinope-130/internal/version"
)

const (
	// DefaultLoginURL is the Neviweb session endpoint
	DefaultLoginURL = urls.Login

	// maxResponseBytes caps how much of a login reply is read
	maxResponseBytes = 1 << 20
)

// Result is the outcome of a credential validation.
type Result int

const (
	// Accepted means the service opened a session for the credentials
	Accepted Result = iota
	// InvalidAuth means the service refused the credentials
	InvalidAuth
	// CannotConnect covers every other failure
	CannotConnect
)

// String returns the result name
func (r Result) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case InvalidAuth:
		return "invalid_auth"
	case CannotConnect:
		return "cannot_connect"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ErrorKey returns the form error tag for the result, or "" for Accepted.
func (r Result) ErrorKey() string {
	if r == Accepted {
		return ""
	}
	return r.String()
}

// Classify maps the error returned by Login onto a Result.
func Classify(err error) Result {
	if err == nil {
		return Accepted
	}
	if IsAuthError(err) {
		return InvalidAuth
	}
	return CannotConnect
}

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Validator checks account credentials against the Neviweb login endpoint.
type Validator struct {
	// LoginURL is the endpoint receiving the POST (default: DefaultLoginURL)
	LoginURL string

	// UserAgent is sent with every request
	UserAgent string

	doer Doer
}

// Option configures a Validator
type Option func(*Validator)

// WithLoginURL overrides the login endpoint
func WithLoginURL(loginURL string) Option {
	return func(v *Validator) {
		if loginURL != "" {
			v.LoginURL = loginURL
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(v *Validator) {
		v.UserAgent = ua
	}
}

// NewValidator creates a validator sending its requests through doer.
// A nil doer uses http.DefaultClient.
func NewValidator(doer Doer, opts ...Option) *Validator {
	if doer == nil {
		doer = http.DefaultClient
	}
	v := &Validator{
		LoginURL:  DefaultLoginURL,
		UserAgent: version.UserAgent(),
		doer:      doer,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate sends one login request and classifies the outcome. It never
// returns an error; transport and decoding failures become CannotConnect.
func (v *Validator) Validate(ctx context.Context, username, password string) Result {
	return Classify(v.Login(ctx, username, password))
}

// Login sends one login request. It returns nil when the service accepts the
// credentials and a *LoginError otherwise.
func (v *Validator) Login(ctx context.Context, username, password string) error {
	start := time.Now()
	logging.LogLoginAttempt(v.LoginURL, username)

	status, err := v.login(ctx, username, password)

	var code string
	if le, ok := asLoginError(err); ok {
		code = le.Code
	}
	logging.LogLoginResult(username, status, code, Classify(err).String(), time.Since(start), err)

	return err
}

// login performs the request and returns the HTTP status (0 if none).
func (v *Validator) login(ctx context.Context, username, password string) (int, error) {
	payload, err := json.Marshal(loginRequest{Email: username, Password: password})
	if err != nil {
		return 0, &LoginError{Type: ErrTypeNetwork, Message: "failed to encode login request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.LoginURL, bytes.NewReader(payload))
	if err != nil {
		return 0, &LoginError{Type: ErrTypeNetwork, Message: "failed to create login request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if v.UserAgent != "" {
		req.Header.Set("User-Agent", v.UserAgent)
	}

	resp, err := v.doer.Do(req)
	if err != nil {
		return 0, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		le := classifyTransportError(err)
		le.StatusCode = resp.StatusCode
		return resp.StatusCode, le
	}

	parsed, perr := parseLoginResponse(body)
	if perr != nil {
		if resp.StatusCode != http.StatusOK {
			// An error page in place of JSON: report the status, keep the cause
			le := NewHTTPError(resp.StatusCode)
			le.Err = perr
			return resp.StatusCode, le
		}
		return resp.StatusCode, NewParseError(resp.StatusCode, perr)
	}

	if parsed.HasError {
		if IsInvalidAuthCode(parsed.Code) {
			return resp.StatusCode, NewAuthError(resp.StatusCode, parsed.Code)
		}
		return resp.StatusCode, NewServiceError(resp.StatusCode, parsed.Code)
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, NewHTTPError(resp.StatusCode)
	}

	return resp.StatusCode, nil
}
