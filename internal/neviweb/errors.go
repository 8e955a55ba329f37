package neviweb

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"

	"github.com/MartinRain/sinope-130/internal/urls"
)

// ErrorType represents the category of a login failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeAuth indicates the service refused the credentials
	ErrTypeAuth
	// ErrTypeHTTP indicates an unexpected HTTP status without a usable error code
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
	// ErrTypeService indicates an error code outside the bad-credential set
	ErrTypeService
	// ErrTypeTimeout indicates the request timed out
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the endpoint refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeService:
		return "Service Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// LoginError describes why a login request did not succeed.
type LoginError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (0 if no response)
	Code       string    // Service error code, e.g. "LOGIN_007"
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *LoginError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Code != "" {
		msg += fmt.Sprintf(" [%s]", e.Code)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *LoginError) Unwrap() error {
	return e.Err
}

// classifyTransportError turns an error from the HTTP transport into a
// LoginError with the most specific category available.
func classifyTransportError(err error) *LoginError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return &LoginError{Type: ErrTypeTimeout, Message: "request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &LoginError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return &LoginError{Type: ErrTypeConnectionRefused, Message: "connection refused", Err: err}
	}

	if errors.Is(err, context.Canceled) {
		return &LoginError{Type: ErrTypeNetwork, Message: "request cancelled", Err: err}
	}

	return &LoginError{Type: ErrTypeNetwork, Message: "request failed", Err: err}
}

// NewAuthError creates an error for credentials refused by the service.
func NewAuthError(statusCode int, code string) *LoginError {
	reason := invalidAuthCodes[code]
	if reason == "" {
		reason = "credentials refused"
	}
	return &LoginError{Type: ErrTypeAuth, Message: reason, StatusCode: statusCode, Code: code}
}

// NewHTTPError creates an error for an unexpected HTTP status.
func NewHTTPError(statusCode int) *LoginError {
	return &LoginError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
	}
}

// NewServiceError creates an error for a service error code that does not
// concern the credentials (maintenance, rate limiting, ...).
func NewServiceError(statusCode int, code string) *LoginError {
	msg := "service reported an error"
	if code == "" {
		msg = "service reported an error without a code"
	}
	return &LoginError{Type: ErrTypeService, Message: msg, StatusCode: statusCode, Code: code}
}

// NewParseError creates an error for an unreadable response body.
func NewParseError(statusCode int, err error) *LoginError {
	return &LoginError{Type: ErrTypeParse, Message: "malformed login response", StatusCode: statusCode, Err: err}
}

func asLoginError(err error) (*LoginError, bool) {
	var le *LoginError
	ok := errors.As(err, &le)
	return le, ok
}

// IsAuthError checks if an error means the credentials were refused
func IsAuthError(err error) bool {
	le, ok := asLoginError(err)
	return ok && le.Type == ErrTypeAuth
}

// IsNetworkError checks if an error is a network error (including timeout,
// connection refused and DNS)
func IsNetworkError(err error) bool {
	le, ok := asLoginError(err)
	if !ok {
		return false
	}
	switch le.Type {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS:
		return true
	}
	return false
}

// IsTimeoutError checks if an error is a request timeout
func IsTimeoutError(err error) bool {
	le, ok := asLoginError(err)
	return ok && le.Type == ErrTypeTimeout
}

// IsParseError checks if an error is a malformed response
func IsParseError(err error) bool {
	le, ok := asLoginError(err)
	return ok && le.Type == ErrTypeParse
}

// ShortMessage returns a concise, user-friendly error message
func ShortMessage(err error) string {
	le, ok := asLoginError(err)
	if !ok {
		return err.Error()
	}

	switch le.Type {
	case ErrTypeAuth:
		return "Invalid credentials - " + le.Message
	case ErrTypeTimeout:
		return "Neviweb did not respond (timeout)"
	case ErrTypeConnectionRefused:
		return "Neviweb refused the connection"
	case ErrTypeDNS:
		return "Cannot resolve the Neviweb host"
	case ErrTypeHTTP:
		return fmt.Sprintf("Neviweb error (HTTP %d)", le.StatusCode)
	case ErrTypeService:
		if le.Code != "" {
			return "Neviweb refused the login (" + le.Code + ")"
		}
		return "Neviweb refused the login"
	case ErrTypeParse:
		return "Unexpected response from Neviweb"
	default:
		return "Network error - check connection"
	}
}

// TroubleshootingHint returns user-facing advice for an error
func TroubleshootingHint(err error) string {
	le, ok := asLoginError(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch le.Type {
	case ErrTypeAuth:
		lines := []string{"Neviweb refused the credentials."}
		switch le.Code {
		case CodeAccountDisabled:
			lines = append(lines, "  • The account is locked; wait a few minutes or contact Sinopé support")
		case CodeUnknownLogin:
			lines = append(lines, "  • No account exists for this e-mail; check the spelling")
		default:
			lines = append(lines, "  • Check the password (it is case sensitive)")
		}
		lines = append(lines, "  • Reset the password at "+urls.PasswordReset)
		return strings.Join(lines, "\n")

	case ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS, ErrTypeNetwork:
		return strings.Join([]string{
			"Could not reach the Neviweb service.",
			"Troubleshooting:",
			"  • Check your internet connection",
			"  • Verify " + urls.Host + " opens in a browser",
			"  • Try increasing --timeout",
		}, "\n")

	case ErrTypeHTTP, ErrTypeService:
		return strings.Join([]string{
			"Neviweb answered but did not accept the login.",
			"The service may be under maintenance or rate limiting sessions.",
			"  • Try again in a few minutes",
			"  • See " + urls.TroubleshootingGuide,
		}, "\n")

	case ErrTypeParse:
		return "Neviweb returned an unexpected response. The API may have changed; see " + urls.IntegrationDocs

	default:
		return "An error occurred. Please check the error message for details."
	}
}
