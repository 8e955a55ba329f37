// Package neviweb validates Neviweb account credentials against the cloud
// login endpoint.
//
// A Validator issues exactly one POST per call and sorts the outcome into one
// of three results:
//
//   - Accepted: HTTP 200 and no error member in the body
//   - InvalidAuth: the body carries one of the bad-credential codes
//     (LOGIN_007, LOGIN_000, LOGIN_008), whatever the HTTP status
//   - CannotConnect: anything else, including transport failures, timeouts,
//     unexpected statuses, unknown codes and malformed bodies
//
// # Usage Example
//
//	v := neviweb.NewValidator(&http.Client{Timeout: 10 * time.Second})
//
//	switch v.Validate(ctx, "jane@example.com", password) {
//	case neviweb.Accepted:
//	    // create the entry
//	case neviweb.InvalidAuth:
//	    // ask for the password again
//	case neviweb.CannotConnect:
//	    // the service is unreachable, let the user retry
//	}
//
// The HTTP transport is always supplied by the caller; the package holds no
// shared client. There are no retries and no timeout beyond the transport's.
//
// # Error Handling
//
// Validate never returns an error. Callers that want the cause use Login,
// which returns a *LoginError carrying the failure category, the HTTP status
// and the service error code, and map it with Classify. ShortMessage and
// TroubleshootingHint turn it into user-facing text.
package neviweb
