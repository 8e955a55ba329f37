package neviweb

import (
	"encoding/json"
	"fmt"
)

// Service error codes that mean the credentials themselves were refused.
const (
	// CodeBadPassword is returned when the password does not match the account.
	CodeBadPassword = "LOGIN_007"
	// CodeUnknownLogin is returned when no account exists for the e-mail.
	CodeUnknownLogin = "LOGIN_000"
	// CodeAccountDisabled is returned for locked or deactivated accounts.
	CodeAccountDisabled = "LOGIN_008"
)

// invalidAuthCodes is the closed set of codes mapped to InvalidAuth.
var invalidAuthCodes = map[string]string{
	CodeBadPassword:     "wrong password",
	CodeUnknownLogin:    "unknown account",
	CodeAccountDisabled: "account locked or disabled",
}

// IsInvalidAuthCode reports whether a service error code denotes rejected
// credentials.
func IsInvalidAuthCode(code string) bool {
	_, ok := invalidAuthCodes[code]
	return ok
}

// loginRequest is the JSON body posted to the login endpoint.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the part of the login reply the validator inspects.
type loginResponse struct {
	// HasError is true when the body has a non-null "error" member.
	HasError bool
	// Code is error.code when the error member is an object with a string code.
	Code string
}

// parseLoginResponse decodes a login reply. The body must be a JSON object;
// any other shape is a parse error.
func parseLoginResponse(body []byte) (*loginResponse, error) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("login response is not a JSON object")
	}

	resp := &loginResponse{}
	raw, present := doc["error"]
	if !present || raw == nil {
		return resp, nil
	}

	resp.HasError = true
	if obj, ok := raw.(map[string]any); ok {
		if code, ok := obj["code"].(string); ok {
			resp.Code = code
		}
	}
	return resp, nil
}
