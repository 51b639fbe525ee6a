package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthenticated is returned when an operation requiring a signed-in
// session is attempted without one. No network call is made in that case.
var ErrUnauthenticated = errors.New("not signed in")

// CodeRegistrationExpired is the structured error code the backend sends when
// a pending registration session has been invalidated.
const CodeRegistrationExpired = "REGISTRATION_EXPIRED"

// ValidationError reports client-side field validation failures. It is raised
// before any network call and carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// RequestError is any non-2xx backend response. Message is forwarded verbatim
// for display; Code is the structured error code when the backend provides one.
type RequestError struct {
	Status  int
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsSessionExpired reports whether err signals that the pending registration
// session has been invalidated by the backend. The structured code is
// authoritative; the message-substring check is a migration shim for backends
// that only return free-form messages.
func IsSessionExpired(err error) bool {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return false
	}
	if reqErr.Code == CodeRegistrationExpired {
		return true
	}
	msg := strings.ToLower(reqErr.Message)
	return strings.Contains(msg, "expired") || strings.Contains(msg, "start again")
}

// DisplayMessage extracts a user-facing message from err, falling back to a
// generic one for anything that is not a backend response.
func DisplayMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error()
	}
	if errors.Is(err, ErrUnauthenticated) {
		return "Please sign in to continue"
	}
	return "Something went wrong, please try again"
}
