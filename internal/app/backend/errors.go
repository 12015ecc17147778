// internal/app/backend/errors.go
package backend

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when an authenticated call is attempted
// without a token in the session. Callers route to the login page.
var ErrUnauthenticated = errors.New("no authentication token")

// ErrSessionExpired is returned when the backend rejects the token with
// HTTP 401. Callers clear the session and show the session-expired page,
// which redirects to login after a short delay.
var ErrSessionExpired = errors.New("session expired or unauthorized")

// RequestError carries a human-readable message extracted from a
// non-success backend response (any status other than 2xx and 401).
// It is surfaced inline near the form or view that triggered the call;
// it does not clear the session and does not navigate.
type RequestError struct {
	Status  int    // HTTP status, 0 for network/parse failures
	Message string // message from the error body, or a fallback
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Message returns the inline error text for err, with a generic
// fallback when the error carries none.
func Message(err error) string {
	var re *RequestError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return "No authentication token found. Please log in."
	case errors.Is(err, ErrSessionExpired):
		return "Session expired or unauthorized. Please log in again."
	case errors.As(err, &re) && re.Message != "":
		return re.Message
	}
	return "The request could not be completed. Please try again."
}
