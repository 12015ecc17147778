// Package inputval validates user-form input before it is sent to the
// backend. Validation here exists to give immediate, friendly form
// errors; the backend revalidates everything it receives.
package inputval

import (
	"fmt"
	"strings"

	"github.com/userhub/userhub/internal/domain/models"
)

// Result collects validation failures in field order.
type Result struct {
	errs []string
}

// HasErrors reports whether any check failed.
func (r *Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure message, or "".
func (r *Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every failure message.
func (r *Result) All() []string { return append([]string(nil), r.errs...) }

// Require records a failure when value is blank.
func (r *Result) Require(label, value string) {
	if strings.TrimSpace(value) == "" {
		r.errs = append(r.errs, fmt.Sprintf("%s is required.", label))
	}
}

// MaxLen records a failure when value exceeds max characters.
func (r *Result) MaxLen(label, value string, max int) {
	if len(value) > max {
		r.errs = append(r.errs, fmt.Sprintf("%s must be at most %d characters.", label, max))
	}
}

// Email records a failure when value is not a plausible address.
func (r *Result) Email(label, value string) {
	if !IsValidEmail(value) {
		r.errs = append(r.errs, fmt.Sprintf("%s must be a valid email address.", label))
	}
}

// Role records a failure when value is not a backend role.
func (r *Result) Role(label, value string) {
	if !models.IsKnownRole(value) {
		r.errs = append(r.errs, fmt.Sprintf("%s must be one of %s.", label, strings.Join(models.AllRoles, ", ")))
	}
}

// Status records a failure when value is not ACTIVE or INACTIVE.
func (r *Result) Status(label, value string) {
	if value != models.StatusActive && value != models.StatusInactive {
		r.errs = append(r.errs, fmt.Sprintf("%s must be %s or %s.", label, models.StatusActive, models.StatusInactive))
	}
}

// IsValidEmail reports whether s looks like a single plain address:
// one @, a non-empty dot-sane local part, and a non-empty domain.
// Single-label domains are allowed for dev/test environments.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t<>") {
		return false
	}
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if domain == "" {
		return false
	}
	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") || strings.Contains(part, "..") {
			return false
		}
	}
	return true
}
