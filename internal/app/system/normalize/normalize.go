// Package normalize trims and canonicalizes form input before it is
// validated or sent to the backend.
package normalize

import "strings"

// Name trims surrounding whitespace, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Username trims surrounding whitespace. Usernames are compared
// exactly, so case is preserved.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role uppercases and trims a role to the backend's spelling
// (ADMIN, SUPER_ADMIN, ...).
func Role(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Status uppercases and trims a status to the backend's spelling
// (ACTIVE, INACTIVE).
func Status(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// URL trims a URL-ish field such as photoUrl.
func URL(s string) string {
	return strings.TrimSpace(s)
}
