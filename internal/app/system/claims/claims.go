// Package claims decodes display claims from a bearer token.
//
// The backend signs and verifies tokens; this package only reads the
// payload segment so the UI can show who is signed in and which
// affordances to render. Nothing here is an authorization decision:
// the backend re-checks the token on every request, and a forged or
// tampered token simply produces a 401 there.
package claims

import (
	"github.com/golang-jwt/jwt/v5"
)

// DisplayClaims is the non-authoritative view of a token's payload.
// The name is deliberate: these values gate nothing on the server side
// and must never be promoted into a permission check.
type DisplayClaims struct {
	SubjectName string // "sub" claim; empty when absent or undecodable
	Role        string // "role" claim; empty when absent
	UserID      int64  // "userId" claim; zero when absent
}

// tokenClaims matches the payload fields the backend is known to emit.
type tokenClaims struct {
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
	jwt.RegisteredClaims
}

// Decode extracts display claims from token without verifying the
// signature. A malformed token yields zero-valued DisplayClaims; the
// caller applies its own fallbacks (placeholder name, cached role).
func Decode(token string) DisplayClaims {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return DisplayClaims{}
	}
	return DisplayClaims{
		SubjectName: tc.Subject,
		Role:        tc.Role,
		UserID:      tc.UserID,
	}
}
