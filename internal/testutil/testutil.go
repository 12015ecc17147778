// internal/testutil/testutil.go
package testutil

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/userhub/userhub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestContext returns a context with a generous timeout for test calls.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// MakeToken builds an unsigned JWT-shaped token carrying the given
// display claims. The signature segment is junk; nothing in this app
// verifies it, only the payload is read.
func MakeToken(t *testing.T, sub, role string, userID int64) string {
	t.Helper()

	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	payload := map[string]any{
		"sub":    sub,
		"role":   role,
		"userId": userID,
	}

	enc := func(v any) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal token segment: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(raw)
	}

	return enc(header) + "." + enc(payload) + "." + base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

// SampleUsers returns a small, ordered user list shaped like a backend
// /api/users/all response.
func SampleUsers() []models.User {
	return []models.User{
		{
			ID:        1,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Username:  "ada",
			Email:     "ada@example.com",
			Role:      models.RoleSuperAdmin,
			Status:    models.StatusActive,
		},
		{
			ID:        2,
			FirstName: "Grace",
			LastName:  "Hopper",
			Username:  "grace",
			Email:     "grace@example.com",
			Role:      models.RoleAdmin,
			Status:    models.StatusActive,
			PhotoURL:  "https://example.com/grace.png",
		},
		{
			ID:        3,
			FirstName: "Alan",
			LastName:  "Turing",
			Username:  "alan",
			Email:     "alan@example.com",
			Role:      models.RoleUser,
			Status:    models.StatusInactive,
		},
	}
}
