// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/userhub/userhub/internal/app/system/auth"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	IsLoggedIn bool
	Role       string
	UserName   string
	Message    string
	BackURL    string

	// RedirectURL/RedirectDelay drive a meta refresh when set; used by
	// the session-expired page so the message stays readable before
	// the browser moves to the login view.
	RedirectURL   string
	RedirectDelay int
}

// Handler renders the standalone error pages. No dependencies; it
// just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed {
		role, name = u.Role, u.Name
	}

	templates.Render(w, r, "error_page", pageData{
		Title:      "Access denied",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    "You don't have permission to view this page.",
		BackURL:    "/",
	})
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed {
		role, name = u.Role, u.Name
	}

	templates.Render(w, r, "error_page", pageData{
		Title:      "Sign in required",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    "Please sign in to continue.",
		BackURL:    "/login",
	})
}

// SessionExpired renders the expiry notice with its delayed redirect
// to login. Handlers that detect a backend 401 mid-swap send HTMX
// callers here whole-page via HX-Redirect; the session cookie has
// already been cleared by then.
// GET /session-expired
func (h *Handler) SessionExpired(w http.ResponseWriter, r *http.Request) {
	RenderSessionExpired(w, r, "/login")
}
