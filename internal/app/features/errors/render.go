// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/userhub/userhub/internal/app/system/auth"
)

// SessionExpiredDelaySeconds is how long the session-expired page sits
// before redirecting to login. Delayed, not immediate, so the message
// is readable.
const SessionExpiredDelaySeconds = 2

func userContext(r *http.Request) (role, name string, signed bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", false
	}
	return u.Role, u.Name, true
}

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it defaults to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	role, name, signed := userContext(r)
	if backURL == "" {
		backURL = "/login"
	}

	templates.Render(w, r, "error_page", pageData{
		Title:      "Sign in required",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    "Please sign in to continue.",
		BackURL:    backURL,
	})
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signed := userContext(r)
	if backURL == "" {
		backURL = "/"
	}

	templates.Render(w, r, "error_page", pageData{
		Title:      "Access denied",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}

// RenderSessionExpired shows the session-expired message and schedules
// a redirect to loginURL after SessionExpiredDelaySeconds. The caller
// has already cleared the session cookie.
func RenderSessionExpired(w http.ResponseWriter, r *http.Request, loginURL string) {
	if loginURL == "" {
		loginURL = "/login"
	}

	templates.Render(w, r, "error_page", pageData{
		Title:         "Session expired",
		Message:       "Session expired or unauthorized. Please log in again.",
		BackURL:       loginURL,
		RedirectURL:   loginURL,
		RedirectDelay: SessionExpiredDelaySeconds,
	})
}

// RenderServerError shows a generic failure page for unexpected
// server-side errors.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signed := userContext(r)
	if backURL == "" {
		backURL = "/"
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", pageData{
		Title:      "Something went wrong",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}

// RenderBadRequest shows a friendly invalid-request page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signed := userContext(r)

	w.WriteHeader(http.StatusBadRequest)
	templates.Render(w, r, "error_page", pageData{
		Title:      "Invalid request",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}

// RenderNotFound shows a friendly not-found page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, signed := userContext(r)

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", pageData{
		Title:      "Not found",
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}
