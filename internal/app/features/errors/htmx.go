// internal/app/features/errors/htmx.go
package errors

import (
	"fmt"
	"html"
	"net/http"
)

// snippet writes a small error fragment for HTMX swaps so a failed
// snippet request surfaces inside the page instead of replacing it
// with a full error document.
func snippet(w http.ResponseWriter, status int, msg, backURL string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w,
		`<div class="form-error" role="alert">%s <a href="%s">Go back</a></div>`,
		html.EscapeString(msg), html.EscapeString(backURL))
}

// HTMXBadRequest answers a bad snippet request: an inline fragment for
// HTMX callers, the full invalid-request page otherwise.
func HTMXBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if r.Header.Get("HX-Request") == "true" {
		snippet(w, http.StatusBadRequest, msg, backURL)
		return
	}
	RenderBadRequest(w, r, msg, backURL)
}

// HTMXNotFound answers a snippet request for a missing record.
func HTMXNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if r.Header.Get("HX-Request") == "true" {
		snippet(w, http.StatusNotFound, msg, backURL)
		return
	}
	RenderNotFound(w, r, msg, backURL)
}
