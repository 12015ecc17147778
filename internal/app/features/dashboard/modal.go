// internal/app/features/dashboard/modal.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	"github.com/userhub/userhub/internal/app/system/navigation"
	"github.com/userhub/userhub/internal/app/system/timeouts"
)

// ServeViewModal renders the view-details modal for a single user.
//
// Typically invoked via HTMX from the table and returns only the
// modal snippet. The record comes from the working set; a miss (stale
// set, direct link) falls back to a single-record backend fetch.
func (h *Handler) ServeViewModal(w http.ResponseWriter, r *http.Request) {
	u, set, ok := h.sessionSet(r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		uierrors.HTMXBadRequest(w, r, "Invalid user ID.", navigation.DashboardBackURL)
		return
	}

	rec, found := set.Get(id)
	if !found {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		rec, err = h.Backend.GetUser(ctx, u.Token, id)
		if err != nil {
			if h.handleAuthErr(w, r, u, err) {
				return
			}
			uierrors.HTMXNotFound(w, r, "User not found.", navigation.DashboardBackURL)
			return
		}
	}

	templates.RenderSnippet(w, "user_view_modal", viewModalData{
		User:    rec,
		BackURL: navigation.DashboardBackURL,
	})
}
