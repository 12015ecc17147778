// internal/app/features/dashboard/list.go
package dashboard

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/userhub/userhub/internal/app/policy/userpolicy"
	"github.com/userhub/userhub/internal/app/system/timeouts"
	"github.com/userhub/userhub/internal/app/system/viewdata"
)

// ServeList handles GET /dashboard.
//
// A full page load refetches the list from the backend and rebuilds
// the working set; the search box then filters that set in place via
// the table snippet without further backend calls.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, set, ok := h.sessionSet(r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.refresh(ctx, u.Token, set); err != nil {
		if h.handleAuthErr(w, r, u, err) {
			return
		}
		h.ErrLog.LogServerError(w, r, "list users failed", err, "The user list could not be loaded.", "/")
		return
	}

	searchQ := strings.TrimSpace(r.URL.Query().Get("search"))
	shown := set.Filter(searchQ)

	templates.Render(w, r, "dashboard", listData{
		BaseVM:      viewdata.NewBaseVM(r, "Dashboard", "/"),
		SearchQuery: searchQ,
		Shown:       len(shown),
		Total:       set.Len(),
		CanCreate:   userpolicy.CanCreateUsers(u.Role),
		Rows:        buildRows(shown, u.Role, u.Name),
		Flash:       flashText(r),
	})
}

// ServeTable handles GET /dashboard/table, the HTMX target of the
// search box. It filters the cached working set; only an empty set
// (new session, TTL-swept set) triggers a backend fetch.
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	u, set, ok := h.sessionSet(r)
	if !ok {
		return
	}

	if set.Len() == 0 {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()

		if err := h.refresh(ctx, u.Token, set); err != nil {
			if h.handleAuthErr(w, r, u, err) {
				return
			}
			h.ErrLog.LogServerError(w, r, "list users failed", err, "The user list could not be loaded.", "/dashboard")
			return
		}
	}

	searchQ := strings.TrimSpace(r.URL.Query().Get("search"))
	shown := set.Filter(searchQ)

	templates.RenderSnippet(w, "user_table", tableData{
		SearchQuery: searchQ,
		Shown:       len(shown),
		Total:       set.Len(),
		Rows:        buildRows(shown, u.Role, u.Name),
	})
}
