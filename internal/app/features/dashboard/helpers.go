// internal/app/features/dashboard/helpers.go
package dashboard

// Terminology: User Identifiers
//   - ID / id: the numeric identifier the backend assigns a user record
//   - Username / username: the unique login name; self-delete checks
//     compare usernames, not ids

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	"github.com/userhub/userhub/internal/app/policy/userpolicy"
	"github.com/userhub/userhub/internal/app/system/auth"
	"github.com/userhub/userhub/internal/app/system/userset"
	"github.com/userhub/userhub/internal/domain/models"
)

// sessionSet returns the request's user and their working set.
// Authorization: RequireSignedIn middleware in routes.go ensures a user
// is present before handlers calling this run.
func (h *Handler) sessionSet(r *http.Request) (*auth.SessionUser, *userset.Set, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return nil, nil, false
	}
	return u, h.Sets.Get(u.SetID), true
}

// refresh replaces the working set with a full fetch, preserving the
// backend's order.
func (h *Handler) refresh(ctx context.Context, token string, set *userset.Set) error {
	users, err := h.Backend.ListUsers(ctx, token)
	if err != nil {
		return err
	}
	set.Replace(users)
	return nil
}

// handleAuthErr deals with the errors that end the session: the cookie
// is cleared, the working set is dropped, and the session-expired page
// takes over. Returns true when the error was one of those.
func (h *Handler) handleAuthErr(w http.ResponseWriter, r *http.Request, u *auth.SessionUser, err error) bool {
	if !errors.Is(err, backend.ErrSessionExpired) && !errors.Is(err, backend.ErrUnauthenticated) {
		return false
	}

	h.Log.Info("session ended by backend",
		zap.String("user", u.Name),
		zap.Error(err))

	h.Sets.Drop(u.SetID)
	h.SessionMgr.Clear(w, r)

	// A meta refresh inside a swapped fragment never fires; HTMX
	// callers get a whole-page redirect to the expiry notice instead.
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/session-expired")
		w.WriteHeader(http.StatusUnauthorized)
		return true
	}

	uierrors.RenderSessionExpired(w, r, "/login")
	return true
}

// buildRows decorates users with the affordances the viewer's role
// allows. Row order is the working-set order.
func buildRows(users []models.User, role, sessionUsername string) []userRow {
	canEdit := userpolicy.CanEditUsers(role)
	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow{
			User:      u,
			CanEdit:   canEdit,
			CanDelete: userpolicy.CanDeleteUser(role, sessionUsername, u),
		})
	}
	return rows
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// flashText maps the post-mutation query flags to a notice line.
func flashText(r *http.Request) string {
	q := r.URL.Query()
	switch {
	case q.Get("created") == "1":
		return "User created."
	case q.Get("updated") == "1":
		return "User updated."
	case q.Get("deleted") == "1":
		return "User deleted."
	}
	return ""
}
