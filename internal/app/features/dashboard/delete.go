// internal/app/features/dashboard/delete.go
package dashboard

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	"github.com/userhub/userhub/internal/app/policy/userpolicy"
	"github.com/userhub/userhub/internal/app/system/timeouts"
)

// HandleDelete processes POST /dashboard/{id}/delete.
//
// Super-admin only via RequireRole in routes.go; the self-delete check
// here is by username, so even a super admin cannot remove their own
// record. The confirm step happens in the browser before the POST.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, set, ok := h.sessionSet(r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad user id", err, "Invalid user ID.", "/dashboard")
		return
	}

	target, found := set.Get(id)
	if !found {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		target, err = h.Backend.GetUser(ctx, u.Token, id)
		if err != nil {
			if h.handleAuthErr(w, r, u, err) {
				return
			}
			uierrors.RenderNotFound(w, r, "User not found.", "/dashboard")
			return
		}
	}

	if !userpolicy.CanDeleteUser(u.Role, u.Name, target) {
		h.Log.Warn("delete refused",
			zap.Int64("id", id),
			zap.String("target", target.Username),
			zap.String("by", u.Name))
		uierrors.RenderForbidden(w, r, "You cannot delete this user.", "/dashboard")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.DeleteUser(ctx, u.Token, id); err != nil {
		if h.handleAuthErr(w, r, u, err) {
			return
		}
		h.ErrLog.LogServerError(w, r, "delete user failed", err, backend.Message(err), "/dashboard")
		return
	}

	set.Remove(id)

	h.Log.Info("user deleted",
		zap.Int64("id", id),
		zap.String("username", target.Username),
		zap.String("by", u.Name))

	http.Redirect(w, r, "/dashboard?deleted=1", http.StatusSeeOther)
}
