// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/system/auth"
	"github.com/userhub/userhub/internal/app/system/userset"
)

// Handler ends the browser session: the cookie is cleared and the
// login's working set is discarded.
type Handler struct {
	SessionMgr *auth.SessionManager
	Sets       *userset.Manager
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, sets *userset.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		SessionMgr: sessionMgr,
		Sets:       sets,
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /logout                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		if u.SetID != "" {
			h.Sets.Drop(u.SetID)
		}
		h.Log.Info("logout", zap.String("user", u.Name))
	}

	h.SessionMgr.Clear(w, r)

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
