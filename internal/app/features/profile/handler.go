// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	"github.com/userhub/userhub/internal/app/system/auth"
	"github.com/userhub/userhub/internal/app/system/timeouts"
	"github.com/userhub/userhub/internal/app/system/viewdata"
	"github.com/userhub/userhub/internal/domain/models"
)

// Handler serves the signed-in user's own record.
type Handler struct {
	Backend    *backend.Client
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(client *backend.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Backend:    client,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

type profileData struct {
	viewdata.BaseVM
	User  models.User
	Error string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /profile                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.Backend.Profile(ctx, u.Token)
	if err != nil {
		if errors.Is(err, backend.ErrSessionExpired) || errors.Is(err, backend.ErrUnauthenticated) {
			h.SessionMgr.Clear(w, r)
			uierrors.RenderSessionExpired(w, r, "/login")
			return
		}
		h.Log.Warn("profile fetch failed", zap.Error(err))
		templates.Render(w, r, "profile", profileData{
			BaseVM: viewdata.NewBaseVM(r, "Profile", "/dashboard"),
			Error:  backend.Message(err),
		})
		return
	}

	templates.Render(w, r, "profile", profileData{
		BaseVM: viewdata.NewBaseVM(r, "Profile", "/dashboard"),
		User:   rec,
	})
}
