// internal/app/features/dashboard/handler.go
package dashboard

import (
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	"github.com/userhub/userhub/internal/app/system/auth"
	"github.com/userhub/userhub/internal/app/system/userset"
)

// Handler owns the user-management dashboard: the searchable table,
// the view modal, and the create/edit/delete flows. All record data
// comes from the backend; the working set caches one login's view of
// it between mutations.
type Handler struct {
	Backend    *backend.Client
	Sets       *userset.Manager
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(
	client *backend.Client,
	sets *userset.Manager,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Backend:    client,
		Sets:       sets,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}
