// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/userhub/userhub/internal/app/system/auth"
	"github.com/userhub/userhub/internal/domain/models"
)

// Routes mounts all dashboard routes under the path where this router
// is mounted (typically "/dashboard" from bootstrap).
//
// Example mount from bootstrap:
//
//	h := dashboard.NewHandler(client, sets, sessionMgr, errLog, logger)
//	r.Mount("/dashboard", dashboard.Routes(h, sessionMgr))
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		// Every signed-in user can view the table and the details modal.
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/table", h.ServeTable)
		pr.Get("/{id}/view", h.ServeViewModal)

		// Create and edit are for admins and super admins.
		pr.Group(func(ar chi.Router) {
			ar.Use(sm.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))

			ar.Get("/new", h.ServeNew)
			ar.Post("/", h.HandleCreate)
			ar.Get("/{id}/edit", h.ServeEdit)
			ar.Post("/{id}/edit", h.HandleEdit)
		})

		// Delete is super-admin only.
		pr.Group(func(sr chi.Router) {
			sr.Use(sm.RequireRole(models.RoleSuperAdmin))

			sr.Post("/{id}/delete", h.HandleDelete)
		})
	})

	return r
}
