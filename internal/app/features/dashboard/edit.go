// internal/app/features/dashboard/edit.go
package dashboard

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	"github.com/userhub/userhub/internal/app/system/htmlsanitize"
	"github.com/userhub/userhub/internal/app/system/inputval"
	"github.com/userhub/userhub/internal/app/system/navigation"
	"github.com/userhub/userhub/internal/app/system/normalize"
	"github.com/userhub/userhub/internal/app/system/timeouts"
	"github.com/userhub/userhub/internal/app/system/viewdata"
	"github.com/userhub/userhub/internal/domain/models"
)

// ServeEdit renders the "Edit User" form pre-filled from the working
// set, falling back to a single-record fetch on a miss.
//
// Admin-only via RequireRole in routes.go.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
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

	data := formData{
		BaseVM:    viewdata.NewBaseVM(r, "Edit User", "/dashboard"),
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Username:  rec.Username,
		Email:     rec.Email,
		Role:      rec.Role,
		Status:    rec.Status,
		PhotoURL:  rec.PhotoURL,
		Roles:     models.AllRoles,
		Statuses:  models.AllStatuses,
		IsEdit:    true,
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "user_form_modal", data)
		return
	}
	templates.Render(w, r, "user_edit", data)
}

// HandleEdit processes the Edit User form POST. Passwords are not
// editable here; the password field is simply absent from the form.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	u, set, ok := h.sessionSet(r)
	if !ok {
		return
	}

	id, err := pathID(r)
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad user id", err, "Invalid user ID.", "/dashboard")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/dashboard")
		return
	}

	form := formData{
		ID:        id,
		FirstName: htmlsanitize.Text(normalize.Name(r.FormValue("first_name"))),
		LastName:  htmlsanitize.Text(normalize.Name(r.FormValue("last_name"))),
		Username:  htmlsanitize.Text(normalize.Username(r.FormValue("username"))),
		Email:     normalize.Email(r.FormValue("email")),
		Role:      normalize.Role(r.FormValue("role")),
		Status:    normalize.Status(r.FormValue("status")),
		PhotoURL:  normalize.URL(r.FormValue("photo_url")),
	}

	reRender := func(msg string) {
		form.BaseVM = viewdata.NewBaseVM(r, "Edit User", "/dashboard")
		form.Roles = models.AllRoles
		form.Statuses = models.AllStatuses
		form.IsEdit = true
		form.Error = template.HTML(template.HTMLEscapeString(msg))
		templates.Render(w, r, "user_edit", form)
	}

	var v inputval.Result
	v.Require("First name", form.FirstName)
	v.Require("Last name", form.LastName)
	v.Require("Username", form.Username)
	v.Require("Email", form.Email)
	v.MaxLen("Username", form.Username, 64)
	if form.Email != "" {
		v.Email("Email", form.Email)
	}
	v.Role("Role", form.Role)
	v.Status("Status", form.Status)
	if v.HasErrors() {
		reRender(v.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Backend.UpdateUser(ctx, u.Token, id, models.User{
		ID:        id,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Username:  form.Username,
		Email:     form.Email,
		Role:      form.Role,
		Status:    form.Status,
		PhotoURL:  form.PhotoURL,
	})
	if err != nil {
		if h.handleAuthErr(w, r, u, err) {
			return
		}
		h.Log.Warn("update user rejected",
			zap.Int64("id", id),
			zap.Error(err))
		reRender(backend.Message(err))
		return
	}

	// Layer the returned fields over the cached record so fields the
	// backend did not echo survive.
	updated.ID = id
	set.Merge(updated)

	h.Log.Info("user updated",
		zap.Int64("id", id),
		zap.String("by", u.Name))

	http.Redirect(w, r, "/dashboard?updated=1", http.StatusSeeOther)
}
