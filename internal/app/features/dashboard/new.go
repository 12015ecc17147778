// internal/app/features/dashboard/new.go
package dashboard

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	"github.com/userhub/userhub/internal/app/system/htmlsanitize"
	"github.com/userhub/userhub/internal/app/system/inputval"
	"github.com/userhub/userhub/internal/app/system/normalize"
	"github.com/userhub/userhub/internal/app/system/timeouts"
	"github.com/userhub/userhub/internal/app/system/viewdata"
	"github.com/userhub/userhub/internal/domain/models"
)

// ServeNew renders the "Add User" form.
//
// Admin-only via RequireRole in routes.go. HTMX requests get the bare
// modal snippet; direct navigation gets the full page.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM:   viewdata.NewBaseVM(r, "Add User", "/dashboard"),
		Role:     models.RoleUser,
		Status:   models.StatusActive,
		Roles:    models.AllRoles,
		Statuses: models.AllStatuses,
		IsEdit:   false,
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "user_form_modal", data)
		return
	}
	templates.Render(w, r, "user_new", data)
}

// HandleCreate processes the Add User form POST.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, set, ok := h.sessionSet(r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/dashboard")
		return
	}

	form := formData{
		FirstName: htmlsanitize.Text(normalize.Name(r.FormValue("first_name"))),
		LastName:  htmlsanitize.Text(normalize.Name(r.FormValue("last_name"))),
		Username:  htmlsanitize.Text(normalize.Username(r.FormValue("username"))),
		Email:     normalize.Email(r.FormValue("email")),
		Role:      normalize.Role(r.FormValue("role")),
		Status:    normalize.Status(r.FormValue("status")),
		PhotoURL:  normalize.URL(r.FormValue("photo_url")),
	}
	password := r.FormValue("password")

	reRender := func(msg string) {
		form.BaseVM = viewdata.NewBaseVM(r, "Add User", "/dashboard")
		form.Roles = models.AllRoles
		form.Statuses = models.AllStatuses
		form.Error = template.HTML(template.HTMLEscapeString(msg))
		templates.Render(w, r, "user_new", form)
	}

	var v inputval.Result
	v.Require("First name", form.FirstName)
	v.Require("Last name", form.LastName)
	v.Require("Username", form.Username)
	v.Require("Email", form.Email)
	v.Require("Password", password)
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

	created, err := h.Backend.CreateUser(ctx, u.Token, models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Username:  form.Username,
		Email:     form.Email,
		Password:  password,
		Role:      form.Role,
		Status:    form.Status,
		PhotoURL:  form.PhotoURL,
	})
	if err != nil {
		if h.handleAuthErr(w, r, u, err) {
			return
		}
		h.Log.Warn("create user rejected",
			zap.String("username", form.Username),
			zap.Error(err))
		reRender(backend.Message(err))
		return
	}

	// New records go to the end of the table; no refetch.
	set.Append(created)

	h.Log.Info("user created",
		zap.Int64("id", created.ID),
		zap.String("username", created.Username),
		zap.String("by", u.Name))

	http.Redirect(w, r, "/dashboard?created=1", http.StatusSeeOther)
}
