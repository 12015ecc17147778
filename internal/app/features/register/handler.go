// internal/app/features/register/handler.go
package register

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	"github.com/userhub/userhub/internal/app/system/htmlsanitize"
	"github.com/userhub/userhub/internal/app/system/inputval"
	"github.com/userhub/userhub/internal/app/system/normalize"
	"github.com/userhub/userhub/internal/app/system/timeouts"
	"github.com/userhub/userhub/internal/app/system/viewdata"
	"github.com/userhub/userhub/internal/domain/models"
)

// Handler owns self-registration.
type Handler struct {
	Backend *backend.Client
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(client *backend.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Backend: client,
		ErrLog:  errLog,
		Log:     logger,
	}
}

type registerFormData struct {
	viewdata.BaseVM
	Error string
	Roles []string

	// Sticky field values on validation failure. Passwords never stick.
	FirstName string
	LastName  string
	Username  string
	Email     string
	Role      string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /register                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "register", registerFormData{
		BaseVM: viewdata.NewBaseVM(r, "Register", "/"),
		Roles:  models.AllRoles,
		Role:   models.RoleUser,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /register                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/register")
		return
	}

	form := registerFormData{
		FirstName: htmlsanitize.Text(normalize.Name(r.FormValue("first_name"))),
		LastName:  htmlsanitize.Text(normalize.Name(r.FormValue("last_name"))),
		Username:  htmlsanitize.Text(normalize.Username(r.FormValue("username"))),
		Email:     normalize.Email(r.FormValue("email")),
		Role:      normalize.Role(r.FormValue("role")),
	}
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	if form.Role == "" {
		form.Role = models.RoleUser
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

	if v.HasErrors() {
		h.renderFormWithError(w, r, v.First(), form)
		return
	}
	if password != confirm {
		h.renderFormWithError(w, r, "Passwords do not match.", form)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, err := h.Backend.Register(ctx, backend.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Username:  form.Username,
		Email:     form.Email,
		Password:  password,
		Role:      form.Role,
	})
	if err != nil {
		h.Log.Info("registration rejected",
			zap.String("username", form.Username),
			zap.Error(err))
		h.renderFormWithError(w, r, backend.Message(err), form)
		return
	}

	h.Log.Info("registration succeeded", zap.String("username", form.Username))
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg string, form registerFormData) {
	form.BaseVM = viewdata.NewBaseVM(r, "Register", "/")
	form.Error = msg
	form.Roles = models.AllRoles
	templates.Render(w, r, "register", form)
}
