// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	"github.com/userhub/userhub/internal/app/system/auth"
	"github.com/userhub/userhub/internal/app/system/navigation"
	"github.com/userhub/userhub/internal/app/system/normalize"
	"github.com/userhub/userhub/internal/app/system/timeouts"
	"github.com/userhub/userhub/internal/app/system/viewdata"
)

// Handler owns the login flow: credential form in, bearer token out.
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

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Username  string
	ReturnURL string
	Notice    string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	data := loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ReturnURL: query.Get(r, "return"),
	}
	if query.Get(r, "registered") == "1" {
		data.Notice = "Account created. Please log in."
	}

	templates.Render(w, r, "login", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	username := normalize.Username(r.FormValue("username"))
	password := r.FormValue("password")
	ret := r.FormValue("return")

	if username == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your username and password.", username, ret)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Backend.Login(ctx, backend.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		h.Log.Info("login rejected",
			zap.String("username", username),
			zap.Error(err))
		h.renderFormWithError(w, r, backend.Message(err), username, ret)
		return
	}
	if res.Token == "" {
		h.renderFormWithError(w, r, "The login service returned no token. Please try again.", username, ret)
		return
	}

	// Token, role, and a fresh working-set id are stored together.
	if err := h.SessionMgr.SetSession(w, r, res.Token, res.Role, uuid.NewString()); err != nil {
		h.ErrLog.LogServerError(w, r, "save session failed", err, "A server error occurred.", "/login")
		return
	}

	h.Log.Info("login succeeded",
		zap.String("username", username),
		zap.String("role", res.Role))

	dest := navigation.SafeBackURL(r, navigation.DashboardBackURL)
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, username, ret string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Error:     msg,
		Username:  username,
		ReturnURL: ret,
	})
}
