package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	logoutfeature "github.com/userhub/userhub/internal/app/features/logout"
	"github.com/userhub/userhub/internal/app/system/auth"
	"github.com/userhub/userhub/internal/app/system/userset"
	"github.com/userhub/userhub/internal/testutil"
)

func newTestHandler(t *testing.T) (*logoutfeature.Handler, *userset.Manager) {
	t.Helper()

	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager() error = %v", err)
	}
	sets := userset.NewManager()
	return logoutfeature.NewHandler(sm, sets, logger), sets
}

func TestHandleLogout_ClearsSessionAndSet(t *testing.T) {
	h, sets := newTestHandler(t)
	sets.Get("sid-out").Replace(testutil.SampleUsers())

	u := &auth.SessionUser{Name: "ada", Role: "ADMIN", Token: "tok", SetID: "sid-out"}
	req := auth.WithTestUser(httptest.NewRequest("POST", "/logout", nil), u)
	rec := httptest.NewRecorder()

	h.HandleLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("code = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
	if got := sets.Get("sid-out").Len(); got != 0 {
		t.Errorf("working set holds %d users after logout, want dropped", got)
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie not expired")
	}
}

func TestHandleLogout_HTMXRedirect(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	h.HandleLogout(rec, req)

	if rec.Header().Get("HX-Redirect") != "/" {
		t.Errorf("HX-Redirect = %q, want /", rec.Header().Get("HX-Redirect"))
	}
}

func TestHandleLogout_AnonymousIsSafe(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	rec := httptest.NewRecorder()

	h.HandleLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("code = %d, want 303 even without a session", rec.Code)
	}
}
