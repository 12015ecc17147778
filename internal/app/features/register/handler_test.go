package register_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	uierrors "github.com/userhub/userhub/internal/app/features/errors"
	registerfeature "github.com/userhub/userhub/internal/app/features/register"
	"github.com/userhub/userhub/internal/testutil"
)

func newTestHandler(t *testing.T) (*registerfeature.Handler, *testutil.FakeBackend) {
	t.Helper()

	fb := testutil.NewFakeBackend(t, nil)
	logger := zap.NewNop()
	client := backend.New(fb.URL(), 5*time.Second, logger)
	return registerfeature.NewHandler(client, uierrors.NewErrorLogger(logger), logger), fb
}

func postRegister(t *testing.T, h *registerfeature.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		h.HandleRegisterPost(rec, req)
	}()
	return rec
}

func validForm() url.Values {
	return url.Values{
		"first_name":       {"Katherine"},
		"last_name":        {"Johnson"},
		"username":         {"katherine"},
		"email":            {"kj@example.com"},
		"password":         {"pw123456"},
		"confirm_password": {"pw123456"},
		"role":             {"USER"},
	}
}

func TestHandleRegisterPost_Success(t *testing.T) {
	h, fb := newTestHandler(t)

	rec := postRegister(t, h, validForm())

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("code = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?registered=1" {
		t.Errorf("Location = %q", loc)
	}
	if len(fb.Users()) != 1 {
		t.Fatalf("backend holds %d users, want 1", len(fb.Users()))
	}
	if fb.Users()[0].Username != "katherine" {
		t.Errorf("registered user = %+v", fb.Users()[0])
	}
}

func TestHandleRegisterPost_DefaultRole(t *testing.T) {
	h, fb := newTestHandler(t)

	form := validForm()
	form.Del("role")
	postRegister(t, h, form)

	if len(fb.Users()) != 1 || fb.Users()[0].Role != "USER" {
		t.Errorf("users = %+v, want default role USER", fb.Users())
	}
}

func TestHandleRegisterPost_PasswordMismatch(t *testing.T) {
	h, fb := newTestHandler(t)

	form := validForm()
	form.Set("confirm_password", "different")
	rec := postRegister(t, h, form)

	if rec.Code == http.StatusSeeOther {
		t.Error("mismatched passwords must not redirect")
	}
	if len(fb.Users()) != 0 {
		t.Error("backend called despite mismatched passwords")
	}
}

func TestHandleRegisterPost_BackendRejection(t *testing.T) {
	h, fb := newTestHandler(t)

	form := validForm()
	form.Set("username", "taken")
	rec := postRegister(t, h, form)

	if rec.Code == http.StatusSeeOther {
		t.Error("rejected registration must not redirect")
	}
	if len(fb.Users()) != 0 {
		t.Error("user stored despite rejection")
	}
}

func TestHandleRegisterPost_InvalidEmail(t *testing.T) {
	h, fb := newTestHandler(t)

	form := validForm()
	form.Set("email", "not-an-email")
	rec := postRegister(t, h, form)

	if rec.Code == http.StatusSeeOther {
		t.Error("invalid email must not redirect")
	}
	if len(fb.Users()) != 0 {
		t.Error("backend called despite invalid email")
	}
}
