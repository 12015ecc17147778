package errors_test

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/userhub/userhub/internal/app/features/errors"
)

// renderTolerant swallows the panic an uninitialized template engine
// raises; the status codes are what is under test.
func renderTolerant(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func TestLogServerError_Writes500(t *testing.T) {
	el := uierrors.NewErrorLogger(zap.NewNop())

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()

	renderTolerant(func() {
		el.LogServerError(rec, req, "save session failed", stderrors.New("boom"), "A server error occurred.", "/")
	})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", rec.Code)
	}
}

func TestLogBadRequest_Writes400(t *testing.T) {
	el := uierrors.NewErrorLogger(zap.NewNop())

	req := httptest.NewRequest("POST", "/dashboard", nil)
	rec := httptest.NewRecorder()

	renderTolerant(func() {
		el.LogBadRequest(rec, req, "parse form failed", stderrors.New("bad form"), "Invalid form data.", "/dashboard")
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", rec.Code)
	}
}
