package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	healthfeature "github.com/userhub/userhub/internal/app/features/health"
	"github.com/userhub/userhub/internal/testutil"
)

func TestServe_BackendReachable(t *testing.T) {
	fb := testutil.NewFakeBackend(t, nil)
	logger := zap.NewNop()
	h := healthfeature.NewHandler(backend.New(fb.URL(), 5*time.Second, logger), logger)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body struct {
		Status  string `json:"status"`
		Backend string `json:"backend"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if body.Status != "ok" || body.Backend != "reachable" {
		t.Errorf("body = %+v", body)
	}
}

func TestServe_BackendDown(t *testing.T) {
	fb := testutil.NewFakeBackend(t, nil)
	logger := zap.NewNop()
	h := healthfeature.NewHandler(backend.New(fb.URL(), 2*time.Second, logger), logger)
	fb.Server.Close()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("code = %d, want 503", rec.Code)
	}

	var body struct {
		Status  string `json:"status"`
		Backend string `json:"backend"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if body.Status != "error" || body.Backend != "unreachable" {
		t.Errorf("body = %+v", body)
	}
}
