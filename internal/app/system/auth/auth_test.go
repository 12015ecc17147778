package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/system/auth"
	"github.com/userhub/userhub/internal/testutil"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(testKey, "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager() error = %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty session key")
	}
}

// roundTrip sets a session, then replays the cookie on a fresh request
// through LoadSessionUser and returns the user it injected.
func roundTrip(t *testing.T, sm *auth.SessionManager, token, role, setID string) (*auth.SessionUser, bool) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	if err := sm.SetSession(rec, req, token, role, setID); err != nil {
		t.Fatalf("SetSession() error = %v", err)
	}

	var got *auth.SessionUser
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.CurrentUser(r)
	})

	req2 := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		req2.AddCookie(c)
	}
	sm.LoadSessionUser(next).ServeHTTP(httptest.NewRecorder(), req2)
	return got, ok
}

func TestSessionRoundTrip(t *testing.T) {
	sm := newManager(t)
	token := testutil.MakeToken(t, "ada", "SUPER_ADMIN", 1)

	u, ok := roundTrip(t, sm, token, "SUPER_ADMIN", "sid-1")
	if !ok {
		t.Fatal("no user loaded from session")
	}
	if u.Name != "ada" || u.Role != "SUPER_ADMIN" || u.UserID != 1 {
		t.Errorf("user = %+v", u)
	}
	if u.Token != token {
		t.Error("token not carried through session")
	}
	if u.SetID != "sid-1" {
		t.Errorf("SetID = %q, want sid-1", u.SetID)
	}
}

func TestLoadSessionUser_UndecodableTokenFallsBack(t *testing.T) {
	sm := newManager(t)

	u, ok := roundTrip(t, sm, "garbage-token", "ADMIN", "sid-2")
	if !ok {
		t.Fatal("no user loaded; an undecodable token should still sign in")
	}
	if u.Name != auth.GuestName {
		t.Errorf("Name = %q, want %q", u.Name, auth.GuestName)
	}
	if u.Role != "ADMIN" {
		t.Errorf("Role = %q, want cached role ADMIN", u.Role)
	}
}

func TestLoadSessionUser_NoCookie(t *testing.T) {
	sm := newManager(t)

	var seen bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); ok {
			t.Error("user present without a session")
		}
		seen = true
	})

	req := httptest.NewRequest("GET", "/", nil)
	sm.LoadSessionUser(next).ServeHTTP(httptest.NewRecorder(), req)
	if !seen {
		t.Error("next handler not called")
	}
}

func TestClear_ExpiresCookie(t *testing.T) {
	sm := newManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/logout", nil)
	sm.Clear(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no cookie written by Clear")
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("MaxAge = %d, want -1", cookies[0].MaxAge)
	}
}

func TestRequireSignedIn(t *testing.T) {
	sm := newManager(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := sm.RequireSignedIn(next)

	t.Run("signed in passes", func(t *testing.T) {
		req := auth.WithTestUser(httptest.NewRequest("GET", "/dashboard", nil), &auth.SessionUser{Name: "ada", Role: "ADMIN"})
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("code = %d, want 200", rec.Code)
		}
	})

	t.Run("browser redirected to login", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("code = %d, want 303", rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login?return=") {
			t.Errorf("Location = %q", loc)
		}
	})

	t.Run("htmx gets HX-Redirect", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard/table", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
		if loc := rec.Header().Get("HX-Redirect"); !strings.HasPrefix(loc, "/login?return=") {
			t.Errorf("HX-Redirect = %q", loc)
		}
	})

	t.Run("api gets plain 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	sm := newManager(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := sm.RequireRole("ADMIN", "SUPER_ADMIN")(next)

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"admin allowed", "ADMIN", http.StatusOK},
		{"super admin allowed", "SUPER_ADMIN", http.StatusOK},
		{"lowercase allowed", "admin", http.StatusOK},
		{"user forbidden", "USER", http.StatusForbidden},
		{"hr forbidden", "HR", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := auth.WithTestUser(httptest.NewRequest("GET", "/dashboard/new", nil), &auth.SessionUser{Name: "x", Role: tt.role})
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}

	t.Run("wrong role browser redirected to forbidden", func(t *testing.T) {
		req := auth.WithTestUser(httptest.NewRequest("GET", "/dashboard/new", nil), &auth.SessionUser{Name: "x", Role: "USER"})
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("code = %d, want 303", rec.Code)
		}
		if rec.Header().Get("Location") != "/forbidden" {
			t.Errorf("Location = %q, want /forbidden", rec.Header().Get("Location"))
		}
	})

	t.Run("unauthenticated gets 401 semantics", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard/new", nil)
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", rec.Code)
		}
	})
}
