// internal/testutil/fakebackend.go
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/userhub/userhub/internal/domain/models"
)

// FakeBackend is an in-memory stand-in for the user-account service.
// It implements the REST surface the client calls, honors bearer
// tokens (any non-empty token except "expired" is accepted), and
// records mutations so tests can assert on them.
type FakeBackend struct {
	mu     sync.Mutex
	users  []models.User
	nextID int64

	Server *httptest.Server
}

// NewFakeBackend starts a fake backend seeded with users. The server
// is shut down when the test ends.
func NewFakeBackend(t *testing.T, seed []models.User) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		users:  append([]models.User(nil), seed...),
		nextID: 100,
	}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL returns the fake backend's base URL.
func (fb *FakeBackend) URL() string { return fb.Server.URL }

// Users returns a copy of the current user list.
func (fb *FakeBackend) Users() []models.User {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]models.User(nil), fb.users...)
}

func (fb *FakeBackend) authorized(r *http.Request) bool {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return false
	}
	return strings.TrimPrefix(h, "Bearer ") != "expired"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case r.Method == http.MethodPost && path == "/api/users/login":
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password == "wrong" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid username or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": "token-" + req.Username, "role": models.RoleAdmin})

	case r.Method == http.MethodPost && path == "/api/users/register":
		var u models.User
		_ = json.NewDecoder(r.Body).Decode(&u)
		if u.Username == "taken" {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "Username already exists"})
			return
		}
		fb.mu.Lock()
		fb.nextID++
		u.ID = fb.nextID
		u.Password = ""
		fb.users = append(fb.users, u)
		fb.mu.Unlock()
		writeJSON(w, http.StatusCreated, u)

	case !fb.authorized(r):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})

	case r.Method == http.MethodGet && path == "/api/users/all":
		writeJSON(w, http.StatusOK, fb.Users())

	case r.Method == http.MethodGet && path == "/api/users/profile":
		fb.mu.Lock()
		defer fb.mu.Unlock()
		if len(fb.users) == 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
			return
		}
		writeJSON(w, http.StatusOK, fb.users[0])

	case r.Method == http.MethodPost && path == "/api/users/create":
		var u models.User
		_ = json.NewDecoder(r.Body).Decode(&u)
		fb.mu.Lock()
		fb.nextID++
		u.ID = fb.nextID
		u.Password = ""
		fb.users = append(fb.users, u)
		fb.mu.Unlock()
		writeJSON(w, http.StatusCreated, u)

	case r.Method == http.MethodPut && strings.HasPrefix(path, "/api/users/update/"):
		id, _ := strconv.ParseInt(strings.TrimPrefix(path, "/api/users/update/"), 10, 64)
		var u models.User
		_ = json.NewDecoder(r.Body).Decode(&u)
		fb.mu.Lock()
		defer fb.mu.Unlock()
		for i := range fb.users {
			if fb.users[i].ID == id {
				u.ID = id
				u.Password = ""
				fb.users[i] = u
				writeJSON(w, http.StatusOK, u)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})

	case r.Method == http.MethodDelete && strings.HasPrefix(path, "/api/users/delete/"):
		id, _ := strconv.ParseInt(strings.TrimPrefix(path, "/api/users/delete/"), 10, 64)
		fb.mu.Lock()
		defer fb.mu.Unlock()
		for i := range fb.users {
			if fb.users[i].ID == id {
				fb.users = append(fb.users[:i], fb.users[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/api/users/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(path, "/api/users/"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad id"})
			return
		}
		fb.mu.Lock()
		defer fb.mu.Unlock()
		for _, u := range fb.users {
			if u.ID == id {
				writeJSON(w, http.StatusOK, u)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no such endpoint"})
	}
}
