package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	"github.com/userhub/userhub/internal/domain/models"
)

func newClient(t *testing.T, srv *httptest.Server) *backend.Client {
	t.Helper()
	return backend.New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestListUsers_Success(t *testing.T) {
	want := []models.User{
		{ID: 1, Username: "ada"},
		{ID: 2, Username: "grace"},
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newClient(t, srv)
	got, err := c.ListUsers(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}

	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
	if len(got) != 2 || got[0].Username != "ada" || got[1].Username != "grace" {
		t.Errorf("ListUsers() = %+v, want order preserved %+v", got, want)
	}
}

func TestListUsers_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called without a token")
	}))
	defer srv.Close()

	c := newClient(t, srv)
	_, err := c.ListUsers(context.Background(), "")
	if !errors.Is(err, backend.ErrUnauthenticated) {
		t.Errorf("error = %v, want ErrUnauthenticated", err)
	}
}

func TestListUsers_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(t, srv)
	_, err := c.ListUsers(context.Background(), "stale")
	if !errors.Is(err, backend.ErrSessionExpired) {
		t.Errorf("error = %v, want ErrSessionExpired", err)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message key", http.StatusBadRequest, `{"message":"Invalid username"}`, "Invalid username"},
		{"error key", http.StatusConflict, `{"error":"Username taken"}`, "Username taken"},
		{"raw text", http.StatusInternalServerError, "boom", "boom"},
		{"empty body", http.StatusBadGateway, "", "HTTP error! status: 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newClient(t, srv)
			_, err := c.GetUser(context.Background(), "tok", 7)

			var re *backend.RequestError
			if !errors.As(err, &re) {
				t.Fatalf("error = %v, want *RequestError", err)
			}
			if re.Message != tt.want {
				t.Errorf("Message = %q, want %q", re.Message, tt.want)
			}
			if re.Status != tt.status {
				t.Errorf("Status = %d, want %d", re.Status, tt.status)
			}
		})
	}
}

func TestLogin_NoTokenRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login sent Authorization header %q", r.Header.Get("Authorization"))
		}
		var req backend.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(backend.LoginResponse{Token: "tok-" + req.Username, Role: "ADMIN"})
	}))
	defer srv.Close()

	c := newClient(t, srv)
	res, err := c.Login(context.Background(), backend.LoginRequest{Username: "ada", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if res.Token != "tok-ada" || res.Role != "ADMIN" {
		t.Errorf("Login() = %+v", res)
	}
}

func TestDeleteUser_EmptyResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newClient(t, srv)
	if err := c.DeleteUser(context.Background(), "tok", 3); err != nil {
		t.Errorf("DeleteUser() error = %v", err)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unauthenticated", backend.ErrUnauthenticated, "No authentication token found. Please log in."},
		{"expired", backend.ErrSessionExpired, "Session expired or unauthorized. Please log in again."},
		{"request error", &backend.RequestError{Status: 409, Message: "Username taken"}, "Username taken"},
		{"opaque", errors.New("dial tcp: refused"), "The request could not be completed. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backend.Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
