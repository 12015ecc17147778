// internal/app/backend/users.go
package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/userhub/userhub/internal/domain/models"
)

// LoginRequest is the credential payload for Login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the authenticated role.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	PhotoURL  string `json:"photoUrl,omitempty"`
}

// Login exchanges credentials for a bearer token and role.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/users/login", "", req, &out, false)
	return out, err
}

// Register creates a new account. The backend returns a created-user-
// like object; the UI only needs success/failure plus the message.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPost, "/api/users/register", "", req, &out, false)
	return out, err
}

// ListUsers fetches every user, in the order the backend returns them.
// The list order is preserved all the way to the rendered table.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, http.MethodGet, "/api/users/all", token, nil, &out, true)
	return out, err
}

// GetUser fetches one user by id.
func (c *Client) GetUser(ctx context.Context, token string, id int64) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), token, nil, &out, true)
	return out, err
}

// Profile fetches the record belonging to the token's user.
func (c *Client) Profile(ctx context.Context, token string) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodGet, "/api/users/profile", token, nil, &out, true)
	return out, err
}

// CreateUser creates a user record and returns the created object.
func (c *Client) CreateUser(ctx context.Context, token string, u models.User) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPost, "/api/users/create", token, u, &out, true)
	return out, err
}

// UpdateUser applies partial field changes to the user with the given
// id and returns the updated object.
func (c *Client) UpdateUser(ctx context.Context, token string, id int64, u models.User) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/update/%d", id), token, u, &out, true)
	return out, err
}

// DeleteUser removes the user with the given id.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/delete/%d", id), token, nil, nil, true)
}
