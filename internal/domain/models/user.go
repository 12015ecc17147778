// internal/domain/models/user.go
package models

// Terminology: User Identifiers
//   - ID / id: the numeric identifier assigned by the backend service
//   - Username / username: the unique human-readable login name

// Roles as the backend spells them on the wire.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleHR         = "HR"
	RoleManager    = "MANAGER"
)

// AllRoles lists every role the backend accepts, in the order the
// registration and user forms present them.
var AllRoles = []string{RoleUser, RoleAdmin, RoleSuperAdmin, RoleHR, RoleManager}

// Account statuses as the backend spells them.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// AllStatuses lists the statuses selectable in user forms.
var AllStatuses = []string{StatusActive, StatusInactive}

// User mirrors the backend's user object. Password is write-only: it is
// sent on create/register and never comes back in responses.
//
// JoinedDate, LastLogin, and AccountStatus are presentation-only fields
// the backend may omit. They are rendered as "unknown" when absent and
// are never sent back to the backend.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	Status    string `json:"status,omitempty"`
	PhotoURL  string `json:"photoUrl,omitempty"`

	JoinedDate    string `json:"joinedDate,omitempty"`
	LastLogin     string `json:"lastLogin,omitempty"`
	AccountStatus string `json:"accountStatus,omitempty"`
}

// FullName returns "First Last" for display.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsKnownRole reports whether role is one of the backend's roles.
func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
