// Package userpolicy decides which user-management affordances the UI
// renders for a given session role.
//
// These checks gate rendering and route access only. The backend
// enforces the same rules authoritatively on every request; a request
// forged past this layer is rejected there.
package userpolicy

import (
	"strings"

	"github.com/userhub/userhub/internal/domain/models"
)

// CanCreateUsers reports whether the role may open the new-user modal
// and submit creates.
func CanCreateUsers(role string) bool {
	return isAdmin(role)
}

// CanEditUsers reports whether the role may open the edit modal and
// submit updates.
func CanEditUsers(role string) bool {
	return isAdmin(role)
}

// CanDeleteUser reports whether the session may delete the target
// user. Only super admins delete, and never the record matching their
// own username regardless of role.
func CanDeleteUser(role, sessionUsername string, target models.User) bool {
	if !strings.EqualFold(role, models.RoleSuperAdmin) {
		return false
	}
	return target.Username != sessionUsername
}

func isAdmin(role string) bool {
	return strings.EqualFold(role, models.RoleAdmin) ||
		strings.EqualFold(role, models.RoleSuperAdmin)
}
