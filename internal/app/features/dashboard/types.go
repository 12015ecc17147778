// internal/app/features/dashboard/types.go
package dashboard

import (
	"html/template"

	"github.com/userhub/userhub/internal/app/system/viewdata"
	"github.com/userhub/userhub/internal/domain/models"
)

// Row used in the user table. CanEdit/CanDelete are per-row because
// delete is refused for the viewer's own record.
type userRow struct {
	models.User
	CanEdit   bool
	CanDelete bool
}

// View model for the dashboard page.
type listData struct {
	viewdata.BaseVM

	SearchQuery string
	Shown       int
	Total       int
	CanCreate   bool

	Rows []userRow

	Flash string
	Error template.HTML
}

// View model for the table snippet (HTMX search swaps).
type tableData struct {
	SearchQuery string
	Shown       int
	Total       int

	Rows []userRow
}

// View model for the view-details modal snippet.
type viewModalData struct {
	User    models.User
	BackURL string
}

// Form view model for New/Edit user.
type formData struct {
	viewdata.BaseVM

	ID        int64
	FirstName string
	LastName  string
	Username  string
	Email     string
	Role      string
	Status    string
	PhotoURL  string

	Roles    []string
	Statuses []string

	IsEdit bool

	Error template.HTML
}
