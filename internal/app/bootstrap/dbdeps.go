// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/userhub/userhub/internal/app/backend"
	"github.com/userhub/userhub/internal/app/system/userset"
)

// DBDeps holds back-end dependencies for the app. This app has no
// database of its own; all record storage is the remote user-account
// service, reached through the backend client.
type DBDeps struct {
	Backend *backend.Client
	Sets    *userset.Manager
}
