// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/backend"
	"github.com/userhub/userhub/internal/app/system/userset"
)

// ConnectDB builds the app's backend dependencies. There is no local
// database; the "connection" is the HTTP client for the user-account
// service plus the in-memory working-set manager.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client := backend.New(appCfg.BackendBaseURL, appCfg.BackendTimeout, logger)

	logger.Info("backend client initialized",
		zap.String("base_url", client.BaseURL()),
		zap.Duration("timeout", appCfg.BackendTimeout))

	return DBDeps{
		Backend: client,
		Sets:    userset.NewManager(),
	}, nil
}

// EnsureSchema sets up indexes or schema as needed. The backend owns
// all record storage, so there is nothing to do here.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
