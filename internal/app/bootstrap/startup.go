// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/userhub/userhub/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after backend
// connections are built, but before the HTTP handler is. A failed
// reachability probe is logged, not fatal: the backend may simply
// start after this service does.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()

	if err := deps.Backend.Ping(pingCtx); err != nil {
		logger.Warn("backend not reachable at startup",
			zap.String("base_url", deps.Backend.BaseURL()),
			zap.Error(err))
		return nil
	}

	logger.Info("backend reachable", zap.String("base_url", deps.Backend.BaseURL()))
	return nil
}
