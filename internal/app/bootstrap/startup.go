// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/facultyhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// It configures the session store and loads the first roster snapshot.
// A failed initial load is logged but not fatal: the app starts with no
// snapshot (reads return 503) and an admin can repair the data through
// the write endpoints, each of which retries the load.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	secure := coreCfg.Env == "prod"
	auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)

	if err := deps.Snapshots.Reload(ctx); err != nil {
		logger.Error("initial snapshot load failed; serving without roster data", zap.Error(err))
	}
	return nil
}
