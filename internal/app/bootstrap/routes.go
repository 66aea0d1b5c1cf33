// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authgooglefeature "github.com/dalemusser/facultyhub/internal/app/features/authgoogle"
	departmentsfeature "github.com/dalemusser/facultyhub/internal/app/features/departments"
	directoryfeature "github.com/dalemusser/facultyhub/internal/app/features/directory"
	healthfeature "github.com/dalemusser/facultyhub/internal/app/features/health"
	loginfeature "github.com/dalemusser/facultyhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/facultyhub/internal/app/features/logout"
	membersfeature "github.com/dalemusser/facultyhub/internal/app/features/members"
	termsfeature "github.com/dalemusser/facultyhub/internal/app/features/terms"
	transferfeature "github.com/dalemusser/facultyhub/internal/app/features/transfer"
	"github.com/dalemusser/facultyhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. The router serves a JSON API:
// the read-only directory endpoints under /api/directory, the admin
// write endpoints under /api/terms, /api/departments, /api/members and
// /api/transfer, and the auth endpoints at the root.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged
	// in, making the current user available via auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Snapshots, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Read-only directory API
	directoryHandler := directoryfeature.NewHandler(deps.Snapshots, logger)
	r.Mount("/api/directory", directoryfeature.Routes(directoryHandler))

	// Admin write APIs
	termsHandler := termsfeature.NewHandler(deps.MongoDatabase, deps.Snapshots, logger)
	r.Mount("/api/terms", termsfeature.Routes(termsHandler))

	departmentsHandler := departmentsfeature.NewHandler(deps.MongoDatabase, deps.Snapshots, logger)
	r.Mount("/api/departments", departmentsfeature.Routes(departmentsHandler))

	membersHandler := membersfeature.NewHandler(deps.MongoDatabase, deps.Snapshots, logger)
	r.Mount("/api/members", membersfeature.Routes(membersHandler))

	transferHandler := transferfeature.NewHandler(deps.MongoDatabase, deps.Snapshots, logger)
	r.Mount("/api/transfer", transferfeature.Routes(transferHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(appCfg.AdminEmail, appCfg.AdminPasswordHash, logger)
	r.Mount("/", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	googleHandler := authgooglefeature.NewHandler(
		appCfg.GoogleClientID,
		appCfg.GoogleClientSecret,
		appCfg.BaseURL,
		appCfg.AdminEmails,
		logger,
	)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	return r, nil
}
