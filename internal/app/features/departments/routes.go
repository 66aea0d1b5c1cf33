// internal/app/features/departments/routes.go
package departments

import (
	"github.com/dalemusser/facultyhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts department administration behind the admin gate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireAdmin)
		pr.Post("/", h.HandleUpsert)
	})

	return r
}
