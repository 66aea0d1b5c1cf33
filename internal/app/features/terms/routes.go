// internal/app/features/terms/routes.go
package terms

import (
	"github.com/dalemusser/facultyhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts term administration. All writes sit behind the admin
// gate. Typically: r.Mount("/api/terms", terms.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireAdmin)
		pr.Post("/", h.HandleUpsert)
	})

	return r
}
