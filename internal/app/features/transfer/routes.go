// internal/app/features/transfer/routes.go
package transfer

import (
	"github.com/dalemusser/facultyhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts export (open) and import (admin only).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/export", h.HandleExport)

	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireAdmin)
		pr.Post("/import", h.HandleImport)
	})

	return r
}
