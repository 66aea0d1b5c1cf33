// internal/app/features/members/routes.go
package members

import (
	"github.com/dalemusser/facultyhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts member administration behind the admin gate.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(authz.RequireAdmin)
		pr.Post("/", h.HandleCreate)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Post("/{id}/appointments", h.HandleAddAppointment)
		pr.Post("/{id}/activities", h.HandleAddActivity)
		pr.Post("/{id}/publications", h.HandleAddPublication)
		pr.Post("/{id}/courses", h.HandleAddCourse)
	})

	return r
}
