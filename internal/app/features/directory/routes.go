// internal/app/features/directory/routes.go
package directory

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the read-only directory API.
// Typically: r.Mount("/api/directory", directory.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/summary", h.ServeSummary)
	r.Get("/members", h.ServeMembers)
	r.Get("/activities", h.ServeActivities)
	r.Get("/publications", h.ServePublications)
	r.Get("/courses", h.ServeCourses)
	r.Get("/updates", h.ServeUpdates)
	r.Get("/filters", h.ServeFilters)

	return r
}
