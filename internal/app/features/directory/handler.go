// internal/app/features/directory/handler.go
package directory

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
	"github.com/dalemusser/facultyhub/internal/domain/roster"
	"go.uber.org/zap"
)

// recentUpdatesCount matches the size of the updates panel.
const recentUpdatesCount = 9

// SnapshotSource supplies the current valid roster snapshot.
type SnapshotSource interface {
	Current() *roster.Snapshot
}

// Handler serves the read-only directory API: summary counts, the four
// display projections, the recent-updates panel, and the data for the
// filter controls. All reads come from the in-memory snapshot; nothing
// here touches the store.
type Handler struct {
	Snapshots SnapshotSource
	Log       *zap.Logger
}

func NewHandler(src SnapshotSource, logger *zap.Logger) *Handler {
	return &Handler{
		Snapshots: src,
		Log:       logger,
	}
}

// snapshotAndFilter resolves the current snapshot and the FilterSpec
// from the query string. Writes the error response itself and returns
// ok=false when the request cannot be served.
func (h *Handler) snapshotAndFilter(w http.ResponseWriter, r *http.Request) (*roster.Snapshot, roster.FilterSpec, bool) {
	snap := h.Snapshots.Current()
	if snap == nil {
		webjson.Error(w, http.StatusServiceUnavailable, "roster data not loaded yet")
		return nil, roster.FilterSpec{}, false
	}

	f := filterFromQuery(r.URL.Query())
	if f.TermID == "" {
		f.TermID = snap.DefaultTermID()
	}
	if f.TermID != "" && !snap.Index().Has(f.TermID) {
		webjson.Error(w, http.StatusBadRequest, "unknown term id: "+f.TermID)
		return nil, roster.FilterSpec{}, false
	}
	return snap, f, true
}

// filterFromQuery maps query parameters onto a FilterSpec. Unset
// parameters impose no constraint.
func filterFromQuery(q url.Values) roster.FilterSpec {
	return roster.FilterSpec{
		TermID:       strings.TrimSpace(q.Get("term")),
		DepartmentID: strings.TrimSpace(q.Get("department")),
		Branch:       strings.TrimSpace(q.Get("branch")),
		Nationality:  strings.TrimSpace(q.Get("nationality")),
		Rank:         strings.TrimSpace(q.Get("rank")),
		NameQuery:    strings.TrimSpace(q.Get("q")),
	}
}

// fail reports an engine error. Snapshot validation keeps dangling term
// references out, so reaching this means the loaded data is corrupt.
func (h *Handler) fail(w http.ResponseWriter, snap *roster.Snapshot, op string, err error) {
	h.Log.Error("directory computation failed",
		zap.String("op", op),
		zap.String("snapshot_id", snap.ID),
		zap.Error(err))
	webjson.Error(w, http.StatusInternalServerError, "roster data error: "+err.Error())
}

// ServeSummary handles GET /summary.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	snap, f, ok := h.snapshotAndFilter(w, r)
	if !ok {
		return
	}

	s, err := roster.Summarize(snap.Members, f.TermID, f, snap.Index())
	if err != nil {
		h.fail(w, snap, "summary", err)
		return
	}
	webjson.Write(w, http.StatusOK, summaryResponse{TermID: f.TermID, Summary: s})
}

// ServeMembers handles GET /members.
func (h *Handler) ServeMembers(w http.ResponseWriter, r *http.Request) {
	snap, f, ok := h.snapshotAndFilter(w, r)
	if !ok {
		return
	}

	p, err := roster.Project(snap, f.TermID, f)
	if err != nil {
		h.fail(w, snap, "members", err)
		return
	}
	webjson.Write(w, http.StatusOK, memberRowsResponse{TermID: f.TermID, Members: p.Members})
}

// ServeActivities handles GET /activities.
func (h *Handler) ServeActivities(w http.ResponseWriter, r *http.Request) {
	snap, f, ok := h.snapshotAndFilter(w, r)
	if !ok {
		return
	}

	p, err := roster.Project(snap, f.TermID, f)
	if err != nil {
		h.fail(w, snap, "activities", err)
		return
	}
	webjson.Write(w, http.StatusOK, activityRowsResponse{TermID: f.TermID, Activities: p.Activities})
}

// ServePublications handles GET /publications.
func (h *Handler) ServePublications(w http.ResponseWriter, r *http.Request) {
	snap, f, ok := h.snapshotAndFilter(w, r)
	if !ok {
		return
	}

	p, err := roster.Project(snap, f.TermID, f)
	if err != nil {
		h.fail(w, snap, "publications", err)
		return
	}
	webjson.Write(w, http.StatusOK, publicationRowsResponse{TermID: f.TermID, Publications: p.Publications})
}

// ServeCourses handles GET /courses.
func (h *Handler) ServeCourses(w http.ResponseWriter, r *http.Request) {
	snap, f, ok := h.snapshotAndFilter(w, r)
	if !ok {
		return
	}

	p, err := roster.Project(snap, f.TermID, f)
	if err != nil {
		h.fail(w, snap, "courses", err)
		return
	}
	webjson.Write(w, http.StatusOK, courseRowsResponse{TermID: f.TermID, Courses: p.Courses})
}

// ServeUpdates handles GET /updates (the recent-updates panel).
func (h *Handler) ServeUpdates(w http.ResponseWriter, r *http.Request) {
	snap := h.Snapshots.Current()
	if snap == nil {
		webjson.Error(w, http.StatusServiceUnavailable, "roster data not loaded yet")
		return
	}
	webjson.Write(w, http.StatusOK, updatesResponse{
		Updates: roster.RecentUpdates(snap.Members, recentUpdatesCount),
	})
}

// ServeFilters handles GET /filters: everything the rendering layer
// needs to populate its filter controls.
func (h *Handler) ServeFilters(w http.ResponseWriter, r *http.Request) {
	snap := h.Snapshots.Current()
	if snap == nil {
		webjson.Error(w, http.StatusServiceUnavailable, "roster data not loaded yet")
		return
	}
	webjson.Write(w, http.StatusOK, newFiltersResponse(snap))
}
