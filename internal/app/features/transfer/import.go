// internal/app/features/transfer/import.go
package transfer

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/facultyhub/internal/app/system/textclean"
	"github.com/dalemusser/facultyhub/internal/app/system/timeouts"
	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
	"go.uber.org/zap"
)

type importResult struct {
	Terms       int `json:"terms"`
	Departments int `json:"departments"`
	Members     int `json:"members"`
}

// HandleImport handles POST /import: loads a dump produced by export.
// Terms and departments are upserted by id; each member is replaced
// together with its sub-records. The dump's updated_at values are kept,
// so export followed by import is a no-op for the roster.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var dump Dump
	if err := json.NewDecoder(r.Body).Decode(&dump); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch)
	defer cancel()

	if err := h.importDump(ctx, dump); err != nil {
		h.Log.Error("import failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "import failed: "+err.Error())
		return
	}

	if err := h.Snapshots.Reload(ctx); err != nil {
		h.Log.Error("snapshot reload failed after import", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "data imported but roster refresh failed: "+err.Error())
		return
	}

	webjson.Write(w, http.StatusOK, importResult{
		Terms:       len(dump.Terms),
		Departments: len(dump.Departments),
		Members:     len(dump.Members),
	})
}

func (h *Handler) importDump(ctx context.Context, dump Dump) error {
	for _, t := range dump.Terms {
		t.Name = textclean.Clean(t.Name)
		if err := h.Terms.Upsert(ctx, t); err != nil {
			return err
		}
	}
	for _, d := range dump.Departments {
		d.Name = textclean.Clean(d.Name)
		d.Branch = textclean.Clean(d.Branch)
		if err := h.Departments.Upsert(ctx, d); err != nil {
			return err
		}
	}
	for _, m := range dump.Members {
		m.Name = textclean.Clean(m.Name)
		m.Nationality = textclean.Clean(m.Nationality)

		saved, err := h.Members.Upsert(ctx, m)
		if err != nil {
			return err
		}
		if err := h.Members.ClearSubRecords(ctx, saved.ID); err != nil {
			return err
		}
		if err := h.Members.InsertAppointments(ctx, saved.ID, m.Appointments); err != nil {
			return err
		}
		if err := h.Members.InsertActivities(ctx, saved.ID, m.Activities); err != nil {
			return err
		}
		if err := h.Members.InsertPublications(ctx, saved.ID, m.Publications); err != nil {
			return err
		}
		if err := h.Members.InsertCourses(ctx, saved.ID, m.Courses); err != nil {
			return err
		}
	}
	return nil
}
