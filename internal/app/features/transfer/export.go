// internal/app/features/transfer/export.go
package transfer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
	"go.uber.org/zap"
)

// HandleExport handles GET /export: writes the full dataset as a JSON
// attachment. Reads come from the current snapshot, so an export always
// reflects a consistent, validated roster.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	snap := h.Snapshots.Current()
	if snap == nil {
		webjson.Error(w, http.StatusServiceUnavailable, "roster data not loaded yet")
		return
	}

	dump := Dump{
		ExportedAt:  time.Now().UTC(),
		Terms:       snap.Terms,
		Departments: snap.Departments,
		Members:     snap.Members,
	}

	name := fmt.Sprintf("faculty-export-%s.json", dump.ExportedAt.Format("2006-01-02-150405"))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		h.Log.Error("export encode failed", zap.Error(err))
	}
}
