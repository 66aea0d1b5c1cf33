// internal/app/features/departments/handler.go
package departments

import (
	"context"
	"encoding/json"
	"net/http"

	departmentstore "github.com/dalemusser/facultyhub/internal/app/store/departments"
	"github.com/dalemusser/facultyhub/internal/app/system/textclean"
	"github.com/dalemusser/facultyhub/internal/app/system/timeouts"
	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Reloader triggers a full snapshot refresh after a successful write.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Handler is the feature-level handler for department administration.
type Handler struct {
	Departments *departmentstore.Store
	Snapshots   Reloader
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, snapshots Reloader, logger *zap.Logger) *Handler {
	return &Handler{
		Departments: departmentstore.New(db),
		Snapshots:   snapshots,
		Log:         logger,
	}
}

type departmentInput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Branch string `json:"branch"`
}

// HandleUpsert handles POST /: creates or replaces a department.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var in departmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	d := models.Department{
		ID:     textclean.Clean(in.ID),
		Name:   textclean.Clean(in.Name),
		Branch: textclean.Clean(in.Branch),
	}
	if d.ID == "" || d.Name == "" {
		webjson.Error(w, http.StatusBadRequest, "department id and name are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if err := h.Departments.Upsert(ctx, d); err != nil {
		h.Log.Error("department upsert failed", zap.String("department_id", d.ID), zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "could not save department")
		return
	}

	reloadCtx, cancelReload := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancelReload()
	if err := h.Snapshots.Reload(reloadCtx); err != nil {
		h.Log.Error("snapshot reload after department write failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "department saved but roster refresh failed: "+err.Error())
		return
	}

	webjson.Write(w, http.StatusOK, d)
}
