// internal/app/features/terms/handler.go
package terms

import (
	"context"
	"encoding/json"
	"net/http"

	termstore "github.com/dalemusser/facultyhub/internal/app/store/terms"
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

// Handler is the feature-level handler for term administration.
type Handler struct {
	Terms     *termstore.Store
	Snapshots Reloader
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, snapshots Reloader, logger *zap.Logger) *Handler {
	return &Handler{
		Terms:     termstore.New(db),
		Snapshots: snapshots,
		Log:       logger,
	}
}

type termInput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
	Order *int   `json:"order"`
}

// HandleUpsert handles POST /: creates or replaces a term. Terms keep
// their admin-chosen ids, so saving an existing id updates it in place.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var in termInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	t := models.Term{
		ID:    textclean.Clean(in.ID),
		Name:  textclean.Clean(in.Name),
		Start: in.Start,
		End:   in.End,
		Order: in.Order,
	}
	if t.ID == "" || t.Name == "" {
		webjson.Error(w, http.StatusBadRequest, "term id and name are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if err := h.Terms.Upsert(ctx, t); err != nil {
		h.Log.Error("term upsert failed", zap.String("term_id", t.ID), zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "could not save term")
		return
	}

	reloadCtx, cancelReload := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancelReload()
	if err := h.Snapshots.Reload(reloadCtx); err != nil {
		h.Log.Error("snapshot reload after term write failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "term saved but roster refresh failed: "+err.Error())
		return
	}

	webjson.Write(w, http.StatusOK, t)
}
