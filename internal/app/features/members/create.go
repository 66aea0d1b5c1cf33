// internal/app/features/members/create.go
package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	memberstore "github.com/dalemusser/facultyhub/internal/app/store/members"
	"github.com/dalemusser/facultyhub/internal/app/system/textclean"
	"github.com/dalemusser/facultyhub/internal/app/system/timeouts"
	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /: adds a new member.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in memberInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	m := models.Member{
		Name:        textclean.Clean(in.Name),
		Nationality: textclean.Clean(in.Nationality),
	}
	if m.Name == "" {
		webjson.Error(w, http.StatusBadRequest, "member name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	created, err := h.Members.Create(ctx, m)
	if err != nil {
		h.Log.Error("member create failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "could not save member")
		return
	}

	if !h.reload(w, r, "member create") {
		return
	}
	webjson.Write(w, http.StatusCreated, created)
}

// HandleDelete handles DELETE /{id}: removes a member and all of its
// sub-records (the member owns them; nothing survives it).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := memberIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if err := h.Members.Delete(ctx, id); err != nil {
		if errors.Is(err, memberstore.ErrMemberNotFound) {
			webjson.Error(w, http.StatusNotFound, "member not found")
			return
		}
		h.Log.Error("member delete failed", zap.String("member_id", id.Hex()), zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "could not delete member")
		return
	}

	if !h.reload(w, r, "member delete") {
		return
	}
	webjson.Write(w, http.StatusOK, map[string]string{"deleted": id.Hex()})
}

// memberIDParam parses the {id} route parameter. Writes the error
// response itself on failure.
func memberIDParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid member id")
		return primitive.NilObjectID, false
	}
	return id, true
}

// reload refreshes the snapshot after a successful write. On failure
// the previous snapshot keeps serving reads; the client is told the
// write landed but the refresh did not.
func (h *Handler) reload(w http.ResponseWriter, r *http.Request, op string) bool {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	if err := h.Snapshots.Reload(ctx); err != nil {
		h.Log.Error("snapshot reload failed", zap.String("op", op), zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "record saved but roster refresh failed: "+err.Error())
		return false
	}
	return true
}
