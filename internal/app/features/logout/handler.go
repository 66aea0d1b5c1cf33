// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/facultyhub/internal/app/system/auth"
	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// HandleLogout handles POST /logout. Clearing an absent session is
// fine; logout is idempotent.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "could not clear session")
		return
	}
	webjson.Write(w, http.StatusOK, map[string]bool{"signed_in": false})
}
