// internal/app/features/login/handler.go
package login

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/facultyhub/internal/app/system/auth"
	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler handles local password login for the configured admin
// account. Google sign-in lives in the authgoogle feature; this exists
// so a deployment without OAuth credentials still has an admin.
type Handler struct {
	AdminEmail        string
	AdminPasswordHash string
	Log               *zap.Logger
}

func NewHandler(adminEmail, adminPasswordHash string, logger *zap.Logger) *Handler {
	return &Handler{
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminPasswordHash,
		Log:               logger,
	}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	SignedIn bool   `json:"signed_in"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// HandleLogin handles POST /login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if h.AdminEmail == "" || h.AdminPasswordHash == "" {
		webjson.Error(w, http.StatusNotFound, "local login is not configured")
		return
	}

	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		webjson.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != strings.ToLower(h.AdminEmail) {
		h.Log.Info("login rejected", zap.String("email", email))
		webjson.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(in.Password)); err != nil {
		h.Log.Info("login rejected", zap.String("email", email))
		webjson.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	u := auth.SessionUser{Email: h.AdminEmail, Name: "Administrator", Role: "admin"}
	if err := auth.SignIn(w, r, u); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		webjson.Error(w, http.StatusInternalServerError, "could not start session")
		return
	}

	h.Log.Info("admin signed in", zap.String("email", h.AdminEmail))
	webjson.Write(w, http.StatusOK, sessionResponse{
		SignedIn: true,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
	})
}

// HandleSession handles GET /session: reports who is signed in, if
// anyone. Viewers get signed_in=false rather than an error.
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Write(w, http.StatusOK, sessionResponse{SignedIn: false})
		return
	}
	webjson.Write(w, http.StatusOK, sessionResponse{
		SignedIn: true,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
	})
}
