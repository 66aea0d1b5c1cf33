// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/facultyhub/internal/app/system/auth"
	"github.com/dalemusser/facultyhub/internal/app/system/webjson"
)

// UserCtx returns the user's role (lowercased), name, and a found flag.
// A missing user reads as the "visitor" role so callers can compare
// roles without nil checks.
func UserCtx(r *http.Request) (role string, name string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", false
	}
	return strings.ToLower(user.Role), user.Name, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// RequireAdmin rejects any request without a positive admin gate before
// the handler (and with it any write) runs. Signed-out callers get 401,
// signed-in non-admins 403; both as JSON denials, never a crash.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); !ok {
			webjson.Error(w, http.StatusUnauthorized, "sign in required")
			return
		}
		if !IsAdmin(r) {
			webjson.Error(w, http.StatusForbidden, "this operation requires an admin account")
			return
		}
		next.ServeHTTP(w, r)
	})
}
