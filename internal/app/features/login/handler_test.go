package login_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/facultyhub/internal/app/features/login"
	"github.com/dalemusser/facultyhub/internal/app/system/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T, password string) *login.Handler {
	t.Helper()
	auth.InitSessionStore("test-session-key-for-testing-only", "test-session", "", false, zap.NewNop())

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return login.NewHandler("admin@example.com", string(hash), zap.NewNop())
}

func TestHandleLogin_Success(t *testing.T) {
	h := newTestHandler(t, "correct horse")

	body := `{"email":"Admin@Example.com","password":"correct horse"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			found = true
		}
	}
	if !found {
		t.Error("expected session cookie to be set")
	}
	if !strings.Contains(rec.Body.String(), `"role":"admin"`) {
		t.Errorf("body: %s", rec.Body.String())
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	h := newTestHandler(t, "correct horse")

	body := `{"email":"admin@example.com","password":"battery staple"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleLogin_UnknownEmail(t *testing.T) {
	h := newTestHandler(t, "correct horse")

	body := `{"email":"someone@example.com","password":"correct horse"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestHandleLogin_NotConfigured(t *testing.T) {
	auth.InitSessionStore("test-session-key-for-testing-only", "test-session", "", false, zap.NewNop())
	h := login.NewHandler("", "", zap.NewNop())

	body := `{"email":"admin@example.com","password":"anything"}`
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleSession(t *testing.T) {
	h := newTestHandler(t, "pw")

	// Signed out
	rec := httptest.NewRecorder()
	h.HandleSession(rec, httptest.NewRequest("GET", "/session", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"signed_in":false`) {
		t.Errorf("body: %s", rec.Body.String())
	}

	// Signed in
	req := auth.WithTestUser(httptest.NewRequest("GET", "/session", nil),
		&auth.SessionUser{Email: "admin@example.com", Name: "Administrator", Role: "admin"})
	rec = httptest.NewRecorder()
	h.HandleSession(rec, req)
	if !strings.Contains(rec.Body.String(), `"signed_in":true`) {
		t.Errorf("body: %s", rec.Body.String())
	}
}
