package members_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/facultyhub/internal/app/features/members"
	snapshotsvc "github.com/dalemusser/facultyhub/internal/app/store/snapshot"
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"github.com/dalemusser/facultyhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*members.Handler, *snapshotsvc.Service, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := snapshotsvc.NewService(db, zap.NewNop())
	h := members.NewHandler(db, svc, zap.NewNop())
	return h, svc, testutil.NewFixtures(t, db)
}

// withID injects the {id} route parameter the way chi would.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleCreate(t *testing.T) {
	h, svc, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTerm(ctx, "t1", "Fall 2024", 1)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	body := `{"name":" <b>Amal</b> ","nationality":"saudi"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	// Markup stripped, whitespace trimmed.
	if !strings.Contains(rec.Body.String(), `"name":"Amal"`) {
		t.Errorf("body: %s", rec.Body.String())
	}

	snap := svc.Current()
	if len(snap.Members) != 1 {
		t.Errorf("snapshot members after create: got %d, want 1", len(snap.Members))
	}
}

func TestHandleCreate_MissingName(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"nationality":"saudi"}`))
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleAddAppointment_Validation(t *testing.T) {
	h, svc, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTerm(ctx, "t1", "Fall 2024", 1)
	fixtures.CreateTerm(ctx, "t2", "Spring 2025", 2)
	m := fixtures.CreateMember(ctx, "Amal", models.NationalitySaudi)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"valid open-ended", `{"term_start":"t1","rank":"professor"}`, http.StatusCreated},
		{"valid range", `{"term_start":"t1","term_end":"t2","rank":"lecturer"}`, http.StatusCreated},
		{"missing term_start", `{"rank":"professor"}`, http.StatusBadRequest},
		{"unknown term_start", `{"term_start":"ghost","rank":"professor"}`, http.StatusBadRequest},
		{"unknown term_end", `{"term_start":"t1","term_end":"ghost","rank":"professor"}`, http.StatusBadRequest},
		{"inverted range", `{"term_start":"t2","term_end":"t1","rank":"professor"}`, http.StatusBadRequest},
		{"invalid rank", `{"term_start":"t1","rank":"dean"}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := withID(httptest.NewRequest("POST", "/", strings.NewReader(tc.body)), m.ID.Hex())
			rec := httptest.NewRecorder()
			h.HandleAddAppointment(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status: got %d, want %d (body: %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestHandleAddAppointment_BadMemberID(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := withID(httptest.NewRequest("POST", "/", strings.NewReader(`{}`)), "not-hex")
	rec := httptest.NewRecorder()
	h.HandleAddAppointment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleAddActivity_UnknownTerm(t *testing.T) {
	h, svc, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTerm(ctx, "t1", "Fall 2024", 1)
	m := fixtures.CreateMember(ctx, "Amal", models.NationalitySaudi)
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	body := `{"title":"Talk","term_id":"ghost"}`
	req := withID(httptest.NewRequest("POST", "/", strings.NewReader(body)), m.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleAddActivity(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestHandleDelete_Cascade(t *testing.T) {
	h, svc, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTerm(ctx, "t1", "Fall 2024", 1)
	m := fixtures.CreateMember(ctx, "Amal", models.NationalitySaudi)
	fixtures.CreateAppointment(ctx, m, models.Appointment{TermStart: "t1", Rank: models.RankLecturer})
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	req := withID(httptest.NewRequest("DELETE", "/", nil), m.ID.Hex())
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (body: %s)", rec.Code, rec.Body.String())
	}
	if len(svc.Current().Members) != 0 {
		t.Errorf("snapshot members after delete: got %d, want 0", len(svc.Current().Members))
	}

	// Deleting again is a 404.
	rec = httptest.NewRecorder()
	h.HandleDelete(rec, withID(httptest.NewRequest("DELETE", "/", nil), m.ID.Hex()))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}
