package directory_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/facultyhub/internal/app/features/directory"
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"github.com/dalemusser/facultyhub/internal/domain/roster"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeSource serves a fixed snapshot, or none at all.
type fakeSource struct {
	snap *roster.Snapshot
}

func (f *fakeSource) Current() *roster.Snapshot { return f.snap }

func intp(v int) *int { return &v }

func testSnapshot(t *testing.T) *roster.Snapshot {
	t.Helper()

	terms := []models.Term{
		{ID: "t1", Name: "Fall 2024", Order: intp(1)},
		{ID: "t2", Name: "Spring 2025", Order: intp(2)},
	}
	departments := []models.Department{
		{ID: "d1", Name: "Computer Science", Branch: "Main"},
		{ID: "d2", Name: "Mathematics", Branch: "North"},
	}

	now := time.Now().UTC()
	members := []models.Member{
		{
			ID:          primitive.NewObjectID(),
			Name:        "Amal",
			Nationality: models.NationalitySaudi,
			UpdatedAt:   now,
			Appointments: []models.Appointment{
				{ID: primitive.NewObjectID(), TermStart: "t1", Rank: models.RankProfessor, DepartmentID: "d1", Branch: "Main"},
			},
			Publications: []models.Publication{
				{ID: primitive.NewObjectID(), Title: "On Graphs", Year: 2024},
			},
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Badr",
			Nationality: models.NationalityNonSaudi,
			UpdatedAt:   now.Add(-time.Hour),
			Appointments: []models.Appointment{
				{ID: primitive.NewObjectID(), TermStart: "t2", Rank: models.RankLecturer, DepartmentID: "d2", Branch: "North"},
			},
		},
	}

	snap, err := roster.NewSnapshot(terms, departments, members)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	return snap
}

func newTestHandler(t *testing.T) *directory.Handler {
	t.Helper()
	return directory.NewHandler(&fakeSource{snap: testSnapshot(t)}, zap.NewNop())
}

func TestServeSummary_DefaultsToLatestTerm(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/summary", nil)
	rec := httptest.NewRecorder()
	h.ServeSummary(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		TermID     string `json:"term_id"`
		Total      int    `json:"total"`
		Saudis     int    `json:"saudis"`
		Foreigners int    `json:"foreigners"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.TermID != "t2" {
		t.Errorf("term_id: got %q, want %q (latest term)", resp.TermID, "t2")
	}
	if resp.Total != 2 {
		t.Errorf("total: got %d, want 2", resp.Total)
	}
	if resp.Saudis != 1 || resp.Foreigners != 1 {
		t.Errorf("buckets: got saudis=%d foreigners=%d, want 1/1", resp.Saudis, resp.Foreigners)
	}
}

func TestServeSummary_UnknownTerm(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/summary?term=nope", nil)
	rec := httptest.NewRecorder()
	h.ServeSummary(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeMembers_RankFilter(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/members?term=t1&rank="+models.RankProfessor, nil)
	rec := httptest.NewRecorder()
	h.ServeMembers(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Members []struct {
			Name           string `json:"name"`
			Rank           string `json:"rank"`
			DepartmentName string `json:"department_name"`
		} `json:"members"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(resp.Members) != 1 {
		t.Fatalf("members: got %d rows, want 1", len(resp.Members))
	}
	row := resp.Members[0]
	if row.Name != "Amal" || row.Rank != models.RankProfessor {
		t.Errorf("row: got %+v", row)
	}
	if row.DepartmentName != "Computer Science" {
		t.Errorf("department_name: got %q, want %q", row.DepartmentName, "Computer Science")
	}
}

func TestServeMembers_NoAppointmentShowsPlaceholder(t *testing.T) {
	h := newTestHandler(t)

	// At t1 only Amal has an active appointment; Badr starts at t2.
	req := httptest.NewRequest("GET", "/members?term=t1", nil)
	rec := httptest.NewRecorder()
	h.ServeMembers(rec, req)

	var resp struct {
		Members []struct {
			Name string `json:"name"`
			Rank string `json:"rank"`
		} `json:"members"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(resp.Members) != 2 {
		t.Fatalf("members: got %d rows, want 2", len(resp.Members))
	}
	for _, row := range resp.Members {
		if row.Name == "Badr" && row.Rank != roster.RankPlaceholder {
			t.Errorf("Badr rank at t1: got %q, want placeholder", row.Rank)
		}
	}
}

func TestServePublications_IgnoreTermSelection(t *testing.T) {
	h := newTestHandler(t)

	for _, term := range []string{"t1", "t2"} {
		req := httptest.NewRequest("GET", "/publications?term="+term, nil)
		rec := httptest.NewRecorder()
		h.ServePublications(rec, req)

		var resp struct {
			Publications []struct {
				Title string `json:"title"`
			} `json:"publications"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(resp.Publications) != 1 {
			t.Errorf("term %s: got %d publications, want 1", term, len(resp.Publications))
		}
	}
}

func TestServeUpdates_MostRecentFirst(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/updates", nil)
	rec := httptest.NewRecorder()
	h.ServeUpdates(rec, req)

	var resp struct {
		Updates []struct {
			Name string `json:"name"`
		} `json:"updates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(resp.Updates) != 2 {
		t.Fatalf("updates: got %d, want 2", len(resp.Updates))
	}
	if resp.Updates[0].Name != "Amal" {
		t.Errorf("first update: got %q, want %q", resp.Updates[0].Name, "Amal")
	}
}

func TestServeFilters(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("GET", "/filters", nil)
	rec := httptest.NewRecorder()
	h.ServeFilters(rec, req)

	var resp struct {
		DefaultTermID string   `json:"default_term_id"`
		Branches      []string `json:"branches"`
		Ranks         []string `json:"ranks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.DefaultTermID != "t2" {
		t.Errorf("default_term_id: got %q, want %q", resp.DefaultTermID, "t2")
	}
	if len(resp.Branches) != 2 {
		t.Errorf("branches: got %v, want 2 entries", resp.Branches)
	}
	if len(resp.Ranks) != len(models.Ranks) {
		t.Errorf("ranks: got %d entries, want %d", len(resp.Ranks), len(models.Ranks))
	}
}

func TestNoSnapshotReturns503(t *testing.T) {
	h := directory.NewHandler(&fakeSource{}, zap.NewNop())

	req := httptest.NewRequest("GET", "/summary", nil)
	rec := httptest.NewRecorder()
	h.ServeSummary(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
