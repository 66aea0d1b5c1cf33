package roster_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/facultyhub/internal/domain/models"
	"github.com/dalemusser/facultyhub/internal/domain/roster"
)

func intp(n int) *int { return &n }

func term(id string, order int) models.Term {
	return models.Term{ID: id, Name: id, Order: intp(order)}
}

func TestBuildTermIndex_DeclaredOrder(t *testing.T) {
	idx := roster.BuildTermIndex([]models.Term{
		term("fall", 3),
		term("spring", 1),
		term("summer", 2),
	})

	// lte/gte must agree with numeric comparison of declared orders.
	lte, err := idx.LTE("spring", "fall")
	if err != nil {
		t.Fatalf("LTE failed: %v", err)
	}
	if !lte {
		t.Error("expected spring <= fall")
	}

	gte, err := idx.GTE("spring", "fall")
	if err != nil {
		t.Fatalf("GTE failed: %v", err)
	}
	if gte {
		t.Error("expected spring < fall")
	}

	// A term compares equal to itself.
	lte, err = idx.LTE("summer", "summer")
	if err != nil {
		t.Fatalf("LTE failed: %v", err)
	}
	if !lte {
		t.Error("expected summer <= summer")
	}
}

func TestBuildTermIndex_MissingOrderUsesPosition(t *testing.T) {
	// Terms without a declared order sort as 0 and get their sorted
	// position as rank, with declaration order breaking ties.
	idx := roster.BuildTermIndex([]models.Term{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		term("c", 5),
	})

	ra, err := idx.Rank("a")
	if err != nil {
		t.Fatalf("Rank(a) failed: %v", err)
	}
	rb, err := idx.Rank("b")
	if err != nil {
		t.Fatalf("Rank(b) failed: %v", err)
	}
	if ra != 0 || rb != 1 {
		t.Errorf("expected positional ranks 0 and 1, got %d and %d", ra, rb)
	}

	rc, err := idx.Rank("c")
	if err != nil {
		t.Fatalf("Rank(c) failed: %v", err)
	}
	if rc != 5 {
		t.Errorf("expected declared rank 5, got %d", rc)
	}
}

func TestTermIndex_UnknownIDFails(t *testing.T) {
	idx := roster.BuildTermIndex([]models.Term{term("t1", 1)})

	if _, err := idx.Rank("ghost"); !errors.Is(err, roster.ErrUnknownTerm) {
		t.Errorf("expected ErrUnknownTerm, got %v", err)
	}
	if _, err := idx.LTE("t1", "ghost"); !errors.Is(err, roster.ErrUnknownTerm) {
		t.Errorf("expected ErrUnknownTerm from LTE, got %v", err)
	}
	if _, err := idx.GTE("ghost", "t1"); !errors.Is(err, roster.ErrUnknownTerm) {
		t.Errorf("expected ErrUnknownTerm from GTE, got %v", err)
	}
}

func TestTermIndex_Latest(t *testing.T) {
	idx := roster.BuildTermIndex([]models.Term{
		term("t1", 1),
		term("t3", 3),
		term("t2", 2),
	})

	latest, ok := idx.Latest()
	if !ok {
		t.Fatal("expected a latest term")
	}
	if latest.ID != "t3" {
		t.Errorf("expected latest t3, got %s", latest.ID)
	}

	empty := roster.BuildTermIndex(nil)
	if _, ok := empty.Latest(); ok {
		t.Error("expected no latest term for an empty index")
	}
}

func TestTermIndex_TermsSortedAscending(t *testing.T) {
	idx := roster.BuildTermIndex([]models.Term{
		term("t2", 20),
		term("t1", 10),
	})

	got := idx.Terms()
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t2" {
		t.Errorf("expected [t1 t2], got %v", got)
	}
}
