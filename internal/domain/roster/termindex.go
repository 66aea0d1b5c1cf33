// internal/domain/roster/termindex.go
package roster

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dalemusser/facultyhub/internal/domain/models"
)

// ErrUnknownTerm reports a term id referenced by a record but absent
// from the term index. A dangling reference signals data corruption, so
// lookups never substitute a default order.
var ErrUnknownTerm = errors.New("unknown term id")

// ErrMissingTermStart reports an appointment stored without a starting
// term. Such a record can never be ordered and is rejected rather than
// silently skipped.
var ErrMissingTermStart = errors.New("appointment has no term_start")

// TermIndex holds the total order over terms for one snapshot. It is
// rebuilt from scratch on every snapshot load; there are no incremental
// updates.
type TermIndex struct {
	terms []models.Term // ascending by resolved rank
	ranks map[string]int
}

// BuildTermIndex sorts terms by their declared order (a missing order
// sorts as 0, declaration position breaking ties) and assigns each term
// a resolved rank: the declared order, or the sorted position when the
// term has none.
func BuildTermIndex(terms []models.Term) *TermIndex {
	sorted := make([]models.Term, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return orderOrZero(sorted[i]) < orderOrZero(sorted[j])
	})

	ranks := make(map[string]int, len(sorted))
	for i, t := range sorted {
		if t.Order != nil {
			ranks[t.ID] = *t.Order
		} else {
			ranks[t.ID] = i
		}
	}
	return &TermIndex{terms: sorted, ranks: ranks}
}

func orderOrZero(t models.Term) int {
	if t.Order == nil {
		return 0
	}
	return *t.Order
}

// Rank returns the resolved rank for a term id.
func (x *TermIndex) Rank(id string) (int, error) {
	r, ok := x.ranks[id]
	if !ok {
		return 0, fmt.Errorf("term %q: %w", id, ErrUnknownTerm)
	}
	return r, nil
}

// Has reports whether id is present in the index.
func (x *TermIndex) Has(id string) bool {
	_, ok := x.ranks[id]
	return ok
}

// LTE reports whether term a sorts at or before term b.
func (x *TermIndex) LTE(a, b string) (bool, error) {
	ra, err := x.Rank(a)
	if err != nil {
		return false, err
	}
	rb, err := x.Rank(b)
	if err != nil {
		return false, err
	}
	return ra <= rb, nil
}

// GTE reports whether term a sorts at or after term b.
func (x *TermIndex) GTE(a, b string) (bool, error) {
	ra, err := x.Rank(a)
	if err != nil {
		return false, err
	}
	rb, err := x.Rank(b)
	if err != nil {
		return false, err
	}
	return ra >= rb, nil
}

// Terms returns the terms in ascending rank order.
func (x *TermIndex) Terms() []models.Term {
	return x.terms
}

// Latest returns the term with the highest rank, or false when the
// index is empty. It backs the default term selection.
func (x *TermIndex) Latest() (models.Term, bool) {
	if len(x.terms) == 0 {
		return models.Term{}, false
	}
	return x.terms[len(x.terms)-1], true
}
