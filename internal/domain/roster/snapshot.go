// internal/domain/roster/snapshot.go
package roster

import (
	"fmt"
	"sort"
	"time"

	"github.com/dalemusser/facultyhub/internal/domain/models"
	"github.com/google/uuid"
)

// Snapshot is the full in-memory copy of terms, departments, and
// members (with sub-records) loaded from the store at one point in
// time. The roster engine only ever reads a snapshot; a refresh builds
// a new one and swaps it in whole, so no locking is needed inside the
// engine.
//
// The ID tags log lines so a derived view can be traced back to the
// load that produced it.
type Snapshot struct {
	ID          string
	LoadedAt    time.Time
	Terms       []models.Term
	Departments []models.Department
	Members     []models.Member

	index     *TermIndex
	deptNames map[string]string
}

// NewSnapshot builds the term index and validates every term reference
// carried by the members' sub-records. A dangling appointment,
// activity, or course term id rejects the whole snapshot: the caller
// keeps serving the previous valid one instead of computing over
// corrupt data.
func NewSnapshot(terms []models.Term, departments []models.Department, members []models.Member) (*Snapshot, error) {
	idx := BuildTermIndex(terms)

	for i := range members {
		m := &members[i]
		for _, a := range m.Appointments {
			if a.TermStart == "" {
				return nil, fmt.Errorf("member %s appointment %s: %w", m.ID.Hex(), a.ID.Hex(), ErrMissingTermStart)
			}
			if !idx.Has(a.TermStart) {
				return nil, fmt.Errorf("member %s appointment %s: term %q: %w", m.ID.Hex(), a.ID.Hex(), a.TermStart, ErrUnknownTerm)
			}
			if a.TermEnd != "" && !idx.Has(a.TermEnd) {
				return nil, fmt.Errorf("member %s appointment %s: term %q: %w", m.ID.Hex(), a.ID.Hex(), a.TermEnd, ErrUnknownTerm)
			}
		}
		for _, act := range m.Activities {
			if act.TermID != "" && !idx.Has(act.TermID) {
				return nil, fmt.Errorf("member %s activity %s: term %q: %w", m.ID.Hex(), act.ID.Hex(), act.TermID, ErrUnknownTerm)
			}
		}
		for _, c := range m.Courses {
			if c.TermID != "" && !idx.Has(c.TermID) {
				return nil, fmt.Errorf("member %s course %s: term %q: %w", m.ID.Hex(), c.ID.Hex(), c.TermID, ErrUnknownTerm)
			}
		}
	}

	deptNames := make(map[string]string, len(departments))
	for _, d := range departments {
		deptNames[d.ID] = d.Name
	}

	return &Snapshot{
		ID:          uuid.NewString(),
		LoadedAt:    time.Now().UTC(),
		Terms:       terms,
		Departments: departments,
		Members:     members,
		index:       idx,
		deptNames:   deptNames,
	}, nil
}

// Index returns the term index built for this snapshot.
func (s *Snapshot) Index() *TermIndex {
	return s.index
}

// DefaultTermID is the latest term by order, used when no term filter
// has been selected yet. Empty when the snapshot has no terms.
func (s *Snapshot) DefaultTermID() string {
	t, ok := s.index.Latest()
	if !ok {
		return ""
	}
	return t.ID
}

// DepartmentName looks a department up by id. Blank when unresolved.
func (s *Snapshot) DepartmentName(id string) string {
	return s.deptNames[id]
}

// Branches returns the distinct non-empty department branches, sorted,
// for the branch filter control.
func (s *Snapshot) Branches() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range s.Departments {
		if d.Branch == "" {
			continue
		}
		if _, dup := seen[d.Branch]; dup {
			continue
		}
		seen[d.Branch] = struct{}{}
		out = append(out, d.Branch)
	}
	sort.Strings(out)
	return out
}
