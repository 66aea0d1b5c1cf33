// internal/domain/roster/filter.go
package roster

import (
	"strings"

	"github.com/dalemusser/facultyhub/internal/domain/models"
)

// FilterSpec is the current set of narrowing criteria for the roster.
// It lives only for the duration of a request; an empty field imposes
// no constraint.
type FilterSpec struct {
	TermID       string
	DepartmentID string
	Branch       string
	Nationality  string
	Rank         string
	NameQuery    string
}

// Matches decides whether a member belongs to the filtered set at the
// given term. The member's appointment is resolved once, then the
// criteria apply in order, short-circuiting on the first failure:
// rank, department, branch (all three need a resolved appointment),
// nationality (exact match on the member), and name substring
// (case-sensitive containment).
//
// A member with no active appointment fails any rank/department/branch
// criterion but can still pass nationality- or name-only filtering.
func Matches(m *models.Member, termID string, f FilterSpec, idx *TermIndex) (bool, error) {
	ap, err := ResolveAt(m.Appointments, termID, idx)
	if err != nil {
		return false, err
	}
	if f.Rank != "" && (ap == nil || ap.Rank != f.Rank) {
		return false, nil
	}
	if f.DepartmentID != "" && (ap == nil || ap.DepartmentID != f.DepartmentID) {
		return false, nil
	}
	if f.Branch != "" && (ap == nil || ap.Branch != f.Branch) {
		return false, nil
	}
	if f.Nationality != "" && m.Nationality != f.Nationality {
		return false, nil
	}
	if f.NameQuery != "" && !strings.Contains(m.Name, f.NameQuery) {
		return false, nil
	}
	return true, nil
}
