// internal/domain/roster/resolve.go
package roster

import (
	"fmt"

	"github.com/dalemusser/facultyhub/internal/domain/models"
)

// ResolveAt finds the single authoritative appointment active at
// termID: the target term must fall inside [TermStart, TermEnd]
// inclusive, an empty TermEnd meaning "through the present". When
// several appointments cover the term (overlaps are tolerated, not
// rejected), the one with the latest starting term wins; exact rank
// ties go to the first appointment in declaration order.
//
// Returns (nil, nil) when the member had no active appointment at that
// term. Pure function of its inputs.
func ResolveAt(apps []models.Appointment, termID string, idx *TermIndex) (*models.Appointment, error) {
	var best *models.Appointment
	var bestRank int

	for i := range apps {
		a := &apps[i]
		if a.TermStart == "" {
			return nil, fmt.Errorf("appointment %s: %w", a.ID.Hex(), ErrMissingTermStart)
		}
		startsOK, err := idx.LTE(a.TermStart, termID)
		if err != nil {
			return nil, fmt.Errorf("appointment %s: %w", a.ID.Hex(), err)
		}
		if !startsOK {
			continue
		}
		if a.TermEnd != "" {
			endsOK, err := idx.GTE(a.TermEnd, termID)
			if err != nil {
				return nil, fmt.Errorf("appointment %s: %w", a.ID.Hex(), err)
			}
			if !endsOK {
				continue
			}
		}
		rank, err := idx.Rank(a.TermStart)
		if err != nil {
			return nil, fmt.Errorf("appointment %s: %w", a.ID.Hex(), err)
		}
		if best == nil || rank > bestRank {
			best, bestRank = a, rank
		}
	}
	return best, nil
}
