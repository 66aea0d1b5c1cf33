// internal/domain/roster/summary.go
package roster

import (
	"github.com/dalemusser/facultyhub/internal/domain/models"
)

// RankCount is one bucket of the rank histogram.
type RankCount struct {
	Rank  string `json:"rank"`
	Count int    `json:"count"`
}

// Summary holds the aggregate counts over the filtered member set.
// Total always equals Saudis + Foreigners + Others. Members without a
// resolved appointment at the target term contribute to no rank bucket,
// so the histogram may sum to less than Total.
type Summary struct {
	Total      int         `json:"total"`
	Saudis     int         `json:"saudis"`
	Foreigners int         `json:"foreigners"`
	Others     int         `json:"others"`
	Ranks      []RankCount `json:"ranks"`
}

// Summarize filters the full member set and computes the summary
// counts. Fully recomputed on every filter change; no incremental
// aggregation.
func Summarize(members []models.Member, termID string, f FilterSpec, idx *TermIndex) (Summary, error) {
	s := Summary{Ranks: make([]RankCount, len(models.Ranks))}
	for i, r := range models.Ranks {
		s.Ranks[i].Rank = r
	}

	for i := range members {
		m := &members[i]
		ok, err := Matches(m, termID, f, idx)
		if err != nil {
			return Summary{}, err
		}
		if !ok {
			continue
		}
		s.Total++
		switch m.Nationality {
		case models.NationalitySaudi:
			s.Saudis++
		case models.NationalityNonSaudi:
			s.Foreigners++
		default:
			s.Others++
		}

		ap, err := ResolveAt(m.Appointments, termID, idx)
		if err != nil {
			return Summary{}, err
		}
		if ap == nil {
			continue
		}
		for j := range s.Ranks {
			if s.Ranks[j].Rank == ap.Rank {
				s.Ranks[j].Count++
				break
			}
		}
	}
	return s, nil
}
