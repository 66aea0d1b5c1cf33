// internal/domain/roster/projection.go
package roster

import (
	"sort"
	"time"

	"github.com/dalemusser/facultyhub/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RankPlaceholder is shown for a member with no appointment active at
// the selected term.
const RankPlaceholder = "—"

// MemberRow is one display row of the members projection.
type MemberRow struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DepartmentName string `json:"department_name"`
	Branch         string `json:"branch"`
	Nationality    string `json:"nationality"`
	Rank           string `json:"rank"`
}

// ActivityRow is one display row of the activities projection.
type ActivityRow struct {
	MemberName string `json:"member_name"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	TermID     string `json:"term_id"`
}

// PublicationRow is one display row of the publications projection.
type PublicationRow struct {
	MemberName string `json:"member_name"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Year       int    `json:"year"`
}

// CourseRow is one display row of the courses projection.
type CourseRow struct {
	MemberName string `json:"member_name"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	TermID     string `json:"term_id"`
}

// Projection bundles the four display-ready views for one term/filter
// selection.
type Projection struct {
	Members      []MemberRow      `json:"members"`
	Activities   []ActivityRow    `json:"activities"`
	Publications []PublicationRow `json:"publications"`
	Courses      []CourseRow      `json:"courses"`
}

// Project filters the snapshot's members and builds all four
// projections. Members are sorted by Arabic-collated name; the other
// three views iterate the same sorted set so related rows group by
// member.
//
// Appointments are term ranges, but activities and courses match the
// selected term by strict equality (or carry no term at all). The
// asymmetry is intentional: those are point-in-time events, not
// durations.
func Project(snap *Snapshot, termID string, f FilterSpec) (Projection, error) {
	idx := snap.Index()

	var filtered []*models.Member
	for i := range snap.Members {
		m := &snap.Members[i]
		ok, err := Matches(m, termID, f, idx)
		if err != nil {
			return Projection{}, err
		}
		if ok {
			filtered = append(filtered, m)
		}
	}

	coll := collate.New(language.Arabic)
	sort.SliceStable(filtered, func(i, j int) bool {
		return coll.CompareString(filtered[i].Name, filtered[j].Name) < 0
	})

	var p Projection
	for _, m := range filtered {
		ap, err := ResolveAt(m.Appointments, termID, idx)
		if err != nil {
			return Projection{}, err
		}

		row := MemberRow{
			ID:          m.ID.Hex(),
			Name:        m.Name,
			Nationality: m.Nationality,
			Rank:        RankPlaceholder,
		}
		if ap != nil {
			row.DepartmentName = snap.DepartmentName(ap.DepartmentID)
			row.Branch = ap.Branch
			row.Rank = ap.Rank
		}
		p.Members = append(p.Members, row)

		for _, a := range m.Activities {
			if a.TermID != "" && a.TermID != termID {
				continue
			}
			p.Activities = append(p.Activities, ActivityRow{
				MemberName: m.Name,
				Title:      a.Title,
				Type:       a.Type,
				Date:       a.Date,
				TermID:     a.TermID,
			})
		}
		for _, pub := range m.Publications {
			p.Publications = append(p.Publications, PublicationRow{
				MemberName: m.Name,
				Title:      pub.Title,
				Type:       pub.Type,
				Year:       pub.Year,
			})
		}
		for _, c := range m.Courses {
			if c.TermID != "" && c.TermID != termID {
				continue
			}
			p.Courses = append(p.Courses, CourseRow{
				MemberName: m.Name,
				Name:       c.Name,
				Code:       c.Code,
				TermID:     c.TermID,
			})
		}
	}
	return p, nil
}

// UpdateRow is one entry of the recent-updates panel.
type UpdateRow struct {
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecentUpdates returns up to n members ordered by most recent
// mutation. The panel shows who changed last, regardless of filters.
func RecentUpdates(members []models.Member, n int) []UpdateRow {
	sorted := make([]*models.Member, len(members))
	for i := range members {
		sorted[i] = &members[i]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	rows := make([]UpdateRow, 0, len(sorted))
	for _, m := range sorted {
		rows = append(rows, UpdateRow{Name: m.Name, UpdatedAt: m.UpdatedAt})
	}
	return rows
}
