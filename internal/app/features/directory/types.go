// internal/app/features/directory/types.go
package directory

import (
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"github.com/dalemusser/facultyhub/internal/domain/roster"
)

type summaryResponse struct {
	TermID string `json:"term_id"`
	roster.Summary
}

type memberRowsResponse struct {
	TermID  string             `json:"term_id"`
	Members []roster.MemberRow `json:"members"`
}

type activityRowsResponse struct {
	TermID     string               `json:"term_id"`
	Activities []roster.ActivityRow `json:"activities"`
}

type publicationRowsResponse struct {
	TermID       string                  `json:"term_id"`
	Publications []roster.PublicationRow `json:"publications"`
}

type courseRowsResponse struct {
	TermID  string             `json:"term_id"`
	Courses []roster.CourseRow `json:"courses"`
}

type updatesResponse struct {
	Updates []roster.UpdateRow `json:"updates"`
}

// filtersResponse populates the filter controls: terms in rank order,
// departments, the distinct branches, and the fixed rank/nationality
// lists.
type filtersResponse struct {
	DefaultTermID string              `json:"default_term_id"`
	Terms         []models.Term       `json:"terms"`
	Departments   []models.Department `json:"departments"`
	Branches      []string            `json:"branches"`
	Ranks         []string            `json:"ranks"`
	Nationalities []string            `json:"nationalities"`
}

func newFiltersResponse(snap *roster.Snapshot) filtersResponse {
	return filtersResponse{
		DefaultTermID: snap.DefaultTermID(),
		Terms:         snap.Index().Terms(),
		Departments:   snap.Departments,
		Branches:      snap.Branches(),
		Ranks:         models.Ranks,
		Nationalities: models.Nationalities,
	}
}
