// internal/app/features/members/types.go
package members

type memberInput struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

type appointmentInput struct {
	TermStart    string `json:"term_start"`
	TermEnd      string `json:"term_end"`
	Rank         string `json:"rank"`
	DepartmentID string `json:"department_id"`
	Branch       string `json:"branch"`
}

type activityInput struct {
	Title  string `json:"title"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	TermID string `json:"term_id"`
}

type publicationInput struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Year  int    `json:"year"`
}

type courseInput struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	TermID string `json:"term_id"`
}
