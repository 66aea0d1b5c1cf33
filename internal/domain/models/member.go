// internal/domain/models/member.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Academic ranks, in the fixed order the summary histogram reports them.
const (
	RankProfessor          = "professor"
	RankAssociateProfessor = "associate_professor"
	RankAssistantProfessor = "assistant_professor"
	RankLecturer           = "lecturer"
)

// Ranks is the ordered list of valid appointment ranks.
var Ranks = []string{
	RankProfessor,
	RankAssociateProfessor,
	RankAssistantProfessor,
	RankLecturer,
}

// Nationality labels the summary counts against. Any other nationality
// value is legal on a member but lands in the "others" bucket.
const (
	NationalitySaudi    = "saudi"
	NationalityNonSaudi = "non_saudi"
)

// Nationalities is the fixed list offered by the nationality filter control.
var Nationalities = []string{NationalitySaudi, NationalityNonSaudi}

// IsValidRank reports whether rank is one of the four appointment ranks.
func IsValidRank(rank string) bool {
	for _, r := range Ranks {
		if r == rank {
			return true
		}
	}
	return false
}

// Member is a faculty member. UpdatedAt is bumped whenever the member
// document or any of its sub-records is written, and drives the
// recent-updates panel.
//
// Sub-record lists are not embedded in the member document; they live in
// their own collections keyed by member_id and are stitched in by the
// snapshot loader. A populated Member therefore only exists inside a
// roster.Snapshot.
type Member struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Nationality string             `bson:"nationality,omitempty" json:"nationality,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`

	Appointments []Appointment `bson:"-" json:"appointments,omitempty"`
	Activities   []Activity    `bson:"-" json:"activities,omitempty"`
	Publications []Publication `bson:"-" json:"publications,omitempty"`
	Courses      []Course      `bson:"-" json:"courses,omitempty"`
}

// Appointment assigns a member to a rank/department/branch over a term
// range. TermEnd == "" means the appointment is open-ended (active
// through the present). Ranges of a member's appointments may overlap;
// the roster engine resolves the authoritative one per target term.
type Appointment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MemberID     primitive.ObjectID `bson:"member_id" json:"-"`
	TermStart    string             `bson:"term_start" json:"term_start"`
	TermEnd      string             `bson:"term_end,omitempty" json:"term_end,omitempty"`
	Rank         string             `bson:"rank" json:"rank"`
	DepartmentID string             `bson:"department_id,omitempty" json:"department_id,omitempty"`
	Branch       string             `bson:"branch,omitempty" json:"branch,omitempty"`
}

// Activity is a point-in-time event (talk, committee, workshop). An
// empty TermID means the activity is term-agnostic and shows for every
// selected term.
type Activity struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MemberID primitive.ObjectID `bson:"member_id" json:"-"`
	Title    string             `bson:"title" json:"title"`
	Type     string             `bson:"type,omitempty" json:"type,omitempty"`
	Date     string             `bson:"date,omitempty" json:"date,omitempty"` // ISO date
	TermID   string             `bson:"term_id,omitempty" json:"term_id,omitempty"`
}

// Publication carries no term association; publications are filtered
// only through their member's filter membership.
type Publication struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MemberID primitive.ObjectID `bson:"member_id" json:"-"`
	Title    string             `bson:"title" json:"title"`
	Type     string             `bson:"type,omitempty" json:"type,omitempty"`
	Year     int                `bson:"year,omitempty" json:"year,omitempty"`
}

// Course is a taught course tagged to a specific term.
type Course struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MemberID primitive.ObjectID `bson:"member_id" json:"-"`
	Name     string             `bson:"name" json:"name"`
	Code     string             `bson:"code,omitempty" json:"code,omitempty"`
	TermID   string             `bson:"term_id,omitempty" json:"term_id,omitempty"`
}
