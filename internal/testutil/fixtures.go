// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"

	departmentstore "github.com/dalemusser/facultyhub/internal/app/store/departments"
	memberstore "github.com/dalemusser/facultyhub/internal/app/store/members"
	termstore "github.com/dalemusser/facultyhub/internal/app/store/terms"
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures creates test data through the same stores the app uses.
type Fixtures struct {
	t           *testing.T
	Terms       *termstore.Store
	Departments *departmentstore.Store
	Members     *memberstore.Store
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:           t,
		Terms:       termstore.New(db),
		Departments: departmentstore.New(db),
		Members:     memberstore.New(db),
	}
}

// CreateTerm inserts a term with the given id, name, and rank.
func (f *Fixtures) CreateTerm(ctx context.Context, id, name string, order int) models.Term {
	f.t.Helper()
	term := models.Term{ID: id, Name: name, Order: &order}
	if err := f.Terms.Upsert(ctx, term); err != nil {
		f.t.Fatalf("CreateTerm(%s): %v", id, err)
	}
	return term
}

// CreateDepartment inserts a department.
func (f *Fixtures) CreateDepartment(ctx context.Context, id, name, branch string) models.Department {
	f.t.Helper()
	dept := models.Department{ID: id, Name: name, Branch: branch}
	if err := f.Departments.Upsert(ctx, dept); err != nil {
		f.t.Fatalf("CreateDepartment(%s): %v", id, err)
	}
	return dept
}

// CreateMember inserts a member.
func (f *Fixtures) CreateMember(ctx context.Context, name, nationality string) models.Member {
	f.t.Helper()
	m, err := f.Members.Create(ctx, models.Member{Name: name, Nationality: nationality})
	if err != nil {
		f.t.Fatalf("CreateMember(%s): %v", name, err)
	}
	return m
}

// CreateAppointment appends an appointment to a member.
func (f *Fixtures) CreateAppointment(ctx context.Context, m models.Member, a models.Appointment) models.Appointment {
	f.t.Helper()
	created, err := f.Members.AddAppointment(ctx, m.ID, a)
	if err != nil {
		f.t.Fatalf("CreateAppointment(%s): %v", m.Name, err)
	}
	return created
}

// CreateActivity appends an activity to a member.
func (f *Fixtures) CreateActivity(ctx context.Context, m models.Member, a models.Activity) models.Activity {
	f.t.Helper()
	created, err := f.Members.AddActivity(ctx, m.ID, a)
	if err != nil {
		f.t.Fatalf("CreateActivity(%s): %v", m.Name, err)
	}
	return created
}

// CreatePublication appends a publication to a member.
func (f *Fixtures) CreatePublication(ctx context.Context, m models.Member, p models.Publication) models.Publication {
	f.t.Helper()
	created, err := f.Members.AddPublication(ctx, m.ID, p)
	if err != nil {
		f.t.Fatalf("CreatePublication(%s): %v", m.Name, err)
	}
	return created
}

// CreateCourse appends a course to a member.
func (f *Fixtures) CreateCourse(ctx context.Context, m models.Member, c models.Course) models.Course {
	f.t.Helper()
	created, err := f.Members.AddCourse(ctx, m.ID, c)
	if err != nil {
		f.t.Fatalf("CreateCourse(%s): %v", m.Name, err)
	}
	return created
}
