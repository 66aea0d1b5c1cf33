package snapshot_test

import (
	"testing"

	snapshotsvc "github.com/dalemusser/facultyhub/internal/app/store/snapshot"
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"github.com/dalemusser/facultyhub/internal/testutil"
	"go.uber.org/zap"
)

func TestReload_StitchesSubRecords(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	svc := snapshotsvc.NewService(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTerm(ctx, "t1", "Fall 2024", 1)
	fixtures.CreateTerm(ctx, "t2", "Spring 2025", 2)
	fixtures.CreateDepartment(ctx, "d1", "Computer Science", "Main")

	m := fixtures.CreateMember(ctx, "Amal", models.NationalitySaudi)
	fixtures.CreateAppointment(ctx, m, models.Appointment{
		TermStart:    "t1",
		Rank:         models.RankProfessor,
		DepartmentID: "d1",
	})
	fixtures.CreateCourse(ctx, m, models.Course{Name: "Algorithms", TermID: "t2"})

	if svc.Current() != nil {
		t.Fatal("expected no snapshot before first reload")
	}
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	snap := svc.Current()
	if snap == nil {
		t.Fatal("expected snapshot after reload")
	}
	if len(snap.Members) != 1 {
		t.Fatalf("members: got %d, want 1", len(snap.Members))
	}
	got := snap.Members[0]
	if len(got.Appointments) != 1 || len(got.Courses) != 1 {
		t.Errorf("sub-records not stitched: %d appointments, %d courses", len(got.Appointments), len(got.Courses))
	}
	if snap.DefaultTermID() != "t2" {
		t.Errorf("DefaultTermID: got %q, want %q", snap.DefaultTermID(), "t2")
	}
}

func TestReload_RejectsDanglingTermKeepsPrevious(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	svc := snapshotsvc.NewService(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTerm(ctx, "t1", "Fall 2024", 1)
	m := fixtures.CreateMember(ctx, "Amal", models.NationalitySaudi)
	fixtures.CreateAppointment(ctx, m, models.Appointment{TermStart: "t1", Rank: models.RankLecturer})

	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("first Reload: %v", err)
	}
	prev := svc.Current()

	// Bypass write-time validation: insert an appointment referencing a
	// term that does not exist.
	fixtures.CreateAppointment(ctx, m, models.Appointment{TermStart: "ghost", Rank: models.RankLecturer})

	if err := svc.Reload(ctx); err == nil {
		t.Fatal("Reload: expected rejection for dangling term reference")
	}

	cur := svc.Current()
	if cur == nil || cur.ID != prev.ID {
		t.Error("previous snapshot not kept after rejected reload")
	}
}

func TestReload_EmptyDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := snapshotsvc.NewService(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("Reload on empty database: %v", err)
	}
	snap := svc.Current()
	if snap == nil {
		t.Fatal("expected an empty snapshot, not nil")
	}
	if snap.DefaultTermID() != "" {
		t.Errorf("DefaultTermID on empty snapshot: got %q, want empty", snap.DefaultTermID())
	}
}
