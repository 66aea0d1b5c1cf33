// internal/app/store/snapshot/service.go
package snapshot

import (
	"context"
	"sync"
	"time"

	departmentstore "github.com/dalemusser/facultyhub/internal/app/store/departments"
	memberstore "github.com/dalemusser/facultyhub/internal/app/store/members"
	termstore "github.com/dalemusser/facultyhub/internal/app/store/terms"
	"github.com/dalemusser/facultyhub/internal/domain/roster"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Service loads full roster snapshots from Mongo and holds the current
// valid one. A reload either fully succeeds and swaps the snapshot in,
// or fails and leaves the previous snapshot serving reads; the roster
// engine is never invoked on a partial or inconsistent load.
type Service struct {
	terms       *termstore.Store
	departments *departmentstore.Store
	members     *memberstore.Store
	log         *zap.Logger

	mu  sync.RWMutex
	cur *roster.Snapshot
}

func NewService(db *mongo.Database, logger *zap.Logger) *Service {
	return &Service{
		terms:       termstore.New(db),
		departments: departmentstore.New(db),
		members:     memberstore.New(db),
		log:         logger,
	}
}

// Current returns the most recent valid snapshot, or nil before the
// first successful load.
func (s *Service) Current() *roster.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Reload reads all collections and sub-collections, rebuilds the term
// index, validates the result, and swaps it in. Called at startup and
// after every successful write.
func (s *Service) Reload(ctx context.Context) error {
	start := time.Now()

	terms, err := s.terms.List(ctx)
	if err != nil {
		return err
	}
	departments, err := s.departments.List(ctx)
	if err != nil {
		return err
	}
	members, err := s.members.List(ctx)
	if err != nil {
		return err
	}

	appointments, err := s.members.ListAppointments(ctx)
	if err != nil {
		return err
	}
	activities, err := s.members.ListActivities(ctx)
	if err != nil {
		return err
	}
	publications, err := s.members.ListPublications(ctx)
	if err != nil {
		return err
	}
	courses, err := s.members.ListCourses(ctx)
	if err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]int, len(members))
	for i := range members {
		byID[members[i].ID] = i
	}
	for _, a := range appointments {
		if i, ok := byID[a.MemberID]; ok {
			members[i].Appointments = append(members[i].Appointments, a)
		}
	}
	for _, a := range activities {
		if i, ok := byID[a.MemberID]; ok {
			members[i].Activities = append(members[i].Activities, a)
		}
	}
	for _, p := range publications {
		if i, ok := byID[p.MemberID]; ok {
			members[i].Publications = append(members[i].Publications, p)
		}
	}
	for _, c := range courses {
		if i, ok := byID[c.MemberID]; ok {
			members[i].Courses = append(members[i].Courses, c)
		}
	}

	snap, err := roster.NewSnapshot(terms, departments, members)
	if err != nil {
		s.log.Error("snapshot rejected, keeping previous", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.cur = snap
	s.mu.Unlock()

	s.log.Info("snapshot loaded",
		zap.String("snapshot_id", snap.ID),
		zap.Int("terms", len(terms)),
		zap.Int("departments", len(departments)),
		zap.Int("members", len(members)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
