// internal/app/store/members/memberstore.go
package memberstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/facultyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMemberNotFound is returned when a sub-record write references a
// member id that does not exist.
var ErrMemberNotFound = errors.New("member not found")

// Store provides access to the members collection and the four
// sub-record collections a member owns (appointments, activities,
// publications, courses). Sub-records are keyed by member_id; every
// sub-record write bumps the owning member's updated_at.
type Store struct {
	c            *mongo.Collection
	appointments *mongo.Collection
	activities   *mongo.Collection
	publications *mongo.Collection
	courses      *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:            db.Collection("members"),
		appointments: db.Collection("appointments"),
		activities:   db.Collection("activities"),
		publications: db.Collection("publications"),
		courses:      db.Collection("courses"),
	}
}

// Create inserts a new member with a generated id and timestamps.
func (s *Store) Create(ctx context.Context, m models.Member) (models.Member, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.CreatedAt = now
	m.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// Upsert creates or replaces a member with a caller-supplied id. Used
// by bulk import, where the dump may carry explicit member ids.
func (s *Store) Upsert(ctx context.Context, m models.Member) (models.Member, error) {
	now := time.Now().UTC()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.c.ReplaceOne(ctx, bson.M{"_id": m.ID}, m, opts); err != nil {
		return models.Member{}, err
	}
	return m, nil
}

// List returns all member documents, without sub-records. The snapshot
// loader stitches sub-records in.
func (s *Store) List(ctx context.Context) ([]models.Member, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.Member
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Get returns a single member document.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.Member, error) {
	var m models.Member
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return models.Member{}, ErrMemberNotFound
	}
	return m, err
}

// Exists reports whether a member document exists.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// touch bumps the member's updated_at after a sub-record write.
func (s *Store) touch(ctx context.Context, id primitive.ObjectID, now time.Time) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"updated_at": now}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// AddAppointment appends an appointment to a member's history.
func (s *Store) AddAppointment(ctx context.Context, memberID primitive.ObjectID, a models.Appointment) (models.Appointment, error) {
	now := time.Now().UTC()
	if err := s.touch(ctx, memberID, now); err != nil {
		return models.Appointment{}, err
	}
	a.ID = primitive.NewObjectID()
	a.MemberID = memberID
	if _, err := s.appointments.InsertOne(ctx, a); err != nil {
		return models.Appointment{}, err
	}
	return a, nil
}

// AddActivity appends an activity to a member.
func (s *Store) AddActivity(ctx context.Context, memberID primitive.ObjectID, a models.Activity) (models.Activity, error) {
	now := time.Now().UTC()
	if err := s.touch(ctx, memberID, now); err != nil {
		return models.Activity{}, err
	}
	a.ID = primitive.NewObjectID()
	a.MemberID = memberID
	if _, err := s.activities.InsertOne(ctx, a); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

// AddPublication appends a publication to a member.
func (s *Store) AddPublication(ctx context.Context, memberID primitive.ObjectID, p models.Publication) (models.Publication, error) {
	now := time.Now().UTC()
	if err := s.touch(ctx, memberID, now); err != nil {
		return models.Publication{}, err
	}
	p.ID = primitive.NewObjectID()
	p.MemberID = memberID
	if _, err := s.publications.InsertOne(ctx, p); err != nil {
		return models.Publication{}, err
	}
	return p, nil
}

// AddCourse appends a course to a member.
func (s *Store) AddCourse(ctx context.Context, memberID primitive.ObjectID, c models.Course) (models.Course, error) {
	now := time.Now().UTC()
	if err := s.touch(ctx, memberID, now); err != nil {
		return models.Course{}, err
	}
	c.ID = primitive.NewObjectID()
	c.MemberID = memberID
	if _, err := s.courses.InsertOne(ctx, c); err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// InsertAppointments bulk-inserts appointments for a member without
// touching updated_at. Import uses this so the dump's timestamps
// survive a round trip.
func (s *Store) InsertAppointments(ctx context.Context, memberID primitive.ObjectID, apps []models.Appointment) error {
	if len(apps) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(apps))
	for _, a := range apps {
		if a.ID.IsZero() {
			a.ID = primitive.NewObjectID()
		}
		a.MemberID = memberID
		docs = append(docs, a)
	}
	_, err := s.appointments.InsertMany(ctx, docs)
	return err
}

// InsertActivities bulk-inserts activities for a member.
func (s *Store) InsertActivities(ctx context.Context, memberID primitive.ObjectID, acts []models.Activity) error {
	if len(acts) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(acts))
	for _, a := range acts {
		if a.ID.IsZero() {
			a.ID = primitive.NewObjectID()
		}
		a.MemberID = memberID
		docs = append(docs, a)
	}
	_, err := s.activities.InsertMany(ctx, docs)
	return err
}

// InsertPublications bulk-inserts publications for a member.
func (s *Store) InsertPublications(ctx context.Context, memberID primitive.ObjectID, pubs []models.Publication) error {
	if len(pubs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(pubs))
	for _, p := range pubs {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		p.MemberID = memberID
		docs = append(docs, p)
	}
	_, err := s.publications.InsertMany(ctx, docs)
	return err
}

// InsertCourses bulk-inserts courses for a member.
func (s *Store) InsertCourses(ctx context.Context, memberID primitive.ObjectID, courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(courses))
	for _, c := range courses {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		c.MemberID = memberID
		docs = append(docs, c)
	}
	_, err := s.courses.InsertMany(ctx, docs)
	return err
}

// ClearSubRecords removes all sub-records for a member. Import replaces
// a member's sub-records wholesale rather than merging.
func (s *Store) ClearSubRecords(ctx context.Context, memberID primitive.ObjectID) error {
	filter := bson.M{"member_id": memberID}
	for _, col := range []*mongo.Collection{s.appointments, s.activities, s.publications, s.courses} {
		if _, err := col.DeleteMany(ctx, filter); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a member and cascades to its four sub-record
// collections. The member owns its sub-records; none survive it.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrMemberNotFound
	}
	filter := bson.M{"member_id": id}
	for _, col := range []*mongo.Collection{s.appointments, s.activities, s.publications, s.courses} {
		if _, err := col.DeleteMany(ctx, filter); err != nil {
			return err
		}
	}
	return nil
}

// ListAppointments returns every appointment across all members, for
// the snapshot loader to group by member_id.
func (s *Store) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	cur, err := s.appointments.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Appointment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActivities returns every activity across all members.
func (s *Store) ListActivities(ctx context.Context) ([]models.Activity, error) {
	cur, err := s.activities.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Activity
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPublications returns every publication across all members.
func (s *Store) ListPublications(ctx context.Context) ([]models.Publication, error) {
	cur, err := s.publications.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Publication
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCourses returns every course across all members.
func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	cur, err := s.courses.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Course
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
