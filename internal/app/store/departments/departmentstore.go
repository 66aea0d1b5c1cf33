// internal/app/store/departments/departmentstore.go
package departmentstore

import (
	"context"

	"github.com/dalemusser/facultyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the departments collection. Department ids
// are human-chosen strings, so writes are upserts keyed on _id.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("departments")}
}

// Upsert creates or replaces the department with the given id.
func (s *Store) Upsert(ctx context.Context, d models.Department) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, opts)
	return err
}

// List returns all departments.
func (s *Store) List(ctx context.Context) ([]models.Department, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var deps []models.Department
	if err := cur.All(ctx, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

// Get returns the department with the given id.
func (s *Store) Get(ctx context.Context, id string) (models.Department, error) {
	var d models.Department
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	return d, err
}
