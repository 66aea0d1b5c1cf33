// internal/app/store/terms/termstore.go
package termstore

import (
	"context"

	"github.com/dalemusser/facultyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the terms collection. Term ids are
// human-chosen strings, so writes are upserts keyed on _id.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("terms")}
}

// Upsert creates or replaces the term with the given id.
func (s *Store) Upsert(ctx context.Context, t models.Term) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": t.ID}, t, opts)
	return err
}

// List returns all terms in declaration (insertion) order. Ordering by
// rank is the roster engine's job, not the store's.
func (s *Store) List(ctx context.Context) ([]models.Term, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var terms []models.Term
	if err := cur.All(ctx, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// Get returns the term with the given id.
func (s *Store) Get(ctx context.Context, id string) (models.Term, error) {
	var t models.Term
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	return t, err
}
