// internal/app/features/members/handler.go
package members

import (
	"context"

	memberstore "github.com/dalemusser/facultyhub/internal/app/store/members"
	"github.com/dalemusser/facultyhub/internal/domain/roster"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Snapshots supplies the current snapshot (appointment writes validate
// term references against its index) and triggers refreshes after
// writes.
type Snapshots interface {
	Current() *roster.Snapshot
	Reload(ctx context.Context) error
}

// Handler is the feature-level handler for member administration:
// creating members, appending their sub-records, and deleting a member
// with its sub-records.
type Handler struct {
	Members   *memberstore.Store
	Snapshots Snapshots
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, snapshots Snapshots, logger *zap.Logger) *Handler {
	return &Handler{
		Members:   memberstore.New(db),
		Snapshots: snapshots,
		Log:       logger,
	}
}
