// internal/app/features/transfer/handler.go
package transfer

import (
	"context"
	"time"

	departmentstore "github.com/dalemusser/facultyhub/internal/app/store/departments"
	memberstore "github.com/dalemusser/facultyhub/internal/app/store/members"
	termstore "github.com/dalemusser/facultyhub/internal/app/store/terms"
	"github.com/dalemusser/facultyhub/internal/domain/models"
	"github.com/dalemusser/facultyhub/internal/domain/roster"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Snapshots supplies the current snapshot for export and triggers a
// refresh after import.
type Snapshots interface {
	Current() *roster.Snapshot
	Reload(ctx context.Context) error
}

// Handler serves whole-dataset export and import. The dump format is a
// single JSON document carrying terms, departments, and members with
// their sub-records inlined.
type Handler struct {
	Terms       *termstore.Store
	Departments *departmentstore.Store
	Members     *memberstore.Store
	Snapshots   Snapshots
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, snapshots Snapshots, logger *zap.Logger) *Handler {
	return &Handler{
		Terms:       termstore.New(db),
		Departments: departmentstore.New(db),
		Members:     memberstore.New(db),
		Snapshots:   snapshots,
		Log:         logger,
	}
}

// Dump is the export/import document. Importing a dump produced by
// export reproduces the same roster, timestamps included.
type Dump struct {
	ExportedAt  time.Time           `json:"exported_at"`
	Terms       []models.Term       `json:"terms"`
	Departments []models.Department `json:"departments"`
	Members     []models.Member     `json:"members"`
}
