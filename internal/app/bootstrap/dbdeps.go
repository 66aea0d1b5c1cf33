// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	snapshotsvc "github.com/dalemusser/facultyhub/internal/app/store/snapshot"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Snapshots holds the in-memory roster snapshot service. Created in
	// ConnectDB, warmed in Startup, shared by every feature handler.
	Snapshots *snapshotsvc.Service
}
