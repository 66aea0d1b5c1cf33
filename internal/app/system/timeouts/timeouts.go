// internal/app/system/timeouts/timeouts.go

// Package timeouts provides the timeout values handlers use with
// context.WithTimeout for store operations. Centralized so they stay
// consistent across features.
package timeouts

import "time"

const (
	// Ping is for health checks and connectivity verification.
	Ping = 2 * time.Second
	// Short is for single-document reads and writes.
	Short = 5 * time.Second
	// Medium is for full-collection reads such as a snapshot reload.
	Medium = 15 * time.Second
	// Batch is for bulk import.
	Batch = 60 * time.Second
)
