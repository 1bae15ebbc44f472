package repository

import (
	"context"
	"time"
)

// HealthRepository probes the database connection.
type HealthRepository interface {
	// Now returns the database server's current time.
	Now(ctx context.Context) (time.Time, error)
}
