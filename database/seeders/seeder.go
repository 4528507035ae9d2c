// Package seeders populates a database with initial data.
package seeders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/logger"
)

// SeederFunc inserts one logical group of records. Seeders must be
// idempotent: running them against an already seeded database is a no-op.
type SeederFunc func(ctx context.Context, db *mongo.Database) error

type entry struct {
	name string
	fn   SeederFunc
}

var registry []entry

// Register adds a seeder to the run list. Call from an init function.
func Register(name string, fn SeederFunc) {
	registry = append(registry, entry{name: name, fn: fn})
}

// Run executes every registered seeder in registration order, stopping at
// the first failure.
func Run(ctx context.Context, db *mongo.Database) error {
	for _, e := range registry {
		if err := e.fn(ctx, db); err != nil {
			return fmt.Errorf("seeder %s: %w", e.name, err)
		}
		logger.Info("seeder finished", "name", e.name)
	}
	return nil
}
