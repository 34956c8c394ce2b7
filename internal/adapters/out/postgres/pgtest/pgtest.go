// Package pgtest starts a throwaway PostgreSQL container with the service schema applied.
// It backs the integration suites of the persistence adapter and the query handlers.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and applies every migration.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	database := &Database{Container: container}

	database.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, database.fail(ctx, err)
	}

	if err = postgres_adapter.Migrate(ctx, database.DSN); err != nil {
		return nil, database.fail(ctx, err)
	}

	database.DB, err = gorm.Open(gorm_postgres.Open(database.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, database.fail(ctx, err)
	}

	return database, nil
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE orders, workers, offers").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

func (d *Database) fail(ctx context.Context, cause error) error {
	_ = d.Container.Terminate(ctx)
	return cause
}
