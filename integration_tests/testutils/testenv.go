// Package testutils provides the shared integration test environment: a
// Postgres container with both module schemas migrated.
package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	lineupmigrations "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/repositories/migrations"
	scoringmigrations "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/repositories/migrations"
	"github.com/sandlot-league/scorebook/integration_tests/containers"
)

// TestEnvironment holds everything an integration test needs.
type TestEnvironment struct {
	Ctx         context.Context
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	DSN         string
}

// NewTestEnvironment starts Postgres and migrates both module schemas.
// Tests are skipped when Docker is unavailable or INTEGRATION_TESTS is not
// set.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS to run integration tests")
	}

	ctx := context.Background()
	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if err := migrateAll(ctx, db); err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return &TestEnvironment{
		Ctx:         ctx,
		PgContainer: pgContainer,
		DB:          db,
		DSN:         dsn,
	}
}

func migrateAll(ctx context.Context, db *bun.DB) error {
	for name, migrations := range map[string]*migrate.Migrations{
		"scoring": scoringmigrations.Migrations,
		"lineup":  lineupmigrations.Migrations,
	} {
		migrator := migrate.NewMigrator(db, migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", name, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("run %s migrations: %w", name, err)
		}
	}
	return nil
}
