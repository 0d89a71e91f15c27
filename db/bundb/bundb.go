// Package bundb opens the shared Postgres connection and hands out the
// per-module repository implementations.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	lineupdb "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/repositories"
	scoringdb "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/repositories"
	"github.com/sandlot-league/scorebook/config"
)

// DBService bundles the bun connection with the module repositories built
// on it.
type DBService struct {
	ScoringDB *scoringdb.ScoringDBImpl
	LineupDB  *lineupdb.LineupDBImpl
	db        *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// NewBunDBService connects to Postgres and wires the repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel(
		(*scoringdb.BattingEvent)(nil),
		(*scoringdb.Runner)(nil),
		(*scoringdb.HalfInningScore)(nil),
		(*lineupdb.GamePlayer)(nil),
		(*lineupdb.LineupTemplate)(nil),
	)

	return &DBService{
		ScoringDB: &scoringdb.ScoringDBImpl{DB: db},
		LineupDB:  &lineupdb.LineupDBImpl{DB: db},
		db:        db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return sqldb, nil
}
