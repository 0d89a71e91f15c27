package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	"github.com/sandlot-league/scorebook/app"
	lineupmigrations "github.com/sandlot-league/scorebook/app/modules/lineup/infrastructure/repositories/migrations"
	scoringmigrations "github.com/sandlot-league/scorebook/app/modules/scoring/infrastructure/repositories/migrations"
	"github.com/sandlot-league/scorebook/config"
)

func main() {
	cliApp := &cli.App{
		Name:  "scorebook",
		Usage: "live baseball scoring engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the configuration file",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the scoring engine",
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application := &app.App{}
			if err := application.Initialize(ctx, cfg); err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer func() {
				if err := application.Close(); err != nil {
					log.Printf("shutdown error: %v", err)
				}
			}()

			return application.Run(ctx)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: withMigrators(func(ctx context.Context, name string, migrator *migrate.Migrator) error {
					fmt.Printf("Initializing migrations for module: %s\n", name)
					return migrator.Init(ctx)
				}),
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: withMigrators(func(ctx context.Context, name string, migrator *migrate.Migrator) error {
					group, err := migrator.Migrate(ctx)
					if err != nil {
						return err
					}
					if group.IsZero() {
						fmt.Printf("No new migrations to run for module: %s\n", name)
					} else {
						fmt.Printf("Migrated module: %s to %s\n", name, group)
					}
					return nil
				}),
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: withMigrators(func(ctx context.Context, name string, migrator *migrate.Migrator) error {
					group, err := migrator.Rollback(ctx)
					if err != nil {
						return err
					}
					if group.IsZero() {
						fmt.Printf("No groups to roll back for module: %s\n", name)
					} else {
						fmt.Printf("Rolled back module: %s to %s\n", name, group)
					}
					return nil
				}),
			},
		},
	}
}

func withMigrators(fn func(ctx context.Context, name string, migrator *migrate.Migrator) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.LoadConfig(c.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
		db := bun.NewDB(pgdb, pgdialect.New())
		defer db.Close()

		migrators := map[string]*migrate.Migrator{
			"scoring": migrate.NewMigrator(db, scoringmigrations.Migrations),
			"lineup":  migrate.NewMigrator(db, lineupmigrations.Migrations),
		}
		for name, migrator := range migrators {
			if err := fn(c.Context, name, migrator); err != nil {
				return fmt.Errorf("module %s: %w", name, err)
			}
		}
		return nil
	}
}
