// dbtool manages the LMS database from the command line: creating the
// schema, dropping it, and loading the development seed data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	appMigrations "github.com/openlms/backend/internal/app/migrations"
	"github.com/openlms/backend/internal/bootstrap"
	"github.com/openlms/backend/internal/db"
	"github.com/openlms/backend/internal/pkg/logger"
	"github.com/openlms/backend/internal/seed"
)

func main() {
	app := &cli.App{
		Name:  "dbtool",
		Usage: "Manage the LMS database schema and seed data",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create all tables by applying pending migrations",
				Action: func(c *cli.Context) error {
					return withDatabase(c.Context, func(ctx context.Context, database *db.PostgresDB, migrationsDir string) error {
						migrator := appMigrations.NewMigrator(database.Pool)
						if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
							return fmt.Errorf("migrations failed: %w", err)
						}
						fmt.Println("Tables created.")
						return nil
					})
				},
			},
			{
				Name:  "drop",
				Usage: "Drop all tables, leaving an empty database",
				Action: func(c *cli.Context) error {
					return withDatabase(c.Context, func(ctx context.Context, database *db.PostgresDB, _ string) error {
						if err := dropTables(ctx, database); err != nil {
							return err
						}
						fmt.Println("Tables dropped.")
						return nil
					})
				},
			},
			{
				Name:  "seed",
				Usage: "Populate the tables with the initial data set",
				Action: func(c *cli.Context) error {
					return withDatabase(c.Context, func(ctx context.Context, database *db.PostgresDB, _ string) error {
						if err := seed.Run(ctx, database.Pool); err != nil {
							return fmt.Errorf("seeding failed: %w", err)
						}
						fmt.Println("Tables seeded.")
						return nil
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("dbtool command failed")
		os.Exit(1)
	}
}

// withDatabase loads configuration, opens the pool and hands it to fn,
// closing the pool afterwards.
func withDatabase(ctx context.Context, fn func(context.Context, *db.PostgresDB, string) error) error {
	cfg, _, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	return fn(ctx, database, cfg.Database.MigrationsDir)
}

// dropTables removes the application tables and the migration bookkeeping
// table. Dependent tables go first so no CASCADE is needed.
func dropTables(ctx context.Context, database *db.PostgresDB) error {
	tables := []string{"enrolments", "courses", "teachers", "students", "schema_migrations"}
	for _, table := range tables {
		if _, err := database.Pool.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
