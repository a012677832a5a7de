package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fitbuddy/internal/catalog"
	"fitbuddy/internal/config"
	"fitbuddy/internal/database"
	"fitbuddy/internal/repository"

	"github.com/rs/zerolog"
)

// Creates the foods table for the postgres or sqlite catalogue source and fills
// it with a catalogue. CATALOG_SOURCE selects the database (default postgres
// here); an optional argument names a catalogue file to seed from instead of
// the built-in one.
//
//	CATALOG_SOURCE=sqlite go run ./scripts/seed_db [foods.json[.gz]]
func main() {
	if os.Getenv("CATALOG_SOURCE") == "" {
		os.Setenv("CATALOG_SOURCE", config.SourcePostgres)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, err := sourceCatalog(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load catalogue: %v\n", err)
		os.Exit(1)
	}

	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		err = seedPostgres(ctx, cfg, c, logger)
	case config.SourceSQLite:
		err = seedSQLite(ctx, cfg, c, logger)
	default:
		err = fmt.Errorf("CATALOG_SOURCE must be postgres or sqlite, got %q", cfg.Catalog.Source)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seeding failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d foods into %s\n", c.Len(), cfg.Catalog.Source)
}

func sourceCatalog(ctx context.Context, logger zerolog.Logger) (*catalog.Catalog, error) {
	if len(os.Args) > 1 {
		return catalog.NewFileLoader(logger).Load(ctx, os.Args[1])
	}
	return catalog.Builtin()
}

func seedPostgres(ctx context.Context, cfg *config.Config, c *catalog.Catalog, logger zerolog.Logger) error {
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		return fmt.Errorf("query current database: %w", err)
	}
	fmt.Printf("Connected to database: %s\n", dbName)

	if err := repository.EnsurePostgresSchema(ctx, pool); err != nil {
		return err
	}
	return repository.SeedFoods(ctx, pool, c.Foods())
}

func seedSQLite(ctx context.Context, cfg *config.Config, c *catalog.Catalog, logger zerolog.Logger) error {
	db, err := database.OpenSQLite(ctx, cfg.SQLite.Path, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repository.EnsureSQLiteSchema(ctx, db); err != nil {
		return err
	}
	return repository.SeedSQLiteFoods(ctx, db, c.Foods())
}
