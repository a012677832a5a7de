package integration

import (
	"context"
	"testing"
	"time"

	"fitbuddy/internal/catalog"
	"fitbuddy/internal/config"
	"fitbuddy/internal/database"
	"fitbuddy/internal/model"
	"fitbuddy/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Config    config.DatabaseConfig
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the
// foods table.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := repository.EnsurePostgresSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		Config:    dbConfig,
	}
}

// SeedFoods replaces the foods table contents with foods.
func SeedFoods(t *testing.T, pool *pgxpool.Pool, foods []model.FoodRecord) {
	t.Helper()

	if err := repository.SeedFoods(context.Background(), pool, foods); err != nil {
		t.Fatalf("failed to seed foods: %v", err)
	}
}

// SeedBuiltinFoods seeds the foods table with the built-in catalogue.
func SeedBuiltinFoods(t *testing.T, pool *pgxpool.Pool) []model.FoodRecord {
	t.Helper()

	c, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("failed to load built-in catalogue: %v", err)
	}

	foods := c.Foods()
	SeedFoods(t, pool, foods)
	return foods
}

// CleanupDB removes every row from the foods table.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM foods"); err != nil {
		t.Logf("failed to clean table foods: %v", err)
	}
}

// PostgresConfig returns an application config that loads the catalogue from
// the test database.
func (db *TestDB) PostgresConfig() *config.Config {
	return &config.Config{
		Catalog:  config.CatalogConfig{Source: config.SourcePostgres},
		Database: db.Config,
	}
}
