package repository

import (
	"context"
	"testing"
	"time"

	"fitbuddy/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping container-backed repository test")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, EnsurePostgresSchema(ctx, pool))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

func testFoods() []model.FoodRecord {
	return []model.FoodRecord{
		{ID: 9, Name: "Apple (100g)", Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Category: "Fruits"},
		{ID: 2, Name: "Peanut Butter (100g)", Calories: 588, Protein: 25.1, Carbs: 20, Fat: 50, Category: "Protein"},
		{ID: 15, Name: "Greek Yogurt (100g)", Calories: 59, Protein: 10.3, Carbs: 3.6, Fat: 0.4, Category: "Dairy"},
	}
}

func TestFoodRepository_ListFoods(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFoodRepository(pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("Empty table", func(t *testing.T) {
		foods, err := repo.ListFoods(ctx)

		require.NoError(t, err)
		assert.NotNil(t, foods)
		assert.Empty(t, foods)
	})

	t.Run("Rows come back in sort order", func(t *testing.T) {
		require.NoError(t, SeedFoods(ctx, pool, testFoods()))

		foods, err := repo.ListFoods(ctx)

		require.NoError(t, err)
		assert.Equal(t, testFoods(), foods)
	})
}

func TestFoodRepository_ListFoods_CancelledContext(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewFoodRepository(pool, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	foods, err := repo.ListFoods(ctx)

	assert.Error(t, err)
	assert.Nil(t, foods)
}
