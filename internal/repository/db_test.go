package repository

import (
	"context"
	"testing"

	"fitbuddy/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsurePostgresSchema_Idempotent(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	// setupTestDB already created the table once.
	assert.NoError(t, EnsurePostgresSchema(context.Background(), pool))
}

func TestSeedFoods_ReplacesContents(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewFoodRepository(pool, zerolog.Nop())

	require.NoError(t, SeedFoods(ctx, pool, testFoods()))
	require.NoError(t, SeedFoods(ctx, pool, testFoods()[:1]))

	foods, err := repo.ListFoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, testFoods()[:1], foods)
}

func TestSeedFoods_RollsBackOnDuplicateID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewFoodRepository(pool, zerolog.Nop())
	require.NoError(t, SeedFoods(ctx, pool, testFoods()))

	dup := []model.FoodRecord{
		{ID: 1, Name: "A", Category: "X"},
		{ID: 1, Name: "B", Category: "X"},
	}
	assert.Error(t, SeedFoods(ctx, pool, dup))

	foods, err := repo.ListFoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, testFoods(), foods)
}

func TestSeedSQLiteFoods(t *testing.T) {
	ctx := context.Background()
	db := openTestSQLite(t)
	repo := NewSQLiteFoodRepository(db, zerolog.Nop())

	require.NoError(t, SeedSQLiteFoods(ctx, db, testFoods()))

	foods, err := repo.ListFoods(ctx)
	require.NoError(t, err)
	assert.Equal(t, testFoods(), foods)

	t.Run("Failed seed keeps previous rows", func(t *testing.T) {
		bad := []model.FoodRecord{{ID: 3, Name: "Bad", Calories: -1, Category: "X"}}
		assert.Error(t, SeedSQLiteFoods(ctx, db, bad))

		foods, err := repo.ListFoods(ctx)
		require.NoError(t, err)
		assert.Equal(t, testFoods(), foods)
	})
}
