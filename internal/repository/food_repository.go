package repository

import (
	"context"
	"fmt"

	"fitbuddy/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// listFoodsQuery orders by sort_order so rows come back in insertion order.
const listFoodsQuery = `
	SELECT id, name, calories, protein, carbs, fat, category
	FROM foods
	ORDER BY sort_order, id
`

// foodRepository implements the FoodRepository interface using PostgreSQL.
type foodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodRepository creates a new PostgreSQL-backed food repository.
func NewFoodRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "food").Str("driver", "postgres").Logger(),
	}
}

// ListFoods retrieves every food record in catalogue order.
func (r *foodRepository) ListFoods(ctx context.Context) ([]model.FoodRecord, error) {
	rows, err := r.pool.Query(ctx, listFoodsQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query foods")
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	foods := make([]model.FoodRecord, 0)
	for rows.Next() {
		var f model.FoodRecord
		err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Category)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food row")
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food rows")
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}

	r.logger.Debug().Int("count", len(foods)).Msg("listed foods")

	return foods, nil
}
