package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fitbuddy/internal/model"

	"github.com/rs/zerolog"
)

// sqliteFoodRepository implements the FoodRepository interface using SQLite.
type sqliteFoodRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteFoodRepository creates a new SQLite-backed food repository.
func NewSQLiteFoodRepository(db *sql.DB, logger zerolog.Logger) FoodRepository {
	return &sqliteFoodRepository{
		db:     db,
		logger: logger.With().Str("repository", "food").Str("driver", "sqlite").Logger(),
	}
}

// ListFoods retrieves every food record in catalogue order.
func (r *sqliteFoodRepository) ListFoods(ctx context.Context) ([]model.FoodRecord, error) {
	rows, err := r.db.QueryContext(ctx, listFoodsQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query foods")
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	foods := make([]model.FoodRecord, 0)
	for rows.Next() {
		var f model.FoodRecord
		if err := rows.Scan(&f.ID, &f.Name, &f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Category); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food row")
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food rows")
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}

	return foods, nil
}
