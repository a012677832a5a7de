package service

import (
	"context"

	"fitbuddy/internal/catalog"
	"fitbuddy/internal/model"

	"github.com/rs/zerolog"
)

// foodService implements FoodService over an immutable catalogue.
type foodService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewFoodService creates a new food service.
func NewFoodService(c *catalog.Catalog, logger zerolog.Logger) FoodService {
	return &foodService{
		catalog: c,
		logger:  logger.With().Str("service", "food").Logger(),
	}
}

// List returns the foods matching the query, in catalogue order.
func (s *foodService) List(ctx context.Context, query model.FoodQuery) (*model.FoodListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := s.catalog.Filter(query)

	s.logger.Debug().
		Str("category", query.Category).
		Str("search", query.Search).
		Int("total", result.Total).
		Msg("filtered foods")

	return &result, nil
}

// GetByID retrieves a single food by ID.
func (s *foodService) GetByID(ctx context.Context, id int) (*model.FoodRecord, error) {
	if id <= 0 {
		s.logger.Warn().Int("food_id", id).Msg("food ID is not positive")
		return nil, model.ErrInvalidFoodID
	}

	food, ok := s.catalog.FindByID(id)
	if !ok {
		s.logger.Debug().Int("food_id", id).Msg("food not found")
		return nil, model.ErrFoodNotFound
	}

	return &food, nil
}

// Categories returns the distinct categories in catalogue order.
func (s *foodService) Categories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Categories(), nil
}
