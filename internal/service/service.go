package service

import (
	"context"

	"fitbuddy/internal/model"
)

// FoodService defines read operations over the food catalogue.
type FoodService interface {
	// List returns the foods matching the query, in catalogue order.
	List(ctx context.Context, query model.FoodQuery) (*model.FoodListResponse, error)

	// GetByID retrieves a single food by ID.
	GetByID(ctx context.Context, id int) (*model.FoodRecord, error)

	// Categories returns the distinct categories in catalogue order.
	Categories(ctx context.Context) ([]string, error)
}
