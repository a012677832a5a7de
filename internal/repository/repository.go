package repository

import (
	"context"

	"fitbuddy/internal/model"
)

// FoodRepository defines the interface for reading the stored food catalogue.
type FoodRepository interface {
	// ListFoods retrieves every food record in catalogue order.
	ListFoods(ctx context.Context) ([]model.FoodRecord, error)
}
