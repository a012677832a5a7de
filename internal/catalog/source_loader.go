package catalog

import (
	"context"
	"fmt"

	"fitbuddy/internal/model"

	"github.com/rs/zerolog"
)

// FoodSource is a store that can list every food record in catalogue order.
type FoodSource interface {
	ListFoods(ctx context.Context) ([]model.FoodRecord, error)
}

// sourceLoader implements Loader over a FoodSource such as a database table.
type sourceLoader struct {
	source FoodSource
	name   string
	logger zerolog.Logger
}

// NewSourceLoader creates a loader that snapshots source once per Load call.
// name identifies the source in logs.
func NewSourceLoader(source FoodSource, name string, logger zerolog.Logger) Loader {
	return &sourceLoader{
		source: source,
		name:   name,
		logger: logger.With().Str("component", "source-catalog-loader").Str("source", name).Logger(),
	}
}

// Load reads every record from the source and builds a catalogue from them.
func (l *sourceLoader) Load(ctx context.Context, _ string) (*Catalog, error) {
	foods, err := l.source.ListFoods(ctx)
	if err != nil {
		l.logger.Error().Err(err).Msg("failed to list foods")
		return nil, fmt.Errorf("failed to list foods from %s: %w", l.name, err)
	}

	c, err := New(foods)
	if err != nil {
		l.logger.Error().Err(err).Msg("catalogue from source is invalid")
		return nil, fmt.Errorf("catalogue from %s: %w", l.name, err)
	}

	l.logger.Info().Int("foods_loaded", c.Len()).Msg("catalogue loaded from source")

	return c, nil
}
