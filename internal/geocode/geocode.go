// Package geocode turns coordinates into a short human-readable place name.
package geocode

import (
	"context"
	"fmt"
	"strings"

	"fitbuddy/internal/model"

	"github.com/rs/zerolog"
)

// Resolver looks up the address nearest to a coordinate pair.
type Resolver interface {
	ResolveAddress(ctx context.Context, lat, lon float64) (model.PartialAddress, error)
}

// Describe composes "place, state, country" from the parts that are present.
// The place is the first of city, town, village, hamlet and suburb; the state
// falls back to region. If nothing is present it returns DisplayName.
func Describe(addr model.PartialAddress) string {
	parts := make([]string, 0, 3)
	if place := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Hamlet, addr.Suburb); place != "" {
		parts = append(parts, place)
	}
	if state := firstNonEmpty(addr.State, addr.Region); state != "" {
		parts = append(parts, state)
	}
	if addr.Country != "" {
		parts = append(parts, addr.Country)
	}

	if len(parts) == 0 {
		return addr.DisplayName
	}
	return strings.Join(parts, ", ")
}

// Coordinates formats a coordinate pair with five decimal places.
func Coordinates(lat, lon float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lon)
}

// DisplayLocation resolves lat/lon to a place name. Lookup failures are logged
// and never returned; the caller gets the formatted coordinates instead.
func DisplayLocation(ctx context.Context, r Resolver, lat, lon float64, logger zerolog.Logger) string {
	addr, err := r.ResolveAddress(ctx, lat, lon)
	if err != nil {
		logger.Warn().
			Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("reverse geocoding failed, showing coordinates")
		return Coordinates(lat, lon)
	}

	if desc := Describe(addr); desc != "" {
		return desc
	}
	return Coordinates(lat, lon)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
