package geocode

import (
	"context"
	"fmt"

	"route-weather-service/internal/domain"
	"route-weather-service/internal/ports"
)

// MockGeocoder serves geocode lookups from a fixed address table.
type MockGeocoder struct {
	m map[string]domain.Coordinates
}

func NewMockGeocoder(table map[string]domain.Coordinates) *MockGeocoder {
	return &MockGeocoder{m: table}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	c, ok := g.m[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ports.ErrAddressNotFound)
	}
	return c, nil
}
