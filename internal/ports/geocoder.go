package ports

import (
	"context"
	"errors"

	"route-weather-service/internal/domain"
)

// ErrAddressNotFound reports that the geocoder returned no match for an
// address. Callers distinguish it from transport failures to produce a
// user-facing message.
var ErrAddressNotFound = errors.New("address not found")

// Contract for resolving a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// GeocodeCache is an optional persistent address -> coordinates cache
// consulted by geocoder adapters before issuing network calls.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
