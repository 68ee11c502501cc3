package resolve

import (
	"context"
	"fmt"

	"github.com/dmoura/edubot/internal/provider/geocode"
)

// PlaceProvider is the contract the geocoding resolver expects from its
// knowledge provider.
type PlaceProvider interface {
	Search(ctx context.Context, query string) ([]geocode.Place, error)
}

// Geocoder resolves free-text place queries to the first candidate. Single
// attempt, no fallback.
type Geocoder struct {
	provider PlaceProvider
}

// NewGeocoder wires the resolver to its provider.
func NewGeocoder(provider PlaceProvider) *Geocoder {
	return &Geocoder{provider: provider}
}

// Resolve queries the provider and formats the first candidate.
func (g *Geocoder) Resolve(ctx context.Context, place string) (string, error) {
	places, err := g.provider.Search(ctx, place)
	if err != nil || len(places) == 0 {
		return "", ErrNotFound
	}

	first := places[0]
	return fmt.Sprintf("🌍 *%s*\n📍 Latitude: %s\n📍 Longitude: %s",
		first.DisplayName, first.Lat, first.Lon), nil
}
