// Package places implements the city/place lookup collaborator: free-text
// search against a geocoding service, with a process-lifetime result cache.
//
// Lookups never fail upward. Any error — unconfigured endpoint, transport
// failure, malformed response — degrades to an empty result set so the
// surrounding feature stays usable without the service.
package places

import (
	"context"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// maxResults caps every search at five suggestions.
const maxResults = 5

// Client is the lookup interface handlers depend on.
type Client interface {
	// SearchCities returns up to five cities matching query.
	SearchCities(ctx context.Context, query string) []domain.Location

	// SearchPlaces returns up to five places matching query, biased toward
	// the named city when one is given.
	SearchPlaces(ctx context.Context, query, city string) []domain.Location
}
