package places

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkordes/wanderlist/backend/internal/domain"
)

// Geocoder resolves free-text queries against a Nominatim-compatible
// /search endpoint. It satisfies Client.
type Geocoder struct {
	baseURL string
	http    *http.Client
	cache   Cache
	log     *slog.Logger
}

// NewGeocoder constructs a Geocoder. An empty baseURL disables lookups:
// every search returns an empty slice, and one warning is logged at
// construction so operators notice.
func NewGeocoder(baseURL string, cache Cache, log *slog.Logger) *Geocoder {
	if baseURL == "" {
		log.Warn("geocoder URL not configured; city and place search disabled")
	}
	return &Geocoder{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		log:     log,
	}
}

// SearchCities returns up to five cities matching query.
func (g *Geocoder) SearchCities(ctx context.Context, query string) []domain.Location {
	if query == "" {
		return []domain.Location{}
	}
	return g.search(ctx, "cities:"+query, query)
}

// SearchPlaces returns up to five places matching query near the named city.
func (g *Geocoder) SearchPlaces(ctx context.Context, query, city string) []domain.Location {
	if query == "" {
		return []domain.Location{}
	}
	q := query
	if city != "" {
		q = query + ", " + city
	}
	return g.search(ctx, "places:"+city+":"+query, q)
}

// geocodeResult is the subset of the Nominatim response shape we consume.
// Coordinates arrive as strings.
type geocodeResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// search checks the cache, then queries the geocoder. All failures are
// logged at warn level and reported to the caller as an empty slice.
func (g *Geocoder) search(ctx context.Context, cacheKey, query string) []domain.Location {
	if g.baseURL == "" {
		return []domain.Location{}
	}

	if cached, ok := g.cache.Get(ctx, cacheKey); ok {
		var results []domain.Location
		if err := json.Unmarshal(cached, &results); err == nil {
			return results
		}
		// A corrupt entry falls through to a fresh fetch that overwrites it.
	}

	u, err := url.Parse(g.baseURL + "/search")
	if err != nil {
		g.log.Warn("geocoder URL invalid", "error", err)
		return []domain.Location{}
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(maxResults))
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		g.log.Warn("geocoder request build failed", "error", err)
		return []domain.Location{}
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn("geocoder request failed", "query", query, "error", err)
		return []domain.Location{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Warn("geocoder returned non-OK status", "query", query, "status", resp.StatusCode)
		return []domain.Location{}
	}

	var raw []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		g.log.Warn("geocoder response decode failed", "query", query, "error", err)
		return []domain.Location{}
	}

	results := make([]domain.Location, 0, maxResults)
	for _, r := range raw {
		if len(results) == maxResults {
			break
		}
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lng, errLng := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLng != nil {
			continue
		}
		results = append(results, domain.Location{Name: r.DisplayName, Lat: lat, Lng: lng})
	}

	if encoded, err := json.Marshal(results); err == nil {
		g.cache.Set(ctx, cacheKey, encoded)
	}
	return results
}

// compile-time check: Geocoder must satisfy Client.
var _ Client = (*Geocoder)(nil)
