package routing

import (
	"context"
	"log/slog"
	"sync"

	"github.com/paulmach/orb/geojson"

	"venue-map/internal/config"
	"venue-map/internal/providers/mapbox"
	"venue-map/internal/types"
)

// Route sources reported to the widget.
const (
	SourceMapbox   = "mapbox"
	SourceFallback = "fallback"
)

// DirectionsProvider fetches a route between two coordinates.
type DirectionsProvider interface {
	FetchRoute(ctx context.Context, from, to types.Coords, profile mapbox.Profile) (*mapbox.RouteResult, error)
}

// DisplayedRoute is what the widget renders: a single-feature line
// FeatureCollection plus its metadata and the source it came from.
type DisplayedRoute struct {
	Collection      *geojson.FeatureCollection `json:"route"`
	DistanceMeters  float64                    `json:"distance_meters"`
	DurationSeconds float64                    `json:"duration_seconds"`
	Source          string                     `json:"source"`
}

// Service plans routes and owns the single "current displayed route" slot.
type Service interface {
	// PlanRoute fetches a route and applies the outcome to the current-route
	// slot, unless a newer request was issued while this one was in flight.
	// The returned route is the slot's value after this call settles; it is
	// never nil and never an error, a failed fetch yields the fallback line.
	PlanRoute(ctx context.Context, from, to types.Coords, profile mapbox.Profile) *DisplayedRoute
	// Current returns the last applied route.
	Current() *DisplayedRoute
}

type routeService struct {
	provider DirectionsProvider
	logger   *slog.Logger

	// mu guards the slot and the generation counter. Each request captures
	// the counter at issuance and compares it at completion, so results
	// apply in issuance order, not completion order.
	mu      sync.Mutex
	gen     uint64
	current *DisplayedRoute
}

// NewRouteService creates a route service backed by the real Directions API.
// The seed pair becomes the initial displayed route (as a fallback line) so
// Current is never empty.
func NewRouteService(cfg *config.Config, seedFrom, seedTo types.Coords, logger *slog.Logger) Service {
	client := mapbox.NewClientWithBaseURL(cfg.Mapbox.AccessToken, cfg.Mapbox.BaseURL, logger)
	return NewRouteServiceWithProvider(client, seedFrom, seedTo, logger)
}

// NewRouteServiceWithProvider creates a route service with a custom provider.
// This is useful for testing with mock providers.
func NewRouteServiceWithProvider(provider DirectionsProvider, seedFrom, seedTo types.Coords, logger *slog.Logger) Service {
	return &routeService{
		provider: provider,
		logger:   logger.With("component", "route-service"),
		current:  fallbackRoute(seedFrom, seedTo),
	}
}

func (s *routeService) PlanRoute(ctx context.Context, from, to types.Coords, profile mapbox.Profile) *DisplayedRoute {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	result, err := s.provider.FetchRoute(ctx, from, to, profile)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		// Superseded while in flight; discard silently.
		s.logger.Debug("discarding stale route result",
			"issued_generation", gen,
			"current_generation", s.gen,
		)
		return s.current
	}

	if err != nil {
		s.logger.Warn("route fetch failed, applying fallback line",
			"from", from.String(),
			"to", to.String(),
			"profile", string(profile),
			"error", err,
		)
		s.current = fallbackRoute(from, to)
		return s.current
	}

	s.current = &DisplayedRoute{
		Collection:      RouteFeatureCollection(result.Line, result.DistanceMeters, result.DurationSeconds),
		DistanceMeters:  result.DistanceMeters,
		DurationSeconds: result.DurationSeconds,
		Source:          SourceMapbox,
	}
	return s.current
}

func (s *routeService) Current() *DisplayedRoute {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
