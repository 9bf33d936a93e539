// Package osrm integrates with an OSRM-compatible routing engine over HTTP.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"routehub/config"
	domainerrors "routehub/internal/domain/errors"
	"routehub/internal/domain/service"
	"routehub/internal/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "http://localhost:5000"
	defaultTimeout = 10 * time.Second

	// codeOK is the engine's success marker.
	codeOK = "Ok"
)

// client implements service.RouteMetricsService against an OSRM HTTP API.
// Metric calculation degrades to a local great-circle estimate when the
// engine is unreachable or returns garbage; directions never do.
type client struct {
	baseURL    string
	profile    geo.Profile
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the OSRM routing client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.RouteMetricsService {
	baseURL := defaultBaseURL
	profile := geo.ProfileWalking
	timeout := defaultTimeout

	if cfg != nil && cfg.RoutingEngine != nil {
		if cfg.RoutingEngine.BaseURL != "" {
			baseURL = strings.TrimRight(cfg.RoutingEngine.BaseURL, "/")
		}
		if cfg.RoutingEngine.Profile != "" {
			profile = geo.Profile(cfg.RoutingEngine.Profile)
		}
		if cfg.RoutingEngine.Timeout > 0 {
			timeout = cfg.RoutingEngine.Timeout
		}
	}

	return &client{
		baseURL: baseURL,
		profile: profile,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// routeResponse is the engine's wire format for /route/v1 calls.
type routeResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Routes  []route `json:"routes"`
}

type route struct {
	Distance float64           `json:"distance"` // meters
	Duration float64           `json:"duration"` // seconds
	Geometry *geojson.Geometry `json:"geometry"`
}

// CalculateRouteMetrics resolves distance and time for a path. Any engine
// failure logs and falls back to the local haversine estimate, so the call
// only errors when the geometry itself is invalid.
func (c *client) CalculateRouteMetrics(ctx context.Context, geometry orb.LineString) (*service.RouteMetrics, error) {
	resp, err := c.requestRoute(ctx, geometry)
	if err != nil {
		c.logger.Warn("routing engine metrics call failed, using local estimate",
			slog.String("error", err.Error()),
		)

		return c.localMetrics(geometry)
	}

	first := resp.Routes[0]
	distanceKm := first.Distance / 1000
	estTimeMin := int(math.Round(first.Duration / 60))

	if !isFinitePositive(distanceKm) || first.Duration < 0 {
		c.logger.Warn("routing engine returned degenerate metrics, using local estimate",
			slog.Float64("distanceKm", distanceKm),
			slog.Float64("durationSec", first.Duration),
		)

		return c.localMetrics(geometry)
	}

	return &service.RouteMetrics{
		DistanceKm: distanceKm,
		EstTimeMin: estTimeMin,
	}, nil
}

// DirectionsToStart returns a path from the caller's position to the first
// coordinate of the route. Directions require road network data, so engine
// failures surface as ErrDirectionsUnavailable without any fallback.
func (c *client) DirectionsToStart(ctx context.Context, fromLat, fromLng float64, geometry orb.LineString) (orb.LineString, error) {
	if len(geometry) == 0 {
		return nil, domainerrors.ErrDirectionsUnavailable.WrapMessage("route has no geometry")
	}

	start := geometry[0]
	path := orb.LineString{{fromLng, fromLat}, start}

	resp, err := c.requestRoute(ctx, path)
	if err != nil {
		c.logger.Warn("routing engine directions call failed",
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrDirectionsUnavailable.WrapMessage(err.Error())
	}

	first := resp.Routes[0]
	if first.Geometry == nil {
		return nil, domainerrors.ErrDirectionsUnavailable.WrapMessage("engine returned no geometry")
	}

	line, ok := first.Geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, domainerrors.ErrDirectionsUnavailable.WrapMessage("engine returned non-path geometry")
	}

	return line, nil
}

// requestRoute issues the /route/v1 call and validates the response shape.
func (c *client) requestRoute(ctx context.Context, path orb.LineString) (*routeResponse, error) {
	if len(path) < 2 {
		return nil, errors.New("at least 2 coordinates are required")
	}

	endpoint := fmt.Sprintf("%s/route/v1/%s/%s?%s",
		c.baseURL, c.profile, coordinatePath(path), url.Values{
			"overview":   []string{"full"},
			"geometries": []string{"geojson"},
		}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build routing engine request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "routing engine request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read routing engine response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("routing engine returned status %d", resp.StatusCode)
	}

	var parsed routeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode routing engine response")
	}

	if parsed.Code != codeOK {
		return nil, errors.Errorf("routing engine returned code %q: %s", parsed.Code, parsed.Message)
	}

	if len(parsed.Routes) == 0 {
		return nil, errors.New("routing engine returned no routes")
	}

	return &parsed, nil
}

// localMetrics computes the haversine fallback. It never fails for a
// geometry that is valid per the geo package rules.
func (c *client) localMetrics(geometry orb.LineString) (*service.RouteMetrics, error) {
	distanceKm, err := geo.PathDistanceKm(geometry)
	if err != nil {
		return nil, err
	}

	return &service.RouteMetrics{
		DistanceKm: distanceKm,
		EstTimeMin: geo.EstimateTimeMin(distanceKm, c.profile),
	}, nil
}

// coordinatePath renders the semicolon-joined "lng,lat" path segment.
func coordinatePath(path orb.LineString) string {
	parts := make([]string, 0, len(path))
	for _, point := range path {
		parts = append(parts, fmt.Sprintf("%g,%g", point.Lon(), point.Lat()))
	}

	return strings.Join(parts, ";")
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
