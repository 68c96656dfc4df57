package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"

	"venue-map/internal/types"
)

// API Docs: https://docs.mapbox.com/api/navigation/directions/
// Sample request:
// https://api.mapbox.com/directions/v5/mapbox/walking/-122.40,37.78;-122.39,37.79?geometries=geojson&overview=full&access_token=...
const defaultBaseURL = "https://api.mapbox.com"

type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	encoding    GeometryEncoding
	logger      *slog.Logger
}

func NewClient(accessToken string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{},
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
		encoding:    EncodingGeoJSON,
		logger:      logger.With("component", "mapbox-client"),
	}
}

// NewClientWithBaseURL points the client at a non-default endpoint, used for
// tests against a local server.
func NewClientWithBaseURL(accessToken, baseURL string, logger *slog.Logger) *Client {
	c := NewClient(accessToken, logger)
	c.baseURL = baseURL
	return c
}

// SetGeometryEncoding switches the requested geometry encoding. Polyline6
// responses are smaller on the wire; GeoJSON is the default.
func (c *Client) SetGeometryEncoding(enc GeometryEncoding) {
	c.encoding = enc
}

// FetchRoute fetches a single route between from and to. It returns exactly
// one of a RouteResult or one of the typed failures (ErrMissingAccessToken,
// *TransportError, *ParseError, *NoRouteError). It never retries; retry and
// fallback policy belong to the caller.
func (c *Client) FetchRoute(ctx context.Context, from, to types.Coords, profile Profile) (*RouteResult, error) {
	if c.accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	if profile == "" {
		profile = ProfileWalking
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/directions/v5/mapbox/%s/%s;%s", profile, from, to)
	q := u.Query()
	q.Set("geometries", string(c.encoding))
	q.Set("overview", "full")
	q.Set("alternatives", "false")
	q.Set("steps", "false")
	q.Set("access_token", c.accessToken)
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching directions",
		"profile", string(profile),
		"from", from.String(),
		"to", to.String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("directions request failed", "error", err)
		return nil, &TransportError{Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("directions API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, &TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var apiResp DirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode directions response", "error", err)
		return nil, &ParseError{Err: err}
	}

	if len(apiResp.Routes) == 0 {
		msg := apiResp.Message
		if msg == "" {
			msg = "no route found between the requested points"
		}
		return nil, &NoRouteError{Code: apiResp.Code, Message: msg}
	}

	// Only the first route is used; alternatives are not requested.
	route := apiResp.Routes[0]

	line := route.Geometry.Line
	if route.Geometry.Encoded != "" {
		line, err = c.decodePolyline(route.Geometry.Encoded)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
	}
	if len(line) < 2 {
		msg := apiResp.Message
		if msg == "" {
			msg = "route geometry has fewer than two points"
		}
		return nil, &NoRouteError{Code: apiResp.Code, Message: msg}
	}

	c.logger.Debug("successfully fetched route",
		"points", len(line),
		"distance_m", route.Distance,
		"duration_s", route.Duration,
	)

	return &RouteResult{
		Line:            line,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
	}, nil
}

// decodePolyline decodes polyline geometry at the precision matching the
// configured encoding. Polyline coordinates arrive lat-first and are flipped
// to GeoJSON lon,lat order.
func (c *Client) decodePolyline(encoded string) (orb.LineString, error) {
	codec := polyline.Codec{Dim: 2, Scale: 1e6}
	if c.encoding != EncodingPolyline6 {
		codec.Scale = 1e5
	}

	coords, _, err := codec.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}

	line := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		line = append(line, orb.Point{c[1], c[0]})
	}
	return line, nil
}
