package mapbox

import (
	"errors"
	"fmt"
)

// ErrMissingAccessToken is returned before any network call when the client
// has no access token configured. Fixing it is an operator action, not a
// retry.
var ErrMissingAccessToken = errors.New("mapbox: access token is not configured")

// TransportError is a network failure or a non-2xx Directions response.
// The caller may retry or fall back.
type TransportError struct {
	StatusCode int
	Status     string
	Err        error // non-nil for failures below HTTP (DNS, refused, ...)
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mapbox: request failed: %v", e.Err)
	}
	return fmt.Sprintf("mapbox: directions request returned %s", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError is a Directions response body that could not be decoded.
// Not retryable for that request.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mapbox: failed to decode directions response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NoRouteError means the service understood the request but returned no
// drawable route (missing routes array or a geometry under two points).
type NoRouteError struct {
	Code    string
	Message string
}

func (e *NoRouteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("mapbox: %s: %s", e.Code, e.Message)
	}
	return "mapbox: " + e.Message
}
