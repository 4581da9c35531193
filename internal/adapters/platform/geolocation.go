// Package platform contains adapters for device capabilities: position,
// sharing, clipboard, audio and time.
package platform

import (
	"context"
	"errors"

	"github.com/example/circle/internal/ports/secondary"
)

// ErrGeolocationUnsupported is returned when no position source is configured.
var ErrGeolocationUnsupported = errors.New("geolocation is not supported on this device")

// StaticGeolocator reports a configured position.
type StaticGeolocator struct {
	pos *secondary.Position
}

// NewStaticGeolocator creates a geolocator for the given coordinates.
// Either coordinate being nil means no position is available.
func NewStaticGeolocator(latitude, longitude *float64) *StaticGeolocator {
	if latitude == nil || longitude == nil {
		return &StaticGeolocator{}
	}
	return &StaticGeolocator{pos: &secondary.Position{Latitude: *latitude, Longitude: *longitude}}
}

// CurrentPosition returns the configured position.
func (g *StaticGeolocator) CurrentPosition(ctx context.Context) (secondary.Position, error) {
	if err := ctx.Err(); err != nil {
		return secondary.Position{}, err
	}
	if g.pos == nil {
		return secondary.Position{}, ErrGeolocationUnsupported
	}
	return *g.pos, nil
}

// Available reports whether a position is configured.
func (g *StaticGeolocator) Available() bool {
	return g.pos != nil
}

// Ensure StaticGeolocator implements the interface
var _ secondary.Geolocator = (*StaticGeolocator)(nil)
