// Package location builds the shareable form of a position.
// This is part of the Functional Core - no I/O, only pure functions.
package location

import (
	"fmt"
	"strconv"
)

// Position is a latitude/longitude pair in decimal degrees.
type Position struct {
	Latitude  float64
	Longitude float64
}

// Payload is what gets handed to a share mechanism.
type Payload struct {
	Title string
	Text  string
	URL   string
}

const shareTitle = "My Current Location"

// MapLink returns a map URL pointing at the position.
func MapLink(p Position) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s", formatCoord(p.Latitude), formatCoord(p.Longitude))
}

// NewPayload builds the help message for a position.
func NewPayload(p Position) Payload {
	link := MapLink(p)
	return Payload{
		Title: shareTitle,
		Text:  fmt.Sprintf("I need help! This is my current location: %s", link),
		URL:   link,
	}
}

// Validate rejects coordinates outside the valid ranges.
func (p Position) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", p.Longitude)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
