package valueobjects

import "fmt"

// Location is the reported place of a complaint: a free-form address plus
// optional WGS84 coordinates.
type Location struct {
	addressText string
	lat         *float64
	lon         *float64
}

func NewLocation(addressText string, lat, lon *float64) (Location, error) {
	if (lat == nil) != (lon == nil) {
		return Location{}, fmt.Errorf("latitude and longitude must be set together")
	}
	if lat != nil {
		if *lat < -90 || *lat > 90 {
			return Location{}, fmt.Errorf("latitude out of range: %f", *lat)
		}
		if *lon < -180 || *lon > 180 {
			return Location{}, fmt.Errorf("longitude out of range: %f", *lon)
		}
	}
	return Location{addressText: addressText, lat: lat, lon: lon}, nil
}

func (l Location) AddressText() string {
	return l.addressText
}

func (l Location) Lat() *float64 {
	return l.lat
}

func (l Location) Lon() *float64 {
	return l.lon
}

func (l Location) HasCoordinates() bool {
	return l.lat != nil && l.lon != nil
}
