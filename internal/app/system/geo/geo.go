// Package geo validates coordinates before they are persisted.
//
// The clients push raw GPS fixes every few seconds; a fix outside the valid
// lat/lng ranges is a client bug, and storing it would poison every poller's
// map view, so it is rejected at the boundary.
package geo

import "github.com/dalemusser/ridehub/internal/app/system/apperr"

// ValidateLatLng returns a Validation error when lat or lng is outside
// the -90..90 / -180..180 ranges.
func ValidateLatLng(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return apperr.Validation("lat must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return apperr.Validation("lng must be between -180 and 180")
	}
	return nil
}
