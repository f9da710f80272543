package vehicle

import (
	"errors"
	"fmt"
)

// Record-level validation errors. The feed adapter skips records that fail
// construction instead of failing the whole batch.
var (
	ErrNoCoordinates  = errors.New("record has no coordinates")
	ErrNoLicencePlate = errors.New("record has no licence plate")
)

// missingAddressPlaceholder is rendered in place of an address for vehicles
// whose provider does not report one.
const missingAddressPlaceholder = "-"

// FromShareRecord converts a raw SHARE TAXI record into a Vehicle. The raw
// coordinate triple is [lng, lat, alt]; only the first two components are
// required, a missing altitude defaults to zero.
func FromShareRecord(r ShareRecord) (Vehicle, error) {
	if r.LicencePlate == "" {
		return Vehicle{}, ErrNoLicencePlate
	}
	if len(r.Coordinates) < 2 {
		return Vehicle{}, ErrNoCoordinates
	}

	var coords [3]float64
	copy(coords[:], r.Coordinates)
	lng, lat := coords[0], coords[1]

	return Vehicle{
		ID:           r.ID,
		Provider:     ProviderShareTaxi,
		State:        r.State,
		LicencePlate: r.LicencePlate,
		Condition:    r.Condition,

		NormalizedCoordinates: LatLng{Lat: lat, Lng: lng},
		DisplayCoordinates:    formatCoordinates(lng, lat),
		DisplayAddress:        r.Address,
		DisplayFuel:           r.Fuel,

		Share: &ShareDetails{
			Address:     r.Address,
			Coordinates: coords,
			EngineType:  r.EngineType,
			Fuel:        r.Fuel,
		},
	}, nil
}

// FromPoiRecord converts a raw TAXI NOW record into a Vehicle. TAXI NOW
// records carry no address and no fuel level, so the display fields fall
// back to the placeholder and nil respectively.
func FromPoiRecord(r PoiRecord) (Vehicle, error) {
	if r.LicencePlate == "" {
		return Vehicle{}, ErrNoLicencePlate
	}
	if r.Coordinate == nil {
		return Vehicle{}, ErrNoCoordinates
	}

	c := *r.Coordinate

	return Vehicle{
		ID:           r.ID,
		Provider:     ProviderTaxiNow,
		State:        r.State,
		LicencePlate: r.LicencePlate,
		Condition:    r.Condition,

		NormalizedCoordinates: LatLng{Lat: c.Latitude, Lng: c.Longitude},
		DisplayCoordinates:    formatCoordinates(c.Longitude, c.Latitude),
		DisplayAddress:        missingAddressPlaceholder,
		DisplayFuel:           nil,

		Poi: &PoiDetails{Coordinate: c},
	}, nil
}

// formatCoordinates renders the "lng, lat" display string shared by both
// variants regardless of their raw axis order.
func formatCoordinates(lng, lat float64) string {
	return fmt.Sprintf("%g, %g", lng, lat)
}
