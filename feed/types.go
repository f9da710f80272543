package feed

import (
	"fmt"

	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

// shareEnvelope is the SHARE TAXI upstream response wrapper.
type shareEnvelope struct {
	Placemarks []vehicle.ShareRecord `json:"placemarks"`
}

// poiEnvelope is the TAXI NOW upstream response wrapper.
type poiEnvelope struct {
	PoiList []vehicle.PoiRecord `json:"poiList"`
}

// FetchError reports a failed upstream feed call. Either provider failing
// aborts the whole merge, so a FetchError is always terminal for the batch.
type FetchError struct {
	Provider vehicle.Provider
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s feed: %v", e.Provider, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
