package vehicle

// Provider identifies the upstream feed a vehicle came from.
type Provider string

const (
	ProviderShareTaxi Provider = "SHARE TAXI"
	ProviderTaxiNow   Provider = "TAXI NOW"
)

// State is the operational state of a vehicle.
type State string

const (
	StateActive   State = "ACTIVE"
	StateInactive State = "INACTIVE"
)

// Condition is the reported condition of a vehicle.
type Condition string

const (
	ConditionGood      Condition = "GOOD"
	ConditionBad       Condition = "BAD"
	ConditionExcellent Condition = "EXCELLENT"
)

// EngineType is the engine type of a car-share vehicle.
type EngineType string

const (
	EnginePetrol   EngineType = "PETROL"
	EngineElectric EngineType = "ELECTRIC"
	EngineDiesel   EngineType = "DIESEL"
)

// LatLng is a provider-agnostic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Coordinate is the TAXI NOW raw coordinate object. Note the axis order
// differs from the SHARE TAXI coordinate triple.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ShareRecord is a raw SHARE TAXI feed record as received from upstream.
type ShareRecord struct {
	ID           int64      `json:"id"`
	State        State      `json:"state"`
	LicencePlate string     `json:"licencePlate"`
	Condition    Condition  `json:"condition"`
	Address      string     `json:"address"`
	Coordinates  []float64  `json:"coordinates"` // [lng, lat, alt]
	EngineType   EngineType `json:"engineType"`
	Fuel         *float64   `json:"fuel"`
}

// PoiRecord is a raw TAXI NOW feed record as received from upstream.
type PoiRecord struct {
	ID           int64       `json:"id"`
	State        State       `json:"state"`
	LicencePlate string      `json:"licencePlate"`
	Condition    Condition   `json:"condition"`
	Coordinate   *Coordinate `json:"coordinate"`
}

// ShareDetails holds the variant fields only SHARE TAXI vehicles carry.
type ShareDetails struct {
	Address     string     `json:"address"`
	Coordinates [3]float64 `json:"coordinates"`
	EngineType  EngineType `json:"engineType"`
	Fuel        *float64   `json:"fuel,omitempty"`
}

// PoiDetails holds the variant fields only TAXI NOW vehicles carry.
type PoiDetails struct {
	Coordinate Coordinate `json:"coordinate"`
}

// Key is the composite identity of a vehicle in the merged fleet. Upstream
// ids are only unique within one provider, so identity always includes the
// provider tag.
type Key struct {
	Provider Provider `json:"provider"`
	ID       int64    `json:"id"`
}

// Vehicle is the normalized, tagged-union fleet model. Exactly one of Share
// and Poi is set, matching Provider. The Display* and NormalizedCoordinates
// fields are computed once at construction and are the only coordinate and
// address fields consumers read.
type Vehicle struct {
	ID           int64     `json:"id"`
	Provider     Provider  `json:"provider"`
	State        State     `json:"state"`
	LicencePlate string    `json:"licencePlate"`
	Condition    Condition `json:"condition"`

	NormalizedCoordinates LatLng   `json:"normalizedCoordinates"`
	DisplayCoordinates    string   `json:"displayCoordinates"`
	DisplayAddress        string   `json:"displayAddress"`
	DisplayFuel           *float64 `json:"displayFuel,omitempty"`

	Share *ShareDetails `json:"share,omitempty"`
	Poi   *PoiDetails   `json:"poi,omitempty"`
}

// Key returns the composite identity used for selection matching.
func (v Vehicle) Key() Key {
	return Key{Provider: v.Provider, ID: v.ID}
}
