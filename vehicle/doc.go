// Package vehicle defines the normalized fleet vehicle model.
//
// Vehicles come from two upstream providers with different raw shapes:
//
//   - SHARE TAXI: free-floating car-share records with an address, a
//     [lng, lat, alt] coordinate triple, an engine type and a fuel level.
//   - TAXI NOW: point-of-interest records with a {latitude, longitude}
//     coordinate object and none of the extra car-share fields.
//
// Both shapes are converted into one tagged Vehicle value at the single
// discrimination point (FromShareRecord / FromPoiRecord). The constructors
// also compute the display-ready fields (normalized coordinates, coordinate
// string, address placeholder, optional fuel), so consumers never touch the
// raw per-provider fields again. Axis-order differences between the two
// providers are handled here and nowhere else.
package vehicle
