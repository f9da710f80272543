package fleetmonitor

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

// fleetRow is one table row: the normalized vehicle plus its highlight flag.
type fleetRow struct {
	vehicle.Vehicle
	Selected bool `json:"selected"`
}

// fleetResponse is the paginated table payload.
type fleetResponse struct {
	Vehicles   []fleetRow `json:"vehicles"`
	Count      int        `json:"count"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
	SortOrder  SortOrder  `json:"sortOrder"`
	IsLoading  bool       `json:"isLoading"`
}

// marker is one map marker point.
type marker struct {
	ID       int64            `json:"id"`
	Provider vehicle.Provider `json:"provider"`
	Lat      float64          `json:"lat"`
	Lng      float64          `json:"lng"`
	State    vehicle.State    `json:"state"`
	Selected bool             `json:"selected"`
}

// positionsResponse is the map marker payload for the current page window.
type positionsResponse struct {
	Markers   []marker `json:"markers"`
	Count     int      `json:"count"`
	IsLoading bool     `json:"isLoading"`
}

func buildFleetResponse(snap Snapshot, proj Projection) fleetResponse {
	rows := make([]fleetRow, 0, len(proj.Page))
	for _, v := range proj.Page {
		rows = append(rows, fleetRow{Vehicle: v, Selected: snap.IsSelected(v)})
	}
	return fleetResponse{
		Vehicles:   rows,
		Count:      len(proj.Sorted),
		Page:       proj.CurrentPage,
		TotalPages: proj.TotalPages,
		SortOrder:  proj.SortOrder,
		IsLoading:  snap.IsLoading,
	}
}

func buildPositionsResponse(snap Snapshot, proj Projection) positionsResponse {
	markers := make([]marker, 0, len(proj.Page))
	for _, v := range proj.Page {
		markers = append(markers, marker{
			ID:       v.ID,
			Provider: v.Provider,
			Lat:      v.NormalizedCoordinates.Lat,
			Lng:      v.NormalizedCoordinates.Lng,
			State:    v.State,
			Selected: snap.IsSelected(v),
		})
	}
	return positionsResponse{
		Markers:   markers,
		Count:     len(markers),
		IsLoading: snap.IsLoading,
	}
}

func buildErrorPayload(endpoint, message string) []byte {
	payload := map[string]any{
		"error": map[string]string{
			"endpoint": endpoint,
			"message":  message,
		},
	}
	b, _ := json.Marshal(payload)
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
