package fleetmonitor

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status       string `json:"status"`
	VehicleCount int    `json:"vehicle_count"`
	Error        string `json:"error,omitempty"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	snap := a.Store.Snapshot()
	resp := healthResponse{
		Status:       "ok",
		VehicleCount: len(snap.Vehicles),
	}
	if snap.IsLoading {
		resp.Status = "loading"
	}
	if snap.Err != nil {
		resp.Status = "error"
		resp.Error = snap.Err.Error()
	}
	_ = json.NewEncoder(w).Encode(resp)
}
