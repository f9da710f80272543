package fleetmonitor

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

// handleFleet serves the paginated, sorted table payload. Optional query
// parameters mutate the shared view state through the store, so the
// page-reset-on-sort and page-bounds policies apply no matter which client
// drives them: sort is applied first (resetting the page), then the page
// request, then the projection is derived.
func (a *App) handleFleet(w http.ResponseWriter, r *http.Request) {
	order, hasSort, err := parseSortParam(r.URL.Query().Get("sort"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("fleet", err.Error()))
		return
	}
	page, hasPage, err := parsePageParam(r.URL.Query().Get("page"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("fleet", err.Error()))
		return
	}

	if hasSort {
		a.Store.SetSortOrder(order)
	}
	if hasPage {
		a.Store.SetCurrentPage(page)
	}

	snap, proj := a.Projection()
	if snap.Err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write(buildErrorPayload("fleet", snap.Err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, buildFleetResponse(snap, proj))
}

// handlePositions serves the map markers for the current page window. The
// map renders the same window the table shows, so the two views stay in
// step.
func (a *App) handlePositions(w http.ResponseWriter, r *http.Request) {
	snap, proj := a.Projection()
	if snap.Err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write(buildErrorPayload("positions", snap.Err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, buildPositionsResponse(snap, proj))
}

// handleSelect sets the selected vehicle from a {provider, id} body. The
// key must refer to a vehicle in the merged fleet.
func (a *App) handleSelect(w http.ResponseWriter, r *http.Request) {
	var key vehicle.Key
	if err := json.NewDecoder(r.Body).Decode(&key); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("selection", "Body must be {provider, id}."))
		return
	}
	if key.Provider != vehicle.ProviderShareTaxi && key.Provider != vehicle.ProviderTaxiNow {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(buildErrorPayload("selection", "Unknown provider: "+string(key.Provider)))
		return
	}
	v, ok := a.Store.FindByKey(key)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(buildErrorPayload("selection", "No such vehicle in the fleet."))
		return
	}
	a.Store.Select(key)
	writeJSON(w, http.StatusOK, fleetRow{Vehicle: v, Selected: true})
}

// handleClearSelection clears the selection in both views.
func (a *App) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	a.Store.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}
