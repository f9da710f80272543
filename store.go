package fleetmonitor

import (
	"context"
	"log"
	"sync"

	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

// SortOrder is the licence-plate sort direction of the table view.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FleetFetcher is the feed-adapter contract the store loads from.
type FleetFetcher interface {
	FetchFleet(ctx context.Context) ([]vehicle.Vehicle, error)
}

// FleetStore owns the merged vehicle list and the shared view state: loading
// flag, fetch error, sort order, current page and the selected vehicle. Both
// the map payload and the table payload are derived from it, so there is
// exactly one copy of this state.
//
// The original dashboard mutated this state from a single UI thread; here it
// is written and read by concurrent HTTP handlers, so a mutex guards it.
type FleetStore struct {
	mu           sync.Mutex
	vehicles     []vehicle.Vehicle
	isLoading    bool
	err          error
	sortOrder    SortOrder
	currentPage  int
	itemsPerPage int
	selected     *vehicle.Key
	version      uint64
	closed       bool
}

// Snapshot is a consistent read of the store state for projection building.
type Snapshot struct {
	Vehicles     []vehicle.Vehicle
	IsLoading    bool
	Err          error
	SortOrder    SortOrder
	CurrentPage  int
	ItemsPerPage int
	Selected     *vehicle.Key
	Version      uint64
}

// NewFleetStore creates an empty store in loading state, sorted ascending on
// page 1.
func NewFleetStore(itemsPerPage int) *FleetStore {
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	return &FleetStore{
		isLoading:    true,
		sortOrder:    SortAsc,
		currentPage:  1,
		itemsPerPage: itemsPerPage,
	}
}

// SetVehicles replaces the vehicle list, clears any previous error and ends
// the loading state. Writes after Close are dropped so a late fetch cannot
// resurrect a torn-down store.
func (s *FleetStore) SetVehicles(list []vehicle.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.vehicles = append([]vehicle.Vehicle(nil), list...)
	s.err = nil
	s.isLoading = false
	s.version++
}

// SetError records a terminal fetch error and ends the loading state. The
// previous vehicle list is kept: stale but valid, or empty on first failure.
func (s *FleetStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.err = err
	s.isLoading = false
	s.version++
}

// SetSortOrder updates the sort direction and unconditionally resets the
// current page to 1, so a sort flip can never leave the user beyond the
// bounds of the freshly-sorted list.
func (s *FleetStore) SetSortOrder(order SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortOrder = order
	s.currentPage = 1
}

// SetCurrentPage moves to the requested page if it is within bounds.
// Out-of-range requests are silently ignored and leave the page unchanged;
// the return value reports whether the request was applied.
func (s *FleetStore) SetCurrentPage(page int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := totalPages(len(s.vehicles), s.itemsPerPage)
	if page < 1 || page > total {
		return false
	}
	s.currentPage = page
	return true
}

// Select marks the vehicle with the given composite key as selected.
func (s *FleetStore) Select(key vehicle.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key
	s.selected = &k
}

// ClearSelection removes the selection, clearing the highlight in every view.
func (s *FleetStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// FindByKey returns the stored vehicle with the given identity, if any.
func (s *FleetStore) FindByKey(key vehicle.Key) (vehicle.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.Key() == key {
			return v, true
		}
	}
	return vehicle.Vehicle{}, false
}

// Snapshot returns a consistent copy of the current state. The vehicle slice
// is shared and must be treated as read-only; SetVehicles always installs a
// fresh slice, so existing snapshots stay valid.
func (s *FleetStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var selected *vehicle.Key
	if s.selected != nil {
		k := *s.selected
		selected = &k
	}
	return Snapshot{
		Vehicles:     s.vehicles,
		IsLoading:    s.isLoading,
		Err:          s.err,
		SortOrder:    s.sortOrder,
		CurrentPage:  s.currentPage,
		ItemsPerPage: s.itemsPerPage,
		Selected:     selected,
		Version:      s.version,
	}
}

// Close tears the store down; subsequent SetVehicles/SetError calls are
// ignored.
func (s *FleetStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Load performs the one-shot populate from the feed adapter. On success the
// merged list is published atomically; on failure the store transitions to
// its error state and no partial list is ever observable.
func (s *FleetStore) Load(ctx context.Context, fetcher FleetFetcher) {
	vehicles, err := fetcher.FetchFleet(ctx)
	if err != nil {
		log.Printf("fleet fetch failed: %v", err)
		s.SetError(err)
		return
	}
	log.Printf("fleet loaded: %d vehicles", len(vehicles))
	s.SetVehicles(vehicles)
}
