package fleetmonitor

import (
	"context"
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

func shareVehicle(id int64, plate string) vehicle.Vehicle {
	v, err := vehicle.FromShareRecord(vehicle.ShareRecord{
		ID:           id,
		State:        vehicle.StateActive,
		LicencePlate: plate,
		Condition:    vehicle.ConditionGood,
		Address:      "Ballindamm 1",
		Coordinates:  []float64{9.99, 53.55, 0},
		EngineType:   vehicle.EnginePetrol,
	})
	if err != nil {
		panic(err)
	}
	return v
}

func poiVehicle(id int64, plate string) vehicle.Vehicle {
	v, err := vehicle.FromPoiRecord(vehicle.PoiRecord{
		ID:           id,
		State:        vehicle.StateActive,
		LicencePlate: plate,
		Condition:    vehicle.ConditionGood,
		Coordinate:   &vehicle.Coordinate{Latitude: 53.55, Longitude: 9.99},
	})
	if err != nil {
		panic(err)
	}
	return v
}

func fleetOf(n int) []vehicle.Vehicle {
	out := make([]vehicle.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, shareVehicle(int64(i+1), plateFor(i)))
	}
	return out
}

func plateFor(i int) string {
	return "HH-GT " + string(rune('A'+i%26)) + string(rune('A'+(i/26)%26))
}

func TestNewFleetStore_StartsLoading(t *testing.T) {
	s := NewFleetStore(20)
	snap := s.Snapshot()
	if !snap.IsLoading {
		t.Error("a fresh store must be in loading state")
	}
	if snap.CurrentPage != 1 || snap.SortOrder != SortAsc {
		t.Errorf("unexpected initial view state: page %d, order %s", snap.CurrentPage, snap.SortOrder)
	}
	if len(snap.Vehicles) != 0 || snap.Err != nil {
		t.Error("a fresh store must be empty and error-free")
	}
}

func TestSetVehicles_ClearsErrorAndLoading(t *testing.T) {
	s := NewFleetStore(20)
	s.SetError(errors.New("first fetch failed"))
	s.SetVehicles(fleetOf(3))

	snap := s.Snapshot()
	if snap.Err != nil {
		t.Errorf("SetVehicles must clear the error, got %v", snap.Err)
	}
	if snap.IsLoading {
		t.Error("SetVehicles must end the loading state")
	}
	if len(snap.Vehicles) != 3 {
		t.Errorf("expected 3 vehicles, got %d", len(snap.Vehicles))
	}
}

func TestSetError_KeepsStaleVehicles(t *testing.T) {
	s := NewFleetStore(20)
	s.SetVehicles(fleetOf(3))
	s.SetError(errors.New("refresh failed"))

	snap := s.Snapshot()
	if snap.Err == nil {
		t.Fatal("SetError must record the error")
	}
	if len(snap.Vehicles) != 3 {
		t.Errorf("SetError must keep the stale list, got %d vehicles", len(snap.Vehicles))
	}
	if snap.IsLoading {
		t.Error("SetError must end the loading state")
	}
}

func TestSetSortOrder_ResetsPage(t *testing.T) {
	s := NewFleetStore(2)
	s.SetVehicles(fleetOf(10)) // 5 pages

	if !s.SetCurrentPage(4) {
		t.Fatal("page 4 of 5 should be accepted")
	}
	s.SetSortOrder(SortDesc)

	snap := s.Snapshot()
	if snap.CurrentPage != 1 {
		t.Errorf("sort change must reset to page 1, got %d", snap.CurrentPage)
	}
	if snap.SortOrder != SortDesc {
		t.Errorf("expected desc order, got %s", snap.SortOrder)
	}

	// Reset is unconditional, also when the order does not change.
	if !s.SetCurrentPage(3) {
		t.Fatal("page 3 of 5 should be accepted")
	}
	s.SetSortOrder(SortDesc)
	if got := s.Snapshot().CurrentPage; got != 1 {
		t.Errorf("same-order sort call must still reset the page, got %d", got)
	}
}

func TestSetCurrentPage_OutOfRangeIsSilentlyIgnored(t *testing.T) {
	s := NewFleetStore(4)
	s.SetVehicles(fleetOf(10)) // 3 pages
	if !s.SetCurrentPage(2) {
		t.Fatal("page 2 of 3 should be accepted")
	}

	tests := []struct {
		name string
		page int
	}{
		{"zero", 0},
		{"negative", -3},
		{"beyond last", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.SetCurrentPage(tt.page) {
				t.Errorf("page %d should be rejected", tt.page)
			}
			if got := s.Snapshot().CurrentPage; got != 2 {
				t.Errorf("rejected request must leave the page unchanged, got %d", got)
			}
		})
	}
}

func TestSetCurrentPage_EmptyStoreHasNoValidPage(t *testing.T) {
	s := NewFleetStore(4)
	s.SetVehicles(nil)
	if s.SetCurrentPage(1) {
		t.Error("an empty fleet has zero pages, page 1 must be rejected")
	}
}

func TestClose_DropsLateCompletions(t *testing.T) {
	s := NewFleetStore(20)
	s.Close()

	s.SetVehicles(fleetOf(5))
	snap := s.Snapshot()
	if len(snap.Vehicles) != 0 || !snap.IsLoading {
		t.Error("a write after Close must be dropped")
	}

	s.SetError(errors.New("late failure"))
	if s.Snapshot().Err != nil {
		t.Error("an error after Close must be dropped")
	}
}

type stubFetcher struct {
	vehicles []vehicle.Vehicle
	err      error
}

func (f *stubFetcher) FetchFleet(ctx context.Context) ([]vehicle.Vehicle, error) {
	return f.vehicles, f.err
}

func TestLoad_PublishesOnSuccess(t *testing.T) {
	s := NewFleetStore(20)
	s.Load(context.Background(), &stubFetcher{vehicles: fleetOf(5)})

	snap := s.Snapshot()
	if snap.IsLoading || snap.Err != nil || len(snap.Vehicles) != 5 {
		t.Errorf("unexpected state after load: loading=%v err=%v n=%d",
			snap.IsLoading, snap.Err, len(snap.Vehicles))
	}
}

func TestLoad_FailureLeavesNoPartialFleet(t *testing.T) {
	s := NewFleetStore(20)
	s.Load(context.Background(), &stubFetcher{err: errors.New("upstream down")})

	snap := s.Snapshot()
	if snap.IsLoading {
		t.Error("loading must end on failure")
	}
	if snap.Err == nil {
		t.Error("failure must surface as a store error")
	}
	if len(snap.Vehicles) != 0 {
		t.Errorf("no partial vehicles may be published, got %d", len(snap.Vehicles))
	}
}
