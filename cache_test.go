package fleetmonitor

import (
	"testing"
)

func TestProjectionCache_MemoizesPerInputTuple(t *testing.T) {
	s := NewFleetStore(2)
	s.SetVehicles(fleetOf(6))
	cache := NewProjectionCache("de")

	snap := s.Snapshot()
	first := cache.Get(snap)
	second := cache.Get(snap)

	if len(first.Sorted) == 0 {
		t.Fatal("projection should not be empty")
	}
	// Same backing array means the cached entry was reused, not rebuilt.
	if &first.Sorted[0] != &second.Sorted[0] {
		t.Error("identical input tuples should hit the cache")
	}
}

func TestProjectionCache_KeysByViewState(t *testing.T) {
	s := NewFleetStore(2)
	s.SetVehicles(fleetOf(6))
	cache := NewProjectionCache("de")

	page1 := cache.Get(s.Snapshot())
	s.SetCurrentPage(2)
	page2 := cache.Get(s.Snapshot())

	if page1.CurrentPage == page2.CurrentPage {
		t.Fatal("different pages must produce different projections")
	}
	if page1.Page[0].Key() == page2.Page[0].Key() {
		t.Error("page windows of different pages should differ")
	}

	// Flipping back hits the still-cached first page.
	s.SetCurrentPage(1)
	again := cache.Get(s.Snapshot())
	if &again.Sorted[0] != &page1.Sorted[0] {
		t.Error("returning to a cached view state should reuse the cached projection")
	}
}

func TestProjectionCache_InvalidatedByNewVehicles(t *testing.T) {
	s := NewFleetStore(2)
	s.SetVehicles(fleetOf(4))
	cache := NewProjectionCache("de")

	before := cache.Get(s.Snapshot())
	s.SetVehicles(fleetOf(6))
	after := cache.Get(s.Snapshot())

	if len(before.Sorted) == len(after.Sorted) {
		t.Fatal("expected the projection to reflect the new vehicle list")
	}
	if after.TotalPages != 3 {
		t.Errorf("expected 3 pages after reload, got %d", after.TotalPages)
	}
}
