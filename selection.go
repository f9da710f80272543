package fleetmonitor

import (
	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

// Selection matching is strictly by composite key, never by struct or
// pointer equality: the map payload and the table payload are built from
// independently derived vehicle values, and both must agree on which one is
// highlighted.

// IsSelected reports whether the candidate vehicle is the selected one in
// the given snapshot.
func (snap Snapshot) IsSelected(v vehicle.Vehicle) bool {
	return snap.Selected != nil && *snap.Selected == v.Key()
}

// IsSelected reports whether the candidate vehicle is currently selected.
func (s *FleetStore) IsSelected(v vehicle.Vehicle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected != nil && *s.selected == v.Key()
}
