package fleetmonitor

import (
	"bytes"
	"strconv"
	"sync"
)

// ProjectionCache memoizes projections keyed by the tuple of their inputs,
// so flipping between pages or sort directions of an unchanged fleet does
// not repeat the O(n log n) sort. Any change to the vehicle list bumps the
// store version and drops every cached entry.
type ProjectionCache struct {
	locale string

	mu      sync.Mutex
	version uint64
	entries map[string]Projection
}

// NewProjectionCache creates a cache whose sorts collate plates with the
// given locale.
func NewProjectionCache(locale string) *ProjectionCache {
	return &ProjectionCache{
		locale:  locale,
		entries: map[string]Projection{},
	}
}

func (pc *ProjectionCache) memoKey(version uint64, order SortOrder, page, perPage int) string {
	var b bytes.Buffer
	b.WriteString(strconv.FormatUint(version, 10))
	b.WriteByte('|')
	b.WriteString(string(order))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(page))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(perPage))
	return b.String()
}

// Get returns the projection for the snapshot, building and caching it on a
// miss.
func (pc *ProjectionCache) Get(snap Snapshot) Projection {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if snap.Version != pc.version {
		pc.entries = map[string]Projection{}
		pc.version = snap.Version
	}

	key := pc.memoKey(snap.Version, snap.SortOrder, snap.CurrentPage, snap.ItemsPerPage)
	if proj, ok := pc.entries[key]; ok {
		return proj
	}

	proj := BuildProjection(snap.Vehicles, snap.SortOrder, snap.CurrentPage, snap.ItemsPerPage, pc.locale)
	pc.entries[key] = proj
	return proj
}
