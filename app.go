package fleetmonitor

import (
	"github.com/theoremus-urban-solutions/fleet-monitor/config"
)

// App is the composition root: it owns the fleet store, the projection
// cache and the feed adapter, and hands them to the HTTP handlers. Shared
// view state is reached only through this explicit handle, never through
// ambient lookup.
type App struct {
	Cfg     config.AppConfig
	Store   *FleetStore
	Cache   *ProjectionCache
	Fetcher FleetFetcher
}

// NewApp wires the store and projection cache from configuration.
func NewApp(cfg config.AppConfig, fetcher FleetFetcher) *App {
	return &App{
		Cfg:     cfg,
		Store:   NewFleetStore(cfg.Fleet.ItemsPerPage),
		Cache:   NewProjectionCache(cfg.Fleet.SortLocale),
		Fetcher: fetcher,
	}
}

// Projection returns the memoized sorted/paginated view of the current
// store state.
func (a *App) Projection() (Snapshot, Projection) {
	snap := a.Store.Snapshot()
	return snap, a.Cache.Get(snap)
}
