package feed

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/fleet-monitor/config"
	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

// Fetcher fetches both upstream feeds and merges them into one normalized
// vehicle list, car-share vehicles first, each provider's upstream order
// preserved.
type Fetcher struct {
	share        *ShareNowSource
	free         *FreeNowSource
	publishDelay time.Duration
}

// NewFetcher builds a Fetcher from the feeds configuration.
func NewFetcher(cfg config.FeedsConfig) *Fetcher {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	return &Fetcher{
		share:        NewShareNowSource(cfg.ShareNowURL, timeout),
		free:         NewFreeNowSource(cfg.FreeNowURL, timeout),
		publishDelay: time.Duration(cfg.PublishDelayMS) * time.Millisecond,
	}
}

// FetchFleet fetches both feeds concurrently and returns the merged,
// normalized fleet. If either feed fails, the whole fetch fails and no
// vehicles are returned. Malformed records are skipped with an aggregated
// warning.
func (f *Fetcher) FetchFleet(ctx context.Context) ([]vehicle.Vehicle, error) {
	var shareRecs []vehicle.ShareRecord
	var poiRecs []vehicle.PoiRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, err := f.share.Fetch(gctx)
		if err != nil {
			return err
		}
		shareRecs = recs
		return nil
	})
	g.Go(func() error {
		recs, err := f.free.Fetch(gctx)
		if err != nil {
			return err
		}
		poiRecs = recs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]vehicle.Vehicle, 0, len(shareRecs)+len(poiRecs))

	shareWarnings := NewWarningAggregator()
	for _, r := range shareRecs {
		if r.Fuel != nil && (*r.Fuel < 0 || *r.Fuel > 100) {
			shareWarnings.Add(WarningFuelOutOfRange, strconv.FormatInt(r.ID, 10))
			r.Fuel = nil
		}
		v, err := vehicle.FromShareRecord(r)
		if err != nil {
			shareWarnings.Add(warningTypeFor(err), strconv.FormatInt(r.ID, 10))
			continue
		}
		out = append(out, v)
	}
	shareWarnings.LogAll(string(vehicle.ProviderShareTaxi))

	poiWarnings := NewWarningAggregator()
	for _, r := range poiRecs {
		v, err := vehicle.FromPoiRecord(r)
		if err != nil {
			poiWarnings.Add(warningTypeFor(err), strconv.FormatInt(r.ID, 10))
			continue
		}
		out = append(out, v)
	}
	poiWarnings.LogAll(string(vehicle.ProviderTaxiNow))

	if f.publishDelay > 0 {
		log.Printf("delaying fleet publish by %s", f.publishDelay)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.publishDelay):
		}
	}

	return out, nil
}

func warningTypeFor(err error) string {
	switch {
	case errors.Is(err, vehicle.ErrNoCoordinates):
		return WarningNoCoordinates
	case errors.Is(err, vehicle.ErrNoLicencePlate):
		return WarningNoLicencePlate
	default:
		return "invalid_record"
	}
}
