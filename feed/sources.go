package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

// ShareNowSource fetches the SHARE TAXI car-share feed.
type ShareNowSource struct {
	url        string
	httpClient *http.Client
}

// NewShareNowSource creates a SHARE TAXI feed client.
func NewShareNowSource(url string, timeout time.Duration) *ShareNowSource {
	return &ShareNowSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the raw SHARE TAXI records in upstream order.
func (s *ShareNowSource) Fetch(ctx context.Context) ([]vehicle.ShareRecord, error) {
	var env shareEnvelope
	if err := fetchJSON(ctx, s.httpClient, s.url, &env); err != nil {
		return nil, &FetchError{Provider: vehicle.ProviderShareTaxi, Err: err}
	}
	return env.Placemarks, nil
}

// FreeNowSource fetches the TAXI NOW point-of-interest feed.
type FreeNowSource struct {
	url        string
	httpClient *http.Client
}

// NewFreeNowSource creates a TAXI NOW feed client.
func NewFreeNowSource(url string, timeout time.Duration) *FreeNowSource {
	return &FreeNowSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the raw TAXI NOW records in upstream order.
func (s *FreeNowSource) Fetch(ctx context.Context) ([]vehicle.PoiRecord, error) {
	var env poiEnvelope
	if err := fetchJSON(ctx, s.httpClient, s.url, &env); err != nil {
		return nil, &FetchError{Provider: vehicle.ProviderTaxiNow, Err: err}
	}
	return env.PoiList, nil
}

func fetchJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
