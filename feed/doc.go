// Package feed fetches the two upstream vehicle feeds and merges them into
// the normalized fleet model.
//
// It supports two providers:
//   - SHARE TAXI: car-share vehicles delivered as {placemarks: [...]}
//   - TAXI NOW: point-of-interest vehicles delivered as {poiList: [...]}
//
// The main type is Fetcher, which fetches both feeds concurrently and
// all-or-nothing: if either request fails, no partial merge is produced.
// Individual malformed records are skipped with an aggregated warning
// instead of failing the batch.
package feed
