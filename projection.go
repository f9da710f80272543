package fleetmonitor

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/theoremus-urban-solutions/fleet-monitor/vehicle"
)

// Projection is a read-only derived view of the canonical vehicle list:
// the full sorted list, the current page window and the pagination math.
type Projection struct {
	Sorted      []vehicle.Vehicle
	Page        []vehicle.Vehicle
	CurrentPage int
	TotalPages  int
	SortOrder   SortOrder
}

// BuildProjection derives the sorted and paginated view from its four
// inputs. It is a pure function: the input slice is not mutated, empty input
// yields empty output and no error is ever raised.
//
// Sorting is stable and compares licence plates case-insensitively with the
// collation rules of the given locale, so vehicles with equal plates keep
// their merge order across sort-direction flips.
func BuildProjection(vehicles []vehicle.Vehicle, order SortOrder, page, perPage int, locale string) Projection {
	if perPage < 1 {
		perPage = 1
	}

	sorted := append([]vehicle.Vehicle(nil), vehicles...)
	col := collate.New(language.Make(locale), collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		c := col.CompareString(sorted[i].LicencePlate, sorted[j].LicencePlate)
		if order == SortDesc {
			return c > 0
		}
		return c < 0
	})

	total := totalPages(len(sorted), perPage)

	var window []vehicle.Vehicle
	if page >= 1 {
		start := (page - 1) * perPage
		if start < len(sorted) {
			end := start + perPage
			if end > len(sorted) {
				end = len(sorted)
			}
			window = sorted[start:end]
		}
	}

	return Projection{
		Sorted:      sorted,
		Page:        window,
		CurrentPage: page,
		TotalPages:  total,
		SortOrder:   order,
	}
}

// totalPages is ceil(n/perPage); an empty list has zero pages so the table
// renders an empty state instead of a 1-of-0 pager.
func totalPages(n, perPage int) int {
	if n == 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}
