package fleetmonitor

import (
	"strconv"
	"strings"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// parseSortParam validates the optional sort query parameter. Empty input
// means "leave the current order unchanged".
func parseSortParam(s string) (SortOrder, bool, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "":
		return "", false, nil
	case "asc":
		return SortAsc, true, nil
	case "desc":
		return SortDesc, true, nil
	}
	return "", false, &QueryError{Msg: "Unsupported sort order: " + s}
}

// parsePageParam validates the optional page query parameter. Empty input
// means "stay on the current page". Any integer is accepted here; the store
// silently rejects out-of-range pages.
func parsePageParam(s string) (int, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false, &QueryError{Msg: "Page parameter must be an integer."}
	}
	return v, true, nil
}
