package feed

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningNoCoordinates  = "no_coordinates"
	WarningNoLicencePlate = "no_licence_plate"
	WarningFuelOutOfRange = "fuel_out_of_range"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects per-record warnings during a fetch and outputs
// consolidated summaries instead of one log line per bad record.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example record ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many occurrences of a warning type were recorded.
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(provider string) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		message := w.formatWarningMessage(warningType, provider, info)
		log.Printf("%s", message)
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, provider string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningNoCoordinates:
		description = "records with no usable coordinates"
		action = "Skipping record"
	case WarningNoLicencePlate:
		description = "records with no licence plate"
		action = "Skipping record"
	case WarningFuelOutOfRange:
		description = "records with a fuel level outside 0-100"
		action = "Dropping fuel value"
	default:
		description = "unknown issue"
		action = "Skipping record"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Feed %s has %s (%d occurrences). %s. Examples: %s",
		provider, description, info.count, action, examplesStr)
}
