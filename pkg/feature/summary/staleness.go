package summary

import "time"

// IsStale reports whether a cached summary must be regenerated: it is empty,
// has never been stamped, or the data changed strictly after it was stamped.
func IsStale(summary string, summaryUpdatedAt *time.Time, dataUpdatedAt time.Time) bool {
	if summary == "" || summaryUpdatedAt == nil {
		return true
	}
	return dataUpdatedAt.After(*summaryUpdatedAt)
}
