package scheduler

import (
	"sort"

	"github.com/alexanderramin/semainier/internal/domain"
)

// MergeIntervals sorts busy intervals by start and coalesces overlapping or
// adjacent ones. The input slice is not modified. Zero-length intervals are
// dropped.
func MergeIntervals(busy []domain.BusyInterval) []domain.BusyInterval {
	filtered := make([]domain.BusyInterval, 0, len(busy))
	for _, b := range busy {
		if b.End.After(b.Start) {
			filtered = append(filtered, b)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Start.Equal(filtered[j].Start) {
			return filtered[i].End.Before(filtered[j].End)
		}
		return filtered[i].Start.Before(filtered[j].Start)
	})

	merged := []domain.BusyInterval{filtered[0]}
	for _, next := range filtered[1:] {
		last := &merged[len(merged)-1]
		if !next.Start.After(last.End) {
			if next.End.After(last.End) {
				last.End = next.End
			}
			continue
		}
		merged = append(merged, next)
	}
	return merged
}
