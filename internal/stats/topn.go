package stats

import (
	"sort"

	"api/internal/models"
)

// OverflowLabel names the synthetic entry that absorbs everything beyond
// the top N.
const OverflowLabel = "Other"

// TopNWithOverflow sorts entries descending by count, keeps the largest n
// and collapses the remainder into a single "Other" entry. The sort is
// stable: equal counts keep their input order. The overflow entry is only
// appended when the collapsed counts sum to something positive.
func TopNWithOverflow(entries []models.ActCategoryCount, n int) []models.ActCategoryCount {
	if n <= 0 {
		return nil
	}

	sorted := make([]models.ActCategoryCount, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	if len(sorted) <= n {
		return sorted
	}

	top := sorted[:n]
	var overflow int64
	for _, e := range sorted[n:] {
		overflow += e.Count
	}
	if overflow > 0 {
		top = append(top, models.ActCategoryCount{
			Category: OverflowLabel,
			Position: n,
			Count:    overflow,
		})
	}

	return top
}
