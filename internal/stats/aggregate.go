package stats

import (
	"api/internal/models"
)

// ComputeTotals sums document and word counts across all categories.
// Addition is commutative, so the result does not depend on row order.
func ComputeTotals(categories []models.CategoryStat) models.Totals {
	var totals models.Totals
	for _, c := range categories {
		totals.Documents += c.Count
		totals.Words += c.WordCount
	}
	return totals
}

// BestAverage returns the category with the strictly greatest average word
// count per document. Ties keep the earlier row. Categories with a zero
// document count are not comparable and are skipped, so an empty category
// can never win. Returns false when no comparable category exists.
func BestAverage(categories []models.CategoryStat) (models.Insight, bool) {
	var best models.Insight
	found := false

	for _, c := range categories {
		if c.Count == 0 {
			continue
		}
		average := float64(c.WordCount) / float64(c.Count)
		if !found || average > best.Average {
			best = models.Insight{
				Category: c.Key,
				Label:    c.Label,
				Average:  average,
			}
			found = true
		}
	}

	return best, found
}

// AssembleSummary derives the full dashboard summary from the category
// rows: raw totals, display-formatted totals, and the best-average
// insight. The insight is omitted when no category qualifies.
func AssembleSummary(categories []models.CategoryStat) models.SummaryResponse {
	totals := ComputeTotals(categories)

	response := models.SummaryResponse{
		Totals:           totals,
		DocumentsCompact: FormatCompact(totals.Documents),
		WordsCompact:     FormatCompact(totals.Words),
		DocumentsGrouped: FormatGrouped(float64(totals.Documents)),
		WordsGrouped:     FormatGrouped(float64(totals.Words)),
	}

	if insight, ok := BestAverage(categories); ok {
		response.Insight = &insight
	}

	return response
}
