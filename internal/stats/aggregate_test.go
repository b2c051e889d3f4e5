package stats

import (
	"testing"

	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	categories := []models.CategoryStat{
		{Key: models.CategoryActs, Count: 58942, WordCount: 512338120},
		{Key: models.CategorySupremeCourt, Count: 34521, WordCount: 389455010},
		{Key: models.CategoryTribunals, Count: 12076, WordCount: 98231400},
	}

	t.Run("sums counts and word counts", func(t *testing.T) {
		totals := ComputeTotals(categories)
		assert.Equal(t, int64(105539), totals.Documents)
		assert.Equal(t, int64(1000024530), totals.Words)
	})

	t.Run("is order independent", func(t *testing.T) {
		permuted := []models.CategoryStat{categories[2], categories[0], categories[1]}
		assert.Equal(t, ComputeTotals(categories), ComputeTotals(permuted))
	})

	t.Run("empty input yields zero totals", func(t *testing.T) {
		totals := ComputeTotals(nil)
		assert.Zero(t, totals.Documents)
		assert.Zero(t, totals.Words)
	})
}

func TestAssembleSummary(t *testing.T) {
	t.Run("formats totals and carries the insight", func(t *testing.T) {
		summary := AssembleSummary([]models.CategoryStat{
			{Key: models.CategoryActs, Label: "Acts", Count: 1000, WordCount: 1250000000},
			{Key: models.CategoryBills, Label: "Bills", Count: 234, WordCount: 46800},
		})

		assert.Equal(t, int64(1234), summary.Totals.Documents)
		assert.Equal(t, "1.2K", summary.DocumentsCompact)
		assert.Equal(t, "1.25B", summary.WordsCompact)
		assert.Equal(t, "1,234", summary.DocumentsGrouped)
		assert.Equal(t, "1,250,046,800", summary.WordsGrouped)

		require.NotNil(t, summary.Insight)
		assert.Equal(t, models.CategoryActs, summary.Insight.Category)
	})

	t.Run("empty dataset omits the insight", func(t *testing.T) {
		summary := AssembleSummary(nil)
		assert.Zero(t, summary.Totals.Documents)
		assert.Equal(t, "0", summary.DocumentsCompact)
		assert.Nil(t, summary.Insight)
	})
}

func TestBestAverage(t *testing.T) {
	t.Run("picks the highest words-per-document ratio", func(t *testing.T) {
		insight, ok := BestAverage([]models.CategoryStat{
			{Key: "a", Label: "A", Count: 2, WordCount: 10},
			{Key: "b", Label: "B", Count: 5, WordCount: 10},
		})
		require.True(t, ok)
		assert.Equal(t, models.CategoryKey("a"), insight.Category)
		assert.InDelta(t, 5.0, insight.Average, 1e-9)
	})

	t.Run("first entry wins ties", func(t *testing.T) {
		insight, ok := BestAverage([]models.CategoryStat{
			{Key: "a", Count: 2, WordCount: 10},
			{Key: "b", Count: 4, WordCount: 20},
		})
		require.True(t, ok)
		assert.Equal(t, models.CategoryKey("a"), insight.Category)
	})

	t.Run("zero-count categories cannot win", func(t *testing.T) {
		insight, ok := BestAverage([]models.CategoryStat{
			{Key: "a", Count: 0, WordCount: 100},
			{Key: "b", Count: 10, WordCount: 50},
		})
		require.True(t, ok)
		assert.Equal(t, models.CategoryKey("b"), insight.Category)
		assert.InDelta(t, 5.0, insight.Average, 1e-9)
	})

	t.Run("no comparable categories", func(t *testing.T) {
		_, ok := BestAverage([]models.CategoryStat{
			{Key: "a", Count: 0, WordCount: 0},
		})
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		_, ok := BestAverage(nil)
		assert.False(t, ok)
	})
}
