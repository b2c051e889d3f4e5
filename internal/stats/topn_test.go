package stats

import (
	"fmt"
	"testing"

	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopNWithOverflow(t *testing.T) {
	t.Run("collapses the tail into Other", func(t *testing.T) {
		entries := make([]models.ActCategoryCount, 0, 20)
		for i := 0; i < 20; i++ {
			entries = append(entries, models.ActCategoryCount{
				Category: fmt.Sprintf("Category %d", i),
				Count:    int64(20 - i),
			})
		}

		result := TopNWithOverflow(entries, 15)
		require.Len(t, result, 16)

		assert.Equal(t, int64(20), result[0].Count)
		assert.Equal(t, int64(6), result[14].Count)

		other := result[15]
		assert.Equal(t, OverflowLabel, other.Category)
		// Counts 5..1 collapse into 15.
		assert.Equal(t, int64(15), other.Count)
	})

	t.Run("no Other entry when the tail is all zeros", func(t *testing.T) {
		entries := []models.ActCategoryCount{
			{Category: "Central Acts", Count: 10},
			{Category: "Maharashtra", Count: 5},
			{Category: "Empty A", Count: 0},
			{Category: "Empty B", Count: 0},
		}

		result := TopNWithOverflow(entries, 2)
		require.Len(t, result, 2)
		assert.Equal(t, "Central Acts", result[0].Category)
		assert.Equal(t, "Maharashtra", result[1].Category)
	})

	t.Run("fewer entries than n returns everything sorted", func(t *testing.T) {
		entries := []models.ActCategoryCount{
			{Category: "B", Count: 1},
			{Category: "A", Count: 7},
		}

		result := TopNWithOverflow(entries, 10)
		require.Len(t, result, 2)
		assert.Equal(t, "A", result[0].Category)
	})

	t.Run("equal counts keep input order", func(t *testing.T) {
		entries := []models.ActCategoryCount{
			{Category: "First", Count: 3},
			{Category: "Second", Count: 3},
			{Category: "Third", Count: 3},
		}

		result := TopNWithOverflow(entries, 3)
		require.Len(t, result, 3)
		assert.Equal(t, "First", result[0].Category)
		assert.Equal(t, "Second", result[1].Category)
		assert.Equal(t, "Third", result[2].Category)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		entries := []models.ActCategoryCount{
			{Category: "Low", Count: 1},
			{Category: "High", Count: 9},
		}

		_ = TopNWithOverflow(entries, 1)
		assert.Equal(t, "Low", entries[0].Category)
	})
}
