package search

import (
	"testing"

	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *CatalogIndex {
	t.Helper()

	index, err := NewCatalogIndex([]models.ActCategoryCount{
		{Category: "Central Acts", Count: 4087},
		{Category: "Maharashtra State Acts", Count: 3912},
		{Category: "Tamil Nadu State Acts", Count: 2871},
		{Category: "British-era Regulations", Count: 412},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	return index
}

func TestCatalogIndex_Search(t *testing.T) {
	index := newTestIndex(t)

	t.Run("finds exact terms", func(t *testing.T) {
		hits, err := index.Search("central")
		require.NoError(t, err)
		require.NotEmpty(t, hits)
		assert.Equal(t, "Central Acts", hits[0].Category)
		assert.Equal(t, int64(4087), hits[0].Count)
	})

	t.Run("tolerates a typo", func(t *testing.T) {
		hits, err := index.Search("maharastra")
		require.NoError(t, err)
		require.NotEmpty(t, hits)
		assert.Equal(t, "Maharashtra State Acts", hits[0].Category)
	})

	t.Run("no match yields no hits", func(t *testing.T) {
		hits, err := index.Search("zzzzzz")
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("scores are descending", func(t *testing.T) {
		hits, err := index.Search("state acts")
		require.NoError(t, err)
		for i := 1; i < len(hits); i++ {
			assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
		}
	})
}
