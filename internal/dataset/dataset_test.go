package dataset

import (
	"testing"

	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmbeddedDefault(t *testing.T) {
	doc, err := Parse(defaultDocument)
	require.NoError(t, err)

	assert.Len(t, doc.Categories, 8)
	assert.GreaterOrEqual(t, len(doc.ActCategories), 50)
	assert.Len(t, doc.WordCountBuckets, 7)

	keys := make(map[models.CategoryKey]bool)
	for _, c := range doc.Categories {
		keys[c.Key] = true
	}
	assert.True(t, keys[models.CategoryActs])
	assert.True(t, keys[models.CategoryConstitution])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			"no categories",
			"categories: []",
		},
		{
			"duplicate category key",
			`categories:
  - { key: acts, label: Acts, count: 1, word_count: 10 }
  - { key: acts, label: Acts again, count: 2, word_count: 20 }`,
		},
		{
			"negative count",
			`categories:
  - { key: acts, label: Acts, count: -1, word_count: 0 }`,
		},
		{
			"words without documents",
			`categories:
  - { key: acts, label: Acts, count: 0, word_count: 500 }`,
		},
		{
			"not yaml",
			"{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParse_ZeroCountCategoryIsValid(t *testing.T) {
	doc, err := Parse([]byte(`categories:
  - { key: bills, label: Bills, count: 0, word_count: 0 }`))
	require.NoError(t, err)
	assert.Equal(t, int64(0), doc.Categories[0].Count)
}
