// Package search maintains the in-memory full-text index over the act
// catalog, backing the catalog search endpoint.
package search

import (
	"api/internal/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// MaxResults caps a single search response.
const MaxResults = 20

type catalogEntry struct {
	Category string `json:"category"`
}

// CatalogIndex is a memory-only bleve index over catalog labels. The
// catalog is small (tens of entries) and static per process, so the index
// is rebuilt from the database on startup.
type CatalogIndex struct {
	index  bleve.Index
	counts map[string]int64
}

// NewCatalogIndex indexes the given catalog rows.
func NewCatalogIndex(entries []models.ActCategoryCount) (*CatalogIndex, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}

	batch := index.NewBatch()
	counts := make(map[string]int64, len(entries))
	for _, e := range entries {
		counts[e.Category] = e.Count
		if err := batch.Index(e.Category, catalogEntry{Category: e.Category}); err != nil {
			return nil, err
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, err
	}

	zap.L().Info("Built catalog search index", zap.Int("entries", len(entries)))

	return &CatalogIndex{index: index, counts: counts}, nil
}

// Search returns catalog labels matching the query, best first. Queries
// tolerate one typo per term.
func (ci *CatalogIndex) Search(query string) ([]models.CatalogSearchHit, error) {
	match := bleve.NewMatchQuery(query)
	match.SetFuzziness(1)

	request := bleve.NewSearchRequestOptions(match, MaxResults, 0, false)
	result, err := ci.index.Search(request)
	if err != nil {
		return nil, err
	}

	hits := make([]models.CatalogSearchHit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, models.CatalogSearchHit{
			Category: hit.ID,
			Count:    ci.counts[hit.ID],
			Score:    hit.Score,
		})
	}

	return hits, nil
}

// Close releases the index resources.
func (ci *CatalogIndex) Close() error {
	return ci.index.Close()
}
