package services

import (
	apierrors "api/internal/errors"
	"api/internal/handlers"
	m "api/internal/middlewares"
	"api/internal/models"
	"api/internal/search"
	"api/internal/sql"
	"api/internal/stats"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CatalogService struct {
	DB    *gorm.DB
	Index *search.CatalogIndex
}

func (s CatalogService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.ValidateQuery[models.ActCategoriesQueryParams]).
		Get("/acts", handlers.GetWithQueryHandler(s.GetActCategories))

	r.With(m.ValidateQuery[models.CatalogSearchQueryParams]).
		Get("/search", handlers.GetWithQueryHandler(s.Search))

	return r
}

// GetActCategories lists the top-N act categories by document count, with
// the remainder collapsed into a trailing overflow row.
func (s CatalogService) GetActCategories(
	_ *zap.Logger,
	queryParams models.ActCategoriesQueryParams,
) (models.ActCategoriesResponse, error) {
	entries, err := sql.GetActCategoryCounts(s.DB)
	if err != nil {
		return models.ActCategoriesResponse{}, err
	}

	limit := queryParams.Limit
	if limit == 0 {
		limit = len(entries)
	}

	return models.ActCategoriesResponse{
		Categories: stats.TopNWithOverflow(entries, limit),
	}, nil
}

func (s CatalogService) Search(
	logger *zap.Logger,
	queryParams models.CatalogSearchQueryParams,
) (models.CatalogSearchResponse, error) {
	if s.Index == nil {
		return models.CatalogSearchResponse{}, apierrors.NewAPIError(503, apierrors.ErrDatasetUnavailable)
	}

	hits, err := s.Index.Search(queryParams.Query)
	if err != nil {
		logger.Error("Catalog search failed", zap.String("query", queryParams.Query), zap.Error(err))
		return models.CatalogSearchResponse{}, err
	}

	return models.CatalogSearchResponse{Hits: hits}, nil
}
