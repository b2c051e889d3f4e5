package services

import (
	"api/internal/charts"
	apierrors "api/internal/errors"
	"api/internal/handlers"
	m "api/internal/middlewares"
	"api/internal/models"
	"api/internal/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ChartService struct {
	DB *gorm.DB
}

func (s ChartService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.GetHandler(s.ListCharts))

	r.With(m.ValidateQuery[models.ChartQueryParams]).
		Get("/{chartName}", handlers.GetOneWithQueryHandler("chartName", s.GetChart))

	return r
}

func (s ChartService) ListCharts(_ *zap.Logger) (models.ChartListResponse, error) {
	return models.ChartListResponse{Charts: charts.Names()}, nil
}

// GetChart builds the named chart from the current database rows. Unknown
// chart names are a 404, not a silent omission.
func (s ChartService) GetChart(
	_ *zap.Logger,
	chartName string,
	queryParams models.ChartQueryParams,
) (models.ChartSpec, error) {
	switch chartName {
	case charts.ChartDocumentsByCategory:
		categories, err := sql.GetCategoryStats(s.DB)
		if err != nil {
			return models.ChartSpec{}, err
		}
		return charts.BuildDocumentsByCategory(categories, queryParams.Metric), nil

	case charts.ChartWordCountDistribution:
		buckets, err := sql.GetWordCountBuckets(s.DB)
		if err != nil {
			return models.ChartSpec{}, err
		}
		return charts.BuildWordCountDistribution(buckets), nil

	case charts.ChartWordsByCategory:
		categories, err := sql.GetCategoryStats(s.DB)
		if err != nil {
			return models.ChartSpec{}, err
		}
		return charts.BuildWordsByCategory(categories), nil

	case charts.ChartAverageWords:
		categories, err := sql.GetCategoryStats(s.DB)
		if err != nil {
			return models.ChartSpec{}, err
		}
		return charts.BuildAverageWords(categories), nil

	case charts.ChartActsByCategory:
		entries, err := sql.GetActCategoryCounts(s.DB)
		if err != nil {
			return models.ChartSpec{}, err
		}
		return charts.BuildActsByCategory(entries, queryParams.Limit), nil

	default:
		return models.ChartSpec{}, apierrors.NewAPIError(404, apierrors.ErrChartNotFound)
	}
}
