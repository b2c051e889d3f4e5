package services

import (
	"regexp"
	"testing"

	"api/internal/charts"
	apierrors "api/internal/errors"
	"api/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChartService_ListCharts(t *testing.T) {
	service := ChartService{}

	response, err := service.ListCharts(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, charts.Names(), response.Charts)
}

func TestChartService_GetChart(t *testing.T) {
	t.Run("unknown chart is a 404", func(t *testing.T) {
		gormDB, _ := newMockDB(t)
		service := ChartService{DB: gormDB}

		_, err := service.GetChart(zap.NewNop(), "no-such-chart", models.ChartQueryParams{})
		require.Error(t, err)

		var apiErr *apierrors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.Status)
		assert.Equal(t, apierrors.ErrChartNotFound, apiErr.Code)
	})

	t.Run("documents chart honors the metric toggle", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "category_stats" ORDER BY position ASC`)).
			WillReturnRows(categoryRows())

		service := ChartService{DB: gormDB}
		spec, err := service.GetChart(zap.NewNop(), charts.ChartDocumentsByCategory,
			models.ChartQueryParams{Metric: models.MetricWords})
		require.NoError(t, err)

		assert.Equal(t, models.ChartKindDoughnut, spec.Kind)
		require.Len(t, spec.Datasets, 1)
		assert.Equal(t, "Words", spec.Datasets[0].Label)
		assert.Equal(t, float64(1250000000), spec.Datasets[0].Data[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("distribution chart reads the bucket rows", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"range", "position", "num_files"}).
			AddRow("0-1K", 0, 312450).
			AddRow("1K-5K", 1, 854120)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "word_count_buckets" ORDER BY position ASC`)).
			WillReturnRows(rows)

		service := ChartService{DB: gormDB}
		spec, err := service.GetChart(zap.NewNop(), charts.ChartWordCountDistribution,
			models.ChartQueryParams{})
		require.NoError(t, err)

		assert.Equal(t, []string{"0-1K", "1K-5K"}, spec.Labels)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("acts chart applies the top-N limit", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"category", "position", "count"}).
			AddRow("Central Acts", 0, 4087).
			AddRow("Maharashtra", 1, 3912).
			AddRow("Karnataka", 2, 2104)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "act_category_counts" ORDER BY position ASC`)).
			WillReturnRows(rows)

		service := ChartService{DB: gormDB}
		spec, err := service.GetChart(zap.NewNop(), charts.ChartActsByCategory,
			models.ChartQueryParams{Limit: 2})
		require.NoError(t, err)

		require.Len(t, spec.Labels, 3)
		assert.Equal(t, "Other", spec.Labels[2])
		assert.Equal(t, float64(2104), spec.Datasets[0].Data[2])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
