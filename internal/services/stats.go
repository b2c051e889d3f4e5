package services

import (
	"encoding/json"

	c "api/internal/cache"
	"api/internal/configuration"
	"api/internal/handlers"
	"api/internal/models"
	"api/internal/sql"
	"api/internal/stats"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StatsService struct {
	DB    *gorm.DB
	Cache c.ICache
}

func (s StatsService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/summary", handlers.GetHandler(s.GetSummary))
	r.Get("/categories", handlers.GetHandler(s.GetCategories))
	r.Get("/categories/{categoryKey}", handlers.GetOneHandler("categoryKey", s.GetCategory))

	return r
}

// GetSummary serves the dashboard summary, read-through cached. Cache
// failures degrade to a direct recompute rather than an error response.
func (s StatsService) GetSummary(logger *zap.Logger) (models.SummaryResponse, error) {
	if cached, ok := s.cachedSummary(logger); ok {
		return cached, nil
	}

	categories, err := sql.GetCategoryStats(s.DB)
	if err != nil {
		return models.SummaryResponse{}, err
	}

	summary := stats.AssembleSummary(categories)
	s.storeSummary(logger, summary)

	return summary, nil
}

func (s StatsService) GetCategories(_ *zap.Logger) (models.CategoryStatsResponse, error) {
	categories, err := sql.GetCategoryStats(s.DB)
	if err != nil {
		return models.CategoryStatsResponse{}, err
	}

	return models.CategoryStatsResponse{Categories: categories}, nil
}

func (s StatsService) GetCategory(_ *zap.Logger, key string) (models.CategoryStat, error) {
	return sql.GetCategoryStat(s.DB, models.CategoryKey(key))
}

func (s StatsService) cachedSummary(logger *zap.Logger) (models.SummaryResponse, bool) {
	if s.Cache == nil {
		return models.SummaryResponse{}, false
	}

	payload, found, err := s.Cache.GetSummary(configuration.SummaryCacheKeyDefault)
	if err != nil {
		logger.Warn("Failed to read cached summary", zap.Error(err))
		return models.SummaryResponse{}, false
	}
	if !found {
		return models.SummaryResponse{}, false
	}

	var summary models.SummaryResponse
	if err := json.Unmarshal(payload, &summary); err != nil {
		logger.Warn("Discarding corrupt cached summary", zap.Error(err))
		return models.SummaryResponse{}, false
	}

	return summary, true
}

func (s StatsService) storeSummary(logger *zap.Logger, summary models.SummaryResponse) {
	if s.Cache == nil {
		return
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}

	if err := s.Cache.SetSummary(configuration.SummaryCacheKeyDefault, payload); err != nil {
		logger.Warn("Failed to cache summary", zap.Error(err))
	}
}
