package main

import (
	"api/internal/cache"
	"api/internal/configuration"
	"api/internal/core"
	"api/internal/database"
	"api/internal/dataset"
	"api/internal/search"
	"api/internal/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	profile := configuration.GetProfile(config.Profile)

	db := database.InitDB(config.Database)
	cacheClient := core.NewCache(config.Cache)

	doc, err := dataset.Load(config.Dataset)
	if err != nil {
		zap.L().Fatal("Failed to load dataset", zap.Error(err))
	}
	if err := dataset.Seed(db, doc); err != nil {
		zap.L().Fatal("Failed to seed dataset", zap.Error(err))
	}
	invalidateSummary(cacheClient)

	var eventsManager *core.EventsManager
	if profile.NeedsEvents() {
		eventsManager = core.NewEventsManager(config.Events)
	}

	appIdentity := uuid.New().String()

	if cacheClient != nil {
		go cacheClient.StartIdentityTicker(appIdentity)
		zap.L().Info("Cache identity ticker started")
	}

	if profile.Workers.AnyEnabled() {
		core.StartWorkers(profile, eventsManager, db, config, cacheClient, appIdentity)
	}

	if profile.HTTPServer {
		core.StartHTTPServer(config, db, cacheClient, buildCatalogIndex(db))
	} else if profile.Workers.AnyEnabled() {
		zap.L().Info("Running in worker-only mode")
		select {} // Block forever
	}
}

// invalidateSummary drops the cached summary after a reseed so stale
// aggregates are never served over fresh rows.
func invalidateSummary(cacheClient cache.ICache) {
	if cacheClient == nil {
		return
	}
	if err := cacheClient.InvalidateSummary(configuration.SummaryCacheKeyDefault); err != nil {
		zap.L().Warn("Failed to invalidate cached summary", zap.Error(err))
	}
}

func buildCatalogIndex(db *gorm.DB) *search.CatalogIndex {
	entries, err := sql.GetActCategoryCounts(db)
	if err != nil {
		zap.L().Fatal("Failed to read act catalog", zap.Error(err))
	}

	index, err := search.NewCatalogIndex(entries)
	if err != nil {
		zap.L().Fatal("Failed to build catalog search index", zap.Error(err))
	}

	return index
}
