package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	c "api/internal/cache"
	"api/internal/configuration"
	"api/internal/events"
	m "api/internal/middlewares"
	"api/internal/models"
	"api/internal/search"
	"api/internal/services"
	"api/internal/workers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func StartWorkers(
	profile models.Profile,
	eventsManager *EventsManager,
	db *gorm.DB,
	config models.Configuration,
	cache c.ICache,
	appIdentity string,
) {
	refreshParams := &events.RefreshParams{DB: db, Cache: cache}

	refreshMessages := eventsManager.GetSubscriber(configuration.EventsStatsRefresh).Subscribe()
	go events.HandleRefreshEvents(refreshParams, refreshMessages)
	zap.L().Info("Started stats refresh subscriber")

	startWorker(profile.Workers.StatsRefresh, "stats_refresh", cache, appIdentity, func(ctx context.Context) {
		worker := &workers.StatsRefreshWorker{
			Publisher:   eventsManager.GetPublisher(configuration.EventsStatsRefresh),
			RunInterval: time.Duration(config.App.RefreshIntervalMinutes) * time.Minute,
		}
		worker.Start(ctx)
	})
}

func startWorker(
	mode models.WorkerMode,
	workerName string,
	cache c.ICache,
	appIdentity string,
	runWorker func(context.Context),
) {
	if mode == models.WorkerModeDisabled {
		return
	}

	// Singleton election needs the shared cache; without one there is a
	// single instance anyway, so run the worker directly.
	if mode == models.WorkerModeSingleton && cache != nil {
		go startSingletonWorker(cache, appIdentity, workerName, runWorker)
	} else {
		go runWorker(context.Background())
		zap.L().Info("Started worker", zap.String("worker", workerName))
	}
}

func startSingletonWorker(cache c.ICache, instanceID string, workerName string, runWorker func(context.Context)) {
	lockKey := fmt.Sprintf(configuration.CacheAppWorkerLockKey, workerName)
	ticker := time.NewTicker(time.Duration(configuration.CacheAppWorkerLockRefresh) * time.Second)
	defer ticker.Stop()

	var workerStarted bool
	var cancelWorker context.CancelFunc

	for {
		if !workerStarted {
			acquired, err := cache.TryAcquireLock(lockKey, instanceID, configuration.CacheAppWorkerLockTTL)
			if err != nil {
				zap.L().Error("Failed to acquire worker lock", zap.String("worker", workerName), zap.Error(err))
			}

			if acquired {
				zap.L().Info("Acquired worker lock, starting worker", zap.String("worker", workerName))
				workerStarted = true
				var ctx context.Context
				ctx, cancelWorker = context.WithCancel(context.Background())
				go runWorker(ctx)
			}
		} else {
			refreshed, err := cache.RefreshLock(lockKey, instanceID, configuration.CacheAppWorkerLockTTL)
			if err != nil || !refreshed {
				zap.L().Warn("Lost worker lock, stopping worker", zap.String("worker", workerName))
				workerStarted = false
				if cancelWorker != nil {
					cancelWorker()
					cancelWorker = nil
				}
			}
		}

		<-ticker.C
	}
}

func StartHTTPServer(
	config models.Configuration,
	db *gorm.DB,
	cache c.ICache,
	index *search.CatalogIndex,
) {
	m.InitValidator()

	r := chi.NewRouter()

	r.Use(middleware.Timeout(5 * time.Second))
	r.Use(middleware.RequestID)
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.App.AllowedOrigins,
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{},
		MaxAge:         300,
	}))

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(m.RateLimit(cache, config.App.TrustedProxies, config.App.RequestsPerMinute))

		apiRouter.Mount("/v1/stats", services.StatsService{
			DB:    db,
			Cache: cache,
		}.Routes())

		apiRouter.Mount("/v1/charts", services.ChartService{
			DB: db,
		}.Routes())

		apiRouter.Mount("/v1/catalog", services.CatalogService{
			DB:    db,
			Index: index,
		}.Routes())
	})

	zap.L().Info("HTTP server starting", zap.Int("port", config.App.Port))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.App.Port),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	err := server.ListenAndServe()
	if err != nil {
		zap.L().Error("Failed to start the app", zap.Error(err))
	}
}
