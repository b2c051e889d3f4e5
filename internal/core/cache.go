package core

import (
	c "api/internal/cache"
	"api/internal/models"

	"go.uber.org/zap"
)

// NewCache builds the configured cache client. Returns nil when no cache
// is configured; callers treat a nil cache as a soft-disable.
func NewCache(config models.CacheConfiguration) c.ICache {
	var (
		cache c.ICache
		err   error
	)

	switch config.Type {
	case "redis":
		cache, err = c.NewRedisCache(config.Redis)
	case "valkey":
		cache, err = c.NewValkeyCache(config.Valkey)
	default:
		zap.L().Info("No cache configured, summary caching and rate limiting disabled")
		return nil
	}

	if err != nil {
		zap.L().Fatal("Failed to initialize cache", zap.String("type", config.Type), zap.Error(err))
	}

	zap.L().Info("Initialized cache", zap.String("type", config.Type))

	return cache
}
