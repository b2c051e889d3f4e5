package cache

import (
	"api/internal/models"
)

func NewRedisCache(config *models.RedisCacheConfiguration) (ICache, error) {
	return newRueidisCache(
		config.Hosts,
		config.Password,
		config.TLSEnabled,
		config.TLSServerName,
		"redis",
	)
}

func NewValkeyCache(config *models.ValkeyCacheConfiguration) (ICache, error) {
	return newRueidisCache(
		config.Hosts,
		config.Password,
		config.TLSEnabled,
		config.TLSServerName,
		"valkey",
	)
}
