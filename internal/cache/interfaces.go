package cache

type ICache interface {
	RegisterPlatform(id string) error
	DeleteInactivePlatform() error
	StartIdentityTicker(id string)

	GetRateLimit(userIdentifier string, requestsPerMinute int) (int, error)

	// GetSummary returns the cached summary payload for a dataset key.
	// The second return is false on a cache miss.
	GetSummary(key string) ([]byte, bool, error)
	// SetSummary stores a summary payload with the configured TTL.
	SetSummary(key string, payload []byte) error
	// InvalidateSummary drops a cached summary (called on dataset reload).
	InvalidateSummary(key string) error

	// TryAcquireLock attempts to acquire a distributed worker lock.
	TryAcquireLock(key string, instanceID string, ttlSeconds int) (bool, error)
	// RefreshLock extends a lock this instance already holds.
	RefreshLock(key string, instanceID string, ttlSeconds int) (bool, error)

	Close() error
}
