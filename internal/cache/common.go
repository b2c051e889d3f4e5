package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"api/internal/configuration"

	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

type RueidisCache struct {
	client rueidis.Client
}

func newRueidisCache(
	hosts []string,
	password string,
	tlsEnabled bool,
	tlsServerName,
	errorContext string,
) (*RueidisCache, error) {
	clientOption := rueidis.ClientOption{
		InitAddress: hosts,
		Password:    password,
	}

	if tlsEnabled {
		clientOption.TLSConfig = &tls.Config{
			ServerName: tlsServerName,
			MinVersion: tls.VersionTLS12,
		}
	}

	client, err := rueidis.NewClient(clientOption)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", errorContext, err)
	}
	return &RueidisCache{client: client}, nil
}

func (r *RueidisCache) RegisterPlatform(id string) error {
	ctx := context.Background()
	sortedSetKey := configuration.CacheAppIdentityKey
	currentTime := float64(time.Now().Unix())
	err := r.client.Do(ctx, r.client.B().Zadd().Key(sortedSetKey).ScoreMember().ScoreMember(currentTime, id).Build()).
		Error()
	return err
}

func (r *RueidisCache) DeleteInactivePlatform() error {
	ctx := context.Background()
	sortedSetKey := configuration.CacheAppIdentityKey
	currentTime := float64(time.Now().Unix())
	maxLifetime := float64(configuration.CacheMaxAppIdentityLifetime)
	err := r.client.Do(ctx, r.client.B().Zremrangebyscore().Key(sortedSetKey).Min("-inf").Max(fmt.Sprintf("%f", currentTime-maxLifetime)).Build()).
		Error()
	return err
}

type identityStore interface {
	RegisterPlatform(id string) error
	DeleteInactivePlatform() error
}

// refreshIdentity re-registers this instance and prunes stale entries.
// Failures are logged and retried on the next tick; a transient cache
// error must not take the process down.
func refreshIdentity(store identityStore, id string) {
	if err := store.RegisterPlatform(id); err != nil {
		zap.L().Warn("Failed to register app identity", zap.String("platform", id), zap.Error(err))
		return
	}

	if err := store.DeleteInactivePlatform(); err != nil {
		zap.L().Warn("Failed to prune inactive app identities", zap.Error(err))
	}
}

func (r *RueidisCache) StartIdentityTicker(id string) {
	refreshIdentity(r, id)

	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		refreshIdentity(r, id)
	}
}

func (r *RueidisCache) GetRateLimit(userIdentifier string, requestsPerMinute int) (int, error) {
	ctx := context.Background()

	key := fmt.Sprintf(configuration.CacheAppRateLimitKey, userIdentifier)
	count, err := r.client.Do(ctx, r.client.B().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		expireErr := r.client.Do(ctx, r.client.B().Expire().Key(key).Seconds(int64(1*time.Minute.Seconds())).Build()).
			Error()
		if expireErr != nil {
			return 0, expireErr
		}
	}

	if int(count) > requestsPerMinute {
		retryAfter, ttlErr := r.client.Do(ctx, r.client.B().Ttl().Key(key).Build()).AsInt64()
		if ttlErr != nil {
			return 0, ttlErr
		}

		return int(retryAfter), nil
	}

	return 0, nil
}

func (r *RueidisCache) GetSummary(key string) ([]byte, bool, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf(configuration.CacheSummaryKey, key)

	payload, err := r.client.Do(ctx, r.client.B().Get().Key(cacheKey).Build()).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

func (r *RueidisCache) SetSummary(key string, payload []byte) error {
	ctx := context.Background()
	cacheKey := fmt.Sprintf(configuration.CacheSummaryKey, key)

	return r.client.Do(ctx,
		r.client.B().Set().Key(cacheKey).Value(rueidis.BinaryString(payload)).
			ExSeconds(int64(configuration.CacheSummaryTTL)).Build(),
	).Error()
}

func (r *RueidisCache) InvalidateSummary(key string) error {
	ctx := context.Background()
	cacheKey := fmt.Sprintf(configuration.CacheSummaryKey, key)

	return r.client.Do(ctx, r.client.B().Del().Key(cacheKey).Build()).Error()
}

// TryAcquireLock attempts to acquire a distributed lock using SET NX EX.
// Returns true if lock was acquired, false if already held by another instance.
func (r *RueidisCache) TryAcquireLock(key string, instanceID string, ttlSeconds int) (bool, error) {
	ctx := context.Background()
	err := r.client.Do(ctx,
		r.client.B().Set().Key(key).Value(instanceID).Nx().Ex(time.Duration(ttlSeconds)*time.Second).Build(),
	).Error()

	if err != nil {
		if rueidis.IsRedisNil(err) {
			// Key already exists, lock not acquired
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RefreshLock extends the TTL of a lock, but only when this instance still
// holds it.
func (r *RueidisCache) RefreshLock(key string, instanceID string, ttlSeconds int) (bool, error) {
	ctx := context.Background()

	holder, err := r.client.Do(ctx, r.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, err
	}
	if holder != instanceID {
		return false, nil
	}

	err = r.client.Do(ctx,
		r.client.B().Expire().Key(key).Seconds(int64(ttlSeconds)).Build(),
	).Error()

	return err == nil, err
}

func (r *RueidisCache) Close() error {
	r.client.Close()
	return nil
}
