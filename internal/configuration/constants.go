package configuration

const AppName = "lexstats"

const (
	CacheMaxAppIdentityLifetime = 60
	CacheAppIdentityKey         = "app:identity"
	CacheAppRateLimitKey        = "app:ratelimit:%s"
	CacheAppWorkerLockKey       = "app:worker:lock:%s"
	CacheAppWorkerLockTTL       = 60
	CacheAppWorkerLockRefresh   = 55
)

const (
	// CacheSummaryKey stores the precomputed dashboard summary JSON.
	CacheSummaryKey = "stats:summary:%s"
	// CacheSummaryTTL bounds staleness when the refresh worker is down (seconds).
	CacheSummaryTTL = 900
	// SummaryCacheKeyDefault is the single dataset key in use today.
	SummaryCacheKeyDefault = "default"
)

const (
	EventsStatsRefresh = "stats_refresh"
)

// DefaultRequestsPerMinute bounds unauthenticated clients per IP.
const DefaultRequestsPerMinute = 120

var ArrayConfigFields = []string{
	"app.trusted_proxies",
	"app.allowed_origins",
	"cache.redis.hosts",
	"cache.valkey.hosts",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
