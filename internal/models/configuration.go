package models

type Configuration struct {
	Profile  string                `mapstructure:"profile"`
	App      AppConfiguration      `mapstructure:"app"      validate:"required"`
	Database DatabaseConfiguration `mapstructure:"database" validate:"required"`
	Cache    CacheConfiguration    `mapstructure:"cache"`
	Events   EventsConfiguration   `mapstructure:"events"   validate:"required"`
	Dataset  DatasetConfiguration  `mapstructure:"dataset"`
}

type AppConfiguration struct {
	LogLevel               string   `mapstructure:"log_level"                validate:"oneof=debug info warn error fatal panic"`
	Port                   int      `mapstructure:"port"                     validate:"gte=80,lte=65535"`
	AllowedOrigins         []string `mapstructure:"allowed_origins"          validate:"required"`
	TrustedProxies         []string `mapstructure:"trusted_proxies"`
	RequestsPerMinute      int      `mapstructure:"requests_per_minute"      validate:"gte=1"`
	RefreshIntervalMinutes int      `mapstructure:"refresh_interval_minutes" validate:"gte=1"`
}

type DatabaseConfiguration struct {
	Type     string `mapstructure:"type"     validate:"required,oneof=postgres sqlite"`
	Host     string `mapstructure:"host"     validate:"required_if=Type postgres"`
	Port     int32  `mapstructure:"port"`
	User     string `mapstructure:"user"     validate:"required_if=Type postgres"`
	Password string `mapstructure:"password" validate:"required_if=Type postgres"`
	Name     string `mapstructure:"name"     validate:"required_if=Type postgres"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"     validate:"required_if=Type sqlite"`
}

type CacheConfiguration struct {
	Type   string                    `mapstructure:"type"   validate:"omitempty,oneof=redis valkey"`
	Redis  *RedisCacheConfiguration  `mapstructure:"redis"  validate:"required_if=Type redis"`
	Valkey *ValkeyCacheConfiguration `mapstructure:"valkey" validate:"required_if=Type valkey"`
}

type RedisCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type ValkeyCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type EventsConfiguration struct {
	Type   string                        `mapstructure:"type"   validate:"required,oneof=memory"`
	Queues map[string]QueueConfiguration `mapstructure:"queues" validate:"required,dive"`
}

type QueueConfiguration struct {
	Name string `mapstructure:"name" validate:"required"`
}

// DatasetConfiguration selects where the aggregate dataset comes from.
// With neither a path nor a URL configured, the embedded default is used.
type DatasetConfiguration struct {
	Path string `mapstructure:"path"`
	URL  string `mapstructure:"url" validate:"omitempty,http_url"`
}
