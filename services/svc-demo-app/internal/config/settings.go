package config

import (
	"time"

	"github.com/architeacher/k8s-simulator/pkg/circuitbreaker"
)

// Compile time variables are set by -ldflags.
var (
	ServiceVersion string
	CommitSHA      string
)

const (
	Development = 1 << iota
	Sandbox
	Staging
	Production
)

const (
	// NoSecretConfigured is the SECRET_TOKEN placeholder used when no Secret is mounted.
	NoSecretConfigured = "no-secret-configured"

	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"

	redactedValue = "[REDACTED]"
)

type (
	ServiceConfig struct {
		App                   App                   `json:"app"`
		SecretsStorage        SecretsStorage        `json:"secrets_storage"`
		PublicHTTPServer      PublicHTTPServer      `json:"public_http_server"`
		AdminHTTPServer       AdminHTTPServer       `json:"admin_http_server"`
		GRPCHealthServer      GRPCHealthServer      `json:"grpc_health_server"`
		Database              Database              `json:"database"`
		Cache                 Cache                 `json:"cache"`
		ThrottledRateLimiting ThrottledRateLimiting `json:"throttled_rate_limiting"`
		QueryCache            QueryCache            `json:"query_cache"`
		Logging               Logging               `json:"logging"`
		Telemetry             Telemetry             `json:"telemetry"`
	}

	App struct {
		Name           string      `envconfig:"APP_NAME" default:"k8s-demo-app" json:"name"`
		ServiceVersion string      `envconfig:"APP_SERVICE_VERSION" default:"1.0.0" json:"service_version"`
		CommitSHA      string      `envconfig:"APP_COMMIT_SHA" default:"" json:"commit_sha,omitempty"`
		PodName        string      `envconfig:"POD_NAME" default:"" json:"pod_name,omitempty"`
		SecretToken    string      `envconfig:"SECRET_TOKEN" default:"no-secret-configured" json:"secret_token"`
		Env            Environment `json:"environment"`
	}

	Environment struct {
		Name string `envconfig:"APP_ENV" default:"development" json:"env"`
	}

	SecretsStorage struct {
		Enabled       bool          `envconfig:"VAULT_ENABLED" default:"false" json:"enabled"`
		Address       string        `envconfig:"VAULT_ADDRESS" default:"http://vault:8200" json:"address"`
		Token         string        `envconfig:"VAULT_TOKEN" default:"" json:"token,omitempty"`
		RoleID        string        `envconfig:"VAULT_ROLE_ID" default:"" json:"role_id,omitempty"`
		SecretID      string        `envconfig:"VAULT_SECRET_ID" default:"" json:"secret_id,omitempty"`
		AuthMethod    string        `envconfig:"VAULT_AUTH_METHOD" default:"token" json:"auth_method"`
		MountPath     string        `envconfig:"VAULT_MOUNT_PATH" default:"k8s-demo-app" json:"mount_path"`
		Namespace     string        `envconfig:"VAULT_NAMESPACE" default:"" json:"namespace,omitempty"`
		Timeout       time.Duration `envconfig:"VAULT_TIMEOUT" default:"30s" json:"timeout"`
		MaxRetries    uint          `envconfig:"VAULT_MAX_RETRIES" default:"3" json:"max_retries"`
		RetryDelay    time.Duration `envconfig:"VAULT_RETRY_DELAY" default:"1s" json:"retry_delay"`
		TLSSkipVerify bool          `envconfig:"VAULT_TLS_SKIP_VERIFY" default:"false" json:"tls_skip_verify"`
		PollInterval  time.Duration `envconfig:"VAULT_POLL_INTERVAL" default:"5m" json:"poll_interval"`
	}

	PublicHTTPServer struct {
		Host            string        `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0" json:"host"`
		Port            uint          `envconfig:"HTTP_SERVER_PORT" default:"8000" json:"port"`
		ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"15s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
	}

	AdminHTTPServer struct {
		Enabled         bool          `envconfig:"ADMIN_HTTP_SERVER_ENABLED" default:"true" json:"enabled"`
		Host            string        `envconfig:"ADMIN_HTTP_SERVER_HOST" default:"127.0.0.1" json:"host"`
		Port            uint          `envconfig:"ADMIN_HTTP_SERVER_PORT" default:"8001" json:"port"`
		ReadTimeout     time.Duration `envconfig:"ADMIN_HTTP_READ_TIMEOUT" default:"15s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"ADMIN_HTTP_WRITE_TIMEOUT" default:"15s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"ADMIN_HTTP_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"ADMIN_HTTP_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
	}

	GRPCHealthServer struct {
		Enabled         bool          `envconfig:"GRPC_HEALTH_ENABLED" default:"true" json:"enabled"`
		Host            string        `envconfig:"GRPC_SERVER_HOST" default:"0.0.0.0" json:"host"`
		Port            uint          `envconfig:"GRPC_SERVER_PORT" default:"9090" json:"port"`
		ShutdownTimeout time.Duration `envconfig:"GRPC_SHUTDOWN_TIMEOUT" default:"10s" json:"shutdown_timeout"`
	}

	Database struct {
		URL             string               `envconfig:"DATABASE_URL" default:"" json:"url,omitempty"`
		MaxConnections  int32                `envconfig:"DATABASE_MAX_CONNECTIONS" default:"10" json:"max_connections"`
		MinConnections  int32                `envconfig:"DATABASE_MIN_CONNECTIONS" default:"0" json:"min_connections"`
		ConnectTimeout  time.Duration        `envconfig:"DATABASE_CONNECT_TIMEOUT" default:"5s" json:"connect_timeout"`
		PingTimeout     time.Duration        `envconfig:"DATABASE_PING_TIMEOUT" default:"2s" json:"ping_timeout"`
		MaxConnLifetime time.Duration        `envconfig:"DATABASE_MAX_CONN_LIFETIME" default:"1h" json:"max_conn_lifetime"`
		MaxConnIdleTime time.Duration        `envconfig:"DATABASE_MAX_CONN_IDLE_TIME" default:"30m" json:"max_conn_idle_time"`
		CircuitBreaker  CircuitBreakerConfig `json:"circuit_breaker"`
	}

	CircuitBreakerConfig struct {
		Enabled          bool          `envconfig:"DATABASE_CB_ENABLED" default:"true" json:"enabled"`
		MaxRequests      uint          `envconfig:"DATABASE_CB_MAX_REQUESTS" default:"1" json:"max_requests"`
		Interval         time.Duration `envconfig:"DATABASE_CB_INTERVAL" default:"30s" json:"interval"`
		Timeout          time.Duration `envconfig:"DATABASE_CB_TIMEOUT" default:"10s" json:"timeout"`
		FailureThreshold uint          `envconfig:"DATABASE_CB_FAILURE_THRESHOLD" default:"3" json:"failure_threshold"`
	}

	Cache struct {
		Address      string        `envconfig:"CACHE_ADDRESS" default:"keydb:6379" json:"address"`
		Password     string        `envconfig:"CACHE_PASSWORD" default:"" json:"password,omitempty"`
		DB           uint          `envconfig:"CACHE_DB" default:"0" json:"db"`
		PoolSize     uint          `envconfig:"CACHE_POOL_SIZE" default:"10" json:"pool_size"`
		DialTimeout  time.Duration `envconfig:"CACHE_DIAL_TIMEOUT" default:"5s" json:"dial_timeout"`
		ReadTimeout  time.Duration `envconfig:"CACHE_READ_TIMEOUT" default:"3s" json:"read_timeout"`
		WriteTimeout time.Duration `envconfig:"CACHE_WRITE_TIMEOUT" default:"3s" json:"write_timeout"`
		MaxRetries   uint          `envconfig:"CACHE_MAX_RETRIES" default:"3" json:"max_retries"`
	}

	ThrottledRateLimiting struct {
		Enabled           bool   `envconfig:"RATE_LIMITING_ENABLED" default:"false" json:"enabled"`
		Store             string `envconfig:"RATE_LIMITING_STORE" default:"memory" json:"store"`
		RequestsPerSecond uint   `envconfig:"RATE_LIMITING_REQUESTS_PER_SECOND" default:"5" json:"requests_per_second"`
		BurstSize         uint   `envconfig:"RATE_LIMITING_BURST_SIZE" default:"10" json:"burst_size"`
		EnableIPLimiting  bool   `envconfig:"RATE_LIMITING_ENABLE_IP_LIMITING" default:"true" json:"enable_ip_limiting"`
		MaxKeys           uint   `envconfig:"RATE_LIMITING_MAX_KEYS" default:"1000" json:"max_keys"`
		GracefulDegraded  bool   `envconfig:"RATE_LIMITING_GRACEFUL_DEGRADED" default:"true" json:"graceful_degraded"`
	}

	QueryCache struct {
		Enabled           bool          `envconfig:"QUERY_CACHE_ENABLED" default:"true" json:"enabled"`
		DatabaseStatusTTL time.Duration `envconfig:"QUERY_CACHE_DATABASE_STATUS_TTL" default:"2s" json:"database_status_ttl"`
	}

	Logging struct {
		Level     string    `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format    string    `envconfig:"LOG_FORMAT" default:"json" json:"format"`
		AccessLog AccessLog `json:"access_log"`
	}

	AccessLog struct {
		Enabled            bool `envconfig:"ACCESS_LOG_ENABLED" default:"true" json:"enabled"`
		LogHealthChecks    bool `envconfig:"ACCESS_LOG_HEALTH_CHECKS" default:"false" json:"log_health_checks"`
		IncludeQueryParams bool `envconfig:"ACCESS_LOG_INCLUDE_QUERY_PARAMS" default:"true" json:"include_query_params"`
	}

	Telemetry struct {
		Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false" json:"enabled"`
		ExporterType string  `envconfig:"OTEL_EXPORTER" default:"grpc" json:"exporter_type"`
		OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"" json:"otlp_endpoint"`
		Metrics      Metrics `json:"metrics"`
		Traces       Traces  `json:"traces"`
	}

	Metrics struct {
		Enabled   bool   `envconfig:"METRICS_ENABLED" default:"true" json:"enabled"`
		Namespace string `envconfig:"METRICS_NAMESPACE" default:"app" json:"namespace"`
	}

	Traces struct {
		Enabled      bool    `envconfig:"TRACES_ENABLED" default:"false" json:"enabled"`
		SamplerRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1.0" json:"sampler_ratio"`
	}
)

// Breaker converts the settings for pkg/circuitbreaker.
func (c CircuitBreakerConfig) Breaker(name string) circuitbreaker.Config {
	return circuitbreaker.Config{
		Name:             name,
		Enabled:          c.Enabled,
		MaxRequests:      c.MaxRequests,
		Interval:         c.Interval,
		Timeout:          c.Timeout,
		FailureThreshold: c.FailureThreshold,
	}
}

func (c *ServiceConfig) GetEnvironment() int {
	switch c.App.Env.Name {
	case "production", "prod":
		return Production
	case "staging", "stg":
		return Staging
	case "sandbox", "sbx":
		return Sandbox
	default:
		return Development
	}
}

func (c *ServiceConfig) IsProduction() bool {
	return c.GetEnvironment() == Production
}

// SecretConfigured reports whether a real SECRET_TOKEN was injected.
func (a App) SecretConfigured() bool {
	return a.SecretToken != "" && a.SecretToken != NoSecretConfigured
}

// Redacted returns a copy safe to print or serve.
func (c ServiceConfig) Redacted() ServiceConfig {
	redact := func(v *string) {
		if *v != "" {
			*v = redactedValue
		}
	}

	if c.App.SecretConfigured() {
		c.App.SecretToken = redactedValue
	}

	redact(&c.SecretsStorage.Token)
	redact(&c.SecretsStorage.RoleID)
	redact(&c.SecretsStorage.SecretID)
	redact(&c.Cache.Password)

	if c.Database.URL != "" {
		c.Database.URL = redactDSN(c.Database.URL)
	}

	return c
}
