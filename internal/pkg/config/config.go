package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, bucket, credentials, etc.)
// - default: Values common across all environments (thresholds, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	S3        S3Config
	Redis     RedisConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Pool      PoolConfig
	Retry     RetryConfig
	Producer  ProducerConfig
	Bonus     BonusConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreBackendMemory   = "memory"
	StoreBackendS3       = "s3"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

type StoreConfig struct {
	Backend   string `envconfig:"STORE_BACKEND" default:"memory"`
	KeyPrefix string `envconfig:"STORE_KEY_PREFIX" default:"promo/"`
}

type S3Config struct {
	Bucket   string `envconfig:"S3_BUCKET" default:"lambda-promo-sessions"`
	Region   string `envconfig:"S3_REGION" default:"eu-central-1"`
	Endpoint string `envconfig:"S3_ENDPOINT"` // MinIO, LocalStack
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"promo"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"promo"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Kyiv"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Requested-With"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"24h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Kyiv"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type PoolConfig struct {
	MinCodesThreshold int   `envconfig:"MIN_CODES_THRESHOLD" default:"3"`
	BatchThreshold    int   `envconfig:"BATCH_THRESHOLD" default:"20"`
	TargetCodes       int   `envconfig:"TARGET_CODES_PER_DENOMINATION" default:"10"`
	Denominations     []int `envconfig:"POOL_DENOMINATIONS" default:"100,200,300,500"`
}

type RetryConfig struct {
	MaxAttempts int           `envconfig:"CAS_MAX_ATTEMPTS" default:"5"`
	BaseDelay   time.Duration `envconfig:"CAS_BASE_DELAY" default:"10ms"`
	MaxDelay    time.Duration `envconfig:"CAS_MAX_DELAY" default:"200ms"`
}

const (
	ProducerKindGenerator = "generator"
	ProducerKindHTTP      = "http"
)

type ProducerConfig struct {
	Kind             string        `envconfig:"PRODUCER_KIND" default:"generator"`
	URL              string        `envconfig:"PRODUCER_URL"`
	Timeout          time.Duration `envconfig:"PRODUCER_TIMEOUT" default:"5m"`
	ReplenishTimeout time.Duration `envconfig:"REPLENISH_TIMEOUT" default:"20m"`
}

type BonusConfig struct {
	AccrualPercent  int `envconfig:"BONUS_ACCRUAL_PERCENT" default:"10"`
	MaxUsagePercent int `envconfig:"BONUS_MAX_USAGE_PERCENT" default:"50"`
	HistoryLimit    int `envconfig:"BONUS_HISTORY_LIMIT" default:"50"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case StoreBackendMemory, StoreBackendS3, StoreBackendRedis, StoreBackendPostgres:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	switch c.Producer.Kind {
	case ProducerKindGenerator:
	case ProducerKindHTTP:
		if c.Producer.URL == "" {
			return fmt.Errorf("PRODUCER_URL is required when PRODUCER_KIND=%s", ProducerKindHTTP)
		}
	default:
		return fmt.Errorf("unknown PRODUCER_KIND %q", c.Producer.Kind)
	}
	if c.Pool.MinCodesThreshold < 0 || c.Pool.BatchThreshold <= 0 {
		return fmt.Errorf("invalid pool thresholds: min=%d batch=%d", c.Pool.MinCodesThreshold, c.Pool.BatchThreshold)
	}
	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("CAS_MAX_ATTEMPTS must be positive, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Backend:   StoreBackendMemory,
			KeyPrefix: "test/",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Kyiv",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Pool: PoolConfig{
			MinCodesThreshold: 3,
			BatchThreshold:    20,
			TargetCodes:       10,
			Denominations:     []int{100, 200},
		},
		Retry: RetryConfig{
			MaxAttempts: 5,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		},
		Producer: ProducerConfig{
			Kind:             ProducerKindGenerator,
			Timeout:          time.Second,
			ReplenishTimeout: 5 * time.Second,
		},
		Bonus: BonusConfig{
			AccrualPercent:  10,
			MaxUsagePercent: 50,
			HistoryLimit:    50,
		},
		RateLimit: RateLimitConfig{
			RPS:   1000,
			Burst: 1000,
		},
	}
}
