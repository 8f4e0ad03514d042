package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	platformstrings "comply/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	Environment   string
	LogLevel      string
	AppBaseURL    string
	JWTSigningKey string
	JWTIssuer     string
	AdminToken    string
	DatabaseURL   string
	Redis         RedisConfig
	Kafka         KafkaConfig

	// OverviewCacheTTL bounds how long a computed compliance overview is
	// served from cache.
	OverviewCacheTTL time.Duration
	// StalenessWindow is the fallback age after which a document is
	// outstanding.
	StalenessWindow time.Duration
	ShutdownTimeout time.Duration
}

// RedisConfig configures the shared Redis client. An empty URL disables
// Redis and the overview cache.
type RedisConfig struct {
	URL          string
	KeyPrefix    string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the finding notification producer. No brokers
// means notifications are only logged.
type KafkaConfig struct {
	Brokers           []string
	FindingTopic      string
	Partitions        int32
	ReplicationFactor int16
}

const defaultStalenessWindow = 6 * 30 * 24 * time.Hour

// FromEnv builds the config from COMPLY_* environment variables so main
// stays lean.
func FromEnv() Server {
	return Server{
		Addr:          envOr("COMPLY_ADDR", ":8080"),
		Environment:   envOr("COMPLY_ENV", "local"),
		LogLevel:      envOr("COMPLY_LOG_LEVEL", "info"),
		AppBaseURL:    envOr("COMPLY_APP_BASE_URL", "http://localhost:3000"),
		JWTSigningKey: envOr("COMPLY_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:     os.Getenv("COMPLY_JWT_ISSUER"),
		AdminToken:    os.Getenv("COMPLY_ADMIN_TOKEN"),
		DatabaseURL:   os.Getenv("COMPLY_DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("COMPLY_REDIS_URL"),
			KeyPrefix:    envOr("COMPLY_REDIS_KEY_PREFIX", "comply:"),
			PoolSize:     envInt("COMPLY_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("COMPLY_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("COMPLY_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("COMPLY_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("COMPLY_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:           envList("COMPLY_KAFKA_BROKERS"),
			FindingTopic:      envOr("COMPLY_KAFKA_FINDING_TOPIC", "comply.finding-notifications"),
			Partitions:        int32(envInt("COMPLY_KAFKA_PARTITIONS", 3)),
			ReplicationFactor: int16(envInt("COMPLY_KAFKA_REPLICATION_FACTOR", 1)),
		},
		OverviewCacheTTL: envDuration("COMPLY_OVERVIEW_CACHE_TTL", 5*time.Minute),
		StalenessWindow:  envDuration("COMPLY_STALENESS_WINDOW", defaultStalenessWindow),
		ShutdownTimeout:  envDuration("COMPLY_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// IsProduction reports whether dev defaults must be rejected.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envList(key string) []string {
	return platformstrings.SplitList(os.Getenv(key), ",")
}
