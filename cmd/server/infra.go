package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"comply/internal/platform/config"
	"comply/internal/platform/kafka"
	"comply/internal/platform/metrics"
	"comply/internal/platform/postgres"
	"comply/internal/platform/redis"
	"comply/migrations"
	"comply/pkg/platform/httputil"
)

const devSigningKey = "dev-secret-key-change-in-production"

// infra holds the process-wide connections. Each field is nil when the
// backing service is not configured and the in-memory fallback is used.
type infra struct {
	DB          *sql.DB
	Redis       *redis.Client
	Kafka       *kgo.Client
	HTTPMetrics *metrics.Metrics
}

func validateConfig(cfg config.Server) error {
	if !cfg.IsProduction() {
		return nil
	}
	if cfg.JWTSigningKey == devSigningKey {
		return errors.New("COMPLY_JWT_SIGNING_KEY must be set in production")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("COMPLY_DATABASE_URL must be set in production")
	}
	return nil
}

func buildInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	in := &infra{HTTPMetrics: metrics.New()}

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := migrations.Apply(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		in.DB = db
		log.Info("postgres connected", "migrations", len(migrations.Names()))
	} else {
		log.Warn("COMPLY_DATABASE_URL not set, using in-memory stores")
	}

	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.Close(log)
		return nil, err
	}
	in.Redis = client
	if client == nil {
		log.Info("COMPLY_REDIS_URL not set, caching overviews in memory")
	}

	producer, err := kafka.NewClient(cfg.Kafka)
	if err != nil {
		in.Close(log)
		return nil, err
	}
	if producer != nil {
		ensureCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		err := kafka.EnsureTopics(ensureCtx, producer, cfg.Kafka, cfg.Kafka.FindingTopic)
		cancel()
		if err != nil {
			producer.Close()
			in.Close(log)
			return nil, fmt.Errorf("ensure finding topic: %w", err)
		}
		in.Kafka = producer
	} else {
		log.Info("COMPLY_KAFKA_BROKERS not set, finding notifications are logged only")
	}
	return in, nil
}

func (in *infra) Close(log *slog.Logger) {
	if in.Kafka != nil {
		in.Kafka.Close()
	}
	if in.Redis != nil {
		if err := in.Redis.Close(); err != nil {
			log.Warn("failed to close redis", "error", err)
		}
	}
	if in.DB != nil {
		if err := in.DB.Close(); err != nil {
			log.Warn("failed to close postgres", "error", err)
		}
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler reports 503 when a configured backing service is
// unreachable.
func (in *infra) HealthHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: map[string]string{}}
		check := func(name string, err error) {
			if err != nil {
				log.WarnContext(ctx, "health check failed", "dependency", name, "error", err)
				resp.Status = "degraded"
				resp.Checks[name] = "unavailable"
				return
			}
			resp.Checks[name] = "ok"
		}
		if in.DB != nil {
			check("postgres", in.DB.PingContext(ctx))
		}
		if in.Redis != nil {
			check("redis", in.Redis.Health(ctx))
		}
		if in.Kafka != nil {
			check("kafka", in.Kafka.Ping(ctx))
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, status, resp)
	}
}
