package main

import (
	"log/slog"
	"time"

	complianceHandler "comply/internal/compliance/handler"
	complianceMetrics "comply/internal/compliance/metrics"
	"comply/internal/compliance/ports"
	complianceService "comply/internal/compliance/service"
	complianceStore "comply/internal/compliance/store"
	formsHandler "comply/internal/evidence/handler"
	findingHandler "comply/internal/finding/handler"
	findingMetrics "comply/internal/finding/metrics"
	"comply/internal/finding/notifier"
	findingService "comply/internal/finding/service"
	findingStore "comply/internal/finding/store"
	httpapi "comply/internal/http"
	jwttoken "comply/internal/jwt_token"
	"comply/internal/platform/config"
	submissionHandler "comply/internal/submission/handler"
	submissionMetrics "comply/internal/submission/metrics"
	submissionService "comply/internal/submission/service"
	submissionStore "comply/internal/submission/store"
	taskStore "comply/internal/task/store"
	"comply/pkg/platform/audit"
	auditPublisher "comply/pkg/platform/audit/publishers/compliance"
	auditMemory "comply/pkg/platform/audit/store/memory"
	auditPostgres "comply/pkg/platform/audit/store/postgres"
	"comply/pkg/platform/circuit"
	authmw "comply/pkg/platform/middleware/auth"
	txcontext "comply/pkg/platform/tx"
)

const notifierCooldown = 30 * time.Second

type app struct {
	Validator    authmw.JWTValidator
	Global       []httpapi.Registrar
	Organization []httpapi.Registrar
}

// stores groups the persistence used by the services, Postgres-backed when a
// database is configured.
type stores struct {
	tx          txcontext.Runner
	audit       audit.Store
	submissions submissionService.Store
	findings    findingService.Store
	tasks       ports.TaskReader
	policies    ports.PolicyScorer
	people      ports.PeopleScorer
}

func buildStores(in *infra) stores {
	if in.DB != nil {
		scorer := complianceStore.NewPostgresScorer(in.DB)
		return stores{
			tx:          txcontext.NewSQLRunner(in.DB),
			audit:       auditPostgres.New(in.DB),
			submissions: submissionStore.NewPostgres(in.DB),
			findings:    findingStore.NewPostgres(in.DB),
			tasks:       taskStore.NewPostgres(in.DB),
			policies:    scorer,
			people:      scorer,
		}
	}
	scorer := complianceStore.NewInMemoryScorer()
	return stores{
		tx:          txcontext.NoopRunner{},
		audit:       auditMemory.NewInMemoryStore(),
		submissions: submissionStore.NewInMemory(),
		findings:    findingStore.NewInMemory(),
		tasks:       taskStore.NewInMemory(),
		policies:    scorer,
		people:      scorer,
	}
}

func buildOverviewCache(cfg config.Server, in *infra) ports.OverviewCache {
	if in.Redis != nil {
		return complianceStore.NewRedisCache(in.Redis.Client, in.Redis.KeyPrefix(), cfg.OverviewCacheTTL)
	}
	return complianceStore.NewInMemoryCache(cfg.OverviewCacheTTL)
}

func buildNotifier(cfg config.Server, in *infra, log *slog.Logger) findingService.Notifier {
	fallback := notifier.NewLogPublisher(log)
	if in.Kafka == nil {
		return fallback
	}
	return notifier.NewBreakerPublisher(
		notifier.NewKafkaPublisher(in.Kafka, cfg.Kafka.FindingTopic),
		fallback,
		circuit.New("finding-notifications"),
		notifierCooldown,
		log,
	)
}

func buildApp(cfg config.Server, in *infra, log *slog.Logger) *app {
	st := buildStores(in)

	auditor := auditPublisher.New(st.audit,
		auditPublisher.WithLogger(log),
		auditPublisher.WithMetrics(auditPublisher.NewMetrics()),
	)

	// Submissions change document freshness and drop the cached overview.
	cache := buildOverviewCache(cfg, in)

	submissions := submissionService.New(st.submissions,
		submissionService.WithLogger(log),
		submissionService.WithMetrics(submissionMetrics.New()),
		submissionService.WithAuditPublisher(auditor),
		submissionService.WithOverviewCache(cache),
		submissionService.WithTxRunner(st.tx),
	)

	compliance := complianceService.New(submissions, st.tasks, st.policies, st.people,
		complianceService.WithLogger(log),
		complianceService.WithMetrics(complianceMetrics.New()),
		complianceService.WithCache(cache),
		complianceService.WithStalenessWindow(cfg.StalenessWindow),
	)

	findings := findingService.New(st.findings, cfg.AppBaseURL,
		findingService.WithLogger(log),
		findingService.WithMetrics(findingMetrics.New()),
		findingService.WithAuditPublisher(auditor),
		findingService.WithNotifier(buildNotifier(cfg, in, log)),
		findingService.WithSubmissionLookup(submissions),
		findingService.WithTxRunner(st.tx),
	)

	return &app{
		Validator: jwttoken.NewJWTServiceAdapter(jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer)),
		Global: []httpapi.Registrar{
			formsHandler.New(log),
		},
		Organization: []httpapi.Registrar{
			complianceHandler.New(compliance, log),
			submissionHandler.New(submissions, log),
			findingHandler.New(findings, log),
		},
	}
}
