// Command server runs the account-lockout service: an HTTP API for
// reactivation and attempt recording, and (when Kafka is configured) a
// consumer that drives the lockout engine from attempt-change events.
//
// main wires dependencies explicitly; no package-level clients. Backends left
// unconfigured fall back to in-memory implementations so the process runs
// standalone in development.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"credlock/internal/attempts"
	directorymemory "credlock/internal/directory/memory"
	directorypostgres "credlock/internal/directory/postgres"
	"credlock/internal/lockout/engine"
	"credlock/internal/lockout/metrics"
	"credlock/internal/lockout/models"
	"credlock/internal/lockout/ports"
	"credlock/internal/lockout/reactivate"
	"credlock/internal/platform/config"
	"credlock/internal/platform/httpserver"
	"credlock/internal/platform/logger"
	platformredis "credlock/internal/platform/redis"
	"credlock/internal/transport/kafka"
	"credlock/pkg/audit"
	auditmemory "credlock/pkg/audit/store/memory"
	auditpostgres "credlock/pkg/audit/store/postgres"

	httptransport "credlock/internal/transport/http"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lockoutMetrics := metrics.New()
	checks := map[string]httptransport.HealthChecker{}

	// Directory and audit sink share the Postgres connection when configured.
	var (
		db         *sql.DB
		profiles   ports.Profiles
		directory  ports.Directory
		auditStore audit.Store
	)
	if cfg.PostgresDSN != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		store := directorypostgres.New(db)
		profiles, directory = store, store
		auditStore = auditpostgres.New(db)
		checks["postgres"] = dbHealth{db}
	} else {
		store := directorymemory.New()
		seedDevAccounts(store, log)
		profiles, directory = store, store
		auditStore = auditmemory.NewInMemoryStore()
		log.Warn("no POSTGRES_DSN set, using in-memory directory")
	}

	publisher := audit.NewPublisher(auditStore, audit.WithAsyncBuffer(256))
	defer publisher.Close()

	eng, err := engine.New(profiles, directory,
		engine.WithLogger(log),
		engine.WithAuditPublisher(publisher),
		engine.WithMetrics(lockoutMetrics),
		engine.WithThreshold(cfg.FailureThreshold),
	)
	if err != nil {
		return err
	}

	reactivation, err := reactivate.New(directory,
		reactivate.WithLogger(log),
		reactivate.WithAuditPublisher(publisher),
		reactivate.WithMetrics(lockoutMetrics),
	)
	if err != nil {
		return err
	}

	// Attempt counters live in Redis when configured.
	var attemptStore attempts.Store
	if redisClient, err := platformredis.New(cfg.Redis); err != nil {
		return err
	} else if redisClient != nil {
		defer redisClient.Close()
		attemptStore = attempts.NewRedisStore(redisClient)
		checks["redis"] = redisClient
	} else {
		attemptStore = attempts.NewInMemoryStore()
		log.Warn("no REDIS_URL set, using in-memory attempt counters")
	}

	// Without Kafka, change events feed the engine in process.
	var (
		notifier attempts.Notifier
		consumer *kafka.Consumer
	)
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return err
		}
		defer producer.Close()
		if err := producer.EnsureTopic(ctx, 6); err != nil {
			return err
		}
		notifier = producer

		consumer, err = kafka.NewConsumer(cfg.Kafka, eng, log)
		if err != nil {
			return err
		}
	} else {
		notifier = attempts.NotifierFunc(eng.Process)
		log.Warn("no KAFKA_BROKERS set, processing attempt changes in process")
	}

	attemptService, err := attempts.New(attemptStore, notifier, attempts.WithLogger(log))
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(
		httptransport.NewReactivationHandler(reactivation, log),
		httptransport.NewAttemptsHandler(attemptService, log),
		checks,
	)
	srv := httpserver.New(cfg.Addr, router)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("starting credlock",
			"addr", cfg.Addr,
			"failure_threshold", cfg.FailureThreshold,
			"kafka", cfg.Kafka.Enabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if consumer != nil {
		group.Go(func() error {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

type dbHealth struct {
	db *sql.DB
}

func (h dbHealth) Health(ctx context.Context) error {
	return h.db.PingContext(ctx)
}

// seedDevAccounts gives the in-memory directory something to lock in local
// runs. Never reached when Postgres is configured.
func seedDevAccounts(store *directorymemory.Store, log *slog.Logger) {
	for _, account := range []models.DirectoryAccount{
		{Username: "alice", Email: "alice@example.com"},
		{Username: "bob", Email: "bob@example.com"},
	} {
		seeded := store.Seed(account)
		log.Debug("seeded dev account", "username", seeded.Username, "uid", seeded.UID)
	}
}
