package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	forecastengine "financeos/contexts/finance-core/forecast-engine"
	postgresadapter "financeos/contexts/finance-core/forecast-engine/adapters/postgres"
	workerapp "financeos/contexts/finance-core/forecast-engine/application/workers"
	"financeos/internal/platform/config"
	"financeos/internal/platform/db"
	"financeos/internal/platform/httpserver"
	"financeos/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  workerapp.OutboxRelay
	monthClose   workerapp.MonthCloseWorker
	rollover     workerapp.EnvelopeRolloverWorker
	monthClosed  workerapp.MonthClosedConsumer
	cfg          config.Config
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	module := forecastengine.NewModule(forecastengine.Dependencies{
		Workspaces:     repo,
		Planning:       repo,
		Goals:          repo,
		Envelopes:      repo,
		States:         repo,
		Idempotency:    repo,
		Outbox:         repo,
		Clock:          postgresadapter.SystemClock{},
		IDGen:          postgresadapter.UUIDGenerator{},
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort), cfg.BaseCurrency)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	repo := postgresadapter.NewRepository(pg.DB, logger)
	rollover := workerapp.EnvelopeRolloverWorker{
		Workspaces: repo,
		Envelopes:  repo,
		Outbox:     repo,
		Clock:      postgresadapter.SystemClock{},
		IDGen:      postgresadapter.UUIDGenerator{},
		Logger:     logger,
	}
	return &WorkerApp{
		postgres: pg,
		outboxRelay: workerapp.OutboxRelay{
			Outbox:    repo,
			Publisher: kafka,
			Clock:     postgresadapter.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		monthClose: workerapp.MonthCloseWorker{
			Workspaces: repo,
			Snapshots:  repo,
			Outbox:     repo,
			Clock:      postgresadapter.SystemClock{},
			IDGen:      postgresadapter.UUIDGenerator{},
			Logger:     logger,
		},
		rollover: rollover,
		monthClosed: workerapp.MonthClosedConsumer{
			Subscriber: kafka,
			Rollover:   rollover,
			Disabled:   !cfg.EnableEnvelopeRollover,
			Logger:     logger,
		},
		cfg:          cfg,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	// The consumer rolls envelopes when a month-closed event arrives; the
	// cron leg repeats the same rollover as a sweep for events lost across
	// restarts. Both are idempotent.
	if err := w.monthClosed.Start(ctx); err != nil {
		return fmt.Errorf("start month closed consumer: %w", err)
	}

	scheduler := cron.New(cron.WithLocation(time.UTC))
	if w.cfg.EnableMonthClose || w.cfg.EnableEnvelopeRollover {
		// Close runs before rollover so the snapshot records the cycle the
		// envelopes are about to leave.
		if _, err := scheduler.AddFunc(w.cfg.MonthCloseSchedule, func() {
			if w.cfg.EnableMonthClose {
				if err := w.monthClose.RunOnce(ctx); err != nil {
					w.logger.Error("month close run failed",
						"event", "bootstrap_month_close_failed",
						"module", "internal/app/bootstrap",
						"layer", "platform",
						"error", err.Error(),
					)
				}
			}
			if w.cfg.EnableEnvelopeRollover {
				if err := w.rollover.RunOnce(ctx); err != nil {
					w.logger.Error("envelope rollover run failed",
						"event", "bootstrap_envelope_rollover_failed",
						"module", "internal/app/bootstrap",
						"layer", "platform",
						"error", err.Error(),
					)
				}
			}
		}); err != nil {
			return fmt.Errorf("schedule month close %q: %w", w.cfg.MonthCloseSchedule, err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"month_close_schedule", w.cfg.MonthCloseSchedule,
	)

	for {
		if w.cfg.EnableOutboxRelay {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
