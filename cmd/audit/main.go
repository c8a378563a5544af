package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/loketh/ledger/internal/adapter"
	"github.com/loketh/ledger/internal/audit"
	"github.com/loketh/ledger/internal/config"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

// The audit program rebuilds the ownership index from the purchase log and
// exits non-zero when the stored index disagrees with it.
func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAuditConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ledger-audit",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting index audit")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	auditor := audit.NewAuditor(audit.Config{
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
	}, store.NewPGStore(db), adapter.NewClock())

	report, err := auditor.Run(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Audit failed", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Audit finished",
		zap.Uint64("events", report.Events),
		zap.Uint64("purchases", report.Purchases),
		zap.Int("accounts", report.Accounts),
		zap.Int("mismatches", len(report.Mismatches)),
		zap.Int64("duration_ms", report.DurationMs),
	)

	if !report.OK() {
		for _, m := range report.Mismatches {
			logger.WarnCtx(ctx, "Index mismatch",
				zap.String("kind", string(m.Kind)),
				zap.Uint64("event_id", m.EventID),
				zap.Any("account", m.Account),
				zap.String("expected", m.Expected),
				zap.String("actual", m.Actual),
			)
		}
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}
