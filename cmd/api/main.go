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
	"github.com/loketh/ledger/internal/api/middleware"
	"github.com/loketh/ledger/internal/api/server"
	"github.com/loketh/ledger/internal/config"
	"github.com/loketh/ledger/internal/domain"
	"github.com/loketh/ledger/internal/ledger"
	"github.com/loketh/ledger/internal/logger"
	"github.com/loketh/ledger/internal/messaging"
	"github.com/loketh/ledger/internal/payment"
	"github.com/loketh/ledger/internal/providers/ethereum"
	"github.com/loketh/ledger/internal/providers/jetstream"
	"github.com/loketh/ledger/internal/registry"
	"github.com/loketh/ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ledger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Loketh ledger API",
		zap.String("storage", cfg.Ledger.Storage),
		zap.String("payments", cfg.Ledger.Payments),
	)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Initialize store
	var dataStore store.Store
	switch cfg.Ledger.Storage {
	case config.StoragePostgres:
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
		}

		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
		dataStore = store.NewPGStore(db)
	default:
		logger.WarnCtx(ctx, "Using in-memory storage, ledger state is lost on restart")
		dataStore = store.NewMemoryStore()
	}

	// Initialize payments
	var (
		custody domain.Account
		tokens  payment.TokenProvider
		native  payment.NativeBank
		tracker payment.TransferTracker
	)
	switch cfg.Ledger.Payments {
	case config.PaymentsEthereum:
		ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Ethereum", zap.Error(err))
		}
		defer ethClient.Close()

		transactor, err := ethereum.NewTransactor(ctx, ethClient, ethereum.TransactorConfig{
			PrivateKey:     cfg.Ethereum.CustodyPrivateKey,
			ReceiptTimeout: cfg.Ethereum.ReceiptTimeout,
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to initialize custody transactor", zap.Error(err))
		}

		custody = transactor.Address()
		tokens = ethereum.NewTokenProvider(ethClient, transactor)
		native = ethereum.NewNativeBank(ethClient, transactor)
		tracker = transactor
		logger.InfoCtx(ctx, "Connected to Ethereum", zap.String("custody", custody.Hex()))
	default:
		if cfg.Ledger.CustodyAddress != "" {
			custody, _ = domain.ParseAccount(cfg.Ledger.CustodyAddress)
		}
		logger.WarnCtx(ctx, "Using in-memory payments, balances are lost on restart")
		tokens = payment.NewMemoryTokens()
		native = payment.NewMemoryBank()
		tracker = payment.NewMemoryTracker()
	}

	// Initialize notification publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create notification publisher", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, notifications are only logged")
		publisher = messaging.NewLogPublisher()
	}
	defer publisher.Close()

	// Initialize ledger
	admin, _ := domain.ParseAccount(cfg.Ledger.AdminAddress)
	tokenRegistry := registry.NewTokenRegistry(admin, dataStore, publisher, clock)
	engine := ledger.New(ledger.Config{
		Custody: custody,
		HoldTTL: cfg.Ledger.HoldTTL,
	}, dataStore, tokenRegistry, tokens, native, tracker, publisher, clock)

	if cfg.Ledger.ReconcileInterval > 0 {
		go reconcile(ctx, engine, cfg.Ledger.ReconcileInterval)
	}

	auth, err := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize authenticator", zap.Error(err))
	}

	// Create and start server
	srv := server.New(server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}, engine, tokenRegistry, auth)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}

// reconcile settles pending transfers every interval until ctx is done
func reconcile(ctx context.Context, engine ledger.Ledger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := engine.Reconcile(ctx); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", "reconciler"))
			}
		}
	}
}
