package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/dreambox-backend/internal/adapter/grpc"
	dreamboxv1 "github.com/simaogato/dreambox-backend/internal/adapter/grpc/dreambox/v1"
	"github.com/simaogato/dreambox-backend/internal/adapter/ops"
	"github.com/simaogato/dreambox-backend/internal/adapter/paystack"
	"github.com/simaogato/dreambox-backend/internal/adapter/repository/memory"
	"github.com/simaogato/dreambox-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/dreambox-backend/internal/config"
	"github.com/simaogato/dreambox-backend/internal/domain"
	"github.com/simaogato/dreambox-backend/internal/usecase/dashboard"
	"github.com/simaogato/dreambox-backend/internal/usecase/deposit"
	"github.com/simaogato/dreambox-backend/internal/usecase/goals"
	"github.com/simaogato/dreambox-backend/internal/usecase/reconcile"
)

const (
	dbConnectAttempts = 10
	shutdownTimeout   = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dreambox-server: %v\n", err)
		os.Exit(1)
	}
}

// stores bundles the repositories of one backend
type stores struct {
	goals    domain.GoalRepository
	balances domain.BalanceRepository
	intents  domain.IntentRepository
	ledger   domain.LedgerStore
	pinger   ops.Pinger
	close    func() error
}

func run() error {
	// 1. Configuration and logging
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 2. Storage
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	// 3. Payment provider
	provider, err := paystack.NewClient(paystack.Config{
		SecretKey:              cfg.Paystack.SecretKey,
		BaseURL:                cfg.Paystack.BaseURL,
		CallbackURL:            cfg.Paystack.CallbackURL,
		Timeout:                cfg.Paystack.Timeout,
		MaxConsecutiveFailures: cfg.Paystack.MaxConsecutiveFailures,
		OpenTimeout:            cfg.Paystack.OpenTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create payment client: %w", err)
	}

	// 4. Services (Use Cases)
	engine := reconcile.NewEngine(st.intents, st.ledger, provider, reconcile.Config{
		OracleTimeout:     cfg.Reconcile.OracleTimeout,
		CommitTimeout:     cfg.Reconcile.CommitTimeout,
		MaxAttempts:       cfg.Reconcile.MaxAttempts,
		RetryBackoff:      cfg.Reconcile.RetryBackoff,
		StrictAmountCheck: cfg.Reconcile.StrictAmountCheck,
	}, logger)
	depositService := deposit.NewDepositService(st.goals, st.intents, provider, logger)
	goalService := goals.NewGoalService(st.goals, logger)
	dashboardService := dashboard.NewDashboardService(st.goals, st.balances)

	// 5. gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.ObservabilityInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken),
			grpcadapter.IdentityInterceptor(),
		),
	)
	dreamboxv1.RegisterSavingsServiceServer(grpcServer,
		grpcadapter.NewServer(depositService, engine, goalService, dashboardService, logger))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(dreamboxv1.SavingsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register reflection service on gRPC server (useful for grpcurl)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	// 6. Ops HTTP server
	opsServer := &http.Server{
		Addr:              cfg.OpsAddr,
		Handler:           ops.NewRouter(st.pinger, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()
	go func() {
		logger.Info("ops server listening", zap.String("addr", cfg.OpsAddr))
		if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("ops server: %w", err)
		}
	}()

	// Graceful shutdown
	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down gracefully")
	case serveErr = <-errCh:
		logger.Error("server failed", zap.Error(serveErr))
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("ops server shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	logger.Info("servers stopped")
	return serveErr
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level())
	return zcfg.Build()
}

func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	if cfg.Store == config.StoreMemory {
		logger.Warn("using in-memory store, balances are lost on restart")
		store := memory.NewStore()
		return &stores{
			goals:    store,
			balances: store,
			intents:  store,
			ledger:   store,
			pinger:   store,
			close:    func() error { return nil },
		}, nil
	}

	db, err := postgres.NewDB(cfg.Database.ConnString(), postgres.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Postgres may still be starting when the container comes up
	if err := waitForDB(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("database ready")

	return &stores{
		goals:    postgres.NewGoalRepository(db),
		balances: postgres.NewBalanceRepository(db),
		intents:  postgres.NewIntentRepository(db),
		ledger:   postgres.NewLedgerStore(db, cfg.Database.LockTimeout),
		pinger:   db,
		close:    db.Close,
	}, nil
}

func waitForDB(ctx context.Context, db *postgres.DB, logger *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		if err = db.Ping(ctx); err == nil {
			return nil
		}
		logger.Info("waiting for database", zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", dbConnectAttempts, err)
}
