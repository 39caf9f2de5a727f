package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a2sh3r/aitrade/internal/config"
	"github.com/a2sh3r/aitrade/internal/database"
	"github.com/a2sh3r/aitrade/internal/handlers"
	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/payflow"
	"github.com/a2sh3r/aitrade/internal/processor"
	"github.com/a2sh3r/aitrade/internal/realtime"
	"github.com/a2sh3r/aitrade/internal/repository"
	"github.com/a2sh3r/aitrade/internal/service"
	"github.com/a2sh3r/aitrade/internal/session"
	"github.com/a2sh3r/aitrade/internal/telegram"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type worker func(ctx context.Context) error

type App struct {
	server  *http.Server
	db      *sql.DB
	redis   *redis.Client
	workers []worker

	cancel context.CancelFunc
	group  *errgroup.Group
}

func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	hub := realtime.NewHub()
	listener := realtime.NewListener(cfg.DatabaseURI, hub)

	relay := telegram.NewRelay(telegram.NewClient(cfg.TelegramAPIURL, cfg.TelegramBotToken), cfg.TelegramChatIDs)
	if len(cfg.TelegramChatIDs) == 0 {
		logger.Log.Warn("no telegram chat configured, notifications will not be delivered")
	}

	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	affiliateRepo := repository.NewAffiliateRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	walletRepo := repository.NewWalletRepository(db)

	affiliateService := service.NewAffiliateService(affiliateRepo, cfg.ActivationThreshold)
	userService := service.NewUserService(userRepo, affiliateService)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, affiliateService, relay)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, creditRepo, userRepo, relay)
	creditService := service.NewCreditService(creditRepo, userRepo)
	payoutService := service.NewPayoutService(payoutRepo, creditRepo, userRepo)
	leadService := service.NewLeadService(leadRepo, relay)
	walletService := service.NewWalletService(walletRepo)

	handler := handlers.NewHandler(handlers.Deps{
		Users:       userService,
		Payments:    paymentService,
		Withdrawals: withdrawalService,
		Credits:     creditService,
		Affiliate:   affiliateService,
		Payouts:     payoutService,
		Leads:       leadService,
		Wallets:     walletService,
		Sessions:    sessions,
		Relay:       relay,
		FlowBackend: payflow.Backend{
			Payments: paymentService,
			Credits:  creditService,
			Changes:  hub,
			Sessions: sessions,
		},
		FlowDefaults: payflow.Options{
			Threshold:      cfg.ActivationThreshold,
			PollInterval:   cfg.PaymentPollInterval,
			CreditInterval: cfg.CreditPollInterval,
			RedirectDelay:  cfg.RedirectDelay,
			DashboardRoute: cfg.DashboardRoute,
			AuthRoute:      cfg.AuthRoute,
		},
		SecretKey: cfg.SecretKey,
		TokenTTL:  cfg.SessionTTL,
	})

	r := handlers.NewRouter(handler, handlers.RouterConfig{
		SecretKey:   cfg.SecretKey,
		RelayKey:    cfg.RelayKey,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
	})

	server := &http.Server{
		Addr:              cfg.RunAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	workers := []worker{listener.Run}
	if cfg.ProcessorAddress != "" {
		confirmer := service.NewPaymentConfirmer(paymentRepo, paymentService, processor.NewClient(cfg.ProcessorAddress), cfg.ConfirmInterval)
		workers = append(workers, func(ctx context.Context) error {
			confirmer.Run(ctx)
			return nil
		})
	} else {
		logger.Log.Info("payment processor not configured, confirmer disabled")
	}

	return &App{
		server:  server,
		db:      db,
		redis:   rdb,
		workers: workers,
	}, nil
}

// Run starts the HTTP server and the background workers and returns immediately.
func (a *App) Run(ctx context.Context) error {
	workerCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	g, gctx := errgroup.WithContext(workerCtx)
	for _, w := range a.workers {
		g.Go(func() error {
			err := w(gctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Log.Error("background worker stopped", zap.Error(err))
			}
			return err
		})
	}
	a.group = g

	go func() {
		logger.Log.Info("starting server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	if a.cancel != nil {
		a.cancel()
		_ = a.group.Wait()
	}

	logger.Log.Info("closing redis connection...")
	if err := a.redis.Close(); err != nil {
		logger.Log.Error("failed to close redis", zap.Error(err))
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
