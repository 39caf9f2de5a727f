package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/a2sh3r/aitrade/internal/metrics"
	"github.com/a2sh3r/aitrade/internal/middleware"
	"github.com/a2sh3r/aitrade/internal/payflow"
	"github.com/a2sh3r/aitrade/internal/service"
	"github.com/a2sh3r/aitrade/internal/session"
	"github.com/a2sh3r/aitrade/internal/telegram"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

const defaultTokenTTL = 24 * time.Hour

// Deliverer is the relay behind the notification function.
type Deliverer interface {
	Deliver(ctx context.Context, n telegram.Notification) (int, error)
}

type Handler struct {
	userService       service.UserService
	paymentService    service.PaymentService
	withdrawalService service.WithdrawalService
	creditService     service.CreditService
	affiliateService  service.AffiliateService
	payoutService     service.PayoutService
	leadService       service.LeadService
	walletService     service.WalletService

	sessions session.Store
	relay    Deliverer

	flowBackend  payflow.Backend
	flowDefaults payflow.Options

	secretKey string
	tokenTTL  time.Duration

	procedures map[string]procedure
}

type Deps struct {
	Users       service.UserService
	Payments    service.PaymentService
	Withdrawals service.WithdrawalService
	Credits     service.CreditService
	Affiliate   service.AffiliateService
	Payouts     service.PayoutService
	Leads       service.LeadService
	Wallets     service.WalletService

	Sessions session.Store
	Relay    Deliverer

	FlowBackend  payflow.Backend
	FlowDefaults payflow.Options

	SecretKey string
	TokenTTL  time.Duration
}

func NewHandler(d Deps) *Handler {
	h := &Handler{
		userService:       d.Users,
		paymentService:    d.Payments,
		withdrawalService: d.Withdrawals,
		creditService:     d.Credits,
		affiliateService:  d.Affiliate,
		payoutService:     d.Payouts,
		leadService:       d.Leads,
		walletService:     d.Wallets,
		sessions:          d.Sessions,
		relay:             d.Relay,
		flowBackend:       d.FlowBackend,
		flowDefaults:      d.FlowDefaults,
		secretKey:         d.SecretKey,
		tokenTTL:          d.TokenTTL,
	}
	if h.tokenTTL <= 0 {
		h.tokenTTL = defaultTokenTTL
	}
	h.procedures = h.registerProcedures()
	return h
}

type RouterConfig struct {
	SecretKey   string
	RelayKey    string
	CORSOrigins []string
	RateLimit   float64
	RateBurst   int
}

func NewRouter(handler *Handler, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(metrics.InstrumentHandler)
	r.Use(middleware.WithLogging())
	r.Use(chimw.Recoverer)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", middleware.HashHeader},
		MaxAge:         300,
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Handle("/metrics", metrics.Handler())

	limit, burst := rate.Limit(cfg.RateLimit), cfg.RateBurst
	if limit <= 0 {
		limit = rate.Inf
	}
	limiter := middleware.NewUserRateLimiter(limit, burst)
	auth := middleware.JWTMiddleware(cfg.SecretKey, handler.sessions)

	// public
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(limiter))
		r.Use(middleware.WithGzip())

		r.Post("/api/auth/signup", handler.SignUp)
		r.Post("/api/auth/signin", handler.SignIn)
		r.Post("/api/leads", handler.CreateLead)

		r.With(middleware.WithHashCheck(cfg.RelayKey)).Post("/functions/v1/telegram-notify", handler.TelegramNotify)
	})

	// the websocket upgrade needs the raw writer, no gzip here
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/api/user/payments/{id}/flow", handler.PaymentFlow)
		r.Get("/api/user/activation/flow", handler.ActivationFlow)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Use(middleware.RateLimitMiddleware(limiter))
		r.Use(middleware.WithGzip())

		r.Post("/api/auth/signout", handler.SignOut)
		r.Get("/api/auth/session", handler.Session)

		r.Route("/api/user", func(r chi.Router) {
			r.Get("/credits", handler.GetCredits)

			r.Get("/payments", handler.GetPayments)
			r.Post("/payments", handler.CreatePayment)
			r.Get("/payments/{id}", handler.GetPayment)

			r.Get("/withdrawals", handler.GetWithdrawals)
			r.Post("/withdrawals", handler.CreateWithdrawal)

			r.Get("/wallets", handler.GetWallets)
			r.Post("/wallets", handler.AddWallet)

			r.Get("/payouts", handler.GetPayouts)
			r.Post("/payouts/{id}/fee", handler.PayPayoutFee)

			r.Get("/affiliate/code", handler.GetAffiliateCode)
		})

		r.Post("/rest/v1/rpc/{name}", handler.RPC)

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(middleware.AdminOnly(handler.userService))

			r.Get("/payments", handler.ListPayments)
			r.Patch("/payments/{id}", handler.SetPaymentStatus)
			r.Post("/credits/{userID}/bonus", handler.GrantBonus)
		})
	})

	return r
}
