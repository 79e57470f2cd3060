package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pearstand/pear-backend/api/controllers"
	"github.com/pearstand/pear-backend/api/middleware"
	"github.com/pearstand/pear-backend/internal/auth"
	"github.com/pearstand/pear-backend/internal/catalog"
	"github.com/pearstand/pear-backend/internal/orders"
	"github.com/pearstand/pear-backend/internal/prepboard"
	"github.com/pearstand/pear-backend/pkg/auth/session"
	"github.com/pearstand/pear-backend/pkg/config"
	"github.com/pearstand/pear-backend/pkg/logger"
)

// RateLimiterStore is the counter backend for the login throttle.
type RateLimiterStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       controllers.Pinger
	Redis    controllers.Pinger
	Limiter  RateLimiterStore
	Sessions session.AccessSessionChecker

	AuthService      auth.Service
	OrdersService    orders.Service
	PrepBoardService prepboard.Service
	CatalogService   catalog.Service
}

// NewRouter assembles the full HTTP surface.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		deps.Config.AuthRateLimit.LoginWindow,
		deps.Config.AuthRateLimit.LoginIPLimit,
		deps.Config.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DB, deps.Redis))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Limiter, deps.Logger)).
			Post("/login", controllers.AuthLogin(deps.AuthService, deps.Logger))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.Config.JWT, deps.Sessions, deps.Logger))
			r.Post("/logout", controllers.AuthLogout(deps.AuthService, deps.Logger))
			r.Get("/me", controllers.AuthMe(deps.AuthService, deps.Logger))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Config.JWT, deps.Sessions, deps.Logger))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(deps.OrdersService, deps.Logger))
			r.Post("/", controllers.OrdersRegister(deps.OrdersService, deps.Logger))
			r.Put("/{orderId}", controllers.OrdersUpdate(deps.OrdersService, deps.Logger))
			r.Put("/{orderId}/pickup-date", controllers.OrdersUpdatePickupDate(deps.OrdersService, deps.Logger))
			r.Patch("/{orderId}/status", controllers.OrdersUpdateStatus(deps.OrdersService, deps.Logger))
		})

		r.Get("/prep-board", controllers.PrepBoard(deps.PrepBoardService, deps.Logger))
		r.Patch("/order-items/{orderId}/{productId}/prepared", controllers.OrderItemSetPrepared(deps.PrepBoardService, deps.Logger))

		r.Route("/options", func(r chi.Router) {
			r.Get("/varieties", controllers.VarietyOptions(deps.CatalogService, deps.Logger))
			r.Get("/products", controllers.ProductOptions(deps.CatalogService, deps.Logger))
		})
	})

	return r
}
