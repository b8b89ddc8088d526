package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jmlee-dev/cafekiosk-backend/api/controllers"
	"github.com/jmlee-dev/cafekiosk-backend/api/middleware"
	ordersvc "github.com/jmlee-dev/cafekiosk-backend/internal/orders"
	productsvc "github.com/jmlee-dev/cafekiosk-backend/internal/products"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/config"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/db"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/logger"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	productService productsvc.Service,
	orderService ordersvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	orderPolicy := middleware.NewOrderRateLimitPolicy(
		"orders",
		cfg.Orders.RateLimitWindow,
		cfg.Orders.RateLimitPerIP,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/new", controllers.CreateProduct(productService, logg))
			r.Get("/selling", controllers.GetSellingProducts(productService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.OrderRateLimit(orderPolicy, redisClient, logg)).Post("/new", controllers.CreateOrder(orderService, logg))
			r.Get("/{orderId}", controllers.GetOrder(orderService, logg))
		})
	})

	return r
}
