package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Domenick1991/airport/internal/auth"
	"github.com/Domenick1991/airport/internal/service/catalog"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/Domenick1991/airport/internal/service/orders"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Services struct {
	Catalog catalog.CatalogUseCase
	Flights flights.FlightUseCase
	Orders  orders.OrderUseCase
}

type RouterOptions struct {
	AllowedOrigins  []string
	DefaultPageSize int
	// Idempotency is optional; without it POST /orders is not deduplicated.
	Idempotency    IdempotencyStore
	IdempotencyTTL time.Duration
	// HealthChecks are probed by /healthz.
	HealthChecks map[string]func(context.Context) error
}

func NewRouter(log *slog.Logger, tokens *auth.Tokens, services Services, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(log), Instrument())

	cc := cors.DefaultConfig()
	if len(opts.AllowedOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = opts.AllowedOrigins
	}
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization", idempotencyHeader, requestIDHeader)
	router.Use(cors.New(cc))

	router.GET("/healthz", healthz(opts.HealthChecks))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1", auth.Authenticate(tokens), Paginate(opts.DefaultPageSize))
	NewAirportHandler(services.Catalog).Register(v1.Group("/airports"))
	NewRouteHandler(services.Catalog).Register(v1.Group("/routes"))
	NewAirplaneTypeHandler(services.Catalog).Register(v1.Group("/airplane_types"))
	NewAirplaneHandler(services.Catalog).Register(v1.Group("/airplanes"))
	NewCrewHandler(services.Catalog).Register(v1.Group("/crews"))
	NewFlightHandler(services.Flights).Register(v1.Group("/flights"))
	NewTicketHandler(services.Orders).Register(v1.Group("/tickets"))

	var createOrder []gin.HandlerFunc
	if opts.Idempotency != nil {
		ttl := opts.IdempotencyTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		createOrder = append(createOrder, Idempotency(opts.Idempotency, ttl))
	}
	NewOrderHandler(services.Orders).Register(v1.Group("/orders"), createOrder...)

	return router
}

func healthz(checks map[string]func(context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		failed := gin.H{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				failed[name] = err.Error()
			}
		}
		if len(failed) > 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": failed})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
