package handlers

import (
	"time"

	_ "temperature_converter/docs"
	"temperature_converter/internal/logger"
	"temperature_converter/internal/metrics"
	"temperature_converter/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPingPeriod = (60 * time.Second * 9) / 10

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services     *service.Service
	log          *logger.Logger
	pingPeriod   time.Duration
	allowOrigins []string
}

// Option customizes a Handler.
type Option func(*Handler)

// WithPingPeriod sets how often interactive sessions are pinged. The peer
// must answer within 10/9 of it.
func WithPingPeriod(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.pingPeriod = d
		}
	}
}

// WithAllowOrigins restricts cross-origin browser access. Empty or "*"
// allows any origin.
func WithAllowOrigins(origins []string) Option {
	return func(h *Handler) {
		h.allowOrigins = origins
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, pingPeriod: defaultPingPeriod}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), cors.New(corsConfig(h.allowOrigins)), h.requestID, h.requestLogger, metrics.HTTP)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Interactive converter session
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/scales", h.listScales)
		// Body example: {"value":"212","from":"Fahrenheit","to":"Celsius"}
		api.POST("/convert", h.convert)
		api.GET("/classify", h.classify)
		api.GET("/history", h.getHistory)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
