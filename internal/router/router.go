package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/carelink/carelink-api/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// ProtectedHandler registers routes on both sides of the auth boundary
type ProtectedHandler interface {
	Handler
	RegisterProtectedRoutes(*gin.RouterGroup)
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORSOrigins   []string
	MetricsPrefix string
}

type Router struct {
	engine        *gin.Engine
	auth          *middleware.AuthMiddleware
	healthH       Handler
	authH         ProtectedHandler
	directoryH    ProtectedHandler
	appointmentH  Handler
	prescriptionH Handler
	orderH        Handler
	messageH      Handler
	reminderH     Handler
	inventoryH    Handler
	metrics       *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	healthH Handler,
	authH ProtectedHandler,
	directoryH ProtectedHandler,
	appointmentH Handler,
	prescriptionH Handler,
	orderH Handler,
	messageH Handler,
	reminderH Handler,
	inventoryH Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:        engine,
		auth:          auth,
		healthH:       healthH,
		authH:         authH,
		directoryH:    directoryH,
		appointmentH:  appointmentH,
		prescriptionH: prescriptionH,
		orderH:        orderH,
		messageH:      messageH,
		reminderH:     reminderH,
		inventoryH:    inventoryH,
		metrics:       initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
	)

	corsConfig := cors.DefaultConfig()
	if len(config.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = config.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	engine.Use(cors.New(corsConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.healthH.RegisterRoutes(api)
	r.setupPublicRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.setupProtectedRoutes(protected)
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.authH.RegisterRoutes(rg)
	r.directoryH.RegisterRoutes(rg)
}

func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	r.authH.RegisterProtectedRoutes(rg)
	r.directoryH.RegisterProtectedRoutes(rg)
	r.appointmentH.RegisterRoutes(rg)
	r.prescriptionH.RegisterRoutes(rg)
	r.orderH.RegisterRoutes(rg)
	r.messageH.RegisterRoutes(rg)
	r.reminderH.RegisterRoutes(rg)
	r.inventoryH.RegisterRoutes(rg)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	m := &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
	prometheus.MustRegister(m.requestDuration, m.requestTotal, m.errorTotal)
	return m
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
