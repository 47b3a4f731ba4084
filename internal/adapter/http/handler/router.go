package handler

import (
	"breachguard-backend/internal/adapter/http/middleware"
	redisStore "breachguard-backend/internal/adapter/storage/redis"
	"breachguard-backend/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	CheckLogSvc    ports.CheckLogService
	CallbackSecret string
	AllowedOrigins []string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	if len(deps.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.AllowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		r.Use(cors.New(corsCfg))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Public check log routes ---
	checkHandler := NewCheckLogHandler(deps.CheckLogSvc)
	be := r.Group("/be")
	{
		be.GET("/health", rl("public"), HealthCheck(deps.HealthCheckers...))
		be.POST("/email-breach/check", rl("public"), checkHandler.CheckEmailBreach)
		be.POST("/malware-scan/check", rl("public"), checkHandler.CheckMalwareScan)
		be.GET("/stats", rl("public"), checkHandler.Stats)
	}

	// --- Payment routes ---
	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.CallbackSecret, deps.Logger)
	payments := r.Group("/payments")
	{
		payments.POST("/initiate", rl("payments"), paymentHandler.InitiatePayment)
		payments.GET("/status/:checkoutRequestID", rl("public"), paymentHandler.GetStatus)
	}

	// --- Provider callbacks (no rate limit, gated by path secret) ---
	callbacks := r.Group("/mpesa/callback/:secret")
	{
		callbacks.POST("/confirmation", paymentHandler.Confirmation)
		callbacks.POST("/validation", paymentHandler.Validation)
	}

	return r
}
