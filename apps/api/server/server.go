package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/starkport/starkport-api/apps/api/handlers"
	awsclient "github.com/starkport/starkport-api/libs/go/client/aws"
	"github.com/starkport/starkport-api/libs/go/client/avnu"
	httpclient "github.com/starkport/starkport-api/libs/go/client/http"
	"github.com/starkport/starkport-api/libs/go/client/layerswap"
	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/metrics"
	"github.com/starkport/starkport-api/libs/go/middleware"
	"github.com/starkport/starkport-api/libs/go/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler     *handlers.HealthHandler
	rateHandler       *handlers.RateHandler
	routeHandler      *handlers.RouteHandler
	conversionHandler *handlers.ConversionHandler
	tokenHandler      *handlers.TokenHandler

	// Database
	dbQueries *db.Queries

	// Observability
	apiMetrics *metrics.Metrics

	// Background cache maintenance
	cacheSweeper *services.CacheSweeper

	// Auth
	adminAPIKeyHash string

	handlerFactory *handlers.HandlerFactory
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal // Default to local if not set
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Initialize AWS Secrets Manager Client ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Database Connection Setup ---
	// Deployed stages must resolve the DSN through Secrets Manager; local
	// development reads DATABASE_URL directly.
	if stage == helpers.StageProd || stage == helpers.StageDev {
		if os.Getenv("DATABASE_SECRET_ARN") == "" {
			logger.Fatal("DATABASE_SECRET_ARN is required for deployed stages")
		}
	}
	dsn, err := secretsClient.GetSecretString(ctx, "DATABASE_SECRET_ARN", "DATABASE_URL")
	if err != nil || dsn == "" {
		logger.Fatal("Failed to get database DSN", zap.Error(err))
	}

	// --- Provider API Keys ---
	layerswapAPIKey, err := secretsClient.GetSecretString(ctx, "LAYERSWAP_API_KEY_ARN", "LAYERSWAP_API_KEY")
	if err != nil || layerswapAPIKey == "" {
		logger.Log.Warn("Failed to get Layerswap API key. Layerswap quotes will be rejected upstream.", zap.Error(err))
		layerswapAPIKey = ""
	}

	avnuAPIKey, err := secretsClient.GetSecretString(ctx, "AVNU_API_KEY_ARN", "AVNU_API_KEY")
	if err != nil || avnuAPIKey == "" {
		logger.Log.Warn("Failed to get AVNU API key. AVNU quotes will be rejected upstream.", zap.Error(err))
		avnuAPIKey = ""
	}

	// --- Admin API Key Hash ---
	adminAPIKeyHash, err = secretsClient.GetSecretString(ctx, "ADMIN_API_KEY_HASH_ARN", "ADMIN_API_KEY_HASH")
	if err != nil || adminAPIKeyHash == "" {
		logger.Log.Warn("Failed to get admin API key hash. Admin endpoints will reject all requests.", zap.Error(err))
		adminAPIKeyHash = ""
	}

	// --- Database Pool Initialization ---
	// Parse the DSN configuration first
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30 // Shorter lifetime to prevent cached plan issues
	poolConfig.MaxConnIdleTime = time.Minute * 15 // Shorter idle time

	// Create the connection pool using the config
	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(dbpool)

	// --- Metrics ---
	apiMetrics = metrics.New()

	// --- Provider Clients ---
	// Outbound request metrics flow through the shared collector.
	layerswapClient := layerswap.NewClient(
		os.Getenv("LAYERSWAP_API_URL"),
		layerswapAPIKey,
		httpclient.WithMetricsCollector(apiMetrics),
	)
	avnuClient := avnu.NewClient(
		os.Getenv("AVNU_API_URL"),
		avnuAPIKey,
		httpclient.WithMetricsCollector(apiMetrics),
	)
	providers := []interfaces.RateProvider{layerswapClient, avnuClient}

	// --- Conversion Event Publisher ---
	var publisher interfaces.ConversionEventPublisher
	if queueURL := os.Getenv("CONVERSION_EVENTS_QUEUE_URL"); queueURL != "" {
		sqsPublisher, err := awsclient.NewSQSPublisher(ctx, queueURL)
		if err != nil {
			logger.Fatal("Unable to create SQS event publisher", zap.Error(err))
		}
		publisher = sqsPublisher
	} else {
		logger.Warn("CONVERSION_EVENTS_QUEUE_URL not set, conversion events will not be published")
	}

	// --- Engine Tuning ---
	// Zero values fall back to the engine defaults.
	cacheTTL := envDurationSeconds("RATE_CACHE_TTL_SECONDS")
	quoteTimeout := envDurationSeconds("PROVIDER_QUOTE_TIMEOUT_SECONDS")
	intermediateTokens := envCSV("INTERMEDIATE_TOKENS")
	efficiencyThreshold := envFloat64("EFFICIENCY_THRESHOLD")
	defaultSlippageBps := envInt32("DEFAULT_SLIPPAGE_BPS")

	// Create the handler factory with all dependencies
	handlerFactory = handlers.CreateDefaultFactory(
		dbQueries,
		dbpool,
		providers,
		publisher,
		apiMetrics,
		cacheTTL,
		quoteTimeout,
		intermediateTokens,
		efficiencyThreshold,
		defaultSlippageBps,
	)

	// API Handler initialization using factory
	healthHandler = handlerFactory.NewHealthHandler()
	rateHandler = handlerFactory.NewRateHandler()
	routeHandler = handlerFactory.NewRouteHandler()
	conversionHandler = handlerFactory.NewConversionHandler()
	tokenHandler = handlerFactory.NewTokenHandler()
}

func InitializeRoutes(router *gin.Engine) {
	// Logger is now initialized in InitializeHandlers

	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Apply rate limiting middleware globally
	// This provides a default rate limit for all endpoints
	router.Use(middleware.DefaultRateLimiter.Middleware())

	// Add enhanced logging in development mode
	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))

	// Add basic request logging for production
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	// Record request counts and durations for every route
	router.Use(middleware.MetricsMiddleware(apiMetrics))

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)

	router.GET("/health", healthHandler.Health)

	// Initialize and start the background rate cache sweeper
	cacheSweeper = services.NewCacheSweeper(handlerFactory.RateService(), services.DefaultSweepInterval)
	cacheSweeper.Start()

	// Ensure we gracefully stop the cache sweeper when the server shuts down
	router.GET("/shutdown", func(c *gin.Context) {
		go func() {
			time.Sleep(1 * time.Second)
			cacheSweeper.Stop()
			logger.Info("Server is shutting down...")
			os.Exit(0)
		}()
		c.JSON(http.StatusOK, gin.H{"message": "Server is shutting down..."})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Rate quoting and cache management
		rates := v1.Group("/rates")
		{
			rates.GET("/best", middleware.ValidateQueryParams(middleware.BestRateQueryValidation), rateHandler.GetBestRate)
			rates.GET("/cache/stats", rateHandler.GetCacheStats)
			rates.POST("/cache/refresh", middleware.APIKeyAuth(adminAPIKeyHash), rateHandler.RefreshCache)
		}

		// Route resolution
		routes := v1.Group("/routes")
		{
			routes.GET("", middleware.ValidateQueryParams(middleware.RouteQueryValidation), routeHandler.GetRoute)
		}

		// Conversions
		conversions := v1.Group("/conversions")
		{
			conversions.POST("/plan", middleware.ValidateInput(middleware.PlanConversionValidation), conversionHandler.PlanConversion)

			// Execution moves funds; stricter limits apply
			conversions.POST("", middleware.StrictRateLimiter.Middleware(), middleware.ValidateInput(middleware.ExecuteConversionValidation), conversionHandler.ExecuteConversion)

			conversions.GET("", middleware.ValidateQueryParams(middleware.ListConversionsQueryValidation), conversionHandler.ListConversions)
			conversions.GET("/:conversion_id", conversionHandler.GetConversion)
		}

		// Token registry
		tokens := v1.Group("/tokens")
		{
			tokens.GET("", tokenHandler.ListTokens)
			tokens.GET("/:symbol", tokenHandler.GetTokenBySymbol)
			tokens.POST("", middleware.APIKeyAuth(adminAPIKeyHash), middleware.ValidateInput(middleware.CreateTokenValidation), tokenHandler.CreateToken)
		}
	}
}

// envDurationSeconds reads an integer number of seconds from the environment.
// Unset or unparseable values return zero.
func envDurationSeconds(name string) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		logger.Warn("Ignoring invalid duration environment variable", zap.String("name", name), zap.String("value", raw))
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// envFloat64 reads a float from the environment. Unset or unparseable values
// return zero.
func envFloat64(name string) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.Warn("Ignoring invalid float environment variable", zap.String("name", name), zap.String("value", raw))
		return 0
	}
	return value
}

// envInt32 reads an integer from the environment. Unset or unparseable
// values return zero.
func envInt32(name string) int32 {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		logger.Warn("Ignoring invalid integer environment variable", zap.String("name", name), zap.String("value", raw))
		return 0
	}
	return int32(value)
}

// envCSV reads a comma-separated list from the environment, trimming
// whitespace around each entry.
func envCSV(name string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	} else {
		// Default exposed headers including rate limit headers
		corsConfig.ExposeHeaders = []string{
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
			"Retry-After",
			"X-Correlation-ID",
		}
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
