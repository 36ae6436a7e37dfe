package handlers

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/metrics"
	"github.com/starkport/starkport-api/libs/go/services"
)

// HandlerFactory creates handlers with proper dependency injection
type HandlerFactory struct {
	// Database
	db db.Querier

	// Common services
	commonServices *CommonServices

	// Services
	rateService       interfaces.RateService
	routeService      interfaces.RouteService
	conversionService interfaces.ConversionService
	tokenService      interfaces.TokenService

	// Engine tuning
	defaultSlippageBps int32

	// Observability
	metrics *metrics.Metrics

	// Logger
	logger *zap.Logger
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	// Database
	DB     db.Querier
	DBPool *pgxpool.Pool

	// Services - pass concrete implementations that satisfy the interfaces
	RateService       interfaces.RateService
	RouteService      interfaces.RouteService
	ConversionService interfaces.ConversionService
	TokenService      interfaces.TokenService

	// DefaultSlippageBps applies when a request omits its slippage
	// tolerance. Zero falls back to the engine default.
	DefaultSlippageBps int32

	// Observability
	Metrics *metrics.Metrics

	// Logger
	Logger *zap.Logger
}

// NewHandlerFactory creates a new handler factory with all dependencies
func NewHandlerFactory(config HandlerFactoryConfig) *HandlerFactory {
	if config.Logger == nil {
		config.Logger = zap.L()
	}
	if config.DefaultSlippageBps <= 0 {
		config.DefaultSlippageBps = services.DefaultSlippageBps
	}

	commonServices := NewCommonServices(CommonServicesConfig{
		DB:     config.DB,
		DBPool: config.DBPool,
		Logger: config.Logger,
	})

	return &HandlerFactory{
		db:                 config.DB,
		commonServices:     commonServices,
		rateService:        config.RateService,
		routeService:       config.RouteService,
		conversionService:  config.ConversionService,
		tokenService:       config.TokenService,
		defaultSlippageBps: config.DefaultSlippageBps,
		metrics:            config.Metrics,
		logger:             config.Logger,
	}
}

// CreateDefaultFactory creates a factory with concrete implementations wired
// over the given providers. Zero-valued tuning parameters fall back to the
// engine defaults.
func CreateDefaultFactory(
	queries *db.Queries,
	dbPool *pgxpool.Pool,
	providers []interfaces.RateProvider,
	publisher interfaces.ConversionEventPublisher,
	m *metrics.Metrics,
	cacheTTL time.Duration,
	quoteTimeout time.Duration,
	intermediateTokens []string,
	efficiencyThreshold float64,
	defaultSlippageBps int32,
) *HandlerFactory {
	logger := zap.L()

	cache := services.NewRateCache(cacheTTL)
	rateService := services.NewRateAggregator(providers, cache, quoteTimeout)
	routeService := services.NewMultiHopRouter(rateService, intermediateTokens, efficiencyThreshold)
	plannerService := services.NewConversionPlanner()
	executorService := services.NewConversionExecutor(providers)
	conversionService := services.NewConversionService(queries, routeService, plannerService, executorService, publisher)
	tokenService := services.NewTokenService(queries)

	return NewHandlerFactory(HandlerFactoryConfig{
		DB:                 queries,
		DBPool:             dbPool,
		RateService:        rateService,
		RouteService:       routeService,
		ConversionService:  conversionService,
		TokenService:       tokenService,
		DefaultSlippageBps: defaultSlippageBps,
		Metrics:            m,
		Logger:             logger,
	})
}

// Handler creation methods

// NewHealthHandler creates a new health handler
func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler()
}

// NewRateHandler creates a new rate handler
func (f *HandlerFactory) NewRateHandler() *RateHandler {
	return NewRateHandler(
		f.commonServices,
		f.rateService,
		f.metrics,
	)
}

// NewRouteHandler creates a new route handler
func (f *HandlerFactory) NewRouteHandler() *RouteHandler {
	return NewRouteHandler(
		f.commonServices,
		f.routeService,
	)
}

// NewConversionHandler creates a new conversion handler
func (f *HandlerFactory) NewConversionHandler() *ConversionHandler {
	return NewConversionHandler(
		f.commonServices,
		f.conversionService,
		f.metrics,
		f.defaultSlippageBps,
	)
}

// NewTokenHandler creates a new token handler
func (f *HandlerFactory) NewTokenHandler() *TokenHandler {
	return NewTokenHandler(
		f.commonServices,
		f.tokenService,
	)
}

// RateService exposes the rate service for server wiring
func (f *HandlerFactory) RateService() interfaces.RateService {
	return f.rateService
}
