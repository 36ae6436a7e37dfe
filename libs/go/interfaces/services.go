package interfaces

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/starkport/starkport-api/libs/go/types/business"
)

// RateSource answers best-rate queries. It is the narrow surface consumed by
// the router; RateService extends it with cache management.
type RateSource interface {
	GetBestRate(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.RateQuote, error)
}

// RateService aggregates provider quotes and manages the rate cache.
type RateService interface {
	RateSource

	// RefreshCache evicts every cache entry expired as of now and returns the
	// number of entries removed.
	RefreshCache(now time.Time) int

	// CacheStats reports cache occupancy counters for observability.
	CacheStats() map[string]interface{}
}

// RouteService finds the best conversion route, directly or through an
// intermediate token.
type RouteService interface {
	GetRoute(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.ConversionRoute, error)
}

// PlannerService turns a route into an executable plan with slippage bounds.
type PlannerService interface {
	Plan(route *business.ConversionRoute, slippageBps int32) (*business.ConversionPlan, error)
}

// ExecutorService executes a plan hop by hop. On failure the records
// accumulated so far are returned together with the error.
type ExecutorService interface {
	Execute(ctx context.Context, plan *business.ConversionPlan, destinationAddress string) ([]business.TransactionRecord, error)
}

// ExecuteConversionParams contains parameters for running a full conversion
type ExecuteConversionParams struct {
	FromToken          string
	ToToken            string
	Amount             *big.Int
	SlippageBps        int32
	DestinationAddress string
}

// ConversionService orchestrates routing, planning, execution, persistence
// and event publishing for conversions.
type ConversionService interface {
	PlanConversion(ctx context.Context, fromToken, toToken string, amount *big.Int, slippageBps int32) (*business.ConversionPlan, error)
	ExecuteConversion(ctx context.Context, params ExecuteConversionParams) (*business.Conversion, error)
	GetConversion(ctx context.Context, id uuid.UUID) (*business.Conversion, error)
	ListConversions(ctx context.Context, limit, offset int32) ([]business.Conversion, error)
}

// CreateTokenParams contains parameters for registering a supported token
type CreateTokenParams struct {
	Symbol          string
	Name            string
	Decimals        int32
	Chain           string
	ContractAddress string
}

// TokenService manages the supported token registry.
type TokenService interface {
	ListTokens(ctx context.Context) ([]business.Token, error)
	GetTokenBySymbol(ctx context.Context, symbol string) (*business.Token, error)
	CreateToken(ctx context.Context, params CreateTokenParams) (*business.Token, error)
}
