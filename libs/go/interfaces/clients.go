package interfaces

import (
	"context"
	"math/big"

	"github.com/starkport/starkport-api/libs/go/types/business"
)

// RateProvider defines the common interface for all conversion providers
// (cross-chain bridges and DEX aggregators). Each method abstracts
// provider-specific APIs so the engine can treat providers uniformly.
type RateProvider interface {
	// Name returns the unique provider identifier used in quotes, routes and
	// transaction records.
	Name() string

	// Quote asks the provider for a conversion quote. The returned figures
	// are for the exact input amount given. Implementations must honor ctx
	// cancellation; a failed or unsupported conversion returns an error.
	Quote(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.ProviderQuote, error)

	// Execute submits one route hop for execution and blocks until the
	// provider acknowledges it with a transaction handle and the realized
	// output amount.
	Execute(ctx context.Context, hop business.RouteHop, destinationAddress string) (*business.ExecutionReceipt, error)
}

// ConversionEventPublisher publishes conversion lifecycle events for
// downstream consumers.
type ConversionEventPublisher interface {
	PublishConversionEvent(ctx context.Context, event business.ConversionEvent) error
}
