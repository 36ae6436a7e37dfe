package testutil

import (
	"context"
	"math/big"

	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

// FakeProvider is a function-backed RateProvider for engine tests. Tests that
// exercise concurrent fan-out or hop sequencing set only the funcs they need;
// unset funcs fail loudly through the zero-value panic.
type FakeProvider struct {
	ProviderName string
	QuoteFunc    func(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.ProviderQuote, error)
	ExecuteFunc  func(ctx context.Context, hop business.RouteHop, destinationAddress string) (*business.ExecutionReceipt, error)
}

var _ interfaces.RateProvider = (*FakeProvider)(nil)

func (f *FakeProvider) Name() string {
	return f.ProviderName
}

func (f *FakeProvider) Quote(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.ProviderQuote, error) {
	return f.QuoteFunc(ctx, fromToken, toToken, amount)
}

func (f *FakeProvider) Execute(ctx context.Context, hop business.RouteHop, destinationAddress string) (*business.ExecutionReceipt, error) {
	return f.ExecuteFunc(ctx, hop, destinationAddress)
}

// FixedRateProvider quotes every conversion at the given output/input rate
// with zero fees. The output amount is floor(amount * rate) computed in
// big.Float to keep large inputs exact enough for assertions.
func FixedRateProvider(name string, rate float64) *FakeProvider {
	return &FakeProvider{
		ProviderName: name,
		QuoteFunc: func(_ context.Context, _, _ string, amount *big.Int) (*business.ProviderQuote, error) {
			out, _ := new(big.Float).Mul(new(big.Float).SetInt(amount), big.NewFloat(rate)).Int(nil)
			return &business.ProviderQuote{
				ToAmount:             out,
				Fees:                 big.NewInt(0),
				EstimatedTimeSeconds: 60,
			}, nil
		},
	}
}

// QuoteOnceProvider returns the given quote for every request.
func QuoteOnceProvider(name string, quote *business.ProviderQuote) *FakeProvider {
	return &FakeProvider{
		ProviderName: name,
		QuoteFunc: func(_ context.Context, _, _ string, _ *big.Int) (*business.ProviderQuote, error) {
			return quote, nil
		},
	}
}

// FailingProvider errors on every quote, simulating an unreachable provider.
func FailingProvider(name string, err error) *FakeProvider {
	return &FakeProvider{
		ProviderName: name,
		QuoteFunc: func(_ context.Context, _, _ string, _ *big.Int) (*business.ProviderQuote, error) {
			return nil, err
		},
	}
}
