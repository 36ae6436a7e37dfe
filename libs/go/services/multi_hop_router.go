package services

import (
	"context"
	"errors"
	"math/big"

	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

// DefaultEfficiencyThreshold is the rate below which a direct conversion is
// considered weak enough to compare against two-hop alternatives. The
// baseline is a 1:1 conversion.
const DefaultEfficiencyThreshold = 0.8

// DefaultIntermediateTokens is the fixed candidate set for two-hop routes.
var DefaultIntermediateTokens = []string{"ETH", "USDC", "USDT"}

// MultiHopRouter finds the best route for a conversion. Direct routes are
// preferred; only when the direct rate is weak (or no direct route exists)
// are two-hop routes through the intermediate set considered. The scan is
// linear over the candidate list, never a graph search.
type MultiHopRouter struct {
	rates         interfaces.RateSource
	intermediates []string
	threshold     float64
	logger        *zap.Logger
}

// NewMultiHopRouter creates a router over the given rate source. Nil or
// empty intermediates fall back to DefaultIntermediateTokens; a
// non-positive threshold falls back to DefaultEfficiencyThreshold.
func NewMultiHopRouter(rates interfaces.RateSource, intermediates []string, threshold float64) *MultiHopRouter {
	if len(intermediates) == 0 {
		intermediates = DefaultIntermediateTokens
	}
	if threshold <= 0 {
		threshold = DefaultEfficiencyThreshold
	}
	return &MultiHopRouter{
		rates:         rates,
		intermediates: intermediates,
		threshold:     threshold,
		logger:        logger.Log,
	}
}

type twoHopCandidate struct {
	intermediate string
	hop1         *business.RateQuote
	hop2         *business.RateQuote
}

func (c *twoHopCandidate) finalOutput() *big.Int {
	return c.hop2.ToAmount
}

// GetRoute returns the best conversion route for the given amount. A direct
// route wins outright when its rate clears the efficiency threshold; a
// two-hop route replaces it only when its final expected output strictly
// exceeds the direct one. ErrNoRouteFound is returned when neither exists.
func (s *MultiHopRouter) GetRoute(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.ConversionRoute, error) {
	direct, err := s.rates.GetBestRate(ctx, fromToken, toToken, amount)
	if err != nil && !errors.Is(err, ErrNoRouteFound) {
		return nil, err
	}

	if direct != nil && direct.Rate >= s.threshold {
		return s.directRoute(fromToken, toToken, amount, direct), nil
	}

	multi := s.bestTwoHop(ctx, fromToken, toToken, amount)

	switch {
	case direct == nil && multi == nil:
		return nil, ErrNoRouteFound
	case multi == nil:
		// Weak direct rate but nothing better on offer.
		return s.directRoute(fromToken, toToken, amount, direct), nil
	case direct != nil && multi.finalOutput().Cmp(direct.ToAmount) <= 0:
		return s.directRoute(fromToken, toToken, amount, direct), nil
	}

	s.logger.Info("selected multi-hop route",
		zap.String("from_token", fromToken),
		zap.String("to_token", toToken),
		zap.String("intermediate", multi.intermediate),
		zap.String("expected_output", multi.finalOutput().String()))

	return s.multiHopRoute(fromToken, toToken, amount, multi), nil
}

// bestTwoHop scans the intermediate set and keeps the candidate with the
// largest final expected output. The second hop is quoted with the first
// hop's expected output as its input amount.
func (s *MultiHopRouter) bestTwoHop(ctx context.Context, fromToken, toToken string, amount *big.Int) *twoHopCandidate {
	var best *twoHopCandidate

	for _, intermediate := range s.intermediates {
		if intermediate == fromToken || intermediate == toToken {
			continue
		}

		hop1, err := s.rates.GetBestRate(ctx, fromToken, intermediate, amount)
		if err != nil {
			continue
		}

		hop2, err := s.rates.GetBestRate(ctx, intermediate, toToken, hop1.ToAmount)
		if err != nil {
			continue
		}

		candidate := &twoHopCandidate{intermediate: intermediate, hop1: hop1, hop2: hop2}
		if best == nil || candidate.finalOutput().Cmp(best.finalOutput()) > 0 {
			best = candidate
		}
	}

	return best
}

func (s *MultiHopRouter) directRoute(fromToken, toToken string, amount *big.Int, quote *business.RateQuote) *business.ConversionRoute {
	return &business.ConversionRoute{
		FromToken:      fromToken,
		ToToken:        toToken,
		FromAmount:     amount,
		Kind:           constants.RouteKindDirect,
		Hops:           []business.RouteHop{quoteToHop(quote, amount)},
		ExpectedOutput: quote.ToAmount,
	}
}

func (s *MultiHopRouter) multiHopRoute(fromToken, toToken string, amount *big.Int, candidate *twoHopCandidate) *business.ConversionRoute {
	return &business.ConversionRoute{
		FromToken:  fromToken,
		ToToken:    toToken,
		FromAmount: amount,
		Kind:       constants.RouteKindMultiHop,
		Hops: []business.RouteHop{
			quoteToHop(candidate.hop1, amount),
			quoteToHop(candidate.hop2, candidate.hop1.ToAmount),
		},
		ExpectedOutput: candidate.finalOutput(),
	}
}

// quoteToHop copies the quote into an executable hop. Hops always reference
// the originating provider, so a route built from a cached quote still
// dispatches to the provider that produced the rate.
func quoteToHop(quote *business.RateQuote, inputAmount *big.Int) business.RouteHop {
	return business.RouteHop{
		FromToken:            quote.FromToken,
		ToToken:              quote.ToToken,
		FromAmount:           inputAmount,
		ExpectedOutput:       quote.ToAmount,
		BridgeID:             quote.SourceBridgeID,
		Rate:                 quote.Rate,
		Fees:                 quote.Fees,
		EstimatedTimeSeconds: quote.EstimatedTimeSeconds,
	}
}

var _ interfaces.RouteService = (*MultiHopRouter)(nil)
