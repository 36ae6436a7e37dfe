package services

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

const (
	// DefaultQuoteTimeout bounds each provider's quote call so one slow
	// provider cannot stall a whole aggregation round.
	DefaultQuoteTimeout = 3 * time.Second

	freshRateConfidence  = 1.0
	cachedRateConfidence = 0.9
)

// RateAggregator fans quote requests out to all registered providers,
// joins the results and picks the best rate. Winning rates are cached;
// cache hits skip the fan-out entirely.
type RateAggregator struct {
	providers    []interfaces.RateProvider
	cache        *RateCache
	quoteTimeout time.Duration
	logger       *zap.Logger
}

// NewRateAggregator creates an aggregator over the given providers. Provider
// order is significant: it breaks ties between equal rates.
func NewRateAggregator(providers []interfaces.RateProvider, cache *RateCache, quoteTimeout time.Duration) *RateAggregator {
	if quoteTimeout <= 0 {
		quoteTimeout = DefaultQuoteTimeout
	}
	return &RateAggregator{
		providers:    providers,
		cache:        cache,
		quoteTimeout: quoteTimeout,
		logger:       logger.Log,
	}
}

// GetBestRate returns the best available quote for converting amount of
// fromToken into toToken. Provider failures are tolerated as long as at
// least one provider quotes; if none does, ErrNoRouteFound is returned and
// the cache is left untouched.
func (s *RateAggregator) GetBestRate(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.RateQuote, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	if entry := s.cache.Get(fromToken, toToken, amount); entry != nil {
		s.logger.Debug("serving rate from cache",
			zap.String("from_token", fromToken),
			zap.String("to_token", toToken),
			zap.Float64("rate", entry.Rate))
		return &business.RateQuote{
			FromToken:      fromToken,
			ToToken:        toToken,
			Rate:           entry.Rate,
			ToAmount:       helpers.ApplyRate(amount, entry.Rate),
			BridgeID:       constants.CachedBridgeID,
			SourceBridgeID: entry.BridgeID,
			Fees:           big.NewInt(0),
			Confidence:     cachedRateConfidence,
			RetrievedAt:    entry.UpdatedAt,
		}, nil
	}

	quotes := s.collectQuotes(ctx, fromToken, toToken, amount)

	best := selectBestQuote(quotes)
	if best == nil {
		s.logger.Warn("no provider could quote conversion",
			zap.String("from_token", fromToken),
			zap.String("to_token", toToken),
			zap.Int("providers", len(s.providers)))
		return nil, ErrNoRouteFound
	}

	s.cache.Set(fromToken, toToken, amount, best.Rate, best.BridgeID)

	s.logger.Info("aggregated best rate",
		zap.String("from_token", fromToken),
		zap.String("to_token", toToken),
		zap.String("bridge_id", best.BridgeID),
		zap.Float64("rate", best.Rate))

	return best, nil
}

// collectQuotes runs one quote call per provider concurrently and waits for
// all of them to settle. The returned slice preserves provider registration
// order; failed providers yield zero-confidence quotes.
func (s *RateAggregator) collectQuotes(ctx context.Context, fromToken, toToken string, amount *big.Int) []business.RateQuote {
	quotes := make([]business.RateQuote, len(s.providers))

	var wg sync.WaitGroup
	for i, provider := range s.providers {
		wg.Add(1)
		go func(idx int, p interfaces.RateProvider) {
			defer wg.Done()
			quotes[idx] = s.quoteProvider(ctx, p, fromToken, toToken, amount)
		}(i, provider)
	}
	wg.Wait()

	return quotes
}

func (s *RateAggregator) quoteProvider(ctx context.Context, p interfaces.RateProvider, fromToken, toToken string, amount *big.Int) business.RateQuote {
	quoteCtx, cancel := context.WithTimeout(ctx, s.quoteTimeout)
	defer cancel()

	failed := business.RateQuote{
		FromToken: fromToken,
		ToToken:   toToken,
		BridgeID:  p.Name(),
		ToAmount:  big.NewInt(0),
		Fees:      big.NewInt(0),
	}

	providerQuote, err := p.Quote(quoteCtx, fromToken, toToken, amount)
	if err != nil {
		s.logger.Warn("provider quote failed",
			zap.String("provider", p.Name()),
			zap.String("from_token", fromToken),
			zap.String("to_token", toToken),
			zap.Error(err))
		return failed
	}
	if providerQuote == nil || providerQuote.ToAmount == nil || providerQuote.ToAmount.Sign() <= 0 {
		s.logger.Warn("provider returned empty quote",
			zap.String("provider", p.Name()),
			zap.String("from_token", fromToken),
			zap.String("to_token", toToken))
		return failed
	}

	fees := providerQuote.Fees
	if fees == nil {
		fees = big.NewInt(0)
	}

	return business.RateQuote{
		FromToken:            fromToken,
		ToToken:              toToken,
		Rate:                 helpers.Ratio(providerQuote.ToAmount, amount),
		ToAmount:             providerQuote.ToAmount,
		BridgeID:             p.Name(),
		SourceBridgeID:       p.Name(),
		Fees:                 fees,
		EstimatedTimeSeconds: providerQuote.EstimatedTimeSeconds,
		Confidence:           freshRateConfidence,
		RetrievedAt:          time.Now(),
	}
}

// selectBestQuote picks the highest-rate usable quote. Quotes with a rate or
// confidence of zero are unavailable. The strict comparison keeps the
// earliest-registered provider on ties.
func selectBestQuote(quotes []business.RateQuote) *business.RateQuote {
	var best *business.RateQuote
	for i := range quotes {
		q := &quotes[i]
		if q.Rate <= 0 || q.Confidence == 0 {
			continue
		}
		if best == nil || q.Rate > best.Rate {
			best = q
		}
	}
	return best
}

// RefreshCache evicts expired cache entries as of now and returns the number
// of entries removed.
func (s *RateAggregator) RefreshCache(now time.Time) int {
	removed := s.cache.Sweep(now)
	if removed > 0 {
		s.logger.Debug("swept rate cache", zap.Int("removed", removed))
	}
	return removed
}

// CacheStats reports cache occupancy counters.
func (s *RateAggregator) CacheStats() map[string]interface{} {
	return s.cache.Stats()
}

var _ interfaces.RateService = (*RateAggregator)(nil)
