package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

const (
	// DefaultSlippageBps is the slippage tolerance applied when a caller
	// does not specify one (50 bps = 0.5%).
	DefaultSlippageBps int32 = 50

	// Price impact estimates per route kind. Multi-hop routes pay two fee
	// events, so their estimate is higher.
	directPriceImpact   = 0.005
	multiHopPriceImpact = 0.010
)

// ConversionPlanner turns a conversion route into an executable plan. The
// slippage bound is applied once to the route's final expected output; hops
// carry no individual bounds.
type ConversionPlanner struct {
	logger *zap.Logger
}

// NewConversionPlanner creates a conversion planner
func NewConversionPlanner() *ConversionPlanner {
	return &ConversionPlanner{logger: logger.Log}
}

// Plan builds a plan from a route. slippageBps must be within [0, 10000];
// a zero tolerance is valid and means the realized output may not fall below
// the estimate at all.
func (s *ConversionPlanner) Plan(route *business.ConversionRoute, slippageBps int32) (*business.ConversionPlan, error) {
	if route == nil || len(route.Hops) == 0 {
		return nil, fmt.Errorf("route has no hops")
	}
	if slippageBps < 0 || slippageBps > helpers.BpsDenominator {
		return nil, fmt.Errorf("%w: %d bps", ErrInvalidSlippage, slippageBps)
	}

	totalFees := helpers.SumAmounts()
	duration := 0
	for _, hop := range route.Hops {
		totalFees = helpers.SumAmounts(totalFees, hop.Fees)
		duration += hop.EstimatedTimeSeconds
	}

	impact := directPriceImpact
	if route.Kind == constants.RouteKindMultiHop {
		impact = multiHopPriceImpact
	}

	plan := &business.ConversionPlan{
		Route:                    *route,
		SlippageBps:              slippageBps,
		EstimatedOutput:          route.ExpectedOutput,
		MinAcceptableOutput:      helpers.ApplySlippage(route.ExpectedOutput, slippageBps),
		TotalFees:                totalFees,
		PriceImpact:              impact,
		EstimatedDurationSeconds: duration,
		CreatedAt:                time.Now(),
	}

	s.logger.Debug("planned conversion",
		zap.String("from_token", route.FromToken),
		zap.String("to_token", route.ToToken),
		zap.String("route_kind", route.Kind),
		zap.Int32("slippage_bps", slippageBps),
		zap.String("min_acceptable_output", plan.MinAcceptableOutput.String()))

	return plan, nil
}

var _ interfaces.PlannerService = (*ConversionPlanner)(nil)
