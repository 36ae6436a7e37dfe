package business

import (
	"math/big"
	"time"
)

// ConversionPlan is an executable route with slippage protection applied.
// MinAcceptableOutput guards the route's final output only; it is computed
// once at planning time and never recomputed during execution.
type ConversionPlan struct {
	Route                    ConversionRoute
	SlippageBps              int32
	EstimatedOutput          *big.Int
	MinAcceptableOutput      *big.Int
	TotalFees                *big.Int
	PriceImpact              float64
	EstimatedDurationSeconds int
	CreatedAt                time.Time
}
