package business

import (
	"math/big"
	"time"
)

// RateQuote is a single provider's answer for a conversion, normalized for
// ranking. Rate is the output/input ratio in smallest units and is used for
// comparisons only; ToAmount carries the provider's exact output figure.
// A Rate of 0 or Confidence of 0 marks the provider unavailable for this
// conversion.
type RateQuote struct {
	FromToken            string
	ToToken              string
	Rate                 float64
	ToAmount             *big.Int
	BridgeID             string
	SourceBridgeID       string // provider that produced the rate; differs from BridgeID only on cached quotes
	Fees                 *big.Int
	EstimatedTimeSeconds int
	Confidence           float64
	RetrievedAt          time.Time
}

// ProviderQuote is the raw figure set returned by a provider's quote call.
type ProviderQuote struct {
	ToAmount             *big.Int
	Fees                 *big.Int
	EstimatedTimeSeconds int
}

// ExecutionReceipt is returned by a provider after a hop executes on-chain.
// RealizedToAmount is the amount actually received, which may differ from the
// quoted figure.
type ExecutionReceipt struct {
	TransactionHandle string
	RealizedToAmount  *big.Int
}
