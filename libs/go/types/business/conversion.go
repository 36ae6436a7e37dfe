package business

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// TransactionRecord captures the outcome of a single executed hop.
// RealizedToAmount is nil until the hop confirms.
type TransactionRecord struct {
	HopIndex          int
	Provider          string
	FromToken         string
	ToToken           string
	FromAmount        *big.Int
	ExpectedToAmount  *big.Int
	RealizedToAmount  *big.Int
	TransactionHandle string
	Status            string
	FailureReason     string
	CreatedAt         time.Time
}

// Conversion is the persisted aggregate for one conversion request, covering
// the plan figures and the per-hop transaction records.
type Conversion struct {
	ID                  uuid.UUID
	FromToken           string
	ToToken             string
	FromAmount          *big.Int
	Status              string
	RouteKind           string
	HopCount            int
	EstimatedOutput     *big.Int
	MinAcceptableOutput *big.Int
	RealizedOutput      *big.Int
	TotalFees           *big.Int
	PriceImpact         float64
	SlippageBps         int32
	DestinationAddress  string
	FailureReason       string
	Records             []TransactionRecord
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Token describes an entry in the supported token registry.
type Token struct {
	ID              uuid.UUID
	Symbol          string
	Name            string
	Decimals        int32
	Chain           string
	ContractAddress string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
