package business

import "math/big"

// RouteHop is one leg of a conversion route. Fields are copied from the
// winning quote so the hop is self-contained for execution.
type RouteHop struct {
	FromToken            string
	ToToken              string
	FromAmount           *big.Int
	ExpectedOutput       *big.Int
	BridgeID             string
	Rate                 float64
	Fees                 *big.Int
	EstimatedTimeSeconds int
}

// ConversionRoute is an ordered sequence of hops converting FromToken into
// ToToken. Kind is one of the route kind constants (direct or multi_hop).
// ExpectedOutput is the final hop's expected output.
type ConversionRoute struct {
	FromToken      string
	ToToken        string
	FromAmount     *big.Int
	Kind           string
	Hops           []RouteHop
	ExpectedOutput *big.Int
}
