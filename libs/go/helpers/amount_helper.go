package helpers

import (
	"fmt"
	"math/big"
)

// BpsDenominator is the basis point scale (10000 bps = 100%)
const BpsDenominator = 10000

// ApplyRate multiplies an integer token amount by a float rate and floors the
// result. Used to reconstruct expected outputs from cached rates; exact
// provider figures are preferred wherever available.
func ApplyRate(amount *big.Int, rate float64) *big.Int {
	if amount == nil || rate <= 0 {
		return big.NewInt(0)
	}

	amountFloat := new(big.Float).SetInt(amount)
	product := new(big.Float).Mul(amountFloat, big.NewFloat(rate))

	result, _ := product.Int(nil)
	return result
}

// Ratio returns toAmount/fromAmount as a float64. A nil or zero fromAmount
// yields 0.
func Ratio(toAmount, fromAmount *big.Int) float64 {
	if toAmount == nil || fromAmount == nil || fromAmount.Sign() == 0 {
		return 0
	}

	toFloat := new(big.Float).SetInt(toAmount)
	fromFloat := new(big.Float).SetInt(fromAmount)
	ratio := new(big.Float).Quo(toFloat, fromFloat)

	result, _ := ratio.Float64()
	return result
}

// ApplySlippage reduces an amount by the given basis points using exact
// integer arithmetic: amount * (10000 - bps) / 10000, floored.
func ApplySlippage(amount *big.Int, bps int32) *big.Int {
	if amount == nil {
		return big.NewInt(0)
	}

	numerator := new(big.Int).Mul(amount, big.NewInt(int64(BpsDenominator-bps)))
	return numerator.Div(numerator, big.NewInt(BpsDenominator))
}

// ParseAmount parses a non-negative decimal string into a big.Int.
func ParseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("amount %q is negative", s)
	}
	return amount, nil
}

// SumAmounts adds a list of amounts, skipping nil entries.
func SumAmounts(amounts ...*big.Int) *big.Int {
	total := new(big.Int)
	for _, a := range amounts {
		if a != nil {
			total.Add(total, a)
		}
	}
	return total
}
