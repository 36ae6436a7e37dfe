package db

import (
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
)

// NumericFromBigInt converts an integer token amount into a pgtype.Numeric.
// A nil amount maps to SQL NULL.
func NumericFromBigInt(v *big.Int) pgtype.Numeric {
	if v == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Exp: 0, Valid: true}
}

// BigIntFromNumeric converts a pgtype.Numeric back into an integer amount.
// NULL maps to nil. Amounts are stored with exponent zero; a scaled value
// is normalized, truncating any fractional part.
func BigIntFromNumeric(n pgtype.Numeric) *big.Int {
	if !n.Valid || n.Int == nil {
		return nil
	}
	v := new(big.Int).Set(n.Int)
	switch {
	case n.Exp > 0:
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil))
	case n.Exp < 0:
		v.Quo(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n.Exp)), nil))
	}
	return v
}

// TextFromString converts a string into a pgtype.Text, mapping the empty
// string to SQL NULL.
func TextFromString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
