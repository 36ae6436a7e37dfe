package middleware

import (
	"fmt"

	"github.com/starkport/starkport-api/libs/go/helpers"
)

// Validation configurations for the conversion API endpoints.
//
// Amounts travel as decimal strings in the token's smallest unit, so they are
// validated as digit strings rather than JSON numbers. 78 digits covers the
// full uint256 range.

const maxAmountDigits = 78

// tokenSymbolPattern matches raw symbols before the handlers normalize them
// to uppercase.
const tokenSymbolPattern = `^[A-Za-z0-9]{2,12}$`

const amountPattern = `^[0-9]+$`

// PlanConversionValidation for POST /api/v1/conversions/plan
var PlanConversionValidation = ValidationConfig{
	MaxBodySize:        64 * 1024,
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "from_token",
			Type:     "string",
			Required: true,
			Pattern:  tokenSymbolPattern,
		},
		{
			Field:    "to_token",
			Type:     "string",
			Required: true,
			Pattern:  tokenSymbolPattern,
		},
		{
			Field:     "amount",
			Type:      "string",
			Required:  true,
			MaxLength: maxAmountDigits,
			Pattern:   amountPattern,
		},
		{
			Field:    "slippage_bps",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(0),
			Max:      float64Ptr(10000),
		},
	},
}

// ExecuteConversionValidation for POST /api/v1/conversions
var ExecuteConversionValidation = ValidationConfig{
	MaxBodySize:        64 * 1024,
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "from_token",
			Type:     "string",
			Required: true,
			Pattern:  tokenSymbolPattern,
		},
		{
			Field:    "to_token",
			Type:     "string",
			Required: true,
			Pattern:  tokenSymbolPattern,
		},
		{
			Field:     "amount",
			Type:      "string",
			Required:  true,
			MaxLength: maxAmountDigits,
			Pattern:   amountPattern,
		},
		{
			Field:    "slippage_bps",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(0),
			Max:      float64Ptr(10000),
		},
		{
			Field:    "destination_address",
			Type:     "string",
			Required: true,
			Custom:   ValidateDestinationAddress(),
		},
	},
}

// CreateTokenValidation for POST /api/v1/tokens
var CreateTokenValidation = ValidationConfig{
	MaxBodySize:        64 * 1024,
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "symbol",
			Type:     "string",
			Required: true,
			Pattern:  tokenSymbolPattern,
		},
		{
			Field:     "name",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 100,
			Sanitize:  true,
		},
		{
			Field:    "decimals",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(0),
			Max:      float64Ptr(36),
		},
		{
			Field:     "chain",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 50,
			Sanitize:  true,
		},
		{
			Field:    "contract_address",
			Type:     "string",
			Required: false,
			Custom: func(value interface{}) error {
				str, ok := value.(string)
				if !ok {
					return fmt.Errorf("must be a string")
				}
				// Native tokens have no contract address
				if str == "" {
					return nil
				}
				if !helpers.IsAddressValid(str) {
					return fmt.Errorf("must be a valid contract address")
				}
				return nil
			},
		},
	},
}

// BestRateQueryValidation for GET /api/v1/rates/best query parameters
var BestRateQueryValidation = ValidationConfig{
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "from",
			Type:     "string",
			Required: true,
			Pattern:  tokenSymbolPattern,
		},
		{
			Field:    "to",
			Type:     "string",
			Required: true,
			Pattern:  tokenSymbolPattern,
		},
		{
			Field:     "amount",
			Type:      "string",
			Required:  true,
			MaxLength: maxAmountDigits,
			Pattern:   amountPattern,
		},
	},
}

// RouteQueryValidation for GET /api/v1/routes query parameters
var RouteQueryValidation = BestRateQueryValidation

// ListConversionsQueryValidation for GET /api/v1/conversions query parameters
var ListConversionsQueryValidation = ValidationConfig{
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "limit",
			Type:     "string",
			Required: false,
			Pattern:  `^[0-9]{1,4}$`,
		},
		{
			Field:    "offset",
			Type:     "string",
			Required: false,
			Pattern:  `^[0-9]{1,9}$`,
		},
	},
}

// ValidateDestinationAddress validates the address tokens are delivered to.
func ValidateDestinationAddress() func(interface{}) error {
	return func(value interface{}) error {
		address, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string")
		}
		if !helpers.IsAddressValid(address) {
			return fmt.Errorf("must be a valid destination address")
		}
		return nil
	}
}
