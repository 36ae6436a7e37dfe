package requests

// PlanConversionRequest represents the request body for planning a conversion.
// Amount is the input amount as a decimal string in the token's smallest
// units. SlippageBps is optional; the default tolerance applies when omitted.
type PlanConversionRequest struct {
	FromToken   string `json:"from_token" binding:"required"`
	ToToken     string `json:"to_token" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	SlippageBps *int32 `json:"slippage_bps,omitempty"`
}

// ExecuteConversionRequest represents the request body for executing a conversion
type ExecuteConversionRequest struct {
	FromToken          string `json:"from_token" binding:"required"`
	ToToken            string `json:"to_token" binding:"required"`
	Amount             string `json:"amount" binding:"required"`
	SlippageBps        *int32 `json:"slippage_bps,omitempty"`
	DestinationAddress string `json:"destination_address" binding:"required"`
}
