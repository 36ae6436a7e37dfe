package responses

// ConversionPlanResponse represents an executable conversion plan.
// Amounts are decimal strings in smallest units.
type ConversionPlanResponse struct {
	Object                   string        `json:"object"`
	Route                    RouteResponse `json:"route"`
	SlippageBps              int32         `json:"slippage_bps"`
	EstimatedOutput          string        `json:"estimated_output"`
	MinAcceptableOutput      string        `json:"min_acceptable_output"`
	TotalFees                string        `json:"total_fees"`
	PriceImpact              float64       `json:"price_impact"`
	EstimatedDurationSeconds int           `json:"estimated_duration_seconds"`
	CreatedAt                int64         `json:"created_at"`
}

// TransactionRecordResponse represents one executed hop of a conversion
type TransactionRecordResponse struct {
	HopIndex          int    `json:"hop_index"`
	Provider          string `json:"provider"`
	FromToken         string `json:"from_token"`
	ToToken           string `json:"to_token"`
	FromAmount        string `json:"from_amount"`
	ExpectedToAmount  string `json:"expected_to_amount"`
	RealizedToAmount  string `json:"realized_to_amount,omitempty"`
	TransactionHandle string `json:"transaction_handle,omitempty"`
	Status            string `json:"status"`
	FailureReason     string `json:"failure_reason,omitempty"`
	CreatedAt         int64  `json:"created_at"`
}

// ConversionResponse represents the standardized API response for a conversion
type ConversionResponse struct {
	ID                  string                      `json:"id"`
	Object              string                      `json:"object"`
	FromToken           string                      `json:"from_token"`
	ToToken             string                      `json:"to_token"`
	FromAmount          string                      `json:"from_amount"`
	Status              string                      `json:"status"`
	RouteKind           string                      `json:"route_kind"`
	HopCount            int                         `json:"hop_count"`
	EstimatedOutput     string                      `json:"estimated_output"`
	MinAcceptableOutput string                      `json:"min_acceptable_output"`
	RealizedOutput      string                      `json:"realized_output,omitempty"`
	TotalFees           string                      `json:"total_fees"`
	PriceImpact         float64                     `json:"price_impact"`
	SlippageBps         int32                       `json:"slippage_bps"`
	DestinationAddress  string                      `json:"destination_address"`
	FailureReason       string                      `json:"failure_reason,omitempty"`
	Records             []TransactionRecordResponse `json:"records,omitempty"`
	CreatedAt           int64                       `json:"created_at"`
	UpdatedAt           int64                       `json:"updated_at"`
}

// ListConversionsResponse represents a paginated conversion listing
type ListConversionsResponse struct {
	Object  string               `json:"object"`
	Data    []ConversionResponse `json:"data"`
	HasMore bool                 `json:"has_more"`
}
