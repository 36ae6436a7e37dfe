package responses

// TokenResponse represents the standardized API response for token operations
type TokenResponse struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	Decimals        int32  `json:"decimals"`
	Chain           string `json:"chain"`
	ContractAddress string `json:"contract_address,omitempty"`
	Active          bool   `json:"active"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

// ListTokensResponse represents the token registry listing
type ListTokensResponse struct {
	Object string          `json:"object"`
	Data   []TokenResponse `json:"data"`
}
