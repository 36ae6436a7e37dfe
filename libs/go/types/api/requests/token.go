package requests

// CreateTokenRequest represents the request body for registering a token
type CreateTokenRequest struct {
	Symbol          string `json:"symbol" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Decimals        int32  `json:"decimals"`
	Chain           string `json:"chain" binding:"required"`
	ContractAddress string `json:"contract_address,omitempty"`
}
