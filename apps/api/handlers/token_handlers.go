package handlers

import (
	"net/http"

	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/types/api/requests"
	"github.com/starkport/starkport-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// TokenHandler handles token registry operations
type TokenHandler struct {
	common       *CommonServices
	tokenService interfaces.TokenService
}

// Use types from the centralized packages
type CreateTokenRequest = requests.CreateTokenRequest

type TokenResponse = responses.TokenResponse
type ListTokensResponse = responses.ListTokensResponse

// NewTokenHandler creates a handler with interface dependencies
func NewTokenHandler(
	common *CommonServices,
	tokenService interfaces.TokenService,
) *TokenHandler {
	return &TokenHandler{
		common:       common,
		tokenService: tokenService,
	}
}

// ListTokens godoc
// @Summary List tokens
// @Description Retrieves the supported token registry ordered by symbol
// @Tags tokens
// @Accept json
// @Produce json
// @Success 200 {object} ListTokensResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tokens [get]
func (h *TokenHandler) ListTokens(c *gin.Context) {
	tokens, err := h.tokenService.ListTokens(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	response := make([]responses.TokenResponse, len(tokens))
	for i, token := range tokens {
		response[i] = helpers.ToTokenResponse(token)
	}

	sendList(c, response)
}

// GetTokenBySymbol godoc
// @Summary Get token by symbol
// @Description Get token details by symbol
// @Tags tokens
// @Accept json
// @Produce json
// @Param symbol path string true "Token symbol"
// @Success 200 {object} TokenResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tokens/{symbol} [get]
func (h *TokenHandler) GetTokenBySymbol(c *gin.Context) {
	symbol := c.Param("symbol")

	token, err := h.tokenService.GetTokenBySymbol(c.Request.Context(), symbol)
	if err != nil {
		if isNotFound(err) {
			sendError(c, http.StatusNotFound, "Token not found", nil)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToTokenResponse(*token))
}

// CreateToken godoc
// @Summary Register token
// @Description Registers a token in the supported token registry
// @Tags tokens
// @Accept json
// @Produce json
// @Param token body CreateTokenRequest true "Token details"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tokens [post]
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, err := h.tokenService.CreateToken(c.Request.Context(), interfaces.CreateTokenParams{
		Symbol:          req.Symbol,
		Name:            req.Name,
		Decimals:        req.Decimals,
		Chain:           req.Chain,
		ContractAddress: req.ContractAddress,
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusCreated, helpers.ToTokenResponse(*token))
}
