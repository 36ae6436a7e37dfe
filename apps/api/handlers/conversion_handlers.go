package handlers

import (
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/metrics"
	"github.com/starkport/starkport-api/libs/go/services"
	"github.com/starkport/starkport-api/libs/go/types/api/requests"
	"github.com/starkport/starkport-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ConversionHandler handles conversion planning, execution and retrieval
type ConversionHandler struct {
	common             *CommonServices
	conversionService  interfaces.ConversionService
	metrics            *metrics.Metrics
	defaultSlippageBps int32
}

// Use types from the centralized packages
type PlanConversionRequest = requests.PlanConversionRequest
type ExecuteConversionRequest = requests.ExecuteConversionRequest

type ConversionResponse = responses.ConversionResponse
type ConversionPlanResponse = responses.ConversionPlanResponse
type ListConversionsResponse = responses.ListConversionsResponse

// NewConversionHandler creates a handler with interface dependencies.
// defaultSlippageBps applies when a request omits its slippage tolerance; a
// non-positive value falls back to the engine default.
func NewConversionHandler(
	common *CommonServices,
	conversionService interfaces.ConversionService,
	m *metrics.Metrics,
	defaultSlippageBps int32,
) *ConversionHandler {
	if defaultSlippageBps <= 0 {
		defaultSlippageBps = services.DefaultSlippageBps
	}
	return &ConversionHandler{
		common:             common,
		conversionService:  conversionService,
		metrics:            m,
		defaultSlippageBps: defaultSlippageBps,
	}
}

// parseConversionInput normalizes token symbols and parses the amount string.
func parseConversionInput(fromToken, toToken, amount string) (string, string, *big.Int, error) {
	from := strings.ToUpper(strings.TrimSpace(fromToken))
	to := strings.ToUpper(strings.TrimSpace(toToken))

	parsed, err := helpers.ParseAmount(amount)
	if err != nil {
		return "", "", nil, errors.Wrap(err, "invalid amount")
	}

	return from, to, parsed, nil
}

// slippageOrDefault resolves the optional request slippage to the configured
// default tolerance when omitted.
func (h *ConversionHandler) slippageOrDefault(bps *int32) int32 {
	if bps == nil {
		return h.defaultSlippageBps
	}
	return *bps
}

// PlanConversion godoc
// @Summary Plan a conversion
// @Description Resolves the best route and builds an executable plan with slippage bounds. Nothing is persisted.
// @Tags conversions
// @Accept json
// @Produce json
// @Param plan body PlanConversionRequest true "Conversion to plan"
// @Success 200 {object} ConversionPlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /conversions/plan [post]
func (h *ConversionHandler) PlanConversion(c *gin.Context) {
	var req PlanConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fromToken, toToken, amount, err := parseConversionInput(req.FromToken, req.ToToken, req.Amount)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	plan, err := h.conversionService.PlanConversion(c.Request.Context(), fromToken, toToken, amount, h.slippageOrDefault(req.SlippageBps))
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordPlanCreated(plan.Route.Kind)
	}

	sendSuccess(c, http.StatusOK, helpers.ToConversionPlanResponse(*plan))
}

// ExecuteConversion godoc
// @Summary Execute a conversion
// @Description Plans and executes a conversion hop by hop, persisting the outcome. A failed execution still returns the conversion record with its failure reason.
// @Tags conversions
// @Accept json
// @Produce json
// @Param conversion body ExecuteConversionRequest true "Conversion to execute"
// @Success 201 {object} ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /conversions [post]
func (h *ConversionHandler) ExecuteConversion(c *gin.Context) {
	var req ExecuteConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fromToken, toToken, amount, err := parseConversionInput(req.FromToken, req.ToToken, req.Amount)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	started := time.Now()
	conversion, err := h.conversionService.ExecuteConversion(c.Request.Context(), interfaces.ExecuteConversionParams{
		FromToken:          fromToken,
		ToToken:            toToken,
		Amount:             amount,
		SlippageBps:        h.slippageOrDefault(req.SlippageBps),
		DestinationAddress: req.DestinationAddress,
	})
	if conversion == nil && err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDestination):
			sendError(c, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, services.ErrInvalidSlippage):
			sendError(c, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, services.ErrNoRouteFound):
			sendError(c, http.StatusNotFound, "No conversion route found", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to execute conversion", err)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.RecordConversion(conversion.RouteKind, conversion.Status, time.Since(started))
	}

	// Execution failures still produce a persisted conversion; the record
	// carries the failure reason and partial hop records.
	sendSuccess(c, http.StatusCreated, helpers.ToConversionResponse(*conversion))
}

// GetConversion godoc
// @Summary Get conversion by ID
// @Description Retrieves a conversion with its per-hop transaction records
// @Tags conversions
// @Accept json
// @Produce json
// @Param conversion_id path string true "Conversion ID"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /conversions/{conversion_id} [get]
func (h *ConversionHandler) GetConversion(c *gin.Context) {
	conversionID := c.Param("conversion_id")
	parsedUUID, err := uuid.Parse(conversionID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid conversion ID format", err)
		return
	}

	conversion, err := h.conversionService.GetConversion(c.Request.Context(), parsedUUID)
	if err != nil {
		if isNotFound(err) {
			sendError(c, http.StatusNotFound, "Conversion not found", nil)
			return
		}
		sendError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToConversionResponse(*conversion))
}

// ListConversions godoc
// @Summary List conversions
// @Description Retrieves conversions ordered by creation time, newest first
// @Tags conversions
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset into the result set"
// @Success 200 {object} ListConversionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /conversions [get]
func (h *ConversionHandler) ListConversions(c *gin.Context) {
	limit, offset, err := validateListParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	conversions, err := h.conversionService.ListConversions(c.Request.Context(), limit, offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	data := make([]responses.ConversionResponse, len(conversions))
	for i, conversion := range conversions {
		data[i] = helpers.ToConversionResponse(conversion)
	}

	sendSuccess(c, http.StatusOK, ListConversionsResponse{
		Object:  "list",
		Data:    data,
		HasMore: len(data) == int(limit),
	})
}

func (h *ConversionHandler) respondPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoRouteFound):
		sendError(c, http.StatusNotFound, "No conversion route found", err)
	case errors.Is(err, services.ErrInvalidSlippage):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	default:
		sendError(c, http.StatusBadRequest, err.Error(), err)
	}
}
