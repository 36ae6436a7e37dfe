package handlers

import (
	"errors"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/metrics"
	"github.com/starkport/starkport-api/libs/go/services"
	"github.com/starkport/starkport-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// RateHandler handles best-rate queries and rate cache administration
type RateHandler struct {
	common      *CommonServices
	rateService interfaces.RateService
	metrics     *metrics.Metrics
}

// Use types from the centralized packages
type RateQuoteResponse = responses.RateQuoteResponse
type CacheStatsResponse = responses.CacheStatsResponse
type CacheRefreshResponse = responses.CacheRefreshResponse

// NewRateHandler creates a handler with interface dependencies
func NewRateHandler(
	common *CommonServices,
	rateService interfaces.RateService,
	m *metrics.Metrics,
) *RateHandler {
	return &RateHandler{
		common:      common,
		rateService: rateService,
		metrics:     m,
	}
}

// parseRateQuery extracts and validates the from/to/amount query parameters
// shared by the rate and route endpoints.
func parseRateQuery(c *gin.Context) (fromToken, toToken string, amount *big.Int, ok bool) {
	fromToken = strings.ToUpper(strings.TrimSpace(c.Query("from")))
	toToken = strings.ToUpper(strings.TrimSpace(c.Query("to")))
	if fromToken == "" || toToken == "" {
		sendError(c, http.StatusBadRequest, "from and to query parameters are required", nil)
		return "", "", nil, false
	}

	amount, err := helpers.ParseAmount(c.Query("amount"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid amount parameter", err)
		return "", "", nil, false
	}

	return fromToken, toToken, amount, true
}

// GetBestRate godoc
// @Summary Get best conversion rate
// @Description Aggregates quotes across all providers and returns the best one
// @Tags rates
// @Accept json
// @Produce json
// @Param from query string true "Source token symbol"
// @Param to query string true "Destination token symbol"
// @Param amount query string true "Input amount in smallest units"
// @Success 200 {object} RateQuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /rates/best [get]
func (h *RateHandler) GetBestRate(c *gin.Context) {
	fromToken, toToken, amount, ok := parseRateQuery(c)
	if !ok {
		return
	}

	quote, err := h.rateService.GetBestRate(c.Request.Context(), fromToken, toToken, amount)
	if err != nil {
		if errors.Is(err, services.ErrNoRouteFound) {
			h.recordLookup("no_route")
			sendError(c, http.StatusNotFound, "No provider could quote this conversion", err)
			return
		}
		h.recordLookup("error")
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	if quote.BridgeID == constants.CachedBridgeID {
		h.recordLookup("cache_hit")
	} else {
		h.recordLookup("aggregated")
	}

	sendSuccess(c, http.StatusOK, helpers.ToRateQuoteResponse(*quote, amount))
}

// GetCacheStats godoc
// @Summary Rate cache statistics
// @Description Reports rate cache occupancy counters
// @Tags rates
// @Accept json
// @Produce json
// @Success 200 {object} CacheStatsResponse
// @Security ApiKeyAuth
// @Router /rates/cache/stats [get]
func (h *RateHandler) GetCacheStats(c *gin.Context) {
	stats := h.rateService.CacheStats()
	stats["object"] = "cache_stats"
	sendSuccess(c, http.StatusOK, stats)
}

// RefreshCache godoc
// @Summary Evict expired rate cache entries
// @Description Sweeps the rate cache and reports how many entries were evicted
// @Tags rates
// @Accept json
// @Produce json
// @Success 200 {object} CacheRefreshResponse
// @Security ApiKeyAuth
// @Router /rates/cache/refresh [post]
func (h *RateHandler) RefreshCache(c *gin.Context) {
	evicted := h.rateService.RefreshCache(time.Now())
	sendSuccess(c, http.StatusOK, CacheRefreshResponse{
		Object:  "cache_refresh",
		Evicted: evicted,
	})
}

func (h *RateHandler) recordLookup(outcome string) {
	if h.metrics != nil {
		h.metrics.RecordRateLookup(outcome)
	}
}
