package handlers

import (
	"errors"
	"net/http"

	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/services"
	"github.com/starkport/starkport-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// RouteHandler handles route resolution previews
type RouteHandler struct {
	common       *CommonServices
	routeService interfaces.RouteService
}

// Use types from the centralized packages
type RouteResponse = responses.RouteResponse

// NewRouteHandler creates a handler with interface dependencies
func NewRouteHandler(
	common *CommonServices,
	routeService interfaces.RouteService,
) *RouteHandler {
	return &RouteHandler{
		common:       common,
		routeService: routeService,
	}
}

// GetRoute godoc
// @Summary Resolve conversion route
// @Description Finds the best route for a conversion, directly or through an intermediate token
// @Tags routes
// @Accept json
// @Produce json
// @Param from query string true "Source token symbol"
// @Param to query string true "Destination token symbol"
// @Param amount query string true "Input amount in smallest units"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /routes [get]
func (h *RouteHandler) GetRoute(c *gin.Context) {
	fromToken, toToken, amount, ok := parseRateQuery(c)
	if !ok {
		return
	}

	route, err := h.routeService.GetRoute(c.Request.Context(), fromToken, toToken, amount)
	if err != nil {
		if errors.Is(err, services.ErrNoRouteFound) {
			sendError(c, http.StatusNotFound, "No conversion route found", err)
			return
		}
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ToRouteResponse(*route))
}
