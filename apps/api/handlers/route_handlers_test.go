package handlers

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/mocks"
	"github.com/starkport/starkport-api/libs/go/services"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

func newRouteTestRouter(t *testing.T) (*gin.Engine, *mocks.MockRouteService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	routeService := mocks.NewMockRouteServiceForTest(t)
	handler := NewRouteHandler(CreateTestCommonServices(nil), routeService)

	router := gin.New()
	router.GET("/routes", handler.GetRoute)
	return router, routeService
}

func TestRouteHandler_GetRoute_Direct(t *testing.T) {
	router, routeService := newRouteTestRouter(t)

	amount := big.NewInt(1000000000000000000)
	routeService.EXPECT().
		GetRoute(gomock.Any(), "ETH", "USDC", amount).
		Return(&business.ConversionRoute{
			FromToken:  "ETH",
			ToToken:    "USDC",
			FromAmount: amount,
			Kind:       constants.RouteKindDirect,
			Hops: []business.RouteHop{
				{
					FromToken:            "ETH",
					ToToken:              "USDC",
					FromAmount:           amount,
					ExpectedOutput:       big.NewInt(3700000000),
					BridgeID:             "layerswap",
					Rate:                 3.7e-9,
					Fees:                 big.NewInt(500000),
					EstimatedTimeSeconds: 120,
				},
			},
			ExpectedOutput: big.NewInt(3700000000),
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/routes?from=ETH&to=USDC&amount=1000000000000000000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Object         string `json:"object"`
		Kind           string `json:"kind"`
		FromToken      string `json:"from_token"`
		ToToken        string `json:"to_token"`
		ExpectedOutput string `json:"expected_output"`
		Hops           []struct {
			BridgeID       string `json:"bridge_id"`
			ExpectedOutput string `json:"expected_output"`
			Fees           string `json:"fees"`
		} `json:"hops"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "route", resp.Object)
	assert.Equal(t, constants.RouteKindDirect, resp.Kind)
	assert.Equal(t, "ETH", resp.FromToken)
	assert.Equal(t, "USDC", resp.ToToken)
	assert.Equal(t, "3700000000", resp.ExpectedOutput)
	require.Len(t, resp.Hops, 1)
	assert.Equal(t, "layerswap", resp.Hops[0].BridgeID)
	assert.Equal(t, "3700000000", resp.Hops[0].ExpectedOutput)
	assert.Equal(t, "500000", resp.Hops[0].Fees)
}

func TestRouteHandler_GetRoute_MultiHop(t *testing.T) {
	router, routeService := newRouteTestRouter(t)

	amount := big.NewInt(5000000)
	routeService.EXPECT().
		GetRoute(gomock.Any(), "STRK", "WBTC", amount).
		Return(&business.ConversionRoute{
			FromToken:  "STRK",
			ToToken:    "WBTC",
			FromAmount: amount,
			Kind:       constants.RouteKindMultiHop,
			Hops: []business.RouteHop{
				{FromToken: "STRK", ToToken: "ETH", FromAmount: amount, ExpectedOutput: big.NewInt(900000), BridgeID: "avnu", Rate: 0.18, Fees: big.NewInt(100)},
				{FromToken: "ETH", ToToken: "WBTC", FromAmount: big.NewInt(900000), ExpectedOutput: big.NewInt(54000), BridgeID: "layerswap", Rate: 0.06, Fees: big.NewInt(200)},
			},
			ExpectedOutput: big.NewInt(54000),
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/routes?from=STRK&to=WBTC&amount=5000000", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Kind string `json:"kind"`
		Hops []struct {
			FromToken string `json:"from_token"`
			ToToken   string `json:"to_token"`
		} `json:"hops"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, constants.RouteKindMultiHop, resp.Kind)
	require.Len(t, resp.Hops, 2)
	assert.Equal(t, "STRK", resp.Hops[0].FromToken)
	assert.Equal(t, "ETH", resp.Hops[0].ToToken)
	assert.Equal(t, "ETH", resp.Hops[1].FromToken)
	assert.Equal(t, "WBTC", resp.Hops[1].ToToken)
}

func TestRouteHandler_GetRoute_Errors(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(routeService *mocks.MockRouteService)
		expectedStatus int
	}{
		{
			name:           "missing query parameters",
			url:            "/routes?from=ETH",
			setupMocks:     func(routeService *mocks.MockRouteService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed amount",
			url:            "/routes?from=ETH&to=USDC&amount=lots",
			setupMocks:     func(routeService *mocks.MockRouteService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no route found",
			url:  "/routes?from=ETH&to=DOGE&amount=1000",
			setupMocks: func(routeService *mocks.MockRouteService) {
				routeService.EXPECT().
					GetRoute(gomock.Any(), "ETH", "DOGE", big.NewInt(1000)).
					Return(nil, services.ErrNoRouteFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, routeService := newRouteTestRouter(t)
			tt.setupMocks(routeService)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
