package handlers

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/services"
	"github.com/starkport/starkport-api/libs/go/testutil"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

// These tests run real services over the mocked store, exercising the whole
// path from routing and JSON binding down to the query layer. The handler
// tests above stub the service layer instead.

func mustBigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad big.Int literal %q", s)
	return v
}

func TestConversionExecution_FullStackOverMockStore(t *testing.T) {
	testutil.SetupTestEnvironment(t)

	const destination = "0x00112233445566778899aabbccddeeff00112233"

	amount := mustBigInt(t, "1000000000000000000")
	expected := mustBigInt(t, "3700000000000000000000")
	minOut := mustBigInt(t, "3681500000000000000000")
	realized := mustBigInt(t, "3690000000000000000000")

	var executedDestination string
	provider := &testutil.FakeProvider{
		ProviderName: "layerswap",
		QuoteFunc: func(_ context.Context, _, _ string, amt *big.Int) (*business.ProviderQuote, error) {
			out, _ := new(big.Float).Mul(new(big.Float).SetInt(amt), big.NewFloat(3700)).Int(nil)
			return &business.ProviderQuote{
				ToAmount:             out,
				Fees:                 big.NewInt(0),
				EstimatedTimeSeconds: 120,
			}, nil
		},
		ExecuteFunc: func(_ context.Context, hop business.RouteHop, dest string) (*business.ExecutionReceipt, error) {
			executedDestination = dest
			return &business.ExecutionReceipt{
				TransactionHandle: "0xfeedface",
				RealizedToAmount:  new(big.Int).Set(realized),
			}, nil
		},
	}

	aggregator := services.NewRateAggregator([]interfaces.RateProvider{provider}, services.NewRateCache(time.Minute), time.Second)
	hopRouter := services.NewMultiHopRouter(aggregator, nil, 0)
	planner := services.NewConversionPlanner()
	executor := services.NewConversionExecutor([]interfaces.RateProvider{provider})

	mockDB := testutil.NewMockDatabase(t)
	conversionService := services.NewConversionService(mockDB.Querier, hopRouter, planner, executor, nil)
	handler := NewConversionHandler(CreateTestCommonServices(mockDB.Querier), conversionService, nil, 0)

	router := gin.New()
	router.POST("/conversions", handler.ExecuteConversion)

	convID := uuid.New()
	ts := pgtype.Timestamptz{Time: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), Valid: true}
	pendingRow := db.Conversion{
		ID:                  convID,
		FromToken:           "ETH",
		ToToken:             "USDC",
		FromAmount:          db.NumericFromBigInt(amount),
		Status:              constants.ConversionStatusPending,
		RouteKind:           constants.RouteKindDirect,
		HopCount:            1,
		EstimatedOutput:     db.NumericFromBigInt(expected),
		MinAcceptableOutput: db.NumericFromBigInt(minOut),
		TotalFees:           db.NumericFromBigInt(big.NewInt(0)),
		PriceImpact:         0.005,
		SlippageBps:         50,
		DestinationAddress:  destination,
		CreatedAt:           ts,
		UpdatedAt:           ts,
	}
	executingRow := pendingRow
	executingRow.Status = constants.ConversionStatusExecuting
	completedRow := pendingRow
	completedRow.Status = constants.ConversionStatusCompleted
	completedRow.RealizedOutput = db.NumericFromBigInt(realized)

	mockDB.ExpectCreateConversion(pendingRow)
	mockDB.ExpectStatusUpdate(convID, constants.ConversionStatusExecuting, executingRow)
	mockDB.ExpectTransactionRecords(1)
	mockDB.ExpectConversionCompleted(completedRow)

	w := testutil.PerformRequest(t, router, http.MethodPost, "/conversions", ExecuteConversionRequest{
		FromToken:          "ETH",
		ToToken:            "USDC",
		Amount:             amount.String(),
		DestinationAddress: destination,
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp ConversionResponse
	testutil.DecodeResponse(t, w, &resp)

	assert.Equal(t, convID.String(), resp.ID)
	assert.Equal(t, constants.ConversionStatusCompleted, resp.Status)
	assert.Equal(t, constants.RouteKindDirect, resp.RouteKind)
	assert.Equal(t, "ETH", resp.FromToken)
	assert.Equal(t, "USDC", resp.ToToken)
	assert.Equal(t, amount.String(), resp.FromAmount)
	assert.Equal(t, expected.String(), resp.EstimatedOutput)
	assert.Equal(t, minOut.String(), resp.MinAcceptableOutput)
	assert.Equal(t, realized.String(), resp.RealizedOutput)
	assert.Equal(t, destination, resp.DestinationAddress)
	assert.Equal(t, destination, executedDestination)

	require.Len(t, resp.Records, 1)
	record := resp.Records[0]
	assert.Equal(t, 0, record.HopIndex)
	assert.Equal(t, "layerswap", record.Provider)
	assert.Equal(t, "ETH", record.FromToken)
	assert.Equal(t, "USDC", record.ToToken)
	assert.Equal(t, amount.String(), record.FromAmount)
	assert.Equal(t, expected.String(), record.ExpectedToAmount)
	assert.Equal(t, realized.String(), record.RealizedToAmount)
	assert.Equal(t, "0xfeedface", record.TransactionHandle)
	assert.Equal(t, constants.TransactionStatusConfirmed, record.Status)
}

func TestConversionLookup_FullStackOverMockStore(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	conversionService := services.NewConversionService(mockDB.Querier, nil, nil, nil, nil)
	handler := NewConversionHandler(CreateTestCommonServices(mockDB.Querier), conversionService, nil, 0)

	router := gin.New()
	router.GET("/conversions/:conversion_id", handler.GetConversion)

	convID := uuid.New()
	ts := pgtype.Timestamptz{Time: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), Valid: true}
	row := db.Conversion{
		ID:                  convID,
		FromToken:           "STRK",
		ToToken:             "WBTC",
		FromAmount:          db.NumericFromBigInt(big.NewInt(1_000_000_000)),
		Status:              constants.ConversionStatusCompleted,
		RouteKind:           constants.RouteKindMultiHop,
		HopCount:            2,
		EstimatedOutput:     db.NumericFromBigInt(big.NewInt(156_250)),
		MinAcceptableOutput: db.NumericFromBigInt(big.NewInt(155_468)),
		RealizedOutput:      db.NumericFromBigInt(big.NewInt(156_000)),
		TotalFees:           db.NumericFromBigInt(big.NewInt(2_000)),
		PriceImpact:         0.010,
		SlippageBps:         50,
		DestinationAddress:  "0x00112233445566778899aabbccddeeff00112233",
		CreatedAt:           ts,
		UpdatedAt:           ts,
	}
	txRow := db.ConversionTransaction{
		ID:                uuid.New(),
		ConversionID:      convID,
		HopIndex:          0,
		Provider:          "avnu",
		FromToken:         "STRK",
		ToToken:           "ETH",
		FromAmount:        db.NumericFromBigInt(big.NewInt(1_000_000_000)),
		ExpectedToAmount:  db.NumericFromBigInt(big.NewInt(250_000)),
		RealizedToAmount:  db.NumericFromBigInt(big.NewInt(249_000)),
		TransactionHandle: db.TextFromString("0xaa11"),
		Status:            constants.TransactionStatusConfirmed,
		CreatedAt:         ts,
	}

	mockDB.ExpectConversionExists(convID, &row)
	mockDB.ExpectConversionTransactions(convID, []db.ConversionTransaction{txRow})

	w := testutil.PerformRequest(t, router, http.MethodGet, "/conversions/"+convID.String(), nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ConversionResponse
	testutil.DecodeResponse(t, w, &resp)
	assert.Equal(t, convID.String(), resp.ID)
	assert.Equal(t, constants.RouteKindMultiHop, resp.RouteKind)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "avnu", resp.Records[0].Provider)
	assert.Equal(t, "249000", resp.Records[0].RealizedToAmount)

	missingID := uuid.New()
	mockDB.ExpectConversionExists(missingID, nil)

	w = testutil.PerformRequest(t, router, http.MethodGet, "/conversions/"+missingID.String(), nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTokenLookup_FullStackOverMockStore(t *testing.T) {
	mockDB := testutil.NewMockDatabase(t)
	tokenService := services.NewTokenService(mockDB.Querier)
	handler := NewTokenHandler(CreateTestCommonServices(mockDB.Querier), tokenService)

	router := gin.New()
	router.GET("/tokens/:symbol", handler.GetTokenBySymbol)
	server := testutil.TestServer(t, router)

	ts := pgtype.Timestamptz{Time: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), Valid: true}
	token := db.Token{
		ID:              uuid.New(),
		Symbol:          "ETH",
		Name:            "Ether",
		Decimals:        18,
		Chain:           "ethereum",
		ContractAddress: "0x1234567890123456789012345678901234567890",
		Active:          true,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	mockDB.ExpectTokenBySymbol("ETH", &token)

	resp, err := http.Get(server.URL + "/tokens/ETH")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ETH", body.Symbol)
	assert.Equal(t, "token", body.Object)
	assert.Equal(t, int32(18), body.Decimals)

	mockDB.ExpectTokenBySymbol("DOGE", nil)

	missingResp, err := http.Get(server.URL + "/tokens/DOGE")
	require.NoError(t, err)
	defer missingResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, missingResp.StatusCode)
}
