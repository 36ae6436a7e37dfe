package layerswap

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/starkport/starkport-api/libs/go/client/http"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

func init() {
	logger.InitLogger("test")
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", httpclient.WithRetryConfig(nil))
}

func testHop() business.RouteHop {
	return business.RouteHop{
		FromToken:      "ETH",
		ToToken:        "USDC",
		FromAmount:     big.NewInt(1000000000000000000),
		ExpectedOutput: big.NewInt(3700000000),
		BridgeID:       "layerswap",
	}
}

func TestClient_Name(t *testing.T) {
	client := NewClient("", "key")
	assert.Equal(t, "layerswap", client.Name())
}

func TestClient_Quote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/quote", r.URL.Path)
		assert.Equal(t, "ETH", r.URL.Query().Get("source_token"))
		assert.Equal(t, "USDC", r.URL.Query().Get("destination_token"))
		assert.Equal(t, "1000000000000000000", r.URL.Query().Get("amount"))
		assert.Equal(t, "test-key", r.Header.Get("X-LS-APIKEY"))

		json.NewEncoder(w).Encode(quoteEnvelope{Data: swapQuote{
			SourceToken:          "ETH",
			DestinationToken:     "USDC",
			ReceiveAmount:        "3700000000",
			TotalFee:             "500000",
			AvgCompletionSeconds: 120,
		}})
	})

	quote, err := client.Quote(context.Background(), "ETH", "USDC", big.NewInt(1000000000000000000))

	require.NoError(t, err)
	assert.Equal(t, "3700000000", quote.ToAmount.String())
	assert.Equal(t, "500000", quote.Fees.String())
	assert.Equal(t, 120, quote.EstimatedTimeSeconds)
}

func TestClient_Quote_MissingFeeDefaultsToZero(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(quoteEnvelope{Data: swapQuote{ReceiveAmount: "3700000000"}})
	})

	quote, err := client.Quote(context.Background(), "ETH", "USDC", big.NewInt(1000))

	require.NoError(t, err)
	assert.Equal(t, "0", quote.Fees.String())
}

func TestClient_Quote_InvalidAmount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for invalid amounts")
	})

	for _, amount := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1)} {
		quote, err := client.Quote(context.Background(), "ETH", "USDC", amount)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount must be positive")
		assert.Nil(t, quote)
	}
}

func TestClient_Quote_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"pair not supported"}`, http.StatusNotFound)
	})

	quote, err := client.Quote(context.Background(), "ETH", "XYZ", big.NewInt(1000))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "layerswap quote request failed")
	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Nil(t, quote)
}

func TestClient_Quote_InvalidReceiveAmount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(quoteEnvelope{Data: swapQuote{ReceiveAmount: "3.7e9"}})
	})

	quote, err := client.Quote(context.Background(), "ETH", "USDC", big.NewInt(1000))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid receive_amount")
	assert.Nil(t, quote)
}

func TestClient_Quote_RetriesRetryableStatus(t *testing.T) {
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(quoteEnvelope{Data: swapQuote{ReceiveAmount: "3700000000"}})
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", httpclient.WithRetryConfig(&httpclient.RetryConfig{
		MaxRetries:           3,
		InitialInterval:      time.Millisecond,
		MaxInterval:          5 * time.Millisecond,
		Multiplier:           2.0,
		MaxElapsedTime:       time.Second,
		RetryableStatusCodes: []int{http.StatusServiceUnavailable},
	}))

	quote, err := client.Quote(context.Background(), "ETH", "USDC", big.NewInt(1000))

	require.NoError(t, err)
	assert.Equal(t, "3700000000", quote.ToAmount.String())
	assert.Equal(t, int64(3), attempts.Load())
}

func TestClient_Execute(t *testing.T) {
	destination := "0x1234567890abcdef1234567890abcdef12345678"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v2/swaps", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-LS-APIKEY"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		var payload createSwapRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ETH", payload.SourceToken)
		assert.Equal(t, "USDC", payload.DestinationToken)
		assert.Equal(t, "1000000000000000000", payload.Amount)
		assert.Equal(t, destination, payload.DestinationAddress)

		json.NewEncoder(w).Encode(swapEnvelope{Data: swapResult{
			ID:              "swap-1",
			Status:          "completed",
			TransactionHash: "0xabc123",
			ReceivedAmount:  "3695000000",
		}})
	})

	receipt, err := client.Execute(context.Background(), testHop(), destination)

	require.NoError(t, err)
	assert.Equal(t, "0xabc123", receipt.TransactionHandle)
	assert.Equal(t, "3695000000", receipt.RealizedToAmount.String())
}

func TestClient_Execute_FallsBackToSwapID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(swapEnvelope{Data: swapResult{
			ID:             "swap-2",
			Status:         "completed",
			ReceivedAmount: "3695000000",
		}})
	})

	receipt, err := client.Execute(context.Background(), testHop(), "0x1234567890abcdef1234567890abcdef12345678")

	require.NoError(t, err)
	assert.Equal(t, "swap-2", receipt.TransactionHandle)
}

func TestClient_Execute_NotCompleted(t *testing.T) {
	tests := []struct {
		name       string
		result     swapResult
		wantReason string
	}{
		{
			name:       "failure reason reported",
			result:     swapResult{ID: "swap-3", Status: "failed", FailureReason: "insufficient liquidity"},
			wantReason: "insufficient liquidity",
		},
		{
			name:       "status stands in for a missing reason",
			result:     swapResult{ID: "swap-4", Status: "processing"},
			wantReason: "processing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(swapEnvelope{Data: tt.result})
			})

			receipt, err := client.Execute(context.Background(), testHop(), "0x1234567890abcdef1234567890abcdef12345678")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "not completed: "+tt.wantReason)
			assert.Nil(t, receipt)
		})
	}
}

func TestClient_Execute_InvalidHopAmount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for invalid hop amounts")
	})

	hop := testHop()
	hop.FromAmount = nil

	receipt, err := client.Execute(context.Background(), hop, "0x1234567890abcdef1234567890abcdef12345678")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hop amount must be positive")
	assert.Nil(t, receipt)
}
