package layerswap

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	httpclient "github.com/starkport/starkport-api/libs/go/client/http"
	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

const (
	defaultBaseURL = "https://api.layerswap.io"
	defaultTimeout = 15 * time.Second

	swapStatusCompleted = "completed"
)

// Client manages communication with the Layerswap bridge API. It implements
// the provider interface for cross-chain conversions.
type Client struct {
	httpClient *httpclient.HTTPClient
	logger     *zap.Logger
}

// NewClient creates a new Layerswap API client. Layerswap authenticates with
// an X-LS-APIKEY header on every request. Additional client options (metrics,
// middlewares) are applied after the defaults.
func NewClient(baseURL, apiKey string, opts ...httpclient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	options := append([]httpclient.ClientOption{
		httpclient.WithBaseURL(baseURL),
		httpclient.WithDefaultHeader("X-LS-APIKEY", apiKey),
		httpclient.WithTimeout(defaultTimeout),
	}, opts...)

	return &Client{
		httpClient: httpclient.NewHTTPClient(options...),
		logger:     logger.Log,
	}
}

var _ interfaces.RateProvider = (*Client)(nil)

// Name returns the provider identifier used in quotes and routes.
func (c *Client) Name() string {
	return constants.LayerswapProvider
}

// --- Layerswap API structs ---
// Amounts are decimal strings in the token's smallest unit.

type quoteEnvelope struct {
	Data swapQuote `json:"data"`
}

type swapQuote struct {
	SourceToken          string `json:"source_token"`
	DestinationToken     string `json:"destination_token"`
	ReceiveAmount        string `json:"receive_amount"`
	TotalFee             string `json:"total_fee"`
	AvgCompletionSeconds int    `json:"avg_completion_time_seconds"`
}

type createSwapRequest struct {
	SourceToken        string `json:"source_token"`
	DestinationToken   string `json:"destination_token"`
	Amount             string `json:"amount"`
	DestinationAddress string `json:"destination_address"`
}

type swapEnvelope struct {
	Data swapResult `json:"data"`
}

type swapResult struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	TransactionHash string `json:"transaction_hash"`
	ReceivedAmount  string `json:"received_amount"`
	FailureReason   string `json:"failure_reason"`
}

// Quote fetches a conversion quote for the exact input amount.
func (c *Client) Quote(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.ProviderQuote, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	resp, err := c.httpClient.Get(ctx, "/api/v2/quote",
		httpclient.WithQueryParam("source_token", fromToken),
		httpclient.WithQueryParam("destination_token", toToken),
		httpclient.WithQueryParam("amount", amount.String()),
	)
	if err != nil {
		return nil, fmt.Errorf("layerswap quote request failed: %w", err)
	}

	var envelope quoteEnvelope
	if err := c.httpClient.ProcessJSONResponse(resp, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode layerswap quote: %w", err)
	}

	toAmount, err := helpers.ParseAmount(envelope.Data.ReceiveAmount)
	if err != nil {
		return nil, fmt.Errorf("layerswap returned invalid receive_amount %q: %w", envelope.Data.ReceiveAmount, err)
	}

	fees := big.NewInt(0)
	if envelope.Data.TotalFee != "" {
		fees, err = helpers.ParseAmount(envelope.Data.TotalFee)
		if err != nil {
			return nil, fmt.Errorf("layerswap returned invalid total_fee %q: %w", envelope.Data.TotalFee, err)
		}
	}

	return &business.ProviderQuote{
		ToAmount:             toAmount,
		Fees:                 fees,
		EstimatedTimeSeconds: envelope.Data.AvgCompletionSeconds,
	}, nil
}

// Execute submits one route hop as a Layerswap swap and blocks until the API
// acknowledges it. The Idempotency-Key header makes transport-level retries
// safe.
func (c *Client) Execute(ctx context.Context, hop business.RouteHop, destinationAddress string) (*business.ExecutionReceipt, error) {
	if hop.FromAmount == nil || hop.FromAmount.Sign() <= 0 {
		return nil, fmt.Errorf("hop amount must be positive")
	}

	payload := createSwapRequest{
		SourceToken:        hop.FromToken,
		DestinationToken:   hop.ToToken,
		Amount:             hop.FromAmount.String(),
		DestinationAddress: destinationAddress,
	}

	resp, err := c.httpClient.Post(ctx, "/api/v2/swaps", payload,
		httpclient.WithHeader("Idempotency-Key", uuid.New().String()),
	)
	if err != nil {
		return nil, fmt.Errorf("layerswap swap request failed: %w", err)
	}

	var envelope swapEnvelope
	if err := c.httpClient.ProcessJSONResponse(resp, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode layerswap swap: %w", err)
	}

	if envelope.Data.Status != swapStatusCompleted {
		reason := envelope.Data.FailureReason
		if reason == "" {
			reason = envelope.Data.Status
		}
		return nil, fmt.Errorf("layerswap swap %s not completed: %s", envelope.Data.ID, reason)
	}

	realized, err := helpers.ParseAmount(envelope.Data.ReceivedAmount)
	if err != nil {
		return nil, fmt.Errorf("layerswap returned invalid received_amount %q: %w", envelope.Data.ReceivedAmount, err)
	}

	handle := envelope.Data.TransactionHash
	if handle == "" {
		handle = envelope.Data.ID
	}

	c.logger.Info("layerswap swap completed",
		zap.String("swap_id", envelope.Data.ID),
		zap.String("from_token", hop.FromToken),
		zap.String("to_token", hop.ToToken))

	return &business.ExecutionReceipt{
		TransactionHandle: handle,
		RealizedToAmount:  realized,
	}, nil
}
