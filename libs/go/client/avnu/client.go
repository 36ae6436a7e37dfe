package avnu

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
	defaultBaseURL = "https://starknet.api.avnu.fi"
	defaultTimeout = 10 * time.Second

	executeStatusSucceeded = "succeeded"
)

// Client manages communication with the AVNU DEX aggregator API. It
// implements the provider interface for same-chain swaps.
type Client struct {
	httpClient *httpclient.HTTPClient
	logger     *zap.Logger
}

// NewClient creates a new AVNU API client. Additional client options
// (metrics, middlewares) are applied after the defaults.
func NewClient(baseURL, apiKey string, opts ...httpclient.ClientOption) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	options := []httpclient.ClientOption{
		httpclient.WithBaseURL(baseURL),
		httpclient.WithTimeout(defaultTimeout),
	}
	if apiKey != "" {
		options = append(options, httpclient.WithDefaultHeader("api-key", apiKey))
	}
	options = append(options, opts...)

	return &Client{
		httpClient: httpclient.NewHTTPClient(options...),
		logger:     logger.Log,
	}
}

var _ interfaces.RateProvider = (*Client)(nil)

// Name returns the provider identifier used in quotes and routes.
func (c *Client) Name() string {
	return constants.AvnuProvider
}

// --- AVNU API structs ---
// Amounts are decimal strings in the token's smallest unit. The quotes
// endpoint returns candidates ordered best first.

type dexQuote struct {
	QuoteID       string `json:"quote_id"`
	SellToken     string `json:"sell_token"`
	BuyToken      string `json:"buy_token"`
	SellAmount    string `json:"sell_amount"`
	BuyAmount     string `json:"buy_amount"`
	GasFee        string `json:"gas_fee"`
	ExpirySeconds int    `json:"expiry_seconds"`
}

type executeRequest struct {
	SellToken    string `json:"sell_token"`
	BuyToken     string `json:"buy_token"`
	SellAmount   string `json:"sell_amount"`
	TakerAddress string `json:"taker_address"`
}

type executeResponse struct {
	TransactionHash string `json:"transaction_hash"`
	Status          string `json:"status"`
	BoughtAmount    string `json:"bought_amount"`
	Error           string `json:"error"`
}

// Quote fetches swap quotes for the exact input amount and returns the best
// candidate's figures.
func (c *Client) Quote(ctx context.Context, fromToken, toToken string, amount *big.Int) (*business.ProviderQuote, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	resp, err := c.httpClient.Get(ctx, "/swap/v2/quotes",
		httpclient.WithQueryParam("sell_token", fromToken),
		httpclient.WithQueryParam("buy_token", toToken),
		httpclient.WithQueryParam("sell_amount", amount.String()),
	)
	if err != nil {
		return nil, fmt.Errorf("avnu quotes request failed: %w", err)
	}

	var quotes []dexQuote
	if err := c.httpClient.ProcessJSONResponse(resp, &quotes); err != nil {
		return nil, fmt.Errorf("failed to decode avnu quotes: %w", err)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("avnu returned no quotes for %s -> %s", fromToken, toToken)
	}

	best := quotes[0]

	buyAmount, err := helpers.ParseAmount(best.BuyAmount)
	if err != nil {
		return nil, fmt.Errorf("avnu returned invalid buy_amount %q: %w", best.BuyAmount, err)
	}

	fees := big.NewInt(0)
	if best.GasFee != "" {
		fees, err = helpers.ParseAmount(best.GasFee)
		if err != nil {
			return nil, fmt.Errorf("avnu returned invalid gas_fee %q: %w", best.GasFee, err)
		}
	}

	// DEX swaps settle within a block or two; the API does not report a
	// completion estimate.
	return &business.ProviderQuote{
		ToAmount:             buyAmount,
		Fees:                 fees,
		EstimatedTimeSeconds: 30,
	}, nil
}

// Execute submits one route hop as an AVNU swap and blocks until the API
// acknowledges it. The Idempotency-Key header makes transport-level retries
// safe.
func (c *Client) Execute(ctx context.Context, hop business.RouteHop, destinationAddress string) (*business.ExecutionReceipt, error) {
	if hop.FromAmount == nil || hop.FromAmount.Sign() <= 0 {
		return nil, fmt.Errorf("hop amount must be positive")
	}

	payload := executeRequest{
		SellToken:    hop.FromToken,
		BuyToken:     hop.ToToken,
		SellAmount:   hop.FromAmount.String(),
		TakerAddress: destinationAddress,
	}

	resp, err := c.httpClient.Post(ctx, "/swap/v2/execute", payload,
		httpclient.WithHeader("Idempotency-Key", uuid.New().String()),
	)
	if err != nil {
		return nil, fmt.Errorf("avnu execute request failed: %w", err)
	}

	var result executeResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to decode avnu execute response: %w", err)
	}

	if result.Status != executeStatusSucceeded {
		reason := result.Error
		if reason == "" {
			reason = result.Status
		}
		return nil, fmt.Errorf("avnu swap not succeeded: %s", reason)
	}

	realized, err := helpers.ParseAmount(result.BoughtAmount)
	if err != nil {
		return nil, fmt.Errorf("avnu returned invalid bought_amount %q: %w", result.BoughtAmount, err)
	}

	c.logger.Info("avnu swap succeeded",
		zap.String("transaction_hash", result.TransactionHash),
		zap.String("from_token", hop.FromToken),
		zap.String("to_token", hop.ToToken))

	return &business.ExecutionReceipt{
		TransactionHandle: result.TransactionHash,
		RealizedToAmount:  realized,
	}, nil
}
