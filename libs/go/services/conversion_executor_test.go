package services_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/services"
	"github.com/starkport/starkport-api/libs/go/testutil"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

const testDestination = "0x1234567890abcdef1234567890abcdef12345678"

func planForRoute(route *business.ConversionRoute, minOutput int64) *business.ConversionPlan {
	return &business.ConversionPlan{
		Route:               *route,
		SlippageBps:         50,
		EstimatedOutput:     route.ExpectedOutput,
		MinAcceptableOutput: big.NewInt(minOutput),
		TotalFees:           big.NewInt(0),
	}
}

func executingProvider(name, handle string, realized int64) *testutil.FakeProvider {
	return &testutil.FakeProvider{
		ProviderName: name,
		ExecuteFunc: func(_ context.Context, _ business.RouteHop, _ string) (*business.ExecutionReceipt, error) {
			return &business.ExecutionReceipt{
				TransactionHandle: handle,
				RealizedToAmount:  big.NewInt(realized),
			}, nil
		},
	}
}

func TestConversionExecutor_Execute_SingleHop(t *testing.T) {
	executor := services.NewConversionExecutor([]interfaces.RateProvider{
		executingProvider("layerswap", "ls-tx-1", 3695000000),
	})

	plan := planForRoute(directTestRoute(3700000000), 3681500000)
	records, err := executor.Execute(context.Background(), plan, testDestination)

	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, 0, record.HopIndex)
	assert.Equal(t, "layerswap", record.Provider)
	assert.Equal(t, "ETH", record.FromToken)
	assert.Equal(t, "USDC", record.ToToken)
	assert.Equal(t, "1000000000000000000", record.FromAmount.String())
	assert.Equal(t, "3700000000", record.ExpectedToAmount.String())
	assert.Equal(t, "3695000000", record.RealizedToAmount.String())
	assert.Equal(t, "ls-tx-1", record.TransactionHandle)
	assert.Equal(t, constants.TransactionStatusConfirmed, record.Status)
	assert.Empty(t, record.FailureReason)
}

func TestConversionExecutor_Execute_ChainsRealizedOutput(t *testing.T) {
	var secondHopInput *big.Int
	first := executingProvider("avnu", "avnu-tx-1", 249000)
	second := &testutil.FakeProvider{
		ProviderName: "layerswap",
		ExecuteFunc: func(_ context.Context, hop business.RouteHop, dest string) (*business.ExecutionReceipt, error) {
			secondHopInput = hop.FromAmount
			assert.Equal(t, testDestination, dest)
			return &business.ExecutionReceipt{
				TransactionHandle: "ls-tx-2",
				RealizedToAmount:  big.NewInt(149000),
			}, nil
		},
	}

	executor := services.NewConversionExecutor([]interfaces.RateProvider{first, second})
	plan := planForRoute(multiHopTestRoute(), 148500)
	records, err := executor.Execute(context.Background(), plan, testDestination)

	require.NoError(t, err)
	require.Len(t, records, 2)

	// The second hop consumes what the first hop actually delivered, not
	// what it was quoted to deliver.
	require.NotNil(t, secondHopInput)
	assert.Equal(t, "249000", secondHopInput.String())
	assert.Equal(t, "249000", records[1].FromAmount.String())
	assert.Equal(t, "149000", records[1].RealizedToAmount.String())
	assert.Equal(t, constants.TransactionStatusConfirmed, records[0].Status)
	assert.Equal(t, constants.TransactionStatusConfirmed, records[1].Status)
}

func TestConversionExecutor_Execute_FailureAtSecondHop(t *testing.T) {
	first := executingProvider("avnu", "avnu-tx-1", 249000)
	second := &testutil.FakeProvider{
		ProviderName: "layerswap",
		ExecuteFunc: func(_ context.Context, _ business.RouteHop, _ string) (*business.ExecutionReceipt, error) {
			return nil, fmt.Errorf("bridge rejected transfer")
		},
	}

	executor := services.NewConversionExecutor([]interfaces.RateProvider{first, second})
	plan := planForRoute(multiHopTestRoute(), 148500)
	records, err := executor.Execute(context.Background(), plan, testDestination)

	require.Error(t, err)
	var execErr *services.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 1, execErr.HopIndex)
	assert.Equal(t, "conversion failed at hop 1: bridge rejected transfer", err.Error())

	// The completed first hop stays on record alongside the failed one
	require.Len(t, records, 2)
	assert.Equal(t, constants.TransactionStatusConfirmed, records[0].Status)
	assert.Equal(t, constants.TransactionStatusFailed, records[1].Status)
	assert.Equal(t, "bridge rejected transfer", records[1].FailureReason)
	assert.Nil(t, records[1].RealizedToAmount)
}

func TestConversionExecutor_Execute_UnknownProvider(t *testing.T) {
	executor := services.NewConversionExecutor([]interfaces.RateProvider{
		executingProvider("avnu", "avnu-tx-1", 249000),
	})

	plan := planForRoute(directTestRoute(3700000000), 0)
	records, err := executor.Execute(context.Background(), plan, testDestination)

	assert.ErrorIs(t, err, services.ErrUnknownProvider)
	var execErr *services.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 0, execErr.HopIndex)

	require.Len(t, records, 1)
	assert.Equal(t, constants.TransactionStatusFailed, records[0].Status)
	assert.Equal(t, `provider "layerswap" not registered`, records[0].FailureReason)
}

func TestConversionExecutor_Execute_EmptyReceipt(t *testing.T) {
	tests := []struct {
		name    string
		receipt *business.ExecutionReceipt
	}{
		{name: "nil receipt", receipt: nil},
		{name: "nil realized amount", receipt: &business.ExecutionReceipt{TransactionHandle: "ls-tx-1"}},
		{name: "zero realized amount", receipt: &business.ExecutionReceipt{TransactionHandle: "ls-tx-1", RealizedToAmount: big.NewInt(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &testutil.FakeProvider{
				ProviderName: "layerswap",
				ExecuteFunc: func(_ context.Context, _ business.RouteHop, _ string) (*business.ExecutionReceipt, error) {
					return tt.receipt, nil
				},
			}
			executor := services.NewConversionExecutor([]interfaces.RateProvider{provider})

			records, err := executor.Execute(context.Background(), planForRoute(directTestRoute(3700000000), 0), testDestination)

			require.Error(t, err)
			var execErr *services.ExecutionError
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, 0, execErr.HopIndex)

			require.Len(t, records, 1)
			assert.Equal(t, constants.TransactionStatusFailed, records[0].Status)
			assert.Equal(t, "provider returned empty receipt", records[0].FailureReason)
		})
	}
}

func TestConversionExecutor_Execute_SlippageExceeded(t *testing.T) {
	executor := services.NewConversionExecutor([]interfaces.RateProvider{
		executingProvider("avnu", "avnu-tx-1", 249000),
		executingProvider("layerswap", "ls-tx-2", 140000),
	})

	// Realized 140000 is below the 148500 floor
	plan := planForRoute(multiHopTestRoute(), 148500)
	records, err := executor.Execute(context.Background(), plan, testDestination)

	assert.ErrorIs(t, err, services.ErrSlippageExceeded)
	var execErr *services.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 1, execErr.HopIndex)

	// Both hops completed on-chain; the records reflect that
	require.Len(t, records, 2)
	assert.Equal(t, constants.TransactionStatusConfirmed, records[0].Status)
	assert.Equal(t, constants.TransactionStatusConfirmed, records[1].Status)
}

func TestConversionExecutor_Execute_RealizedExactlyAtMinimum(t *testing.T) {
	executor := services.NewConversionExecutor([]interfaces.RateProvider{
		executingProvider("layerswap", "ls-tx-1", 3681500000),
	})

	plan := planForRoute(directTestRoute(3700000000), 3681500000)
	records, err := executor.Execute(context.Background(), plan, testDestination)

	require.NoError(t, err)
	assert.Equal(t, constants.TransactionStatusConfirmed, records[0].Status)
}

func TestConversionExecutor_Execute_InvalidDestination(t *testing.T) {
	executor := services.NewConversionExecutor([]interfaces.RateProvider{
		executingProvider("layerswap", "ls-tx-1", 3695000000),
	})
	plan := planForRoute(directTestRoute(3700000000), 0)

	for _, destination := range []string{"", "starkport.eth", "0x123", "0xZZ34567890abcdef1234567890abcdef12345678"} {
		records, err := executor.Execute(context.Background(), plan, destination)
		assert.ErrorIs(t, err, services.ErrInvalidDestination, "destination %q", destination)
		assert.Nil(t, records)
	}
}

func TestConversionExecutor_Execute_EmptyPlan(t *testing.T) {
	executor := services.NewConversionExecutor(nil)

	for _, plan := range []*business.ConversionPlan{nil, {}} {
		records, err := executor.Execute(context.Background(), plan, testDestination)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plan has no hops")
		assert.Nil(t, records)
	}
}

func TestExecutionError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := &services.ExecutionError{HopIndex: 2, Err: cause}

	assert.Equal(t, "conversion failed at hop 2: underlying failure", err.Error())
	assert.ErrorIs(t, err, cause)
}
