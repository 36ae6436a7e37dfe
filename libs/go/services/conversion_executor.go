package services

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

// ConversionExecutor executes conversion plans hop by hop, strictly in
// sequence. Each hop's input is the previous hop's realized output. There is
// no rollback or compensation: hops that completed stay completed, and a
// failure surfaces the partial record list together with an ExecutionError.
type ConversionExecutor struct {
	providers map[string]interfaces.RateProvider
	logger    *zap.Logger
}

// NewConversionExecutor creates an executor dispatching to the given
// providers by name.
func NewConversionExecutor(providers []interfaces.RateProvider) *ConversionExecutor {
	byName := make(map[string]interfaces.RateProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &ConversionExecutor{
		providers: byName,
		logger:    logger.Log,
	}
}

// Execute runs every hop of the plan in order. The returned records cover
// all attempted hops, including a failed one; callers always receive them
// even when the error is non-nil. After the final hop the cumulative
// realized output is checked once against the plan's MinAcceptableOutput.
func (s *ConversionExecutor) Execute(ctx context.Context, plan *business.ConversionPlan, destinationAddress string) ([]business.TransactionRecord, error) {
	if plan == nil || len(plan.Route.Hops) == 0 {
		return nil, fmt.Errorf("plan has no hops")
	}
	if !helpers.IsAddressValid(destinationAddress) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDestination, destinationAddress)
	}

	records := make([]business.TransactionRecord, 0, len(plan.Route.Hops))
	input := plan.Route.Hops[0].FromAmount

	for i, hop := range plan.Route.Hops {
		hop.FromAmount = input

		record := business.TransactionRecord{
			HopIndex:         i,
			Provider:         hop.BridgeID,
			FromToken:        hop.FromToken,
			ToToken:          hop.ToToken,
			FromAmount:       input,
			ExpectedToAmount: hop.ExpectedOutput,
			Status:           constants.TransactionStatusPending,
			CreatedAt:        time.Now(),
		}

		provider, ok := s.providers[hop.BridgeID]
		if !ok {
			record.Status = constants.TransactionStatusFailed
			record.FailureReason = fmt.Sprintf("provider %q not registered", hop.BridgeID)
			records = append(records, record)
			return records, &ExecutionError{HopIndex: i, Err: ErrUnknownProvider}
		}

		s.logger.Info("executing conversion hop",
			zap.Int("hop_index", i),
			zap.String("provider", hop.BridgeID),
			zap.String("from_token", hop.FromToken),
			zap.String("to_token", hop.ToToken),
			zap.String("from_amount", input.String()))

		receipt, err := provider.Execute(ctx, hop, destinationAddress)
		if err != nil {
			record.Status = constants.TransactionStatusFailed
			record.FailureReason = err.Error()
			records = append(records, record)
			s.logger.Error("conversion hop failed",
				zap.Int("hop_index", i),
				zap.String("provider", hop.BridgeID),
				zap.Error(err))
			return records, &ExecutionError{HopIndex: i, Err: err}
		}
		if receipt == nil || receipt.RealizedToAmount == nil || receipt.RealizedToAmount.Sign() <= 0 {
			record.Status = constants.TransactionStatusFailed
			record.FailureReason = "provider returned empty receipt"
			records = append(records, record)
			return records, &ExecutionError{HopIndex: i, Err: fmt.Errorf("provider %s returned empty receipt", hop.BridgeID)}
		}

		record.Status = constants.TransactionStatusConfirmed
		record.TransactionHandle = receipt.TransactionHandle
		record.RealizedToAmount = receipt.RealizedToAmount
		records = append(records, record)

		input = receipt.RealizedToAmount
	}

	if lessThan(input, plan.MinAcceptableOutput) {
		s.logger.Warn("realized output below minimum acceptable",
			zap.String("realized", input.String()),
			zap.String("min_acceptable", plan.MinAcceptableOutput.String()))
		return records, &ExecutionError{HopIndex: len(plan.Route.Hops) - 1, Err: ErrSlippageExceeded}
	}

	return records, nil
}

func lessThan(a, b *big.Int) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Cmp(b) < 0
}

var _ interfaces.ExecutorService = (*ConversionExecutor)(nil)
