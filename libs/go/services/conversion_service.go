package services

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

const defaultListLimit = 20

// ConversionService orchestrates the full conversion flow: route discovery,
// planning, sequential execution, persistence and event publishing.
type ConversionService struct {
	queries   db.Querier
	router    interfaces.RouteService
	planner   interfaces.PlannerService
	executor  interfaces.ExecutorService
	publisher interfaces.ConversionEventPublisher
	logger    *zap.Logger
}

// NewConversionService creates the conversion facade. publisher may be nil
// when no events queue is configured; event publishing is then skipped.
func NewConversionService(
	queries db.Querier,
	router interfaces.RouteService,
	planner interfaces.PlannerService,
	executor interfaces.ExecutorService,
	publisher interfaces.ConversionEventPublisher,
) *ConversionService {
	return &ConversionService{
		queries:   queries,
		router:    router,
		planner:   planner,
		executor:  executor,
		publisher: publisher,
		logger:    logger.Log,
	}
}

var _ interfaces.ConversionService = (*ConversionService)(nil)

// PlanConversion finds the best route for the requested conversion and turns
// it into an executable plan. Nothing is persisted.
func (s *ConversionService) PlanConversion(ctx context.Context, fromToken, toToken string, amount *big.Int, slippageBps int32) (*business.ConversionPlan, error) {
	route, err := s.router.GetRoute(ctx, fromToken, toToken, amount)
	if err != nil {
		return nil, err
	}
	return s.planner.Plan(route, slippageBps)
}

// ExecuteConversion plans and executes a conversion end to end, recording the
// conversion and its per-hop transactions. When execution fails the persisted
// conversion (with the records accumulated so far) is returned together with
// the execution error.
func (s *ConversionService) ExecuteConversion(ctx context.Context, params interfaces.ExecuteConversionParams) (*business.Conversion, error) {
	if !helpers.IsAddressValid(params.DestinationAddress) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDestination, params.DestinationAddress)
	}

	plan, err := s.PlanConversion(ctx, params.FromToken, params.ToToken, params.Amount, params.SlippageBps)
	if err != nil {
		return nil, err
	}

	row, err := s.queries.CreateConversion(ctx, db.CreateConversionParams{
		FromToken:           plan.Route.FromToken,
		ToToken:             plan.Route.ToToken,
		FromAmount:          db.NumericFromBigInt(plan.Route.FromAmount),
		Status:              constants.ConversionStatusPending,
		RouteKind:           plan.Route.Kind,
		HopCount:            int32(len(plan.Route.Hops)),
		EstimatedOutput:     db.NumericFromBigInt(plan.EstimatedOutput),
		MinAcceptableOutput: db.NumericFromBigInt(plan.MinAcceptableOutput),
		TotalFees:           db.NumericFromBigInt(plan.TotalFees),
		PriceImpact:         plan.PriceImpact,
		SlippageBps:         plan.SlippageBps,
		DestinationAddress:  params.DestinationAddress,
	})
	if err != nil {
		s.logger.Error("failed to create conversion", zap.Error(err))
		return nil, fmt.Errorf("failed to create conversion: %w", err)
	}

	if _, err := s.queries.UpdateConversionStatus(ctx, db.UpdateConversionStatusParams{
		ID:     row.ID,
		Status: constants.ConversionStatusExecuting,
	}); err != nil {
		s.logger.Error("failed to mark conversion executing",
			zap.String("conversion_id", row.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update conversion status: %w", err)
	}

	records, execErr := s.executor.Execute(ctx, plan, params.DestinationAddress)
	s.persistRecords(ctx, row.ID, records)

	var final db.Conversion
	if execErr != nil {
		final, err = s.queries.FailConversion(ctx, db.FailConversionParams{
			ID:            row.ID,
			FailureReason: db.TextFromString(execErr.Error()),
		})
	} else {
		final, err = s.queries.CompleteConversion(ctx, db.CompleteConversionParams{
			ID:             row.ID,
			RealizedOutput: db.NumericFromBigInt(finalRealizedOutput(records)),
		})
	}
	if err != nil {
		s.logger.Error("failed to finalize conversion",
			zap.String("conversion_id", row.ID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to finalize conversion: %w", err)
	}

	conversion := conversionFromRow(final, records)
	s.publishEvent(ctx, conversion)

	if execErr != nil {
		s.logger.Warn("conversion failed",
			zap.String("conversion_id", conversion.ID.String()),
			zap.String("from_token", conversion.FromToken),
			zap.String("to_token", conversion.ToToken),
			zap.Error(execErr))
		return &conversion, execErr
	}

	s.logger.Info("conversion completed",
		zap.String("conversion_id", conversion.ID.String()),
		zap.String("route_kind", conversion.RouteKind),
		zap.Int("hop_count", conversion.HopCount))
	return &conversion, nil
}

// GetConversion returns a conversion with its transaction records.
func (s *ConversionService) GetConversion(ctx context.Context, id uuid.UUID) (*business.Conversion, error) {
	row, err := s.queries.GetConversion(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("conversion not found: %s", id)
		}
		s.logger.Error("failed to get conversion",
			zap.String("conversion_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}

	txRows, err := s.queries.ListConversionTransactions(ctx, id)
	if err != nil {
		s.logger.Error("failed to list conversion transactions",
			zap.String("conversion_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list conversion transactions: %w", err)
	}

	records := make([]business.TransactionRecord, 0, len(txRows))
	for _, tx := range txRows {
		records = append(records, recordFromRow(tx))
	}

	conversion := conversionFromRow(row, records)
	return &conversion, nil
}

// ListConversions returns conversions ordered most recent first. Transaction
// records are not loaded; use GetConversion for the full aggregate.
func (s *ConversionService) ListConversions(ctx context.Context, limit, offset int32) ([]business.Conversion, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.queries.ListConversions(ctx, db.ListConversionsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.logger.Error("failed to list conversions", zap.Error(err))
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	conversions := make([]business.Conversion, 0, len(rows))
	for _, row := range rows {
		conversions = append(conversions, conversionFromRow(row, nil))
	}
	return conversions, nil
}

func (s *ConversionService) persistRecords(ctx context.Context, conversionID uuid.UUID, records []business.TransactionRecord) {
	for _, rec := range records {
		if _, err := s.queries.CreateConversionTransaction(ctx, db.CreateConversionTransactionParams{
			ConversionID:      conversionID,
			HopIndex:          int32(rec.HopIndex),
			Provider:          rec.Provider,
			FromToken:         rec.FromToken,
			ToToken:           rec.ToToken,
			FromAmount:        db.NumericFromBigInt(rec.FromAmount),
			ExpectedToAmount:  db.NumericFromBigInt(rec.ExpectedToAmount),
			RealizedToAmount:  db.NumericFromBigInt(rec.RealizedToAmount),
			TransactionHandle: db.TextFromString(rec.TransactionHandle),
			Status:            rec.Status,
			FailureReason:     db.TextFromString(rec.FailureReason),
		}); err != nil {
			s.logger.Error("failed to persist transaction record",
				zap.String("conversion_id", conversionID.String()),
				zap.Int("hop_index", rec.HopIndex),
				zap.Error(err))
		}
	}
}

func (s *ConversionService) publishEvent(ctx context.Context, conversion business.Conversion) {
	if s.publisher == nil {
		return
	}

	event := business.ConversionEvent{
		Type:         constants.EventConversionCompleted,
		ConversionID: conversion.ID.String(),
		FromToken:    conversion.FromToken,
		ToToken:      conversion.ToToken,
		FromAmount:   conversion.FromAmount.String(),
		RouteKind:    conversion.RouteKind,
		Status:       conversion.Status,
		OccurredAt:   time.Now().UTC(),
	}
	if conversion.Status == constants.ConversionStatusFailed {
		event.Type = constants.EventConversionFailed
		event.FailureReason = conversion.FailureReason
	}
	if conversion.RealizedOutput != nil {
		event.RealizedOutput = conversion.RealizedOutput.String()
	}

	if err := s.publisher.PublishConversionEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish conversion event",
			zap.String("conversion_id", event.ConversionID),
			zap.String("type", event.Type),
			zap.Error(err))
	}
}

// finalRealizedOutput is the cumulative output of a fully executed plan, i.e.
// the realized output of its last hop.
func finalRealizedOutput(records []business.TransactionRecord) *big.Int {
	if len(records) == 0 {
		return nil
	}
	return records[len(records)-1].RealizedToAmount
}

func conversionFromRow(row db.Conversion, records []business.TransactionRecord) business.Conversion {
	return business.Conversion{
		ID:                  row.ID,
		FromToken:           row.FromToken,
		ToToken:             row.ToToken,
		FromAmount:          db.BigIntFromNumeric(row.FromAmount),
		Status:              row.Status,
		RouteKind:           row.RouteKind,
		HopCount:            int(row.HopCount),
		EstimatedOutput:     db.BigIntFromNumeric(row.EstimatedOutput),
		MinAcceptableOutput: db.BigIntFromNumeric(row.MinAcceptableOutput),
		RealizedOutput:      db.BigIntFromNumeric(row.RealizedOutput),
		TotalFees:           db.BigIntFromNumeric(row.TotalFees),
		PriceImpact:         row.PriceImpact,
		SlippageBps:         row.SlippageBps,
		DestinationAddress:  row.DestinationAddress,
		FailureReason:       row.FailureReason.String,
		Records:             records,
		CreatedAt:           row.CreatedAt.Time,
		UpdatedAt:           row.UpdatedAt.Time,
	}
}

func recordFromRow(row db.ConversionTransaction) business.TransactionRecord {
	return business.TransactionRecord{
		HopIndex:          int(row.HopIndex),
		Provider:          row.Provider,
		FromToken:         row.FromToken,
		ToToken:           row.ToToken,
		FromAmount:        db.BigIntFromNumeric(row.FromAmount),
		ExpectedToAmount:  db.BigIntFromNumeric(row.ExpectedToAmount),
		RealizedToAmount:  db.BigIntFromNumeric(row.RealizedToAmount),
		TransactionHandle: row.TransactionHandle.String,
		Status:            row.Status,
		FailureReason:     row.FailureReason.String,
		CreatedAt:         row.CreatedAt.Time,
	}
}
