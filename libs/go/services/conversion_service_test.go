package services_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/mocks"
	"github.com/starkport/starkport-api/libs/go/services"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

type conversionServiceMocks struct {
	querier   *mocks.MockQuerier
	router    *mocks.MockRouteService
	planner   *mocks.MockPlannerService
	executor  *mocks.MockExecutorService
	publisher *mocks.MockConversionEventPublisher
}

func newConversionService(t *testing.T) (*services.ConversionService, conversionServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := conversionServiceMocks{
		querier:   mocks.NewMockQuerier(ctrl),
		router:    mocks.NewMockRouteService(ctrl),
		planner:   mocks.NewMockPlannerService(ctrl),
		executor:  mocks.NewMockExecutorService(ctrl),
		publisher: mocks.NewMockConversionEventPublisher(ctrl),
	}
	service := services.NewConversionService(m.querier, m.router, m.planner, m.executor, m.publisher)
	return service, m
}

func dbConversionRow(id uuid.UUID, status string) db.Conversion {
	return db.Conversion{
		ID:                  id,
		FromToken:           "ETH",
		ToToken:             "USDC",
		FromAmount:          db.NumericFromBigInt(big.NewInt(1000000000000000000)),
		Status:              status,
		RouteKind:           constants.RouteKindDirect,
		HopCount:            1,
		EstimatedOutput:     db.NumericFromBigInt(big.NewInt(3700000000)),
		MinAcceptableOutput: db.NumericFromBigInt(big.NewInt(3681500000)),
		TotalFees:           db.NumericFromBigInt(big.NewInt(500000)),
		PriceImpact:         0.005,
		SlippageBps:         50,
		DestinationAddress:  testDestination,
		CreatedAt:           pgtype.Timestamptz{Time: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), Valid: true},
		UpdatedAt:           pgtype.Timestamptz{Time: time.Date(2025, 3, 1, 12, 0, 5, 0, time.UTC), Valid: true},
	}
}

func confirmedRecord(realized int64) business.TransactionRecord {
	return business.TransactionRecord{
		HopIndex:          0,
		Provider:          "layerswap",
		FromToken:         "ETH",
		ToToken:           "USDC",
		FromAmount:        big.NewInt(1000000000000000000),
		ExpectedToAmount:  big.NewInt(3700000000),
		RealizedToAmount:  big.NewInt(realized),
		TransactionHandle: "ls-tx-1",
		Status:            constants.TransactionStatusConfirmed,
	}
}

func TestConversionService_PlanConversion(t *testing.T) {
	service, m := newConversionService(t)

	amount := big.NewInt(1000000000000000000)
	route := directTestRoute(3700000000)
	plan := planForRoute(route, 3681500000)

	m.router.EXPECT().GetRoute(gomock.Any(), "ETH", "USDC", amount).Return(route, nil)
	m.planner.EXPECT().Plan(route, int32(50)).Return(plan, nil)

	got, err := service.PlanConversion(context.Background(), "ETH", "USDC", amount, 50)

	require.NoError(t, err)
	assert.Equal(t, plan, got)
}

func TestConversionService_PlanConversion_RouterError(t *testing.T) {
	service, m := newConversionService(t)

	m.router.EXPECT().
		GetRoute(gomock.Any(), "ETH", "XYZ", gomock.Any()).
		Return(nil, services.ErrNoRouteFound)

	plan, err := service.PlanConversion(context.Background(), "ETH", "XYZ", big.NewInt(1000), 50)

	assert.ErrorIs(t, err, services.ErrNoRouteFound)
	assert.Nil(t, plan)
}

func TestConversionService_PlanConversion_PlannerError(t *testing.T) {
	service, m := newConversionService(t)

	route := directTestRoute(3700000000)
	m.router.EXPECT().GetRoute(gomock.Any(), "ETH", "USDC", gomock.Any()).Return(route, nil)
	m.planner.EXPECT().Plan(route, int32(20000)).Return(nil, services.ErrInvalidSlippage)

	plan, err := service.PlanConversion(context.Background(), "ETH", "USDC", big.NewInt(1000), 20000)

	assert.ErrorIs(t, err, services.ErrInvalidSlippage)
	assert.Nil(t, plan)
}

func TestConversionService_ExecuteConversion_Success(t *testing.T) {
	service, m := newConversionService(t)

	conversionID := uuid.New()
	amount := big.NewInt(1000000000000000000)
	route := directTestRoute(3700000000)
	plan := planForRoute(route, 3681500000)
	record := confirmedRecord(3695000000)

	m.router.EXPECT().GetRoute(gomock.Any(), "ETH", "USDC", amount).Return(route, nil)
	m.planner.EXPECT().Plan(route, int32(50)).Return(plan, nil)

	m.querier.EXPECT().
		CreateConversion(gomock.Any(), db.CreateConversionParams{
			FromToken:           "ETH",
			ToToken:             "USDC",
			FromAmount:          db.NumericFromBigInt(amount),
			Status:              constants.ConversionStatusPending,
			RouteKind:           constants.RouteKindDirect,
			HopCount:            1,
			EstimatedOutput:     db.NumericFromBigInt(big.NewInt(3700000000)),
			MinAcceptableOutput: db.NumericFromBigInt(big.NewInt(3681500000)),
			TotalFees:           db.NumericFromBigInt(big.NewInt(0)),
			PriceImpact:         0,
			SlippageBps:         50,
			DestinationAddress:  testDestination,
		}).
		Return(dbConversionRow(conversionID, constants.ConversionStatusPending), nil)
	m.querier.EXPECT().
		UpdateConversionStatus(gomock.Any(), db.UpdateConversionStatusParams{
			ID:     conversionID,
			Status: constants.ConversionStatusExecuting,
		}).
		Return(dbConversionRow(conversionID, constants.ConversionStatusExecuting), nil)

	m.executor.EXPECT().
		Execute(gomock.Any(), plan, testDestination).
		Return([]business.TransactionRecord{record}, nil)

	m.querier.EXPECT().
		CreateConversionTransaction(gomock.Any(), db.CreateConversionTransactionParams{
			ConversionID:      conversionID,
			HopIndex:          0,
			Provider:          "layerswap",
			FromToken:         "ETH",
			ToToken:           "USDC",
			FromAmount:        db.NumericFromBigInt(amount),
			ExpectedToAmount:  db.NumericFromBigInt(big.NewInt(3700000000)),
			RealizedToAmount:  db.NumericFromBigInt(big.NewInt(3695000000)),
			TransactionHandle: db.TextFromString("ls-tx-1"),
			Status:            constants.TransactionStatusConfirmed,
		}).
		Return(db.ConversionTransaction{}, nil)

	completed := dbConversionRow(conversionID, constants.ConversionStatusCompleted)
	completed.RealizedOutput = db.NumericFromBigInt(big.NewInt(3695000000))
	m.querier.EXPECT().
		CompleteConversion(gomock.Any(), db.CompleteConversionParams{
			ID:             conversionID,
			RealizedOutput: db.NumericFromBigInt(big.NewInt(3695000000)),
		}).
		Return(completed, nil)

	var published business.ConversionEvent
	m.publisher.EXPECT().
		PublishConversionEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event business.ConversionEvent) error {
			published = event
			return nil
		})

	conversion, err := service.ExecuteConversion(context.Background(), interfaces.ExecuteConversionParams{
		FromToken:          "ETH",
		ToToken:            "USDC",
		Amount:             amount,
		SlippageBps:        50,
		DestinationAddress: testDestination,
	})

	require.NoError(t, err)
	require.NotNil(t, conversion)
	assert.Equal(t, conversionID, conversion.ID)
	assert.Equal(t, constants.ConversionStatusCompleted, conversion.Status)
	assert.Equal(t, "3695000000", conversion.RealizedOutput.String())
	require.Len(t, conversion.Records, 1)
	assert.Equal(t, "ls-tx-1", conversion.Records[0].TransactionHandle)

	assert.Equal(t, constants.EventConversionCompleted, published.Type)
	assert.Equal(t, conversionID.String(), published.ConversionID)
	assert.Equal(t, "3695000000", published.RealizedOutput)
	assert.Empty(t, published.FailureReason)
	assert.False(t, published.OccurredAt.IsZero())
}

func TestConversionService_ExecuteConversion_ExecutionFailure(t *testing.T) {
	service, m := newConversionService(t)

	conversionID := uuid.New()
	amount := big.NewInt(1000000000000000000)
	route := directTestRoute(3700000000)
	plan := planForRoute(route, 3681500000)
	execErr := &services.ExecutionError{HopIndex: 0, Err: fmt.Errorf("provider unavailable")}
	failedRecord := business.TransactionRecord{
		HopIndex:         0,
		Provider:         "layerswap",
		FromToken:        "ETH",
		ToToken:          "USDC",
		FromAmount:       amount,
		ExpectedToAmount: big.NewInt(3700000000),
		Status:           constants.TransactionStatusFailed,
		FailureReason:    "provider unavailable",
	}

	m.router.EXPECT().GetRoute(gomock.Any(), "ETH", "USDC", amount).Return(route, nil)
	m.planner.EXPECT().Plan(route, int32(50)).Return(plan, nil)
	m.querier.EXPECT().
		CreateConversion(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusPending), nil)
	m.querier.EXPECT().
		UpdateConversionStatus(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusExecuting), nil)
	m.executor.EXPECT().
		Execute(gomock.Any(), plan, testDestination).
		Return([]business.TransactionRecord{failedRecord}, execErr)
	m.querier.EXPECT().
		CreateConversionTransaction(gomock.Any(), gomock.Any()).
		Return(db.ConversionTransaction{}, nil)

	failed := dbConversionRow(conversionID, constants.ConversionStatusFailed)
	failed.FailureReason = db.TextFromString("conversion failed at hop 0: provider unavailable")
	m.querier.EXPECT().
		FailConversion(gomock.Any(), db.FailConversionParams{
			ID:            conversionID,
			FailureReason: db.TextFromString("conversion failed at hop 0: provider unavailable"),
		}).
		Return(failed, nil)

	var published business.ConversionEvent
	m.publisher.EXPECT().
		PublishConversionEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event business.ConversionEvent) error {
			published = event
			return nil
		})

	conversion, err := service.ExecuteConversion(context.Background(), interfaces.ExecuteConversionParams{
		FromToken:          "ETH",
		ToToken:            "USDC",
		Amount:             amount,
		SlippageBps:        50,
		DestinationAddress: testDestination,
	})

	// The persisted conversion comes back alongside the execution error
	var gotExecErr *services.ExecutionError
	require.ErrorAs(t, err, &gotExecErr)
	assert.Equal(t, 0, gotExecErr.HopIndex)
	require.NotNil(t, conversion)
	assert.Equal(t, constants.ConversionStatusFailed, conversion.Status)
	assert.Equal(t, "conversion failed at hop 0: provider unavailable", conversion.FailureReason)
	require.Len(t, conversion.Records, 1)
	assert.Equal(t, constants.TransactionStatusFailed, conversion.Records[0].Status)

	assert.Equal(t, constants.EventConversionFailed, published.Type)
	assert.Equal(t, "conversion failed at hop 0: provider unavailable", published.FailureReason)
}

func TestConversionService_ExecuteConversion_InvalidDestination(t *testing.T) {
	service, _ := newConversionService(t)

	conversion, err := service.ExecuteConversion(context.Background(), interfaces.ExecuteConversionParams{
		FromToken:          "ETH",
		ToToken:            "USDC",
		Amount:             big.NewInt(1000),
		SlippageBps:        50,
		DestinationAddress: "not-an-address",
	})

	assert.ErrorIs(t, err, services.ErrInvalidDestination)
	assert.Nil(t, conversion)
}

func TestConversionService_ExecuteConversion_NoRoute(t *testing.T) {
	service, m := newConversionService(t)

	m.router.EXPECT().
		GetRoute(gomock.Any(), "ETH", "XYZ", gomock.Any()).
		Return(nil, services.ErrNoRouteFound)

	conversion, err := service.ExecuteConversion(context.Background(), interfaces.ExecuteConversionParams{
		FromToken:          "ETH",
		ToToken:            "XYZ",
		Amount:             big.NewInt(1000),
		SlippageBps:        50,
		DestinationAddress: testDestination,
	})

	assert.ErrorIs(t, err, services.ErrNoRouteFound)
	assert.Nil(t, conversion)
}

func TestConversionService_ExecuteConversion_CreateFails(t *testing.T) {
	service, m := newConversionService(t)

	route := directTestRoute(3700000000)
	plan := planForRoute(route, 3681500000)

	m.router.EXPECT().GetRoute(gomock.Any(), "ETH", "USDC", gomock.Any()).Return(route, nil)
	m.planner.EXPECT().Plan(route, int32(50)).Return(plan, nil)
	m.querier.EXPECT().
		CreateConversion(gomock.Any(), gomock.Any()).
		Return(db.Conversion{}, fmt.Errorf("connection refused"))

	conversion, err := service.ExecuteConversion(context.Background(), interfaces.ExecuteConversionParams{
		FromToken:          "ETH",
		ToToken:            "USDC",
		Amount:             big.NewInt(1000000000000000000),
		SlippageBps:        50,
		DestinationAddress: testDestination,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create conversion")
	assert.Nil(t, conversion)
}

func TestConversionService_ExecuteConversion_RecordPersistenceFailureTolerated(t *testing.T) {
	service, m := newConversionService(t)

	conversionID := uuid.New()
	amount := big.NewInt(1000000000000000000)
	route := directTestRoute(3700000000)
	plan := planForRoute(route, 3681500000)

	m.router.EXPECT().GetRoute(gomock.Any(), "ETH", "USDC", amount).Return(route, nil)
	m.planner.EXPECT().Plan(route, int32(50)).Return(plan, nil)
	m.querier.EXPECT().
		CreateConversion(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusPending), nil)
	m.querier.EXPECT().
		UpdateConversionStatus(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusExecuting), nil)
	m.executor.EXPECT().
		Execute(gomock.Any(), plan, testDestination).
		Return([]business.TransactionRecord{confirmedRecord(3695000000)}, nil)

	// A dropped transaction record must not fail the conversion itself
	m.querier.EXPECT().
		CreateConversionTransaction(gomock.Any(), gomock.Any()).
		Return(db.ConversionTransaction{}, fmt.Errorf("insert failed"))

	completed := dbConversionRow(conversionID, constants.ConversionStatusCompleted)
	completed.RealizedOutput = db.NumericFromBigInt(big.NewInt(3695000000))
	m.querier.EXPECT().CompleteConversion(gomock.Any(), gomock.Any()).Return(completed, nil)
	m.publisher.EXPECT().PublishConversionEvent(gomock.Any(), gomock.Any()).Return(nil)

	conversion, err := service.ExecuteConversion(context.Background(), interfaces.ExecuteConversionParams{
		FromToken:          "ETH",
		ToToken:            "USDC",
		Amount:             amount,
		SlippageBps:        50,
		DestinationAddress: testDestination,
	})

	require.NoError(t, err)
	assert.Equal(t, constants.ConversionStatusCompleted, conversion.Status)
}

func TestConversionService_ExecuteConversion_PublisherErrorTolerated(t *testing.T) {
	service, m := newConversionService(t)

	conversionID := uuid.New()
	amount := big.NewInt(1000000000000000000)
	route := directTestRoute(3700000000)
	plan := planForRoute(route, 3681500000)

	m.router.EXPECT().GetRoute(gomock.Any(), "ETH", "USDC", amount).Return(route, nil)
	m.planner.EXPECT().Plan(route, int32(50)).Return(plan, nil)
	m.querier.EXPECT().
		CreateConversion(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusPending), nil)
	m.querier.EXPECT().
		UpdateConversionStatus(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusExecuting), nil)
	m.executor.EXPECT().
		Execute(gomock.Any(), plan, testDestination).
		Return([]business.TransactionRecord{confirmedRecord(3695000000)}, nil)
	m.querier.EXPECT().
		CreateConversionTransaction(gomock.Any(), gomock.Any()).
		Return(db.ConversionTransaction{}, nil)
	m.querier.EXPECT().
		CompleteConversion(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusCompleted), nil)
	m.publisher.EXPECT().
		PublishConversionEvent(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("queue unavailable"))

	conversion, err := service.ExecuteConversion(context.Background(), interfaces.ExecuteConversionParams{
		FromToken:          "ETH",
		ToToken:            "USDC",
		Amount:             amount,
		SlippageBps:        50,
		DestinationAddress: testDestination,
	})

	require.NoError(t, err)
	assert.Equal(t, constants.ConversionStatusCompleted, conversion.Status)
}

func TestConversionService_ExecuteConversion_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	querier := mocks.NewMockQuerier(ctrl)
	router := mocks.NewMockRouteService(ctrl)
	planner := mocks.NewMockPlannerService(ctrl)
	executor := mocks.NewMockExecutorService(ctrl)
	service := services.NewConversionService(querier, router, planner, executor, nil)

	conversionID := uuid.New()
	amount := big.NewInt(1000000000000000000)
	route := directTestRoute(3700000000)
	plan := planForRoute(route, 3681500000)

	router.EXPECT().GetRoute(gomock.Any(), "ETH", "USDC", amount).Return(route, nil)
	planner.EXPECT().Plan(route, int32(50)).Return(plan, nil)
	querier.EXPECT().
		CreateConversion(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusPending), nil)
	querier.EXPECT().
		UpdateConversionStatus(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusExecuting), nil)
	executor.EXPECT().
		Execute(gomock.Any(), plan, testDestination).
		Return([]business.TransactionRecord{confirmedRecord(3695000000)}, nil)
	querier.EXPECT().
		CreateConversionTransaction(gomock.Any(), gomock.Any()).
		Return(db.ConversionTransaction{}, nil)
	querier.EXPECT().
		CompleteConversion(gomock.Any(), gomock.Any()).
		Return(dbConversionRow(conversionID, constants.ConversionStatusCompleted), nil)

	conversion, err := service.ExecuteConversion(context.Background(), interfaces.ExecuteConversionParams{
		FromToken:          "ETH",
		ToToken:            "USDC",
		Amount:             amount,
		SlippageBps:        50,
		DestinationAddress: testDestination,
	})

	require.NoError(t, err)
	assert.Equal(t, constants.ConversionStatusCompleted, conversion.Status)
}

func TestConversionService_GetConversion(t *testing.T) {
	service, m := newConversionService(t)

	conversionID := uuid.New()
	row := dbConversionRow(conversionID, constants.ConversionStatusCompleted)
	row.RealizedOutput = db.NumericFromBigInt(big.NewInt(3695000000))

	txRow := db.ConversionTransaction{
		ID:                uuid.New(),
		ConversionID:      conversionID,
		HopIndex:          0,
		Provider:          "layerswap",
		FromToken:         "ETH",
		ToToken:           "USDC",
		FromAmount:        db.NumericFromBigInt(big.NewInt(1000000000000000000)),
		ExpectedToAmount:  db.NumericFromBigInt(big.NewInt(3700000000)),
		RealizedToAmount:  db.NumericFromBigInt(big.NewInt(3695000000)),
		TransactionHandle: db.TextFromString("ls-tx-1"),
		Status:            constants.TransactionStatusConfirmed,
		CreatedAt:         pgtype.Timestamptz{Time: time.Date(2025, 3, 1, 12, 0, 1, 0, time.UTC), Valid: true},
	}

	m.querier.EXPECT().GetConversion(gomock.Any(), conversionID).Return(row, nil)
	m.querier.EXPECT().
		ListConversionTransactions(gomock.Any(), conversionID).
		Return([]db.ConversionTransaction{txRow}, nil)

	conversion, err := service.GetConversion(context.Background(), conversionID)

	require.NoError(t, err)
	assert.Equal(t, conversionID, conversion.ID)
	assert.Equal(t, "ETH", conversion.FromToken)
	assert.Equal(t, "1000000000000000000", conversion.FromAmount.String())
	assert.Equal(t, "3695000000", conversion.RealizedOutput.String())

	require.Len(t, conversion.Records, 1)
	record := conversion.Records[0]
	assert.Equal(t, 0, record.HopIndex)
	assert.Equal(t, "layerswap", record.Provider)
	assert.Equal(t, "3695000000", record.RealizedToAmount.String())
	assert.Equal(t, "ls-tx-1", record.TransactionHandle)
	assert.Equal(t, constants.TransactionStatusConfirmed, record.Status)
}

func TestConversionService_GetConversion_NotFound(t *testing.T) {
	service, m := newConversionService(t)

	conversionID := uuid.New()
	m.querier.EXPECT().GetConversion(gomock.Any(), conversionID).Return(db.Conversion{}, pgx.ErrNoRows)

	conversion, err := service.GetConversion(context.Background(), conversionID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "conversion not found")
	assert.Nil(t, conversion)
}

func TestConversionService_GetConversion_TransactionsError(t *testing.T) {
	service, m := newConversionService(t)

	conversionID := uuid.New()
	m.querier.EXPECT().
		GetConversion(gomock.Any(), conversionID).
		Return(dbConversionRow(conversionID, constants.ConversionStatusCompleted), nil)
	m.querier.EXPECT().
		ListConversionTransactions(gomock.Any(), conversionID).
		Return(nil, fmt.Errorf("connection refused"))

	conversion, err := service.GetConversion(context.Background(), conversionID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list conversion transactions")
	assert.Nil(t, conversion)
}

func TestConversionService_ListConversions(t *testing.T) {
	service, m := newConversionService(t)

	rows := []db.Conversion{
		dbConversionRow(uuid.New(), constants.ConversionStatusCompleted),
		dbConversionRow(uuid.New(), constants.ConversionStatusFailed),
	}
	m.querier.EXPECT().
		ListConversions(gomock.Any(), db.ListConversionsParams{Limit: 10, Offset: 5}).
		Return(rows, nil)

	conversions, err := service.ListConversions(context.Background(), 10, 5)

	require.NoError(t, err)
	require.Len(t, conversions, 2)
	assert.Equal(t, constants.ConversionStatusCompleted, conversions[0].Status)
	assert.Equal(t, constants.ConversionStatusFailed, conversions[1].Status)
	assert.Nil(t, conversions[0].Records)
}

func TestConversionService_ListConversions_Defaults(t *testing.T) {
	service, m := newConversionService(t)

	m.querier.EXPECT().
		ListConversions(gomock.Any(), db.ListConversionsParams{Limit: 20, Offset: 0}).
		Return([]db.Conversion{}, nil)

	conversions, err := service.ListConversions(context.Background(), 0, -3)

	require.NoError(t, err)
	assert.Empty(t, conversions)
}

func TestConversionService_ListConversions_Error(t *testing.T) {
	service, m := newConversionService(t)

	m.querier.EXPECT().
		ListConversions(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("connection refused"))

	conversions, err := service.ListConversions(context.Background(), 20, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list conversions")
	assert.Nil(t, conversions)
}
