package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"

	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/mocks"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// ExpectTokenBySymbol sets up expectation for a token lookup. A nil token
// answers with pgx.ErrNoRows.
func (m *MockDatabase) ExpectTokenBySymbol(symbol string, token *db.Token) {
	if token != nil {
		m.Querier.EXPECT().
			GetTokenBySymbol(gomock.Any(), symbol).
			Return(*token, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetTokenBySymbol(gomock.Any(), symbol).
			Return(db.Token{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectConversionExists sets up expectation for a conversion lookup. A nil
// conversion answers with pgx.ErrNoRows.
func (m *MockDatabase) ExpectConversionExists(id uuid.UUID, conversion *db.Conversion) {
	if conversion != nil {
		m.Querier.EXPECT().
			GetConversion(gomock.Any(), id).
			Return(*conversion, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetConversion(gomock.Any(), id).
			Return(db.Conversion{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectCreateConversion sets up expectation for conversion creation
func (m *MockDatabase) ExpectCreateConversion(conversion db.Conversion) {
	m.Querier.EXPECT().
		CreateConversion(gomock.Any(), gomock.Any()).
		Return(conversion, nil).
		Times(1)
}

// ExpectStatusUpdate sets up expectation for a conversion status transition
func (m *MockDatabase) ExpectStatusUpdate(id uuid.UUID, status string, result db.Conversion) {
	m.Querier.EXPECT().
		UpdateConversionStatus(gomock.Any(), db.UpdateConversionStatusParams{ID: id, Status: status}).
		Return(result, nil).
		Times(1)
}

// ExpectConversionCompleted sets up expectation for the terminal completion update
func (m *MockDatabase) ExpectConversionCompleted(result db.Conversion) {
	m.Querier.EXPECT().
		CompleteConversion(gomock.Any(), gomock.Any()).
		Return(result, nil).
		Times(1)
}

// ExpectConversionTransactions sets up expectation for loading a conversion's hop records
func (m *MockDatabase) ExpectConversionTransactions(id uuid.UUID, rows []db.ConversionTransaction) {
	m.Querier.EXPECT().
		ListConversionTransactions(gomock.Any(), id).
		Return(rows, nil).
		Times(1)
}

// ExpectTransactionRecords sets up expectation for n hop records being persisted
func (m *MockDatabase) ExpectTransactionRecords(n int) {
	m.Querier.EXPECT().
		CreateConversionTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateConversionTransactionParams) (db.ConversionTransaction, error) {
			return db.ConversionTransaction{
				ID:           uuid.New(),
				ConversionID: arg.ConversionID,
				HopIndex:     arg.HopIndex,
				Provider:     arg.Provider,
				FromToken:    arg.FromToken,
				ToToken:      arg.ToToken,
				Status:       arg.Status,
			}, nil
		}).
		Times(n)
}
