package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

// TokenService manages the registry of tokens the engine can convert
// between. Symbols are stored uppercase and must be unique.
type TokenService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewTokenService(queries db.Querier) *TokenService {
	return &TokenService{
		queries: queries,
		logger:  logger.Log,
	}
}

var _ interfaces.TokenService = (*TokenService)(nil)

// ListTokens returns every registered token ordered by symbol.
func (s *TokenService) ListTokens(ctx context.Context) ([]business.Token, error) {
	rows, err := s.queries.ListTokens(ctx)
	if err != nil {
		s.logger.Error("failed to list tokens", zap.Error(err))
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	tokens := make([]business.Token, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, tokenFromRow(row))
	}
	return tokens, nil
}

// GetTokenBySymbol looks up a single token by its symbol. The lookup is
// case-insensitive; symbols are normalized to uppercase on write.
func (s *TokenService) GetTokenBySymbol(ctx context.Context, symbol string) (*business.Token, error) {
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	if !helpers.IsTokenSymbolValid(normalized) {
		return nil, fmt.Errorf("invalid token symbol: %q", symbol)
	}

	row, err := s.queries.GetTokenBySymbol(ctx, normalized)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("token not found: %s", normalized)
		}
		s.logger.Error("failed to get token",
			zap.String("symbol", normalized),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	token := tokenFromRow(row)
	return &token, nil
}

// CreateToken registers a new token. The symbol is normalized to
// uppercase before insertion and must not collide with an existing one.
// New tokens are active immediately.
func (s *TokenService) CreateToken(ctx context.Context, params interfaces.CreateTokenParams) (*business.Token, error) {
	normalized := strings.ToUpper(strings.TrimSpace(params.Symbol))
	if !helpers.IsTokenSymbolValid(normalized) {
		return nil, fmt.Errorf("invalid token symbol: %q", params.Symbol)
	}
	if strings.TrimSpace(params.Chain) == "" {
		return nil, fmt.Errorf("chain is required")
	}
	if params.Decimals < 0 || params.Decimals > 36 {
		return nil, fmt.Errorf("invalid decimals: %d", params.Decimals)
	}
	if params.ContractAddress != "" && !helpers.IsAddressValid(params.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", params.ContractAddress)
	}

	row, err := s.queries.CreateToken(ctx, db.CreateTokenParams{
		Symbol:          normalized,
		Name:            strings.TrimSpace(params.Name),
		Decimals:        params.Decimals,
		Chain:           strings.TrimSpace(params.Chain),
		ContractAddress: params.ContractAddress,
		Active:          true,
	})
	if err != nil {
		s.logger.Error("failed to create token",
			zap.String("symbol", normalized),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	s.logger.Info("token registered",
		zap.String("token_id", row.ID.String()),
		zap.String("symbol", row.Symbol),
		zap.String("chain", row.Chain))

	token := tokenFromRow(row)
	return &token, nil
}

func tokenFromRow(row db.Token) business.Token {
	return business.Token{
		ID:              row.ID,
		Symbol:          row.Symbol,
		Name:            row.Name,
		Decimals:        row.Decimals,
		Chain:           row.Chain,
		ContractAddress: row.ContractAddress,
		Active:          row.Active,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
