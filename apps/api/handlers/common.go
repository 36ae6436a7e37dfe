package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db db.Querier
	// dbPool is kept separate for transaction support
	dbPool *pgxpool.Pool
	logger *zap.Logger
}

// Use types from the centralized packages
type ErrorResponse = responses.ErrorResponse
type SuccessResponse = responses.SuccessResponse

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB     db.Querier
	DBPool *pgxpool.Pool // Optional: for transaction support
	Logger *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		db:     config.DB,
		dbPool: config.DBPool,
		logger: config.Logger,
	}
}

// GetDB returns the database querier
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// GetDBPool returns the underlying database pool
func (s *CommonServices) GetDBPool() (*pgxpool.Pool, error) {
	if s.dbPool != nil {
		return s.dbPool, nil
	}
	return nil, errors.New("pool not available - please provide DBPool in CommonServicesConfig")
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	// Get correlation ID from context
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	// Include correlation ID in error response for debugging
	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}

	c.JSON(statusCode, response)
}

// isNotFound reports whether a service error denotes a missing record.
// Services wrap pgx.ErrNoRows into descriptive messages, so match on those.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found")
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

// validateListParams validates and returns limit and offset query parameters
func validateListParams(c *gin.Context) (limit int32, offset int32, err error) {
	params, err := helpers.ParsePaginationParams(c)
	if err != nil {
		return 0, 0, err
	}
	return params.Limit, params.Offset, nil
}

// CreateTestCommonServices creates a CommonServices instance for handler tests
// without an actual database connection
func CreateTestCommonServices(db db.Querier) *CommonServices {
	return &CommonServices{
		db:     db,
		dbPool: nil,
		logger: zap.NewNop(),
	}
}
