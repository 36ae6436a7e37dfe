package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	awsclient "github.com/starkport/starkport-api/libs/go/client/aws"
	"github.com/starkport/starkport-api/libs/go/constants"
	"github.com/starkport/starkport-api/libs/go/db"
	"github.com/starkport/starkport-api/libs/go/helpers"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Application holds the processor's long-lived dependencies
type Application struct {
	db             *db.Queries
	logger         *zap.Logger
	publisher      *awsclient.SQSPublisher
	maxRetries     int
	retryBackoffMs int
}

// DLQProcessingResult represents the result of processing a dead-lettered
// conversion event
type DLQProcessingResult struct {
	MessageID             string `json:"message_id"`
	ConversionID          string `json:"conversion_id"`
	EventType             string `json:"event_type"`
	ReceiveCount          int    `json:"receive_count"`
	ProcessedSuccessfully bool   `json:"processed_successfully"`
	Republished           bool   `json:"republished"`
	Error                 string `json:"error,omitempty"`
	ProcessedAt           int64  `json:"processed_at"`
	ShouldRetry           bool   `json:"should_retry"`
}

// HandleSQSEvent processes messages from the conversion events DLQ
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("DLQ processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	results := make([]DLQProcessingResult, 0, len(event.Records))
	hasFailures := false

	for _, record := range event.Records {
		result := app.processDLQRecord(ctx, record)
		results = append(results, result)

		if !result.ProcessedSuccessfully {
			hasFailures = true
		}
	}

	// Log summary
	successCount := 0
	republishedCount := 0
	for _, result := range results {
		if result.ProcessedSuccessfully {
			successCount++
		}
		if result.Republished {
			republishedCount++
		}
	}

	logger.Info("DLQ processing completed",
		zap.Int("total", len(results)),
		zap.Int("success", successCount),
		zap.Int("republished", republishedCount),
		zap.Int("failed", len(results)-successCount),
		zap.Bool("has_failures", hasFailures))

	// Return error if any messages failed in a retryable way so SQS
	// redelivers the batch
	if hasFailures {
		return fmt.Errorf("failed to process %d of %d messages", len(results)-successCount, len(results))
	}

	return nil
}

// processDLQRecord reconciles a single dead-lettered conversion event against
// the conversions table and republishes it to the main queue when it still
// reflects the stored state. Malformed bodies, unknown conversions, stale
// events, and records past the retry budget are dropped so SQS stops
// redelivering them.
func (app *Application) processDLQRecord(ctx context.Context, record events.SQSMessage) DLQProcessingResult {
	result := DLQProcessingResult{
		MessageID:    record.MessageId,
		ReceiveCount: receiveCount(record),
		ProcessedAt:  time.Now().Unix(),
	}

	logger.Info("Processing DLQ record",
		zap.String("message_id", record.MessageId),
		zap.String("source", record.EventSourceARN),
		zap.Int("receive_count", result.ReceiveCount))

	var conversionEvent business.ConversionEvent
	if err := json.Unmarshal([]byte(record.Body), &conversionEvent); err != nil {
		logger.Error("Failed to unmarshal conversion event, dropping message",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		result.Error = fmt.Sprintf("unmarshal error: %v", err)
		result.ProcessedSuccessfully = true
		return result
	}

	result.ConversionID = conversionEvent.ConversionID
	result.EventType = conversionEvent.Type

	// Past the retry budget the event is dropped for good
	if result.ReceiveCount > app.maxRetries {
		logger.Warn("Max retries exceeded for conversion event, dropping message",
			zap.String("message_id", record.MessageId),
			zap.String("conversion_id", conversionEvent.ConversionID),
			zap.Int("receive_count", result.ReceiveCount))
		result.Error = "max retries exceeded"
		result.ProcessedSuccessfully = true
		return result
	}

	// Apply exponential backoff against the event timestamp
	eventAgeSeconds := time.Now().Unix() - conversionEvent.OccurredAt.Unix()
	backoffSeconds := app.calculateBackoff(result.ReceiveCount)

	if eventAgeSeconds < backoffSeconds {
		logger.Info("Skipping conversion event due to backoff",
			zap.String("message_id", record.MessageId),
			zap.String("conversion_id", conversionEvent.ConversionID),
			zap.Int64("backoff_remaining", backoffSeconds-eventAgeSeconds))
		result.Error = "still in backoff period"
		result.ShouldRetry = true
		result.ProcessedSuccessfully = false
		return result
	}

	// Reconcile the event against the stored conversion
	republished, err := app.reconcileConversionEvent(ctx, conversionEvent)
	if err != nil {
		logger.Error("Failed to reconcile conversion event",
			zap.String("message_id", record.MessageId),
			zap.String("conversion_id", conversionEvent.ConversionID),
			zap.Error(err))
		result.Error = fmt.Sprintf("reconcile error: %v", err)
		result.ShouldRetry = true
		result.ProcessedSuccessfully = false
		return result
	}

	if republished {
		logger.Info("Successfully republished conversion event from DLQ",
			zap.String("message_id", record.MessageId),
			zap.String("conversion_id", conversionEvent.ConversionID),
			zap.String("event_type", conversionEvent.Type),
			zap.Int("receive_count", result.ReceiveCount))
	}

	result.ProcessedSuccessfully = true
	result.Republished = republished

	return result
}

// receiveCount reads the ApproximateReceiveCount SQS attribute, defaulting to
// 1 when the attribute is missing or unparseable.
func receiveCount(record events.SQSMessage) int {
	raw, ok := record.Attributes["ApproximateReceiveCount"]
	if !ok {
		return 1
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		return 1
	}
	return count
}

// calculateBackoff returns the wait window in seconds for a receive count,
// doubling per delivery up to an hour.
func (app *Application) calculateBackoff(receiveCount int) int64 {
	baseBackoff := app.retryBackoffMs / 1000
	maxBackoff := int64(3600)

	backoff := int64(baseBackoff) * (1 << (receiveCount - 1))
	if backoff > maxBackoff {
		backoff = maxBackoff
	}

	return backoff
}

// reconcileConversionEvent looks up the conversion the event refers to and
// republishes the event when the stored status still matches the event type.
// Returns false with a nil error when the event should be dropped instead.
func (app *Application) reconcileConversionEvent(ctx context.Context, conversionEvent business.ConversionEvent) (bool, error) {
	conversionID, err := uuid.Parse(conversionEvent.ConversionID)
	if err != nil {
		logger.Error("Conversion event carries an invalid conversion ID, dropping message",
			zap.String("conversion_id", conversionEvent.ConversionID),
			zap.Error(err))
		return false, nil
	}

	var wantStatus string
	switch conversionEvent.Type {
	case constants.EventConversionCompleted:
		wantStatus = constants.ConversionStatusCompleted
	case constants.EventConversionFailed:
		wantStatus = constants.ConversionStatusFailed
	default:
		logger.Error("Unrecognized conversion event type, dropping message",
			zap.String("conversion_id", conversionEvent.ConversionID),
			zap.String("event_type", conversionEvent.Type))
		return false, nil
	}

	conversion, err := app.db.GetConversion(ctx, conversionID)
	if err != nil {
		if err == pgx.ErrNoRows {
			logger.Error("Conversion event references unknown conversion, dropping message",
				zap.String("conversion_id", conversionEvent.ConversionID))
			return false, nil
		}
		return false, fmt.Errorf("failed to look up conversion: %w", err)
	}

	if conversion.Status != wantStatus {
		logger.Warn("Conversion event no longer matches stored status, dropping stale event",
			zap.String("conversion_id", conversionEvent.ConversionID),
			zap.String("event_type", conversionEvent.Type),
			zap.String("stored_status", conversion.Status))
		return false, nil
	}

	if err := app.publisher.PublishConversionEvent(ctx, conversionEvent); err != nil {
		return false, fmt.Errorf("failed to republish conversion event: %w", err)
	}

	return true, nil
}

func main() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		panic(fmt.Sprintf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal))
	}

	// Initialize logger
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing DLQ processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	// Secrets Manager client for DSN resolution
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// Deployed stages must resolve the DSN through Secrets Manager; local
	// development reads DATABASE_URL directly.
	if stage == helpers.StageProd || stage == helpers.StageDev {
		if os.Getenv("DATABASE_SECRET_ARN") == "" {
			logger.Fatal("DATABASE_SECRET_ARN is required for deployed stages")
		}
	}
	dsn, err := secretsClient.GetSecretString(ctx, "DATABASE_SECRET_ARN", "DATABASE_URL")
	if err != nil || dsn == "" {
		logger.Fatal("Failed to get database DSN", zap.Error(err))
	}

	// Configure and create the connection pool
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries := db.New(connPool)

	// Main queue publisher for recovered events
	queueURL := os.Getenv("CONVERSION_EVENTS_QUEUE_URL")
	if queueURL == "" {
		logger.Fatal("CONVERSION_EVENTS_QUEUE_URL is required for the DLQ processor")
	}
	publisher, err := awsclient.NewSQSPublisher(ctx, queueURL)
	if err != nil {
		logger.Fatal("Failed to initialize SQS publisher", zap.Error(err))
	}

	// Retry policy from environment
	maxRetries := 5
	if maxRetriesStr := os.Getenv("DLQ_MAX_RETRIES"); maxRetriesStr != "" {
		if parsed, err := strconv.Atoi(maxRetriesStr); err == nil {
			maxRetries = parsed
		}
	}

	retryBackoffMs := 60000 // 1 minute default
	if backoffStr := os.Getenv("DLQ_RETRY_BACKOFF_MS"); backoffStr != "" {
		if parsed, err := strconv.Atoi(backoffStr); err == nil {
			retryBackoffMs = parsed
		}
	}

	app := &Application{
		db:             dbQueries,
		logger:         logger.Log,
		publisher:      publisher,
		maxRetries:     maxRetries,
		retryBackoffMs: retryBackoffMs,
	}

	lambda.Start(app.HandleSQSEvent)
}
