package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/starkport/starkport-api/libs/go/interfaces"
	"github.com/starkport/starkport-api/libs/go/logger"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

// SQSPublisher publishes conversion lifecycle events to an SQS queue for
// downstream consumers (notifications, reconciliation, analytics).
type SQSPublisher struct {
	client   *sqs.Client
	queueURL string
}

// NewSQSPublisher creates an SQS-backed event publisher using the default
// AWS configuration chain.
func NewSQSPublisher(ctx context.Context, queueURL string) (*SQSPublisher, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("queue URL is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &SQSPublisher{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

var _ interfaces.ConversionEventPublisher = (*SQSPublisher)(nil)

// PublishConversionEvent serializes the event and sends it to the queue.
func (p *SQSPublisher) PublishConversionEvent(ctx context.Context, event business.ConversionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal conversion event: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"EventType": {
				StringValue: aws.String(event.Type),
				DataType:    aws.String("String"),
			},
			"RouteKind": {
				StringValue: aws.String(event.RouteKind),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send conversion event to SQS: %w", err)
	}

	logger.Log.Debug("conversion event published",
		zap.String("type", event.Type),
		zap.String("conversion_id", event.ConversionID))

	return nil
}
