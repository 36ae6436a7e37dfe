package business

import "time"

// ConversionEvent is the message published to the conversion events queue
// when a conversion reaches a terminal state. Amounts are decimal strings so
// consumers never lose precision to JSON numbers.
type ConversionEvent struct {
	Type           string    `json:"type"`
	ConversionID   string    `json:"conversion_id"`
	FromToken      string    `json:"from_token"`
	ToToken        string    `json:"to_token"`
	FromAmount     string    `json:"from_amount"`
	RealizedOutput string    `json:"realized_output,omitempty"`
	RouteKind      string    `json:"route_kind"`
	Status         string    `json:"status"`
	FailureReason  string    `json:"failure_reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
