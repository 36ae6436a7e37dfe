package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Conversion statuses
	ConversionStatusPending   = "pending"
	ConversionStatusExecuting = "executing"
	ConversionStatusCompleted = "completed"
	ConversionStatusFailed    = "failed"

	// Hop transaction statuses
	TransactionStatusPending   = "pending"
	TransactionStatusConfirmed = "confirmed"
	TransactionStatusFailed    = "failed"

	// Route kinds
	RouteKindDirect   = "direct"
	RouteKindMultiHop = "multi_hop"

	// BridgeID reported on quotes served from the rate cache
	CachedBridgeID = "cached"
)
