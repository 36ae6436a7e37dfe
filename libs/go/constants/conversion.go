package constants

// Provider identifiers
const (
	LayerswapProvider = "layerswap"
	AvnuProvider      = "avnu"
)

// Conversion lifecycle event types published to the events queue
const (
	EventConversionCompleted = "conversion.completed"
	EventConversionFailed    = "conversion.failed"
)
