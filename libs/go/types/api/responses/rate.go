package responses

// RateQuoteResponse represents the winning quote for a best-rate query.
// Amounts are decimal strings in smallest units.
type RateQuoteResponse struct {
	Object               string  `json:"object"`
	FromToken            string  `json:"from_token"`
	ToToken              string  `json:"to_token"`
	FromAmount           string  `json:"from_amount"`
	ToAmount             string  `json:"to_amount"`
	Rate                 float64 `json:"rate"`
	BridgeID             string  `json:"bridge_id"`
	SourceBridgeID       string  `json:"source_bridge_id"`
	Fees                 string  `json:"fees"`
	EstimatedTimeSeconds int     `json:"estimated_time_seconds"`
	Confidence           float64 `json:"confidence"`
	RetrievedAt          int64   `json:"retrieved_at"`
}

// RouteHopResponse represents one leg of a conversion route
type RouteHopResponse struct {
	FromToken            string  `json:"from_token"`
	ToToken              string  `json:"to_token"`
	FromAmount           string  `json:"from_amount"`
	ExpectedOutput       string  `json:"expected_output"`
	BridgeID             string  `json:"bridge_id"`
	Rate                 float64 `json:"rate"`
	Fees                 string  `json:"fees"`
	EstimatedTimeSeconds int     `json:"estimated_time_seconds"`
}

// RouteResponse represents a resolved conversion route
type RouteResponse struct {
	Object         string             `json:"object"`
	FromToken      string             `json:"from_token"`
	ToToken        string             `json:"to_token"`
	FromAmount     string             `json:"from_amount"`
	Kind           string             `json:"kind"`
	Hops           []RouteHopResponse `json:"hops"`
	ExpectedOutput string             `json:"expected_output"`
}

// CacheStatsResponse reports rate cache occupancy counters
type CacheStatsResponse struct {
	Object          string  `json:"object"`
	TotalEntries    int     `json:"total_entries"`
	ActiveEntries   int     `json:"active_entries"`
	ExpiredEntries  int     `json:"expired_entries"`
	CacheTTLSeconds float64 `json:"cache_ttl_seconds"`
}

// CacheRefreshResponse reports the outcome of a cache sweep
type CacheRefreshResponse struct {
	Object  string `json:"object"`
	Evicted int    `json:"evicted"`
}
