package helpers

import (
	"math/big"

	"github.com/starkport/starkport-api/libs/go/types/api/responses"
	"github.com/starkport/starkport-api/libs/go/types/business"
)

// amountString renders a smallest-units amount, tolerating nil for figures
// that are unset until execution confirms.
func amountString(v *big.Int) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// ToTokenResponse converts a business model to the API response
func ToTokenResponse(t business.Token) responses.TokenResponse {
	return responses.TokenResponse{
		ID:              t.ID.String(),
		Object:          "token",
		Symbol:          t.Symbol,
		Name:            t.Name,
		Decimals:        t.Decimals,
		Chain:           t.Chain,
		ContractAddress: t.ContractAddress,
		Active:          t.Active,
		CreatedAt:       t.CreatedAt.Unix(),
		UpdatedAt:       t.UpdatedAt.Unix(),
	}
}

// ToRateQuoteResponse converts a winning rate quote to the API response
func ToRateQuoteResponse(q business.RateQuote, fromAmount *big.Int) responses.RateQuoteResponse {
	return responses.RateQuoteResponse{
		Object:               "rate_quote",
		FromToken:            q.FromToken,
		ToToken:              q.ToToken,
		FromAmount:           amountString(fromAmount),
		ToAmount:             amountString(q.ToAmount),
		Rate:                 q.Rate,
		BridgeID:             q.BridgeID,
		SourceBridgeID:       q.SourceBridgeID,
		Fees:                 amountString(q.Fees),
		EstimatedTimeSeconds: q.EstimatedTimeSeconds,
		Confidence:           q.Confidence,
		RetrievedAt:          q.RetrievedAt.Unix(),
	}
}

// ToRouteResponse converts a resolved route to the API response
func ToRouteResponse(r business.ConversionRoute) responses.RouteResponse {
	hops := make([]responses.RouteHopResponse, len(r.Hops))
	for i, hop := range r.Hops {
		hops[i] = responses.RouteHopResponse{
			FromToken:            hop.FromToken,
			ToToken:              hop.ToToken,
			FromAmount:           amountString(hop.FromAmount),
			ExpectedOutput:       amountString(hop.ExpectedOutput),
			BridgeID:             hop.BridgeID,
			Rate:                 hop.Rate,
			Fees:                 amountString(hop.Fees),
			EstimatedTimeSeconds: hop.EstimatedTimeSeconds,
		}
	}

	return responses.RouteResponse{
		Object:         "route",
		FromToken:      r.FromToken,
		ToToken:        r.ToToken,
		FromAmount:     amountString(r.FromAmount),
		Kind:           r.Kind,
		Hops:           hops,
		ExpectedOutput: amountString(r.ExpectedOutput),
	}
}

// ToConversionPlanResponse converts an executable plan to the API response
func ToConversionPlanResponse(p business.ConversionPlan) responses.ConversionPlanResponse {
	return responses.ConversionPlanResponse{
		Object:                   "conversion_plan",
		Route:                    ToRouteResponse(p.Route),
		SlippageBps:              p.SlippageBps,
		EstimatedOutput:          amountString(p.EstimatedOutput),
		MinAcceptableOutput:      amountString(p.MinAcceptableOutput),
		TotalFees:                amountString(p.TotalFees),
		PriceImpact:              p.PriceImpact,
		EstimatedDurationSeconds: p.EstimatedDurationSeconds,
		CreatedAt:                p.CreatedAt.Unix(),
	}
}

// ToTransactionRecordResponse converts one executed hop to the API response
func ToTransactionRecordResponse(r business.TransactionRecord) responses.TransactionRecordResponse {
	realized := ""
	if r.RealizedToAmount != nil {
		realized = r.RealizedToAmount.String()
	}

	return responses.TransactionRecordResponse{
		HopIndex:          r.HopIndex,
		Provider:          r.Provider,
		FromToken:         r.FromToken,
		ToToken:           r.ToToken,
		FromAmount:        amountString(r.FromAmount),
		ExpectedToAmount:  amountString(r.ExpectedToAmount),
		RealizedToAmount:  realized,
		TransactionHandle: r.TransactionHandle,
		Status:            r.Status,
		FailureReason:     r.FailureReason,
		CreatedAt:         r.CreatedAt.Unix(),
	}
}

// ToConversionResponse converts the persisted aggregate to the API response
func ToConversionResponse(conv business.Conversion) responses.ConversionResponse {
	var records []responses.TransactionRecordResponse
	if len(conv.Records) > 0 {
		records = make([]responses.TransactionRecordResponse, len(conv.Records))
		for i, record := range conv.Records {
			records[i] = ToTransactionRecordResponse(record)
		}
	}

	realized := ""
	if conv.RealizedOutput != nil {
		realized = conv.RealizedOutput.String()
	}

	return responses.ConversionResponse{
		ID:                  conv.ID.String(),
		Object:              "conversion",
		FromToken:           conv.FromToken,
		ToToken:             conv.ToToken,
		FromAmount:          amountString(conv.FromAmount),
		Status:              conv.Status,
		RouteKind:           conv.RouteKind,
		HopCount:            conv.HopCount,
		EstimatedOutput:     amountString(conv.EstimatedOutput),
		MinAcceptableOutput: amountString(conv.MinAcceptableOutput),
		RealizedOutput:      realized,
		TotalFees:           amountString(conv.TotalFees),
		PriceImpact:         conv.PriceImpact,
		SlippageBps:         conv.SlippageBps,
		DestinationAddress:  conv.DestinationAddress,
		FailureReason:       conv.FailureReason,
		Records:             records,
		CreatedAt:           conv.CreatedAt.Unix(),
		UpdatedAt:           conv.UpdatedAt.Unix(),
	}
}
