package alphavantage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tudormobile/alphavantage-go/internal/jsonval"
)

// EarningsEstimate is one analyst-consensus row for a reporting horizon.
// Count fields are pointers where the API distinguishes "no figure reported"
// (null) from a present value; RevisionUpTrailing7Days and
// RevenueAnalystCount are plain ints truncated from decimal strings, matching
// the upstream contract for those two fields.
type EarningsEstimate struct {
	Date                       time.Time
	Horizon                    string
	EpsAverage                 decimal.Decimal
	EpsHigh                    decimal.Decimal
	EpsLow                     decimal.Decimal
	EpsAnalystCount            *int
	EpsAverage7DaysAgo         decimal.Decimal
	EpsAverage30DaysAgo        decimal.Decimal
	EpsAverage60DaysAgo        decimal.Decimal
	EpsAverage90DaysAgo        decimal.Decimal
	RevisionUpTrailing7Days    int
	RevisionDownTrailing7Days  *int
	RevisionUpTrailing30Days   *int
	RevisionDownTrailing30Days *int
	RevenueAverage             decimal.Decimal
	RevenueHigh                decimal.Decimal
	RevenueLow                 decimal.Decimal
	RevenueAnalystCount        int
}

// EarningsEstimates groups the estimate rows for one symbol.
type EarningsEstimates struct {
	Symbol    string
	Estimates []EarningsEstimate
}

const (
	estimatesDataKey           = "estimates"
	estimateDateKey            = "date"
	estimateHorizonKey         = "horizon"
	estimateEpsAvgKey          = "eps_estimate_average"
	estimateEpsHighKey         = "eps_estimate_high"
	estimateEpsLowKey          = "eps_estimate_low"
	estimateEpsAnalystsKey     = "eps_estimate_analyst_count"
	estimateEpsAvg7dKey        = "eps_estimate_average_7_days_ago"
	estimateEpsAvg30dKey       = "eps_estimate_average_30_days_ago"
	estimateEpsAvg60dKey       = "eps_estimate_average_60_days_ago"
	estimateEpsAvg90dKey       = "eps_estimate_average_90_days_ago"
	estimateRevUp7dKey         = "eps_estimate_revision_up_trailing_7_days"
	estimateRevDown7dKey       = "eps_estimate_revision_down_trailing_7_days"
	estimateRevUp30dKey        = "eps_estimate_revision_up_trailing_30_days"
	estimateRevDown30dKey      = "eps_estimate_revision_down_trailing_30_days"
	estimateRevenueAvgKey      = "revenue_estimate_average"
	estimateRevenueHighKey     = "revenue_estimate_high"
	estimateRevenueLowKey      = "revenue_estimate_low"
	estimateRevenueAnalystsKey = "revenue_estimate_analyst_count"
)

// parseEarningsEstimates extracts analyst estimates from an EARNINGS_ESTIMATES
// document. A missing or non-array estimates key yields nil (not found).
func parseEarningsEstimates(doc jsonval.Object, symbol string) *EarningsEstimates {
	arr, ok := doc.Array(estimatesDataKey)
	if !ok {
		return nil
	}
	estimates := make([]EarningsEstimate, 0, len(arr))
	for _, raw := range arr {
		item, ok := jsonval.AsObject(raw)
		if !ok {
			continue
		}
		estimates = append(estimates, EarningsEstimate{
			Date:                       item.Date(estimateDateKey, time.Time{}),
			Horizon:                    item.String(estimateHorizonKey, ""),
			EpsAverage:                 item.Decimal(estimateEpsAvgKey, decimal.Zero),
			EpsHigh:                    item.Decimal(estimateEpsHighKey, decimal.Zero),
			EpsLow:                     item.Decimal(estimateEpsLowKey, decimal.Zero),
			EpsAnalystCount:            item.NullableInt(estimateEpsAnalystsKey),
			EpsAverage7DaysAgo:         item.Decimal(estimateEpsAvg7dKey, decimal.Zero),
			EpsAverage30DaysAgo:        item.Decimal(estimateEpsAvg30dKey, decimal.Zero),
			EpsAverage60DaysAgo:        item.Decimal(estimateEpsAvg60dKey, decimal.Zero),
			EpsAverage90DaysAgo:        item.Decimal(estimateEpsAvg90dKey, decimal.Zero),
			RevisionUpTrailing7Days:    int(item.Decimal(estimateRevUp7dKey, decimal.Zero).IntPart()),
			RevisionDownTrailing7Days:  item.NullableInt(estimateRevDown7dKey),
			RevisionUpTrailing30Days:   item.NullableInt(estimateRevUp30dKey),
			RevisionDownTrailing30Days: item.NullableInt(estimateRevDown30dKey),
			RevenueAverage:             item.Decimal(estimateRevenueAvgKey, decimal.Zero),
			RevenueHigh:                item.Decimal(estimateRevenueHighKey, decimal.Zero),
			RevenueLow:                 item.Decimal(estimateRevenueLowKey, decimal.Zero),
			RevenueAnalystCount:        int(item.Decimal(estimateRevenueAnalystsKey, decimal.Zero).IntPart()),
		})
	}
	return &EarningsEstimates{Symbol: symbol, Estimates: estimates}
}

// EarningsEstimates fetches analyst earnings estimates for symbol.
func (c *Client) EarningsEstimates(ctx context.Context, symbol string) (*Response[EarningsEstimates], error) {
	doc, err := c.symbolDocument(ctx, FuncEarningsEstimates, symbol)
	if err != nil {
		return nil, err
	}
	return newResponse(parseEarningsEstimates(doc, symbol), doc, "Earnings estimates not available."), nil
}
