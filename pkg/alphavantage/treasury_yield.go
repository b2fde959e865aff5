package alphavantage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tudormobile/alphavantage-go/internal/jsonval"
)

// TreasuryInterval is the sampling period of a treasury yield series.
type TreasuryInterval int

const (
	TreasuryIntervalMonthly TreasuryInterval = iota
	TreasuryIntervalWeekly
	TreasuryIntervalDaily
)

func (i TreasuryInterval) String() string {
	switch i {
	case TreasuryIntervalWeekly:
		return "weekly"
	case TreasuryIntervalDaily:
		return "daily"
	}
	return "monthly"
}

func (i TreasuryInterval) valid() bool {
	return i >= TreasuryIntervalMonthly && i <= TreasuryIntervalDaily
}

// TreasuryMaturity is the constant-maturity term of a treasury yield series.
type TreasuryMaturity int

const (
	TreasuryMaturity3Month TreasuryMaturity = iota
	TreasuryMaturity2Year
	TreasuryMaturity5Year
	TreasuryMaturity7Year
	TreasuryMaturity10Year
	TreasuryMaturity30Year
)

func (m TreasuryMaturity) String() string {
	switch m {
	case TreasuryMaturity3Month:
		return "3month"
	case TreasuryMaturity2Year:
		return "2year"
	case TreasuryMaturity5Year:
		return "5year"
	case TreasuryMaturity7Year:
		return "7year"
	case TreasuryMaturity30Year:
		return "30year"
	}
	return "10year"
}

func (m TreasuryMaturity) valid() bool {
	return m >= TreasuryMaturity3Month && m <= TreasuryMaturity30Year
}

// TreasuryYieldPoint is one sampled yield value.
type TreasuryYieldPoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// TreasuryYield is a treasury constant-maturity yield series, in the unit
// reported by the API (percent).
type TreasuryYield struct {
	Name     string
	Interval TreasuryInterval
	Maturity TreasuryMaturity
	Unit     string
	Data     []TreasuryYieldPoint
}

const (
	treasuryNameKey  = "name"
	treasuryUnitKey  = "unit"
	treasuryDataKey  = "data"
	treasuryDateKey  = "date"
	treasuryValueKey = "value"
)

// parseTreasuryYield extracts a yield series from a TREASURY_YIELD document.
// The document must carry a name key and a data array; otherwise the result is
// nil (not found). Out-of-range interval and maturity values fall back to
// monthly and 10-year without discarding the parsed points.
func parseTreasuryYield(doc jsonval.Object, interval TreasuryInterval, maturity TreasuryMaturity) *TreasuryYield {
	if !doc.Has(treasuryNameKey) {
		return nil
	}
	arr, ok := doc.Array(treasuryDataKey)
	if !ok {
		return nil
	}

	data := make([]TreasuryYieldPoint, 0, len(arr))
	for _, raw := range arr {
		item, ok := jsonval.AsObject(raw)
		if !ok {
			continue
		}
		data = append(data, TreasuryYieldPoint{
			Date:  item.Date(treasuryDateKey, time.Time{}),
			Value: item.Decimal(treasuryValueKey, decimal.Zero),
		})
	}

	if !interval.valid() {
		interval = TreasuryIntervalMonthly
	}
	if !maturity.valid() {
		maturity = TreasuryMaturity10Year
	}
	return &TreasuryYield{
		Name:     doc.String(treasuryNameKey, ""),
		Interval: interval,
		Maturity: maturity,
		Unit:     doc.String(treasuryUnitKey, ""),
		Data:     data,
	}
}

// TreasuryYield fetches the treasury yield series for the given interval and
// maturity.
func (c *Client) TreasuryYield(ctx context.Context, interval TreasuryInterval, maturity TreasuryMaturity) (*Response[TreasuryYield], error) {
	doc, err := c.QueryDocument(ctx, FuncTreasuryYield, map[string]string{
		"interval": interval.String(),
		"maturity": maturity.String(),
	})
	if err != nil {
		return nil, err
	}
	return newResponse(parseTreasuryYield(doc, interval, maturity), doc, "Treasury yield data not available."), nil
}
