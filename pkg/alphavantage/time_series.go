package alphavantage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tudormobile/alphavantage-go/internal/jsonval"
)

// Interval tags a time series with its sampling period. The intraday values
// are declared for completeness; the parser only handles daily, weekly, and
// monthly series.
type Interval int

const (
	IntervalOneMin Interval = iota
	IntervalFiveMin
	IntervalFifteenMin
	IntervalThirtyMin
	IntervalSixtyMin
	IntervalDaily
	IntervalWeekly
	IntervalMonthly
)

func (i Interval) String() string {
	switch i {
	case IntervalOneMin:
		return "1min"
	case IntervalFiveMin:
		return "5min"
	case IntervalFifteenMin:
		return "15min"
	case IntervalThirtyMin:
		return "30min"
	case IntervalSixtyMin:
		return "60min"
	case IntervalDaily:
		return "daily"
	case IntervalWeekly:
		return "weekly"
	case IntervalMonthly:
		return "monthly"
	}
	return "unknown"
}

// TimeSeriesPoint is one sampled bar of a time series.
type TimeSeriesPoint struct {
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// TimeSeries is a date-keyed price history for one symbol.
type TimeSeries struct {
	Symbol      string
	LastUpdated time.Time
	Interval    Interval
	Data        map[time.Time]TimeSeriesPoint
}

const (
	seriesMetaKey        = "Meta Data"
	seriesDailyKey       = "Time Series (Daily)"
	seriesWeeklyKey      = "Weekly Time Series"
	seriesMonthlyKey     = "Monthly Time Series"
	metaSymbolKey        = "2. Symbol"
	metaLastRefreshedKey = "3. Last Refreshed"
	pointOpenKey         = "1. open"
	pointHighKey         = "2. high"
	pointLowKey          = "3. low"
	pointCloseKey        = "4. close"
	pointVolumeKey       = "5. volume"
)

// parseTimeSeries extracts a time series from a TIME_SERIES_* document.
//
// Two tiers of failure apply. Missing structure (no metadata object, no series
// object for the interval) is a soft not-found and yields (nil, nil). A
// metadata symbol that does not case-insensitively equal the requested symbol,
// an unusable last-refreshed date, or an interval outside daily/weekly/monthly
// are hard failures: the response cannot be trusted or the request itself was
// wrong. Within the series, entries with unparsable date keys are dropped
// silently and malformed point fields default per the extractor rules.
func parseTimeSeries(doc jsonval.Object, symbol string, interval Interval) (*TimeSeries, error) {
	var seriesKey string
	switch interval {
	case IntervalDaily:
		seriesKey = seriesDailyKey
	case IntervalWeekly:
		seriesKey = seriesWeeklyKey
	case IntervalMonthly:
		seriesKey = seriesMonthlyKey
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInterval, interval)
	}

	meta, ok := doc.Object(seriesMetaKey)
	if !ok {
		return nil, nil
	}

	metaSymbol := meta.String(metaSymbolKey, "")
	if !strings.EqualFold(metaSymbol, symbol) {
		return nil, fmt.Errorf("%w: requested '%s', document has '%s'", ErrSymbolMismatch, symbol, metaSymbol)
	}
	lastRefreshed := meta.Date(metaLastRefreshedKey, time.Time{})
	if lastRefreshed.IsZero() {
		return nil, fmt.Errorf("%w: last-refreshed date is missing or invalid", ErrInvalidMetadata)
	}

	seriesObj, ok := doc.Object(seriesKey)
	if !ok {
		return nil, nil
	}

	data := make(map[time.Time]TimeSeriesPoint, len(seriesObj))
	for key, raw := range seriesObj {
		date, err := time.Parse(jsonval.DateLayout, key)
		if err != nil {
			continue
		}
		point, _ := jsonval.AsObject(raw)
		data[date] = TimeSeriesPoint{
			Open:   point.Decimal(pointOpenKey, decimal.Zero),
			High:   point.Decimal(pointHighKey, decimal.Zero),
			Low:    point.Decimal(pointLowKey, decimal.Zero),
			Close:  point.Decimal(pointCloseKey, decimal.Zero),
			Volume: point.Long(pointVolumeKey, 0),
		}
	}

	return &TimeSeries{
		Symbol:      symbol,
		LastUpdated: lastRefreshed,
		Interval:    interval,
		Data:        data,
	}, nil
}

const seriesNotFoundMsg = "Time series data not found."

// DailyTimeSeries fetches the daily price history for symbol.
func (c *Client) DailyTimeSeries(ctx context.Context, symbol string) (*Response[TimeSeries], error) {
	return c.timeSeries(ctx, FuncTimeSeriesDaily, symbol, IntervalDaily)
}

// WeeklyTimeSeries fetches the weekly price history for symbol. With adjusted
// set, the adjusted API function is queried; its payload uses a series key this
// parser does not recognize, so the result degrades to a not-found envelope.
func (c *Client) WeeklyTimeSeries(ctx context.Context, symbol string, adjusted bool) (*Response[TimeSeries], error) {
	fn := FuncTimeSeriesWeekly
	if adjusted {
		fn = FuncTimeSeriesWeeklyAdjusted
	}
	return c.timeSeries(ctx, fn, symbol, IntervalWeekly)
}

// MonthlyTimeSeries fetches the monthly price history for symbol. See
// WeeklyTimeSeries for the adjusted behavior.
func (c *Client) MonthlyTimeSeries(ctx context.Context, symbol string, adjusted bool) (*Response[TimeSeries], error) {
	fn := FuncTimeSeriesMonthly
	if adjusted {
		fn = FuncTimeSeriesMonthlyAdjusted
	}
	return c.timeSeries(ctx, fn, symbol, IntervalMonthly)
}

func (c *Client) timeSeries(ctx context.Context, fn Function, symbol string, interval Interval) (*Response[TimeSeries], error) {
	doc, err := c.symbolDocument(ctx, fn, symbol)
	if err != nil {
		return nil, err
	}
	series, err := parseTimeSeries(doc, symbol, interval)
	if err != nil {
		return nil, err
	}
	return newResponse(series, doc, seriesNotFoundMsg), nil
}
