package alphavantage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailySeriesDoc = `{
	"Meta Data": {
		"1. Information": "Daily Prices (open, high, low, close) and Volumes",
		"2. Symbol": "IBM",
		"3. Last Refreshed": "2025-12-09",
		"4. Output Size": "Compact",
		"5. Time Zone": "US/Eastern"
	},
	"Time Series (Daily)": {
		"2025-12-09": {
			"1. open": "309.63",
			"2. high": "313.97",
			"3. low": "308.75",
			"4. close": "310.48",
			"5. volume": "2914275"
		},
		"2025-12-08": {
			"1. open": "307.00",
			"2. high": "310.10",
			"3. low": "306.20",
			"4. close": "309.18",
			"5. volume": "2101533"
		}
	}
}`

func TestParseTimeSeriesDaily(t *testing.T) {
	series, err := parseTimeSeries(document(t, dailySeriesDoc), "IBM", IntervalDaily)
	require.NoError(t, err)
	require.NotNil(t, series)

	assert.Equal(t, "IBM", series.Symbol)
	assert.Equal(t, IntervalDaily, series.Interval)
	assert.Equal(t, time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC), series.LastUpdated)
	require.Len(t, series.Data, 2)

	point := series.Data[time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)]
	assert.True(t, point.Open.Equal(decimal.RequireFromString("309.63")))
	assert.True(t, point.Close.Equal(decimal.RequireFromString("310.48")))
	assert.Equal(t, int64(2914275), point.Volume)
}

// The requested symbol only has to match metadata case-insensitively.
func TestParseTimeSeriesSymbolCase(t *testing.T) {
	series, err := parseTimeSeries(document(t, dailySeriesDoc), "ibm", IntervalDaily)
	require.NoError(t, err)
	require.NotNil(t, series)
	assert.Equal(t, "ibm", series.Symbol)
}

func TestParseTimeSeriesSymbolMismatch(t *testing.T) {
	_, err := parseTimeSeries(document(t, dailySeriesDoc), "AAPL", IntervalDaily)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSymbolMismatch)
}

func TestParseTimeSeriesBadLastRefreshed(t *testing.T) {
	doc := document(t, `{
		"Meta Data": {"2. Symbol": "IBM", "3. Last Refreshed": "not a date"},
		"Time Series (Daily)": {}
	}`)
	_, err := parseTimeSeries(doc, "IBM", IntervalDaily)
	assert.ErrorIs(t, err, ErrInvalidMetadata)

	doc = document(t, `{
		"Meta Data": {"2. Symbol": "IBM"},
		"Time Series (Daily)": {}
	}`)
	_, err = parseTimeSeries(doc, "IBM", IntervalDaily)
	assert.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestParseTimeSeriesUnsupportedInterval(t *testing.T) {
	for _, interval := range []Interval{IntervalOneMin, IntervalFiveMin, IntervalFifteenMin, IntervalThirtyMin, IntervalSixtyMin} {
		_, err := parseTimeSeries(document(t, dailySeriesDoc), "IBM", interval)
		assert.ErrorIs(t, err, ErrUnsupportedInterval, "interval %s", interval)
	}
}

// Entries with unparsable date keys are dropped without failing the parse.
func TestParseTimeSeriesSkipsBadDateKeys(t *testing.T) {
	doc := document(t, `{
		"Meta Data": {"2. Symbol": "IBM", "3. Last Refreshed": "2025-12-09"},
		"Time Series (Daily)": {
			"2025-12-09": {"1. open": "309.63", "4. close": "310.48"},
			"not-a-date": {"1. open": "1.00", "4. close": "2.00"}
		}
	}`)
	series, err := parseTimeSeries(doc, "IBM", IntervalDaily)
	require.NoError(t, err)
	require.NotNil(t, series)
	assert.Len(t, series.Data, 1)
}

func TestParseTimeSeriesSoftNotFound(t *testing.T) {
	// no metadata object at all
	series, err := parseTimeSeries(document(t, `{"Information":"throttled"}`), "IBM", IntervalDaily)
	require.NoError(t, err)
	assert.Nil(t, series)

	// metadata present but the daily series key absent
	doc := document(t, `{"Meta Data": {"2. Symbol": "IBM", "3. Last Refreshed": "2025-12-09"}}`)
	series, err = parseTimeSeries(doc, "IBM", IntervalDaily)
	require.NoError(t, err)
	assert.Nil(t, series)
}

// A weekly request against a daily payload misses the weekly series key.
func TestParseTimeSeriesWrongSeriesKey(t *testing.T) {
	series, err := parseTimeSeries(document(t, dailySeriesDoc), "IBM", IntervalWeekly)
	require.NoError(t, err)
	assert.Nil(t, series)
}

func TestParseTimeSeriesPointFieldDefaults(t *testing.T) {
	doc := document(t, `{
		"Meta Data": {"2. Symbol": "IBM", "3. Last Refreshed": "2025-12-09"},
		"Time Series (Daily)": {
			"2025-12-09": {"1. open": "garbage", "5. volume": null}
		}
	}`)
	series, err := parseTimeSeries(doc, "IBM", IntervalDaily)
	require.NoError(t, err)
	require.NotNil(t, series)

	point := series.Data[time.Date(2025, 12, 9, 0, 0, 0, 0, time.UTC)]
	assert.True(t, point.Open.IsZero())
	assert.True(t, point.Close.IsZero())
	assert.Equal(t, int64(0), point.Volume)
}
