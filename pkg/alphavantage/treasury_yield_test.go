package alphavantage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treasuryDoc = `{
	"name": "10-Year Treasury Constant Maturity Rate",
	"interval": "monthly",
	"unit": "percent",
	"data": [
		{"date": "2025-11-01", "value": "4.09"},
		{"date": "2025-10-01", "value": "4.06"}
	]
}`

func TestParseTreasuryYield(t *testing.T) {
	yield := parseTreasuryYield(document(t, treasuryDoc), TreasuryIntervalMonthly, TreasuryMaturity10Year)
	require.NotNil(t, yield)

	assert.Equal(t, "10-Year Treasury Constant Maturity Rate", yield.Name)
	assert.Equal(t, TreasuryIntervalMonthly, yield.Interval)
	assert.Equal(t, TreasuryMaturity10Year, yield.Maturity)
	assert.Equal(t, "percent", yield.Unit)
	require.Len(t, yield.Data, 2)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), yield.Data[0].Date)
	assert.True(t, yield.Data[0].Value.Equal(decimal.RequireFromString("4.09")))
}

// Out-of-range enum inputs fall back without losing the parsed points.
func TestParseTreasuryYieldEnumFallback(t *testing.T) {
	yield := parseTreasuryYield(document(t, treasuryDoc), TreasuryInterval(999), TreasuryMaturity(999))
	require.NotNil(t, yield)
	assert.Equal(t, TreasuryIntervalMonthly, yield.Interval)
	assert.Equal(t, TreasuryMaturity10Year, yield.Maturity)
	assert.Len(t, yield.Data, 2)
}

func TestParseTreasuryYieldNotFound(t *testing.T) {
	// no name key
	assert.Nil(t, parseTreasuryYield(document(t, `{"data": []}`), TreasuryIntervalMonthly, TreasuryMaturity10Year))
	// name but no data array
	assert.Nil(t, parseTreasuryYield(document(t, `{"name": "x"}`), TreasuryIntervalMonthly, TreasuryMaturity10Year))
	assert.Nil(t, parseTreasuryYield(document(t, `{"name": "x", "data": "nope"}`), TreasuryIntervalMonthly, TreasuryMaturity10Year))
}

func TestParseTreasuryYieldEmptyData(t *testing.T) {
	yield := parseTreasuryYield(document(t, `{"name": "x", "data": []}`), TreasuryIntervalDaily, TreasuryMaturity2Year)
	require.NotNil(t, yield)
	assert.Empty(t, yield.Data)
	assert.Equal(t, TreasuryIntervalDaily, yield.Interval)
	assert.Equal(t, TreasuryMaturity2Year, yield.Maturity)
}

func TestTreasuryQueryValues(t *testing.T) {
	assert.Equal(t, "monthly", TreasuryIntervalMonthly.String())
	assert.Equal(t, "weekly", TreasuryIntervalWeekly.String())
	assert.Equal(t, "daily", TreasuryIntervalDaily.String())
	assert.Equal(t, "3month", TreasuryMaturity3Month.String())
	assert.Equal(t, "2year", TreasuryMaturity2Year.String())
	assert.Equal(t, "5year", TreasuryMaturity5Year.String())
	assert.Equal(t, "7year", TreasuryMaturity7Year.String())
	assert.Equal(t, "10year", TreasuryMaturity10Year.String())
	assert.Equal(t, "30year", TreasuryMaturity30Year.String())
}
