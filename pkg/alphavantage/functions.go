package alphavantage

// Function identifies an Alpha Vantage API function. The value is sent verbatim
// as the `function` query parameter.
type Function string

const (
	FuncTimeSeriesDaily           Function = "TIME_SERIES_DAILY"
	FuncTimeSeriesWeekly          Function = "TIME_SERIES_WEEKLY"
	FuncTimeSeriesWeeklyAdjusted  Function = "TIME_SERIES_WEEKLY_ADJUSTED"
	FuncTimeSeriesMonthly         Function = "TIME_SERIES_MONTHLY"
	FuncTimeSeriesMonthlyAdjusted Function = "TIME_SERIES_MONTHLY_ADJUSTED"
	FuncGlobalQuote               Function = "GLOBAL_QUOTE"
	FuncSymbolSearch              Function = "SYMBOL_SEARCH"
	FuncDividends                 Function = "DIVIDENDS"
	FuncEarningsEstimates         Function = "EARNINGS_ESTIMATES"
	FuncTreasuryYield             Function = "TREASURY_YIELD"
)

func (f Function) String() string { return string(f) }

// symbolParam returns the query parameter name carrying the lookup target.
// Symbol search takes keywords; everything else takes a symbol.
func (f Function) symbolParam() string {
	if f == FuncSymbolSearch {
		return "keywords"
	}
	return "symbol"
}
