package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tudormobile/alphavantage-go/pkg/alphavantage"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func printField(label, value string) {
	fmt.Println(labelStyle.Render(label) + valueStyle.Render(value))
}

func printEnvelopeError(message string) {
	fmt.Println(errorStyle.Render("✗ " + message))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func printQuoteResponse(symbol string, resp *alphavantage.Response[alphavantage.GlobalQuote]) {
	if !resp.IsSuccess() {
		fmt.Println(titleStyle.Render(symbol))
		printEnvelopeError(resp.ErrorMessage)
		return
	}

	quote := resp.Result
	changeStyle := upStyle
	if quote.Change.IsNegative() {
		changeStyle = downStyle
	}

	fmt.Println(titleStyle.Render(quote.Symbol))
	printField("Price", quote.Price.StringFixed(2))
	printField("Open", quote.Open.StringFixed(2))
	printField("High", quote.High.StringFixed(2))
	printField("Low", quote.Low.StringFixed(2))
	printField("Previous close", quote.PreviousClose.StringFixed(2))
	fmt.Println(labelStyle.Render("Change") + changeStyle.Render(quote.Change.StringFixed(2)+" ("+quote.ChangePercent()+")"))
	printField("Volume", fmt.Sprintf("%d", quote.Volume))
	printField("Trading day", formatDate(quote.LatestTradingDay))
	fmt.Println()
}

func printSearchResponse(resp *alphavantage.Response[alphavantage.SymbolMatches]) {
	if !resp.IsSuccess() {
		printEnvelopeError(resp.ErrorMessage)
		return
	}

	matches := resp.Result
	fmt.Println(titleStyle.Render(fmt.Sprintf("Matches for %q", matches.Keywords)))
	if len(matches.Matches) == 0 {
		fmt.Println(dimStyle.Render("  (no matches)"))
		return
	}
	for _, m := range matches.Matches {
		fmt.Printf("  %s %s\n",
			valueStyle.Render(fmt.Sprintf("%-12s", m.Symbol)),
			dimStyle.Render(fmt.Sprintf("%s [%s, %s] score %.2f", m.Name, m.MatchType, m.RegionName, m.MatchScore)))
	}
}

func printSeriesResponse(resp *alphavantage.Response[alphavantage.TimeSeries], limit int) {
	if !resp.IsSuccess() {
		printEnvelopeError(resp.ErrorMessage)
		return
	}

	series := resp.Result
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%s, updated %s)", series.Symbol, series.Interval, formatDate(series.LastUpdated))))

	dates := make([]time.Time, 0, len(series.Data))
	for date := range series.Data {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	if limit > 0 && len(dates) > limit {
		dates = dates[:limit]
	}

	fmt.Println(dimStyle.Render("  date         open      high      low       close     volume"))
	for _, date := range dates {
		p := series.Data[date]
		fmt.Printf("  %s   %-9s %-9s %-9s %-9s %d\n",
			formatDate(date),
			p.Open.StringFixed(2), p.High.StringFixed(2), p.Low.StringFixed(2), p.Close.StringFixed(2), p.Volume)
	}
}

func printDividendsResponse(resp *alphavantage.Response[alphavantage.Dividends]) {
	if !resp.IsSuccess() {
		printEnvelopeError(resp.ErrorMessage)
		return
	}

	dividends := resp.Result
	fmt.Println(titleStyle.Render(dividends.Symbol + " dividends"))
	if len(dividends.Data) == 0 {
		fmt.Println(dimStyle.Render("  (none)"))
		return
	}
	fmt.Println(dimStyle.Render("  declared     ex-date      record       payment      amount"))
	for _, d := range dividends.Data {
		fmt.Printf("  %s   %s   %s   %s   %s\n",
			formatDate(d.DeclarationDate), formatDate(d.ExDividendDate),
			formatDate(d.RecordDate), formatDate(d.PaymentDate), d.Amount.StringFixed(4))
	}
}

func printEarningsResponse(resp *alphavantage.Response[alphavantage.EarningsEstimates]) {
	if !resp.IsSuccess() {
		printEnvelopeError(resp.ErrorMessage)
		return
	}

	estimates := resp.Result
	fmt.Println(titleStyle.Render(estimates.Symbol + " earnings estimates"))
	if len(estimates.Estimates) == 0 {
		fmt.Println(dimStyle.Render("  (none)"))
		return
	}
	for _, e := range estimates.Estimates {
		fmt.Printf("  %s  %-22s eps %s (%s..%s)  revenue %s  analysts %s\n",
			formatDate(e.Date), e.Horizon,
			e.EpsAverage.StringFixed(2), e.EpsLow.StringFixed(2), e.EpsHigh.StringFixed(2),
			e.RevenueAverage.StringFixed(0), formatCount(e.EpsAnalystCount))
	}
}

func formatCount(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}

func printTreasuryResponse(resp *alphavantage.Response[alphavantage.TreasuryYield], limit int) {
	if !resp.IsSuccess() {
		printEnvelopeError(resp.ErrorMessage)
		return
	}

	yield := resp.Result
	fmt.Println(titleStyle.Render(yield.Name))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  %s, %s, unit: %s", yield.Interval, yield.Maturity, yield.Unit)))

	points := yield.Data
	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	for _, p := range points {
		fmt.Printf("  %s   %s\n", formatDate(p.Date), p.Value.StringFixed(2))
	}
}
