package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tudormobile/alphavantage-go/pkg/alphavantage"
)

// newQuoteCmd creates the quote command. More than one symbol fans out into a
// concurrent batch lookup.
func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote SYMBOL [SYMBOL...]",
		Short: "Show the latest quote for one or more symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if len(args) == 1 {
				resp, err := client.GlobalQuote(ctx, args[0])
				if err != nil {
					return err
				}
				printQuoteResponse(args[0], resp)
				return nil
			}

			quotes, err := client.GlobalQuotes(ctx, args)
			if err != nil {
				return err
			}
			for _, symbol := range args {
				printQuoteResponse(symbol, quotes[symbol])
			}
			return nil
		},
	}
}

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search KEYWORDS",
		Short: "Search for symbols matching keywords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}

			matchType := alphavantage.MatchTypeAny
			if s, _ := cmd.Flags().GetString("type"); s != "" {
				matchType = alphavantage.ParseMatchType(s, alphavantage.MatchTypeAny)
			}
			region := alphavantage.RegionAny
			if s, _ := cmd.Flags().GetString("region"); s != "" {
				region = alphavantage.ParseRegion(s)
			}

			resp, err := client.SymbolSearch(cmd.Context(), strings.Join(args, " "), matchType, region)
			if err != nil {
				return err
			}
			printSearchResponse(resp)
			return nil
		},
	}

	cmd.Flags().String("type", "", "Filter by type (Equity, ETF, MutualFund, Index, Commodity, Currency, Cryptocurrency, Bond)")
	cmd.Flags().String("region", "", "Filter by region (US, UK, FFM)")

	return cmd
}

// newSeriesCmd creates the series command.
func newSeriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series SYMBOL",
		Short: "Show price history for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}

			interval, _ := cmd.Flags().GetString("interval")
			adjusted, _ := cmd.Flags().GetBool("adjusted")
			limit, _ := cmd.Flags().GetInt("limit")

			var resp *alphavantage.Response[alphavantage.TimeSeries]
			switch strings.ToLower(interval) {
			case "daily":
				resp, err = client.DailyTimeSeries(cmd.Context(), args[0])
			case "weekly":
				resp, err = client.WeeklyTimeSeries(cmd.Context(), args[0], adjusted)
			case "monthly":
				resp, err = client.MonthlyTimeSeries(cmd.Context(), args[0], adjusted)
			default:
				return fmt.Errorf("unknown interval %q: use daily, weekly, or monthly", interval)
			}
			if err != nil {
				return err
			}
			printSeriesResponse(resp, limit)
			return nil
		},
	}

	cmd.Flags().String("interval", "daily", "Sampling interval: daily, weekly, or monthly")
	cmd.Flags().Bool("adjusted", false, "Request the adjusted weekly/monthly series")
	cmd.Flags().Int("limit", 10, "Maximum number of bars to print (0 for all)")

	return cmd
}

// newDividendsCmd creates the dividends command.
func newDividendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dividends SYMBOL",
		Short: "Show the dividend history for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			resp, err := client.Dividends(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printDividendsResponse(resp)
			return nil
		},
	}
}

// newEarningsCmd creates the earnings command.
func newEarningsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "earnings SYMBOL",
		Short: "Show analyst earnings estimates for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			resp, err := client.EarningsEstimates(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printEarningsResponse(resp)
			return nil
		},
	}
}

// newTreasuryCmd creates the treasury command.
func newTreasuryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Show treasury constant-maturity yields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}

			intervalFlag, _ := cmd.Flags().GetString("interval")
			interval, err := parseTreasuryInterval(intervalFlag)
			if err != nil {
				return err
			}
			maturityFlag, _ := cmd.Flags().GetString("maturity")
			maturity, err := parseTreasuryMaturity(maturityFlag)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			resp, err := client.TreasuryYield(cmd.Context(), interval, maturity)
			if err != nil {
				return err
			}
			printTreasuryResponse(resp, limit)
			return nil
		},
	}

	cmd.Flags().String("interval", "monthly", "Sampling interval: monthly, weekly, or daily")
	cmd.Flags().String("maturity", "10year", "Maturity: 3month, 2year, 5year, 7year, 10year, or 30year")
	cmd.Flags().Int("limit", 12, "Maximum number of points to print (0 for all)")

	return cmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("avcli v1.0.0")
			fmt.Println("Alpha Vantage client for Go")
		},
	}
}

func parseTreasuryInterval(s string) (alphavantage.TreasuryInterval, error) {
	switch strings.ToLower(s) {
	case "monthly":
		return alphavantage.TreasuryIntervalMonthly, nil
	case "weekly":
		return alphavantage.TreasuryIntervalWeekly, nil
	case "daily":
		return alphavantage.TreasuryIntervalDaily, nil
	}
	return 0, fmt.Errorf("unknown interval %q: use monthly, weekly, or daily", s)
}

func parseTreasuryMaturity(s string) (alphavantage.TreasuryMaturity, error) {
	switch strings.ToLower(s) {
	case "3month":
		return alphavantage.TreasuryMaturity3Month, nil
	case "2year":
		return alphavantage.TreasuryMaturity2Year, nil
	case "5year":
		return alphavantage.TreasuryMaturity5Year, nil
	case "7year":
		return alphavantage.TreasuryMaturity7Year, nil
	case "10year":
		return alphavantage.TreasuryMaturity10Year, nil
	case "30year":
		return alphavantage.TreasuryMaturity30Year, nil
	}
	return 0, fmt.Errorf("unknown maturity %q", s)
}
