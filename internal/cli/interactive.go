package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/tudormobile/alphavantage-go/pkg/alphavantage"
)

const (
	actionQuote     = "Quote lookup"
	actionSearch    = "Symbol search"
	actionSeries    = "Price history"
	actionDividends = "Dividend history"
	actionEarnings  = "Earnings estimates"
	actionTreasury  = "Treasury yields"
	actionExit      = "Exit"
)

// runInteractiveMode drives a menu-based session against the API.
func runInteractiveMode(client *alphavantage.Client) error {
	fmt.Println(titleStyle.Render("avcli — Alpha Vantage market data"))
	fmt.Println()

	ctx := context.Background()
	for {
		var action string
		prompt := &survey.Select{
			Message: "What would you like to look up?",
			Options: []string{actionQuote, actionSearch, actionSeries, actionDividends, actionEarnings, actionTreasury, actionExit},
		}
		if err := survey.AskOne(prompt, &action); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		var err error
		switch action {
		case actionQuote:
			err = interactiveQuote(ctx, client)
		case actionSearch:
			err = interactiveSearch(ctx, client)
		case actionSeries:
			err = interactiveSeries(ctx, client)
		case actionDividends:
			err = interactiveDividends(ctx, client)
		case actionEarnings:
			err = interactiveEarnings(ctx, client)
		case actionTreasury:
			err = interactiveTreasury(ctx, client)
		case actionExit:
			return nil
		}
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
		}
		fmt.Println()
	}
}

func interactiveQuote(ctx context.Context, client *alphavantage.Client) error {
	symbol, err := promptForSymbol()
	if err != nil {
		return err
	}
	resp, err := client.GlobalQuote(ctx, symbol)
	if err != nil {
		return err
	}
	printQuoteResponse(symbol, resp)
	return nil
}

func interactiveSearch(ctx context.Context, client *alphavantage.Client) error {
	var keywords string
	if err := survey.AskOne(&survey.Input{Message: "Search keywords:"}, &keywords, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	resp, err := client.SymbolSearch(ctx, keywords, alphavantage.MatchTypeAny, alphavantage.RegionAny)
	if err != nil {
		return err
	}
	printSearchResponse(resp)
	return nil
}

func interactiveSeries(ctx context.Context, client *alphavantage.Client) error {
	symbol, err := promptForSymbol()
	if err != nil {
		return err
	}

	var interval string
	prompt := &survey.Select{
		Message: "Sampling interval:",
		Options: []string{"daily", "weekly", "monthly"},
		Default: "daily",
	}
	if err := survey.AskOne(prompt, &interval); err != nil {
		return err
	}

	var resp *alphavantage.Response[alphavantage.TimeSeries]
	switch interval {
	case "weekly":
		resp, err = client.WeeklyTimeSeries(ctx, symbol, false)
	case "monthly":
		resp, err = client.MonthlyTimeSeries(ctx, symbol, false)
	default:
		resp, err = client.DailyTimeSeries(ctx, symbol)
	}
	if err != nil {
		return err
	}
	printSeriesResponse(resp, 10)
	return nil
}

func interactiveDividends(ctx context.Context, client *alphavantage.Client) error {
	symbol, err := promptForSymbol()
	if err != nil {
		return err
	}
	resp, err := client.Dividends(ctx, symbol)
	if err != nil {
		return err
	}
	printDividendsResponse(resp)
	return nil
}

func interactiveEarnings(ctx context.Context, client *alphavantage.Client) error {
	symbol, err := promptForSymbol()
	if err != nil {
		return err
	}
	resp, err := client.EarningsEstimates(ctx, symbol)
	if err != nil {
		return err
	}
	printEarningsResponse(resp)
	return nil
}

func interactiveTreasury(ctx context.Context, client *alphavantage.Client) error {
	var intervalName string
	if err := survey.AskOne(&survey.Select{
		Message: "Sampling interval:",
		Options: []string{"monthly", "weekly", "daily"},
		Default: "monthly",
	}, &intervalName); err != nil {
		return err
	}
	interval, err := parseTreasuryInterval(intervalName)
	if err != nil {
		return err
	}

	var maturityName string
	if err := survey.AskOne(&survey.Select{
		Message: "Maturity:",
		Options: []string{"3month", "2year", "5year", "7year", "10year", "30year"},
		Default: "10year",
	}, &maturityName); err != nil {
		return err
	}
	maturity, err := parseTreasuryMaturity(maturityName)
	if err != nil {
		return err
	}

	resp, err := client.TreasuryYield(ctx, interval, maturity)
	if err != nil {
		return err
	}
	printTreasuryResponse(resp, 12)
	return nil
}
