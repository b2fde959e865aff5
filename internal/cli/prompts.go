package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

var symbolPattern = regexp.MustCompile(`^[A-Z0-9.-]+$`)

// promptForSymbol prompts the user to enter a stock ticker symbol.
func promptForSymbol() (string, error) {
	var symbol string
	prompt := &survey.Input{
		Message: "Ticker symbol (e.g., IBM, AAPL, TSCO.LON):",
	}

	err := survey.AskOne(prompt, &symbol, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(strings.ToUpper(val.(string)))
		if len(str) == 0 {
			return fmt.Errorf("ticker symbol cannot be empty")
		}
		if len(str) > 10 {
			return fmt.Errorf("ticker symbol too long (max 10 characters)")
		}
		if !symbolPattern.MatchString(str) {
			return fmt.Errorf("invalid ticker format (use letters, numbers, dots, and hyphens only)")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.ToUpper(symbol)), nil
}
