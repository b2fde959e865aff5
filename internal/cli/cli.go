// Package cli provides the avcli command-line interface over the Alpha
// Vantage client.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tudormobile/alphavantage-go/pkg/alphavantage"
)

const apiKeyEnv = "ALPHAVANTAGE_API_KEY"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "avcli",
		Short: "avcli - Alpha Vantage market data from the terminal",
		Long: `avcli looks up quotes, price history, symbol matches, dividends, earnings
estimates, and treasury yields from the Alpha Vantage API.

An API key is required: pass --api-key or set ` + apiKeyEnv + `.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start interactive mode
			client, err := clientFromFlags(cmd)
			if err != nil {
				return err
			}
			return runInteractiveMode(client)
		},
	}

	rootCmd.AddCommand(newQuoteCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newSeriesCmd())
	rootCmd.AddCommand(newDividendsCmd())
	rootCmd.AddCommand(newEarningsCmd())
	rootCmd.AddCommand(newTreasuryCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("api-key", "", "Alpha Vantage API key (defaults to "+apiKeyEnv+")")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log requests to stderr")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Per-request timeout")

	return rootCmd
}

// Run executes the root command.
func Run() error {
	return NewRootCmd().Execute()
}

// clientFromFlags builds the API client from the persistent flags.
func clientFromFlags(cmd *cobra.Command) (*alphavantage.Client, error) {
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnv)
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("no API key: pass --api-key or set %s", apiKeyEnv)
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	cfg := alphavantage.Config{APIKey: apiKey, Timeout: timeout}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		cfg.Logger = &logger
	}

	return alphavantage.NewClient(cfg)
}
