package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tudormobile/alphavantage-go/internal/cli"
)

func main() {
	// Load .env if present so ALPHAVANTAGE_API_KEY can come from a file.
	_ = godotenv.Load()

	if err := cli.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
