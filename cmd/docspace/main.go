// Command docspace manages workspace documents and serves them over HTTP,
// MCP and an interactive terminal UI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/docspace/internal/adapters/driving/cli"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
