// Package cli provides the docspace command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docspace/internal/core/ports/driven"
	"github.com/custodia-labs/docspace/internal/core/ports/driving"
	"github.com/custodia-labs/docspace/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// annotationStandalone marks commands that run without the document store.
const annotationStandalone = "docspace.standalone"

// Services used by the commands. They are wired from the configuration
// before a command runs unless they have already been set.
var (
	documentService driving.DocumentService
	searchService   driving.SearchService
	chatService     driving.ChatService
	settingsService driving.SettingsService
	seedSource      driven.SeedSource

	// configPath is the config file in use, when file-backed.
	configPath string

	// closeServices releases whatever wireServices opened.
	closeServices func() error
)

// Global flags.
var (
	verbose   bool
	configDir string
	noConfig  bool
)

var rootCmd = &cobra.Command{
	Use:   "docspace",
	Short: "Document workspace with keyword search",
	Long: `docspace keeps a small set of workspace documents and answers questions
by ranking them against free-text queries.

Documents live in a JSON snapshot file by default; SQLite and in-memory
storage are also available. The same documents are served over an HTTP API,
an MCP server and an interactive terminal UI.`,
	SilenceUsage:       true,
	PersistentPreRunE:  preRun,
	PersistentPostRunE: postRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.docspace)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false,
		"ignore the config file; use defaults and environment only")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func preRun(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetVerbose(true)
	}
	if isStandalone(cmd) || documentService != nil {
		return nil
	}
	return wireServices(cmd.Context())
}

func postRun(_ *cobra.Command, _ []string) error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

// isStandalone reports whether cmd or one of its parents skips wiring.
func isStandalone(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationStandalone] == "true" {
			return true
		}
	}
	return cmd.Name() == "help"
}
