package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "View and change configuration",
	Long:        `Show the effective configuration and change values in the config file.`,
	Annotations: map[string]string{annotationStandalone: "true"},
	RunE:        runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Long: `Show the effective settings: defaults, overlaid with the config file,
overlaid with environment variables.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a config value",
	Long: `Set a config value in the config file.

Run "docspace config keys" for the list of keys.

Examples:
  docspace config set storage.backend sqlite
  docspace config set server.allowed_origins http://localhost:5173,https://app.example.com
  docspace config set server.rate_window 15m`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List config keys",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := wireSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Storage:")
	cmd.Printf("  Backend:        %s (%s)\n", settings.Storage.Backend, settings.Storage.Backend.Description())
	cmd.Printf("  Data dir:       %s\n", valueOr(settings.Storage.DataDir, "~/.docspace/data"))
	cmd.Printf("  Snapshot file:  %s\n", settings.Storage.SnapshotFile)
	cmd.Printf("  Watch:          %t\n", settings.Storage.Watch)
	cmd.Println()
	cmd.Println("Seed:")
	cmd.Printf("  Enabled:        %t\n", settings.Seed.Enabled)
	cmd.Printf("  Path:           %s\n", valueOr(settings.Seed.Path, "built-in starter documents"))
	cmd.Println()
	cmd.Println("Search:")
	cmd.Printf("  Top K:          %d\n", settings.Search.TopK)
	cmd.Println()
	cmd.Println("Server:")
	cmd.Printf("  Address:        %s\n", settings.Server.Addr)
	cmd.Printf("  Origins:        %s\n", strings.Join(settings.Server.AllowedOrigins, ", "))
	if settings.Server.RateLimit > 0 {
		cmd.Printf("  Rate limit:     %d per %s\n", settings.Server.RateLimit, settings.Server.RateWindow)
	} else {
		cmd.Println("  Rate limit:     disabled")
	}
	cmd.Printf("  Max body bytes: %d\n", settings.Server.MaxBodyBytes)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := wireSettings(); err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	if err := wireSettings(); err != nil {
		return err
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if err := wireSettings(); err != nil {
		return err
	}
	if configPath == "" {
		return errors.New("configuration is not file-backed")
	}
	cmd.Println(configPath)
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
