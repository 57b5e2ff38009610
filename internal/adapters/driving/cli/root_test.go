package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docspace/internal/adapters/driven/seed"
	"github.com/custodia-labs/docspace/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/services"
)

func sampleTable() domain.Table {
	return domain.Table{
		{ID: 1, Title: "Cats", Category: "Pets", Summary: "All about cats", Content: "Cats are small felines."},
		{ID: 2, Title: "Dogs", Category: "Pets", Summary: "All about dogs", Content: "Dogs are loyal."},
		{ID: 3, Title: "Go Modules", Category: "Backend", Summary: "Dependency management",
			Content: "Go modules version dependencies."},
	}
}

// setupTestServices installs memory-backed services for the duration of
// the test and returns the store behind them.
func setupTestServices(t *testing.T, table domain.Table) *memory.SnapshotStore {
	t.Helper()

	store := memory.NewSnapshotStoreWith(table)
	settings := services.NewSettingsService(memory.NewConfigStore())
	settings.SetEnvLookup(func(string) (string, bool) { return "", false })
	search := services.NewSearchService(store, domain.DefaultTopK)

	documentService = services.NewDocumentService(store)
	searchService = search
	chatService = services.NewChatService(search)
	settingsService = settings
	seedSource = seed.Builtin{}
	configPath = ""
	closeServices = nil
	resetFlags()

	t.Cleanup(func() {
		documentService = nil
		searchService = nil
		chatService = nil
		settingsService = nil
		seedSource = nil
		configPath = ""
		closeServices = nil
		resetFlags()
	})
	return store
}

// resetFlags restores every flag to its default. Cobra keeps flag values
// between executions of the same command tree.
func resetFlags() {
	var visit func(c *cobra.Command)
	visit = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			visit(sub)
		}
	}
	visit(rootCmd)
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute(context.Background())
	return buf.String(), err
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"document", "search", "chat", "serve", "mcp", "tui", "config", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestIsStandalone(t *testing.T) {
	assert.True(t, isStandalone(versionCmd))
	assert.True(t, isStandalone(configSetCmd))
	assert.False(t, isStandalone(documentListCmd))
	assert.False(t, isStandalone(searchCmd))
}

func TestPostRun_ClosesServicesOnce(t *testing.T) {
	setupTestServices(t, nil)
	calls := 0
	closeServices = func() error {
		calls++
		return nil
	}

	require.NoError(t, postRun(rootCmd, nil))
	require.NoError(t, postRun(rootCmd, nil))

	assert.Equal(t, 1, calls)
	assert.Nil(t, closeServices)
}
