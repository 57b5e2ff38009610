package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docspace/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/docspace/internal/core/domain"
)

var (
	serveAddr           string
	serveAnonymousRole  string
	serveAnonymousEmail string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON HTTP API on the configured address (server.addr, or PORT).

Callers are identified by the X-Auth-Email and X-Auth-Role headers set by an
authenticating reverse proxy. Reading requires an identity; changing
documents, export and import require the admin role.

Use --anonymous-role for local use without a proxy: requests without
identity headers are then treated as that role.

Examples:
  docspace serve
  docspace serve --addr :9000 --anonymous-role viewer`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: server.addr)")
	serveCmd.Flags().StringVar(&serveAnonymousRole, "anonymous-role", "",
		"role for requests without identity headers: viewer or admin")
	serveCmd.Flags().StringVar(&serveAnonymousEmail, "anonymous-email", "local@docspace",
		"email reported for anonymous requests")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if documentService == nil || searchService == nil {
		return errors.New("document service not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	resolver, err := identityResolver(serveAnonymousRole, serveAnonymousEmail)
	if err != nil {
		return err
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Documents: documentService,
		Search:    searchService,
		Chat:      chatService,
	}, httpapi.ConfigFromSettings(settings.Server), resolver)
	if err != nil {
		return err
	}

	addr := settings.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Printf("docspace API listening on %s\n", addr)
	return server.Run(ctx, addr)
}

// identityResolver builds the header resolver with an optional anonymous fallback.
func identityResolver(role, email string) (httpapi.IdentityResolver, error) {
	switch domain.Role(role) {
	case "":
		return httpapi.HeaderIdentityResolver{}, nil
	case domain.RoleViewer, domain.RoleAdmin:
		return httpapi.HeaderIdentityResolver{
			Fallback: &domain.Identity{Email: email, Role: domain.Role(role)},
		}, nil
	default:
		return nil, fmt.Errorf("invalid --anonymous-role %q: must be viewer or admin", role)
	}
}
