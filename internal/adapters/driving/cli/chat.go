package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	chatContextIDs []int
	chatJSON       bool
)

var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Ask a question about the workspace",
	Long: `Answers a question by quoting the documents that match it best.

Use --context to restrict the answer to specific documents.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().IntSliceVarP(&chatContextIDs, "context", "c", nil, "document ids to answer from")
	chatCmd.Flags().BoolVar(&chatJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	answer, err := chatService.Ask(cmd.Context(), strings.Join(args, " "), chatContextIDs)
	if err != nil {
		return fmt.Errorf("chat failed: %w", err)
	}

	if chatJSON {
		return outputJSON(cmd, answer)
	}

	cmd.Println(answer.Text)
	if len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, src := range answer.Sources {
			cmd.Printf("  #%d %s\n", src.ID, src.Title)
		}
	}
	return nil
}
