package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docspace/internal/adapters/driven/seed"
	"github.com/custodia-labs/docspace/internal/core/domain"
	"github.com/custodia-labs/docspace/internal/core/services"
)

var documentCmd = &cobra.Command{
	Use:     "document",
	Aliases: []string{"doc", "docs"},
	Short:   "Manage workspace documents",
	Long:    `List, view, create, update, delete, export and import workspace documents.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a document",
	Long: `Create a document from flags or from a JSON file.

Examples:
  docspace document create --title "Intro" --category General \
    --summary "Getting started" --content "Welcome to the workspace."
  docspace document create --file doc.json`,
	Args: cobra.NoArgs,
	RunE: runDocumentCreate,
}

var documentUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a document",
	Long:  `Update a document. Fields not given keep their current value.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentUpdate,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

var documentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all documents as JSON",
	Args:  cobra.NoArgs,
	RunE:  runDocumentExport,
}

var documentImportCmd = &cobra.Command{
	Use:   "import [file|dir]",
	Short: "Import documents from a JSON file or a directory",
	Long: `Import documents from a JSON file ("-" reads stdin) or a directory.

The file is either an export (a list of documents) or an import payload of
the form {"mode": "merge"|"replace", "documents": [...]}. A directory
contributes one document per Markdown, text or HTML file, categorised by
its top-level subdirectory.

Modes:
  merge    - Keep existing documents; overwrite those with matching ids
             and add the rest under new ids.
  replace  - Discard all existing documents and store the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentImport,
}

var documentSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed an empty workspace with starter documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentSeed,
}

// Flags.
var (
	docTitle    string
	docCategory string
	docSummary  string
	docContent  string
	docFile     string
	exportOut   string
	importMode  string
	importYes   bool
	seedFile    string
)

// stdin is where import reads "-" and confirmations from.
var stdin io.Reader = os.Stdin

func init() {
	for _, c := range []*cobra.Command{documentCreateCmd, documentUpdateCmd} {
		c.Flags().StringVar(&docTitle, "title", "", "document title")
		c.Flags().StringVar(&docCategory, "category", "", "document category")
		c.Flags().StringVar(&docSummary, "summary", "", "one-line summary")
		c.Flags().StringVar(&docContent, "content", "", "document body")
		c.Flags().StringVarP(&docFile, "file", "f", "", "read fields from a JSON file")
	}
	documentExportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write to file instead of stdout")
	documentImportCmd.Flags().StringVarP(&importMode, "mode", "m", "merge", "import mode: merge or replace")
	documentImportCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "skip confirmation for replace")
	documentSeedCmd.Flags().StringVarP(&seedFile, "file", "f", "",
		"JSON or YAML seed file, or a directory (default: configured seed)")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentCreateCmd)
	documentCmd.AddCommand(documentUpdateCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	documentCmd.AddCommand(documentExportCmd)
	documentCmd.AddCommand(documentImportCmd)
	documentCmd.AddCommand(documentSeedCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  [%d] %s\n", docs[i].ID, docs[i].Title)
		cmd.Printf("      %s · %s\n", docs[i].Category, docs[i].Summary)
	}
	cmd.Printf("\nTotal: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	doc, err := documentService.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	printDocument(cmd, doc)
	return nil
}

func runDocumentCreate(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	input, err := inputFromFlags(cmd, domain.DocumentInput{})
	if err != nil {
		return err
	}

	doc, err := documentService.Create(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	cmd.Printf("Created document %d: %s\n", doc.ID, doc.Title)
	return nil
}

func runDocumentUpdate(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	current, err := documentService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	input, err := inputFromFlags(cmd, current.Input())
	if err != nil {
		return err
	}

	doc, err := documentService.Update(ctx, id, input)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	cmd.Printf("Updated document %d: %s\n", doc.ID, doc.Title)
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	id, err := parseDocumentID(args[0])
	if err != nil {
		return err
	}

	if err := documentService.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted document %d\n", id)
	return nil
}

func runDocumentExport(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.Export(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to export documents: %w", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}

	if exportOut == "" {
		cmd.Println(string(data))
		return nil
	}

	if err := os.WriteFile(exportOut, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	cmd.Printf("Exported %d documents to %s\n", len(docs), exportOut)
	return nil
}

func runDocumentImport(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := cmd.Context()
	batch, err := loadImportBatch(ctx, args[0], importMode, cmd.Flags().Changed("mode"))
	if err != nil {
		return err
	}

	if batch.Mode == domain.ImportModeReplace && !importYes {
		ok, err := confirmReplace(ctx, cmd)
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Import cancelled.")
			return nil
		}
	}

	docs, err := documentService.Import(ctx, batch)
	if err != nil {
		return fmt.Errorf("failed to import documents: %w", err)
	}

	cmd.Printf("Imported %d candidates (%s). Workspace now holds %d documents.\n",
		len(batch.Candidates), batch.Mode, len(docs))
	return nil
}

func runDocumentSeed(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	src := seedSource
	if seedFile != "" {
		src = seed.NewSource(seedFile)
	}

	seeded, err := seedIfEmpty(cmd.Context(), src)
	if err != nil {
		return err
	}
	if !seeded {
		cmd.Println("Workspace already has documents; nothing seeded.")
		return nil
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	cmd.Printf("Seeded %d documents.\n", len(docs))
	return nil
}

// loadImportBatch reads the batch at path. A directory contributes one
// candidate per Markdown, text or HTML file and uses the mode flag.
func loadImportBatch(ctx context.Context, path, mode string, modeSet bool) (domain.ImportBatch, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		m, err := domain.ParseImportMode(mode)
		if err != nil {
			return domain.ImportBatch{}, err
		}
		candidates, err := seed.NewDirSource(path, nil).Candidates(ctx)
		if err != nil {
			return domain.ImportBatch{}, fmt.Errorf("failed to read import directory: %w", err)
		}
		return domain.ImportBatch{Mode: m, Candidates: candidates}, nil
	}

	data, err := readInput(path)
	if err != nil {
		return domain.ImportBatch{}, fmt.Errorf("failed to read import file: %w", err)
	}
	batch, err := parseImportFile(data, mode, modeSet)
	if err != nil {
		return domain.ImportBatch{}, fmt.Errorf("failed to parse import file: %w", err)
	}
	return batch, nil
}

// parseImportFile accepts an import payload object or a bare document list.
// The mode flag applies to bare lists, and overrides a payload's mode only
// when set explicitly.
func parseImportFile(data []byte, mode string, modeSet bool) (domain.ImportBatch, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		m, err := domain.ParseImportMode(mode)
		if err != nil {
			return domain.ImportBatch{}, err
		}
		candidates, err := services.ParseCandidates(trimmed)
		if err != nil {
			return domain.ImportBatch{}, err
		}
		return domain.ImportBatch{Mode: m, Candidates: candidates}, nil
	}

	batch, err := services.ParseImportBatch(trimmed)
	if err != nil {
		return domain.ImportBatch{}, err
	}
	if modeSet {
		m, err := domain.ParseImportMode(mode)
		if err != nil {
			return domain.ImportBatch{}, err
		}
		batch.Mode = m
	}
	return batch, nil
}

// confirmReplace asks before a replace import discards the current table.
// Without a terminal the --yes flag is required.
func confirmReplace(ctx context.Context, cmd *cobra.Command) (bool, error) {
	if f, ok := stdin.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return false, errors.New("replace import discards all documents; re-run with --yes to confirm")
	}

	docs, err := documentService.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list documents: %w", err)
	}

	cmd.Printf("Replace import will discard all %d existing documents. Continue? [y/N]: ", len(docs))
	answer := readLine(bufio.NewReader(stdin))
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
}

// inputFromFlags overlays the document flags (or --file) on base.
func inputFromFlags(cmd *cobra.Command, base domain.DocumentInput) (domain.DocumentInput, error) {
	input := base
	if docFile != "" {
		data, err := readInput(docFile)
		if err != nil {
			return input, fmt.Errorf("failed to read document file: %w", err)
		}
		if err := json.Unmarshal(data, &input); err != nil {
			return input, fmt.Errorf("failed to parse document file: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		input.Title = docTitle
	}
	if flags.Changed("category") {
		input.Category = docCategory
	}
	if flags.Changed("summary") {
		input.Summary = docSummary
	}
	if flags.Changed("content") {
		input.Content = docContent
	}
	return input, nil
}

func printDocument(cmd *cobra.Command, doc *domain.Document) {
	cmd.Printf("Document %d\n\n", doc.ID)
	cmd.Printf("  Title:    %s\n", doc.Title)
	cmd.Printf("  Category: %s\n", doc.Category)
	cmd.Printf("  Summary:  %s\n", doc.Summary)
	cmd.Println()
	cmd.Println(doc.Content)
}

func parseDocumentID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid document id %q: must be a positive integer", s)
	}
	return id, nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
