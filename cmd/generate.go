package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/paperforge/paperforge-go/paperforge"
)

var (
	templateData string
	filenameOpt  string
	outputPath   string
	outputDir    string
	concurrency  int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <template-id>...",
	Short: "Generate PDF documents from one or more templates",
	Long: `Generate renders the given templates with the supplied data and writes
the resulting documents to disk.

Template data is passed with --data, either inline as a JSON object or from
a file with the @ prefix:

  paperforge generate invoice-2024 --data '{"customer":"ACME"}'
  paperforge generate invoice-2024 --data @invoice.json --output acme.pdf

Multiple template IDs are rendered concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&templateData, "data", "d", "", "template data as inline JSON or @file")
	generateCmd.Flags().StringVar(&filenameOpt, "filename", "", "filename to request from the server")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (single template only)")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for generated documents")
	generateCmd.Flags().IntVar(&concurrency, "concurrency", 0, "max concurrent generate calls")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output is only valid with a single template ID, use --output-dir instead")
	}

	data, err := loadTemplateData(templateData)
	if err != nil {
		return err
	}

	request := &paperforge.GenerateRequest{Data: data}
	if filenameOpt != "" {
		request.Options = &paperforge.GenerateOptions{Filename: filenameOpt}
	}

	dir := cfg.Generate.OutputDir
	if outputDir != "" {
		dir = outputDir
	}

	limit := cfg.Generate.Concurrency
	if concurrency > 0 {
		limit = concurrency
	}

	ctx := context.Background()

	if len(args) == 1 {
		return generateOne(ctx, args[0], request, dir)
	}

	// Render templates concurrently with bounded parallelism. Individual
	// failures are reported but do not stop the remaining renders.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	var mu sync.Mutex
	var failed []string

	for _, templateID := range args {
		templateID := templateID
		g.Go(func() error {
			if err := generateOne(ctx, templateID, request, dir); err != nil {
				logger.Warn().
					Err(err).
					Str("template_id", templateID).
					Msg("Failed to generate document")

				mu.Lock()
				failed = append(failed, templateID)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to generate %d of %d documents: %s",
			len(failed), len(args), strings.Join(failed, ", "))
	}

	fmt.Printf("Generated %d documents in %s\n", len(args), dir)
	return nil
}

// generateOne renders a single template and writes the document to disk.
func generateOne(ctx context.Context, templateID string, request *paperforge.GenerateRequest, dir string) error {
	result, err := client.Generate(ctx, templateID, request)
	if err != nil {
		return fmt.Errorf("%s: %s", templateID, describeError(err))
	}

	path := outputPath
	if path == "" {
		path = filepath.Join(dir, result.Filename)
	}

	if err := os.WriteFile(path, result.Document, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Info().
		Str("template_id", templateID).
		Str("path", path).
		Int64("bytes", result.ContentLength).
		Int64("generation_ms", result.GenerationTimeMs).
		Msg("Generated document")

	return nil
}

// loadTemplateData parses the --data flag value, reading from a file when
// the value carries the @ prefix.
func loadTemplateData(value string) (map[string]any, error) {
	if value == "" {
		return nil, nil
	}

	raw := []byte(value)
	if strings.HasPrefix(value, "@") {
		var err error
		raw, err = os.ReadFile(value[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("template data is not a JSON object: %w", err)
	}

	return data, nil
}

// describeError turns a classified error into a message suited for CLI
// output.
func describeError(err error) string {
	var apiErr *paperforge.Error
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Kind {
	case paperforge.KindValidation:
		return fmt.Sprintf("invalid request: %s", apiErr.Message)
	case paperforge.KindAuthentication:
		return "authentication failed, check paperforge.api_key"
	case paperforge.KindForbidden:
		return "access denied for this template"
	case paperforge.KindNotFound:
		return fmt.Sprintf("template not found: %s", apiErr.Message)
	case paperforge.KindRateLimit:
		if apiErr.RetryAfter != nil {
			return fmt.Sprintf("rate limited, retry after %d seconds", *apiErr.RetryAfter)
		}
		return "rate limited, retry later"
	case paperforge.KindTimeout:
		return fmt.Sprintf("%s, consider raising paperforge.timeout_seconds", apiErr.Message)
	default:
		return apiErr.Error()
	}
}
