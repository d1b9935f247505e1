// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HorizonHnk/papergen/internal/extract"
	"github.com/HorizonHnk/papergen/internal/format"
	"github.com/HorizonHnk/papergen/internal/genai"
	"github.com/HorizonHnk/papergen/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract plain text from uploaded files",
	Long: `Extract reads one or more files and converts each into plain text:
.txt and .md verbatim, .pdf via its text layer, .docx via the document
XML, and images by transcription through the vision API. Files are
processed concurrently; OCR calls are paced against the API's rate limit.

A single file prints its text to stdout; multiple files are written as
.txt siblings in the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		parallelism, _ := flags.GetInt("parallelism")
		interval, _ := flags.GetDuration("ocr-interval")
		cfg := types.ExtractionConfig{Parallelism: parallelism, OCRInterval: interval}

		apiKeyFlag, _ := flags.GetString("api-key")
		model, _ := flags.GetString("model")
		client := &genai.Client{APIKey: resolveAPIKey(apiKeyFlag), Model: model}
		if client.APIKey == "" && hasImageArgs(args) {
			return fmt.Errorf("image files require an API key for OCR: pass --api-key or set PAPERGEN_API_KEY")
		}

		if len(args) == 1 {
			res, err := extract.File(cmd.Context(), args[0], client, nil)
			if err != nil {
				return describeFailure(err)
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}
			fmt.Fprintln(os.Stdout, res.Text)
			return nil
		}

		outDir, _ := flags.GetString("out-dir")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		outcomes := extract.Files(cmd.Context(), args, cfg, client, os.Stderr)

		var failed int
		for _, oc := range outcomes {
			if oc.Err != nil {
				failed++
				continue
			}
			base := strings.TrimSuffix(filepath.Base(oc.Path), filepath.Ext(oc.Path))
			outPath := filepath.Join(outDir, base+".txt")
			if err := os.WriteFile(outPath, []byte(oc.Result.Text), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "failed    %s: %v\n", outPath, err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
		}
		return nil
	},
}

// hasImageArgs reports whether any argument resolves to the OCR strategy.
func hasImageArgs(paths []string) bool {
	for _, p := range paths {
		if s, err := format.ClassifyPath(p); err == nil && s == format.StrategyImageOCR {
			return true
		}
	}
	return false
}

func init() {
	extractCmd.Flags().Int("parallelism", 4, "number of files extracted concurrently")
	extractCmd.Flags().Duration("ocr-interval", time.Second, "minimum spacing between OCR API calls")
	extractCmd.Flags().String("out-dir", ".", "directory for extracted .txt files (multi-file mode)")

	rootCmd.AddCommand(extractCmd)
}
