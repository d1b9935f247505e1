// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HorizonHnk/papergen/internal/export"
	"github.com/HorizonHnk/papergen/internal/sanitize"
	"github.com/HorizonHnk/papergen/internal/store"
	"github.com/HorizonHnk/papergen/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <html|doc|txt>",
	Short: "Export generated markup as HTML, Word, or plain text",
	Long: `Export re-renders generated markup into a download artifact. The source
is either a markup file written by generate (--in) or a saved document
(--id). Every export re-applies sanitization and regenerates the artifact
from the canonical markup, so formatting-option changes always take
effect.

Formats:
  html   standalone HTML document (use --print for an A4 print shell)
  doc    Word-compatible HTML with MSO metadata, served as application/msword
  txt    plain text with underlined headings`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		markup, template, err := exportSource(cmd)
		if err != nil {
			return err
		}

		// Sanitization is idempotent, so re-applying it here is safe and
		// covers markup files edited by hand since generation.
		markup = sanitize.Sanitize(markup)
		if strict, _ := flags.GetBool("strict"); strict {
			markup = sanitize.Strict(markup)
		}

		opts, err := exportOptions(cmd, template)
		if err != nil {
			return err
		}

		var artifact export.Artifact
		switch args[0] {
		case "html":
			if printable, _ := flags.GetBool("print"); printable {
				artifact = export.PrintHTML(markup, opts)
			} else {
				artifact = export.HTML(markup, opts)
			}
		case "doc":
			artifact = export.Word(markup, opts)
		case "txt":
			artifact = export.Text(markup, opts)
		default:
			return fmt.Errorf("unknown export format %q (use html, doc, or txt)", args[0])
		}

		output, _ := flags.GetString("output")
		if output == "" {
			output = artifact.FileName
		}
		if err := os.WriteFile(output, artifact.Bytes, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%s, %d bytes)\n", output, artifact.MIMEType, len(artifact.Bytes))
		return nil
	},
}

// exportSource loads the markup to export and the template it was
// generated with (for formatting defaults).
func exportSource(cmd *cobra.Command) (string, types.TemplateKind, error) {
	flags := cmd.Flags()
	template := types.TemplateKind(mustString(cmd, "template"))

	if id, _ := flags.GetString("id"); id != "" {
		dbPath, _ := flags.GetString("db")
		s, err := store.Open(types.StoreConfig{DatabasePath: dbPath})
		if err != nil {
			return "", template, err
		}
		defer s.Close()

		doc, err := s.Get(cmd.Context(), id)
		if err != nil {
			return "", template, err
		}
		if doc.Template.Valid() {
			template = doc.Template
		}
		return doc.Content, template, nil
	}

	in, _ := flags.GetString("in")
	if in == "" {
		return "", template, fmt.Errorf("no source: pass --in <markup file> or --id <saved document>")
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return "", template, fmt.Errorf("reading %s: %w", in, err)
	}
	return string(data), template, nil
}

// exportOptions builds the formatting options from the template defaults
// plus any explicit flag overrides.
func exportOptions(cmd *cobra.Command, template types.TemplateKind) (export.Options, error) {
	if !template.Valid() {
		return export.Options{}, fmt.Errorf("unknown template %q (use thesis or conference)", template)
	}
	flags := cmd.Flags()

	opts := export.Options{}
	opts.FontFamily = mustString(cmd, "font-family")
	opts.FontSizePt, _ = flags.GetInt("font-size")
	opts.LineHeight, _ = flags.GetFloat64("line-height")
	opts.MarginCM, _ = flags.GetFloat64("margin")
	opts.TextAlign = mustString(cmd, "align")
	opts.TextColor = mustString(cmd, "color")
	return opts.Normalize(template), nil
}

// mustString reads a string flag, ignoring the impossible lookup error.
func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	exportCmd.Flags().String("in", "", "markup file written by generate")
	exportCmd.Flags().String("id", "", "saved document id to export")
	exportCmd.Flags().String("db", "papergen.db", "document store database file")
	exportCmd.Flags().String("template", "thesis", "template whose formatting defaults apply: thesis or conference")
	exportCmd.Flags().String("output", "", "output path (default: the format's standard file name)")
	exportCmd.Flags().Bool("print", false, "html only: emit the A4 print shell")
	exportCmd.Flags().Bool("strict", false, "apply the strict allowlist sanitizer before rendering")
	exportCmd.Flags().String("font-family", "", "CSS font-family override")
	exportCmd.Flags().Int("font-size", 0, "font size in points")
	exportCmd.Flags().Float64("line-height", 0, "unitless line height")
	exportCmd.Flags().Float64("margin", 0, "page margin in centimeters")
	exportCmd.Flags().String("align", "", "CSS text-align value")
	exportCmd.Flags().String("color", "", "CSS body color")

	rootCmd.AddCommand(exportCmd)
}
