// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/HorizonHnk/papergen/internal/extract"
	"github.com/HorizonHnk/papergen/internal/format"
	"github.com/HorizonHnk/papergen/internal/genai"
	"github.com/HorizonHnk/papergen/internal/pipeline"
	"github.com/HorizonHnk/papergen/internal/store"
	"github.com/HorizonHnk/papergen/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a formatted academic document from text or a file",
	Long: `Generate composes a template-specific prompt from topic text (or text
extracted from an uploaded file), sends it to the generation API with
bounded retry, sanitizes the returned markup, and writes the result.

Supported input files: .txt, .md, .pdf, .docx, and images (.png, .jpg,
.jpeg, .gif, .webp, .bmp) transcribed via the vision API. Legacy .doc
files are rejected: re-save them as .docx first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		cfg, topic, inputFile, err := generationInputs(flags)
		if err != nil {
			return err
		}

		apiKeyFlag, _ := flags.GetString("api-key")
		model, _ := flags.GetString("model")
		if model == "" {
			model = viper.GetString("model")
		}
		client := &genai.Client{
			APIKey: resolveAPIKey(apiKeyFlag),
			Model:  model,
		}
		if client.APIKey == "" {
			return fmt.Errorf("no API key configured: pass --api-key, set PAPERGEN_API_KEY, or create .secrets/gemini-api-key")
		}

		if inputFile != "" {
			res, err := extract.File(cmd.Context(), inputFile, client, nil)
			if err != nil {
				return describeFailure(err)
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}
			if res.Empty() {
				return fmt.Errorf("no text could be extracted from %s: type the content manually with --topic", inputFile)
			}
			topic = res.Text
		}

		p := &pipeline.Pipeline{Client: client}
		doc, err := p.Generate(cmd.Context(), topic, cfg)
		if err != nil {
			return describeFailure(err)
		}

		output, _ := flags.GetString("output")
		if err := os.WriteFile(output, []byte(doc.SanitizedMarkup), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", output, len(doc.SanitizedMarkup))

		if save, _ := flags.GetBool("save"); save {
			return saveDocument(cmd, flags, doc, cfg, topic)
		}
		return nil
	},
}

// generationInputs assembles the GenerationConfig and topic from flags or a
// request file. Flag values override request-file values.
func generationInputs(flags *pflag.FlagSet) (types.GenerationConfig, string, string, error) {
	cfg := types.GenerationConfig{
		Template:       types.TemplateThesis,
		Tone:           types.ToneAcademic,
		Length:         types.LengthAuto,
		ReferenceStyle: types.RefAuto,
	}

	topic, _ := flags.GetString("topic")
	inputFile, _ := flags.GetString("file")

	if reqPath, _ := flags.GetString("request-file"); reqPath != "" {
		rf, err := pipeline.LoadRequestFile(reqPath)
		if err != nil {
			return cfg, "", "", err
		}
		cfg = rf.Config
		if topic == "" {
			topic = rf.Topic
		}
		if inputFile == "" {
			inputFile = rf.InputFile
		}
	}

	if v, _ := flags.GetString("template"); v != "" {
		cfg.Template = types.TemplateKind(v)
	}
	if v, _ := flags.GetString("tone"); v != "" {
		cfg.Tone = types.Tone(v)
	}
	if v, _ := flags.GetString("length"); v != "" {
		cfg.Length = types.TargetLength(v)
	}
	if v, _ := flags.GetString("refs"); v != "" {
		cfg.ReferenceStyle = types.ReferenceStyle(v)
	}

	authorSpecs, _ := flags.GetStringArray("author")
	for _, spec := range authorSpecs {
		cfg.Authors = append(cfg.Authors, parseAuthor(spec))
	}

	if !cfg.Template.Valid() {
		return cfg, "", "", fmt.Errorf("unknown template %q (use thesis or conference)", cfg.Template)
	}
	if topic == "" && inputFile == "" {
		return cfg, "", "", fmt.Errorf("nothing to process: pass --topic, --file, or --request-file")
	}
	return cfg, topic, inputFile, nil
}

// parseAuthor splits "Name|Affiliation|Email" into an Author. Trailing
// fields are optional.
func parseAuthor(spec string) types.Author {
	parts := strings.SplitN(spec, "|", 3)
	a := types.Author{Name: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		a.Affiliation = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		a.Email = strings.TrimSpace(parts[2])
	}
	return a
}

// saveDocument persists the generated document for --user.
func saveDocument(cmd *cobra.Command, flags *pflag.FlagSet, doc types.GeneratedDocument, cfg types.GenerationConfig, topic string) error {
	userID, _ := flags.GetString("user")
	if userID == "" {
		return fmt.Errorf("--save requires --user")
	}
	title, _ := flags.GetString("title")
	if title == "" {
		title = firstLine(topic)
	}
	dbPath, _ := flags.GetString("db")

	s, err := store.Open(types.StoreConfig{DatabasePath: dbPath})
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.Save(cmd.Context(), userID, types.StoredDocument{
		Title:     title,
		Template:  cfg.Template,
		Content:   doc.SanitizedMarkup,
		UserInput: topic,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved document %s\n", id)
	return nil
}

// firstLine returns the first non-empty line of text, truncated for titles.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 80 {
			return line[:80]
		}
		return line
	}
	return "Untitled document"
}

// describeFailure attaches actionable guidance to the failure kinds a user
// can do something about.
func describeFailure(err error) error {
	var auth *genai.AuthError
	if errors.As(err, &auth) {
		return fmt.Errorf("invalid or missing API key: verify the key in .secrets/gemini-api-key or PAPERGEN_API_KEY (get one at https://makersuite.google.com/app/apikey): %w", err)
	}

	var rate *genai.RateLimitError
	if errors.As(err, &rate) {
		return fmt.Errorf("rate limit exceeded after retries: wait a moment and try again: %w", err)
	}

	if errors.Is(err, genai.ErrEmptyGeneration) {
		return fmt.Errorf("the model returned no content: try again or rephrase the topic: %w", err)
	}

	var legacy *format.LegacyWordError
	if errors.As(err, &legacy) {
		return err
	}

	var unsupported *format.UnsupportedError
	if errors.As(err, &unsupported) {
		return fmt.Errorf("%w: supported formats are .txt, .md, .pdf, .docx, and common image types", err)
	}

	var exFail *extract.Error
	if errors.As(err, &exFail) {
		return fmt.Errorf("%w: the file appears corrupt and was not retried: pick another file", err)
	}

	return err
}

func init() {
	generateCmd.Flags().String("topic", "", "topic text or prompt to generate from")
	generateCmd.Flags().String("file", "", "path to a file to extract topic text from")
	generateCmd.Flags().String("request-file", "", "YAML file holding the full generation request")
	generateCmd.Flags().String("template", "", "document template: thesis or conference")
	generateCmd.Flags().String("tone", "", "writing tone: academic, professional, essay, or creative")
	generateCmd.Flags().String("length", "", "target length: auto, short, medium, long, or extra-long")
	generateCmd.Flags().String("refs", "", "reference style: auto, harvard, or ieee")
	generateCmd.Flags().StringArray("author", nil, "author as 'Name|Affiliation|Email' (repeatable)")
	generateCmd.Flags().String("output", "document.html", "path for the generated markup")
	generateCmd.Flags().Bool("save", false, "save the generated document to the document store")
	generateCmd.Flags().String("user", "", "user id owning the saved document")
	generateCmd.Flags().String("title", "", "title for the saved document (default: first line of the topic)")
	generateCmd.Flags().String("db", "papergen.db", "document store database file")

	rootCmd.AddCommand(generateCmd)
}
