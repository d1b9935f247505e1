// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose builds the instruction payload for a generation call from
// template rules, tone, length, reference style, and author data.
// Composition is pure and stateless: identical inputs produce byte-identical
// payloads, which keeps prompting deterministic and testable.
package compose

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/HorizonHnk/papergen/internal/genai"
	"github.com/HorizonHnk/papergen/pkg/types"
)

// systemTmpl assembles the system instruction. The directive order is
// fixed: structure, tone, references, length, technical constraints.
var systemTmpl = template.Must(template.New("system").Parse(`You are an expert academic paper formatter.
Generate a COMPLETE, styled HTML document.

{{.Template}}

TONE AND STYLE INSTRUCTION:
{{.Tone}}

{{.References}}

{{.Length}}

{{.Technical}}
`))

// userTmpl assembles the user content: topic text, optional author block,
// closing instruction.
var userTmpl = template.Must(template.New("user").Parse(`Topic/Content to Process:
{{.Topic}}
{{if .Authors}}
AUTHOR INFORMATION (Use these exact details in the paper):
{{.Authors}}{{end}}
Please generate the full document now, strictly adhering to the guidelines.
`))

// Compose builds the instruction payload for one generation call. The
// reference style is resolved before composition; the payload is never
// mutated afterwards.
func Compose(userText string, cfg types.GenerationConfig) (genai.Payload, error) {
	tmplDirective, ok := templateDirectives[cfg.Template]
	if !ok {
		return genai.Payload{}, fmt.Errorf("unknown template %q", cfg.Template)
	}

	tone, ok := toneDirectives[cfg.Tone]
	if !ok {
		return genai.Payload{}, fmt.Errorf("unknown tone %q", cfg.Tone)
	}

	refs, ok := referenceDirectives[cfg.ResolveReferenceStyle()]
	if !ok {
		return genai.Payload{}, fmt.Errorf("unknown reference style %q", cfg.ReferenceStyle)
	}

	var system strings.Builder
	err := systemTmpl.Execute(&system, map[string]string{
		"Template":   tmplDirective,
		"Tone":       tone,
		"References": refs,
		"Length":     lengthDirective(cfg.Length),
		"Technical":  technicalConstraints,
	})
	if err != nil {
		return genai.Payload{}, fmt.Errorf("rendering system instruction: %w", err)
	}

	block := authorBlock(cfg.Authors)

	var user strings.Builder
	err = userTmpl.Execute(&user, map[string]string{
		"Topic":   userText,
		"Authors": block,
	})
	if err != nil {
		return genai.Payload{}, fmt.Errorf("rendering user content: %w", err)
	}

	payload := genai.Payload{
		SystemInstruction: system.String(),
		UserContent:       user.String(),
	}
	if block == "" {
		payload.SystemInstruction += "\n" + inventAuthorsDirective + "\n"
	}
	return payload, nil
}

// lengthDirective renders the length instruction. Auto asks for
// comprehensive coverage; concrete tiers ask for a printed page range and
// expanded methodology, literature, and discussion sections. Tier requests
// are best-effort guidance: the model is not guaranteed to honor them.
func lengthDirective(length types.TargetLength) string {
	pages, ok := lengthPageRanges[length]
	if !ok {
		return autoLengthDirective
	}
	return fmt.Sprintf("Content Length: Generate a SUBSTANTIAL amount of detailed text, data, figures, and tables. The output HTML must contain enough content to fill approximately %s when printed. Expand deeply on Methodology, Literature Review, and Discussion to meet this length requirement.", pages)
}

// authorBlock formats the author list for verbatim reproduction by the
// model. Authors without a name are skipped.
func authorBlock(authors []types.Author) string {
	var entries []string
	for _, a := range authors {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		entry := fmt.Sprintf("Author %d: %s", len(entries)+1, name)
		if a.Affiliation != "" {
			entry += "\nAffiliation: " + a.Affiliation
		}
		if a.Email != "" {
			entry += "\nEmail: " + a.Email
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, "\n\n")
}
