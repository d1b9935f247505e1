// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the document generation flow: compose the prompt,
// call the generation API, sanitize the result. Data flows strictly
// forward; the sanitized markup is the only value handed downstream.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/HorizonHnk/papergen/internal/compose"
	"github.com/HorizonHnk/papergen/internal/genai"
	"github.com/HorizonHnk/papergen/internal/sanitize"
	"github.com/HorizonHnk/papergen/pkg/types"
)

// Pipeline generates documents through a generation API client. Calls are
// serialized by the caller: one generation at a time, and a new call's
// result replaces the previous document wholesale.
type Pipeline struct {
	Client *genai.Client
}

// Generate composes the prompt for (userText, cfg), invokes the generation
// endpoint, and returns the sanitized document. The raw model text is kept
// alongside for diagnostics but never rendered.
func (p *Pipeline) Generate(ctx context.Context, userText string, cfg types.GenerationConfig) (types.GeneratedDocument, error) {
	if strings.TrimSpace(userText) == "" {
		return types.GeneratedDocument{}, fmt.Errorf("no content to process: enter topic text or upload a file first")
	}

	payload, err := compose.Compose(userText, cfg)
	if err != nil {
		return types.GeneratedDocument{}, err
	}

	raw, err := p.Client.Generate(ctx, payload)
	if err != nil {
		return types.GeneratedDocument{}, err
	}

	return types.GeneratedDocument{
		RawModelText:    raw,
		SanitizedMarkup: sanitize.Sanitize(raw),
	}, nil
}
