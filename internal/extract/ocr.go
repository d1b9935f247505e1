// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/HorizonHnk/papergen/internal/genai"
)

// ocrPlaceholder keeps downstream stages supplied with well-formed input
// when the model finds no text in an image.
const ocrPlaceholder = "[No readable text was detected in the uploaded image.]"

// ImageOCR transcribes a raster image by sending it to the generation
// endpoint in single-shot vision mode. An image with no detectable text is
// not an error.
type ImageOCR struct {
	// Client performs the vision call.
	Client *genai.Client

	// MIMEType is the image's declared media type (e.g. "image/png").
	MIMEType string

	// Limiter, when set, paces OCR calls across a batch.
	Limiter *rate.Limiter
}

// Extract re-encodes the image as base64 and asks the model to transcribe
// all visible text, preserving table structure. An empty transcription
// yields a placeholder string plus a warning.
func (o *ImageOCR) Extract(ctx context.Context, data []byte) (Result, error) {
	if o.Limiter != nil {
		if err := o.Limiter.Wait(ctx); err != nil {
			return Result{}, err
		}
	}

	text, err := o.Client.Transcribe(ctx, o.MIMEType, data)
	if err != nil {
		return Result{}, err
	}

	if text == "" {
		return Result{
			Text:     ocrPlaceholder,
			Warnings: []string{"no text detected in image"},
		}, nil
	}
	return Result{Text: text}, nil
}
