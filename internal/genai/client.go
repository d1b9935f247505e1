// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genai invokes the remote generation endpoint with bounded
// exponential-backoff retry and a typed failure taxonomy. It also exposes
// the single-shot vision mode used for image transcription.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// apiBaseURL is the generation API base. Package-level var for test substitution.
var apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

const (
	defaultModel      = "gemini-2.0-flash"
	defaultMaxRetries = 3
	maxErrorBody      = 4 << 10
)

// ocrInstruction is the fixed transcription prompt for vision mode.
const ocrInstruction = "Transcribe all visible text in this image exactly as it appears. Preserve table structure using plain text alignment. Return only the transcribed text with no commentary."

// Payload is the instruction pair for one generation call. It is built once
// per call and never mutated afterwards, so retries can safely reuse it.
type Payload struct {
	// SystemInstruction is the formatting and style directive block.
	SystemInstruction string

	// UserContent is the topic text plus author block and closing instruction.
	UserContent string
}

// Client calls the generation endpoint. The zero value is not usable; the
// APIKey field is required.
type Client struct {
	// APIKey authenticates the call via a query-string parameter.
	APIKey string

	// Model is the model identifier. Empty selects the default.
	Model string

	// MaxRetries is the retry budget after the first attempt (default 3).
	MaxRetries int

	// HTTPClient is the transport; nil selects http.DefaultClient.
	HTTPClient *http.Client
}

// generateRequest is the request body for the generateContent endpoint.
type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// generateResponse is the subset of the response body the client consumes.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the payload to the generation endpoint and returns the
// first candidate's text with markdown code fences stripped. Transport and
// rate-limit failures are retried up to the budget with backoff 1s, 2s, 4s;
// authentication failures and empty generations are surfaced immediately.
func (c *Client) Generate(ctx context.Context, payload Payload) (string, error) {
	req := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: payload.UserContent}}},
		},
		SystemInstruction: &content{
			Parts: []part{{Text: payload.SystemInstruction}},
		},
	}

	maxRetries := c.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		text, err := c.call(ctx, req)
		if err == nil {
			return stripCodeFences(text), nil
		}
		if !retryable(err) {
			return "", err
		}
		lastErr = err
	}

	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}

// Transcribe sends image bytes to the same endpoint in single-shot vision
// mode. There is no retry: the call is a simpler, best-effort transcription.
// A response with no candidate text returns "" and no error, since an image
// without detectable text is a valid outcome.
func (c *Client) Transcribe(ctx context.Context, mimeType string, image []byte) (string, error) {
	req := generateRequest{
		Contents: []content{
			{Parts: []part{
				{Text: ocrInstruction},
				{InlineData: &inlineData{
					MIMEType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			}},
		},
	}

	text, err := c.call(ctx, req)
	if err != nil {
		if errors.Is(err, ErrEmptyGeneration) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// call issues one generateContent request and classifies the outcome.
func (c *Client) call(ctx context.Context, reqBody generateRequest) (string, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	model := c.Model
	if model == "" {
		model = defaultModel
	}
	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", apiBaseURL, model, url.QueryEscape(c.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		switch resp.StatusCode {
		case http.StatusForbidden:
			return "", &AuthError{Body: string(body)}
		case http.StatusTooManyRequests:
			return "", &RateLimitError{Body: string(body)}
		}
		return "", &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var gResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(gResp.Candidates) == 0 || len(gResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyGeneration
	}
	text := gResp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}

// stripCodeFences removes markdown fences the model sometimes wraps around
// HTML output despite instructions.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```html", "")
	return strings.ReplaceAll(text, "```", "")
}
