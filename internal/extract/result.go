// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract converts uploaded artifacts into plain text usable as
// model input. One extractor exists per recognized format; all implement
// the same contract and distinguish "no text found" from failure.
package extract

import (
	"fmt"

	"github.com/HorizonHnk/papergen/internal/format"
)

// Result is the outcome of a successful extraction. An empty Text is valid
// (e.g. an image with no detectable text) and is always accompanied by a
// warning so the caller can offer manual text entry instead.
type Result struct {
	// Text is the extracted UTF-8 text.
	Text string

	// Warnings lists recoverable conditions encountered during extraction,
	// in the order they occurred.
	Warnings []string
}

// Empty reports whether extraction produced no text.
func (r Result) Empty() bool {
	return r.Text == ""
}

// Error reports a corrupt or unparseable artifact. The artifact itself is
// malformed, not the channel, so the failure is never retried.
type Error struct {
	// Strategy identifies the extractor that failed.
	Strategy format.Strategy

	// Err is the underlying parse or decode error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", e.Strategy, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
