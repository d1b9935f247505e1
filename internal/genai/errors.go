// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import (
	"errors"
	"fmt"
)

// ErrEmptyGeneration reports a well-formed 2xx response that carried no
// candidate text. It is never treated as an empty document.
var ErrEmptyGeneration = errors.New("generation returned no candidate text")

// AuthError reports an HTTP 403 from the generation endpoint: a bad or
// missing API key. It is fatal until the user supplies a valid key and is
// never retried.
type AuthError struct {
	// Body is the response body, truncated, for diagnostics.
	Body string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (HTTP 403): verify your API key: %s", e.Body)
}

// RateLimitError reports an HTTP 429. The client retries it with backoff;
// it becomes user-visible only after the retry budget is exhausted.
type RateLimitError struct {
	Body string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (HTTP 429): %s", e.Body)
}

// TransportError reports a network-level failure or an unexpected HTTP
// status. It is retried with backoff; after budget exhaustion the last
// underlying error is surfaced.
type TransportError struct {
	// Err is the underlying network error, if any.
	Err error

	// StatusCode is the HTTP status, or 0 for network-level failures.
	StatusCode int

	Body string
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation request failed: %v", e.Err)
	}
	return fmt.Sprintf("generation endpoint returned HTTP %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// retryable reports whether an error class may succeed on a later attempt.
// Auth failures and empty generations never do.
func retryable(err error) bool {
	var rate *RateLimitError
	var transport *TransportError
	return errors.As(err, &rate) || errors.As(err, &transport)
}
