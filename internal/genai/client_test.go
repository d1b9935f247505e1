// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Use a tiny base delay so tests finish quickly.
	backoffBase = 1 * time.Millisecond
}

// newTestClient points the package at a test server and returns a client.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := apiBaseURL
	apiBaseURL = ts.URL
	t.Cleanup(func() { apiBaseURL = old })

	return &Client{APIKey: "test-key", HTTPClient: ts.Client()}
}

// candidateResponse builds a minimal successful response body.
func candidateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"parts": []map[string]any{{"text": text}},
			}},
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(candidateResponse("<h1>Paper</h1>"))
	})

	text, err := client.Generate(context.Background(), Payload{
		SystemInstruction: "format as thesis",
		UserContent:       "topic: solar cells",
	})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Paper</h1>", text)

	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "format as thesis", gotBody.SystemInstruction.Parts[0].Text)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "topic: solar cells", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerate_StripsCodeFences(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse("```html\n<p>hi</p>\n```"))
	})

	text, err := client.Generate(context.Background(), Payload{UserContent: "x"})
	require.NoError(t, err)
	assert.Equal(t, "\n<p>hi</p>\n", text)
}

func TestGenerate_RetriesTransportFailuresThenSucceeds(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(candidateResponse("ok"))
	})

	text, err := client.Generate(context.Background(), Payload{UserContent: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGenerate_ExhaustsRetryBudget(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Generate(context.Background(), Payload{UserContent: "x"})
	require.Error(t, err)

	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	assert.Equal(t, http.StatusBadGateway, transport.StatusCode)
	// 1 initial + 3 retries = 4 total calls.
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestGenerate_BackoffDoublesPerAttempt(t *testing.T) {
	old := backoffBase
	backoffBase = 20 * time.Millisecond
	defer func() { backoffBase = old }()

	var stamps []time.Time
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		stamps = append(stamps, time.Now())
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Generate(context.Background(), Payload{UserContent: "x"})
	require.Error(t, err)
	require.Len(t, stamps, 4)

	// Delays follow 1x, 2x, 4x the base.
	assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), 20*time.Millisecond)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), 40*time.Millisecond)
	assert.GreaterOrEqual(t, stamps[3].Sub(stamps[2]), 80*time.Millisecond)
}

func TestGenerate_AuthFailureNotRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Generate(context.Background(), Payload{UserContent: "x"})
	var auth *AuthError
	require.True(t, errors.As(err, &auth))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGenerate_RateLimitRetriedThenEscalated(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), Payload{UserContent: "x"})
	var rate *RateLimitError
	require.True(t, errors.As(err, &rate))
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestGenerate_EmptyCandidatesIsTypedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	_, err := client.Generate(context.Background(), Payload{UserContent: "x"})
	assert.ErrorIs(t, err, ErrEmptyGeneration)
}

func TestGenerate_ContextCancelledDuringBackoff(t *testing.T) {
	old := backoffBase
	backoffBase = 500 * time.Millisecond
	defer func() { backoffBase = old }()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, Payload{UserContent: "x"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTranscribe_SendsInlineData(t *testing.T) {
	var gotBody generateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(candidateResponse("Table 1: Results\nA  B"))
	})

	text, err := client.Transcribe(context.Background(), "image/png", []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.Equal(t, "Table 1: Results\nA  B", text)

	require.Len(t, gotBody.Contents, 1)
	parts := gotBody.Contents[0].Parts
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0].Text, "Transcribe all visible text")
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/png", parts[1].InlineData.MIMEType)
	assert.Equal(t, "iVA=", parts[1].InlineData.Data)
}

func TestTranscribe_EmptyResponseIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	text, err := client.Transcribe(context.Background(), "image/png", []byte{1})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestTranscribe_SingleShotNoRetry(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Transcribe(context.Background(), "image/png", []byte{1})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
