// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/HorizonHnk/papergen/internal/format"
	"github.com/HorizonHnk/papergen/internal/genai"
	"github.com/HorizonHnk/papergen/pkg/types"
)

// Extractor converts an artifact's bytes into plain text. Extraction may
// require non-trivial compute or a network round-trip, so it takes a
// context. Well-formed-but-empty input is not an error.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (Result, error)
}

// ForStrategy returns the extractor bound to a classification strategy.
// The genai client is required only for the OCR strategy; limiter paces
// its API calls and may be nil.
func ForStrategy(s format.Strategy, client *genai.Client, limiter *rate.Limiter) (Extractor, error) {
	switch s {
	case format.StrategyPlainText:
		return PlainText{}, nil
	case format.StrategyPDF:
		return PDF{}, nil
	case format.StrategyDOCX:
		return DOCX{}, nil
	case format.StrategyImageOCR:
		if client == nil {
			return nil, fmt.Errorf("image OCR requires a generation API client")
		}
		return &ImageOCR{Client: client, Limiter: limiter}, nil
	}
	return nil, fmt.Errorf("no extractor for strategy %q", s)
}

// File classifies a file by extension, reads it, and extracts its text.
// The file's bytes are consumed once and not retained.
func File(ctx context.Context, path string, client *genai.Client, limiter *rate.Limiter) (Result, error) {
	// Reject unsupported formats before touching the file.
	if _, err := format.ClassifyPath(path); err != nil {
		return Result{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}

	up := types.UploadedFile{
		Name:      filepath.Base(path),
		MediaType: format.MediaTypeForPath(path),
		Bytes:     data,
	}
	return Uploaded(ctx, up, client, limiter)
}

// Uploaded extracts text from an uploaded file using the strategy selected
// by its declared media type.
func Uploaded(ctx context.Context, up types.UploadedFile, client *genai.Client, limiter *rate.Limiter) (Result, error) {
	strategy, err := format.Classify(up.MediaType)
	if err != nil {
		return Result{}, err
	}

	ex, err := ForStrategy(strategy, client, limiter)
	if err != nil {
		return Result{}, err
	}

	ocr, isOCR := ex.(*ImageOCR)
	if isOCR {
		ocr.MIMEType = up.MediaType
	}
	return ex.Extract(ctx, up.Bytes)
}

// FileOutcome pairs one file's extraction result with its path and error.
type FileOutcome struct {
	Path   string
	Result Result
	Err    error
}

// Files extracts several files concurrently with bounded parallelism,
// writing per-file progress to w. Classification or extraction failures
// are recorded per file and do not stop the batch.
func Files(ctx context.Context, paths []string, cfg types.ExtractionConfig, client *genai.Client, w io.Writer) []FileOutcome {
	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 4
	}
	interval := cfg.OCRInterval
	if interval <= 0 {
		interval = time.Second
	}

	// One limiter shared by every OCR call in the batch.
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	outcomes := make([]FileOutcome, len(paths))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := File(gctx, path, client, limiter)
			outcomes[i] = FileOutcome{Path: path, Result: res, Err: err}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				fmt.Fprintf(w, "failed    %s: %v\n", path, err)
			case res.Empty():
				fmt.Fprintf(w, "empty     %s\n", path)
			default:
				fmt.Fprintf(w, "extracted %s (%d bytes of text)\n", path, len(res.Text))
			}
			return nil
		})
	}

	g.Wait()
	return outcomes
}
