// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format maps declared media types to extraction strategies.
// Classification is a pure function with no I/O so it can be tested in
// isolation from the extractors it selects.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Strategy identifies the extraction strategy for a recognized media type.
type Strategy string

const (
	// StrategyPlainText reads the bytes verbatim as UTF-8 text.
	StrategyPlainText Strategy = "plaintext"

	// StrategyPDF extracts the text layer from a paginated PDF.
	StrategyPDF Strategy = "pdf"

	// StrategyDOCX extracts raw text from an OOXML word-processing document.
	StrategyDOCX Strategy = "docx"

	// StrategyImageOCR transcribes a raster image via the vision API.
	StrategyImageOCR Strategy = "ocr"
)

// MediaTypeDOCX is the OOXML word-processing media type.
const MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// MediaTypeLegacyWord is the legacy binary Word media type, which is
// explicitly rejected rather than silently misrouted to the DOCX strategy.
const MediaTypeLegacyWord = "application/msword"

// imageTypes is the closed set of accepted raster image media types.
var imageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
}

// UnsupportedError reports a media type outside the recognized set. The
// offending type is preserved so callers can echo it back to the user.
type UnsupportedError struct {
	// MediaType is the unrecognized declared media type.
	MediaType string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported media type %q", e.MediaType)
}

// LegacyWordError rejects legacy binary .doc files. The binary format cannot
// be parsed by the DOCX strategy, so the user is asked to re-save the file.
type LegacyWordError struct{}

func (e *LegacyWordError) Error() string {
	return "legacy .doc format is not supported: re-save the file as .docx and upload again"
}

// Classify maps a declared media type to its extraction strategy. Unknown
// types yield an *UnsupportedError carrying the original type; legacy Word
// yields a *LegacyWordError with re-save guidance.
func Classify(mediaType string) (Strategy, error) {
	mt := normalize(mediaType)

	switch {
	case mt == "text/plain":
		return StrategyPlainText, nil
	case mt == "application/pdf":
		return StrategyPDF, nil
	case mt == MediaTypeDOCX:
		return StrategyDOCX, nil
	case mt == MediaTypeLegacyWord:
		return "", &LegacyWordError{}
	case imageTypes[mt]:
		return StrategyImageOCR, nil
	}
	return "", &UnsupportedError{MediaType: mediaType}
}

// extTypes maps common file extensions to declared media types for the CLI
// surface, where no browser supplies a media type.
var extTypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/plain",
	".pdf":  "application/pdf",
	".docx": MediaTypeDOCX,
	".doc":  MediaTypeLegacyWord,
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

// MediaTypeForPath returns the declared media type for a file path based on
// its extension, or "" if the extension is not recognized.
func MediaTypeForPath(path string) string {
	return extTypes[strings.ToLower(filepath.Ext(path))]
}

// ClassifyPath maps a file path to its extraction strategy via the
// extension-derived media type.
func ClassifyPath(path string) (Strategy, error) {
	mt := MediaTypeForPath(path)
	if mt == "" {
		return "", &UnsupportedError{MediaType: filepath.Ext(path)}
	}
	return Classify(mt)
}

// normalize lowercases the type and strips any parameters (e.g. charset).
func normalize(mediaType string) string {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
