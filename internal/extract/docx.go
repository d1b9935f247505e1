// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/HorizonHnk/papergen/internal/format"
)

// DOCX extracts raw text from an OOXML word-processing document by walking
// word/document.xml inside the ZIP container. Structural markup is
// discarded: the text becomes model input, not final output.
type DOCX struct{}

// Extract parses the archive and concatenates paragraph text.
func (DOCX) Extract(_ context.Context, data []byte) (Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, &Error{Strategy: format.StrategyDOCX, Err: fmt.Errorf("opening archive: %w", err)}
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return Result{}, &Error{Strategy: format.StrategyDOCX, Err: fmt.Errorf("word/document.xml not found in archive")}
	}

	rc, err := docFile.Open()
	if err != nil {
		return Result{}, &Error{Strategy: format.StrategyDOCX, Err: fmt.Errorf("opening document.xml: %w", err)}
	}
	defer rc.Close()

	text, err := documentText(rc)
	if err != nil {
		return Result{}, &Error{Strategy: format.StrategyDOCX, Err: err}
	}

	res := Result{Text: text}
	if text == "" {
		res.Warnings = append(res.Warnings, "document contains no text")
	}
	return res, nil
}

// documentText streams document.xml and joins paragraph runs with newlines.
// Tabs and explicit line breaks inside runs are preserved as whitespace.
func documentText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parsing document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "tab":
				if inParagraph {
					current.WriteByte('\t')
				}
			case "br":
				if inParagraph {
					current.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inParagraph {
				current.Write(t)
			}

		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
