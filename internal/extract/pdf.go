// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/HorizonHnk/papergen/internal/format"
)

// PDF extracts the text layer from a paginated PDF via pdfcpu. Text items
// on a page are joined with single spaces; pages are joined with a blank
// line. A PDF with no extractable text (pure scanned images) is valid and
// yields an empty result with a warning.
type PDF struct{}

// Extract opens the byte stream as a PDF and walks its pages.
func (PDF) Extract(_ context.Context, data []byte) (Result, error) {
	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return Result{}, &Error{Strategy: format.StrategyPDF, Err: err}
	}

	var pages []string
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		text := pageText(pdfCtx, pageNr)
		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return Result{
			Warnings: []string{"PDF has no extractable text layer (likely a scanned document): type the text manually or upload the pages as images"},
		}, nil
	}

	res := Result{Text: strings.Join(pages, "\n\n")}
	if len(res.Text) < sparseTextPerPage*pdfCtx.PageCount {
		res.Warnings = append(res.Warnings, "PDF yielded very little text for its page count: some pages may be scanned images")
	}
	return res, nil
}

// sparseTextPerPage is the character count below which a page is probably
// a scanned image rather than a text layer.
const sparseTextPerPage = 80

// pageText extracts the text items from one page's content stream.
func pageText(pdfCtx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return strings.Join(streamTextItems(data), " ")
}

// literalRe matches PDF string literals in parentheses.
var literalRe = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

// streamTextItems collects the string literals shown by the Tj, TJ and '
// text operators in a raw content stream.
func streamTextItems(data []byte) []string {
	var items []string
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !bytes.HasSuffix(line, []byte("Tj")) &&
			!bytes.HasSuffix(line, []byte("TJ")) &&
			!bytes.HasSuffix(line, []byte("'")) {
			continue
		}
		for _, m := range literalRe.FindAllSubmatch(line, -1) {
			if text := strings.TrimSpace(decodeLiteral(m[1])); text != "" {
				items = append(items, text)
			}
		}
	}
	return items
}

// decodeLiteral resolves PDF string escape sequences, including octal codes.
func decodeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(c)
		default:
			if c >= '0' && c <= '7' {
				val := int(c - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(c)
			}
		}
	}
	return sb.String()
}
