// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"unicode/utf8"
)

// utf8BOM is the byte-order mark some editors prepend to UTF-8 files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// PlainText decodes bytes as UTF-8 text verbatim.
type PlainText struct{}

// Extract returns the bytes as a string, stripping a leading BOM. Invalid
// UTF-8 produces a warning rather than a failure, since the downstream
// model input tolerates replacement characters.
func (PlainText) Extract(_ context.Context, data []byte) (Result, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	res := Result{Text: string(data)}
	if !utf8.Valid(data) {
		res.Text = string(bytes.ToValidUTF8(data, []byte("�")))
		res.Warnings = append(res.Warnings, "file is not valid UTF-8: invalid sequences were replaced")
	}
	if res.Text == "" {
		res.Warnings = append(res.Warnings, "file contains no text")
	}
	return res, nil
}
