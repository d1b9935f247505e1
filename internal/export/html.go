// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"
)

// htmlShell is the minimal standalone document wrapper.
const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Academic Paper</title>
  <style>
%s  </style>
</head>
<body>
%s
</body>
</html>`

// printShell wraps markup for printing: A4 pages with the document's
// formatting applied and no viewport chrome.
const printShell = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Print Document</title>
  <style>
    @page {
      size: A4;
      margin: %.1fcm;
    }
%s    @media print {
      body {
        margin: 0;
        padding: 0;
      }
    }
  </style>
</head>
<body>
%s
</body>
</html>`

// HTML renders markup as a self-contained HTML document reflecting the
// formatting options.
func HTML(markup string, opts Options) Artifact {
	doc := fmt.Sprintf(htmlShell, bodyCSS(opts, "    "), markup)
	return Artifact{
		MIMEType: "text/html; charset=utf-8",
		FileName: "document.html",
		Bytes:    []byte(doc),
	}
}

// PrintHTML renders markup as a print-oriented HTML document with an A4
// @page rule.
func PrintHTML(markup string, opts Options) Artifact {
	doc := fmt.Sprintf(printShell, opts.MarginCM, bodyCSS(opts, "    "), markup)
	return Artifact{
		MIMEType: "text/html; charset=utf-8",
		FileName: "document-print.html",
		Bytes:    []byte(doc),
	}
}

// bodyCSS renders the body rule for the active formatting options, with
// each line prefixed by indent.
func bodyCSS(opts Options, indent string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sbody {\n", indent)
	fmt.Fprintf(&sb, "%s  font-family: %s;\n", indent, opts.FontFamily)
	fmt.Fprintf(&sb, "%s  font-size: %dpt;\n", indent, opts.FontSizePt)
	fmt.Fprintf(&sb, "%s  line-height: %.3g;\n", indent, opts.LineHeight)
	fmt.Fprintf(&sb, "%s  margin: %.1fcm;\n", indent, opts.MarginCM)
	fmt.Fprintf(&sb, "%s  text-align: %s;\n", indent, opts.TextAlign)
	fmt.Fprintf(&sb, "%s  color: %s;\n", indent, opts.TextColor)
	fmt.Fprintf(&sb, "%s}\n", indent)
	return sb.String()
}
