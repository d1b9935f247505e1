// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"fmt"
)

// utf8BOM prefixes the Word artifact so Word detects UTF-8 reliably.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// wordHeader carries the Word-specific conditional XML metadata (print
// view, 100% zoom) and the A4 @page rule. Word opens the HTML as a rich
// document because the artifact is served as application/msword.
const wordHeader = `<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head>
<meta charset='utf-8'>
<title>Document</title>
<!--[if gte mso 9]>
<xml>
<w:WordDocument>
<w:View>Print</w:View>
<w:Zoom>100</w:Zoom>
</w:WordDocument>
</xml>
<![endif]-->
<style>
@page {
  size: A4;
  margin: %.1fcm;
}
%s</style>
</head>
<body>`

const wordFooter = "</body></html>"

// Word renders markup as Word-compatible HTML with an MSO header,
// BOM-prefixed and typed application/msword.
func Word(markup string, opts Options) Artifact {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	fmt.Fprintf(&buf, wordHeader, opts.MarginCM, bodyCSS(opts, ""))
	buf.WriteString(markup)
	buf.WriteString(wordFooter)

	return Artifact{
		MIMEType: "application/msword",
		FileName: "document.doc",
		Bytes:    buf.Bytes(),
	}
}
