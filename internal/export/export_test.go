// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HorizonHnk/papergen/pkg/types"
)

func thesisOpts() Options {
	return DefaultOptions(types.TemplateThesis)
}

func TestHTML_WrapsMarkupInStandaloneShell(t *testing.T) {
	art := HTML("<h1>Title</h1><p>Body</p>", thesisOpts())

	assert.Equal(t, "text/html; charset=utf-8", art.MIMEType)
	assert.Equal(t, "document.html", art.FileName)

	doc := string(art.Bytes)
	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, `<meta charset="UTF-8">`)
	assert.Contains(t, doc, "<h1>Title</h1><p>Body</p>")
	assert.Contains(t, doc, "font-family: 'Times New Roman', Times, serif;")
	assert.Contains(t, doc, "font-size: 12pt;")
	assert.Contains(t, doc, "line-height: 1.5;")
	assert.Contains(t, doc, "margin: 2.5cm;")
}

func TestHTML_ReflectsOverrides(t *testing.T) {
	opts := Options{FontFamily: "Arial, sans-serif", FontSizePt: 11, TextColor: "#222222"}.Normalize(types.TemplateThesis)
	art := HTML("<p>x</p>", opts)

	doc := string(art.Bytes)
	assert.Contains(t, doc, "font-family: Arial, sans-serif;")
	assert.Contains(t, doc, "font-size: 11pt;")
	assert.Contains(t, doc, "color: #222222;")
	// Unset fields fall back to template defaults.
	assert.Contains(t, doc, "line-height: 1.5;")
}

func TestPrintHTML_CarriesA4PageRule(t *testing.T) {
	art := PrintHTML("<p>x</p>", thesisOpts())
	doc := string(art.Bytes)
	assert.Contains(t, doc, "size: A4;")
	assert.Contains(t, doc, "margin: 2.5cm;")
	assert.Contains(t, doc, "@media print")
}

func TestWord_BOMAndMSOHeader(t *testing.T) {
	art := Word("<p>x</p>", thesisOpts())

	assert.Equal(t, "application/msword", art.MIMEType)
	assert.Equal(t, "document.doc", art.FileName)
	assert.True(t, bytes.HasPrefix(art.Bytes, []byte{0xEF, 0xBB, 0xBF}))

	doc := string(art.Bytes)
	assert.Contains(t, doc, "urn:schemas-microsoft-com:office:word")
	assert.Contains(t, doc, "<w:View>Print</w:View>")
	assert.Contains(t, doc, "<w:Zoom>100</w:Zoom>")
	assert.Contains(t, doc, "size: A4;")
	assert.True(t, strings.HasSuffix(doc, "</body></html>"))
}

func TestText_HeadingUnderlines(t *testing.T) {
	art := Text("<h1>Intro</h1><p>Hello</p>", Options{})

	assert.Equal(t, "text/plain; charset=utf-8", art.MIMEType)
	assert.Equal(t, "document.txt", art.FileName)

	text := string(art.Bytes)
	idxTitle := strings.Index(text, "Intro")
	idxRule := strings.Index(text, "=====")
	idxBody := strings.Index(text, "Hello")
	require.GreaterOrEqual(t, idxTitle, 0)
	require.GreaterOrEqual(t, idxRule, 0)
	require.GreaterOrEqual(t, idxBody, 0)
	assert.Less(t, idxTitle, idxRule)
	assert.Less(t, idxRule, idxBody)
	// Underline length equals heading length.
	assert.NotContains(t, text, "======")
}

func TestText_UnderlineCharPerLevel(t *testing.T) {
	art := Text("<h1>One</h1><h2>Two</h2><h3>Three</h3><h4>Four</h4>", Options{})
	text := string(art.Bytes)

	assert.Contains(t, text, "One\n===")
	assert.Contains(t, text, "Two\n---")
	assert.Contains(t, text, "Three\n#####")
	assert.Contains(t, text, "Four\n####")
}

func TestText_StripsMarkupAndScripts(t *testing.T) {
	art := Text(`<p>keep <b>bold</b></p><style>p{color:red}</style>`, Options{})
	text := string(art.Bytes)

	assert.Contains(t, text, "keep bold")
	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "color:red")
}

func TestText_TablesBecomeTabbedRows(t *testing.T) {
	art := Text("<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table>", Options{})
	text := string(art.Bytes)

	assert.Contains(t, text, "a\tb")
	assert.Contains(t, text, "c\td")
}

func TestDefaultOptions_PerTemplate(t *testing.T) {
	thesis := DefaultOptions(types.TemplateThesis)
	assert.Equal(t, 1.5, thesis.LineHeight)

	conf := DefaultOptions(types.TemplateConference)
	assert.Equal(t, 1.2, conf.LineHeight)
	assert.Equal(t, 12, conf.FontSizePt)
}

func TestRenderersArePure(t *testing.T) {
	opts := thesisOpts()
	first := HTML("<p>same</p>", opts)
	second := HTML("<p>same</p>", opts)
	assert.Equal(t, first, second)

	wFirst := Word("<p>same</p>", opts)
	wSecond := Word("<p>same</p>", opts)
	assert.Equal(t, wFirst, wSecond)

	tFirst := Text("<h2>H</h2>", opts)
	tSecond := Text("<h2>H</h2>", opts)
	assert.Equal(t, tFirst, tSecond)
}
