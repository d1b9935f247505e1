// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_RemovesScriptBlocks(t *testing.T) {
	got := Sanitize(`<p>hi</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>hi</p>", got)
}

func TestSanitize_RemovesScriptBlocksCaseInsensitive(t *testing.T) {
	got := Sanitize(`<p>a</p><SCRIPT type="text/javascript">x()</SCRIPT><p>b</p>`)
	assert.Equal(t, "<p>a</p><p>b</p>", got)
}

func TestSanitize_RemovesMultilineScript(t *testing.T) {
	got := Sanitize("<h1>T</h1><script>\nvar a = 1;\nalert(a);\n</script><p>body</p>")
	assert.Equal(t, "<h1>T</h1><p>body</p>", got)
}

func TestSanitize_RemovesQuotedEventHandlers(t *testing.T) {
	got := Sanitize(`<div onclick="evil()">x</div>`)
	assert.Equal(t, "<div>x</div>", got)
}

func TestSanitize_RemovesBareEventHandlers(t *testing.T) {
	got := Sanitize(`<img src="a.png" onerror=steal()>`)
	assert.Equal(t, `<img src="a.png">`, got)
}

func TestSanitize_RemovesJavascriptScheme(t *testing.T) {
	got := Sanitize(`<a href="javascript:doEvil()">link</a>`)
	assert.Equal(t, `<a href="doEvil()">link</a>`, got)

	got = Sanitize(`<a href="JaVaScRiPt:x()">y</a>`)
	assert.NotContains(t, got, "JaVaScRiPt:")
}

func TestSanitize_RemovesReassembledScript(t *testing.T) {
	// Removing the inner script block splices the surrounding fragments
	// into a fresh script element; a single call must still remove it.
	got := Sanitize(`<scr<script>x</script>ipt>alert(1)</script>`)
	assert.NotContains(t, got, "<script")
	assert.NotContains(t, got, "alert(1)")
}

func TestSanitize_RemovesReassembledScheme(t *testing.T) {
	got := Sanitize(`<a href="javajavascript:script:evil()">x</a>`)
	assert.NotContains(t, got, "javascript:")
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		`<p>hi</p><script>alert(1)</script>`,
		`<div onclick="evil()" onmouseover=bad>x</div>`,
		`<a href="javascript:void(0)">z</a>`,
		`<scr<script>x</script>ipt>alert(1)</script>`,
		`<h1 style="color: red">Clean markup stays untouched</h1>`,
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestSanitize_PreservesInlineStyling(t *testing.T) {
	in := `<div style="text-align: center; margin: 1em 0;"><i>E</i> = <i>mc</i><sup>2</sup></div>`
	assert.Equal(t, in, Sanitize(in))
}

func TestStrict_DropsUnknownDangerousContent(t *testing.T) {
	got := Strict(`<p style="color:blue">ok</p><object data="x"></object>`)
	assert.Contains(t, got, "ok")
	assert.NotContains(t, got, "<object")
}

func TestStrict_KeepsTables(t *testing.T) {
	got := Strict(`<table><tr><td>cell</td></tr></table>`)
	assert.Contains(t, got, "<td>cell</td>")
}
