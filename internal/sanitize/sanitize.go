// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize removes executable content from untrusted markup before
// display or export. It is a defense-in-depth layer against payloads the
// upstream model might accidentally emit, not a full HTML-safety guarantee
// against a hostile author.
package sanitize

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// scriptRe matches a script element and its full content, non-greedily to
// the nearest closing tag.
var scriptRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)

// quotedHandlerRe matches quoted inline event handler attributes:
// onclick="...", onerror='...'.
var quotedHandlerRe = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*["'][^"']*["']`)

// bareHandlerRe matches unquoted inline event handler attributes:
// onclick=evil().
var bareHandlerRe = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*[^\s>]*`)

// jsSchemeRe matches the javascript: URI scheme.
var jsSchemeRe = regexp.MustCompile(`(?i)javascript:`)

// Sanitize strips script elements, inline event handlers, and script-URI
// schemes from markup. It is pure, total, and idempotent: sanitizing
// already-sanitized markup yields the same markup. The passes repeat until
// the output is stable, so removing one payload cannot splice surrounding
// fragments into a fresh one (e.g. a script tag split by a nested script
// block). Every pass only deletes characters, so the loop terminates.
func Sanitize(markup string) string {
	out := markup
	for {
		next := scriptRe.ReplaceAllString(out, "")
		next = quotedHandlerRe.ReplaceAllString(next, "")
		next = bareHandlerRe.ReplaceAllString(next, "")
		next = jsSchemeRe.ReplaceAllString(next, "")
		if next == out {
			return out
		}
		out = next
	}
}

// StrictPolicy returns an allowlist policy for callers wanting a stronger
// pass than the targeted scrubbing above, at the cost of rewriting markup
// the model emitted (unknown elements are dropped entirely). Inline styles
// are kept because the generated documents carry all formatting inline.
func StrictPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").Globally()
	p.AllowElements("style", "sup", "sub", "figure", "figcaption", "caption")
	p.AllowTables()
	return p
}

// Strict applies the allowlist policy after the standard scrub.
func Strict(markup string) string {
	return StrictPolicy().Sanitize(Sanitize(markup))
}
