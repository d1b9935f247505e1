// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// headingUnderline maps heading level to the underline character: = for
// level 1, - for level 2, # for deeper levels. The underline keeps a
// structural cue in a format with no native styling.
func headingUnderline(level int) byte {
	switch level {
	case 1:
		return '='
	case 2:
		return '-'
	}
	return '#'
}

// headingLevels maps heading atoms to their numeric level.
var headingLevels = map[atom.Atom]int{
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

// Text renders markup as plain text. Each heading is preceded by a blank
// line and followed by an underline whose length equals the heading text
// length; all other markup is stripped to running text. Formatting options
// carry no meaning in plain text and are ignored.
func Text(markup string, _ Options) Artifact {
	root, err := html.Parse(strings.NewReader(markup))

	var text string
	if err != nil {
		// html.Parse is tolerant; a hard failure leaves only raw stripping.
		text = markup
	} else {
		var sb strings.Builder
		walkText(root, &sb)
		text = sb.String()
	}

	return Artifact{
		MIMEType: "text/plain; charset=utf-8",
		FileName: "document.txt",
		Bytes:    []byte(collapseBlankLines(text)),
	}
}

// blockAtoms lists elements that terminate a line of running text.
var blockAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Tr: true,
	atom.Table: true, atom.Ul: true, atom.Ol: true, atom.Blockquote: true,
	atom.Figure: true, atom.Figcaption: true, atom.Section: true,
}

// walkText renders a parsed HTML tree into plain text.
func walkText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		switch {
		case n.DataAtom == atom.Script || n.DataAtom == atom.Style:
			return
		case n.DataAtom == atom.Br:
			sb.WriteByte('\n')
			return
		}
		if level, ok := headingLevels[n.DataAtom]; ok {
			writeHeading(n, level, sb)
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, sb)
	}

	if n.Type == html.ElementNode && blockAtoms[n.DataAtom] {
		sb.WriteByte('\n')
	}
	if n.DataAtom == atom.Td || n.DataAtom == atom.Th {
		sb.WriteByte('\t')
	}
}

// writeHeading emits a heading with its underline block.
func writeHeading(n *html.Node, level int, sb *strings.Builder) {
	var inner strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, &inner)
	}
	title := strings.TrimSpace(inner.String())
	if title == "" {
		return
	}

	sb.WriteByte('\n')
	sb.WriteString(title)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(string(headingUnderline(level)), utf8.RuneCountInString(title)))
	sb.WriteByte('\n')
}

// collapseBlankLines trims trailing space per line and squeezes runs of
// blank lines down to one.
func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}
