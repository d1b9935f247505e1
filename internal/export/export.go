// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders sanitized markup into downloadable artifacts:
// a standalone HTML document, Word-compatible HTML, and heading-annotated
// plain text. Renderers are pure functions of (markup, options); nothing
// is cached, so formatting-option changes are always reflected in the
// next export.
package export

import "github.com/HorizonHnk/papergen/pkg/types"

// Options holds the formatting values a render reflects into its output
// shell. Zero values fall back to the template defaults via Normalize.
type Options struct {
	// FontFamily is the CSS font-family value.
	FontFamily string `json:"font_family" yaml:"font_family"`

	// FontSizePt is the body font size in points.
	FontSizePt int `json:"font_size_pt" yaml:"font_size_pt"`

	// LineHeight is the unitless CSS line-height.
	LineHeight float64 `json:"line_height" yaml:"line_height"`

	// MarginCM is the page margin in centimeters.
	MarginCM float64 `json:"margin_cm" yaml:"margin_cm"`

	// TextAlign is the CSS text-align value.
	TextAlign string `json:"text_align" yaml:"text_align"`

	// TextColor is the CSS body color.
	TextColor string `json:"text_color" yaml:"text_color"`
}

// DefaultOptions returns the formatting defaults for a template. Both
// templates print on Times New Roman 12pt; the thesis uses 1.5 spacing
// per the CPUT guidelines.
func DefaultOptions(template types.TemplateKind) Options {
	opts := Options{
		FontFamily: "'Times New Roman', Times, serif",
		FontSizePt: 12,
		LineHeight: 1.5,
		MarginCM:   2.5,
		TextAlign:  "justify",
		TextColor:  "#000000",
	}
	if template == types.TemplateConference {
		opts.LineHeight = 1.2
	}
	return opts
}

// Normalize fills unset fields from the template defaults.
func (o Options) Normalize(template types.TemplateKind) Options {
	def := DefaultOptions(template)
	if o.FontFamily == "" {
		o.FontFamily = def.FontFamily
	}
	if o.FontSizePt <= 0 {
		o.FontSizePt = def.FontSizePt
	}
	if o.LineHeight <= 0 {
		o.LineHeight = def.LineHeight
	}
	if o.MarginCM <= 0 {
		o.MarginCM = def.MarginCM
	}
	if o.TextAlign == "" {
		o.TextAlign = def.TextAlign
	}
	if o.TextColor == "" {
		o.TextColor = def.TextColor
	}
	return o
}

// Artifact is a byte-exact downloadable file produced from sanitized markup.
type Artifact struct {
	// MIMEType is the content type the artifact should be served with.
	MIMEType string

	// FileName is the suggested download name.
	FileName string

	// Bytes is the file content.
	Bytes []byte
}
