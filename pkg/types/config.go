package types

import "time"

// TemplateKind selects the document template: thesis or conference paper.
type TemplateKind string

const (
	TemplateThesis     TemplateKind = "thesis"
	TemplateConference TemplateKind = "conference"
)

// Valid reports whether the template kind is one of the known templates.
func (t TemplateKind) Valid() bool {
	return t == TemplateThesis || t == TemplateConference
}

// Tone selects the writing style directive sent to the model.
type Tone string

const (
	ToneAcademic     Tone = "academic"
	ToneProfessional Tone = "professional"
	ToneEssay        Tone = "essay"
	ToneCreative     Tone = "creative"
)

// TargetLength selects the requested printed length of the document.
type TargetLength string

const (
	LengthAuto      TargetLength = "auto"
	LengthShort     TargetLength = "short"      // 1-2 pages
	LengthMedium    TargetLength = "medium"     // 3-5 pages
	LengthLong      TargetLength = "long"       // 6-10 pages
	LengthExtraLong TargetLength = "extra-long" // 10+ pages
)

// ReferenceStyle selects the citation grammar.
type ReferenceStyle string

const (
	RefAuto    ReferenceStyle = "auto"
	RefHarvard ReferenceStyle = "harvard"
	RefIEEE    ReferenceStyle = "ieee"
)

// Author identifies one document author as supplied by the user.
type Author struct {
	// Name is the author's display name.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the author's institutional affiliation.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`

	// Email is the author's contact address.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// GenerationConfig holds the per-call generation parameters. It is assembled
// from flags (or a request file) immediately before each generation call and
// has no independent persistence.
type GenerationConfig struct {
	// Template selects the structural directive block: thesis or conference.
	Template TemplateKind `json:"template" yaml:"template"`

	// Tone selects the writing style directive.
	Tone Tone `json:"tone" yaml:"tone"`

	// Length selects the requested printed length.
	Length TargetLength `json:"length" yaml:"length"`

	// ReferenceStyle selects the citation grammar. Auto resolves to Harvard
	// for thesis and IEEE for conference before prompt composition.
	ReferenceStyle ReferenceStyle `json:"reference_style" yaml:"reference_style"`

	// Authors lists the document's authors. Empty means the model is asked
	// to invent plausible authorship.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`
}

// ResolveReferenceStyle maps RefAuto to the template's default citation
// grammar: Harvard for thesis, IEEE for conference. Resolution happens once,
// before prompt composition.
func (c GenerationConfig) ResolveReferenceStyle() ReferenceStyle {
	if c.ReferenceStyle != RefAuto && c.ReferenceStyle != "" {
		return c.ReferenceStyle
	}
	if c.Template == TemplateConference {
		return RefIEEE
	}
	return RefHarvard
}

// AIConfig holds shared settings for calls to the generative AI API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the generation endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ExtractionConfig holds settings for batch file extraction.
type ExtractionConfig struct {
	// Parallelism bounds the number of files extracted concurrently (default 4).
	Parallelism int `json:"parallelism" yaml:"parallelism"`

	// OCRInterval is the minimum spacing between OCR API calls (default 1s).
	OCRInterval time.Duration `json:"ocr_interval" yaml:"ocr_interval"`
}

// StoreConfig holds settings for the document store.
type StoreConfig struct {
	// DatabasePath is the SQLite database file (e.g. "papergen.db").
	DatabasePath string `json:"database_path" yaml:"database_path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	AI         AIConfig         `json:"ai" yaml:"ai"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}
