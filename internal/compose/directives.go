// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import "github.com/HorizonHnk/papergen/pkg/types"

// templateDirectives holds the structural directive block per template.
// Both blocks carry the shared project guidelines: table captions above,
// figure captions below, visuals introduced in text before they appear,
// and no fabricated references.
var templateDirectives = map[types.TemplateKind]string{
	types.TemplateThesis: `Format the output as a professional HTML Thesis Paper.

STRICT FORMATTING RULES (THESIS STRUCTURE):
1. **Layout**: Single Column.
2. **Font**: Times New Roman, Size 12.
3. **Spacing**: Line spacing 1.5.
4. **Margins**: 2.5cm on all sides (simulate with CSS padding).

REQUIRED STRUCTURE:
1. **Abstract**: A comprehensive summary of the research aims, methodology, findings, and conclusion (approx. 200-300 words).
2. **Chapter 1: Introduction**: Background and context.
3. **Chapter 2: Literature Review**: "Previous studies by..."
4. **Chapter 3: Methodology**: "A finite element analysis..."
5. **Chapter 4: Results**: Presentation of data.
6. **Chapter 5: Discussion**: Analysis of results.
7. **Chapter 6: Conclusion and Recommendations**

MANDATORY PROJECT GUIDELINES (APPLIES TO ALL):
1. **Figure Placement**: Descriptive title placed **UNDERNEATH** the figure (e.g., "Figure 1: Block Diagram").
2. **Table Placement**: Name placed **ABOVE** the table (e.g., "Table 1: Cost Breakdown").
3. **Context**: You MUST introduce every Figure and Table in the text *before* showing it (e.g., "As shown in Figure 1...").
4. **References**: ZERO TOLERANCE for fake references. Use valid sources.`,

	types.TemplateConference: `Format the output as a professional HTML Conference Paper.

STRUCTURE INSTRUCTIONS:
1. **Layout**: STRICT Two-Column layout for body text (CSS column-count: 2; gap: 2rem).
2. **Title**: Centered, 24pt Times New Roman.
3. **Authors**: Centered below title.
4. **Abstract**: Bold, single-column.
5. **Headings**: Roman Numerals (I., II., III.) in Small Caps.

MANDATORY PROJECT GUIDELINES:
1. **Figure Placement**: Caption **UNDERNEATH** (e.g., "Figure 1: Title").
2. **Table Placement**: Caption **ABOVE** (e.g., "Table 1: Title").
3. **Context**: Introduce visuals in text first.
4. **References**: ZERO TOLERANCE for fake references. Use valid sources.
5. **Appendices**: Place technical code/schematics at the end.

Content Structure: Abstract, Introduction, Methodology, Findings, Conclusion, References.`,
}

// toneDirectives holds the writing style directive per tone.
var toneDirectives = map[types.Tone]string{
	types.ToneAcademic:     "Formal, objective, and scholarly. Use passive voice where appropriate. Avoid colloquialisms. Focus on rigor, evidence, and precise terminology.",
	types.ToneProfessional: "Business-like, concise, and action-oriented. Clear, direct language suitable for industry reports and executive summaries.",
	types.ToneEssay:        "Narrative flow with persuasive arguments. Personal voice is allowed where appropriate. Focus on logical structure and readability.",
	types.ToneCreative:     "Descriptive, engaging, and varied sentence structure. Allows for metaphors and storytelling elements while maintaining the subject matter.",
}

// referenceDirectives holds the citation grammar directive per resolved style.
var referenceDirectives = map[types.ReferenceStyle]string{
	types.RefHarvard: `REFERENCING STYLE: Harvard (author-date).
- In-text citations use the author surname and year, e.g. (Jones, 2022) or Jones (2022).
- The reference list is alphabetical by surname: Surname, Initials. (Year). Title. Publisher/Journal.`,
	types.RefIEEE: `REFERENCING STYLE: IEEE (numeric).
- In-text citations use bracketed numbers in order of first appearance, e.g. [1], [2].
- The reference list is numbered in citation order: [1] A. Author, "Title," Journal, vol. X, no. Y, Year.`,
}

// lengthPageRanges maps concrete length tiers to printed page ranges.
var lengthPageRanges = map[types.TargetLength]string{
	types.LengthShort:     "1-2 pages",
	types.LengthMedium:    "3-5 pages",
	types.LengthLong:      "6-10 pages",
	types.LengthExtraLong: "10+ pages",
}

// autoLengthDirective is used when no concrete tier is selected.
const autoLengthDirective = "Content Length: Generate comprehensive content appropriate for the topic, ensuring all sections are well-covered."

// technicalConstraints is the fixed tail of every system instruction:
// output encoding, executable-content prohibition, and math notation.
const technicalConstraints = `TECHNICAL CSS REQUIREMENTS:
- Use <style> blocks.
- For Thesis: body { font-family: 'Times New Roman', serif; font-size: 12pt; line-height: 1.5; padding: 2.5cm; max-width: 210mm; margin: auto; text-align: justify; }
- For Conference: .columns { column-count: 2; column-gap: 0.8cm; text-align: justify; } .title-area { column-span: all; text-align: center; margin-bottom: 1cm; }
- Figures/Tables: Ensure captions are correctly placed (Table ABOVE, Figure BELOW).
- Do not use Markdown backticks. Return raw HTML.
- DO NOT include any <script> tags or JavaScript code.
- DO NOT use event handlers (onclick, onload, etc.).
- Output must be pure HTML with inline CSS only.
- Make it look exactly like a printed PDF.

MATHEMATICAL EQUATIONS:
- Use proper HTML mathematical notation with <i> for italics (variables)
- For inline equations: <i>x</i> = <i>y</i> + 2
- For displayed equations: Use centered div with proper spacing
- Example: <div style="text-align: center; margin: 1em 0;"><i>E</i> = <i>mc</i><sup>2</sup></div>
- Use <sup> for superscripts, <sub> for subscripts
- Use proper symbols: &times; (multiplication), &divide; (division), &asymp; (approximately), &ne; (not equal), &le; (less than or equal), &ge; (greater than or equal)
- Greek letters: &alpha; &beta; &gamma; &delta; &epsilon; &theta; &lambda; &mu; &pi; &sigma; &phi; &omega; &Delta; &Sigma; &Omega;
- Make equations readable and properly formatted for printing and Word export`

// inventAuthorsDirective asks the model for plausible authorship when the
// user supplies none.
const inventAuthorsDirective = "No author information was provided. Invent plausible author names with affiliations appropriate to the topic."
