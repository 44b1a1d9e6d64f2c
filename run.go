package brochure

import "strings"

// ParagraphBreak separates paragraphs in a document.
const ParagraphBreak = "\n\n"

// Run is a sealed interface representing the smallest renderable unit of a
// paragraph. The unexported marker method prevents external implementations.
type Run interface {
	isRun()
	// Plain returns the run's textual content without markup delimiters.
	Plain() string
	// Source returns the literal text the run was recognized from,
	// delimiters included.
	Source() string
}

// PlainText is literal text.
type PlainText struct {
	Content string
}

func (PlainText) isRun() {}

// Plain returns the text.
func (r PlainText) Plain() string { return r.Content }

// Source returns the text verbatim.
func (r PlainText) Source() string { return r.Content }

// Bold is text written as **content**.
type Bold struct {
	Content string
}

func (Bold) isRun() {}

// Plain returns the bold text.
func (r Bold) Plain() string { return r.Content }

// Source returns the text wrapped in ** delimiters.
func (r Bold) Source() string { return "**" + r.Content + "**" }

// Link is a hyperlink written as [text](url). URL is kept exactly as
// written; it is neither validated nor escaped.
type Link struct {
	Text string
	URL  string
}

func (Link) isRun() {}

// Plain returns the link text.
func (r Link) Plain() string { return r.Text }

// Source returns the link in [text](url) form.
func (r Link) Source() string { return "[" + r.Text + "](" + r.URL + ")" }

// Paragraph is an ordered sequence of runs.
type Paragraph struct {
	Runs []Run
}

// Plain concatenates the textual content of all runs.
func (p Paragraph) Plain() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Plain())
	}
	return b.String()
}

// Source concatenates the literal source of all runs.
func (p Paragraph) Source() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Source())
	}
	return b.String()
}

// Document is an ordered sequence of paragraphs.
type Document []Paragraph

// Source rebuilds the text the document was rendered from.
func (d Document) Source() string {
	parts := make([]string, len(d))
	for i, p := range d {
		parts[i] = p.Source()
	}
	return strings.Join(parts, ParagraphBreak)
}

// Interface compliance checks.
var (
	_ Run = PlainText{}
	_ Run = Bold{}
	_ Run = Link{}
)
