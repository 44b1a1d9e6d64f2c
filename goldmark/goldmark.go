// Package goldmark renders inline-markup documents and dashboards to HTML,
// escaping text and link targets the way goldmark's HTML renderer does.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/inline"
)

// Render parses source and returns one <p> element per paragraph.
func Render(source string) string {
	return RenderDocument(inline.Render(source))
}

// RenderDocument renders an already parsed document.
func RenderDocument(doc brochure.Document) string {
	var buf bytes.Buffer
	writeDocument(&buf, doc)
	return strings.TrimRight(buf.String(), "\n")
}

// RenderFAQ renders items as a list of <details> elements. Items whose
// index is in open carry the open attribute; out-of-range indices are
// ignored.
func RenderFAQ(items []brochure.FAQItem, open ...int) string {
	var buf bytes.Buffer
	writeFAQ(&buf, items, open)
	return strings.TrimRight(buf.String(), "\n")
}

// RenderDashboard renders the hero, callouts, FAQ and footer of d as a
// single HTML fragment. FAQ items whose index is in open are expanded.
func RenderDashboard(d brochure.Dashboard, open ...int) string {
	var buf bytes.Buffer
	writeHero(&buf, d.Hero)
	for _, c := range d.Callouts {
		writeCallout(&buf, c)
	}
	if len(d.FAQ) > 0 {
		writeFAQ(&buf, d.FAQ, open)
	}
	writeFooter(&buf, d.Footer)
	return strings.TrimRight(buf.String(), "\n")
}
