package goldmark

import (
	"bytes"
	"slices"

	"github.com/fwojciec/brochure"
	"github.com/fwojciec/brochure/inline"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// External links open in a new tab without leaking the opener.
const linkAttrs = ` target="_blank" rel="noopener noreferrer"`

func writeDocument(buf *bytes.Buffer, doc brochure.Document) {
	for _, p := range doc {
		buf.WriteString("<p>")
		for _, run := range p.Runs {
			writeRun(buf, run)
		}
		buf.WriteString("</p>\n")
	}
}

func writeRun(buf *bytes.Buffer, run brochure.Run) {
	switch v := run.(type) {
	case brochure.PlainText:
		writeText(buf, v.Content)
	case brochure.Bold:
		buf.WriteString("<strong>")
		writeText(buf, v.Content)
		buf.WriteString("</strong>")
	case brochure.Link:
		writeLink(buf, v.URL, v.Text)
	}
}

func writeText(buf *bytes.Buffer, s string) {
	buf.Write(util.EscapeHTML([]byte(s)))
}

// writeLink writes an anchor. Dangerous targets such as javascript: URLs
// are replaced with an empty href.
func writeLink(buf *bytes.Buffer, url, text string) {
	buf.WriteString(`<a href="`)
	dest := []byte(url)
	if !html.IsDangerousURL(dest) {
		buf.Write(util.EscapeHTML(util.URLEscape(dest, true)))
	}
	buf.WriteString(`"`)
	buf.WriteString(linkAttrs)
	buf.WriteString(">")
	writeText(buf, text)
	buf.WriteString("</a>")
}

func writeFAQ(buf *bytes.Buffer, items []brochure.FAQItem, open []int) {
	buf.WriteString("<div class=\"faq\">\n")
	for i, item := range items {
		if slices.Contains(open, i) {
			buf.WriteString("<details open>\n")
		} else {
			buf.WriteString("<details>\n")
		}
		buf.WriteString("<summary>")
		writeText(buf, item.Question)
		buf.WriteString("</summary>\n")
		writeDocument(buf, inline.Render(item.Answer))
		buf.WriteString("</details>\n")
	}
	buf.WriteString("</div>\n")
}

func writeHero(buf *bytes.Buffer, h brochure.Hero) {
	if h.Headline == "" && h.Subheadline == "" {
		return
	}
	buf.WriteString("<section class=\"hero\">\n")
	if h.Headline != "" {
		buf.WriteString("<h1>")
		writeText(buf, h.Headline)
		buf.WriteString("</h1>\n")
	}
	if h.Subheadline != "" {
		buf.WriteString("<p>")
		writeText(buf, h.Subheadline)
		buf.WriteString("</p>\n")
	}
	buf.WriteString("</section>\n")
}

func writeCallout(buf *bytes.Buffer, c brochure.Callout) {
	buf.WriteString("<aside class=\"callout\">\n")
	buf.WriteString("<div class=\"callout-title\">")
	writeText(buf, c.Title)
	if c.Highlight != "" {
		buf.WriteString(" <span>")
		writeText(buf, c.Highlight)
		buf.WriteString("</span>")
	}
	buf.WriteString("</div>\n")
	if c.Body != "" {
		buf.WriteString("<p>")
		writeText(buf, c.Body)
		buf.WriteString("</p>\n")
	}
	writeLink(buf, c.Href(), c.Label)
	buf.WriteString("\n</aside>\n")
}

func writeFooter(buf *bytes.Buffer, f brochure.Footer) {
	buf.WriteString("<footer>")
	writeText(buf, f.Text)
	buf.WriteString("</footer>\n")
}
