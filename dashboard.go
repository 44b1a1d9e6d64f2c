package brochure

import "net/url"

// Dashboard is the marketing content shown by one product dashboard.
type Dashboard struct {
	Name     string
	Hero     Hero
	FAQ      []FAQItem
	Callouts []Callout
	Footer   Footer
}

// Hero is the headline section at the top of a dashboard.
type Hero struct {
	Headline    string
	Subheadline string
}

// FAQItem is one question of the FAQ accordion. Answer may contain
// **bold** and [text](url) spans and blank-line separated paragraphs.
type FAQItem struct {
	Question string
	Answer   string
}

// Callout is a promotional card with a call-to-action link.
type Callout struct {
	Title     string // Lead-in text of the card title
	Highlight string // Accented tail of the card title
	Body      string
	Label     string // Call-to-action label
	URL       string
	Source    string // utm_source appended to URL, if set
	Accent    int    // ANSI color index of the card border and highlight
}

// Href returns the call-to-action target with the utm_source parameter
// applied. The URL is returned unchanged if it does not parse or Source is
// empty.
func (c Callout) Href() string {
	if c.Source == "" {
		return c.URL
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return c.URL
	}
	q := u.Query()
	q.Set("utm_source", c.Source)
	u.RawQuery = q.Encode()
	return u.String()
}

// Footer is the strip at the bottom of a dashboard. Text may be empty.
type Footer struct {
	Text string
}
