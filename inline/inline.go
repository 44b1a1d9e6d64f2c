// Package inline splits text written in a small markup subset into styled
// runs. Paragraphs are separated by a blank line; within a paragraph
// **bold** and [text](url) spans are recognized and everything else is
// literal text. Malformed markup is never an error: it stays literal.
package inline

import (
	"strings"

	"github.com/fwojciec/brochure"
)

// Render splits doc into paragraphs and each paragraph into runs. The
// result always holds one paragraph per blank-line separated segment,
// empty segments included, and doc == Render(doc).Source().
func Render(doc string) brochure.Document {
	segments := strings.Split(doc, brochure.ParagraphBreak)
	out := make(brochure.Document, len(segments))
	for i, s := range segments {
		out[i] = RenderParagraph(s)
	}
	return out
}

// RenderParagraph splits a single paragraph into runs. Text between spans
// becomes PlainText; empty plain runs are dropped, except that a paragraph
// with no runs at all holds one empty PlainText.
func RenderParagraph(s string) brochure.Paragraph {
	var runs []brochure.Run
	skip := make([]int, len(matchers))
	plain := 0
	eol := -1
	for i := 0; i < len(s); {
		if i > eol {
			eol = lineEnd(s, i)
		}
		r, n := matchAt(s, i, eol, skip)
		if n == 0 {
			i++
			continue
		}
		if plain < i {
			runs = append(runs, brochure.PlainText{Content: s[plain:i]})
		}
		runs = append(runs, r)
		i += n
		plain = i
	}
	if plain < len(s) {
		runs = append(runs, brochure.PlainText{Content: s[plain:]})
	}
	if len(runs) == 0 {
		runs = []brochure.Run{brochure.PlainText{}}
	}
	return brochure.Paragraph{Runs: runs}
}

// matcher recognizes one kind of span.
type matcher interface {
	// match tries to recognize a span starting at s[at] and ending before
	// eol, the end of the current line. On success it returns the run and
	// the number of bytes consumed. On failure n is zero and next is the
	// lowest offset at which a match could start.
	match(s string, at, eol int) (r brochure.Run, n int, next int)
}

// matchers are tried in order at every offset; the first match wins.
var matchers = []matcher{boldMatcher{}, linkMatcher{}}

// matchAt returns the first span starting at s[at]. skip holds, per
// matcher, the offset below which that matcher is known to fail.
func matchAt(s string, at, eol int, skip []int) (brochure.Run, int) {
	for k, m := range matchers {
		if at < skip[k] {
			continue
		}
		r, n, next := m.match(s, at, eol)
		if n > 0 {
			return r, n
		}
		skip[k] = next
	}
	return nil, 0
}

// boldMatcher recognizes **content** with the shortest possible content.
type boldMatcher struct{}

func (boldMatcher) match(s string, at, eol int) (brochure.Run, int, int) {
	if at+2 > eol || s[at] != '*' || s[at+1] != '*' {
		return nil, 0, at + 1
	}
	start := at + 2
	end := strings.Index(s[start:eol], "**")
	if end < 0 {
		// No closing delimiter on this line, so no bold span can
		// start anywhere before its end either.
		return nil, 0, eol
	}
	return brochure.Bold{Content: s[start : start+end]}, end + 4, 0
}

// linkMatcher recognizes [text](url). Text cannot contain ']' and the URL
// cannot contain ')'.
type linkMatcher struct{}

func (linkMatcher) match(s string, at, eol int) (brochure.Run, int, int) {
	if at >= eol || s[at] != '[' {
		return nil, 0, at + 1
	}
	closing := strings.IndexByte(s[at+1:eol], ']')
	if closing < 0 {
		return nil, 0, eol
	}
	closing += at + 1
	if closing+1 >= eol || s[closing+1] != '(' {
		return nil, 0, closing + 1
	}
	urlStart := closing + 2
	end := strings.IndexByte(s[urlStart:eol], ')')
	if end < 0 {
		return nil, 0, eol
	}
	end += urlStart
	return brochure.Link{Text: s[at+1 : closing], URL: s[urlStart:end]}, end + 1 - at, 0
}

// lineEnd returns the offset of the first line break at or after from, or
// len(s). Spans never cross a line break. It is called once per line.
func lineEnd(s string, from int) int {
	if i := strings.IndexByte(s[from:], '\n'); i >= 0 {
		return from + i
	}
	return len(s)
}
