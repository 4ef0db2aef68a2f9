package frontmatter

import "strings"

// Option configures AddCover.
type Option func(*insertConfig)

type insertConfig struct {
	spacer bool
}

// WithSpacer inserts a blank line before the cover declaration when the line
// it follows is a non-blank, non-separator line.
func WithSpacer() Option {
	return func(c *insertConfig) {
		c.spacer = true
	}
}

// AddCover returns text with a "cover: <url>" declaration added to its front
// matter. When the document has no header a new block is prepended. Every
// other line is kept verbatim and in order.
//
// Callers are expected to check HasCover first; AddCover does not look for an
// existing declaration.
func AddCover(text, url string, opts ...Option) string {
	cfg := insertConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := parse(text)
	decl := CoverKey + ": " + url

	h, ok := doc.locate()
	if !ok {
		eol := lineEnding(doc.body)

		return doc.bom + Separator + eol + decl + eol + Separator + eol + eol + doc.body
	}

	cr := ""
	if strings.HasSuffix(doc.lines[h.close], "\r") {
		cr = "\r"
	}

	at := h.close
	for at > h.open+1 && isBlank(doc.lines[at-1]) {
		at--
	}

	insert := []string{decl + cr}

	prev := doc.lines[at-1]
	if cfg.spacer && !isBlank(prev) && !isSeparator(prev) {
		insert = []string{cr, decl + cr}
	}

	lines := make([]string, 0, len(doc.lines)+len(insert))
	lines = append(lines, doc.lines[:at]...)
	lines = append(lines, insert...)
	lines = append(lines, doc.lines[at:]...)

	return doc.bom + strings.Join(lines, "\n")
}

func lineEnding(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}

	return "\n"
}
