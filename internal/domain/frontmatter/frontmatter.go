// Package frontmatter inspects and edits the "---" delimited metadata block
// at the top of Markdown documents.
//
// The block is treated as opaque lines. A header exists when the first
// non-blank line of the document is a separator and a second separator
// follows somewhere below it.
package frontmatter

import (
	"regexp"
	"strings"
)

// Separator opens and closes a front matter block.
const Separator = "---"

// CoverKey is the key written by AddCover.
const CoverKey = "cover"

const bom = "\ufeff"

// Accepted cover spellings, matched against trimmed header lines.
var coverPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^cover:\s*\S`),
	regexp.MustCompile(`(?i)^cover\s+:\s*\S`),
	regexp.MustCompile(`(?i)^cover-image:\s*\S`),
}

// header holds the line indexes of the opening and closing separators.
type header struct {
	open  int
	close int
}

// document is a BOM-stripped text split on "\n". Lines keep a trailing "\r"
// for CRLF input.
type document struct {
	bom   string
	body  string
	lines []string
}

func parse(text string) document {
	doc := document{body: text}
	if rest, ok := strings.CutPrefix(text, bom); ok {
		doc.bom = bom
		doc.body = rest
	}

	doc.lines = strings.Split(doc.body, "\n")

	return doc
}

func (d document) locate() (header, bool) {
	open := -1

	for i, line := range d.lines {
		if isBlank(line) {
			continue
		}

		if !isSeparator(line) {
			return header{}, false
		}

		open = i

		break
	}

	if open < 0 {
		return header{}, false
	}

	for i := open + 1; i < len(d.lines); i++ {
		if isSeparator(d.lines[i]) {
			return header{open: open, close: i}, true
		}
	}

	return header{}, false
}

func isSeparator(line string) bool {
	return strings.TrimSpace(line) == Separator
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isCoverLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, pattern := range coverPatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}

	return false
}
