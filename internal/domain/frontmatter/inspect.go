package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// HasCover reports whether the document's front matter already declares a
// cover image. Only the first header block is considered; declarations in the
// body are ignored. Documents without a header never have a cover.
func HasCover(text string) bool {
	doc := parse(text)

	h, ok := doc.locate()
	if !ok {
		return false
	}

	for _, line := range doc.lines[h.open+1 : h.close] {
		if isCoverLine(line) {
			return true
		}
	}

	return false
}

// HasHeader reports whether the document starts with a closed front matter block.
func HasHeader(text string) bool {
	_, ok := parse(text).locate()
	return ok
}

// Title returns the front matter "title" value, or "" when the header is
// missing or does not decode as YAML.
func Title(text string) string {
	doc := parse(text)

	h, ok := doc.locate()
	if !ok || h.close == h.open+1 {
		return ""
	}

	var meta struct {
		Title string `yaml:"title"`
	}

	block := strings.Join(doc.lines[h.open+1:h.close], "\n")
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return ""
	}

	return strings.TrimSpace(meta.Title)
}
