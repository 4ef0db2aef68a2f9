package adapter

import (
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	gitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ignoreMatcher applies .gitignore rules found under a root directory.
// A nil matcher ignores nothing.
type ignoreMatcher struct {
	matcher gitignore.Matcher
}

func newIgnoreMatcher(root string) *ignoreMatcher {
	patterns := []gitignore.Pattern{gitignore.ParsePattern(".git", nil)}

	// ReadPatterns walks the tree and collects every nested .gitignore.
	if found, err := gitignore.ReadPatterns(osfs.New(root), nil); err == nil {
		patterns = append(patterns, found...)
	}

	return &ignoreMatcher{matcher: gitignore.NewMatcher(patterns)}
}

// match reports whether the slash-separated path relative to the root is ignored.
func (im *ignoreMatcher) match(rel string, isDir bool) bool {
	if im == nil || rel == "" || rel == "." {
		return false
	}

	return im.matcher.Match(strings.Split(rel, "/"), isDir)
}
