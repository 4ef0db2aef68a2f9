// Package adapter contains filesystem and resource-list adapters for the mdcover CLI.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "github.com/mouse-blink/mdcover/internal/model"
)

// BackupSuffix is appended to a document path to name its backup copy.
const BackupSuffix = ".bak"

// DocumentExtensions lists the file extensions treated as Markdown documents.
// Matching is case-insensitive.
var DocumentExtensions = []string{".md", ".markdown"}

// DocumentFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and editing a document tree. It hides direct `os`
// access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type DocumentFSAdapter interface {
	// Get collects document paths under root, in lexical order.
	Get(root m.Path, opts GetOptions) ([]m.Path, error)

	// Walk traverses root recursively.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of path, keeping its permissions when it exists.
	WriteFile(path m.Path, content []byte) error

	// CopyFile copies src to dst byte for byte, keeping the source mode.
	CopyFile(src, dst m.Path) error

	// RemoveFile deletes a single file.
	RemoveFile(path m.Path) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// GetOptions narrows document discovery.
type GetOptions struct {
	// Exclude holds doublestar patterns matched against slash-separated paths
	// relative to the root. A matching directory is not descended into.
	Exclude []string
	// RespectGitignore skips paths ignored by .gitignore files under the root.
	RespectGitignore bool
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalDocumentFSAdapter is the os-backed DocumentFSAdapter.
type LocalDocumentFSAdapter struct{}

// NewLocalDocumentFSAdapter constructs a LocalDocumentFSAdapter instance ready to
// be wired into the workflow.
func NewLocalDocumentFSAdapter() *LocalDocumentFSAdapter {
	return &LocalDocumentFSAdapter{}
}

// Get walks root and returns every Markdown document that is not excluded.
// Unreadable entries below the root are skipped; an unreadable root is an error.
func (a *LocalDocumentFSAdapter) Get(root m.Path, opts GetOptions) ([]m.Path, error) {
	rootStr := string(root)

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	var ignored *ignoreMatcher
	if opts.RespectGitignore {
		ignored = newIgnoreMatcher(rootStr)
	}

	var docs []m.Path

	err := a.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == rootStr {
				return err
			}

			return nil
		}

		if path == rootStr {
			return nil
		}

		rel, err := filepath.Rel(rootStr, path)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)

		if isExcluded(rel, opts.Exclude) || ignored.match(rel, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || !IsDocument(path) {
			return nil
		}

		docs = append(docs, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	return docs, nil
}

// Walk iterates over every file and directory under root.
func (a *LocalDocumentFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), filepath.WalkFunc(fn))
}

// ReadFile loads file contents from disk.
func (a *LocalDocumentFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from walking the user-selected root
	return os.ReadFile(string(path))
}

// WriteFile writes content to path preserving the existing file mode when possible.
// When the file does not exist, it uses a default of 0644.
func (a *LocalDocumentFSAdapter) WriteFile(path m.Path, content []byte) error {
	var mode os.FileMode = 0o644
	if st, err := os.Stat(string(path)); err == nil {
		if perm := st.Mode().Perm(); perm != 0 {
			mode = perm
		}
	}

	return os.WriteFile(string(path), content, mode)
}

// CopyFile copies a single file.
func (a *LocalDocumentFSAdapter) CopyFile(src, dst m.Path) error {
	// #nosec G304 - src is a document discovered under the root
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	// #nosec G304 - dst is derived from src
	destFile, err := os.OpenFile(string(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	return destFile.Close()
}

// RemoveFile removes a single file.
func (a *LocalDocumentFSAdapter) RemoveFile(path m.Path) error {
	return os.Remove(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalDocumentFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalDocumentFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// IsDocument reports whether path has a Markdown extension.
func IsDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range DocumentExtensions {
		if ext == want {
			return true
		}
	}

	return false
}

// BackupPath returns the sibling backup path for a document.
func BackupPath(path m.Path) m.Path {
	return path + BackupSuffix
}

func isExcluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}
