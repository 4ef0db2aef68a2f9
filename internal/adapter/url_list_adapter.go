package adapter

import (
	"bufio"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/mdcover/internal/model"
)

var coverURLPattern = regexp.MustCompile(`^https?://`)

// URLListAdapter loads the candidate cover URLs.
type URLListAdapter interface {
	// Load returns the valid URLs listed in the file at path. Problems with
	// the file are logged and yield an empty list rather than an error.
	Load(path m.Path) []m.CoverURL
}

// LocalURLListAdapter reads a line-oriented URL file from disk.
type LocalURLListAdapter struct {
	logger *slog.Logger
}

// NewLocalURLListAdapter constructs a LocalURLListAdapter that reports
// skipped lines and read failures to logger.
func NewLocalURLListAdapter(logger *slog.Logger) *LocalURLListAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &LocalURLListAdapter{logger: logger}
}

// Load reads path line by line. Blank lines and lines starting with '#' are
// ignored; other lines must start with http:// or https://.
func (a *LocalURLListAdapter) Load(path m.Path) []m.CoverURL {
	// #nosec G304 - the URL list path is chosen by the operator
	f, err := os.Open(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Error("url list not found", "path", path)
		} else {
			a.logger.Error("failed to open url list", "path", path, "error", err)
		}

		return []m.CoverURL{}
	}

	defer func() { _ = f.Close() }()

	urls := []m.CoverURL{}
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		raw := scanner.Text()
		if !utf8.ValidString(raw) {
			a.logger.Error("url list is not valid UTF-8", "path", path, "line", lineNum)
			return []m.CoverURL{}
		}

		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !coverURLPattern.MatchString(line) {
			a.logger.Warn("skipping line that does not look like a URL", "path", path, "line", lineNum, "value", line)
			continue
		}

		urls = append(urls, m.CoverURL(line))
	}

	if err := scanner.Err(); err != nil {
		a.logger.Error("failed to read url list", "path", path, "error", err)
		return []m.CoverURL{}
	}

	a.logger.Info("loaded cover urls", "path", path, "count", len(urls))

	return urls
}
