package domain

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/mdcover/internal/adapter"
	"github.com/mouse-blink/mdcover/internal/domain/frontmatter"
	m "github.com/mouse-blink/mdcover/internal/model"
)

// Orchestrator runs the per-document steps: read, inspect, back up, stamp
// and write. It never returns an error; failures are reported in the result.
type Orchestrator interface {
	// Inspect reads a document and reports whether it would receive a cover.
	Inspect(root, path m.Path) m.FileResult
	// Apply adds a cover to the document when it has none.
	Apply(root, path m.Path, opts ApplyOptions) m.FileResult
}

// ApplyOptions controls a single Apply call.
type ApplyOptions struct {
	URLs     []m.CoverURL
	NoBackup bool
	Spacer   bool
}

type orchestrator struct {
	fsAdapter adapter.DocumentFSAdapter
	picker    Picker
	logger    *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter and URL picker.
func NewOrchestrator(fsAdapter adapter.DocumentFSAdapter, picker Picker, logger *slog.Logger) Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		picker:    picker,
		logger:    logger,
	}
}

func (o *orchestrator) Inspect(root, path m.Path) m.FileResult {
	result := o.newResult(root, path)

	doc, err := o.load(path)
	if err != nil {
		return o.resultForLoadError(result, err)
	}

	result.Title = frontmatter.Title(doc.Content)

	if frontmatter.HasCover(doc.Content) {
		result.Status = m.StatusSkipped
		result.Reason = m.SkipHasCover

		return result
	}

	result.Status = m.StatusPending

	return result
}

func (o *orchestrator) Apply(root, path m.Path, opts ApplyOptions) m.FileResult {
	result := o.newResult(root, path)

	if len(opts.URLs) == 0 {
		result.Status = m.StatusError
		result.Err = errors.New("no cover urls available")

		return result
	}

	doc, err := o.load(path)
	if err != nil {
		return o.resultForLoadError(result, err)
	}

	if frontmatter.HasCover(doc.Content) {
		result.Status = m.StatusSkipped
		result.Reason = m.SkipHasCover

		return result
	}

	if !opts.NoBackup {
		if err := o.fsAdapter.CopyFile(path, adapter.BackupPath(path)); err != nil {
			o.logger.Warn("backup failed", "path", result.RelPath, "error", err)
			result.BackupFailed = true
		}
	}

	cover := o.picker.Pick(opts.URLs)

	var insertOpts []frontmatter.Option
	if opts.Spacer {
		insertOpts = append(insertOpts, frontmatter.WithSpacer())
	}

	content := frontmatter.AddCover(doc.Content, string(cover), insertOpts...)

	if err := o.fsAdapter.WriteFile(path, []byte(content)); err != nil {
		result.Status = m.StatusError
		result.Err = fmt.Errorf("failed to write document: %w", err)

		return result
	}

	result.Status = m.StatusAdded
	result.Cover = cover

	return result
}

func (o *orchestrator) newResult(root, path m.Path) m.FileResult {
	rel, err := o.fsAdapter.RelPath(root, path)
	if err != nil {
		rel = path
	}

	return m.FileResult{Path: path, RelPath: rel}
}

func (o *orchestrator) load(path m.Path) (m.Document, error) {
	raw, err := o.fsAdapter.ReadFile(path)
	if err != nil {
		return m.Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	content, encoding, err := adapter.Decode(raw)
	if err != nil {
		return m.Document{}, err
	}

	return m.Document{Path: path, Content: content, Encoding: encoding}, nil
}

func (o *orchestrator) resultForLoadError(result m.FileResult, err error) m.FileResult {
	if errors.Is(err, adapter.ErrUnsupportedEncoding) {
		result.Status = m.StatusSkipped
		result.Reason = m.SkipUnsupportedEncoding

		return result
	}

	result.Status = m.StatusError
	result.Err = err

	return result
}
