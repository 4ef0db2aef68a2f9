// Package domain contains the cover stamping workflow and per-document logic.
package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/mdcover/internal/adapter"
	"github.com/mouse-blink/mdcover/internal/controller"
	m "github.com/mouse-blink/mdcover/internal/model"
)

var (
	// ErrRootNotFound is returned when the directory to scan does not exist.
	ErrRootNotFound = errors.New("directory does not exist")
	// ErrRootNotDir is returned when the path to scan is not a directory.
	ErrRootNotDir = errors.New("not a directory")
)

// ScanArgs selects the documents a command works on.
type ScanArgs struct {
	Root             m.Path
	Exclude          []string
	RespectGitignore bool
}

// ApplyArgs holds the arguments for Apply.
type ApplyArgs struct {
	ScanArgs
	URLs        m.Path
	FallbackURL m.CoverURL
	NoBackup    bool
	Spacer      bool
}

// EstimateArgs holds the arguments for Estimate.
type EstimateArgs struct {
	ScanArgs
	Threads int
}

// RestoreArgs holds the arguments for Restore.
type RestoreArgs struct {
	ScanArgs
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	// Apply stamps a cover on every document under the root that lacks one.
	Apply(args ApplyArgs) (m.RunStats, error)
	// Estimate reports, without writing, which documents would get a cover.
	Estimate(args EstimateArgs) ([]m.FileResult, error)
	// Restore copies every document backup over its document and removes it.
	Restore(args RestoreArgs) ([]m.Path, error)
}

type workflow struct {
	fsAdapter  adapter.DocumentFSAdapter
	urlAdapter adapter.URLListAdapter
	ui         controller.UI
	orch       Orchestrator
	logger     *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.DocumentFSAdapter,
	urlAdapter adapter.URLListAdapter,
	ui controller.UI,
	orch Orchestrator,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter:  fsAdapter,
		urlAdapter: urlAdapter,
		ui:         ui,
		orch:       orch,
		logger:     logger,
	}
}

func (w *workflow) Apply(args ApplyArgs) (m.RunStats, error) {
	root, docs, err := w.scan(args.ScanArgs)
	if err != nil {
		return m.RunStats{}, err
	}

	urls := w.urlAdapter.Load(args.URLs)
	if len(urls) == 0 {
		w.logger.Warn("no usable cover urls, using fallback", "url", args.FallbackURL)
		urls = []m.CoverURL{args.FallbackURL}
	}

	if err := w.ui.Start(controller.WithApplyMode()); err != nil {
		return m.RunStats{}, err
	}
	defer w.ui.Close()

	w.ui.DisplayScanInfo(args.Root, len(docs), len(urls))

	stats := m.RunStats{Root: args.Root}
	opts := ApplyOptions{URLs: urls, NoBackup: args.NoBackup, Spacer: args.Spacer}

	for _, doc := range docs {
		result := w.orch.Apply(root, doc, opts)
		stats.Record(result)
		w.logResult(result)
		w.ui.DisplayFileResult(result)
	}

	w.ui.DisplaySummary(stats)

	return stats, nil
}

func (w *workflow) Estimate(args EstimateArgs) ([]m.FileResult, error) {
	root, docs, err := w.scan(args.ScanArgs)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	// Each goroutine writes only its own slot, so results keep discovery order.
	results := make([]m.FileResult, len(docs))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, doc := range docs {
		g.Go(func() error {
			results[i] = w.orch.Inspect(root, doc)
			return nil
		})
	}

	_ = g.Wait()

	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return nil, err
	}
	defer w.ui.Close()

	return results, w.ui.DisplayEstimation(results, nil)
}

func (w *workflow) Restore(args RestoreArgs) ([]m.Path, error) {
	root, docs, err := w.scan(args.ScanArgs)
	if err != nil {
		return nil, err
	}

	var (
		restored []m.Path
		errs     []error
	)

	for _, doc := range docs {
		backup := adapter.BackupPath(doc)

		if _, err := w.fsAdapter.FileInfo(backup); err != nil {
			continue
		}

		rel, relErr := w.fsAdapter.RelPath(root, doc)
		if relErr != nil {
			rel = doc
		}

		if err := w.fsAdapter.CopyFile(backup, doc); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", rel, err))
			continue
		}

		if err := w.fsAdapter.RemoveFile(backup); err != nil {
			errs = append(errs, fmt.Errorf("remove backup of %s: %w", rel, err))
		}

		w.logger.Debug("restored document", "path", rel)
		restored = append(restored, rel)
	}

	restoreErr := errors.Join(errs...)

	if err := w.ui.Start(controller.WithRestoreMode()); err != nil {
		return nil, err
	}
	defer w.ui.Close()

	if err := w.ui.DisplayRestore(restored, restoreErr); err != nil {
		return restored, err
	}

	return restored, nil
}

// scan validates the root and discovers the documents below it.
func (w *workflow) scan(args ScanArgs) (m.Path, []m.Path, error) {
	root, err := w.resolveRoot(args.Root)
	if err != nil {
		return "", nil, err
	}

	docs, err := w.fsAdapter.Get(root, adapter.GetOptions{
		Exclude:          args.Exclude,
		RespectGitignore: args.RespectGitignore,
	})
	if err != nil {
		return "", nil, err
	}

	w.logger.Debug("discovered documents", "root", root, "count", len(docs))

	return root, docs, nil
}

func (w *workflow) resolveRoot(root m.Path) (m.Path, error) {
	if root == "" {
		root = "."
	}

	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", root, ErrRootNotFound)
		}

		return "", fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", root, ErrRootNotDir)
	}

	return m.Path(filepath.Clean(string(root))), nil
}

func (w *workflow) logResult(result m.FileResult) {
	switch result.Status {
	case m.StatusError:
		w.logger.Error("failed to process document", "path", result.RelPath, "error", result.Err)
	case m.StatusSkipped:
		w.logger.Debug("skipped document", "path", result.RelPath, "reason", result.Reason)
	default:
		w.logger.Debug("added cover", "path", result.RelPath, "cover", result.Cover)
	}
}
