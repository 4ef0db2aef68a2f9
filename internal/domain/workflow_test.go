package domain_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mouse-blink/mdcover/internal/adapter"
	adaptermocks "github.com/mouse-blink/mdcover/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/mdcover/internal/controller/mocks"
	"github.com/mouse-blink/mdcover/internal/domain"
	domainmocks "github.com/mouse-blink/mdcover/internal/domain/mocks"
	m "github.com/mouse-blink/mdcover/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const fallbackURL = m.CoverURL("https://img.example.com/fallback.png")

func newLocalWorkflow(ui *controllermocks.MockUI, seed uint64) domain.Workflow {
	fsAdapter := adapter.NewLocalDocumentFSAdapter()

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewLocalURLListAdapter(nil),
		ui,
		domain.NewOrchestrator(fsAdapter, domain.NewRandomPicker(seed), nil),
		nil,
	)
}

func expectLifecycle(ui *controllermocks.MockUI) {
	ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	ui.EXPECT().Close().Return().Once()
}

func TestWorkflow_Apply_ExampleTree(t *testing.T) {
	root := copyExampleDir(t, "blog")
	ui := controllermocks.NewMockUI(t)
	wf := newLocalWorkflow(ui, 5)

	expectLifecycle(ui)
	ui.EXPECT().DisplayScanInfo(m.Path(root), 5, 2).Return()
	ui.EXPECT().DisplayFileResult(mock.Anything).Return().Times(5)
	ui.EXPECT().DisplaySummary(m.RunStats{Root: m.Path(root), Processed: 5, Added: 3, Skipped: 2}).Return()

	stats, err := wf.Apply(domain.ApplyArgs{
		ScanArgs:    domain.ScanArgs{Root: m.Path(root)},
		URLs:        m.Path(filepath.Join(root, "urlspic.txt")),
		FallbackURL: fallbackURL,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Processed)
	assert.Equal(t, 3, stats.Added)
	assert.Equal(t, 2, stats.Skipped)
	assert.Zero(t, stats.Errors)
	assert.Equal(t, stats.Processed, stats.Added+stats.Skipped+stats.Errors)

	for _, rel := range []string{"drafts/draft.md", "posts/2024/no-header.markdown", "posts/hello-world.md"} {
		assert.FileExists(t, filepath.Join(root, filepath.FromSlash(rel)+adapter.BackupSuffix))
	}
}

func TestWorkflow_Apply_ReportsResultsInOrder(t *testing.T) {
	root := copyExampleDir(t, "blog")
	ui := controllermocks.NewMockUI(t)
	wf := newLocalWorkflow(ui, 5)

	var seen []m.FileResult

	expectLifecycle(ui)
	ui.EXPECT().DisplayScanInfo(mock.Anything, mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayFileResult(mock.Anything).Run(func(result m.FileResult) {
		seen = append(seen, result)
	}).Return()
	ui.EXPECT().DisplaySummary(mock.Anything).Return()

	_, err := wf.Apply(domain.ApplyArgs{
		ScanArgs:    domain.ScanArgs{Root: m.Path(root)},
		URLs:        m.Path(filepath.Join(root, "urlspic.txt")),
		FallbackURL: fallbackURL,
		NoBackup:    true,
	})
	require.NoError(t, err)

	require.Len(t, seen, 5)

	want := []struct {
		rel    string
		status m.FileStatus
	}{
		{"drafts/draft.md", m.StatusAdded},
		{"posts/2024/UPPER.MD", m.StatusSkipped},
		{"posts/2024/no-header.markdown", m.StatusAdded},
		{"posts/hello-world.md", m.StatusAdded},
		{"posts/with-cover.md", m.StatusSkipped},
	}

	for i, w := range want {
		assert.Equal(t, m.Path(filepath.FromSlash(w.rel)), seen[i].RelPath)
		assert.Equal(t, w.status, seen[i].Status, w.rel)

		if w.status == m.StatusAdded {
			assert.Contains(t, []m.CoverURL{"https://img.example.com/a.png", "https://img.example.com/b.jpg"}, seen[i].Cover)
		}
	}
}

func TestWorkflow_Apply_RootErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	for name, tc := range map[string]struct {
		root string
		want error
	}{
		"missing":       {filepath.Join(t.TempDir(), "missing"), domain.ErrRootNotFound},
		"not directory": {file, domain.ErrRootNotDir},
	} {
		t.Run(name, func(t *testing.T) {
			ui := controllermocks.NewMockUI(t)
			wf := newLocalWorkflow(ui, 1)

			_, err := wf.Apply(domain.ApplyArgs{ScanArgs: domain.ScanArgs{Root: m.Path(tc.root)}, FallbackURL: fallbackURL})
			require.ErrorIs(t, err, tc.want)

			_, err = wf.Estimate(domain.EstimateArgs{ScanArgs: domain.ScanArgs{Root: m.Path(tc.root)}})
			require.ErrorIs(t, err, tc.want)

			_, err = wf.Restore(domain.RestoreArgs{ScanArgs: domain.ScanArgs{Root: m.Path(tc.root)}})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWorkflow_Apply_EmptyURLListUsesFallback(t *testing.T) {
	root := t.TempDir()
	doc := m.Path(filepath.Join(root, "a.md"))
	require.NoError(t, os.WriteFile(string(doc), []byte("x"), 0o644))

	fsAdapter := adaptermocks.NewMockDocumentFSAdapter(t)
	urlAdapter := adaptermocks.NewMockURLListAdapter(t)
	orch := domainmocks.NewMockOrchestrator(t)
	ui := controllermocks.NewMockUI(t)

	info, err := os.Stat(root)
	require.NoError(t, err)

	fsAdapter.EXPECT().FileInfo(m.Path(root)).Return(info, nil)
	fsAdapter.EXPECT().Get(m.Path(root), adapter.GetOptions{}).Return([]m.Path{doc}, nil)
	urlAdapter.EXPECT().Load(m.Path("urls.txt")).Return(nil)
	orch.EXPECT().Apply(m.Path(root), doc, domain.ApplyOptions{URLs: []m.CoverURL{fallbackURL}}).
		Return(m.FileResult{Path: doc, RelPath: "a.md", Status: m.StatusAdded, Cover: fallbackURL})

	expectLifecycle(ui)
	ui.EXPECT().DisplayScanInfo(m.Path(root), 1, 1).Return()
	ui.EXPECT().DisplayFileResult(mock.Anything).Return()
	ui.EXPECT().DisplaySummary(mock.Anything).Return()

	wf := domain.NewWorkflow(fsAdapter, urlAdapter, ui, orch, nil)

	stats, err := wf.Apply(domain.ApplyArgs{
		ScanArgs:    domain.ScanArgs{Root: m.Path(root)},
		URLs:        "urls.txt",
		FallbackURL: fallbackURL,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Added)
}

func TestWorkflow_Apply_CountsEveryOutcome(t *testing.T) {
	root := t.TempDir()
	docs := []m.Path{"a.md", "b.md", "c.md", "d.md"}

	fsAdapter := adaptermocks.NewMockDocumentFSAdapter(t)
	urlAdapter := adaptermocks.NewMockURLListAdapter(t)
	orch := domainmocks.NewMockOrchestrator(t)
	ui := controllermocks.NewMockUI(t)

	info, err := os.Stat(root)
	require.NoError(t, err)

	fsAdapter.EXPECT().FileInfo(m.Path(root)).Return(info, nil)
	fsAdapter.EXPECT().Get(m.Path(root), adapter.GetOptions{Exclude: []string{"drafts"}, RespectGitignore: true}).Return(docs, nil)
	urlAdapter.EXPECT().Load(m.Path("urls.txt")).Return([]m.CoverURL{"https://x/1.png"})

	opts := domain.ApplyOptions{URLs: []m.CoverURL{"https://x/1.png"}, NoBackup: true, Spacer: true}
	orch.EXPECT().Apply(m.Path(root), m.Path("a.md"), opts).Return(m.FileResult{Status: m.StatusAdded, BackupFailed: true})
	orch.EXPECT().Apply(m.Path(root), m.Path("b.md"), opts).Return(m.FileResult{Status: m.StatusSkipped, Reason: m.SkipHasCover})
	orch.EXPECT().Apply(m.Path(root), m.Path("c.md"), opts).Return(m.FileResult{Status: m.StatusError, Err: errors.New("boom")})
	orch.EXPECT().Apply(m.Path(root), m.Path("d.md"), opts).Return(m.FileResult{Status: m.StatusSkipped, Reason: m.SkipUnsupportedEncoding})

	expectLifecycle(ui)
	ui.EXPECT().DisplayScanInfo(m.Path(root), 4, 1).Return()
	ui.EXPECT().DisplayFileResult(mock.Anything).Return().Times(4)

	want := m.RunStats{Root: m.Path(root), Processed: 4, Added: 1, Skipped: 2, Errors: 1, BackupFailed: 1}
	ui.EXPECT().DisplaySummary(want).Return()

	wf := domain.NewWorkflow(fsAdapter, urlAdapter, ui, orch, nil)

	stats, err := wf.Apply(domain.ApplyArgs{
		ScanArgs: domain.ScanArgs{
			Root:             m.Path(root),
			Exclude:          []string{"drafts"},
			RespectGitignore: true,
		},
		URLs:        "urls.txt",
		FallbackURL: fallbackURL,
		NoBackup:    true,
		Spacer:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, want, stats)
}

func TestWorkflow_Apply_DiscoveryError(t *testing.T) {
	root := t.TempDir()

	fsAdapter := adaptermocks.NewMockDocumentFSAdapter(t)
	info, err := os.Stat(root)
	require.NoError(t, err)

	boom := errors.New("invalid exclude pattern")
	fsAdapter.EXPECT().FileInfo(m.Path(root)).Return(info, nil)
	fsAdapter.EXPECT().Get(m.Path(root), mock.Anything).Return(nil, boom)

	wf := domain.NewWorkflow(fsAdapter, adaptermocks.NewMockURLListAdapter(t), controllermocks.NewMockUI(t), domainmocks.NewMockOrchestrator(t), nil)

	_, err = wf.Apply(domain.ApplyArgs{ScanArgs: domain.ScanArgs{Root: m.Path(root)}})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_Apply_UIStartError(t *testing.T) {
	root := copyExampleDir(t, "blog")
	ui := controllermocks.NewMockUI(t)
	wf := newLocalWorkflow(ui, 1)

	boom := errors.New("no terminal")
	ui.EXPECT().Start(mock.Anything).Return(boom)

	_, err := wf.Apply(domain.ApplyArgs{ScanArgs: domain.ScanArgs{Root: m.Path(root)}, FallbackURL: fallbackURL})
	require.ErrorIs(t, err, boom)

	// Nothing was written.
	assert.NoFileExists(t, filepath.Join(root, "posts", "hello-world.md"+adapter.BackupSuffix))
}

func TestWorkflow_Estimate(t *testing.T) {
	for _, threads := range []int{0, 1, 4} {
		root := copyExampleDir(t, "blog")
		ui := controllermocks.NewMockUI(t)
		wf := newLocalWorkflow(ui, 1)

		expectLifecycle(ui)
		ui.EXPECT().DisplayEstimation(mock.Anything, nil).Return(nil)

		results, err := wf.Estimate(domain.EstimateArgs{ScanArgs: domain.ScanArgs{Root: m.Path(root)}, Threads: threads})
		require.NoError(t, err)
		require.Len(t, results, 5)

		assert.Equal(t, m.Path(filepath.Join("drafts", "draft.md")), results[0].RelPath)
		assert.Equal(t, m.StatusPending, results[0].Status)
		assert.Equal(t, "Draft", results[0].Title)
		assert.Equal(t, m.StatusSkipped, results[1].Status)
		assert.Equal(t, m.StatusPending, results[2].Status)
		assert.Equal(t, "Hello World", results[3].Title)
		assert.Equal(t, m.SkipHasCover, results[4].Reason)

		// Estimation never writes.
		_, err = os.Stat(filepath.Join(root, "drafts", "draft.md"+adapter.BackupSuffix))
		assert.True(t, os.IsNotExist(err))
	}
}

func TestWorkflow_Estimate_UIError(t *testing.T) {
	root := copyExampleDir(t, "blog")
	ui := controllermocks.NewMockUI(t)
	wf := newLocalWorkflow(ui, 1)

	boom := errors.New("render failed")
	expectLifecycle(ui)
	ui.EXPECT().DisplayEstimation(mock.Anything, nil).Return(boom)

	_, err := wf.Estimate(domain.EstimateArgs{ScanArgs: domain.ScanArgs{Root: m.Path(root)}})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_Restore_RoundTrip(t *testing.T) {
	root := copyExampleDir(t, "blog")
	original := readTree(t, root)

	applyUI := controllermocks.NewMockUI(t)
	expectLifecycle(applyUI)
	applyUI.EXPECT().DisplayScanInfo(mock.Anything, mock.Anything, mock.Anything).Return()
	applyUI.EXPECT().DisplayFileResult(mock.Anything).Return()
	applyUI.EXPECT().DisplaySummary(mock.Anything).Return()

	_, err := newLocalWorkflow(applyUI, 1).Apply(domain.ApplyArgs{
		ScanArgs:    domain.ScanArgs{Root: m.Path(root)},
		URLs:        m.Path(filepath.Join(root, "urlspic.txt")),
		FallbackURL: fallbackURL,
	})
	require.NoError(t, err)
	require.NotEqual(t, original, readTree(t, root))

	restoreUI := controllermocks.NewMockUI(t)
	expectLifecycle(restoreUI)
	restoreUI.EXPECT().DisplayRestore(mock.Anything, nil).Return(nil)

	restored, err := newLocalWorkflow(restoreUI, 1).Restore(domain.RestoreArgs{ScanArgs: domain.ScanArgs{Root: m.Path(root)}})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join("drafts", "draft.md")),
		m.Path(filepath.Join("posts", "2024", "no-header.markdown")),
		m.Path(filepath.Join("posts", "hello-world.md")),
	}, restored)
	assert.Equal(t, original, readTree(t, root))
}

func TestWorkflow_Restore_CollectsErrors(t *testing.T) {
	root := t.TempDir()
	info, err := os.Stat(root)
	require.NoError(t, err)

	docA := m.Path(filepath.Join(root, "a.md"))
	docB := m.Path(filepath.Join(root, "b.md"))
	docC := m.Path(filepath.Join(root, "c.md"))

	fsAdapter := adaptermocks.NewMockDocumentFSAdapter(t)
	ui := controllermocks.NewMockUI(t)

	copyErr := errors.New("copy failed")
	removeErr := errors.New("remove failed")

	fsAdapter.EXPECT().FileInfo(m.Path(root)).Return(info, nil)
	fsAdapter.EXPECT().Get(m.Path(root), adapter.GetOptions{}).Return([]m.Path{docA, docB, docC}, nil)
	fsAdapter.EXPECT().FileInfo(adapter.BackupPath(docA)).Return(info, nil)
	fsAdapter.EXPECT().FileInfo(adapter.BackupPath(docB)).Return(info, nil)
	fsAdapter.EXPECT().FileInfo(adapter.BackupPath(docC)).Return(nil, os.ErrNotExist)
	fsAdapter.EXPECT().RelPath(m.Path(root), docA).Return("a.md", nil)
	fsAdapter.EXPECT().RelPath(m.Path(root), docB).Return("b.md", nil)
	fsAdapter.EXPECT().CopyFile(adapter.BackupPath(docA), docA).Return(copyErr)
	fsAdapter.EXPECT().CopyFile(adapter.BackupPath(docB), docB).Return(nil)
	fsAdapter.EXPECT().RemoveFile(adapter.BackupPath(docB)).Return(removeErr)

	expectLifecycle(ui)
	ui.EXPECT().DisplayRestore([]m.Path{"b.md"}, mock.Anything).
		RunAndReturn(func(_ []m.Path, err error) error { return err })

	wf := domain.NewWorkflow(fsAdapter, adaptermocks.NewMockURLListAdapter(t), ui, domainmocks.NewMockOrchestrator(t), nil)

	restored, err := wf.Restore(domain.RestoreArgs{ScanArgs: domain.ScanArgs{Root: m.Path(root)}})
	require.Error(t, err)
	assert.ErrorIs(t, err, copyErr)
	assert.ErrorIs(t, err, removeErr)
	assert.Equal(t, []m.Path{"b.md"}, restored)
}

// copyExampleDir copies examples/<name> into a temp dir and returns its path.
func copyExampleDir(t *testing.T, name string) string {
	t.Helper()

	src := filepath.Join("..", "..", "examples", name)
	dst := filepath.Join(t.TempDir(), name)

	require.NoError(t, os.CopyFS(dst, os.DirFS(src)))

	return dst
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()

	files := map[string]string{}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(rel)] = string(content)

		return nil
	})
	require.NoError(t, err)

	return files
}
