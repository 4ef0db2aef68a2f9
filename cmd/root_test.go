package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mouse-blink/mdcover/internal/config"
	"github.com/mouse-blink/mdcover/internal/domain"
	domainmocks "github.com/mouse-blink/mdcover/internal/domain/mocks"
	m "github.com/mouse-blink/mdcover/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_PassesFlagsToApply(t *testing.T) {
	isolateEnv(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Apply(domain.ApplyArgs{
		ScanArgs: domain.ScanArgs{
			Root:             "content",
			Exclude:          []string{"drafts/**"},
			RespectGitignore: true,
		},
		URLs:        "pics.txt",
		FallbackURL: "https://img.example.com/fallback.png",
		NoBackup:    true,
		Spacer:      true,
	}).Return(m.RunStats{}, nil)

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{
		"--dir", "content",
		"--urls", "pics.txt",
		"--no-backup",
		"--spacer",
		"-x", "drafts/**",
		"--respect-gitignore",
		"--fallback-url", "https://img.example.com/fallback.png",
	})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_Defaults(t *testing.T) {
	isolateEnv(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Apply(mock.MatchedBy(func(args domain.ApplyArgs) bool {
		return args.Root == "." &&
			args.URLs == "urlspic.txt" &&
			args.FallbackURL == config.DefaultFallbackURL &&
			!args.NoBackup && !args.Spacer && len(args.Exclude) == 0
	})).Return(m.RunStats{}, nil)

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_EnvironmentOverridesDefaults(t *testing.T) {
	isolateEnv(t)
	t.Setenv("MDCOVER_DIR", "from-env")
	t.Setenv("MDCOVER_NO_BACKUP", "1")

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Apply(mock.MatchedBy(func(args domain.ApplyArgs) bool {
		return args.Root == "from-env" && args.NoBackup
	})).Return(m.RunStats{}, nil)

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ConfigFile(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "mdcover.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: from-file\nspacer: true\n"), 0o644))

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Apply(mock.MatchedBy(func(args domain.ApplyArgs) bool {
		return args.Root == "from-file" && args.Spacer
	})).Return(m.RunStats{}, nil)

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{"--config", path})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	isolateEnv(t)

	withWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{"--log-level", "loud"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRootCmd_WorkflowError(t *testing.T) {
	isolateEnv(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	boom := errors.New("boom")
	mockWorkflow.EXPECT().Apply(mock.Anything).Return(m.RunStats{}, boom)

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{})

	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	isolateEnv(t)

	withWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{"posts"})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_AddsCovers(t *testing.T) {
	isolateEnv(t)

	root := copyExampleTree(t, "blog")
	original := snapshotTree(t, root)

	cmd, out := newTestRootCmd()
	cmd.SetArgs([]string{"--dir", root, "--urls", filepath.Join(root, "urlspic.txt"), "--seed", "3"})

	require.NoError(t, cmd.Execute())

	output := out.String()
	for _, want := range []string{"Scanning", "5 document(s), 2 cover url(s)", "=== Done ===", "Covers added"} {
		assert.Contains(t, output, want)
	}

	added := []string{"drafts/draft.md", "posts/2024/no-header.markdown", "posts/hello-world.md"}
	for _, rel := range added {
		content := readTreeFile(t, root, rel)
		assert.True(t,
			strings.Contains(content, "cover: https://img.example.com/a.png") ||
				strings.Contains(content, "cover: https://img.example.com/b.jpg"),
			"%s has no cover:\n%s", rel, content)

		assert.Equal(t, original[rel], readTreeFile(t, root, rel+".bak"), "backup of %s", rel)
		assert.Contains(t, output, "added    "+filepath.FromSlash(rel))
	}

	for _, rel := range []string{"posts/with-cover.md", "posts/2024/UPPER.MD"} {
		assert.Equal(t, original[rel], readTreeFile(t, root, rel), "%s should be untouched", rel)
		assert.NoFileExists(t, filepath.Join(root, filepath.FromSlash(rel)+".bak"))
	}

	assert.Equal(t, original["assets/notes.txt"], readTreeFile(t, root, "assets/notes.txt"))

	hello := readTreeFile(t, root, "posts/hello-world.md")
	assert.True(t, strings.HasPrefix(hello, "---\ntitle: Hello World\ndate: 2024-01-05\ntags:\n  - intro\ncover: https://img.example.com/"), hello)

	noHeader := readTreeFile(t, root, "posts/2024/no-header.markdown")
	assert.True(t, strings.HasPrefix(noHeader, "---\ncover: https://img.example.com/"), noHeader)
	assert.True(t, strings.HasSuffix(noHeader, "---\n\n"+original["posts/2024/no-header.markdown"]), noHeader)
}

func TestRootCmd_SecondRunIsNoop(t *testing.T) {
	isolateEnv(t)

	root := copyExampleTree(t, "blog")
	urls := filepath.Join(root, "urlspic.txt")

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{"--dir", root, "--urls", urls, "--no-backup"})
	require.NoError(t, cmd.Execute())

	afterFirst := snapshotTree(t, root)

	cmd, out := newTestRootCmd()
	cmd.SetArgs([]string{"--dir", root, "--urls", urls, "--no-backup"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, afterFirst, snapshotTree(t, root))
	assert.NotContains(t, out.String(), "cover=")
	assert.Contains(t, out.String(), "(has-cover)")
}

func TestRootCmd_NoBackup(t *testing.T) {
	isolateEnv(t)

	root := copyExampleTree(t, "blog")

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{"--dir", root, "--urls", filepath.Join(root, "urlspic.txt"), "--no-backup"})
	require.NoError(t, cmd.Execute())

	for rel := range snapshotTree(t, root) {
		assert.False(t, strings.HasSuffix(rel, ".bak"), "unexpected backup %s", rel)
	}
}

func TestRootCmd_SeedIsDeterministic(t *testing.T) {
	isolateEnv(t)

	run := func() map[string]string {
		root := copyExampleTree(t, "blog")

		cmd, _ := newTestRootCmd()
		cmd.SetArgs([]string{"--dir", root, "--urls", filepath.Join(root, "urlspic.txt"), "--seed", "99", "--no-backup"})
		require.NoError(t, cmd.Execute())

		return snapshotTree(t, root)
	}

	assert.Equal(t, run(), run())
}

func TestRootCmd_MissingURLListUsesFallback(t *testing.T) {
	isolateEnv(t)

	root := copyExampleTree(t, "blog")

	var errBuf bytes.Buffer

	cmd, _ := newTestRootCmd()
	cmd.SetErr(&errBuf)
	cmd.SetArgs([]string{"--dir", root, "--urls", filepath.Join(root, "missing.txt"), "--no-backup"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, readTreeFile(t, root, "posts/hello-world.md"), "cover: "+config.DefaultFallbackURL+"\n")
	assert.Contains(t, errBuf.String(), "url list not found")
}

func TestRootCmd_MissingDir(t *testing.T) {
	isolateEnv(t)

	cmd, out := newTestRootCmd()
	cmd.SetArgs([]string{"--dir", filepath.Join(t.TempDir(), "nope")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRootNotFound)
	assert.NotContains(t, out.String(), "=== Done ===")
}

func TestRootCmd_DirIsAFile(t *testing.T) {
	isolateEnv(t)

	file := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cmd, _ := newTestRootCmd()
	cmd.SetArgs([]string{"--dir", file})

	assert.ErrorIs(t, cmd.Execute(), domain.ErrRootNotDir)
}

func TestExecuteHasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["list"], "list command not registered")
	assert.True(t, names["restore"], "restore command not registered")
}

// newTestRootCmd builds a fresh command tree writing to a buffer.
func newTestRootCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd(), newRestoreCmd())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, &out
}

func withWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf

	t.Cleanup(func() { workflow = original })
}

// isolateEnv keeps config files and MDCOVER_* variables of the machine out of the test.
func isolateEnv(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	for _, env := range os.Environ() {
		if strings.HasPrefix(env, config.EnvPrefix+"_") {
			t.Setenv(strings.SplitN(env, "=", 2)[0], "")
		}
	}
}

// copyExampleTree copies examples/<name> into a temp dir and returns its path.
func copyExampleTree(t *testing.T, name string) string {
	t.Helper()

	src := filepath.Join("..", "examples", name)
	dst := filepath.Join(t.TempDir(), name)

	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(target, content, 0o644)
	})
	require.NoError(t, err)

	return dst
}

// snapshotTree maps slash-separated relative paths to file contents.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()

	files := map[string]string{}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(rel)] = string(content)

		return nil
	})
	require.NoError(t, err)

	return files
}

func readTreeFile(t *testing.T, root, rel string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)

	return string(content)
}
