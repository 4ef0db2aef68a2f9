package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/mdcover/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	started bool
	closed  bool
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{mode: ModeApply}
	for _, option := range options {
		option(cfg)
	}

	switch cfg.mode {
	case ModeEstimate:
		return t.startWithModel(newEstimateModel())
	case ModeRestore:
		return t.startWithModel(newRestoreModel(), tea.WithInput(nil))
	default:
		return t.startWithModel(newApplyModel(), tea.WithInput(nil))
	}
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	if t.started {
		return nil
	}

	opts = append([]tea.ProgramOption{tea.WithOutput(t.output)}, opts...)

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true
	t.closed = false

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			_, _ = fmt.Fprintf(t.output, "ui error: %v\n", err)
		}
	}()

	return nil
}

// send forwards msg to the running program; it is a no-op before Start.
func (t *TUI) send(msg tea.Msg) {
	if !t.started || t.program == nil {
		return
	}

	t.program.Send(msg)
}

// Close tells the program the run is over and waits for it to exit.
func (t *TUI) Close() {
	if !t.started || t.closed {
		return
	}

	t.send(finishedMsg{})
	t.Wait()

	t.closed = true
	t.started = false
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	if !t.started || t.done == nil {
		return
	}

	<-t.done
}

// DisplayScanInfo shows the root and the amount of work ahead.
func (t *TUI) DisplayScanInfo(root m.Path, documents int, urls int) {
	t.send(scanInfoMsg{root: string(root), documents: documents, urls: urls})
}

// DisplayFileResult advances the progress bar.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.send(fileResultMsg{result: result})
}

// DisplaySummary shows the final counters.
func (t *TUI) DisplaySummary(stats m.RunStats) {
	t.send(summaryMsg{stats: stats})
}

// DisplayEstimation fills the interactive document list.
func (t *TUI) DisplayEstimation(results []m.FileResult, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "estimation error: %v\n", err)

		return err
	}

	t.send(estimationMsg{results: results})

	return nil
}

// DisplayRestore shows the restored documents.
func (t *TUI) DisplayRestore(restored []m.Path, err error) error {
	paths := make([]string, 0, len(restored))
	for _, path := range restored {
		paths = append(paths, string(path))
	}

	t.send(restoreMsg{paths: paths, err: err})

	return err
}
