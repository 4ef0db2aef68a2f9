// Package controller provides output adapters for displaying cover stamping results.
package controller

import (
	"io"
	"os"

	m "github.com/mouse-blink/mdcover/internal/model"
	"github.com/spf13/cobra"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeApply StartMode = iota
	ModeEstimate
	ModeRestore
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithApplyMode sets the UI to show progress while documents are edited.
func WithApplyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeApply
	}
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithRestoreMode sets the UI to backup restore mode.
func WithRestoreMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRestore
	}
}

// UI defines the interface for reporting a run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayScanInfo(root m.Path, documents int, urls int)
	DisplayFileResult(result m.FileResult)
	DisplaySummary(stats m.RunStats)
	DisplayEstimation(results []m.FileResult, err error) error
	DisplayRestore(restored []m.Path, err error) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
