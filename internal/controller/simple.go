package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/mdcover/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayScanInfo prints what is about to be processed.
func (s *SimpleUI) DisplayScanInfo(root m.Path, documents int, urls int) {
	s.printf("Scanning %s: %d document(s), %d cover url(s)\n", root, documents, urls)
}

// DisplayFileResult prints one progress line per document.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	switch result.Status {
	case m.StatusAdded:
		s.printf("added    %s  cover=%s\n", result.RelPath, result.Cover)
	case m.StatusSkipped:
		s.printf("skipped  %s  (%s)\n", result.RelPath, result.Reason)
	default:
		s.printf("error    %s  %v\n", result.RelPath, result.Err)
	}

	if result.BackupFailed {
		s.printf("warning  %s  backup could not be created\n", result.RelPath)
	}
}

// DisplaySummary prints the final counters.
func (s *SimpleUI) DisplaySummary(stats m.RunStats) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Directory", string(stats.Root)})
	table.Append([]string{"Processed", fmt.Sprintf("%d", stats.Processed)})
	table.Append([]string{"Covers added", fmt.Sprintf("%d", stats.Added)})
	table.Append([]string{"Skipped", fmt.Sprintf("%d", stats.Skipped)})
	table.Append([]string{"Errors", fmt.Sprintf("%d", stats.Errors)})

	if stats.BackupFailed > 0 {
		table.Append([]string{"Backup failures", fmt.Sprintf("%d (check file permissions)", stats.BackupFailed)})
	}

	table.Render()
	s.printf("\n=== Done ===\n%s", tableBuffer.String())
}

// DisplayEstimation prints the estimation results or error.
func (s *SimpleUI) DisplayEstimation(results []m.FileResult, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	if len(results) == 0 {
		s.printf("No documents found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Status", "Title"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	pending := 0

	for _, result := range results {
		if result.Status == m.StatusPending {
			pending++
		}

		table.Append([]string{string(result.RelPath), describeStatus(result), result.Title})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("Pending %d", pending),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRestore prints restored documents and any failures.
func (s *SimpleUI) DisplayRestore(restored []m.Path, err error) error {
	for _, path := range restored {
		s.printf("restored %s\n", path)
	}

	s.printf("Restored %d document(s)\n", len(restored))

	if err != nil {
		s.printf("restore error: %v\n", err)
		return err
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// describeStatus renders a result status for humans.
func describeStatus(result m.FileResult) string {
	switch result.Status {
	case m.StatusPending:
		return "needs cover"
	case m.StatusSkipped:
		return string(result.Reason)
	case m.StatusError:
		return "error"
	default:
		return string(result.Status)
	}
}
