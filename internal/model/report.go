package model

// FileStatus is the outcome category of a single document.
type FileStatus string

const (
	// StatusAdded means a cover declaration was written to the document.
	StatusAdded FileStatus = "added"
	// StatusSkipped means the document was left untouched.
	StatusSkipped FileStatus = "skipped"
	// StatusError means processing failed part-way.
	StatusError FileStatus = "error"
	// StatusPending means the document has no cover yet. Only reported by
	// read-only estimation.
	StatusPending FileStatus = "pending"
)

// SkipReason explains why a document was skipped.
type SkipReason string

const (
	// SkipHasCover means the front matter already declares a cover.
	SkipHasCover SkipReason = "has-cover"
	// SkipUnsupportedEncoding means the file is neither UTF-8 nor GBK.
	SkipUnsupportedEncoding SkipReason = "unsupported-encoding"
)

// FileResult holds the outcome of processing one document.
type FileResult struct {
	Path         Path
	RelPath      Path
	Status       FileStatus
	Reason       SkipReason // set when Status is StatusSkipped
	Cover        CoverURL   // the URL written (apply) or that would be written (estimate)
	Title        string     // front matter title, when one could be decoded
	BackupFailed bool
	Err          error
}

// RunStats accumulates counters for a single invocation.
type RunStats struct {
	Root         Path
	Processed    int
	Added        int
	Skipped      int
	Errors       int
	BackupFailed int
}

// Record folds a file result into the counters. Exactly one of Added,
// Skipped or Errors is incremented per call.
func (s *RunStats) Record(result FileResult) {
	s.Processed++

	switch result.Status {
	case StatusAdded:
		s.Added++
	case StatusSkipped:
		s.Skipped++
	default:
		s.Errors++
	}

	if result.BackupFailed {
		s.BackupFailed++
	}
}
