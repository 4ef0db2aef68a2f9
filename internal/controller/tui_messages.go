package controller

import m "github.com/mouse-blink/mdcover/internal/model"

// Message types.
type scanInfoMsg struct {
	root      string
	documents int
	urls      int
}

type fileResultMsg struct {
	result m.FileResult
}

type summaryMsg struct {
	stats m.RunStats
}

type estimationMsg struct {
	results []m.FileResult
}

type restoreMsg struct {
	paths []string
	err   error
}

// finishedMsg is sent by Close once the workflow has nothing more to report.
type finishedMsg struct{}

// List item types.
type fileItem struct {
	path   string
	status string
	title  string
}

func (f fileItem) FilterValue() string {
	return f.path + " " + f.title
}
