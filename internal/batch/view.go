package batch

import (
	"github.com/ytget/yt-batch/internal/download"
)

// StatusKind selects the status line message
type StatusKind int

const (
	StatusReady StatusKind = iota
	StatusPreparing
	StatusDownloading
	StatusProcessing
	StatusDownloadError
	StatusItemRenamed
	StatusItemComplete
	StatusAllComplete
)

// Status is a status line update; the view renders it as text
type Status struct {
	Kind     StatusKind
	Index    int     // 1-based item position, 0 when not item specific
	Total    int     // batch size
	Percent  float64 // downloading only
	Speed    float64 // bytes per second, downloading only
	FileName string  // renamed file, StatusItemRenamed only
}

// Summary describes a finished batch
type Summary struct {
	BatchID   string
	OutputDir string
	Total     int
	Failed    int
}

// View is the UI surface driven by the controller. Every call comes from the
// controller loop goroutine; implementations marshal onto their UI thread.
type View interface {
	SetStatus(Status)
	SetProgress(percent float64)
	SetControlsEnabled(enabled bool)
	ClearDoneMarkers()
	MarkLineDone(line int)
	// ShowFailure reports a failed item. The batch resumes only after ack is
	// called, once the user has dismissed the report.
	ShowFailure(f download.Failure, ack func())
	BatchFinished(Summary)
}
