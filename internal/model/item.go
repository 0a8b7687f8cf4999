package model

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ItemIDPrefix prefixes queue item identifiers in logs
const ItemIDPrefix = "item-"

// QueueItem is one URL awaiting processing
type QueueItem struct {
	ID   string // log correlation id
	URL  string // trimmed URL text
	Line int    // 1-based line number in the URL input
}

// NewQueueItem creates a queue item for the URL found on the given input line
func NewQueueItem(url string, line int) QueueItem {
	return QueueItem{
		ID:   generateItemID(),
		URL:  url,
		Line: line,
	}
}

// DownloadResult is produced by one worker run and consumed by the status line
type DownloadResult struct {
	Title      string // title reported by the extractor, unsanitized
	SourcePath string // file written by the extractor
	TargetPath string // final path after rename, empty if not renamed
	Renamed    bool
}

// Outcome maps the result to an item outcome
func (r *DownloadResult) Outcome() ItemOutcome {
	if r == nil {
		return ItemOutcomeFailed
	}
	if r.Renamed {
		return ItemOutcomeRenamed
	}
	return ItemOutcomeDownloaded
}

// FileName returns the base name of the final file, or of the source when not renamed
func (r *DownloadResult) FileName() string {
	if r == nil {
		return ""
	}
	if r.TargetPath != "" {
		return filepath.Base(r.TargetPath)
	}
	if r.SourcePath != "" {
		return filepath.Base(r.SourcePath)
	}
	return ""
}

// generateItemID generates a time-ordered item id
func generateItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(ItemIDPrefix+"%d", time.Now().UnixNano())
	}
	return ItemIDPrefix + id.String()
}
