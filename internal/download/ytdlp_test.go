package download

import (
	"testing"

	"github.com/lrstanley/go-ytdlp"
)

func TestConvertProgress(t *testing.T) {
	tests := []struct {
		name     string
		status   ytdlp.ProgressStatus
		expected ProgressStatus
	}{
		{"downloading", ytdlp.ProgressStatusDownloading, ProgressDownloading},
		{"finished", ytdlp.ProgressStatusFinished, ProgressFinished},
		{"error", ytdlp.ProgressStatusError, ProgressError},
		{"post processing", ytdlp.ProgressStatusPostProcessing, ProgressFinished},
		{"starting", ytdlp.ProgressStatusStarting, ProgressDownloading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := ytdlp.ProgressUpdate{
				Status:          tt.status,
				DownloadedBytes: 250,
				TotalBytes:      1000,
				Filename:        "/tmp/out.mp4",
			}
			p := convertProgress(&update)

			if p.Status != tt.expected {
				t.Errorf("Status = %s, expected %s", p.Status, tt.expected)
			}
			if p.Percent() != 25 {
				t.Errorf("Percent() = %v, expected 25", p.Percent())
			}
			if p.Filename != "/tmp/out.mp4" {
				t.Errorf("Filename = %s", p.Filename)
			}
			if p.Speed != 0 {
				t.Errorf("Speed without start time should be 0, got %v", p.Speed)
			}
		})
	}
}
