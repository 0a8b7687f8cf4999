package ui

import (
	"strings"
	"testing"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/download"
)

func TestLocalization_FallbacksAndLanguages(t *testing.T) {
	l := NewLocalization()
	if l.GetCurrentLanguage() != "en" {
		t.Fatalf("Expected en by default, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "en" {
		t.Error("Unknown language should be ignored")
	}

	l.SetLanguage("fr")
	if got := l.GetText(KeyDownload); got != "Télécharger en 720p" {
		t.Errorf("French download label = %q", got)
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Missing key should return itself, got %q", got)
	}

	// system resolves to whatever the host locale is, or stays put
	l.SetLanguage("system")
	if _, ok := l.GetAvailableLanguages()[l.GetCurrentLanguage()]; !ok {
		t.Errorf("Unexpected language after system: %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_EveryKeyTranslated(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		if _, ok := l.texts["fr"][key]; !ok {
			t.Errorf("French translation missing for %s", key)
		}
	}
}

func TestFormatStatus(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name   string
		status batch.Status
		want   string
	}{
		{"ready", batch.Status{Kind: batch.StatusReady}, "Ready."},
		{"preparing", batch.Status{Kind: batch.StatusPreparing, Index: 2, Total: 5}, "[2/5] Preparing..."},
		{
			"downloading without speed",
			batch.Status{Kind: batch.StatusDownloading, Index: 1, Total: 3, Percent: 42.26},
			"[1/3] Downloading... 42.3%",
		},
		{
			"downloading with speed",
			batch.Status{Kind: batch.StatusDownloading, Index: 1, Total: 3, Percent: 50, Speed: 2048},
			"[1/3] Downloading... 50.0% - 2.0 KiB/s",
		},
		{"downloading outside batch", batch.Status{Kind: batch.StatusDownloading, Percent: 10}, "Downloading... 10.0%"},
		{"processing", batch.Status{Kind: batch.StatusProcessing}, "Download finished, processing..."},
		{"error", batch.Status{Kind: batch.StatusDownloadError}, "Error during download."},
		{"renamed", batch.Status{Kind: batch.StatusItemRenamed, FileName: "clip.mp4"}, "Done: clip.mp4"},
		{"complete", batch.Status{Kind: batch.StatusItemComplete}, "Download finished."},
		{"all complete", batch.Status{Kind: batch.StatusAllComplete}, "All downloads are complete."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.FormatStatus(tt.status); got != tt.want {
				t.Errorf("FormatStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatStatus_French(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("fr")

	got := l.FormatStatus(batch.Status{Kind: batch.StatusPreparing, Index: 1, Total: 2})
	if got != "[1/2] Préparation..." {
		t.Errorf("FormatStatus = %q", got)
	}
}

func TestFormatFailure(t *testing.T) {
	l := NewLocalization()

	title, message := l.FormatFailure(download.Failure{Kind: download.FailureTranscoder, Message: "ffmpeg not found"})
	if title != "FFmpeg required" || !strings.Contains(message, "FFmpeg is needed") {
		t.Errorf("Transcoder failure = %q / %q", title, message)
	}

	title, message = l.FormatFailure(download.Failure{Kind: download.FailureGeneric, Message: "HTTP 403"})
	if title != "Error" || message != "HTTP 403" {
		t.Errorf("Generic failure = %q / %q", title, message)
	}
}

func TestFormatSummary(t *testing.T) {
	l := NewLocalization()
	if got := l.FormatSummary(batch.Summary{Total: 4, Failed: 1}); got != "3 of 4 videos downloaded" {
		t.Errorf("FormatSummary = %q", got)
	}
}
