package ui

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"go.uber.org/zap"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/model"
)

type fakeStarter struct {
	items []model.QueueItem
	dir   string
	err   error
	calls int
}

func (f *fakeStarter) Start(items []model.QueueItem, dir string) error {
	f.calls++
	f.items = items
	f.dir = dir
	return f.err
}

func newTestRootUI(t *testing.T) (*RootUI, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	window := app.NewWindow("test")
	return NewRootUI(window, app, settings, zap.NewNop()), settings
}

func TestRootUI_DownloadClickStripsMarkers(t *testing.T) {
	ui, settings := newTestRootUI(t)
	starter := &fakeStarter{}
	ui.SetStarter(starter)

	dir := filepath.Join(t.TempDir(), "out")
	ui.urlEntry.SetText("https://a" + DoneMarker + "\n\n  https://b  ")
	ui.dirEntry.SetText("  " + dir + " ")

	test.Tap(ui.downloadBtn)

	if starter.calls != 1 {
		t.Fatalf("Expected one Start call, got %d", starter.calls)
	}
	if len(starter.items) != 2 {
		t.Fatalf("Expected 2 items, got %+v", starter.items)
	}
	if starter.items[0].URL != "https://a" || starter.items[1].URL != "https://b" || starter.items[1].Line != 3 {
		t.Errorf("Unexpected items: %+v", starter.items)
	}
	if starter.dir != dir {
		t.Errorf("Dir = %q, want %q", starter.dir, dir)
	}
	if settings.GetDownloadDirectory() != dir {
		t.Error("Accepted directory should be remembered")
	}
}

func TestRootUI_RejectedStartKeepsSettings(t *testing.T) {
	ui, settings := newTestRootUI(t)
	ui.SetStarter(&fakeStarter{err: batch.ErrNoURLs})

	before := settings.GetDownloadDirectory()
	ui.dirEntry.SetText("/somewhere/else")
	test.Tap(ui.downloadBtn)

	if settings.GetDownloadDirectory() != before {
		t.Error("Rejected start must not persist the directory")
	}
}

func TestRootUI_StartErrorsDoNotPanic(t *testing.T) {
	ui, _ := newTestRootUI(t)
	for _, err := range []error{batch.ErrNoOutputDir, batch.ErrBusy, errors.New("disk full")} {
		ui.SetStarter(&fakeStarter{err: err})
		test.Tap(ui.downloadBtn)
	}
}

func TestRootUI_ControlsToggle(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.applyControlsEnabled(false)
	if !ui.urlEntry.Disabled() || !ui.dirEntry.Disabled() || !ui.downloadBtn.Disabled() || !ui.browseBtn.Disabled() {
		t.Error("Inputs should be disabled while a batch runs")
	}
	if ui.openFolderBtn.Disabled() {
		t.Error("Open folder stays available during a batch")
	}
	if !ui.settingsItem.Disabled {
		t.Error("Settings menu item should be disabled while a batch runs")
	}

	// menu rebuilt by a language change keeps the running state
	ui.onLanguageChange("fr")
	if !ui.settingsItem.Disabled {
		t.Error("Rebuilt settings menu item should stay disabled")
	}

	ui.applyControlsEnabled(true)
	if ui.urlEntry.Disabled() || ui.downloadBtn.Disabled() {
		t.Error("Inputs should be re-enabled")
	}
	if ui.settingsItem.Disabled {
		t.Error("Settings menu item should be re-enabled")
	}
}

func TestRootUI_FailureDialogAcknowledgesOnClose(t *testing.T) {
	ui, _ := newTestRootUI(t)

	acks := 0
	d := ui.showFailure(download.Failure{Kind: download.FailureGeneric, Message: "HTTP 403"}, func() { acks++ })
	if acks != 0 {
		t.Fatal("Acknowledged before the dialog was closed")
	}

	d.Hide()
	if acks != 1 {
		t.Errorf("Closing the dialog acknowledged %d times, want 1", acks)
	}
}

func TestRootUI_StatusFollowsLanguage(t *testing.T) {
	ui, settings := newTestRootUI(t)

	ui.applyStatus(batch.Status{Kind: batch.StatusAllComplete})
	if ui.statusLabel.Text != "All downloads are complete." {
		t.Errorf("Status = %q", ui.statusLabel.Text)
	}

	ui.onLanguageChange("fr")
	if ui.statusLabel.Text != "Tous les téléchargements sont terminés." {
		t.Errorf("Status after language change = %q", ui.statusLabel.Text)
	}
	if settings.GetLanguage() != "fr" {
		t.Error("Language change should be saved")
	}
}
