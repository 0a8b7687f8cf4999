package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/config"
	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/logging"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// BatchStarter begins a batch over the parsed URL lines
type BatchStarter interface {
	Start(items []model.QueueItem, outputDir string) error
}

// RootUI is the main window. It implements batch.View; view calls arrive
// from the controller goroutine and are applied with fyne.Do.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	starter      BatchStarter
	logger       *zap.Logger

	urlsLabel     *widget.Label
	urlEntry      *widget.Entry
	folderLabel   *widget.Label
	dirEntry      *widget.Entry
	browseBtn     *widget.Button
	downloadBtn   *widget.Button
	openFolderBtn *widget.Button
	settingsBtn   *widget.Button
	settingsItem  *fyne.MenuItem
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label

	// lastStatus is re-rendered when the language changes
	lastStatus batch.Status
}

var _ batch.View = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI. SetStarter must be called
// before the first download.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, logger *zap.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		logger:       logging.NewComponentLogger(logger, "ui"),
		lastStatus:   batch.Status{Kind: batch.StatusReady},
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// SetStarter connects the download button to a batch controller
func (ui *RootUI) SetStarter(starter BatchStarter) {
	ui.starter = starter
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlsLabel = widget.NewLabel(ui.localization.GetText(KeyURLsLabel))
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLsPlaceholder))
	ui.urlEntry.SetMinRowsVisible(URLEntryRows)

	ui.folderLabel = widget.NewLabel(ui.localization.GetText(KeyFolderLabel))
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowse)
	dirRow := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.dirEntry)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.openFolderBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)
	ui.openFolderBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	actions := container.NewHBox(ui.downloadBtn, ui.openFolderBtn, layout.NewSpacer(), ui.settingsBtn)

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Max = 100

	ui.statusLabel = widget.NewLabel(ui.localization.FormatStatus(ui.lastStatus))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	bottom := container.NewVBox(ui.folderLabel, dirRow, actions, ui.progressBar)
	if logo := ui.loadLogo(); logo != nil {
		bottom.Add(container.NewCenter(logo))
	}
	bottom.Add(ui.statusLabel)

	content := container.NewBorder(
		ui.urlsLabel, // top
		bottom,       // bottom
		nil,          // left
		nil,          // right
		ui.urlEntry,  // center
	)

	ui.window.SetContent(content)
}

// loadLogo shows the first PNG next to the executable and uses it as the window icon
func (ui *RootUI) loadLogo() *canvas.Image {
	dir, err := platform.ExecutableDir()
	if err != nil {
		return nil
	}
	res, err := LoadLogoResource(dir)
	if err != nil {
		ui.logger.Debug("no logo", zap.Error(err))
		return nil
	}

	ui.window.SetIcon(res)
	logo := canvas.NewImageFromResource(res)
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(LogoMaxSize, LogoMaxSize))
	return logo
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	ui.settingsItem = fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	ui.settingsItem.Disabled = ui.downloadBtn != nil && ui.downloadBtn.Disabled()

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), ui.settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(KeyAppTitle))
	ui.urlsLabel.SetText(t(KeyURLsLabel))
	ui.urlEntry.SetPlaceHolder(t(KeyURLsPlaceholder))
	ui.folderLabel.SetText(t(KeyFolderLabel))
	ui.browseBtn.SetText(t(KeyBrowse))
	ui.downloadBtn.SetText(t(KeyDownload))
	ui.openFolderBtn.SetText(IconFolder + " " + t(KeyOpenFolder))
	ui.statusLabel.SetText(ui.localization.FormatStatus(ui.lastStatus))
}

// onBrowse opens the folder picker at the current directory
func (ui *RootUI) onBrowse() {
	picker := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
	}, ui.window)

	if dir := strings.TrimSpace(ui.dirEntry.Text); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			picker.SetLocation(lister)
		}
	}
	picker.Show()
}

// onDownloadClick parses the URL input and starts a batch
func (ui *RootUI) onDownloadClick() {
	if ui.starter == nil {
		return
	}

	items := batch.ParseText(stripDoneMarkers(ui.urlEntry.Text))
	dir := strings.TrimSpace(ui.dirEntry.Text)

	err := ui.starter.Start(items, dir)
	switch {
	case err == nil:
		ui.settings.SetDownloadDirectory(dir)
	case errors.Is(err, batch.ErrNoOutputDir):
		ui.showWarning(KeyMissingFolder, KeyMissingFolderMsg)
	case errors.Is(err, batch.ErrNoURLs):
		ui.showWarning(KeyMissingURLs, KeyMissingURLsMsg)
	case errors.Is(err, batch.ErrBusy):
		ui.showWarning(KeyDownload, KeyBusy)
	default:
		ui.logger.Error("start batch", zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyStartFailed), err), ui.window)
	}
}

func (ui *RootUI) showWarning(titleKey, messageKey string) {
	dialog.ShowInformation(ui.localization.GetText(titleKey), ui.localization.GetText(messageKey), ui.window)
}

// onOpenFolder reveals the download directory in the file manager
func (ui *RootUI) onOpenFolder() {
	dir := strings.TrimSpace(ui.dirEntry.Text)
	if err := platform.OpenFolder(dir); err != nil {
		ui.logger.Warn("open folder", zap.String("path", dir), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpening), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.downloadBtn.Disabled() {
		return
	}
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}).Show()
}

// SetStatus implements batch.View
func (ui *RootUI) SetStatus(s batch.Status) {
	fyne.Do(func() { ui.applyStatus(s) })
}

// SetProgress implements batch.View
func (ui *RootUI) SetProgress(percent float64) {
	fyne.Do(func() { ui.progressBar.SetValue(percent) })
}

// SetControlsEnabled implements batch.View
func (ui *RootUI) SetControlsEnabled(enabled bool) {
	fyne.Do(func() { ui.applyControlsEnabled(enabled) })
}

// ClearDoneMarkers implements batch.View
func (ui *RootUI) ClearDoneMarkers() {
	fyne.Do(func() { ui.urlEntry.SetText(stripDoneMarkers(ui.urlEntry.Text)) })
}

// MarkLineDone implements batch.View
func (ui *RootUI) MarkLineDone(line int) {
	fyne.Do(func() { ui.urlEntry.SetText(markLineDone(ui.urlEntry.Text, line)) })
}

// ShowFailure implements batch.View; ack runs when the dialog is closed
func (ui *RootUI) ShowFailure(f download.Failure, ack func()) {
	fyne.Do(func() { ui.showFailure(f, ack) })
}

// BatchFinished implements batch.View
func (ui *RootUI) BatchFinished(s batch.Summary) {
	fyne.Do(func() { ui.finishBatch(s) })
}

func (ui *RootUI) applyStatus(s batch.Status) {
	ui.lastStatus = s
	ui.statusLabel.SetText(ui.localization.FormatStatus(s))
}

func (ui *RootUI) applyControlsEnabled(enabled bool) {
	controls := []fyne.Disableable{ui.urlEntry, ui.dirEntry, ui.browseBtn, ui.downloadBtn, ui.settingsBtn}
	for _, c := range controls {
		if enabled {
			c.Enable()
		} else {
			c.Disable()
		}
	}

	if ui.settingsItem != nil {
		ui.settingsItem.Disabled = !enabled
		if menu := ui.window.MainMenu(); menu != nil {
			menu.Refresh()
		}
	}
}

func (ui *RootUI) showFailure(f download.Failure, ack func()) dialog.Dialog {
	title, message := ui.localization.FormatFailure(f)

	text := widget.NewLabel(message)
	text.Wrapping = fyne.TextWrapWord
	scroll := container.NewVScroll(text)
	scroll.SetMinSize(fyne.NewSize(420, 120))

	d := dialog.NewCustom(title, ui.localization.GetText(KeyClose), scroll, ui.window)
	if ack != nil {
		d.SetOnClosed(ack)
	}
	d.Show()
	return d
}

func (ui *RootUI) finishBatch(s batch.Summary) {
	ui.app.SendNotification(fyne.NewNotification(
		ui.localization.GetText(KeyBatchFinished),
		ui.localization.FormatSummary(s),
	))

	if ui.settings.GetAutoRevealOnComplete() && s.Total > s.Failed {
		if err := platform.OpenFolder(s.OutputDir); err != nil {
			ui.logger.Warn("reveal download folder", zap.String("path", s.OutputDir), zap.Error(err))
		}
	}
}
