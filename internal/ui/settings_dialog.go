package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-batch/internal/config"
)

// SettingsDialog edits the extractor and interface settings
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	retriesEntry    *widget.Entry
	fragmentsEntry  *widget.Entry
	mergeSelect     *widget.Select
	languageSelect  *widget.Select
	autoRevealCheck *widget.Check
	languageByLabel map[string]string
	labelByLanguage map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved may be nil.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.retriesEntry = widget.NewEntry()
	sd.retriesEntry.SetPlaceHolder(strconv.Itoa(config.MinRetries) + "-" + strconv.Itoa(config.MaxRetries))

	sd.fragmentsEntry = widget.NewEntry()
	sd.fragmentsEntry.SetPlaceHolder(strconv.Itoa(config.MinConcurrentFragments) + "-" + strconv.Itoa(config.MaxConcurrentFragments))

	sd.mergeSelect = widget.NewSelect(sd.settings.GetMergeFormatOptions(), nil)

	// Language select shows display names and stores codes
	sd.languageByLabel = make(map[string]string)
	sd.labelByLanguage = make(map[string]string)
	var labels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = code
		sd.labelByLanguage[code] = label
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.autoRevealCheck = widget.NewCheck(t(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyRetries)+":"),
		sd.retriesEntry,

		widget.NewLabel(t(KeyFragments)+":"),
		sd.fragmentsEntry,

		widget.NewLabel(t(KeyMergeFormat)+":"),
		sd.mergeSelect,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.retriesEntry.SetText(strconv.Itoa(sd.settings.GetRetries()))
	sd.fragmentsEntry.SetText(strconv.Itoa(sd.settings.GetConcurrentFragments()))
	sd.mergeSelect.SetSelected(sd.settings.GetMergeFormat())
	sd.languageSelect.SetSelected(sd.labelByLanguage[sd.settings.GetLanguage()])
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form into settings; unparsable numbers keep the stored value
func (sd *SettingsDialog) apply() {
	if retries, err := strconv.Atoi(sd.retriesEntry.Text); err == nil {
		sd.settings.SetRetries(retries)
	}

	if fragments, err := strconv.Atoi(sd.fragmentsEntry.Text); err == nil {
		sd.settings.SetConcurrentFragments(fragments)
	}

	if sd.mergeSelect.Selected != "" {
		sd.settings.SetMergeFormat(sd.mergeSelect.Selected)
	}

	if code, ok := sd.languageByLabel[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)
}
