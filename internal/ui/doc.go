// Package ui contains the Fyne desktop window: URL input, download folder
// picker, progress bar and status line. RootUI implements batch.View and all
// strings are localized via Localization.
package ui
