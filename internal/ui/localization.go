package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-batch/internal/batch"
	"github.com/ytget/yt-batch/internal/download"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyURLsLabel        = "urls_label"
	KeyURLsPlaceholder  = "urls_placeholder"
	KeyFolderLabel      = "folder_label"
	KeyBrowse           = "browse"
	KeyChooseFolder     = "choose_folder"
	KeyDownload         = "download"
	KeyOpenFolder       = "open_folder"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyRetries          = "retries"
	KeyFragments        = "fragments"
	KeyMergeFormat      = "merge_format"
	KeyAutoReveal       = "auto_reveal"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyClose            = "close"
	KeySettingsSaved    = "settings_saved"
	KeyMissingFolder    = "missing_folder"
	KeyMissingFolderMsg = "missing_folder_msg"
	KeyMissingURLs      = "missing_urls"
	KeyMissingURLsMsg   = "missing_urls_msg"
	KeyBusy             = "busy"
	KeyStartFailed      = "start_failed"
	KeyErrorOpening     = "error_opening"
	KeyFFmpegRequired   = "ffmpeg_required"
	KeyFFmpegMessage    = "ffmpeg_message"
	KeyError            = "error"
	KeyBatchFinished    = "batch_finished"
	KeyBatchSummary     = "batch_summary"

	KeyStatusReady       = "status_ready"
	KeyStatusPreparing   = "status_preparing"
	KeyStatusDownloading = "status_downloading"
	KeyStatusSpeed       = "status_speed"
	KeyStatusProcessing  = "status_processing"
	KeyStatusError       = "status_error"
	KeyStatusRenamed     = "status_renamed"
	KeyStatusComplete    = "status_complete"
	KeyStatusAllComplete = "status_all_complete"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; "system" follows the OS locale
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
	}
}

// FormatStatus renders a status line
func (l *Localization) FormatStatus(s batch.Status) string {
	switch s.Kind {
	case batch.StatusPreparing:
		return fmt.Sprintf(l.GetText(KeyStatusPreparing), s.Index, s.Total)
	case batch.StatusDownloading:
		text := fmt.Sprintf(l.GetText(KeyStatusDownloading), s.Percent)
		if s.Speed > 0 {
			text += fmt.Sprintf(l.GetText(KeyStatusSpeed), humanize.IBytes(uint64(s.Speed)))
		}
		return itemPrefix(s) + text
	case batch.StatusProcessing:
		return l.GetText(KeyStatusProcessing)
	case batch.StatusDownloadError:
		return l.GetText(KeyStatusError)
	case batch.StatusItemRenamed:
		return fmt.Sprintf(l.GetText(KeyStatusRenamed), s.FileName)
	case batch.StatusItemComplete:
		return l.GetText(KeyStatusComplete)
	case batch.StatusAllComplete:
		return l.GetText(KeyStatusAllComplete)
	default:
		return l.GetText(KeyStatusReady)
	}
}

// FormatFailure returns the dialog title and message for a failed item
func (l *Localization) FormatFailure(f download.Failure) (title, message string) {
	if f.Kind == download.FailureTranscoder {
		return l.GetText(KeyFFmpegRequired), l.GetText(KeyFFmpegMessage)
	}
	return l.GetText(KeyError), f.Message
}

// FormatSummary renders the end-of-batch notification text
func (l *Localization) FormatSummary(s batch.Summary) string {
	return fmt.Sprintf(l.GetText(KeyBatchSummary), s.Total-s.Failed, s.Total)
}

func itemPrefix(s batch.Status) string {
	if s.Total == 0 {
		return ""
	}
	return fmt.Sprintf("[%d/%d] ", s.Index, s.Total)
}

func systemLanguage() string {
	locale := string(lang.SystemLocale())
	code, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(code)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "YT to me - 720p downloader",
		KeyURLsLabel:        "YouTube URLs (one per line):",
		KeyURLsPlaceholder:  "https://www.youtube.com/watch?v=...",
		KeyFolderLabel:      "Download folder:",
		KeyBrowse:           "Browse...",
		KeyChooseFolder:     "Choose a folder",
		KeyDownload:         "Download in 720p",
		KeyOpenFolder:       "Open folder",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyRetries:          "Retries",
		KeyFragments:        "Concurrent fragments",
		KeyMergeFormat:      "Merge format",
		KeyAutoReveal:       "Open folder when the batch is complete",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyClose:            "Close",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyMissingFolder:    "Missing folder",
		KeyMissingFolderMsg: "Please choose a download folder.",
		KeyMissingURLs:      "Missing URLs",
		KeyMissingURLsMsg:   "Paste one or more YouTube URLs (one per line).",
		KeyBusy:             "A batch is already running.",
		KeyStartFailed:      "Could not start the batch",
		KeyErrorOpening:     "Error opening folder",
		KeyFFmpegRequired:   "FFmpeg required",
		KeyFFmpegMessage:    "FFmpeg is needed to merge audio and video in 720p. An automatic download attempt failed.",
		KeyError:            "Error",
		KeyBatchFinished:    "Downloads complete",
		KeyBatchSummary:     "%d of %d videos downloaded",

		KeyStatusReady:       "Ready.",
		KeyStatusPreparing:   "[%d/%d] Preparing...",
		KeyStatusDownloading: "Downloading... %.1f%%",
		KeyStatusSpeed:       " - %s/s",
		KeyStatusProcessing:  "Download finished, processing...",
		KeyStatusError:       "Error during download.",
		KeyStatusRenamed:     "Done: %s",
		KeyStatusComplete:    "Download finished.",
		KeyStatusAllComplete: "All downloads are complete.",
	}

	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:         "YT to me - Téléchargeur 720p",
		KeyURLsLabel:        "URLs YouTube (une par ligne) :",
		KeyURLsPlaceholder:  "https://www.youtube.com/watch?v=...",
		KeyFolderLabel:      "Dossier de téléchargement :",
		KeyBrowse:           "Parcourir...",
		KeyChooseFolder:     "Choisir un dossier",
		KeyDownload:         "Télécharger en 720p",
		KeyOpenFolder:       "Ouvrir le dossier",
		KeySettings:         "Paramètres",
		KeyFile:             "Fichier",
		KeyLanguage:         "Langue",
		KeyRetries:          "Nouvelles tentatives",
		KeyFragments:        "Fragments simultanés",
		KeyMergeFormat:      "Format de fusion",
		KeyAutoReveal:       "Ouvrir le dossier à la fin du lot",
		KeySave:             "Enregistrer",
		KeyCancel:           "Annuler",
		KeyClose:            "Fermer",
		KeySettingsSaved:    "Paramètres enregistrés !",
		KeyMissingFolder:    "Dossier manquant",
		KeyMissingFolderMsg: "Veuillez choisir un dossier de téléchargement.",
		KeyMissingURLs:      "URLs manquantes",
		KeyMissingURLsMsg:   "Collez une ou plusieurs URLs YouTube (une par ligne).",
		KeyBusy:             "Un lot est déjà en cours.",
		KeyStartFailed:      "Impossible de démarrer le lot",
		KeyErrorOpening:     "Erreur à l'ouverture du dossier",
		KeyFFmpegRequired:   "FFmpeg requis",
		KeyFFmpegMessage:    "FFmpeg est nécessaire pour fusionner audio/vidéo en 720p. Une tentative de téléchargement automatique a échoué.",
		KeyError:            "Erreur",
		KeyBatchFinished:    "Téléchargements terminés",
		KeyBatchSummary:     "%d vidéos sur %d téléchargées",

		KeyStatusReady:       "Prêt.",
		KeyStatusPreparing:   "[%d/%d] Préparation...",
		KeyStatusDownloading: "Téléchargement... %.1f%%",
		KeyStatusSpeed:       " - %s/s",
		KeyStatusProcessing:  "Téléchargement terminé, traitement...",
		KeyStatusError:       "Erreur durant le téléchargement.",
		KeyStatusRenamed:     "Fini: %s",
		KeyStatusComplete:    "Téléchargement terminé.",
		KeyStatusAllComplete: "Tous les téléchargements sont terminés.",
	}
}
