package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-batch/internal/download"
	"github.com/ytget/yt-batch/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir         = "download_directory"
	KeyRetries             = "download_retries"
	KeyConcurrentFragments = "concurrent_fragments"
	KeyMergeFormat         = "merge_output_format"
	KeyLanguage            = "app_language"
	KeyAutoRevealComplete  = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultRetries             = download.DefaultRetries
	DefaultConcurrentFragments = download.DefaultConcurrentFragments
	DefaultMergeFormat         = download.DefaultMergeOutputFormat
	DefaultLanguage            = "system"
	DefaultAutoRevealComplete  = false
)

// Limits
const (
	MinRetries             = 0
	MaxRetries             = 10
	MinConcurrentFragments = 1
	MaxConcurrentFragments = 16
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the last used download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		return platform.DefaultDownloadDir()
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetRetries returns the extractor retry count
func (s *Settings) GetRetries() int {
	return clamp(s.app.Preferences().IntWithFallback(KeyRetries, DefaultRetries), MinRetries, MaxRetries)
}

// SetRetries sets the extractor retry count
func (s *Settings) SetRetries(count int) {
	s.app.Preferences().SetInt(KeyRetries, clamp(count, MinRetries, MaxRetries))
}

// GetConcurrentFragments returns the number of fragments fetched in parallel
func (s *Settings) GetConcurrentFragments() int {
	value := s.app.Preferences().IntWithFallback(KeyConcurrentFragments, DefaultConcurrentFragments)
	return clamp(value, MinConcurrentFragments, MaxConcurrentFragments)
}

// SetConcurrentFragments sets the number of fragments fetched in parallel
func (s *Settings) SetConcurrentFragments(count int) {
	s.app.Preferences().SetInt(KeyConcurrentFragments, clamp(count, MinConcurrentFragments, MaxConcurrentFragments))
}

// GetMergeFormat returns the container used when audio and video are merged
func (s *Settings) GetMergeFormat() string {
	format := s.app.Preferences().String(KeyMergeFormat)
	if !isMergeFormat(format) {
		return DefaultMergeFormat
	}
	return format
}

// SetMergeFormat sets the merge container; unknown values fall back to the default
func (s *Settings) SetMergeFormat(format string) {
	if !isMergeFormat(format) {
		format = DefaultMergeFormat
	}
	s.app.Preferences().SetString(KeyMergeFormat, format)
}

// GetMergeFormatOptions returns the merge containers that accept the mp4/m4a
// streams picked by the 720p format ladder
func (s *Settings) GetMergeFormatOptions() []string {
	return []string{"mp4", "mkv"}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
	}
}

// GetAutoRevealOnComplete returns whether to open the download folder after a batch
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the download folder after a batch
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// DownloadOptions snapshots the extractor options; it is read at the start of every item
func (s *Settings) DownloadOptions() download.Options {
	return download.Options{
		Retries:             s.GetRetries(),
		ConcurrentFragments: s.GetConcurrentFragments(),
		MergeOutputFormat:   s.GetMergeFormat(),
	}
}

func isMergeFormat(format string) bool {
	switch format {
	case "mp4", "mkv":
		return true
	}
	return false
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
