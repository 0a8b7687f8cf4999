package download

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/yt-batch/internal/logging"
	"github.com/ytget/yt-batch/internal/model"
	"github.com/ytget/yt-batch/internal/platform"
)

// Extractor defaults
const (
	DefaultRetries             = 3
	DefaultConcurrentFragments = 4
	DefaultMergeOutputFormat   = "mp4"
	OutputTemplateName         = "%(title)s.%(ext)s"
)

// Options tunes the extractor invocation
type Options struct {
	Retries             int
	ConcurrentFragments int
	MergeOutputFormat   string
}

// DefaultOptions returns the stock extractor settings
func DefaultOptions() Options {
	return Options{
		Retries:             DefaultRetries,
		ConcurrentFragments: DefaultConcurrentFragments,
		MergeOutputFormat:   DefaultMergeOutputFormat,
	}
}

// OptionsFunc supplies options at the start of every item so settings changes
// apply to the next download
type OptionsFunc func() Options

// Worker processes one queue item at a time
type Worker struct {
	extractor Extractor
	locator   TranscoderLocator
	options   OptionsFunc
	logger    *zap.Logger
}

// NewWorker creates a download worker. options may be nil.
func NewWorker(extractor Extractor, locator TranscoderLocator, options OptionsFunc, logger *zap.Logger) *Worker {
	if options == nil {
		options = DefaultOptions
	}
	return &Worker{
		extractor: extractor,
		locator:   locator,
		options:   options,
		logger:    logging.NewComponentLogger(logger, "download_worker"),
	}
}

// Process downloads item into outputDir and renames the file to its sanitized
// title. Progress events are forwarded to reporter.
func (w *Worker) Process(ctx context.Context, item model.QueueItem, outputDir string, reporter Reporter) (*model.DownloadResult, error) {
	logger := w.logger.With(zap.String("item_id", item.ID), zap.String("url", item.URL))

	ffmpegPath, hasFFmpeg := "", false
	if w.locator != nil {
		ffmpegPath, hasFFmpeg = w.locator.Locate(ctx)
	}
	opts := w.options()

	tracker := &finishedTracker{}
	req := Request{
		URL:                 item.URL,
		OutputTemplate:      filepath.Join(outputDir, OutputTemplateName),
		Format:              SelectFormat(hasFFmpeg),
		Retries:             opts.Retries,
		ConcurrentFragments: opts.ConcurrentFragments,
		OnProgress: func(p Progress) {
			if p.Status == ProgressFinished && p.Filename != "" {
				tracker.set(p.Filename)
			}
			if reporter != nil {
				reporter.Report(p)
			}
		},
	}
	if hasFFmpeg {
		req.MergeOutputFormat = opts.MergeOutputFormat
		req.FFmpegLocation = ffmpegPath
	}

	logger.Info("download starting",
		zap.Bool("ffmpeg", hasFFmpeg),
		zap.String("ffmpeg_path", ffmpegPath),
		zap.String("format", req.Format))

	info, err := w.extractor.Extract(ctx, req)
	if err != nil {
		logger.Warn("download failed", zap.Error(err))
		return nil, fmt.Errorf("download %s: %w", item.URL, err)
	}
	if info == nil {
		return nil, fmt.Errorf("download %s: %w", item.URL, ErrNoTitle)
	}

	title := strings.TrimSpace(info.Title)
	if title == "" {
		title = platform.FallbackFilename
	}

	result := &model.DownloadResult{Title: title}

	candidate := firstExisting(append([]string{tracker.get()}, expectedOutputPaths(outputDir, info, req.MergeOutputFormat)...))
	result.SourcePath = candidate

	if candidate == "" {
		logger.Info("downloaded file not found, skipping rename", zap.String("reported", tracker.get()))
		return result, nil
	}

	target, err := platform.RenameUnique(candidate, platform.SanitizeFilename(title))
	if err != nil {
		logger.Warn("rename failed", zap.String("path", candidate), zap.Error(err))
		return nil, fmt.Errorf("rename downloaded file: %w", err)
	}

	result.TargetPath = target
	result.Renamed = true
	logger.Info("download complete", zap.String("path", target))
	return result, nil
}

// expectedOutputPaths rebuilds likely output paths from metadata. The finished
// event may name an intermediate stream file that no longer exists after merging.
func expectedOutputPaths(outputDir string, info *Info, mergeFormat string) []string {
	var paths []string
	if info.Filename != "" {
		if filepath.IsAbs(info.Filename) || filepath.Dir(info.Filename) != "." {
			paths = append(paths, info.Filename)
		} else {
			paths = append(paths, filepath.Join(outputDir, info.Filename))
		}
	}
	if info.Title != "" {
		ext := mergeFormat
		if ext == "" {
			ext = strings.TrimPrefix(platform.DefaultVideoExtension, ".")
		}
		paths = append(paths, filepath.Join(outputDir, info.Title+"."+ext))
	}
	return paths
}

// firstExisting returns the first path present on disk, or ""
func firstExisting(paths []string) string {
	for _, p := range paths {
		if p != "" && platform.FileExists(p) {
			return p
		}
	}
	return ""
}

// finishedTracker holds the last finished filename; progress callbacks may run
// on the extractor's goroutine
type finishedTracker struct {
	mu   sync.Mutex
	path string
}

func (t *finishedTracker) set(path string) {
	t.mu.Lock()
	t.path = path
	t.mu.Unlock()
}

func (t *finishedTracker) get() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path
}
