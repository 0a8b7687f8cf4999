package download

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/ytget/yt-batch/internal/logging"
)

// ProgressInterval is how often yt-dlp progress is sampled
const ProgressInterval = 500 * time.Millisecond

// YTDLPExtractor runs yt-dlp through go-ytdlp. The yt-dlp binary is resolved
// (and downloaded into the go-ytdlp cache if needed) on first use.
type YTDLPExtractor struct {
	installMutex sync.Mutex
	installed    bool
	logger       *zap.Logger
}

// NewYTDLPExtractor creates a yt-dlp backed extractor
func NewYTDLPExtractor(logger *zap.Logger) *YTDLPExtractor {
	return &YTDLPExtractor{
		logger: logging.NewComponentLogger(logger, "ytdlp"),
	}
}

// Extract downloads a single video (no playlist expansion)
func (e *YTDLPExtractor) Extract(ctx context.Context, req Request) (*Info, error) {
	if err := e.ensureInstalled(ctx); err != nil {
		return nil, err
	}

	dl := ytdlp.New().
		Quiet().
		NoPlaylist().
		WindowsFilenames().
		PrintJSON().
		Output(req.OutputTemplate).
		Format(req.Format).
		ConcurrentFragments(req.ConcurrentFragments).
		Retries(strconv.Itoa(req.Retries))

	if req.FFmpegLocation != "" {
		dl = dl.
			MergeOutputFormat(req.MergeOutputFormat).
			FFmpegLocation(req.FFmpegLocation)
	}

	if req.OnProgress != nil {
		dl = dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
			req.OnProgress(convertProgress(&update))
		})
	}

	result, err := dl.Run(ctx, req.URL)
	if err != nil {
		if result != nil {
			if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
				return nil, fmt.Errorf("%w: %s", err, stderr)
			}
		}
		return nil, err
	}

	info := &Info{}
	extracted, err := result.GetExtractedInfo()
	if err != nil || len(extracted) == 0 {
		e.logger.Debug("no extracted info in yt-dlp output", zap.String("url", req.URL), zap.Error(err))
		return info, nil
	}

	last := extracted[len(extracted)-1]
	if last.Title != nil {
		info.Title = *last.Title
	}
	if last.Filename != nil {
		info.Filename = *last.Filename
	}
	return info, nil
}

// ensureInstalled resolves yt-dlp once; a failed attempt is retried on the next item
func (e *YTDLPExtractor) ensureInstalled(ctx context.Context) error {
	e.installMutex.Lock()
	defer e.installMutex.Unlock()

	if e.installed {
		return nil
	}

	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}

	e.installed = true
	e.logger.Info("yt-dlp ready",
		zap.String("path", resolved.Executable),
		zap.String("version", resolved.Version))
	return nil
}

// convertProgress maps a go-ytdlp update onto a Progress event
func convertProgress(update *ytdlp.ProgressUpdate) Progress {
	p := Progress{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		Filename:        update.Filename,
	}

	switch update.Status {
	case ytdlp.ProgressStatusFinished, ytdlp.ProgressStatusPostProcessing:
		p.Status = ProgressFinished
	case ytdlp.ProgressStatusError:
		p.Status = ProgressError
	default:
		p.Status = ProgressDownloading
	}

	// Calculate speed
	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			p.Speed = float64(update.DownloadedBytes) / elapsed.Seconds()
		}
	}

	if p.Filename == "" && update.Info != nil && update.Info.Filename != nil {
		p.Filename = *update.Info.Filename
	}
	return p
}

// FetchFFmpeg downloads an ffmpeg build into the go-ytdlp cache and returns its path
func FetchFFmpeg(ctx context.Context) (string, error) {
	resolved, err := ytdlp.InstallFFmpeg(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("install ffmpeg: %w", err)
	}
	return resolved.Executable, nil
}
