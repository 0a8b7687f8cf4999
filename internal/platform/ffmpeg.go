package platform

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"

	"github.com/ytget/yt-batch/internal/logging"
)

// FFmpeg executable names
const (
	FFmpegCommand    = "ffmpeg"
	FFmpegWindowsExe = "ffmpeg.exe"
)

// FFmpegFetcher obtains an ffmpeg executable from an auxiliary source and
// returns its path.
type FFmpegFetcher func(ctx context.Context) (string, error)

// FFmpegLocator resolves ffmpeg: next to the application, then on PATH, then
// through the fetcher, persisting a fetched copy next to the application.
type FFmpegLocator struct {
	appDir   string
	goos     string
	lookPath func(file string) (string, error)
	fetch    FFmpegFetcher
	logger   *zap.Logger
}

// NewFFmpegLocator creates a locator rooted at appDir. fetch may be nil.
func NewFFmpegLocator(appDir string, fetch FFmpegFetcher, logger *zap.Logger) *FFmpegLocator {
	return &FFmpegLocator{
		appDir:   appDir,
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		fetch:    fetch,
		logger:   logging.NewComponentLogger(logger, "ffmpeg_locator"),
	}
}

// ExecutableName returns the ffmpeg file name used on goos
func ExecutableName(goos string) string {
	if goos == OSWindows {
		return FFmpegWindowsExe
	}
	return FFmpegCommand
}

// BundledPath returns the same-directory location of ffmpeg
func (l *FFmpegLocator) BundledPath() string {
	return filepath.Join(l.appDir, ExecutableName(l.goos))
}

// Locate returns the ffmpeg path and true, or "" and false when no copy is
// available. A missing ffmpeg is not an error.
func (l *FFmpegLocator) Locate(ctx context.Context) (string, bool) {
	bundled := l.BundledPath()
	if l.appDir != "" && FileExists(bundled) {
		return bundled, true
	}

	if p, err := l.lookPath(FFmpegCommand); err == nil && p != "" {
		return p, true
	}

	if l.fetch == nil {
		return "", false
	}

	fetched, err := l.fetch(ctx)
	if err != nil || fetched == "" {
		l.logger.Debug("ffmpeg fetch failed", zap.Error(err))
		return "", false
	}

	if l.appDir == "" {
		return fetched, true
	}
	if FileExists(bundled) {
		return bundled, true
	}

	if err := copyExecutable(fetched, bundled); err != nil {
		l.logger.Debug("ffmpeg not persisted next to application",
			zap.String("source", fetched), zap.String("target", bundled), zap.Error(err))
		return fetched, true
	}

	l.logger.Info("ffmpeg persisted next to application", zap.String("path", bundled))
	return bundled, true
}

// copyExecutable copies src to dst and marks dst executable. A partial dst is
// removed on failure.
func copyExecutable(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, ExecutablePermissions)
	if err != nil {
		return fmt.Errorf("create target: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close target: %w", cerr)
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy: %w", err)
	}

	// Permission bits on create are subject to umask; chmod is best effort.
	_ = os.Chmod(dst, ExecutablePermissions)
	return nil
}
