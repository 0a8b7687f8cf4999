package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestLocator(appDir string, lookPath func(string) (string, error), fetch FFmpegFetcher) *FFmpegLocator {
	l := NewFFmpegLocator(appDir, fetch, nil)
	l.goos = OSLinux
	l.lookPath = lookPath
	return l
}

func notOnPath(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

func TestExecutableName(t *testing.T) {
	tests := []struct {
		goos     string
		expected string
	}{
		{OSWindows, "ffmpeg.exe"},
		{OSLinux, "ffmpeg"},
		{OSDarwin, "ffmpeg"},
	}

	for _, tt := range tests {
		if got := ExecutableName(tt.goos); got != tt.expected {
			t.Errorf("ExecutableName(%s) = %s, expected %s", tt.goos, got, tt.expected)
		}
	}
}

func TestLocate_BundledFirst(t *testing.T) {
	appDir := t.TempDir()
	bundled := filepath.Join(appDir, "ffmpeg")
	touch(t, bundled)

	l := newTestLocator(appDir, func(string) (string, error) {
		t.Error("PATH should not be consulted when a bundled copy exists")
		return "/usr/bin/ffmpeg", nil
	}, nil)

	path, ok := l.Locate(context.Background())
	if !ok || path != bundled {
		t.Errorf("Expected bundled %s, got %s (ok=%v)", bundled, path, ok)
	}
}

func TestLocate_SearchPath(t *testing.T) {
	l := newTestLocator(t.TempDir(), func(name string) (string, error) {
		if name != FFmpegCommand {
			t.Errorf("Unexpected lookup name %s", name)
		}
		return "/usr/bin/ffmpeg", nil
	}, func(context.Context) (string, error) {
		t.Error("fetcher should not run when ffmpeg is on PATH")
		return "", nil
	})

	path, ok := l.Locate(context.Background())
	if !ok || path != "/usr/bin/ffmpeg" {
		t.Errorf("Expected PATH result, got %s (ok=%v)", path, ok)
	}
}

func TestLocate_FetchPersists(t *testing.T) {
	appDir := t.TempDir()
	fetchDir := t.TempDir()
	fetched := filepath.Join(fetchDir, "ffmpeg-download")
	if err := os.WriteFile(fetched, []byte("binary"), 0644); err != nil {
		t.Fatal(err)
	}

	l := newTestLocator(appDir, notOnPath, func(context.Context) (string, error) {
		return fetched, nil
	})

	path, ok := l.Locate(context.Background())
	bundled := filepath.Join(appDir, "ffmpeg")
	if !ok || path != bundled {
		t.Fatalf("Expected persisted copy %s, got %s (ok=%v)", bundled, path, ok)
	}

	data, err := os.ReadFile(bundled)
	if err != nil || string(data) != "binary" {
		t.Errorf("Persisted copy content mismatch: %q, %v", data, err)
	}

	info, err := os.Stat(bundled)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("Persisted copy is not executable: %v", info.Mode())
	}
}

func TestLocate_FetchCopyFailure(t *testing.T) {
	fetchDir := t.TempDir()
	fetched := filepath.Join(fetchDir, "ffmpeg-download")
	touch(t, fetched)

	// appDir that cannot be written to: a path below a regular file
	blocker := filepath.Join(t.TempDir(), "file")
	touch(t, blocker)
	appDir := filepath.Join(blocker, "sub")

	l := newTestLocator(appDir, notOnPath, func(context.Context) (string, error) {
		return fetched, nil
	})

	path, ok := l.Locate(context.Background())
	if !ok || path != fetched {
		t.Errorf("Expected fetched path %s, got %s (ok=%v)", fetched, path, ok)
	}
}

func TestLocate_Absent(t *testing.T) {
	tests := []struct {
		name  string
		fetch FFmpegFetcher
	}{
		{"no fetcher", nil},
		{"fetch error", func(context.Context) (string, error) { return "", errors.New("unsupported platform") }},
		{"empty fetch", func(context.Context) (string, error) { return "", nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLocator(t.TempDir(), notOnPath, tt.fetch)
			path, ok := l.Locate(context.Background())
			if ok || path != "" {
				t.Errorf("Expected absent, got %s (ok=%v)", path, ok)
			}
		})
	}
}
