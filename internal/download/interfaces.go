package download

import (
	"context"
)

// Request is everything the extractor needs for a single video
type Request struct {
	URL                 string
	OutputTemplate      string // e.g. /dir/%(title)s.%(ext)s
	Format              string // format selector
	Retries             int
	ConcurrentFragments int
	MergeOutputFormat   string // only set together with FFmpegLocation
	FFmpegLocation      string
	OnProgress          func(Progress)
}

// Info is the metadata reported by the extractor after a download
type Info struct {
	Title    string
	Filename string // may be empty when the extractor did not report it
}

// Extractor downloads one video and reports its metadata
type Extractor interface {
	Extract(ctx context.Context, req Request) (*Info, error)
}

// TranscoderLocator finds the ffmpeg executable; ok=false means unavailable
type TranscoderLocator interface {
	Locate(ctx context.Context) (path string, ok bool)
}

// Reporter receives progress events for the item being processed
type Reporter interface {
	Report(Progress)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(Progress)

// Report calls f(p)
func (f ReporterFunc) Report(p Progress) {
	f(p)
}
