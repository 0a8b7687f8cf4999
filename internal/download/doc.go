package download

// Package download implements the per-item download pipeline built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp): format selection against ffmpeg
// availability, extraction with progress propagation, and the collision-safe
// rename of the finished file.
