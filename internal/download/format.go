package download

// TargetHeight is the preferred video height
const TargetHeight = 720

// Format selectors. With ffmpeg an exact 720p video stream is merged with the
// best audio; without it only pre-muxed formats can be used.
const (
	FormatWithTranscoder = "bestvideo[height=720][ext=mp4]+bestaudio[ext=m4a]/" +
		"bestvideo[height=720]+bestaudio/" +
		"best[height<=720]/best"

	FormatWithoutTranscoder = "best[ext=mp4][acodec!=none][vcodec*=avc1][height<=720]/" +
		"best[acodec!=none][height<=720]/" +
		"best[acodec!=none]"
)

// SelectFormat returns the format selector for the given ffmpeg availability
func SelectFormat(hasTranscoder bool) string {
	if hasTranscoder {
		return FormatWithTranscoder
	}
	return FormatWithoutTranscoder
}
