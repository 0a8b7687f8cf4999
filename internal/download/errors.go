package download

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxErrorMessageRunes bounds raw error text shown to the user
const MaxErrorMessageRunes = 1000

// transcoderKeyword marks failures caused by a missing or broken ffmpeg
const transcoderKeyword = "ffmpeg"

// FailureKind classifies a per-item failure for display
type FailureKind int

const (
	// FailureGeneric carries the raw (truncated) extractor message
	FailureGeneric FailureKind = iota

	// FailureTranscoder means ffmpeg was required but not usable
	FailureTranscoder
)

// Failure is the displayable form of a per-item error
type Failure struct {
	Kind    FailureKind
	Message string
}

// ErrNoTitle is returned when the extractor reports neither metadata nor a file
var ErrNoTitle = errors.New("extractor returned no metadata")

// Classify turns a worker error into a Failure
func Classify(err error) Failure {
	if err == nil {
		return Failure{}
	}
	msg := err.Error()
	if strings.Contains(strings.ToLower(msg), transcoderKeyword) {
		return Failure{Kind: FailureTranscoder, Message: truncateRunes(msg, MaxErrorMessageRunes)}
	}
	return Failure{Kind: FailureGeneric, Message: truncateRunes(msg, MaxErrorMessageRunes)}
}

// truncateRunes cuts s to at most n runes
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
