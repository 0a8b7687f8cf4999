package batch

import (
	"strings"

	"github.com/ytget/yt-batch/internal/model"
)

// ParseLines turns the URL input into queue items: one per non-blank line,
// trimmed, keeping the 1-based line number for done markers.
func ParseLines(lines []string) []model.QueueItem {
	var items []model.QueueItem
	for i, line := range lines {
		url := strings.TrimSpace(line)
		if url == "" {
			continue
		}
		items = append(items, model.NewQueueItem(url, i+1))
	}
	return items
}

// ParseText splits text into lines and parses them
func ParseText(text string) []model.QueueItem {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return ParseLines(strings.Split(text, "\n"))
}
