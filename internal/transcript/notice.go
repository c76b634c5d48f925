package transcript

import "strings"

// noticeMarkers are the placeholder phrases the exporter emits instead of
// user content.
var noticeMarkers = []string{
	"<Media omitted>",
	"You deleted this message",
	"This message was edited",
	"This message was deleted",
}

// IsSystemNotice reports whether the raw line contains a platform notice.
// The check runs on the full line text, before any parsing.
func IsSystemNotice(line string) bool {
	for _, marker := range noticeMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
