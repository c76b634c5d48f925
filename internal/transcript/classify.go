package transcript

import (
	"regexp"
	"strings"
)

// LineClass is the classifier verdict for a single raw line.
type LineClass int

const (
	LineBlank LineClass = iota
	LineMessage
	LineContinuation
)

// messageRe matches the export format "M/D/YY, H:MM - Sender: body".
// Groups: date, time, sender (any run without a colon), body.
var messageRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}),\s*(\d{1,2}:\d{2})\s*-\s*([^:]+):\s*(.+)`)

// Classify decides whether a raw line starts a new message, continues the
// previous one, or is blank. For new messages it returns the four captured
// groups.
func Classify(line string) (LineClass, []string) {
	if strings.TrimSpace(line) == "" {
		return LineBlank, nil
	}
	if m := messageRe.FindStringSubmatch(line); m != nil {
		return LineMessage, m[1:]
	}
	return LineContinuation, nil
}
