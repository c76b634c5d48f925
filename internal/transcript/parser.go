package transcript

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

const maxLineSize = 1024 * 1024 // 1MB, chat export lines are short

// Options control the two policies the export format leaves ambiguous.
type Options struct {
	// JoinContinuations reattaches non-matching lines to the previous
	// message body, separated by a newline. When false such lines are
	// discarded.
	JoinContinuations bool
	// CountNotices keeps parseable platform-notice lines as messages.
	// Their bodies are never tokenized either way. When false, notice
	// lines are excluded from all processing.
	CountNotices bool
}

// DefaultOptions joins wrapped lines and excludes notices entirely.
func DefaultOptions() Options {
	return Options{JoinContinuations: true}
}

// ScanStats summarizes one parsing pass over a transcript.
type ScanStats struct {
	Lines         int // raw lines seen, including blanks
	Messages      int // lines that became a Message
	Continuations int // lines joined to a previous body
	Notices       int // lines carrying a platform notice
	Discarded     int // non-blank lines dropped
}

func (s ScanStats) String() string {
	return fmt.Sprintf("lines=%d messages=%d continuations=%d notices=%d discarded=%d",
		s.Lines, s.Messages, s.Continuations, s.Notices, s.Discarded)
}

// dateLayouts are tried in order. Two-digit years resolve around the usual
// 69 pivot (24 -> 2024).
var dateLayouts = []string{"1/2/06", "1/2/2006"}

const timeLayout = "15:04"

// ParseLines folds an ordered sequence of raw lines into messages. Lines that
// match no known shape are skipped, never surfaced as errors: transcripts
// contain plenty of non-message lines.
func ParseLines(lines []string, opts Options) ([]Message, ScanStats) {
	var (
		msgs  []Message
		stats ScanStats
	)

	for _, raw := range lines {
		stats.Lines++
		line := strings.TrimRight(raw, "\r\n")

		if IsSystemNotice(line) {
			stats.Notices++
			if !opts.CountNotices {
				continue
			}
			// Notices count only when they carry a full timestamp
			// header; they are never joined to a previous body.
			class, groups := Classify(line)
			if class != LineMessage {
				continue
			}
			msg, ok := parseMessage(groups)
			if !ok {
				stats.Discarded++
				continue
			}
			msg.Notice = true
			msgs = append(msgs, msg)
			stats.Messages++
			continue
		}

		class, groups := Classify(line)
		switch class {
		case LineBlank:

		case LineContinuation:
			if opts.JoinContinuations && len(msgs) > 0 {
				msgs[len(msgs)-1].Body += "\n" + line
				stats.Continuations++
			} else {
				stats.Discarded++
			}

		case LineMessage:
			msg, ok := parseMessage(groups)
			if !ok {
				// Unparsable timestamp means corruption, not a
				// wrapped line: drop it outright.
				stats.Discarded++
				continue
			}
			msgs = append(msgs, msg)
			stats.Messages++
		}
	}

	return msgs, stats
}

// ReadMessages parses a transcript from r. File and network I/O stay outside
// the core; callers hand in any line-oriented reader.
func ReadMessages(r io.Reader, opts Options) ([]Message, ScanStats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, ScanStats{}, err
	}

	msgs, stats := ParseLines(lines, opts)
	return msgs, stats, nil
}

// parseMessage builds a Message from the four captured pattern groups:
// date, time, sender, body.
func parseMessage(groups []string) (Message, bool) {
	dateStr, timeStr, sender, body := groups[0], groups[1], groups[2], groups[3]

	var (
		date time.Time
		err  error
	)
	for _, layout := range dateLayouts {
		if date, err = time.Parse(layout, dateStr); err == nil {
			break
		}
	}
	if err != nil {
		return Message{}, false
	}

	clock, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return Message{}, false
	}

	return Message{
		Date:   date,
		Hour:   clock.Hour(),
		Sender: strings.TrimSpace(sender),
		Body:   body,
	}, true
}
