package transcript

import "time"

// Message is a single parsed chat message. Immutable once returned by the
// parser.
type Message struct {
	Date   time.Time // day granularity; the time of day is reduced to Hour
	Hour   int       // 0-23, extracted from the time token
	Sender string    // trimmed, used verbatim as a bucket key
	Body   string
	Notice bool // platform notice: counted, never tokenized
}

// MonthKey returns the YYYY-MM grouping key for the message. All messages
// sharing a key fall in the same calendar month of the same year.
func (m Message) MonthKey() string {
	return m.Date.Format("2006-01")
}
