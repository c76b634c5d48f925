package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/mhersberg/chatstat/internal/stats"
)

const (
	colorReset  = "\033[0m"
	colorTitle  = "\033[1;34m" // bold blue section titles
	colorSender = "\033[1;32m" // bold green sender names
	colorBar    = "\033[33m"   // yellow histogram bars
	colorDim    = "\033[2m"
)

// Options control report rendering.
type Options struct {
	Color    bool
	BarWidth int // max histogram width in cells (0 = default 40)
}

type printer struct {
	b     *strings.Builder
	color bool
}

func (p printer) line(format string, args ...any) {
	fmt.Fprintf(p.b, format, args...)
	p.b.WriteByte('\n')
}

func (p printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + colorReset
}

func (p printer) title(s string) {
	p.line("%s", p.paint(colorTitle, s))
	p.line("%s", p.paint(colorDim, strings.Repeat("-", 50)))
}

func (p printer) wordTable(indent string, words []stats.WordCount) {
	if len(words) == 0 {
		p.line("%s(no words)", indent)
		return
	}
	for i, w := range words {
		p.line("%s%2d. %s %s", indent, i+1,
			runewidth.FillRight(w.Word, 15),
			p.paint(colorDim, fmt.Sprintf("(%d)", w.Count)))
	}
}

// Render produces the full text report in fixed section order: overall stats,
// senders by message count descending, hourly activity, monthly breakdown in
// chronological order. Without Color the output is plain text suitable for
// writing to disk.
func Render(r *stats.Report, opts Options) string {
	var b strings.Builder
	p := printer{b: &b, color: opts.Color}

	p.line("%s", strings.Repeat("=", 60))
	p.line("CHAT TRANSCRIPT ANALYSIS")
	p.line("%s", strings.Repeat("=", 60))
	p.line("")

	b.WriteString(OverallSection(r, opts))
	p.line("")
	b.WriteString(SendersSection(r, opts))
	p.line("")
	b.WriteString(HourlySection(r, opts))
	p.line("")
	b.WriteString(MonthlySection(r, opts))

	return b.String()
}

// OverallSection renders corpus-wide totals, averages and top words.
func OverallSection(r *stats.Report, opts Options) string {
	var b strings.Builder
	p := printer{b: &b, color: opts.Color}
	o := r.Overall

	p.title("OVERALL STATISTICS")
	p.line("Total messages:   %d", o.TotalMessages)
	p.line("Total words:      %d", o.TotalWords)
	p.line("Months analyzed:  %d", o.TotalMonths)
	p.line("Approximate days: %.0f", o.TotalDays)
	p.line("People in chat:   %d", o.SenderCount)
	p.line("")
	p.line("Averages:")
	p.line("  messages/month: %.1f", o.AvgMessagesPerMonth)
	p.line("  words/month:    %.1f", o.AvgWordsPerMonth)
	p.line("  messages/day:   %.1f", o.AvgMessagesPerDay)
	p.line("  words/day:      %.1f", o.AvgWordsPerDay)
	p.line("")
	p.line("Peak hour:   %02d:00 (%d messages)", o.PeakHour, o.PeakHourCount)
	if o.MostActiveSender != "" {
		p.line("Most active: %s (%d messages)",
			p.paint(colorSender, o.MostActiveSender), o.MostActiveCount)
	}
	p.line("")
	p.line("Top words:")
	p.wordTable("  ", o.TopWords)

	return b.String()
}

// SendersSection renders per-sender breakdowns, busiest first.
func SendersSection(r *stats.Report, opts Options) string {
	var b strings.Builder
	p := printer{b: &b, color: opts.Color}

	p.title("PER-SENDER STATISTICS")
	if len(r.Senders) == 0 {
		p.line("(no senders)")
		return b.String()
	}

	for i, s := range r.Senders {
		if i > 0 {
			p.line("")
		}
		b.WriteString(SenderSection(s, opts))
	}
	return b.String()
}

// SenderSection renders one sender's breakdown.
func SenderSection(s stats.SenderStats, opts Options) string {
	var b strings.Builder
	p := printer{b: &b, color: opts.Color}

	p.line("%s", p.paint(colorSender, s.Name))
	p.line("  Messages:          %d (%.1f%% of chat)", s.Messages, s.Share*100)
	p.line("  Words:             %d", s.Words)
	p.line("  Avg words/message: %.1f", s.AvgWordsPerMessage)
	p.line("  Top words:")
	p.wordTable("    ", s.TopWords)
	return b.String()
}

// HourlySection renders the hour-of-day histogram. Hours with no messages
// are omitted, matching the sparse hourly buckets.
func HourlySection(r *stats.Report, opts Options) string {
	barWidth := opts.BarWidth
	if barWidth <= 0 {
		barWidth = 40
	}

	var b strings.Builder
	p := printer{b: &b, color: opts.Color}

	p.title("HOURLY ACTIVITY")

	max := 0
	for _, n := range r.Hours {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		p.line("(no messages)")
		return b.String()
	}

	p.line("Most active hour: %02d:00 (%d messages)",
		r.Overall.PeakHour, r.Overall.PeakHourCount)
	p.line("")
	for hour := 0; hour < 24; hour++ {
		n := r.Hours[hour]
		if n == 0 {
			continue
		}
		bar := strings.Repeat("█", scaleBar(n, max, barWidth))
		p.line("%02d:00 %s %d", hour, p.paint(colorBar, bar), n)
	}
	return b.String()
}

// MonthlySection renders month buckets in chronological order.
func MonthlySection(r *stats.Report, opts Options) string {
	var b strings.Builder
	p := printer{b: &b, color: opts.Color}

	p.title("MONTHLY BREAKDOWN")
	if len(r.Months) == 0 {
		p.line("(no months)")
		return b.String()
	}

	for i, m := range r.Months {
		if i > 0 {
			p.line("")
		}
		p.line("%s", p.paint(colorSender, monthLabel(m.Key)))
		p.line("  Messages: %d", m.Messages)
		p.line("  Words:    %d", m.Words)
		p.line("  Top words:")
		p.wordTable("    ", m.TopWords)
	}
	return b.String()
}

// Summary is a one-line digest of the report, used for the TUI status bar
// and clipboard copy.
func Summary(r *stats.Report) string {
	o := r.Overall
	s := fmt.Sprintf("%d messages, %d words, %d senders across %d months; peak hour %02d:00",
		o.TotalMessages, o.TotalWords, o.SenderCount, o.TotalMonths, o.PeakHour)
	if len(o.TopWords) > 0 {
		s += fmt.Sprintf("; top word %q (%d)", o.TopWords[0].Word, o.TopWords[0].Count)
	}
	if o.MostActiveSender != "" {
		s += fmt.Sprintf("; most active %s", o.MostActiveSender)
	}
	return s
}

// scaleBar maps a count to a bar length, keeping at least one cell for any
// non-zero count.
func scaleBar(n, max, width int) int {
	if n <= 0 || max <= 0 {
		return 0
	}
	w := n * width / max
	if w < 1 {
		w = 1
	}
	return w
}

// monthLabel turns "2024-01" into "January 2024".
func monthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}
