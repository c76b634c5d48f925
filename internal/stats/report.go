package stats

import "sort"

// MonthStats is the aggregate for one calendar month.
type MonthStats struct {
	Key      string // YYYY-MM
	Messages int
	Words    int
	TopWords []WordCount
}

// SenderStats is the aggregate for one sender name (verbatim, case-sensitive).
type SenderStats struct {
	Name               string
	Messages           int
	Words              int
	AvgWordsPerMessage float64
	Share              float64 // fraction of total messages
	TopWords           []WordCount
}

// Overall carries corpus-wide totals and derived averages. All averages are
// zero when their denominator is zero.
type Overall struct {
	TotalMessages int
	TotalWords    int
	TotalMonths   int
	TotalDays     float64 // TotalMonths * 30.4, an explicit approximation
	SenderCount   int

	AvgMessagesPerMonth float64
	AvgWordsPerMonth    float64
	AvgMessagesPerDay   float64
	AvgWordsPerDay      float64

	TopWords []WordCount

	PeakHour         int // earliest hour among ties
	PeakHourCount    int
	MostActiveSender string // alphabetically first among ties
	MostActiveCount  int
}

// Report is the terminal artifact of one analysis run. It is built once and
// read-only thereafter; rendering layers consume it without mutation.
type Report struct {
	Overall Overall
	Months  []MonthStats  // chronological
	Senders []SenderStats // by message count descending, ties alphabetical
	Hours   [24]int       // messages per hour of day
}

// Report derives the immutable result from the current buckets. An empty or
// fully-unparsable transcript yields a zero-valued Report, never an error.
func (a *Aggregator) Report(topN int) *Report {
	r := &Report{}

	monthKeys := sortedKeys(a.months) // YYYY-MM sorts chronologically
	for _, key := range monthKeys {
		b := a.months[key]
		r.Months = append(r.Months, MonthStats{
			Key:      key,
			Messages: b.Messages,
			Words:    b.Words,
			TopWords: b.Freq.TopN(topN),
		})
	}

	total := a.overall.Messages
	for _, name := range sortedKeys(a.senders) {
		b := a.senders[name]
		s := SenderStats{
			Name:     name,
			Messages: b.Messages,
			Words:    b.Words,
			TopWords: b.Freq.TopN(topN),
		}
		if b.Messages > 0 {
			s.AvgWordsPerMessage = float64(b.Words) / float64(b.Messages)
		}
		if total > 0 {
			s.Share = float64(b.Messages) / float64(total)
		}
		r.Senders = append(r.Senders, s)
	}
	// Busiest senders first; the alphabetical pre-sort keeps ties stable.
	sort.SliceStable(r.Senders, func(i, j int) bool {
		return r.Senders[i].Messages > r.Senders[j].Messages
	})

	for hour, b := range a.hours {
		r.Hours[hour] = b.Messages
	}

	o := &r.Overall
	o.TotalMessages = total
	o.TotalWords = a.overall.Words
	o.TotalMonths = len(monthKeys)
	o.TotalDays = float64(o.TotalMonths) * daysPerMonth
	o.SenderCount = len(r.Senders)
	o.TopWords = a.overall.Freq.TopN(topN)

	if o.TotalMonths > 0 {
		o.AvgMessagesPerMonth = float64(o.TotalMessages) / float64(o.TotalMonths)
		o.AvgWordsPerMonth = float64(o.TotalWords) / float64(o.TotalMonths)
	}
	if o.TotalDays > 0 {
		o.AvgMessagesPerDay = float64(o.TotalMessages) / o.TotalDays
		o.AvgWordsPerDay = float64(o.TotalWords) / o.TotalDays
	}

	// Ascending scan returns the first maximum, so ties go to the
	// earliest hour.
	for hour := 0; hour < 24; hour++ {
		if r.Hours[hour] > o.PeakHourCount {
			o.PeakHour = hour
			o.PeakHourCount = r.Hours[hour]
		}
	}

	if len(r.Senders) > 0 {
		o.MostActiveSender = r.Senders[0].Name
		o.MostActiveCount = r.Senders[0].Messages
	}

	return r
}
