package stats

import (
	"sort"

	"github.com/mhersberg/chatstat/internal/tokenize"
	"github.com/mhersberg/chatstat/internal/transcript"
)

// DefaultTopN is the word-table depth used across reports.
const DefaultTopN = 10

// daysPerMonth is the documented approximation behind the per-day averages.
// It is not calendar-accurate.
const daysPerMonth = 30.4

// Bucket accumulates messages and their word frequencies for one grouping
// key. Buckets are created lazily on first use and never removed.
type Bucket struct {
	Messages int
	Words    int
	Freq     *WordFreq
}

func newBucket() *Bucket { return &Bucket{Freq: NewWordFreq()} }

func (b *Bucket) add(tokens []string) {
	b.Messages++
	b.Words += len(tokens)
	b.Freq.AddAll(tokens)
}

func (b *Bucket) merge(other *Bucket) {
	b.Messages += other.Messages
	b.Words += other.Words
	b.Freq.Merge(other.Freq)
}

// Aggregator folds parsed messages into month, sender, and hour buckets. One
// value per analysis run: it owns its buckets and the Report it produces, so
// repeated or concurrent runs in one process never share state.
type Aggregator struct {
	tokOpts tokenize.Options

	months  map[string]*Bucket
	senders map[string]*Bucket
	hours   map[int]*Bucket
	overall *Bucket
}

// NewAggregator returns an empty aggregator using the given tokenizer
// options for every message body it folds in.
func NewAggregator(tokOpts tokenize.Options) *Aggregator {
	return &Aggregator{
		tokOpts: tokOpts,
		months:  make(map[string]*Bucket),
		senders: make(map[string]*Bucket),
		hours:   make(map[int]*Bucket),
		overall: newBucket(),
	}
}

// Add folds one message into every bucket it maps to. Notice bodies count as
// messages but contribute no tokens.
func (a *Aggregator) Add(msg transcript.Message) {
	var tokens []string
	if !msg.Notice {
		tokens = tokenize.Tokenize(msg.Body, a.tokOpts)
	}

	a.stringBucket(a.months, msg.MonthKey()).add(tokens)
	a.stringBucket(a.senders, msg.Sender).add(tokens)
	a.hourBucket(msg.Hour).add(tokens)
	a.overall.add(tokens)
}

// AddAll folds a full message sequence in order.
func (a *Aggregator) AddAll(msgs []transcript.Message) {
	for _, m := range msgs {
		a.Add(m)
	}
}

// Merge combines another aggregator's buckets into a additively, so a large
// transcript can be partitioned, aggregated in parts, and recombined. Keys
// merge in sorted order to keep top-N tie-breaks deterministic.
func (a *Aggregator) Merge(other *Aggregator) {
	for _, key := range sortedKeys(other.months) {
		a.stringBucket(a.months, key).merge(other.months[key])
	}
	for _, key := range sortedKeys(other.senders) {
		a.stringBucket(a.senders, key).merge(other.senders[key])
	}
	for hour := 0; hour < 24; hour++ {
		if b, ok := other.hours[hour]; ok {
			a.hourBucket(hour).merge(b)
		}
	}
	a.overall.merge(other.overall)
}

func (a *Aggregator) stringBucket(m map[string]*Bucket, key string) *Bucket {
	b, ok := m[key]
	if !ok {
		b = newBucket()
		m[key] = b
	}
	return b
}

func (a *Aggregator) hourBucket(hour int) *Bucket {
	b, ok := a.hours[hour]
	if !ok {
		b = newBucket()
		a.hours[hour] = b
	}
	return b
}

// Analyze is the one-pass convenience over NewAggregator, AddAll and Report.
func Analyze(msgs []transcript.Message, tokOpts tokenize.Options, topN int) *Report {
	agg := NewAggregator(tokOpts)
	agg.AddAll(msgs)
	return agg.Report(topN)
}

func sortedKeys(m map[string]*Bucket) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
