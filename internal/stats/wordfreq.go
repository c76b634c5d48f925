package stats

import "sort"

// WordCount pairs a token with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// WordFreq counts token occurrences while remembering first-insertion order,
// which breaks ties deterministically in TopN.
type WordFreq struct {
	counts map[string]int
	order  []string
}

// NewWordFreq returns an empty frequency table.
func NewWordFreq() *WordFreq {
	return &WordFreq{counts: make(map[string]int)}
}

// Add records one occurrence of token.
func (f *WordFreq) Add(token string) {
	if _, seen := f.counts[token]; !seen {
		f.order = append(f.order, token)
	}
	f.counts[token]++
}

// AddAll records every token in order.
func (f *WordFreq) AddAll(tokens []string) {
	for _, t := range tokens {
		f.Add(t)
	}
}

// Count returns the occurrences of token.
func (f *WordFreq) Count(token string) int { return f.counts[token] }

// Len returns the number of distinct tokens.
func (f *WordFreq) Len() int { return len(f.order) }

// TopN returns the n highest-count tokens. Equal counts rank by first
// insertion, so repeated runs over the same input agree.
func (f *WordFreq) TopN(n int) []WordCount {
	ranked := make([]WordCount, 0, len(f.order))
	for _, w := range f.order {
		ranked = append(ranked, WordCount{Word: w, Count: f.counts[w]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Merge folds other into f. Tokens new to f keep their order of appearance
// in other, after everything f has already seen.
func (f *WordFreq) Merge(other *WordFreq) {
	for _, w := range other.order {
		if _, seen := f.counts[w]; !seen {
			f.order = append(f.order, w)
		}
		f.counts[w] += other.counts[w]
	}
}
