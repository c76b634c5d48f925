package tokenize

// DefaultStopwords is the English filler set applied when stop-word filtering
// is enabled without an explicit list.
var DefaultStopwords = NewStopwordSet(
	"the", "and", "you", "for", "that", "this", "with", "was", "are",
	"but", "not", "have", "had", "his", "her", "they", "them", "then",
	"there", "what", "when", "where", "will", "your", "all", "can",
	"just", "like", "out", "get", "got", "one", "now", "how", "who",
)

// NewStopwordSet builds a stop-word set from plain words.
func NewStopwordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
