package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordFreq_TopNTieBreak(t *testing.T) {
	f := NewWordFreq()
	once := []string{"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliet"}
	f.AddAll(once)
	f.Add("winner")
	f.Add("winner")

	top := f.TopN(10)
	require.Len(t, top, 10)

	// The twice-occurring word ranks first; the remaining nine slots fill
	// in first-insertion order, squeezing out the last singleton.
	assert.Equal(t, WordCount{Word: "winner", Count: 2}, top[0])
	for i, w := range once[:9] {
		assert.Equal(t, WordCount{Word: w, Count: 1}, top[i+1])
	}
}

func TestWordFreq_TopNSmallerThanTable(t *testing.T) {
	f := NewWordFreq()
	f.AddAll([]string{"one", "two"})
	assert.Len(t, f.TopN(10), 2)
	assert.Empty(t, NewWordFreq().TopN(10))
}

func TestWordFreq_Merge(t *testing.T) {
	a := NewWordFreq()
	a.AddAll([]string{"red", "green"})
	b := NewWordFreq()
	b.AddAll([]string{"green", "blue", "blue"})

	a.Merge(b)

	assert.Equal(t, 1, a.Count("red"))
	assert.Equal(t, 2, a.Count("green"))
	assert.Equal(t, 2, a.Count("blue"))
	assert.Equal(t, 3, a.Len())

	// Merged-in tokens rank after existing ones on equal counts.
	top := a.TopN(3)
	assert.Equal(t, "green", top[0].Word)
	assert.Equal(t, "blue", top[1].Word)
	assert.Equal(t, "red", top[2].Word)
}
