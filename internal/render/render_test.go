package render

import (
	"strings"
	"testing"

	"github.com/mhersberg/chatstat/internal/stats"
	"github.com/mhersberg/chatstat/internal/tokenize"
	"github.com/mhersberg/chatstat/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(t *testing.T) *stats.Report {
	t.Helper()
	msgs, _ := transcript.ParseLines([]string{
		"1/5/24, 9:30 - Alice: hello there friend",
		"1/6/24, 10:15 - Bob: hello again",
		"2/1/24, 21:00 - Alice: good evening everyone",
	}, transcript.DefaultOptions())
	require.Len(t, msgs, 3)
	return stats.Analyze(msgs, tokenize.Options{}, stats.DefaultTopN)
}

func TestRender_SectionOrder(t *testing.T) {
	out := Render(sampleReport(t), Options{})

	overall := strings.Index(out, "OVERALL STATISTICS")
	senders := strings.Index(out, "PER-SENDER STATISTICS")
	hourly := strings.Index(out, "HOURLY ACTIVITY")
	monthly := strings.Index(out, "MONTHLY BREAKDOWN")

	require.NotEqual(t, -1, overall)
	require.NotEqual(t, -1, senders)
	require.NotEqual(t, -1, hourly)
	require.NotEqual(t, -1, monthly)
	assert.Less(t, overall, senders)
	assert.Less(t, senders, hourly)
	assert.Less(t, hourly, monthly)
}

func TestRender_SendersBusiestFirst(t *testing.T) {
	out := Render(sampleReport(t), Options{})
	alice := strings.Index(out, "Alice")
	bob := strings.Index(out, "Bob")
	require.NotEqual(t, -1, alice)
	require.NotEqual(t, -1, bob)
	assert.Less(t, alice, bob)
}

func TestRender_MonthsChronologicalLabels(t *testing.T) {
	out := Render(sampleReport(t), Options{})
	jan := strings.Index(out, "January 2024")
	feb := strings.Index(out, "February 2024")
	require.NotEqual(t, -1, jan)
	require.NotEqual(t, -1, feb)
	assert.Less(t, jan, feb)
}

func TestRender_PlainHasNoANSI(t *testing.T) {
	out := Render(sampleReport(t), Options{})
	assert.NotContains(t, out, "\033[")

	colored := Render(sampleReport(t), Options{Color: true})
	assert.Contains(t, colored, "\033[")
}

func TestRender_EmptyReport(t *testing.T) {
	r := stats.Analyze(nil, tokenize.Options{}, stats.DefaultTopN)
	out := Render(r, Options{})

	assert.Contains(t, out, "Total messages:   0")
	assert.Contains(t, out, "(no senders)")
	assert.Contains(t, out, "(no months)")
	assert.Contains(t, out, "(no messages)")
}

func TestSummary(t *testing.T) {
	s := Summary(sampleReport(t))
	assert.Contains(t, s, "3 messages")
	assert.Contains(t, s, `top word "hello"`)
	assert.Contains(t, s, "most active Alice")
}

func TestScaleBar(t *testing.T) {
	assert.Equal(t, 40, scaleBar(10, 10, 40))
	assert.Equal(t, 20, scaleBar(5, 10, 40))
	assert.Equal(t, 1, scaleBar(1, 1000, 40))
	assert.Equal(t, 0, scaleBar(0, 10, 40))
}
