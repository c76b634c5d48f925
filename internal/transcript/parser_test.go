package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLines_Basic(t *testing.T) {
	msgs, scan := ParseLines([]string{
		"1/5/24, 9:30 - Alice: hello there friend",
	}, DefaultOptions())

	require.Len(t, msgs, 1)
	m := msgs[0]
	assert.Equal(t, "2024-01", m.MonthKey())
	assert.Equal(t, 9, m.Hour)
	assert.Equal(t, "Alice", m.Sender)
	assert.Equal(t, "hello there friend", m.Body)
	assert.False(t, m.Notice)
	assert.Equal(t, 1, scan.Messages)
	assert.Equal(t, 1, scan.Lines)
}

func TestParseLines_DateFormats(t *testing.T) {
	msgs, _ := ParseLines([]string{
		"12/31/23, 23:59 - Cara: night",
		"1/1/2024, 0:05 - Cara: morning",
	}, DefaultOptions())

	require.Len(t, msgs, 2)
	assert.Equal(t, "2023-12", msgs[0].MonthKey())
	assert.Equal(t, 23, msgs[0].Hour)
	assert.Equal(t, "2024-01", msgs[1].MonthKey())
	assert.Equal(t, 0, msgs[1].Hour)
}

func TestParseLines_MalformedTimestampsDiscarded(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"month out of range", "13/5/24, 9:30 - Alice: hi"},
		{"three digit year", "1/5/202, 9:30 - Alice: hi"},
		{"hour out of range", "1/5/24, 25:30 - Alice: hi"},
		{"minute out of range", "1/5/24, 9:61 - Alice: hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, scan := ParseLines([]string{tt.line}, DefaultOptions())
			assert.Empty(t, msgs)
			assert.Equal(t, 1, scan.Discarded)
		})
	}
}

func TestParseLines_ContinuationsJoined(t *testing.T) {
	msgs, scan := ParseLines([]string{
		"1/5/24, 9:30 - Alice: first line",
		"second line",
		"",
		"third line",
	}, DefaultOptions())

	require.Len(t, msgs, 1)
	assert.Equal(t, "first line\nsecond line\nthird line", msgs[0].Body)
	assert.Equal(t, 2, scan.Continuations)
	assert.Equal(t, 1, scan.Messages)
}

func TestParseLines_ContinuationsDiscardedWhenDisabled(t *testing.T) {
	msgs, scan := ParseLines([]string{
		"1/5/24, 9:30 - Alice: first line",
		"wrapped text",
	}, Options{JoinContinuations: false})

	require.Len(t, msgs, 1)
	assert.Equal(t, "first line", msgs[0].Body)
	assert.Equal(t, 1, scan.Discarded)
}

func TestParseLines_LeadingContinuationDiscarded(t *testing.T) {
	msgs, scan := ParseLines([]string{"orphan line"}, DefaultOptions())
	assert.Empty(t, msgs)
	assert.Equal(t, 1, scan.Discarded)
}

func TestParseLines_NoticesExcludedByDefault(t *testing.T) {
	msgs, scan := ParseLines([]string{
		"1/5/24, 9:30 - Alice: <Media omitted>",
		"1/5/24, 9:31 - Alice: real message",
	}, DefaultOptions())

	require.Len(t, msgs, 1)
	assert.Equal(t, "real message", msgs[0].Body)
	assert.Equal(t, 1, scan.Notices)
	assert.Equal(t, 1, scan.Messages)
}

func TestParseLines_NoticesCountedUnderPolicy(t *testing.T) {
	msgs, scan := ParseLines([]string{
		"1/5/24, 9:30 - Alice: <Media omitted>",
	}, Options{JoinContinuations: true, CountNotices: true})

	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].Notice)
	assert.Equal(t, 1, scan.Messages)
	assert.Equal(t, 1, scan.Notices)
}

func TestParseLines_NoticeWithoutTimestampNeverJoined(t *testing.T) {
	msgs, _ := ParseLines([]string{
		"1/5/24, 9:30 - Alice: hello",
		"This message was deleted",
	}, Options{JoinContinuations: true, CountNotices: true})

	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Body)
}

func TestParseLines_EmptyAndGarbage(t *testing.T) {
	msgs, scan := ParseLines([]string{"not a valid line", "", "   "}, DefaultOptions())
	assert.Empty(t, msgs)
	assert.Equal(t, 0, scan.Messages)
	assert.Equal(t, 3, scan.Lines)
}

func TestParseLines_SenderTrimmedVerbatim(t *testing.T) {
	msgs, _ := ParseLines([]string{
		"1/5/24, 9:30 -  Jon : hi there",
		"1/5/24, 9:31 - jon: hi again",
	}, DefaultOptions())

	require.Len(t, msgs, 2)
	// Trimmed but case-sensitive: "Jon" and "jon" stay distinct senders.
	assert.Equal(t, "Jon", msgs[0].Sender)
	assert.Equal(t, "jon", msgs[1].Sender)
}

func TestReadMessages(t *testing.T) {
	input := "1/5/24, 9:30 - Alice: hello\r\n1/6/24, 10:15 - Bob: hi\n"
	msgs, scan, err := ReadMessages(strings.NewReader(input), DefaultOptions())

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Body)
	assert.Equal(t, 2, scan.Messages)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineClass
	}{
		{"empty", "", LineBlank},
		{"whitespace only", "   \t ", LineBlank},
		{"message", "1/5/24, 9:30 - Alice: hello", LineMessage},
		{"four digit year", "1/5/2024, 19:30 - Bob Smith: ok", LineMessage},
		{"no timestamp", "just some text", LineContinuation},
		{"missing body", "1/5/24, 9:30 - Alice:", LineContinuation},
		{"missing sender colon", "1/5/24, 9:30 - Alice joined", LineContinuation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, groups := Classify(tt.line)
			assert.Equal(t, tt.want, got)
			if tt.want == LineMessage {
				assert.Len(t, groups, 4)
			}
		})
	}
}

func TestIsSystemNotice(t *testing.T) {
	assert.True(t, IsSystemNotice("1/5/24, 9:30 - Alice: <Media omitted>"))
	assert.True(t, IsSystemNotice("1/5/24, 9:30 - Bob: This message was edited"))
	assert.True(t, IsSystemNotice("You deleted this message"))
	assert.False(t, IsSystemNotice("1/5/24, 9:30 - Alice: media omitted maybe"))
}
