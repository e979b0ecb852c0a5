package terminal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sonnes/moodlog/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyBars(t *testing.T) {
	f := core.MoodFrequency([]core.HistoryRecord{
		{MoodLabel: "😊 Happy"},
		{MoodLabel: "😢 Sad"},
		{MoodLabel: "😊 Happy"},
		{MoodLabel: "😊 Happy"},
		{MoodLabel: "😊 Happy"},
	})

	lines := frequencyBars(f, 100)
	require.Len(t, lines, 2)

	happy := ansi.Strip(lines[0])
	sad := ansi.Strip(lines[1])
	assert.True(t, strings.HasPrefix(happy, "😊 Happy"))
	assert.True(t, strings.HasSuffix(happy, " 4"))
	assert.True(t, strings.HasSuffix(sad, " 1"))
	assert.Equal(t, maxBarWidth, strings.Count(happy, "█"), "top mood fills the bar")
	assert.Equal(t, maxBarWidth/4, strings.Count(sad, "█"))
}

func TestFrequencyBarsNarrow(t *testing.T) {
	f := core.MoodFrequency([]core.HistoryRecord{{MoodLabel: "😴 Tired"}})
	lines := frequencyBars(f, 5)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, strings.Count(ansi.Strip(lines[0]), "█"))
}

func TestFrequencyBarsEmpty(t *testing.T) {
	assert.Nil(t, frequencyBars(core.Frequency{}, 80))
}
