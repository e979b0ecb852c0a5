package json

import (
	"bytes"
	stdjson "encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sonnes/moodlog/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	idx := 1
	snap := &core.Snapshot{
		GeneratedAt:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Streak:        3,
		SelectedIndex: &idx,
		Selected:      &core.MoodEntry{ID: "m2", Label: "😢 Sad"},
		History: []core.HistoryRecord{
			{ID: "h1", MoodLabel: "😊 Happy", Note: "<b>ok</b>", Timestamp: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)},
		},
		Frequency:    core.MoodFrequency([]core.HistoryRecord{{MoodLabel: "😊 Happy"}}),
		MostFrequent: "😊 Happy",
	}

	var buf bytes.Buffer
	require.NoError(t, New(true).Render(&buf, snap))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `"note": "<b>ok</b>"`, "HTML is not escaped")
	assert.Contains(t, out, "\n  \"streak\": 3")

	var got map[string]any
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(1), got["selected_index"])
	assert.Equal(t, "😊 Happy", got["most_frequent"])
	assert.NotContains(t, got, "toast")
}

func TestRenderCompact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(false).Render(&buf, &core.Snapshot{Streak: 1}))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
