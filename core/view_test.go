package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(items []CatalogItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Entry.Label
	}
	return out
}

func TestVisibleCatalog(t *testing.T) {
	catalog := BuiltinMoods()
	catalog[2].Favorite = true // Angry
	catalog[5].Favorite = true // Calm

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "empty query favorites first",
			query: "",
			want: []string{
				"😡 Angry", "😌 Calm",
				"😊 Happy", "😢 Sad", "😱 Surprised", "😴 Tired", "🤔 Thoughtful", "😇 Grateful",
			},
		},
		{
			name:  "whitespace query treated as empty",
			query: "   ",
			want: []string{
				"😡 Angry", "😌 Calm",
				"😊 Happy", "😢 Sad", "😱 Surprised", "😴 Tired", "🤔 Thoughtful", "😇 Grateful",
			},
		},
		{
			name:  "label match is case insensitive",
			query: "  HAPPY ",
			want:  []string{"😊 Happy", "😢 Sad"}, // "unhappy"
		},
		{
			name:  "description match",
			query: "sleep",
			want:  []string{"😴 Tired"},
		},
		{
			name:  "favorites stay first within filter",
			query: "feeling",
			want:  []string{"😡 Angry", "😌 Calm", "😊 Happy", "😢 Sad", "😱 Surprised", "😇 Grateful"},
		},
		{
			name:  "no match",
			query: "zz-no-match",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleCatalog(catalog, tt.query)
			assert.Equal(t, tt.want, labels(got))
		})
	}
}

func TestVisibleCatalogProjectsIndex(t *testing.T) {
	catalog := BuiltinMoods()
	catalog[7].Favorite = true

	got := VisibleCatalog(catalog, "")
	require.Len(t, got, len(catalog))
	for _, it := range got {
		assert.Equal(t, catalog[it.Index].ID, it.Entry.ID)
	}
	assert.Equal(t, 7, got[0].Index)
}

func TestVisibleCatalogPartitionInvariant(t *testing.T) {
	catalog := BuiltinMoods()
	for i := range catalog {
		catalog[i].Favorite = i%3 == 0
	}

	for _, q := range []string{"", "e", "ing", "o", "zz-no-match", "😊"} {
		got := VisibleCatalog(catalog, q)
		seenOther := false
		for _, it := range got {
			if !it.Entry.Favorite {
				seenOther = true
				continue
			}
			assert.False(t, seenOther, "favorite after non-favorite for query %q", q)
		}
	}
}

func TestVisibleCatalogIdempotent(t *testing.T) {
	catalog := BuiltinMoods()
	catalog[4].Favorite = true

	assert.Equal(t, VisibleCatalog(catalog, "t"), VisibleCatalog(catalog, "t"))
}

func TestHasLoggedToday(t *testing.T) {
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		history []HistoryRecord
		want    bool
	}{
		{"empty", nil, false},
		{"earlier today", []HistoryRecord{{Timestamp: today.Add(-8 * time.Hour)}}, true},
		{"later today", []HistoryRecord{{Timestamp: today.Add(14 * time.Hour)}}, true},
		{"yesterday", []HistoryRecord{{Timestamp: today.Add(-10 * time.Hour)}}, false},
		{"mixed", []HistoryRecord{
			{Timestamp: today.AddDate(0, 0, -2)},
			{Timestamp: today},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasLoggedToday(tt.history, today))
		})
	}
}

func TestMoodFrequency(t *testing.T) {
	history := []HistoryRecord{
		{MoodLabel: "😊 Happy"},
		{MoodLabel: "😊 Happy"},
		{MoodLabel: "😢 Sad"},
	}

	f := MoodFrequency(history)
	assert.Equal(t, map[string]int{"😊 Happy": 2, "😢 Sad": 1}, f.Counts)
	assert.Equal(t, []string{"😊 Happy", "😢 Sad"}, f.Labels)

	label, ok := f.MostFrequent()
	require.True(t, ok)
	assert.Equal(t, "😊 Happy", label)
}

func TestMostFrequent(t *testing.T) {
	tests := []struct {
		name    string
		history []HistoryRecord
		want    string
		wantOK  bool
	}{
		{"empty", nil, "", false},
		{"single", []HistoryRecord{{MoodLabel: "😴 Tired"}}, "😴 Tired", true},
		{"tie goes to first seen", []HistoryRecord{
			{MoodLabel: "😢 Sad"},
			{MoodLabel: "😊 Happy"},
			{MoodLabel: "😊 Happy"},
			{MoodLabel: "😢 Sad"},
		}, "😢 Sad", true},
		{"later label overtakes", []HistoryRecord{
			{MoodLabel: "😢 Sad"},
			{MoodLabel: "😊 Happy"},
			{MoodLabel: "😊 Happy"},
		}, "😊 Happy", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MoodFrequency(tt.history).MostFrequent()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
