// Package core defines the mood journal data model: the catalog of selectable
// mood entries, the history of logged moods, and the pure projections derived
// from them that every renderer consumes.
package core

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultTip is used for custom moods added without a coping tip.
const DefaultTip = "No tip yet."

// MoodEntry is a selectable mood in the catalog.
type MoodEntry struct {
	ID          string `json:"id"`
	Label       string `json:"label"` // emoji + name, e.g. "😊 Happy"
	Description string `json:"description"`
	Tip         string `json:"tip,omitempty"`
	Favorite    bool   `json:"favorite,omitempty"`
	Custom      bool   `json:"custom,omitempty"` // user-added; only custom entries are deletable
}

// NewCustomMood builds a user-added entry with a fresh ID. An empty tip is
// replaced with DefaultTip. Inputs are not validated here.
func NewCustomMood(label, description, tip string) MoodEntry {
	if strings.TrimSpace(tip) == "" {
		tip = DefaultTip
	}
	return MoodEntry{
		ID:          uuid.NewString(),
		Label:       label,
		Description: description,
		Tip:         tip,
		Custom:      true,
	}
}

// Name returns the label without its leading emoji: the text after the first
// space, or the whole label when there is none.
func (m MoodEntry) Name() string {
	label := strings.TrimSpace(m.Label)
	if _, name, ok := strings.Cut(label, " "); ok && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	return label
}

var builtinMoods = []MoodEntry{
	{Label: "😊 Happy", Description: "Feeling or showing pleasure or contentment.", Tip: "Share your happiness with someone today!"},
	{Label: "😢 Sad", Description: "Feeling or showing sorrow; unhappy.", Tip: "Talk to a friend or write down your feelings."},
	{Label: "😡 Angry", Description: "Feeling or showing strong annoyance, displeasure, or hostility.", Tip: "Take deep breaths or go for a walk to cool down."},
	{Label: "😱 Surprised", Description: "Feeling or showing surprise because of something unexpected.", Tip: "Embrace the unexpected and stay open-minded."},
	{Label: "😴 Tired", Description: "In need of sleep or rest; weary.", Tip: "Take a short nap or get some fresh air."},
	{Label: "😌 Calm", Description: "Not showing or feeling nervousness, anger, or other strong emotions.", Tip: "Enjoy the peace and do something you love."},
	{Label: "🤔 Thoughtful", Description: "Absorbed in or involving thought.", Tip: "Write down your thoughts or share them with someone."},
	{Label: "😇 Grateful", Description: "Feeling or showing an appreciation of kindness; thankful.", Tip: "Express your gratitude to someone today."},
}

// BuiltinMoods returns a fresh copy of the eight built-in entries, each with
// a newly generated ID.
func BuiltinMoods() []MoodEntry {
	out := make([]MoodEntry, len(builtinMoods))
	for i, m := range builtinMoods {
		m.ID = uuid.NewString()
		out[i] = m
	}
	return out
}
