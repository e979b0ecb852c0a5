package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is an immutable snapshot of one logged mood.
type HistoryRecord struct {
	ID        string    `json:"id"`
	MoodID    string    `json:"mood_id,omitempty"` // entry ID at logging time; may no longer exist
	MoodLabel string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHistoryRecord snapshots the entry's label at time at.
func NewHistoryRecord(m MoodEntry, note string, at time.Time) HistoryRecord {
	return HistoryRecord{
		ID:        uuid.NewString(),
		MoodID:    m.ID,
		MoodLabel: m.Label,
		Note:      note,
		Timestamp: at,
	}
}

// SameDay reports whether a and b fall on the same calendar date, both
// evaluated in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RelativeTime formats t relative to now as a short human-readable string.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(d.Hours()/(24*365)))
	}
}
