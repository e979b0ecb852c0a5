package session

import (
	"slices"

	"github.com/sonnes/moodlog/core"
)

// Snapshot derives every view of the current state. Nothing is cached; each
// call recomputes from the catalog and history.
func (s *Session) Snapshot() *core.Snapshot {
	now := s.clock.Now()
	freq := core.MoodFrequency(s.history)
	most, _ := freq.MostFrequent()
	toast, _ := s.Toast()

	snap := &core.Snapshot{
		GeneratedAt:  now,
		Visible:      core.VisibleCatalog(s.catalog, s.search),
		CatalogSize:  len(s.catalog),
		Streak:       s.streak,
		LoggedToday:  core.HasLoggedToday(s.history, now),
		Frequency:    freq,
		MostFrequent: most,
		History:      slices.Clone(s.history),
		SearchQuery:  s.search,
		DraftNote:    s.draftNote,
		Toast:        toast,
		Confetti:     s.ConfettiVisible(),
	}
	if i, ok := s.SelectedIndex(); ok {
		m := s.catalog[i]
		snap.SelectedIndex = &i
		snap.Selected = &m
	}
	return snap
}
