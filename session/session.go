// Package session owns the state of one running mood journal and exposes the
// operations a user can perform on it.
//
// A Session is single-owner: callers serialize operations (one input event at
// a time). Only the feedback channels are touched from timer goroutines.
package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/sonnes/moodlog/core"
	"github.com/sonnes/moodlog/feedback"
)

// Session is the mutable state of one journal session.
type Session struct {
	clock    clockwork.Clock
	logger   *log.Logger
	feedback *feedback.Feedback

	catalog   []core.MoodEntry
	selected  string // ID of the selected entry; empty means none
	history   []core.HistoryRecord
	streak    int
	search    string
	draftNote string
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for timestamps and feedback timers.
func WithClock(c clockwork.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the logger for operation tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithCatalog replaces the built-in starting catalog.
func WithCatalog(catalog []core.MoodEntry) Option {
	return func(s *Session) { s.catalog = slices.Clone(catalog) }
}

// New creates a session seeded with the built-in moods and a streak of 1.
func New(opts ...Option) *Session {
	s := &Session{
		clock:   clockwork.NewRealClock(),
		logger:  log.Default(),
		catalog: core.BuiltinMoods(),
		streak:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.feedback = feedback.New(s.clock)
	return s
}

// Close cancels pending feedback timers.
func (s *Session) Close() {
	s.feedback.Close()
}

// Catalog returns a copy of the full catalog in insertion order.
func (s *Session) Catalog() []core.MoodEntry {
	return slices.Clone(s.catalog)
}

// History returns a copy of the logged records, newest first.
func (s *Session) History() []core.HistoryRecord {
	return slices.Clone(s.history)
}

// Streak returns the selection counter.
func (s *Session) Streak() int { return s.streak }

// Search returns the current search query.
func (s *Session) Search() string { return s.search }

// DraftNote returns the unsaved note text.
func (s *Session) DraftNote() string { return s.draftNote }

// SelectedIndex returns the catalog position of the selected entry.
func (s *Session) SelectedIndex() (int, bool) {
	if s.selected == "" {
		return 0, false
	}
	i := s.indexOf(s.selected)
	return i, i >= 0
}

// Selected returns the selected entry.
func (s *Session) Selected() (core.MoodEntry, bool) {
	i, ok := s.SelectedIndex()
	if !ok {
		return core.MoodEntry{}, false
	}
	return s.catalog[i], true
}

// Toast returns the transient message currently showing, if any.
func (s *Session) Toast() (string, bool) {
	return s.feedback.Toast.Current()
}

// ConfettiVisible reports whether the save celebration is showing.
func (s *Session) ConfettiVisible() bool {
	return s.feedback.ConfettiVisible()
}

// SetSearch updates the live catalog filter.
func (s *Session) SetSearch(q string) {
	s.search = q
}

// SetDraftNote updates the unsaved note text.
func (s *Session) SetDraftNote(text string) {
	s.draftNote = text
}

func (s *Session) indexOf(id string) int {
	return slices.IndexFunc(s.catalog, func(m core.MoodEntry) bool { return m.ID == id })
}

func (s *Session) valid(index int) bool {
	return index >= 0 && index < len(s.catalog)
}

func (s *Session) toast(msg string) {
	s.feedback.Toast.Show(msg)
}

// AddCustomMood appends a user-defined mood. Blank label or description
// rejects the call with a *core.ValidationError and leaves state untouched
// apart from the feedback message.
func (s *Session) AddCustomMood(label, description, tip string) (core.MoodEntry, error) {
	if err := core.ValidateMood(label, description); err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			s.toast(verr.Message())
		}
		s.logger.Debug("add mood rejected", "err", err)
		return core.MoodEntry{}, err
	}

	m := core.NewCustomMood(strings.TrimSpace(label), strings.TrimSpace(description), strings.TrimSpace(tip))
	s.catalog = append(s.catalog, m)
	s.search = ""
	s.selected = ""
	s.draftNote = ""
	s.toast("Mood added!")
	s.logger.Debug("mood added", "id", m.ID, "label", m.Label)
	return m, nil
}

// ToggleFavorite flips the favorite flag of the entry at index. It reports
// false, changing nothing, when index is out of range.
func (s *Session) ToggleFavorite(index int) bool {
	if !s.valid(index) {
		return false
	}
	s.catalog[index].Favorite = !s.catalog[index].Favorite
	s.logger.Debug("favorite toggled", "label", s.catalog[index].Label, "favorite", s.catalog[index].Favorite)
	return true
}

// DeleteCustomMood removes a user-added entry. Built-in entries are never
// removed. Deleting the selected entry clears the selection; any other
// selection stays on the same mood.
func (s *Session) DeleteCustomMood(index int) error {
	if !s.valid(index) {
		return fmt.Errorf("delete %d: %w", index+1, core.ErrInvalidIndex)
	}
	m := s.catalog[index]
	if !m.Custom {
		return fmt.Errorf("delete %q: %w", m.Label, core.ErrBuiltinMood)
	}

	s.catalog = slices.Delete(s.catalog, index, index+1)
	if s.selected == m.ID {
		s.selected = ""
	}
	s.search = ""
	s.draftNote = ""
	s.logger.Debug("mood deleted", "id", m.ID, "label", m.Label)
	return nil
}

// SelectMood selects the entry at index, or deselects it if it is already
// selected. A new selection bumps the streak, clears the search and shows
// a toast naming the mood. Deselecting leaves the streak alone.
func (s *Session) SelectMood(index int) error {
	if !s.valid(index) {
		return fmt.Errorf("select %d: %w", index+1, core.ErrInvalidIndex)
	}
	m := s.catalog[index]
	if s.selected == m.ID {
		s.selected = ""
		s.logger.Debug("mood deselected", "label", m.Label)
		return nil
	}

	s.selected = m.ID
	s.streak++
	s.search = ""
	s.toast(fmt.Sprintf("You are feeling %s!", m.Name()))
	s.logger.Debug("mood selected", "label", m.Label, "streak", s.streak)
	return nil
}

// SaveNote logs the selected mood with the trimmed note text at the front of
// the history. It does nothing and reports false when nothing is selected.
func (s *Session) SaveNote(text string) (core.HistoryRecord, bool) {
	m, ok := s.Selected()
	if !ok {
		s.logger.Debug("save ignored, no mood selected")
		return core.HistoryRecord{}, false
	}

	rec := core.NewHistoryRecord(m, strings.TrimSpace(text), s.clock.Now())
	s.history = slices.Insert(s.history, 0, rec)
	s.draftNote = ""
	s.selected = ""
	s.search = ""
	s.toast("Mood and note saved!")
	s.feedback.Celebrate()
	s.logger.Debug("mood logged", "label", rec.MoodLabel, "history", len(s.history))
	return rec, true
}

// SaveDraft saves the current draft note.
func (s *Session) SaveDraft() (core.HistoryRecord, bool) {
	return s.SaveNote(s.draftNote)
}

// ClearSelection drops the selection and resets the streak to 1.
func (s *Session) ClearSelection() {
	s.selected = ""
	s.streak = 1
	s.toast("Selection and streak reset!")
	s.logger.Debug("selection and streak reset")
}
