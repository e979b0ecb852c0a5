package core

import "time"

// Snapshot is everything a renderer needs to draw the journal at one
// instant. It is a detached copy; mutating it never touches session state.
type Snapshot struct {
	GeneratedAt   time.Time       `json:"generated_at"`
	Visible       []CatalogItem   `json:"visible"`
	CatalogSize   int             `json:"catalog_size"`
	SelectedIndex *int            `json:"selected_index,omitempty"`
	Selected      *MoodEntry      `json:"selected,omitempty"`
	Streak        int             `json:"streak"`
	LoggedToday   bool            `json:"logged_today"`
	Frequency     Frequency       `json:"frequency"`
	MostFrequent  string          `json:"most_frequent,omitempty"`
	History       []HistoryRecord `json:"history"`
	SearchQuery   string          `json:"search_query,omitempty"`
	DraftNote     string          `json:"draft_note,omitempty"`
	Toast         string          `json:"toast,omitempty"`
	Confetti      bool            `json:"confetti,omitempty"`
}

// IsSelected reports whether the catalog entry at index is the selection.
func (s *Snapshot) IsSelected(index int) bool {
	return s.SelectedIndex != nil && *s.SelectedIndex == index
}
