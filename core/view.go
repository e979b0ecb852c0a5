package core

import (
	"strings"
	"time"
)

// CatalogItem is one row of the visible catalog. Index is the entry's
// position in the full catalog, so callers can act on a filtered, reordered
// row without re-locating it by value.
type CatalogItem struct {
	Index int       `json:"index"`
	Entry MoodEntry `json:"entry"`
}

// VisibleCatalog filters the catalog by query and orders favorites first.
//
// A non-blank query (trimmed, case-folded) keeps entries whose label or
// description contains it. Relative catalog order is preserved within the
// favorite and non-favorite partitions.
func VisibleCatalog(catalog []MoodEntry, query string) []CatalogItem {
	q := strings.ToLower(strings.TrimSpace(query))

	var favorites, others []CatalogItem
	for i, m := range catalog {
		if q != "" && !matches(m, q) {
			continue
		}
		item := CatalogItem{Index: i, Entry: m}
		if m.Favorite {
			favorites = append(favorites, item)
		} else {
			others = append(others, item)
		}
	}

	out := make([]CatalogItem, 0, len(favorites)+len(others))
	out = append(out, favorites...)
	return append(out, others...)
}

func matches(m MoodEntry, q string) bool {
	return strings.Contains(strings.ToLower(m.Label), q) ||
		strings.Contains(strings.ToLower(m.Description), q)
}

// HasLoggedToday reports whether any record falls on today's date.
func HasLoggedToday(history []HistoryRecord, today time.Time) bool {
	for _, h := range history {
		if SameDay(today, h.Timestamp) {
			return true
		}
	}
	return false
}

// Frequency counts history records per mood label. Labels lists each label
// once, in the order it was first seen while walking the history.
type Frequency struct {
	Labels []string       `json:"labels"`
	Counts map[string]int `json:"counts"`
}

// MoodFrequency counts records per label.
func MoodFrequency(history []HistoryRecord) Frequency {
	f := Frequency{Counts: make(map[string]int)}
	for _, h := range history {
		if _, seen := f.Counts[h.MoodLabel]; !seen {
			f.Labels = append(f.Labels, h.MoodLabel)
		}
		f.Counts[h.MoodLabel]++
	}
	return f
}

// MostFrequent returns the label with the highest count. Ties go to the label
// seen first. ok is false when there are no records.
func (f Frequency) MostFrequent() (label string, ok bool) {
	best := 0
	for _, l := range f.Labels {
		if n := f.Counts[l]; n > best {
			best = n
			label = l
		}
	}
	return label, best > 0
}
