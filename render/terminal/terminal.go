// Package terminal renders journal snapshots as ANSI-colored text.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/moodlog/core"
)

const defaultWidth = 100

// Renderer pretty-prints a snapshot to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
	// HideHistory omits the analytics and history sections.
	HideHistory bool
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the snapshot to w.
func (r *Renderer) Render(w io.Writer, s *core.Snapshot) error {
	width := r.termWidth()

	writeHeader(w, s)
	writeCatalog(w, s, width)

	if !r.HideHistory {
		writeAnalytics(w, s, width)
		writeHistory(w, s, width)
	}

	writeFeedback(w, s)
	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeHeader renders the reminder banner, title and streak.
func writeHeader(w io.Writer, s *core.Snapshot) {
	if !s.LoggedToday {
		fmt.Fprintln(w, styleReminder.Render("Don't forget to log your mood today!"))
	}
	fmt.Fprintln(w, styleTitle.Render("How are you feeling today?"))

	streak := styleStreak.Render(fmt.Sprintf("🔥 Streak: %d %s", s.Streak, plural(s.Streak, "day", "days")))
	if q := strings.TrimSpace(s.SearchQuery); q != "" {
		streak += "    " + styleMeta.Render("search: "+q)
	}
	fmt.Fprintln(w, streak)
}

// writeCatalog renders the numbered visible catalog. The selected entry is
// expanded with its description and tip.
func writeCatalog(w io.Writer, s *core.Snapshot, width int) {
	writeSeparator(w, width)
	fmt.Fprintln(w)

	if len(s.Visible) == 0 {
		fmt.Fprintln(w, "  "+styleMeta.Render("No moods match."))
		return
	}

	contentWidth := max(width-8, 40)
	numWidth := len(fmt.Sprint(len(s.Visible)))

	for n, item := range s.Visible {
		star := styleMeta.Render("☆")
		if item.Entry.Favorite {
			star = styleStar.Render("★")
		}

		label := styleMood.Render(item.Entry.Label)
		selected := s.IsSelected(item.Index)
		if selected {
			label = styleChosen.Render(item.Entry.Label)
		}

		line := fmt.Sprintf("  %s %s %s", styleNumber.Render(fmt.Sprintf("%*d.", numWidth, n+1)), star, label)
		if item.Entry.Custom {
			line += "  " + styleCustom.Render("custom")
		}
		fmt.Fprintln(w, line)

		if selected {
			indent := strings.Repeat(" ", numWidth+6)
			fmt.Fprintln(w, indent+styleDetail.Render(truncate(item.Entry.Description, contentWidth)))
			if item.Entry.Tip != "" {
				fmt.Fprintln(w, indent+styleTip.Render(truncate("Tip: "+item.Entry.Tip, contentWidth)))
			}
		}
	}

	if s.Selected != nil {
		fmt.Fprintln(w)
		note := s.DraftNote
		if note == "" {
			note = styleMeta.Render("(add a note, then save)")
		}
		fmt.Fprintln(w, "  "+styleSection.Render("NOTE")+"  "+note)
	}
}

// writeAnalytics renders per-mood counts as bars plus the most frequent mood.
func writeAnalytics(w io.Writer, s *core.Snapshot, width int) {
	if len(s.History) == 0 {
		return
	}
	writeSeparator(w, width)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+styleSection.Render("ANALYTICS"))

	for _, line := range frequencyBars(s.Frequency, width-8) {
		fmt.Fprintln(w, "  "+line)
	}
	if s.MostFrequent != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  "+styleStatLabel.Render("Most frequent")+"  "+styleStat.Render(s.MostFrequent))
	}
}

// writeHistory renders logged records, newest first.
func writeHistory(w io.Writer, s *core.Snapshot, width int) {
	writeSeparator(w, width)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+styleSection.Render("HISTORY"))

	if len(s.History) == 0 {
		fmt.Fprintln(w, "  "+styleMeta.Render("No moods logged yet."))
		return
	}

	contentWidth := max(width-8, 40)
	for _, h := range s.History {
		meta := formatTime(h.Timestamp)
		if !s.GeneratedAt.IsZero() {
			meta += "  " + core.RelativeTime(h.Timestamp, s.GeneratedAt)
		}
		fmt.Fprintln(w, "  "+styleMood.Render(h.MoodLabel)+"    "+styleMeta.Render(meta))
		if h.Note != "" {
			fmt.Fprintln(w, "    "+styleDetail.Render(truncate(h.Note, contentWidth)))
		}
	}
}

// writeFeedback renders the toast and confetti, when showing.
func writeFeedback(w io.Writer, s *core.Snapshot) {
	if s.Toast == "" && !s.Confetti {
		return
	}
	fmt.Fprintln(w)
	var parts []string
	if s.Confetti {
		parts = append(parts, "🎉✨🎊🥳🎈")
	}
	if s.Toast != "" {
		parts = append(parts, styleToast.Render(s.Toast))
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, "  "))
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

// truncate shortens text to maxWidth, appending "..." if needed.
// Multi-line text is reduced to the first line.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func formatTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
