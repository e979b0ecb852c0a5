// Package compact provides a Transformer that shortens journal notes to a
// single line for compact snapshot viewing.
package compact

import (
	"fmt"
	"strings"

	"github.com/sonnes/moodlog/core"
)

// Config controls the compact transformer behavior.
type Config struct {
	// MaxWidth truncates the kept line to this many runes. Zero keeps the
	// whole line.
	MaxWidth int
}

// Compactor replaces multi-line notes with their first line and a count of
// the lines dropped.
type Compactor struct {
	maxWidth int
}

// New creates a Compactor from the given config.
func New(cfg Config) *Compactor {
	return &Compactor{maxWidth: cfg.MaxWidth}
}

// Transform implements core.Transformer.
func (c *Compactor) Transform(s *core.Snapshot) error {
	for i := range s.History {
		s.History[i].Note = c.Compact(s.History[i].Note)
	}
	return nil
}

// Compact returns the first non-blank line of note, truncated to MaxWidth,
// followed by a summary like "[+3 lines]" when lines were dropped.
func (c *Compactor) Compact(note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return ""
	}

	first, rest, _ := strings.Cut(note, "\n")
	first = c.truncate(strings.TrimSpace(first))

	n := countLines(rest)
	if n == 0 {
		return first
	}
	return first + " " + lineSummary(n)
}

func (c *Compactor) truncate(s string) string {
	if c.maxWidth <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= c.maxWidth {
		return s
	}
	if c.maxWidth <= 3 {
		return string(runes[:c.maxWidth])
	}
	return string(runes[:c.maxWidth-3]) + "..."
}

// lineSummary returns a summary like "[+1 line]" or "[+12 lines]".
func lineSummary(n int) string {
	if n == 1 {
		return "[+1 line]"
	}
	return fmt.Sprintf("[+%d lines]", n)
}

// countLines returns the number of non-blank lines in s.
func countLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
