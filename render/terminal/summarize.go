package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sonnes/moodlog/core"
)

const maxBarWidth = 30

// frequencyBars renders one line per mood: label, proportional bar, count.
// Lines follow f.Labels order.
func frequencyBars(f core.Frequency, width int) []string {
	if len(f.Labels) == 0 {
		return nil
	}

	labelWidth, top := 0, 0
	for _, l := range f.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
		top = max(top, f.Counts[l])
	}

	barWidth := min(maxBarWidth, width-labelWidth-8)
	if barWidth < 1 {
		barWidth = 1
	}

	lines := make([]string, 0, len(f.Labels))
	for _, l := range f.Labels {
		n := f.Counts[l]
		size := max(1, n*barWidth/top)
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(l))
		lines = append(lines, fmt.Sprintf("%s%s  %s %s",
			l, pad,
			styleBar.Render(strings.Repeat("█", size)),
			styleStat.Render(fmt.Sprint(n)),
		))
	}
	return lines
}
