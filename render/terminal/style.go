package terminal

import "github.com/charmbracelet/lipgloss"

var (
	// Accent colors: amber for favorites and streaks, emerald for selection.
	colorFavorite = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}
	colorSelected = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorCustom   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"} // purple
	colorReminder = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}

	// UI colors.
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorBar    = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
)

var (
	styleTitle    = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleMeta     = lipgloss.NewStyle().Foreground(colorDim)
	styleReminder = lipgloss.NewStyle().Foreground(colorReminder).Bold(true)
	styleStreak   = lipgloss.NewStyle().Foreground(colorFavorite).Bold(true)

	styleSection = lipgloss.NewStyle().Foreground(colorDim).Bold(true)
	styleNumber  = lipgloss.NewStyle().Foreground(colorDim)
	styleStar    = lipgloss.NewStyle().Foreground(colorFavorite)
	styleMood    = lipgloss.NewStyle().Foreground(colorBright)
	styleChosen  = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	styleCustom  = lipgloss.NewStyle().Foreground(colorCustom)
	styleDetail  = lipgloss.NewStyle().Foreground(colorDim)
	styleTip     = lipgloss.NewStyle().Foreground(colorSelected).Italic(true)

	styleStat      = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleStatLabel = lipgloss.NewStyle().Foreground(colorDim)
	styleBar       = lipgloss.NewStyle().Foreground(colorBar)

	styleToast     = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)
