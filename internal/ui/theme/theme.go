package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: card-table dark with bright tier accents
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky Blue
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#34D399") // Emerald
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F1F5F9") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Near Black
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Mystery box tier colors.
var (
	TierCommon    = lipgloss.Color("#9CA3AF") // Gray
	TierRare      = lipgloss.Color("#38BDF8") // Blue
	TierEpic      = lipgloss.Color("#A78BFA") // Violet
	TierLegendary = lipgloss.Color("#FBBF24") // Gold
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// TierStyle returns the accent style for a mystery box tier name.
func TierStyle(tier string) lipgloss.Style {
	switch tier {
	case "rare":
		return lipgloss.NewStyle().Foreground(TierRare).Bold(true)
	case "epic":
		return lipgloss.NewStyle().Foreground(TierEpic).Bold(true)
	case "legendary":
		return lipgloss.NewStyle().Foreground(TierLegendary).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(TierCommon).Bold(true)
	}
}
