package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipedeck/internal/domain"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74")).
			Bold(true)

	headerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	bannerErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	// Primary text — light zinc.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74")).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74")).
			Bold(true)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fdba74"))

	inlineErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	stepNumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74"))

	bulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74"))

	// Difficulty badges: green, yellow, red.
	difficultyEasyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bbf7d0"))

	difficultyMediumStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fde68a"))

	difficultyHardStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5"))
)

// difficultyStyle picks the badge style for a difficulty level.
func difficultyStyle(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyMedium:
		return difficultyMediumStyle
	case domain.DifficultyHard:
		return difficultyHardStyle
	default:
		return difficultyEasyStyle
	}
}
