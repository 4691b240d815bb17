package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#A78BFA") // Purple
	accentColor  = lipgloss.Color("#10B981") // Green
	warningColor = lipgloss.Color("#F59E0B") // Amber
	errorColor   = lipgloss.Color("#F87171") // Red
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray
	textColor    = lipgloss.Color("#F9FAFB") // Light text
	borderColor  = lipgloss.Color("#6B7280") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	topicStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	speakerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	mentionStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	turnStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	rankingStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	transcriptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	// phaseBadges maps a phase name to its badge style.
	phaseBadges = map[string]lipgloss.Style{
		"opening":    lipgloss.NewStyle().Bold(true).Foreground(textColor).Background(accentColor).Padding(0, 1),
		"discussion": lipgloss.NewStyle().Bold(true).Foreground(textColor).Background(primaryColor).Padding(0, 1),
		"wrap-up":    lipgloss.NewStyle().Bold(true).Foreground(textColor).Background(warningColor).Padding(0, 1),
	}
)

// phaseBadge renders a phase name as a colored badge, falling back to plain
// text for unknown phases.
func phaseBadge(phase string) string {
	if style, ok := phaseBadges[phase]; ok {
		return style.Render(phase)
	}
	return phase
}
