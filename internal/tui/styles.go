package tui

import "github.com/charmbracelet/lipgloss"

// ------- styling helpers (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	overlayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	draggingStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	hoverColumnStyle = columnStyle.BorderForeground(lipgloss.Color("214"))
	focusColumnStyle = columnStyle.BorderForeground(lipgloss.Color("12"))

	inputBarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// applyTheme mirrors the plain renderer's theme names.
func applyTheme(name string) {
	switch name {
	case "neon":
		accentStyle = accentStyle.Foreground(lipgloss.Color("14"))
		focusColumnStyle = columnStyle.BorderForeground(lipgloss.Color("13"))
		overlayStyle = overlayStyle.Foreground(lipgloss.Color("11"))
	case "mono":
		accentStyle = lipgloss.NewStyle()
		errorStyle = lipgloss.NewStyle().Bold(true)
		overlayStyle = lipgloss.NewStyle().Bold(true)
		focusColumnStyle = columnStyle.BorderStyle(lipgloss.ThickBorder())
		hoverColumnStyle = columnStyle.BorderStyle(lipgloss.DoubleBorder())
	}
}
