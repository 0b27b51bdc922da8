package cli

import "github.com/charmbracelet/lipgloss"

// Terminal styles for answer output. lipgloss drops colours when stdout
// is not a terminal, so piped output stays plain.
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	linkStyle    = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("14"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)
