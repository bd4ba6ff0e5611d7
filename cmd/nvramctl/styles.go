package main

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // light green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// styled applies st unless --no-color is set.
func styled(st lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return st.Render(s)
}
