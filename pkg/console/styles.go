package console

import "github.com/charmbracelet/lipgloss"

// Semantic terminal colors (Catppuccin Mocha values).
const (
	colorHeading lipgloss.Color = "#89b4fa"
	colorNumber  lipgloss.Color = "#6c7086"
	colorNotice  lipgloss.Color = "#f9e2af"
	colorError   lipgloss.Color = "#f38ba8"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(colorHeading).Bold(true)
	numberStyle  = lipgloss.NewStyle().Foreground(colorNumber)
	noticeStyle  = lipgloss.NewStyle().Foreground(colorNotice)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
)
