package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#ff4081")
	trackColor  = lipgloss.Color("#f8bbd0")
	blushColor  = lipgloss.Color("#fce4ec")
	inkColor    = lipgloss.Color("#3a3a3a")
	paperColor  = lipgloss.Color("#ffffff")
)

var (
	bubbleStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Foreground(inkColor).Background(paperColor).Padding(1, bubblePaddingX).Align(lipgloss.Center).AlignVertical(lipgloss.Center)
	emojiStyle   = lipgloss.NewStyle().Bold(true)
	counterStyle = lipgloss.NewStyle().Foreground(accentColor)
	hintStyle    = lipgloss.NewStyle().Foreground(accentColor).Italic(true)
	helperStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	heartStyle   = lipgloss.NewStyle().Foreground(trackColor)
	heartPop     = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	finaleStyle  = lipgloss.NewStyle().Bold(true).Foreground(paperColor).Background(accentColor).Align(lipgloss.Center).AlignVertical(lipgloss.Center)
	restartStyle = lipgloss.NewStyle().Foreground(blushColor).Underline(true)
)
