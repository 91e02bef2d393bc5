package view

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("205")
	colorError   = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("46")
	colorMuted   = lipgloss.Color("241")
	colorBorder  = lipgloss.Color("62")

	screenStyle  = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusedLabel = labelStyle.Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			Width(40)
	focusedFieldStyle = fieldStyle.BorderForeground(colorAccent)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	dayStyle      = lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
	cursorDay     = dayStyle.Background(colorAccent).Foreground(lipgloss.Color("0"))
	selectedDay   = dayStyle.Bold(true).Foreground(colorAccent)
	todayDay      = dayStyle.Underline(true)
	otherMonthDay = dayStyle.Foreground(colorMuted)
)
