package tui

import "github.com/charmbracelet/lipgloss"

var (
	red    = lipgloss.Color("#DC2626")
	yellow = lipgloss.Color("#EAB308")
	green  = lipgloss.Color("#22C55E")
	gray   = lipgloss.Color("#6B7280")
	white  = lipgloss.Color("#F9FAFB")

	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(red).
			Padding(1, 4).
			Width(60).
			Align(lipgloss.Center)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			Background(red).
			Padding(1, 6).
			MarginTop(1).
			MarginBottom(1)

	actionStyle   = lipgloss.NewStyle().Padding(0, 1)
	disabledStyle = actionStyle.Foreground(gray).Strikethrough(true)
	hintStyle     = lipgloss.NewStyle().Foreground(gray)
	noticeStyle   = lipgloss.NewStyle().Foreground(yellow)
	errorStyle    = lipgloss.NewStyle().Foreground(red)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(green).
			PaddingLeft(1)
	destructiveToastStyle = toastStyle.BorderForeground(red)

	callStyle = lipgloss.NewStyle().
			Foreground(white).
			Background(lipgloss.Color("#000000")).
			Padding(2, 6).
			Width(60).
			Align(lipgloss.Center)
	declineStyle = lipgloss.NewStyle().Foreground(red).Bold(true)
	acceptStyle  = lipgloss.NewStyle().Foreground(green).Bold(true)
)
