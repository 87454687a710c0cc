package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(colorRoot).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorHeader).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(colorBranch)

	ComponentStyle = lipgloss.NewStyle().
			Foreground(colorCount)

	EventStyle = lipgloss.NewStyle().
			Foreground(colorEvent)

	RoundStyle = lipgloss.NewStyle().
			Foreground(colorRound)

	BundleStyle = lipgloss.NewStyle().
			Foreground(colorBundle)

	SettingStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	ValidStyle = lipgloss.NewStyle().
			Foreground(colorValid)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorFailure)
)

// EventText styles a multi-round event text
func EventText(text string) string {
	return EventStyle.Render(text)
}

// RoundText styles a round text
func RoundText(text string) string {
	return RoundStyle.Render(text)
}

// BundleText styles a settings bundle name
func BundleText(text string) string {
	return BundleStyle.Render(text)
}

// SettingText styles a single setting
func SettingText(text string) string {
	return SettingStyle.Render(text)
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return ValidStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths and page paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// CountText styles count numbers (cyan)
func CountText(text string) string {
	return ComponentStyle.Render(text)
}
