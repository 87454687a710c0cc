package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette, one color per kind of element in the plan and config trees.
var (
	colorRoot    = lipgloss.Color("39")
	colorHeader  = lipgloss.Color("15")
	colorInfo    = lipgloss.Color("250")
	colorBranch  = lipgloss.Color("240")
	colorCount   = lipgloss.Color("45")
	colorEvent   = lipgloss.Color("208")
	colorRound   = lipgloss.Color("228")
	colorBundle  = lipgloss.Color("201")
	colorValid   = lipgloss.Color("82")
	colorFailure = lipgloss.Color("196")
)
