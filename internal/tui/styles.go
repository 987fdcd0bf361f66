package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ptrains/ptrains-cli/internal/models"
)

// Same palette as the CLI output
var (
	colorBlack   = lipgloss.Color("0")
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorYellow  = lipgloss.Color("3")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
	colorGray    = lipgloss.Color("8")
	colorWhite   = lipgloss.Color("15")
)

var (
	styleTime    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleTrain   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleService = lipgloss.NewStyle().Foreground(colorMagenta)
	styleNotice  = lipgloss.NewStyle().Foreground(colorYellow)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleLogo    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)

	styleSelected  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleStatusBar = lipgloss.NewStyle().Foreground(colorGray).Background(colorBlack)

	stylePanelFocused = panelStyle(colorCyan)
	stylePanelNormal  = panelStyle(colorGray)

	// next stop of a train route
	styleNextStop = badge(colorGreen)
	// station whose board the route was opened from
	styleBoardStation = badge(colorCyan)
	styleChipCursor   = badge(colorCyan)
)

func panelStyle(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border)
}

// badge is black bold text on a colored background
func badge(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorBlack).Background(bg).Bold(true)
}

// formatNotes styles Observacoes text, highlighting announced delays
func formatNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	switch {
	case notes == "":
		return ""
	case models.IsDisruption(notes):
		return styleNotice.Render(notes)
	}
	return styleMuted.Render(notes)
}
