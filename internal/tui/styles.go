package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomotask/internal/settings"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorSecondary = lipgloss.Color("#2EC4B6")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorHighlight = lipgloss.Color("#7AA2F7")

	// Foreground and border colors follow the theme.
	colorFg     lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#24283B", Dark: "#C0CAF5"}
	colorSubtle lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "#A9B1D6", Dark: "#414868"}
)

// Styles
var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	timerStyle        lipgloss.Style
	titleStyle        lipgloss.Style
	subtitleStyle     lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
)

func init() {
	applyTheme(settings.ThemeSystem, settings.FontMedium)
}

// applyTheme rebuilds every style. The theme pins the foreground palette;
// the font size sets panel padding, since a terminal has no font size of
// its own.
func applyTheme(theme settings.Theme, size settings.FontSize) {
	switch theme {
	case settings.ThemeLight:
		colorFg = lipgloss.Color("#24283B")
		colorSubtle = lipgloss.Color("#A9B1D6")
	case settings.ThemeDark:
		colorFg = lipgloss.Color("#C0CAF5")
		colorSubtle = lipgloss.Color("#414868")
	default:
		colorFg = lipgloss.AdaptiveColor{Light: "#24283B", Dark: "#C0CAF5"}
		colorSubtle = lipgloss.AdaptiveColor{Light: "#A9B1D6", Dark: "#414868"}
	}

	padV, padH := 1, 2
	switch size {
	case settings.FontSmall:
		padV, padH = 0, 1
	case settings.FontLarge:
		padV, padH = 2, 4
	}

	// Tabs
	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorPrimary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(padV, padH)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(padV, padH)

	// Timer
	timerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Align(lipgloss.Center)

	// Text
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	accentStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
		Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
		Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
		Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
		Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
		Foreground(colorMuted).
		Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	normalItemStyle = lipgloss.NewStyle().
		Foreground(colorFg)
}
