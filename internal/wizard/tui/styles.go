package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MartinRain/sinope-130/internal/version"
)

// Application branding constants
const (
	AppName   = "NEVIWEB130 CONFIGURATION WIZARD"
	GitHubURL = "github.com/claudegel/sinope-130"
)

// MinTerminalWidth is the narrowest layout rendered without wrapping.
const MinTerminalWidth = 60

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#D8232A")
	SecondaryColor = lipgloss.Color("#43BF6D")
	WarningColor   = lipgloss.Color("#FFA500")
	ErrorColor     = lipgloss.Color("#FF5555")
	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(16)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(16)

	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(18)

	ErrorBannerStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ErrorColor)

	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderError renders an error banner
func RenderError(text string) string {
	return ErrorBannerStyle.Render("✗ " + text)
}

// BuildHeaderContent creates header content with app name and project URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps a screen with the application header and
// a help footer. Width and height come from tea.WindowSizeMsg; zero values
// (before the first resize) render at MinTerminalWidth without a fixed height.
func RenderApplicationContainer(content, footerText string, width, height int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	header := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(PrimaryColor).
		Width(width-4).
		Padding(0, 1).
		Render(BuildHeaderContent())

	body := lipgloss.NewStyle().
		Width(width-4).
		Padding(1, 2).
		Render(content)

	footer := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(PrimaryColor).
		Width(width-4).
		Padding(0, 1).
		Foreground(SubtleColor).
		Render(footerText)

	outer := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2)
	if height > 2 {
		outer = outer.Height(height - 2).AlignVertical(lipgloss.Top)
	}

	return outer.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}
