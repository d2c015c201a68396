// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/dataact/internal/model"
)

// Colors. The primary color is the EU flag blue, lightened for dark terminals.
var (
	PrimaryColor = lipgloss.Color("#4C6EF5")
	SuccessColor = lipgloss.Color("#40C057")
	WarningColor = lipgloss.Color("#FAB005")
	ErrorColor   = lipgloss.Color("#FA5252")
	InfoColor    = lipgloss.Color("#74C0FC")
	SubtleColor  = lipgloss.Color("#666666")
)

var (
	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).MarginBottom(1)
	// InfoStyle formats informational text.
	InfoStyle = lipgloss.NewStyle().Foreground(InfoColor)
	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().Foreground(SubtleColor)
	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// badgeStyles colors approaches by badge class.
	badgeStyles = map[string]lipgloss.Style{
		"strict":   lipgloss.NewStyle().Bold(true).Foreground(ErrorColor),
		"moderate": lipgloss.NewStyle().Bold(true).Foreground(WarningColor),
		"friendly": lipgloss.NewStyle().Bold(true).Foreground(SuccessColor),
		"balanced": lipgloss.NewStyle().Bold(true).Foreground(InfoColor),
	}
)

// Icons.
const (
	SuccessIcon  = "✓"
	ErrorIcon    = "✗"
	WarningIcon  = "⚠️"
	InfoIcon     = "ℹ️"
	EUIcon       = "🇪🇺"
	ChartIcon    = "📊"
	DocumentIcon = "📄"
	MoneyIcon    = "💰"
	RefundIcon   = "💸"
)

func message(color lipgloss.Color, icon, text string) string {
	return lipgloss.NewStyle().Foreground(color).Render(icon + " " + text)
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(text string) string { return message(SuccessColor, SuccessIcon, text) }

// FormatError formats an error message with icon.
func FormatError(text string) string { return message(ErrorColor, ErrorIcon, text) }

// FormatWarning formats a warning message with icon.
func FormatWarning(text string) string { return message(WarningColor, WarningIcon, text) }

// FormatInfo formats an info message with icon.
func FormatInfo(text string) string { return message(InfoColor, InfoIcon, text) }

// FormatApproach renders an approach in its badge color. Unknown approaches
// use the balanced color.
func FormatApproach(a model.Approach) string {
	return badgeStyles[a.BadgeClass()].Render(a.String())
}

// RenderBox renders content under an EU-flagged title inside a rounded box.
func RenderBox(title, content string) string {
	heading := TitleStyle.UnsetMargins().Render(EUIcon + " " + title)
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}
