// Package themes holds the color schemes of the terminal dashboard.
package themes

import (
	"github.com/Veraticus/dataact/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	RoundedBox    lipgloss.Style
	BorderedBox   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	Banner        lipgloss.Style
	BadgeStrict   lipgloss.Style
	BadgeModerate lipgloss.Style
	BadgeFriendly lipgloss.Style
	BadgeBalanced lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
}

// palette is the handful of colors a theme is derived from.
type palette struct {
	primary, text, subtext, muted, border, base lipgloss.Color
	info, warning, danger                       lipgloss.Color
	// onAccent is the text color drawn over primary and badge backgrounds.
	onAccent                             lipgloss.Color
	tab                                  lipgloss.Color
	strict, moderate, friendly, balanced lipgloss.Color
}

// Default is the default theme. The active tab uses the EU flag blue.
var Default = newTheme(palette{
	primary:  "#7c3aed",
	text:     "#fafafa",
	subtext:  "#a3a3a3",
	muted:    "#737373",
	border:   "#404040",
	base:     "#1a1a1a",
	info:     "#3b82f6",
	warning:  "#f59e0b",
	danger:   "#ef4444",
	onAccent: "#fafafa",
	tab:      "#003399",
	strict:   "#b91c1c",
	moderate: "#b45309",
	friendly: "#047857",
	balanced: "#1d4ed8",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:  "#cba6f7",
	text:     "#cdd6f4",
	subtext:  "#a6adc8",
	muted:    "#6c7086",
	border:   "#45475a",
	base:     "#1e1e2e",
	info:     "#89dceb",
	warning:  "#f9e2af",
	danger:   "#f38ba8",
	onAccent: "#1e1e2e",
	tab:      "#cba6f7",
	strict:   "#f38ba8",
	moderate: "#f9e2af",
	friendly: "#a6e3a1",
	balanced: "#89b4fa",
})

func newTheme(p palette) Theme {
	text := lipgloss.NewStyle().Foreground(p.text)
	status := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	badge := func(bg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(p.onAccent).Background(bg).Bold(true).Padding(0, 1)
	}

	return Theme{
		Primary: p.primary,
		Muted:   p.muted,
		Border:  p.border,

		Title:    text.Bold(true).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(p.subtext).MarginBottom(1),
		Normal:   text,
		Bold:     text.Bold(true),
		Selected: lipgloss.NewStyle().Foreground(p.onAccent).Background(p.primary).Bold(true),

		RoundedBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.border).Padding(1, 2),

		StatusInfo:    status(p.info),
		StatusWarning: status(p.warning),
		StatusError:   status(p.danger),

		TabActive:   lipgloss.NewStyle().Foreground(p.onAccent).Background(p.tab).Bold(true).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(p.subtext).Padding(0, 2),
		Banner:      lipgloss.NewStyle().Foreground(p.base).Background(p.danger).Bold(true).Padding(1, 2),

		BadgeStrict:   badge(p.strict),
		BadgeModerate: badge(p.moderate),
		BadgeFriendly: badge(p.friendly),
		BadgeBalanced: badge(p.balanced),
	}
}

// GetTheme returns a theme by name. Unknown names get the default theme.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// Badge returns the badge style for an approach. Unknown approaches share the
// balanced style.
func (t Theme) Badge(a model.Approach) lipgloss.Style {
	switch a.BadgeClass() {
	case "strict":
		return t.BadgeStrict
	case "moderate":
		return t.BadgeModerate
	case "friendly":
		return t.BadgeFriendly
	default:
		return t.BadgeBalanced
	}
}
