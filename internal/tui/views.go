package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "🇪🇺 EU Data Act Compliance Dashboard"

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	source := m.config.DataSource
	if source == "" {
		source = "embedded dataset"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render(appTitle),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading "+source+"..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderLoadError renders the static banner shown when the dataset could not
// be loaded. The dashboard stays uninitialized.
func (m Model) renderLoadError() string {
	banner := m.theme.Banner.
		Width(min(m.width-4, 80)).
		Render("Failed to load compliance data\n\n" + m.loadErr.Error())

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render(appTitle),
		banner,
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press q to quit"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderDashboard renders the title, tab bar, active tab and status bar.
func (m Model) renderDashboard() string {
	var body string
	switch m.tab {
	case TabCompanies:
		body = m.companyList.View()
	case TabClauses:
		body = m.clauses.View()
	default:
		body = m.statsPanel.View()
	}

	bodyHeight := max(1, m.height-4)
	body = lipgloss.NewStyle().
		PaddingLeft(1).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Bold.Render(appTitle),
		m.renderTabs(),
		body,
		m.renderStatusBar(),
	)
}

// renderTabs renders the tab bar with the active tab highlighted.
func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = m.theme.TabActive.Render(name)
		} else {
			tabs[i] = m.theme.TabInactive.Render(name)
		}
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(m.theme.Border).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(m.tab.String())

	center := m.theme.Normal.Render(m.status)
	if m.statusErr {
		center = m.theme.StatusError.Render(m.status)
	}

	right := m.help.ShortHelpView(m.keymap.ShortHelp())

	spacing := max(2, m.width-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right))
	leftPad := spacing / 2
	rightPad := spacing - leftPad

	return lipgloss.NewStyle().
		MaxWidth(m.width).
		Render(left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render(appTitle+" - Help"),
		m.help.FullHelpView(m.keymap.FullHelp()),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.Render(content),
	)
}
