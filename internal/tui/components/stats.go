package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StatsPanelModel renders the overview: headline counts, the termination fee
// chart and the refund policy breakdown.
type StatsPanelModel struct {
	theme       themes.Theme
	progressBar progress.Model
	stats       model.SummaryStats
	// dataset is the size of the whole dataset, so a filtered view can say
	// how much of it the charts cover.
	dataset int
	width   int
	height  int
	compact bool
}

// NewStatsPanelModel creates a new stats panel.
func NewStatsPanelModel(theme themes.Theme) StatsPanelModel {
	prog := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithoutPercentage(),
	)
	prog.Width = 30

	return StatsPanelModel{
		progressBar: prog,
		theme:       theme,
	}
}

// SetStats sets the summary to chart and the size of the full dataset.
func (m *StatsPanelModel) SetStats(stats model.SummaryStats, dataset int) {
	m.stats = stats
	m.dataset = dataset
}

// View renders the stats panel.
func (m StatsPanelModel) View() string {
	if m.compact {
		return m.renderCompact()
	}
	return m.renderFull()
}

// renderFull renders the full stats view.
func (m StatsPanelModel) renderFull() string {
	sections := []string{
		m.renderHeadline(),
		m.renderCoverage(),
		m.renderTermination(),
		m.renderRefunds(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCompact renders a one-line summary.
func (m StatsPanelModel) renderCompact() string {
	return m.theme.Normal.Render(fmt.Sprintf(
		"Companies: %d | Strict: %d | Moderate: %d | Customer-Friendly: %d | Balanced: %d",
		m.stats.TotalCompanies,
		m.stats.Strict,
		m.stats.Moderate,
		m.stats.CustomerFriendly,
		m.stats.Balanced,
	))
}

// renderHeadline renders the stat cards.
func (m StatsPanelModel) renderHeadline() string {
	card := m.theme.RoundedBox.Padding(0, 2).Align(lipgloss.Center)

	cards := []string{
		card.Render(m.theme.Bold.Render(fmt.Sprintf("%d", m.stats.TotalCompanies)) + "\nCompanies Analyzed"),
	}
	for _, a := range model.Approaches {
		count := m.theme.Badge(a).Render(fmt.Sprintf("%d", m.stats.ApproachCount(a)))
		cards = append(cards, card.Render(count+"\n"+string(a)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderCoverage notes when the charts describe a filtered subset.
func (m StatsPanelModel) renderCoverage() string {
	if m.stats.TotalCompanies == m.dataset {
		return ""
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf(
		"Charts cover the %d companies matching the current filters.", m.stats.TotalCompanies))
}

// renderTermination renders one bar per termination fee category.
func (m StatsPanelModel) renderTermination() string {
	title := m.theme.Subtitle.Render("Termination Fee Structures")

	maxCount := 0
	for _, c := range model.TerminationCategories {
		maxCount = max(maxCount, m.stats.TerminationFeeStats.Count(c))
	}

	lines := make([]string, 0, len(model.TerminationCategories))
	for _, c := range model.TerminationCategories {
		count := m.stats.TerminationFeeStats.Count(c)
		percent := 0.0
		if maxCount > 0 {
			percent = float64(count) / float64(maxCount)
		}
		lines = append(lines, fmt.Sprintf("%-24s %s %d",
			c.Label(),
			m.progressBar.ViewAs(percent),
			count,
		))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.theme.Normal.Render(strings.Join(lines, "\n")),
	)
}

// renderRefunds renders each refund category's share of the companies.
func (m StatsPanelModel) renderRefunds() string {
	title := m.theme.Subtitle.MarginTop(1).Render("Refund Policy Breakdown")

	lines := make([]string, 0, len(model.RefundCategories))
	for _, c := range model.RefundCategories {
		count := m.stats.RefundStats.Count(c)
		lines = append(lines, fmt.Sprintf("%-24s %3d%%  (%d)",
			c.Label(),
			m.stats.Percent(count),
			count,
		))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.theme.Normal.Render(strings.Join(lines, "\n")),
	)
}

// SetCompact sets compact mode.
func (m *StatsPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize updates the component size.
func (m *StatsPanelModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.progressBar.Width = max(10, min(width-34, 40))
	m.compact = height < 16
}
