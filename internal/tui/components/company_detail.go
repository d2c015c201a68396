package components

import (
	"strings"

	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CompanyDetailModel is the details overlay for one company. While it is
// open it receives every key.
type CompanyDetailModel struct {
	theme   themes.Theme
	company model.Company
	width   int
	height  int
}

type detailKeyMap struct {
	Back key.Binding
}

var detailKeys = detailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// NewCompanyDetailModel creates a details overlay for company.
func NewCompanyDetailModel(company model.Company, theme themes.Theme) CompanyDetailModel {
	return CompanyDetailModel{
		theme:   theme,
		company: company,
		width:   80,
		height:  24,
	}
}

// Company returns the company being shown.
func (m CompanyDetailModel) Company() model.Company {
	return m.company
}

// Update handles messages.
func (m CompanyDetailModel) Update(msg tea.Msg) (CompanyDetailModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, detailKeys.Back) {
		return m, func() tea.Msg {
			return BackToListMsg{}
		}
	}
	return m, nil
}

// View renders the overlay.
func (m CompanyDetailModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := max(20, min(m.width-8, 90))
	labelStyle := m.theme.Bold.Width(18)
	valueStyle := m.theme.Normal.Width(innerWidth - 18)

	field := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label),
			valueStyle.Render(value),
		)
	}

	c := m.company
	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.theme.Title.MarginBottom(0).Render(c.Name),
			"  ",
			m.theme.Badge(c.Approach).Render(c.Approach.String()),
		),
		"",
		field("Termination Fee", c.DisplayTerminationFee()),
		field("Refund Policy", c.DisplayRefundPolicy()),
		field("Notice Period", c.NoticePeriod()),
	}
	if c.KeyFeatures != "" {
		sections = append(sections, field("Key Features", c.KeyFeatures))
	}
	if c.TermsURL != "" {
		sections = append(sections, field("Terms", c.TermsURL))
	}
	sections = append(sections,
		"",
		m.theme.Subtitle.MarginBottom(0).Render("Details"),
		m.theme.Normal.Width(innerWidth).Render(c.DisplayDetails()),
		"",
		RenderClauses(c.SpecificClauses, innerWidth, m.theme),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press esc to close"),
	)

	box := m.theme.RoundedBox.
		BorderForeground(m.theme.Primary).
		Width(innerWidth + 4).
		MaxHeight(m.height).
		Render(strings.Join(sections, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Resize updates the component size.
func (m *CompanyDetailModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
