package components

import (
	"strings"

	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClausesModel is the clauses tab: a grid of every company in the dataset
// and the clause panel of the selected one. It ignores the active filters.
type ClausesModel struct {
	theme     themes.Theme
	companies []model.Company
	cursor    int
	width     int
	height    int
}

// NewClausesModel creates the clauses view over the full dataset.
func NewClausesModel(companies []model.Company, theme themes.Theme) ClausesModel {
	return ClausesModel{
		theme:     theme,
		companies: companies,
		width:     80,
		height:    24,
	}
}

// Selected returns the company whose clauses are shown.
func (m ClausesModel) Selected() (model.Company, bool) {
	if m.cursor < 0 || m.cursor >= len(m.companies) {
		return model.Company{}, false
	}
	return m.companies[m.cursor], true
}

// Select moves the selection to the named company.
func (m *ClausesModel) Select(name string) bool {
	for i, c := range m.companies {
		if c.Name == name {
			m.cursor = i
			return true
		}
	}
	return false
}

// Update moves the selection through the grid.
func (m ClausesModel) Update(msg tea.Msg) (ClausesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.companies) == 0 {
		return m, nil
	}

	cols := m.columns()
	switch keyMsg.String() {
	case "left", "h":
		m.cursor = max(m.cursor-1, 0)
	case "right", "l":
		m.cursor = min(m.cursor+1, len(m.companies)-1)
	case "up", "k":
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case "down", "j":
		if m.cursor+cols < len(m.companies) {
			m.cursor += cols
		}
	case "enter":
		if c, found := m.Selected(); found {
			return m, func() tea.Msg {
				return CompanySelectedMsg{Company: c}
			}
		}
	}
	return m, nil
}

// View renders the grid above the clause panel.
func (m ClausesModel) View() string {
	if len(m.companies) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No companies loaded.")
	}

	selected, _ := m.Selected()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderGrid(),
		"",
		m.theme.Title.MarginBottom(0).Render(selected.Name+" Contract Clauses"),
		RenderClauses(selected.SpecificClauses, max(20, m.width-4), m.theme),
	)
}

const cellWidth = 20

func (m ClausesModel) columns() int {
	return max(1, (m.width-2)/(cellWidth+2))
}

func (m ClausesModel) renderGrid() string {
	cols := m.columns()
	cell := lipgloss.NewStyle().Width(cellWidth).Padding(0, 1)

	var rows []string
	for start := 0; start < len(m.companies); start += cols {
		end := min(start+cols, len(m.companies))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			c := m.companies[i]
			label := truncate(c.Name, cellWidth-2)
			if i == m.cursor {
				cells = append(cells, m.theme.Selected.Inherit(cell).Render(label))
				continue
			}
			cells = append(cells, cell.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// Resize updates the component size.
func (m *ClausesModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// RenderClauses renders a company's clauses in display order. The extended
// transition clause is highlighted when present.
func RenderClauses(clauses model.Clauses, width int, theme themes.Theme) string {
	text := theme.Normal.Width(max(10, width-2)).PaddingLeft(2)

	var parts []string
	for _, item := range clauses.Items() {
		label := theme.Bold.Render(item.Icon + " " + item.Label)
		if item.Transition {
			label = theme.StatusWarning.Render(item.Icon + " " + item.Label)
		}
		parts = append(parts, label, text.Render(item.Text))
	}
	return strings.Join(parts, "\n")
}
