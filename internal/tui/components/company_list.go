package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/tui/themes"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListMode represents the current mode of the list.
type ListMode int

// List modes.
const (
	ModeNormal ListMode = iota
	ModeSearch
)

// CompanyListModel manages the company table.
type CompanyListModel struct {
	theme       themes.Theme
	companies   []model.Company
	state       model.FilterState
	searchInput textinput.Model
	table       table.Model
	// prevSearch restores the term when a search edit is cancelled.
	prevSearch string
	total      int
	mode       ListMode
	width      int
	height     int
}

// NewCompanyList creates a company table over the visible companies.
func NewCompanyList(theme themes.Theme) CompanyListModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search companies..."
	searchInput.Prompt = "/ "
	searchInput.CharLimit = 50
	searchInput.Cursor.SetMode(cursor.CursorStatic)

	m := CompanyListModel{
		table:       t,
		searchInput: searchInput,
		theme:       theme,
		width:       80,
		height:      24,
		state:       model.DefaultFilterState(),
	}
	m.updateColumns()
	return m
}

// SetCompanies replaces the rows. total is the size of the whole dataset and
// is only used in the header.
func (m *CompanyListModel) SetCompanies(companies []model.Company, total int) {
	m.companies = companies
	m.total = total
	m.table.SetRows(m.buildRows())
	if m.table.Cursor() >= len(companies) {
		m.table.SetCursor(max(0, len(companies)-1))
	}
}

// SetState updates the filter state shown in the header and column arrows.
func (m *CompanyListModel) SetState(state model.FilterState) {
	m.state = state
	if m.mode != ModeSearch {
		m.searchInput.SetValue(state.SearchTerm)
	}
	m.updateColumns()
}

// Searching reports whether the search input has focus.
func (m CompanyListModel) Searching() bool {
	return m.mode == ModeSearch
}

// Selected returns the company under the cursor.
func (m CompanyListModel) Selected() (model.Company, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.companies) {
		return model.Company{}, false
	}
	return m.companies[i], true
}

// Update handles messages.
func (m CompanyListModel) Update(msg tea.Msg) (CompanyListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == ModeSearch {
		return m, m.handleSearchMode(keyMsg)
	}

	switch keyMsg.String() {
	case "/":
		m.mode = ModeSearch
		m.prevSearch = m.state.SearchTerm
		m.searchInput.SetValue(m.state.SearchTerm)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case "enter":
		if c, found := m.Selected(); found {
			return m, func() tea.Msg {
				return CompanySelectedMsg{Company: c}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	return m, cmd
}

// handleSearchMode filters as the user types. Enter keeps the term, esc
// restores the one in effect before the edit started.
func (m *CompanyListModel) handleSearchMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.mode = ModeNormal
		m.searchInput.Blur()
		return nil

	case "esc":
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue(m.prevSearch)
		return searchChanged(m.prevSearch)
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		return tea.Batch(cmd, searchChanged(after))
	}
	return cmd
}

func searchChanged(term string) tea.Cmd {
	return func() tea.Msg {
		return SearchChangedMsg{Term: term}
	}
}

// View renders the company list.
func (m CompanyListModel) View() string {
	if m.height < 6 {
		return "Terminal too small"
	}

	body := m.table.View()
	if len(m.companies) == 0 {
		body = lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Padding(1, 2).
			Render("No companies match the current filters.")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

// renderHeader renders the list header.
func (m CompanyListModel) renderHeader() string {
	status := fmt.Sprintf("%d of %d companies", len(m.companies), m.total)

	var filters []string
	if m.state.Approach != "" {
		filters = append(filters, "approach: "+m.state.Approach)
	}
	if m.state.RefundPolicy != "" {
		filters = append(filters, "refund: "+m.state.RefundPolicy)
	}
	if len(filters) > 0 {
		status += " | " + strings.Join(filters, " | ")
	}

	search := m.searchInput.View()
	if m.mode != ModeSearch {
		if m.state.SearchTerm == "" {
			search = lipgloss.NewStyle().Foreground(m.theme.Muted).Render("/ search")
		} else {
			search = fmt.Sprintf("Search: %q", m.state.SearchTerm)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.MarginBottom(0).Render(status),
		search,
	)
}

// renderFooter renders the key hints.
func (m CompanyListModel) renderFooter() string {
	hints := []string{
		"[↑↓] Navigate",
		"[Enter] Details",
		"[/] Search",
		"[a] Approach",
		"[r] Refund",
		"[1-5] Sort",
		"[e] Export",
	}
	if m.mode == ModeSearch {
		hints = []string{"[Enter] Keep", "[Esc] Cancel"}
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

// buildRows builds the table rows in view order.
func (m CompanyListModel) buildRows() []table.Row {
	rows := make([]table.Row, 0, len(m.companies))
	for _, c := range m.companies {
		rows = append(rows, table.Row{
			c.Name,
			c.Approach.String(),
			c.DisplayTerminationFee(),
			c.DisplayRefundPolicy(),
			c.NoticePeriod(),
		})
	}
	return rows
}

// Resize updates the component size.
func (m *CompanyListModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Header (2) + table header (2) + footer (1)
	m.table.SetHeight(max(1, height-5))
	m.updateColumns()
}

// updateColumns sizes the columns proportionally and marks the sorted one.
func (m *CompanyListModel) updateColumns() {
	availableWidth := max(m.width-4, 60)

	shares := []float64{0.18, 0.16, 0.28, 0.24, 0.14}
	columns := make([]table.Column, len(model.SortColumns))
	for i, col := range model.SortColumns {
		title := fmt.Sprintf("%d %s", i+1, col.Title())
		if m.state.SortColumn == col {
			title += " " + m.state.SortDirection.Arrow()
		}
		columns[i] = table.Column{
			Title: title,
			Width: max(10, int(float64(availableWidth)*shares[i])),
		}
	}
	m.table.SetColumns(columns)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
