// Package tui implements the interactive terminal dashboard.
package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/dataact/internal/engine"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/tui/components"
	"github.com/Veraticus/dataact/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab is one of the dashboard's top-level views.
type Tab int

// Tabs in display order.
const (
	TabOverview Tab = iota
	TabCompanies
	TabClauses
)

var tabNames = []string{"Overview", "Companies", "Contract Clauses"}

// String returns the tab label.
func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return ""
	}
	return tabNames[t]
}

// Model holds the main TUI state.
type Model struct {
	ctx         context.Context
	theme       themes.Theme
	loadErr     error
	session     *engine.Session
	detail      *components.CompanyDetailModel
	help        help.Model
	keymap      KeyMap
	config      Config
	status      string
	companyList components.CompanyListModel
	clauses     components.ClausesModel
	statsPanel  components.StatsPanelModel
	width       int
	height      int
	tab         Tab
	statusErr   bool
	showHelp    bool
	quitting    bool
	ready       bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	return Model{
		ctx:         ctx,
		config:      cfg,
		theme:       cfg.Theme,
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		tab:         TabOverview,
		width:       cfg.Width,
		height:      cfg.Height,
		showHelp:    cfg.ShowHelp,
		companyList: components.NewCompanyList(cfg.Theme),
		statsPanel:  components.NewStatsPanelModel(cfg.Theme),
	}
}

// Init starts the dataset load.
func (m Model) Init() tea.Cmd {
	return m.loadDataset()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case datasetLoadedMsg:
		m.handleDataLoaded(msg)
		return m, nil

	case loadFailedMsg:
		slog.Error("Failed to load dataset", "source", m.config.DataSource, "error", msg.err)
		m.loadErr = msg.err
		return m, nil

	case components.CompanySelectedMsg:
		detail := components.NewCompanyDetailModel(msg.Company, m.theme)
		detail.Resize(m.width, m.height)
		m.detail = &detail
		m.clauses.Select(msg.Company.Name)
		return m, nil

	case components.BackToListMsg:
		m.detail = nil
		return m, nil

	case components.SearchChangedMsg:
		m.session.SetSearch(m.ctx, msg.Term)
		m.syncView()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("Exported %d companies to %s", msg.rows, msg.path), false)
		}
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return m.renderLoadError()
	}
	if !m.ready {
		return m.renderLoading()
	}
	if m.detail != nil {
		return m.detail.View()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderDashboard()
}

// handleKey routes a key press. The details overlay and the search input
// capture every key except force quit while they have focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.ready {
		if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.detail != nil {
		detail, cmd := m.detail.Update(msg)
		m.detail = &detail
		return m, cmd
	}

	if m.tab == TabCompanies && m.companyList.Searching() {
		var cmd tea.Cmd
		m.companyList, cmd = m.companyList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case m.showHelp && key.Matches(msg, m.keymap.Close):
		m.showHelp = false
		return m, nil
	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		return m, nil
	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return m, nil
	}

	switch m.tab {
	case TabCompanies:
		return m.handleCompaniesKey(msg)
	case TabClauses:
		var cmd tea.Cmd
		m.clauses, cmd = m.clauses.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// handleCompaniesKey applies filter, sort and export keys, and passes the
// rest to the table.
func (m Model) handleCompaniesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ApproachFilter):
		next := nextOption(engine.ApproachOptions(), m.session.State().Approach)
		m.session.SetApproachFilter(m.ctx, next)
		m.syncView()
		return m, nil

	case key.Matches(msg, m.keymap.RefundFilter):
		next := nextOption(engine.RefundOptions(m.session.Companies()), m.session.State().RefundPolicy)
		m.session.SetRefundFilter(m.ctx, next)
		m.syncView()
		return m, nil

	case key.Matches(msg, m.keymap.Sort):
		column := model.SortColumns[msg.String()[0]-'1']
		m.session.ToggleSort(m.ctx, column)
		m.syncView()
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.session.Reset(m.ctx)
		m.syncView()
		return m, nil

	case key.Matches(msg, m.keymap.Export):
		m.setStatus("Exporting...", false)
		return m, m.exportCSV()
	}

	var cmd tea.Cmd
	m.companyList, cmd = m.companyList.Update(msg)
	return m, cmd
}

// handleDataLoaded builds the session over the loaded dataset.
func (m *Model) handleDataLoaded(msg datasetLoadedMsg) {
	var opts []engine.Option
	if m.config.Store != nil {
		opts = append(opts, engine.WithStateSaver(m.config.Store))
	}

	m.session = engine.NewSession(msg.dataset.Companies, msg.state, opts...)
	m.clauses = components.NewClausesModel(m.session.Companies(), m.theme)
	m.ready = true

	slog.Info("Dataset loaded",
		"source", msg.dataset.Source,
		"companies", len(msg.dataset.Companies))

	m.syncView()
	m.handleResize()
}

// syncView pushes the session's current view into the components.
func (m *Model) syncView() {
	if m.session == nil {
		return
	}
	total := len(m.session.Companies())
	m.companyList.SetCompanies(m.session.Visible(), total)
	m.companyList.SetState(m.session.State())
	m.statsPanel.SetStats(m.session.Summary(), total)
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	// Title (1) + tabs (2) + status bar (1)
	bodyHeight := max(1, m.height-4)
	bodyWidth := max(20, m.width-2)

	m.companyList.Resize(bodyWidth, bodyHeight)
	m.statsPanel.Resize(bodyWidth, bodyHeight)
	m.clauses.Resize(bodyWidth, bodyHeight)
	m.help.Width = m.width
	if m.detail != nil {
		m.detail.Resize(m.width, m.height)
	}
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// nextOption cycles through options and back to the empty "all" choice.
func nextOption(options []string, current string) string {
	if current == "" {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return ""
}
