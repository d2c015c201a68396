package tui

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/dataact/internal/export"
	"github.com/Veraticus/dataact/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// loadDataset loads the dataset and the persisted filter state. It runs once;
// a failure is final for the session.
func (m Model) loadDataset() tea.Cmd {
	return func() tea.Msg {
		ds, err := m.config.Loader(m.ctx, m.config.DataSource)
		if err != nil {
			return loadFailedMsg{err: err}
		}

		state := model.DefaultFilterState()
		if m.config.Store != nil {
			state = m.config.Store.LoadFilterState(m.ctx)
		}

		return datasetLoadedMsg{dataset: ds, state: state}
	}
}

// exportCSV writes the visible companies to the export path and records the
// export in the history.
func (m Model) exportCSV() tea.Cmd {
	companies := m.session.Visible()
	path := m.config.ExportPath

	return func() tea.Msg {
		rows, err := export.WriteFile(path, companies)
		if err != nil {
			return exportDoneMsg{err: fmt.Errorf("failed to export CSV: %w", err)}
		}

		if m.config.Store != nil {
			if _, recErr := m.config.Store.RecordExport(m.ctx, "csv", path, rows); recErr != nil {
				slog.Warn("Failed to record export", "path", path, "error", recErr)
			}
		}

		return exportDoneMsg{path: path, rows: rows}
	}
}
