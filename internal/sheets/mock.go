package sheets

import (
	"context"
	"sync"

	"github.com/Veraticus/dataact/internal/model"
)

// WriteCall is one recorded MockWriter.Write.
type WriteCall struct {
	Companies []model.Company
	Stats     model.SummaryStats
}

// MockWriter records writes instead of calling the Sheets API. Unless Err is
// set every write succeeds against the "mock-sheet" spreadsheet.
type MockWriter struct {
	Err   error
	calls []WriteCall
	mu    sync.Mutex
}

// NewMockWriter creates a mock writer that accepts every write.
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// Write implements ReportWriter.
func (m *MockWriter) Write(_ context.Context, companies []model.Company, stats model.SummaryStats) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, WriteCall{Companies: companies, Stats: stats})
	if m.Err != nil {
		return Result{}, m.Err
	}
	return Result{SpreadsheetID: "mock-sheet", URL: SpreadsheetURL("mock-sheet"), Rows: len(companies)}, nil
}

// SetWriteError makes later writes fail with err.
func (m *MockWriter) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// Calls returns the writes seen so far, oldest first.
func (m *MockWriter) Calls() []WriteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]WriteCall(nil), m.calls...)
}
