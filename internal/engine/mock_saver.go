package engine

import (
	"context"

	"github.com/Veraticus/dataact/internal/model"
)

// MockStateSaver records every saved state in memory.
type MockStateSaver struct {
	Err   error
	Saved []model.FilterState
}

// SaveFilterState records state and returns the configured error.
func (m *MockStateSaver) SaveFilterState(_ context.Context, state model.FilterState) error {
	m.Saved = append(m.Saved, state)
	return m.Err
}

// Last returns the most recently saved state.
func (m *MockStateSaver) Last() (model.FilterState, bool) {
	if len(m.Saved) == 0 {
		return model.FilterState{}, false
	}
	return m.Saved[len(m.Saved)-1], true
}
