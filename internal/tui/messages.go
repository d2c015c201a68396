package tui

import (
	"github.com/Veraticus/dataact/internal/dataset"
	"github.com/Veraticus/dataact/internal/model"
)

// Data loading messages.
type datasetLoadedMsg struct {
	dataset *dataset.Dataset
	state   model.FilterState
}

type loadFailedMsg struct {
	err error
}

// Async operation messages.
type exportDoneMsg struct {
	err  error
	path string
	rows int
}
