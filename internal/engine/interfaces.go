package engine

import (
	"context"

	"github.com/Veraticus/dataact/internal/model"
)

// StateSaver persists the filter and sort selection.
type StateSaver interface {
	SaveFilterState(ctx context.Context, state model.FilterState) error
}
