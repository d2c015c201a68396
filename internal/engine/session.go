package engine

import (
	"context"
	"log/slog"
	"slices"

	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/summary"
)

// Session is the dashboard's single piece of mutable state: the loaded
// dataset, the current filter and sort selection, and the view derived from
// them. It is owned by one control flow and is not safe for concurrent use.
type Session struct {
	saver       StateSaver
	companies   []model.Company
	visible     []model.Company
	state       model.FilterState
	summary     model.SummaryStats
	fullSummary model.SummaryStats
}

// Option configures a Session.
type Option func(*Session)

// WithStateSaver persists the filter state after every change.
func WithStateSaver(saver StateSaver) Option {
	return func(s *Session) {
		s.saver = saver
	}
}

// NewSession creates a session over companies, starting from state.
func NewSession(companies []model.Company, state model.FilterState, opts ...Option) *Session {
	s := &Session{
		companies:   slices.Clone(companies),
		state:       state.Normalize(),
		fullSummary: summary.Summarize(companies),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refilter()
	return s
}

// Companies returns the full dataset in load order.
func (s *Session) Companies() []model.Company {
	return s.companies
}

// Visible returns the filtered and sorted companies.
func (s *Session) Visible() []model.Company {
	return s.visible
}

// State returns the current filter and sort selection.
func (s *Session) State() model.FilterState {
	return s.state
}

// Summary returns the summary of the visible companies.
func (s *Session) Summary() model.SummaryStats {
	return s.summary
}

// FullSummary returns the summary of the whole dataset.
func (s *Session) FullSummary() model.SummaryStats {
	return s.fullSummary
}

// Find looks up a company by name.
func (s *Session) Find(name string) (model.Company, bool) {
	for _, c := range s.companies {
		if c.Name == name {
			return c, true
		}
	}
	return model.Company{}, false
}

// SetSearch changes the name search term.
func (s *Session) SetSearch(ctx context.Context, term string) {
	if s.state.SearchTerm == term {
		return
	}
	s.state.SearchTerm = term
	s.refilter()
	s.persist(ctx)
}

// SetApproachFilter changes the approach filter; empty clears it.
func (s *Session) SetApproachFilter(ctx context.Context, approach string) {
	if s.state.Approach == approach {
		return
	}
	s.state.Approach = approach
	s.refilter()
	s.persist(ctx)
}

// SetRefundFilter changes the refund policy filter; empty clears it.
func (s *Session) SetRefundFilter(ctx context.Context, policy string) {
	if s.state.RefundPolicy == policy {
		return
	}
	s.state.RefundPolicy = policy
	s.refilter()
	s.persist(ctx)
}

// ToggleSort applies a column click. Sorting reorders the view but leaves the
// summary untouched.
func (s *Session) ToggleSort(ctx context.Context, column model.SortColumn) {
	s.state.ToggleSort(column)
	s.visible = Apply(s.companies, s.state)
	s.persist(ctx)
}

// Reset returns to the unfiltered, unsorted state.
func (s *Session) Reset(ctx context.Context) {
	s.state = model.DefaultFilterState()
	s.refilter()
	s.persist(ctx)
}

// refilter rebuilds the visible view from the full dataset and re-summarizes it.
func (s *Session) refilter() {
	s.visible = Apply(s.companies, s.state)
	s.summary = summary.Summarize(s.visible)
}

func (s *Session) persist(ctx context.Context) {
	if s.saver == nil {
		return
	}
	if err := s.saver.SaveFilterState(ctx, s.state); err != nil {
		slog.Warn("Failed to persist filter state", "error", err)
	}
}
