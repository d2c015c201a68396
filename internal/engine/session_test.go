package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/summary"
	"github.com/Veraticus/dataact/internal/testutil/companies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_RestoresState(t *testing.T) {
	state := model.FilterState{
		SearchTerm:    "sa",
		SortColumn:    model.SortName,
		SortDirection: model.SortDesc,
	}

	s := NewSession(companies.Benchmark(), state)

	assert.Equal(t, []string{"Samsara", "Salesforce"}, companies.Names(s.Visible()))
	assert.Equal(t, 2, s.Summary().TotalCompanies)
	assert.Equal(t, 11, s.FullSummary().TotalCompanies)
	assert.Len(t, s.Companies(), 11)
}

func TestNewSession_NormalizesCorruptState(t *testing.T) {
	s := NewSession(companies.Benchmark(), model.FilterState{SortColumn: "details", SortDirection: "up"})

	assert.Equal(t, model.DefaultFilterState(), s.State())
	assert.Equal(t, companies.Names(companies.Benchmark()), companies.Names(s.Visible()))
}

func TestSession_FilterChangesResummarize(t *testing.T) {
	ctx := context.Background()
	saver := &MockStateSaver{}
	s := NewSession(companies.Benchmark(), model.DefaultFilterState(), WithStateSaver(saver))

	s.SetApproachFilter(ctx, string(model.ApproachCustomerFriendly))

	assert.Equal(t, []string{"AWS", "Google Cloud", "Microsoft"}, companies.Names(s.Visible()))
	assert.Equal(t, summary.Summarize(s.Visible()), s.Summary())
	assert.Equal(t, 3, s.Summary().RefundStats.CreditsTransfer)
	assert.Equal(t, 11, s.FullSummary().TotalCompanies, "full summary is not affected by filters")

	s.SetRefundFilter(ctx, companies.NoRefunds)
	assert.Empty(t, s.Visible())
	assert.Equal(t, model.SummaryStats{}, s.Summary())

	s.SetApproachFilter(ctx, "")
	s.SetSearch(ctx, "b")
	assert.Equal(t, []string{"BMC", "Braze"}, companies.Names(s.Visible()))

	require.Len(t, saver.Saved, 4)
	last, ok := saver.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.SearchTerm)
	assert.Equal(t, companies.NoRefunds, last.RefundPolicy)
}

func TestSession_UnchangedFilterIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	saver := &MockStateSaver{}
	s := NewSession(companies.Benchmark(), model.DefaultFilterState(), WithStateSaver(saver))

	s.SetSearch(ctx, "")
	s.SetApproachFilter(ctx, "")
	s.SetRefundFilter(ctx, "")

	assert.Empty(t, saver.Saved)
}

func TestSession_ToggleSort(t *testing.T) {
	ctx := context.Background()
	saver := &MockStateSaver{}
	s := NewSession(companies.Benchmark(), model.FilterState{SearchTerm: "o"}, WithStateSaver(saver))
	before := s.Summary()

	s.ToggleSort(ctx, model.SortName)
	assert.Equal(t, model.SortAsc, s.State().SortDirection)
	assert.Equal(t, []string{"Cloudflare", "Google Cloud", "Microsoft", "Salesforce", "Toggl"}, companies.Names(s.Visible()))

	s.ToggleSort(ctx, model.SortName)
	assert.Equal(t, model.SortDesc, s.State().SortDirection)
	assert.Equal(t, []string{"Toggl", "Salesforce", "Microsoft", "Google Cloud", "Cloudflare"}, companies.Names(s.Visible()))

	s.ToggleSort(ctx, model.SortName)
	assert.Equal(t, model.SortAsc, s.State().SortDirection)

	assert.Equal(t, before, s.Summary(), "sorting must not change the summary")
	assert.Len(t, saver.Saved, 3)
}

func TestSession_Reset(t *testing.T) {
	ctx := context.Background()
	s := NewSession(companies.Benchmark(), model.FilterState{SearchTerm: "sa", SortColumn: model.SortName})

	s.Reset(ctx)

	assert.Equal(t, model.DefaultFilterState(), s.State())
	assert.Len(t, s.Visible(), 11)
	assert.Equal(t, s.FullSummary(), s.Summary())
}

func TestSession_SaveErrorIsNotFatal(t *testing.T) {
	saver := &MockStateSaver{Err: errors.New("disk full")}
	s := NewSession(companies.Benchmark(), model.DefaultFilterState(), WithStateSaver(saver))

	s.SetSearch(context.Background(), "aws")

	assert.Equal(t, []string{"AWS"}, companies.Names(s.Visible()))
	assert.Len(t, saver.Saved, 1)
}

func TestSession_Find(t *testing.T) {
	s := NewSession(companies.Benchmark(), model.FilterState{SearchTerm: "aws"})

	mural, ok := s.Find("Mural")
	require.True(t, ok, "find searches the full dataset, not just the visible view")
	assert.Equal(t, model.ApproachModerate, mural.Approach)

	_, ok = s.Find("mural")
	assert.False(t, ok)
}
