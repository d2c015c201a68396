package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/dataact/internal/common"
	"github.com/Veraticus/dataact/internal/config"
	"github.com/Veraticus/dataact/internal/dataset"
	"github.com/Veraticus/dataact/internal/engine"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings resolves the current configuration.
func settings() config.Settings {
	return config.Load(viper.GetViper())
}

// initStorage opens the database and applies pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.Open(ctx, settings().DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// loadDataset loads the configured dataset. Failure is final; there is no retry.
func loadDataset(ctx context.Context) (*dataset.Dataset, error) {
	source := settings().DataSource

	ds, err := dataset.Load(ctx, source)
	if err != nil {
		return nil, common.NewUserError("Failed to load compliance data", err)
	}

	slog.Debug("Dataset loaded", "source", ds.Source, "companies", len(ds.Companies))
	return ds, nil
}

// viewFlags are the filter and sort flags shared by the commands that render
// a view of the benchmark.
type viewFlags struct {
	search   string
	approach string
	refund   string
	sort     string
	desc     bool
	useSaved bool
}

func addViewFlags(cmd *cobra.Command, f *viewFlags) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Only companies whose name contains this text")
	cmd.Flags().StringVarP(&f.approach, "approach", "a", "", "Only companies with this approach (Strict, Moderate, Customer-Friendly, Balanced)")
	cmd.Flags().StringVarP(&f.refund, "refund", "r", "", "Only companies with exactly this refund policy")
	cmd.Flags().String("sort", "", "Sort column (name, approach, termination-fee, refund-policy, notice-months)")
	cmd.Flags().Bool("desc", false, "Sort descending")
	cmd.Flags().BoolVar(&f.useSaved, "use-saved", false, "Start from the filters saved by the dashboard")
}

// readViewFlags copies the sort flags, which are read through the command so
// that an explicit --desc=false is distinguishable from the default.
func readViewFlags(cmd *cobra.Command, f *viewFlags) {
	f.sort, _ = cmd.Flags().GetString("sort")
	f.desc, _ = cmd.Flags().GetBool("desc")
}

// filterState builds the filter state for a command: the saved dashboard state
// when requested, then every flag that was given on top of it.
func (f viewFlags) filterState(ctx context.Context, cmd *cobra.Command) (model.FilterState, error) {
	state := model.DefaultFilterState()

	if f.useSaved {
		store, err := initStorage(ctx)
		if err != nil {
			return state, err
		}
		state = store.LoadFilterState(ctx)
		closeStorage(store)
	}

	if cmd.Flags().Changed("search") {
		state.SearchTerm = f.search
	}
	if cmd.Flags().Changed("approach") {
		state.Approach = canonicalApproach(f.approach)
	}
	if cmd.Flags().Changed("refund") {
		state.RefundPolicy = f.refund
	}
	if cmd.Flags().Changed("sort") {
		column, err := model.ParseSortColumn(f.sort)
		if err != nil {
			return state, common.NewUserError("Unknown sort column "+f.sort, err)
		}
		state.SortColumn = column
		state.SortDirection = model.SortAsc
	}
	if cmd.Flags().Changed("desc") {
		state.SortDirection = model.SortAsc
		if f.desc {
			state.SortDirection = model.SortDesc
		}
	}

	return state.Normalize(), nil
}

// canonicalApproach matches a known approach case-insensitively. Anything
// else is kept verbatim and simply matches no company.
func canonicalApproach(s string) string {
	for _, a := range model.Approaches {
		if strings.EqualFold(string(a), s) {
			return string(a)
		}
	}
	return s
}

// buildSession loads the dataset and applies the command's filters to it.
func buildSession(ctx context.Context, cmd *cobra.Command, f *viewFlags) (*engine.Session, *dataset.Dataset, error) {
	readViewFlags(cmd, f)

	state, err := f.filterState(ctx, cmd)
	if err != nil {
		return nil, nil, err
	}

	ds, err := loadDataset(ctx)
	if err != nil {
		return nil, nil, err
	}

	return engine.NewSession(ds.Companies, state), ds, nil
}

// describeFilters summarizes the active filters for output headers.
func describeFilters(state model.FilterState) string {
	parts := state.Criteria()
	if state.SortColumn != model.SortNone {
		parts = append(parts, fmt.Sprintf("sorted by %s %s", state.SortColumn.Title(), state.SortDirection.Arrow()))
	}
	return strings.Join(parts, ", ")
}
