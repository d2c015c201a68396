package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/dataact/internal/cli"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func stateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset saved dashboard state",
		Long: `The dashboard remembers its search term, filters and sort order between
sessions, and every export is recorded. These commands show and clear that
state.`,
	}

	cmd.AddCommand(stateShowCmd())
	cmd.AddCommand(stateResetCmd())
	cmd.AddCommand(stateHistoryCmd())
	return cmd
}

func stateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved filters and sort order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			state := store.LoadFilterState(ctx)
			out := cmd.OutOrStdout()
			if !state.IsFiltered() && state.SortColumn == model.SortNone {
				_, err := fmt.Fprintln(out, cli.FormatInfo("No saved filters. The dashboard starts with every company."))
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			rows := [][2]string{
				{"Search", orAll(state.SearchTerm)},
				{"Approach", orAll(state.Approach)},
				{"Refund policy", orAll(state.RefundPolicy)},
				{"Sort", sortDescription(state)},
			}
			for _, row := range rows {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", cli.BoldStyle.Render(row[0]), row[1]); err != nil {
					return fmt.Errorf("failed to write state: %w", err)
				}
			}
			return w.Flush()
		},
	}
}

func stateResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the saved filters and sort order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if err := store.ResetFilterState(ctx); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Saved filters cleared"))
			return err
		},
	}
}

func stateHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent exports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			records, err := store.RecentExports(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to load export history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, err := fmt.Fprintln(out, cli.FormatInfo("No exports yet."))
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("When"),
				headerStyle.Render("Format"),
				headerStyle.Render("Rows"),
				headerStyle.Render("Destination"),
			); err != nil {
				return fmt.Errorf("failed to write header: %w", err)
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "────", "──────", "────", "───────────"); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}

			for _, r := range records {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					r.CreatedAt.Local().Format("2006-01-02 15:04"),
					r.Format,
					r.RowCount,
					r.Destination,
				); err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of exports to show")
	return cmd
}

func orAll(s string) string {
	if s == "" {
		return "(all)"
	}
	return s
}

func sortDescription(state model.FilterState) string {
	if state.SortColumn == model.SortNone {
		return "dataset order"
	}
	return state.SortColumn.Title() + " " + state.SortDirection.Arrow()
}
