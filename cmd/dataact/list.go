package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Veraticus/dataact/internal/cli"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List companies in the benchmark",
		Long: `List the benchmarked companies with their approach, termination fee,
refund policy and notice period.

Filters combine: a company is listed only when it matches every one given.`,
		Example: `  dataact list --approach strict
  dataact list --search cloud --sort notice-months --desc
  dataact list --use-saved`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _, err := buildSession(cmd.Context(), cmd, &flags)
			if err != nil {
				return err
			}
			return writeCompanyTable(cmd.OutOrStdout(), session.Visible(), session.State(), len(session.Companies()))
		},
	}

	addViewFlags(cmd, &flags)
	return cmd
}

// writeCompanyTable prints companies as an aligned table whose header marks
// the sorted column.
func writeCompanyTable(out io.Writer, companies []model.Company, state model.FilterState, total int) error {
	if len(companies) == 0 {
		_, err := fmt.Fprintln(out, cli.FormatInfo("No companies match the current filters."))
		return err
	}

	if filters := describeFilters(state); filters != "" {
		if _, err := fmt.Fprintf(out, "%s\n\n", cli.SubtleStyle.Render(fmt.Sprintf("%d of %d companies (%s)", len(companies), total, filters))); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headers := make([]any, len(model.SortColumns))
	separators := make([]any, len(model.SortColumns))
	for i, col := range model.SortColumns {
		title := col.Title()
		if state.SortColumn == col {
			title += " " + state.SortDirection.Arrow()
		}
		headers[i] = headerStyle.Render(title)
		separators[i] = "──────"
	}

	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", headers...); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", separators...); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, c := range companies {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.Name,
			c.Approach.String(),
			c.DisplayTerminationFee(),
			c.DisplayRefundPolicy(),
			c.NoticePeriod(),
		); err != nil {
			return fmt.Errorf("failed to write company: %w", err)
		}
	}

	return w.Flush()
}
