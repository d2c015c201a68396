package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/dataact/internal/cli"
	"github.com/Veraticus/dataact/internal/common"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/summary"
	"github.com/spf13/cobra"
)

// errSummaryMismatch is returned by summary --check when the declared summary
// disagrees with the companies.
var errSummaryMismatch = errors.New("declared summary does not match the companies")

func summaryCmd() *cobra.Command {
	var (
		flags viewFlags
		check bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show benchmark statistics",
		Long: `Show how many companies take each approach and how their termination fees
and refund policies break down. Percentages are of the companies shown.

With --check, the summary shipped inside the dataset is compared with the one
computed from its companies and every disagreement is reported.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, ds, err := buildSession(cmd.Context(), cmd, &flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := writeSummary(out, session.Summary(), describeFilters(session.State()), len(session.Companies())); err != nil {
				return err
			}

			if !check {
				return nil
			}
			if ds.Summary == nil {
				_, err := fmt.Fprintln(out, cli.FormatInfo("The dataset does not declare a summary."))
				return err
			}
			return writeReconciliation(out, summary.Reconcile(*ds.Summary, session.FullSummary()))
		},
	}

	addViewFlags(cmd, &flags)
	cmd.Flags().BoolVar(&check, "check", false, "Compare the dataset's declared summary with the computed one")
	return cmd
}

func writeSummary(out io.Writer, stats model.SummaryStats, filters string, total int) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s Companies analyzed: %s\n", cli.ChartIcon, cli.BoldStyle.Render(fmt.Sprint(stats.TotalCompanies)))
	if filters != "" {
		fmt.Fprintf(&b, "%s\n", cli.SubtleStyle.Render(fmt.Sprintf("of %d, %s", total, filters)))
	}
	b.WriteString("\n")

	for _, a := range model.Approaches {
		fmt.Fprintf(&b, "  %-20s %3d\n", cli.FormatApproach(a), stats.ApproachCount(a))
	}

	fmt.Fprintf(&b, "\n%s Termination fees\n", cli.MoneyIcon)
	for _, c := range model.TerminationCategories {
		n := stats.TerminationFeeStats.Count(c)
		fmt.Fprintf(&b, "  %-28s %3d  %3d%%\n", c.Label(), n, stats.Percent(n))
	}

	fmt.Fprintf(&b, "\n%s Refund policies\n", cli.RefundIcon)
	for _, c := range model.RefundCategories {
		n := stats.RefundStats.Count(c)
		fmt.Fprintf(&b, "  %-28s %3d  %3d%%\n", c.Label(), n, stats.Percent(n))
	}

	_, err := fmt.Fprintln(out, cli.RenderBox("EU Data Act Compliance Summary", strings.TrimRight(b.String(), "\n")))
	return err
}

func writeReconciliation(out io.Writer, mismatches []summary.Mismatch) error {
	if len(mismatches) == 0 {
		_, err := fmt.Fprintln(out, cli.FormatSuccess("Declared summary matches the companies."))
		return err
	}

	for _, m := range mismatches {
		if _, err := fmt.Fprintln(out, cli.FormatWarning(m.String())); err != nil {
			return err
		}
	}
	return common.NewUserError(fmt.Sprintf("%d summary fields disagree with the companies", len(mismatches)), errSummaryMismatch)
}
