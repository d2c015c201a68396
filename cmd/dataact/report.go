package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/dataact/internal/cli"
	"github.com/Veraticus/dataact/internal/config"
	"github.com/Veraticus/dataact/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func reportCmd() *cobra.Command {
	var (
		flags viewFlags
		title string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a standalone HTML report",
		Long: `Render the benchmark as a single self-contained HTML page with summary
cards, charts, the filtered company table and every contract clause.`,
		Example: `  dataact report --output benchmark.html
  dataact report --approach Customer-Friendly --title "Friendly vendors"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Report")
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			bar := cli.NewProgressBar(cmd.ErrOrStderr(), 3, "Loading dataset")

			session, ds, err := buildSession(ctx, cmd, &flags)
			if err != nil {
				return err
			}
			cli.Step(bar, "Rendering report")

			path := settings().ReportPath
			err = report.WriteFile(path, report.Data{
				GeneratedAt: time.Now(),
				Title:       title,
				Source:      ds.Source,
				Companies:   ds.Companies,
				State:       session.State(),
			})
			if err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			cli.Step(bar, "Recording export")

			recordExport(ctx, "html", path, len(session.Visible()))
			cli.Step(bar, "Done")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Report written to "+path))
			return err
		},
	}

	addViewFlags(cmd, &flags)
	cmd.Flags().StringP("output", "o", "", "HTML file path (default: "+config.DefaultReportPath+")")
	cmd.Flags().StringVar(&title, "title", "", "page title (default: "+report.DefaultTitle+")")
	_ = viper.BindPFlag("report.path", cmd.Flags().Lookup("output"))
	return cmd
}
