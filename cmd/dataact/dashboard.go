package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/dataact/internal/common"
	"github.com/Veraticus/dataact/internal/tui"
	"github.com/Veraticus/dataact/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"tui"},
		Short:   "Browse the benchmark in an interactive dashboard",
		Long: `Open the compliance dashboard.

The Overview tab summarizes termination fee structures and refund policies.
The Companies tab lists every vendor with search, filters and sortable
columns; press enter for details or e to export the current view to CSV.
The Contract Clauses tab shows the verbatim clauses behind each rating.

Filters and sort order are saved and restored on the next launch.`,
		RunE: runDashboard,
	}

	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	cmd.Flags().String("log-file", "", "write logs here while the dashboard is open")
	_ = viper.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("logging.file", cmd.Flags().Lookup("log-file"))

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s := settings()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	// The dashboard owns the terminal, so logs go to a file or nowhere.
	level, err := common.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	logCloser, err := common.RedirectLogger(s.LogFile, level, s.LogFormat)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := logCloser.Close(); closeErr != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "failed to close log file:", closeErr)
		}
		if setupErr := setupLogging(); setupErr != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), setupErr)
		}
	}()

	slog.Info("Starting dashboard", "source", s.DataSource, "database", store.Path())

	err = tui.Run(ctx,
		tui.WithStore(store),
		tui.WithTheme(themes.GetTheme(s.Theme)),
		tui.WithDataSource(s.DataSource),
		tui.WithExportPath(s.ExportPath),
	)
	if err != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}
