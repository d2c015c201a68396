package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/dataact/internal/cli"
	"github.com/Veraticus/dataact/internal/config"
	"github.com/Veraticus/dataact/internal/export"
	"github.com/Veraticus/dataact/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newSheetsWriter is replaced in tests.
var newSheetsWriter = func(ctx context.Context, cfg sheets.Config) (sheets.ReportWriter, error) {
	return sheets.NewWriter(ctx, cfg, slog.Default())
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the benchmark",
		Long: `Export the filtered, sorted company list to a CSV file or a Google Sheets
spreadsheet. Every successful export is recorded in the export history
(see 'dataact state history').`,
	}

	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportSheetsCmd())
	return cmd
}

func exportCSVCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export companies to a CSV file",
		Long: `Write the visible companies to a CSV file with the columns Company,
Approach, Termination Fee, Refund Policy and Notice Period.`,
		Example: `  dataact export csv --approach Strict --output strict.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Export")
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			bar := cli.NewProgressBar(cmd.ErrOrStderr(), 3, "Loading dataset")

			session, _, err := buildSession(ctx, cmd, &flags)
			if err != nil {
				return err
			}
			cli.Step(bar, "Writing CSV")

			path := settings().ExportPath
			rows, err := export.WriteFile(path, session.Visible())
			if err != nil {
				return fmt.Errorf("failed to export CSV: %w", err)
			}
			cli.Step(bar, "Recording export")

			if ctx.Err() != nil {
				return ctx.Err()
			}
			recordExport(ctx, "csv", path, rows)
			cli.Step(bar, "Done")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d companies to %s", rows, path)))
			return err
		},
	}

	addViewFlags(cmd, &flags)
	cmd.Flags().StringP("output", "o", "", "CSV file path (default: "+config.DefaultExportPath+")")
	_ = viper.BindPFlag("export.path", cmd.Flags().Lookup("output"))
	return cmd
}

func exportSheetsCmd() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Export companies to Google Sheets",
		Long: `Publish the visible companies and their summary to a Google Sheets
spreadsheet. The target sheet is cleared and rewritten.

Authenticate with a service account (sheets.service_account_path) or OAuth2
credentials (sheets.client_id, sheets.client_secret, sheets.refresh_token).
The GOOGLE_SHEETS_* environment variables are also honored.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Sheets export")
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			cfg, err := config.LoadSheetsConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("failed to load sheets config: %w", err)
			}

			bar := cli.NewProgressBar(cmd.ErrOrStderr(), 4, "Loading dataset")

			session, _, err := buildSession(ctx, cmd, &flags)
			if err != nil {
				return err
			}
			cli.Step(bar, "Connecting to Google Sheets")

			writer, err := newSheetsWriter(ctx, *cfg)
			if err != nil {
				return fmt.Errorf("failed to create sheets writer: %w", err)
			}
			cli.Step(bar, "Writing spreadsheet")

			result, err := writer.Write(ctx, session.Visible(), session.Summary())
			if err != nil {
				if handler.WasInterrupted() {
					return ctx.Err()
				}
				return fmt.Errorf("failed to export to Google Sheets: %w", err)
			}
			cli.Step(bar, "Recording export")

			recordExport(ctx, "sheets", result.URL, result.Rows)
			cli.Step(bar, "Done")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d companies to %s", result.Rows, result.URL)))
			return err
		},
	}

	addViewFlags(cmd, &flags)
	cmd.Flags().String("spreadsheet-id", "", "existing spreadsheet to overwrite")
	_ = viper.BindPFlag("sheets.spreadsheet_id", cmd.Flags().Lookup("spreadsheet-id"))
	return cmd
}

// recordExport adds an entry to the export history. The export itself has
// already succeeded, so failures are only logged.
func recordExport(ctx context.Context, format, destination string, rows int) {
	store, err := initStorage(ctx)
	if err != nil {
		slog.Warn("Failed to record export", "error", err)
		return
	}
	defer closeStorage(store)

	if _, err := store.RecordExport(ctx, format, destination, rows); err != nil {
		slog.Warn("Failed to record export", "format", format, "error", err)
	}
}
