package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/dataact/internal/common"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/sheets"
	"github.com/Veraticus/dataact/internal/storage"
	tuitest "github.com/Veraticus/dataact/internal/tui/testing"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv isolates a command run from the user's config and database.
type testEnv struct {
	dir    string
	dbPath string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	return testEnv{dir: dir, dbPath: filepath.Join(dir, "dataact.db")}
}

// run executes the CLI and returns stdout with styling removed.
func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db", e.dbPath, "--log-level", "error"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return tuitest.StripANSI(out.String()), err
}

func (e testEnv) store(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.Open(context.Background(), e.dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func writeDataset(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "companies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestList(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		exclude []string
	}{
		{
			name: "all companies in dataset order",
			args: []string{"list"},
			want: []string{"Company", "Teradata", "Salesforce", "BMC", "Mural", "Toggl"},
		},
		{
			name:    "approach filter is case-insensitive",
			args:    []string{"list", "--approach", "strict"},
			want:    []string{"4 of 11 companies", "Teradata", "Salesforce", "BMC", "Braze"},
			exclude: []string{"AWS", "Mural"},
		},
		{
			name: "sort descending by name",
			args: []string{"list", "--sort", "name", "--desc"},
			want: []string{"Company ▼", "Toggl", "Teradata", "Samsara", "Salesforce"},
		},
		{
			name:    "search matches substrings",
			args:    []string{"ls", "-s", "sa"},
			want:    []string{`name contains "sa"`, "Salesforce", "Samsara"},
			exclude: []string{"Teradata"},
		},
		{
			name: "nothing matches",
			args: []string{"list", "--search", "zzz"},
			want: []string{"No companies match the current filters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			out, err := env.run(t, tt.args...)
			require.NoError(t, err)

			assert.True(t, tuitest.ContainsInOrder(out, tt.want...), "output:\n%s", out)
			for _, s := range tt.exclude {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestList_TableLayout(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "list", "--sort", "notice-months")
	require.NoError(t, err)

	lines := tuitest.VisibleLines(out)
	require.Len(t, lines, 14)
	assert.Contains(t, lines[0], "sorted by Notice Period ▲")
	assert.True(t, strings.HasPrefix(lines[1], "Company"))
	assert.Contains(t, lines[1], "Notice Period ▲")
	assert.True(t, strings.HasPrefix(lines[2], "──────"))
	// Equal notice periods keep dataset order.
	assert.True(t, strings.HasPrefix(lines[3], "Teradata"))
	assert.True(t, strings.HasPrefix(lines[13], "Toggl"))
}

func TestList_InvalidSort(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "list", "--sort", "price")
	require.Error(t, err)

	var userErr *common.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Contains(t, userErr.UserMessage, "Unknown sort column price")
	assert.ErrorIs(t, err, model.ErrInvalidSortColumn)
}

func TestList_UseSavedState(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store(t).SaveFilterState(context.Background(), model.FilterState{
		Approach:      "Customer-Friendly",
		SortColumn:    model.SortName,
		SortDirection: model.SortDesc,
	}))

	out, err := env.run(t, "list", "--use-saved")
	require.NoError(t, err)
	assert.True(t, tuitest.ContainsInOrder(out, "Microsoft", "Google Cloud", "AWS"))
	assert.NotContains(t, out, "Teradata")

	// Flags override the saved state.
	out, err = env.run(t, "list", "--use-saved", "--approach", "Moderate")
	require.NoError(t, err)
	assert.Contains(t, out, "Mural")
	assert.NotContains(t, out, "AWS")
}

func TestSummary(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "summary")
	require.NoError(t, err)
	assert.True(t, tuitest.ContainsInOrder(out,
		"Companies analyzed: 11",
		"Strict", "4",
		"Termination fees",
		"Refund policies",
		"No Refunds", "5", "45%",
	), "output:\n%s", out)

	out, err = env.run(t, "summary", "--approach", "Customer-Friendly")
	require.NoError(t, err)
	assert.Contains(t, out, "Companies analyzed: 3")
	assert.True(t, tuitest.ContainsInOrder(out, "Credits/Free Transfer", "3", "100%"))
}

func TestSummary_Check(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "summary", "--check")
	require.Error(t, err)
	assert.ErrorIs(t, err, errSummaryMismatch)
	assert.Contains(t, out, "refundStats.noRefunds: declared 4, computed 5")

	path := writeDataset(t, env.dir, `
companies:
  - name: Acme
    approach: Strict
    refundPolicy: No Refunds
    details: Test company
summary:
  totalCompanies: 1
  strictApproach: 1
  terminationFeeStats:
    notSpecified: 1
  refundStats:
    noRefunds: 1
`)
	out, err = env.run(t, "--data", path, "summary", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "Declared summary matches the companies.")

	path = writeDataset(t, env.dir, "companies: []\n")
	out, err = env.run(t, "--data", path, "summary", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "Companies analyzed: 0")
	assert.Contains(t, out, "The dataset does not declare a summary.")
}

func TestShow(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "show", "Mural")
	require.NoError(t, err)
	assert.True(t, tuitest.ContainsInOrder(out,
		"Mural", "Moderate",
		"Termination Fee",
		"Notice Period", "2 months",
		"Contract Clauses",
		"Termination Clause",
		"Extended Transition Clause",
	), "output:\n%s", out)

	out, err = env.run(t, "show", "google cloud")
	require.NoError(t, err)
	assert.Contains(t, out, "Google Cloud")
	assert.NotContains(t, out, "Extended Transition Clause")

	_, err = env.run(t, "show", "Nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = env.run(t, "show")
	require.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.dir, "out", "strict.csv")

	out, err := env.run(t, "export", "csv", "--approach", "Strict", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 4 companies to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Company,Approach,Termination Fee,Refund Policy,Notice Period", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"Teradata","Strict"`))

	history, err := env.store(t).RecentExports(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "csv", history[0].Format)
	assert.Equal(t, path, history[0].Destination)
	assert.Equal(t, 4, history[0].RowCount)
}

func TestExportCSV_Failure(t *testing.T) {
	env := newTestEnv(t)
	blocker := filepath.Join(env.dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	_, err := env.run(t, "export", "csv", "--output", filepath.Join(blocker, "out.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export CSV")

	history, err := env.store(t).RecentExports(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestExportSheets(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", filepath.Join(env.dir, "sa.json"))
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_SECRET", "")
	t.Setenv("GOOGLE_SHEETS_REFRESH_TOKEN", "")

	mock := sheets.NewMockWriter()
	original := newSheetsWriter
	newSheetsWriter = func(context.Context, sheets.Config) (sheets.ReportWriter, error) {
		return mock, nil
	}
	t.Cleanup(func() { newSheetsWriter = original })

	out, err := env.run(t, "export", "sheets", "--refund", "No Refunds")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 5 companies to "+sheets.SpreadsheetURL("mock-sheet"))

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Len(t, calls[0].Companies, 5)
	assert.Equal(t, 5, calls[0].Stats.TotalCompanies)

	history, err := env.store(t).RecentExports(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "sheets", history[0].Format)

	mock.SetWriteError(errors.New("quota exceeded"))
	_, err = env.run(t, "export", "sheets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestExportSheets_NoCredentials(t *testing.T) {
	env := newTestEnv(t)
	for _, key := range []string{
		"GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH",
		"GOOGLE_SHEETS_CLIENT_ID",
		"GOOGLE_SHEETS_CLIENT_SECRET",
		"GOOGLE_SHEETS_REFRESH_TOKEN",
	} {
		t.Setenv(key, "")
	}

	_, err := env.run(t, "export", "sheets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no authentication method configured")
}

func TestReport(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.dir, "report.html")

	out, err := env.run(t, "report", "--output", path, "--approach", "Strict", "--title", "Strict vendors")
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Strict vendors")
	assert.Contains(t, html, "Teradata")

	history, err := env.store(t).RecentExports(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "html", history[0].Format)
	assert.Equal(t, 4, history[0].RowCount)
}

func TestState(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved filters.")

	require.NoError(t, env.store(t).SaveFilterState(context.Background(), model.FilterState{
		SearchTerm:    "cloud",
		SortColumn:    model.SortNoticeMonths,
		SortDirection: model.SortDesc,
	}))

	out, err = env.run(t, "state", "show")
	require.NoError(t, err)
	assert.True(t, tuitest.ContainsInOrder(out,
		"Search", "cloud",
		"Approach", "(all)",
		"Sort", "Notice Period ▼",
	), "output:\n%s", out)

	out, err = env.run(t, "state", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved filters cleared")

	out, err = env.run(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved filters.")
}

func TestStateHistory(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "state", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No exports yet.")

	ctx := context.Background()
	store := env.store(t)
	_, err = store.RecordExport(ctx, "csv", "first.csv", 11)
	require.NoError(t, err)
	_, err = store.RecordExport(ctx, "html", "second.html", 4)
	require.NoError(t, err)

	out, err = env.run(t, "state", "history")
	require.NoError(t, err)
	assert.True(t, tuitest.ContainsInOrder(out, "Format", "Destination", "second.html", "first.csv"), "output:\n%s", out)

	out, err = env.run(t, "state", "history", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "second.html")
	assert.NotContains(t, out, "first.csv")
}

func TestLoadFailure(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "--data", filepath.Join(env.dir, "missing.json"), "list")
	require.Error(t, err)

	var userErr *common.UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "Failed to load compliance data", userErr.UserMessage)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dataact dev\n", out)
}

func TestCanonicalApproach(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "strict", want: "Strict"},
		{in: "CUSTOMER-FRIENDLY", want: "Customer-Friendly"},
		{in: "Balanced", want: "Balanced"},
		{in: "Lenient", want: "Lenient"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalApproach(tt.in))
		})
	}
}
