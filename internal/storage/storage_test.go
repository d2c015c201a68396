package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Veraticus/dataact/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestMigrate(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running again is a no-op.
	require.NoError(t, store.Migrate(ctx))
}

func TestMigrate_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.db")

	store, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	_, err = store.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = Open(context.Background(), path)
	require.ErrorIs(t, err, ErrSchemaTooNew)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.ErrorIs(t, err, ErrEmptyString)
}

func TestPreferences(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, ok, err := store.GetPreference(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetPreference(ctx, "theme", "dark"))
	require.NoError(t, store.SetPreference(ctx, "theme", "light"))

	value, ok, err := store.GetPreference(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	require.NoError(t, store.DeletePreference(ctx, "theme"))
	require.NoError(t, store.DeletePreference(ctx, "theme"))

	_, ok, err = store.GetPreference(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.ErrorIs(t, store.SetPreference(ctx, "", "x"), ErrEmptyString)
}

func TestFilterState_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	assert.Equal(t, model.DefaultFilterState(), store.LoadFilterState(ctx))

	state := model.FilterState{
		SearchTerm:    "sa",
		Approach:      string(model.ApproachStrict),
		RefundPolicy:  "No Refunds",
		SortColumn:    model.SortNoticeMonths,
		SortDirection: model.SortDesc,
	}
	require.NoError(t, store.SaveFilterState(ctx, state))
	assert.Equal(t, state, store.LoadFilterState(ctx))

	raw, ok, err := store.GetPreference(ctx, FilterStateKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{
		"searchTerm": "sa",
		"approachFilter": "Strict",
		"refundFilter": "No Refunds",
		"sortColumn": "noticeMonths",
		"sortDirection": "desc"
	}`, raw)

	require.NoError(t, store.ResetFilterState(ctx))
	assert.Equal(t, model.DefaultFilterState(), store.LoadFilterState(ctx))
}

func TestFilterState_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.FilterState
	}{
		{
			name: "not json",
			raw:  "{{{",
			want: model.DefaultFilterState(),
		},
		{
			name: "wrong types",
			raw:  `{"searchTerm": 42}`,
			want: model.DefaultFilterState(),
		},
		{
			name: "unknown sort column",
			raw:  `{"searchTerm": "aws", "sortColumn": "price", "sortDirection": "up"}`,
			want: model.FilterState{SearchTerm: "aws", SortDirection: model.SortAsc},
		},
		{
			name: "partial state keeps defaults",
			raw:  `{"approachFilter": "Balanced"}`,
			want: model.FilterState{Approach: "Balanced", SortDirection: model.SortAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := createTestStorage(t)
			ctx := context.Background()

			require.NoError(t, store.SetPreference(ctx, FilterStateKey, tt.raw))
			assert.Equal(t, tt.want, store.LoadFilterState(ctx))
		})
	}
}

func TestLoadFilterState_ClosedDatabase(t *testing.T) {
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	assert.Equal(t, model.DefaultFilterState(), store.LoadFilterState(context.Background()))
}

func TestExports(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	records, err := store.RecentExports(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, records)

	first, err := store.RecordExport(ctx, "csv", "/tmp/benchmark.csv", 11)
	require.NoError(t, err)
	second, err := store.RecordExport(ctx, "sheets", "https://docs.google.com/spreadsheets/d/abc", 4)
	require.NoError(t, err)
	assert.Greater(t, second, first)

	records, err = store.RecentExports(ctx, 5)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "sheets", records[0].Format)
	assert.Equal(t, 4, records[0].RowCount)
	assert.Equal(t, "/tmp/benchmark.csv", records[1].Destination)
	assert.False(t, records[1].CreatedAt.IsZero())

	records, err = store.RecentExports(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = store.RecentExports(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidLimit)

	_, err = store.RecordExport(ctx, "csv", "", 1)
	require.ErrorIs(t, err, ErrEmptyString)

	_, err = store.RecordExport(ctx, "pdf", "report.pdf", 1)
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = store.RecordExport(ctx, "html", "report.html", -1)
	require.ErrorIs(t, err, ErrNegativeRowCount)
}
