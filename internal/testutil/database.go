// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/storage"
)

// SetupTestDB creates a migrated in-memory database that is closed when the
// test ends.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeedFilterState stores state as the saved dashboard state.
func SeedFilterState(t *testing.T, store *storage.SQLiteStorage, state model.FilterState) {
	t.Helper()

	if err := store.SaveFilterState(context.Background(), state); err != nil {
		t.Fatalf("failed to seed filter state: %v", err)
	}
}
