package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"

	"github.com/Veraticus/dataact/internal/model"
)

// FilterStateKey is the preferences key holding the dashboard filter state.
const FilterStateKey = "filter_state"

// GetPreference returns the stored value for key and whether it exists.
func (s *SQLiteStorage) GetPreference(ctx context.Context, key string) (string, bool, error) {
	if err := validateContext(ctx); err != nil {
		return "", false, err
	}
	if err := validateString(key, "key"); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetPreference inserts or replaces the value for key.
func (s *SQLiteStorage) SetPreference(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}
	return nil
}

// DeletePreference removes key. Deleting a missing key is not an error.
func (s *SQLiteStorage) DeletePreference(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}

// LoadFilterState restores the last saved filter state. Missing, unreadable
// or corrupt state yields the default state.
func (s *SQLiteStorage) LoadFilterState(ctx context.Context) model.FilterState {
	value, ok, err := s.GetPreference(ctx, FilterStateKey)
	if err != nil {
		slog.Warn("Could not read saved filter state", "error", err)
		return model.DefaultFilterState()
	}
	if !ok {
		return model.DefaultFilterState()
	}

	state := model.DefaultFilterState()
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		slog.Debug("Ignoring corrupt filter state", "error", err)
		return model.DefaultFilterState()
	}
	return state.Normalize()
}

// SaveFilterState persists state, replacing any previous value.
func (s *SQLiteStorage) SaveFilterState(ctx context.Context, state model.FilterState) error {
	data, err := json.Marshal(state.Normalize())
	if err != nil {
		return fmt.Errorf("failed to encode filter state: %w", err)
	}
	return s.SetPreference(ctx, FilterStateKey, string(data))
}

// ResetFilterState forgets the saved filter state.
func (s *SQLiteStorage) ResetFilterState(ctx context.Context) error {
	return s.DeletePreference(ctx, FilterStateKey)
}
