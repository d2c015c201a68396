package storage

import (
	"context"
	"fmt"
	"time"
)

// ExportRecord is one entry of the export history.
type ExportRecord struct {
	CreatedAt   time.Time
	Format      string
	Destination string
	ID          int64
	RowCount    int
}

// RecordExport appends an export to the history and returns its ID.
func (s *SQLiteStorage) RecordExport(ctx context.Context, format, destination string, rowCount int) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateExport(format, destination, rowCount); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO exports (format, destination, row_count) VALUES (?, ?, ?)`,
		format, destination, rowCount)
	if err != nil {
		return 0, fmt.Errorf("failed to record export: %w", err)
	}
	return result.LastInsertId()
}

// RecentExports returns up to limit exports, newest first.
func (s *SQLiteStorage) RecentExports(ctx context.Context, limit int) ([]ExportRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, format, destination, row_count, created_at
		FROM exports
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []ExportRecord
	for rows.Next() {
		var r ExportRecord
		if err := rows.Scan(&r.ID, &r.Format, &r.Destination, &r.RowCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exports: %w", err)
	}
	return records, nil
}
