package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrInvalidLimit     = errors.New("limit must be positive")
	ErrUnknownFormat    = errors.New("unknown export format")
	ErrNegativeRowCount = errors.New("row count cannot be negative")
)

// ExportFormats lists the destinations recorded in the export history.
var ExportFormats = []string{"csv", "sheets", "html"}

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateExport(format, destination string, rowCount int) error {
	if !slices.Contains(ExportFormats, format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := validateString(destination, "destination"); err != nil {
		return err
	}
	if rowCount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRowCount, rowCount)
	}
	return nil
}
