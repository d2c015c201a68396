// Package sheets exports the compliance benchmark to Google Sheets.
package sheets

import (
	"fmt"
	"time"
	// Spreadsheet time zones are IANA names whether or not the host has a
	// zoneinfo database.
	_ "time/tzdata"
)

// DefaultSpreadsheetName is used when a new spreadsheet has to be created.
const DefaultSpreadsheetName = "EU Data Act Compliance Benchmark"

// Config holds the configuration for the Google Sheets writer.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	SheetTitle         string
	TimeZone           string
	BatchSize          int
	RetryAttempts      int
	RetryDelay         time.Duration
	EnableFormatting   bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SpreadsheetName:  DefaultSpreadsheetName,
		SheetTitle:       "Benchmark",
		EnableFormatting: true,
		TimeZone:         "Europe/Brussels",
		BatchSize:        500,
		RetryAttempts:    3,
		RetryDelay:       time.Second,
	}
}

// Validate checks that exactly one authentication method is configured and
// that the tuning values are usable.
func (c *Config) Validate() error {
	oauth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	serviceAccount := c.ServiceAccountPath != ""

	switch {
	case !oauth && !serviceAccount:
		return fmt.Errorf("no authentication method configured")
	case oauth && serviceAccount:
		return fmt.Errorf("multiple authentication methods configured; use either OAuth2 or service account")
	case c.BatchSize <= 0:
		return fmt.Errorf("batch size must be positive")
	case c.RetryAttempts < 0:
		return fmt.Errorf("retry attempts cannot be negative")
	case c.RetryDelay < 0:
		return fmt.Errorf("retry delay cannot be negative")
	}

	if c.TimeZone != "" {
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			return fmt.Errorf("invalid time zone %q: %w", c.TimeZone, err)
		}
	}
	return nil
}
