package tui

import (
	"context"

	"github.com/Veraticus/dataact/internal/dataset"
	"github.com/Veraticus/dataact/internal/export"
	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/tui/themes"
)

// Store persists dashboard state. *storage.SQLiteStorage satisfies it.
type Store interface {
	LoadFilterState(ctx context.Context) model.FilterState
	SaveFilterState(ctx context.Context, state model.FilterState) error
	RecordExport(ctx context.Context, format, destination string, rowCount int) (int64, error)
}

// LoaderFunc loads the dataset shown by the dashboard.
type LoaderFunc func(ctx context.Context, source string) (*dataset.Dataset, error)

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Store      Store
	Loader     LoaderFunc
	DataSource string
	ExportPath string
	Width      int
	Height     int
	ShowHelp   bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:      themes.Default,
		Width:      80,
		Height:     24,
		ExportPath: export.DefaultFileName,
		Loader: func(ctx context.Context, source string) (*dataset.Dataset, error) {
			return dataset.Load(ctx, source)
		},
	}
}

// WithStore sets where filter state and export history are kept. Without a
// store nothing is persisted.
func WithStore(store Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithDataSource sets the dataset path or URL; empty means the embedded dataset.
func WithDataSource(source string) Option {
	return func(c *Config) {
		c.DataSource = source
	}
}

// WithExportPath sets the CSV export destination.
func WithExportPath(path string) Option {
	return func(c *Config) {
		c.ExportPath = path
	}
}

// WithLoader replaces the dataset loader.
func WithLoader(loader LoaderFunc) Option {
	return func(c *Config) {
		c.Loader = loader
	}
}

// WithHelp shows the full key help on startup.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
