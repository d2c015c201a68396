package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dataact/internal/sheets"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("DATAACT_TEST_DIR", "/srv/data")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data.json", filepath.Join(home, "data.json")},
		{"$DATAACT_TEST_DIR/data.json", "/srv/data/data.json"},
		{"/abs/path.yaml", "/abs/path.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestXDGDirs(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("XDG_CONFIG_HOME", "relative/config")

	assert.Equal(t, filepath.Join("/xdg/data", "dataact", "dataact.db"), DefaultDatabasePath())

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "dataact"), ConfigDir())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	v := viper.New()
	SetDefaults(v)

	s := Load(v)

	assert.Equal(t, "", s.DataSource)
	assert.Equal(t, DefaultDatabasePath(), s.DatabasePath)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "console", s.LogFormat)
	assert.Equal(t, "default", s.Theme)
	assert.Equal(t, DefaultExportPath, s.ExportPath)
	assert.Equal(t, DefaultReportPath, s.ReportPath)
	assert.True(t, strings.HasSuffix(s.DatabasePath, filepath.Join(".local", "share", "dataact", "dataact.db")))
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("data.source", "https://example.com/companies.json")
	v.Set("database.path", "/tmp/dataact.db")
	v.Set("tui.theme", "catppuccin")

	s := Load(v)

	assert.Equal(t, "https://example.com/companies.json", s.DataSource)
	assert.Equal(t, "/tmp/dataact.db", s.DatabasePath)
	assert.Equal(t, "catppuccin", s.Theme)
}

func TestLoadSheetsConfig(t *testing.T) {
	t.Run("viper keys", func(t *testing.T) {
		v := viper.New()
		v.Set("sheets.client_id", "id")
		v.Set("sheets.client_secret", "secret")
		v.Set("sheets.refresh_token", "token")
		v.Set("sheets.spreadsheet_id", "sheet-1")

		cfg, err := LoadSheetsConfig(v)
		require.NoError(t, err)
		assert.Equal(t, "sheet-1", cfg.SpreadsheetID)
		assert.Equal(t, sheets.DefaultSpreadsheetName, cfg.SpreadsheetName)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "/keys/sa.json")
		t.Setenv("GOOGLE_SHEETS_SPREADSHEET_NAME", "Benchmark Q3")

		cfg, err := LoadSheetsConfig(viper.New())
		require.NoError(t, err)
		assert.Equal(t, "/keys/sa.json", cfg.ServiceAccountPath)
		assert.Equal(t, "Benchmark Q3", cfg.SpreadsheetName)
	})

	t.Run("no credentials", func(t *testing.T) {
		for _, key := range []string{
			"GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH",
			"GOOGLE_SHEETS_CLIENT_ID",
			"GOOGLE_SHEETS_CLIENT_SECRET",
			"GOOGLE_SHEETS_REFRESH_TOKEN",
		} {
			t.Setenv(key, "")
		}

		_, err := LoadSheetsConfig(viper.New())
		require.Error(t, err)
	})
}
