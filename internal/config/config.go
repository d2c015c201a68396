package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/dataact/internal/export"
)

// Default output file names.
const (
	DefaultExportPath = export.DefaultFileName
	DefaultReportPath = "eu_data_act_compliance_benchmark.html"
)

// Settings is the resolved application configuration.
type Settings struct {
	DataSource   string
	DatabasePath string
	LogLevel     string
	LogFormat    string
	LogFile      string
	Theme        string
	ExportPath   string
	ReportPath   string
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.source", "")
	v.SetDefault("database.path", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
	v.SetDefault("tui.theme", "default")
	v.SetDefault("export.path", DefaultExportPath)
	v.SetDefault("report.path", DefaultReportPath)
}

// Load reads Settings from v, expanding paths.
func Load(v *viper.Viper) Settings {
	s := Settings{
		DataSource:   v.GetString("data.source"),
		DatabasePath: ExpandPath(v.GetString("database.path")),
		LogLevel:     v.GetString("logging.level"),
		LogFormat:    v.GetString("logging.format"),
		LogFile:      ExpandPath(v.GetString("logging.file")),
		Theme:        v.GetString("tui.theme"),
		ExportPath:   ExpandPath(v.GetString("export.path")),
		ReportPath:   ExpandPath(v.GetString("report.path")),
	}

	if s.DatabasePath == "" {
		s.DatabasePath = DefaultDatabasePath()
	}
	if s.ExportPath == "" {
		s.ExportPath = DefaultExportPath
	}
	if s.ReportPath == "" {
		s.ReportPath = DefaultReportPath
	}
	if s.DataSource != "" && !isURL(s.DataSource) {
		s.DataSource = ExpandPath(s.DataSource)
	}

	return s
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
