// Package report renders the benchmark as a self-contained static HTML page.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/dataact/internal/engine"
	"github.com/Veraticus/dataact/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{
			"badge": func(a model.Approach) string { return a.BadgeClass() },
		}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// DefaultTitle heads the page when Data.Title is empty.
const DefaultTitle = "EU Data Act Compliance Benchmark"

// Data is the input of a report.
type Data struct {
	GeneratedAt time.Time
	Title       string
	Source      string
	Companies   []model.Company
	State       model.FilterState
}

type page struct {
	Full        model.SummaryStats
	Stats       model.SummaryStats
	Title       string
	Generated   string
	Source      string
	Anchors     map[string]string
	Approaches  []approachStat
	Bars        []bar
	Slices      []slice
	Columns     []column
	Visible     []model.Company
	All         []model.Company
	Filters     string
	Radius      string
	ChartHeight int
	Filtered    bool
}

type approachStat struct {
	Label string
	Class string
	Count int
}

type column struct {
	Title  string
	Arrow  string
	Active bool
}

// Palette used by both charts, in category order.
var palette = []string{"#1FB8CD", "#FFC185", "#B4413C", "#5D878F"}

const (
	barRowHeight = 40
	barMaxWidth  = 300.0
	barX         = 190.0
	// A circle of this radius has a circumference of 100, so dash lengths
	// are percentages.
	donutRadius = 100 / (2 * math.Pi)
)

type bar struct {
	Label   string
	Color   string
	Width   string
	ValueX  string
	Count   int
	Percent int
	RectY   int
	TextY   int
}

type slice struct {
	Label   string
	Color   string
	Dash    string
	Offset  string
	Count   int
	Percent int
}

// Render writes the report page. The table follows data.State; cards,
// clauses and detail views cover the whole dataset.
func Render(w io.Writer, data Data) error {
	if err := pageTemplate.Execute(w, build(data)); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path, creating parent directories.
func WriteFile(path string, data Data) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 -- user supplied report path
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Render(f, data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func build(data Data) page {
	session := engine.NewSession(data.Companies, data.State)
	state := session.State()
	stats := session.Summary()

	title := data.Title
	if title == "" {
		title = DefaultTitle
	}
	generated := data.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	p := page{
		Title:       title,
		Generated:   generated.Format("January 2, 2006 15:04"),
		Source:      data.Source,
		Full:        session.FullSummary(),
		Stats:       stats,
		Filtered:    state.IsFiltered(),
		Filters:     strings.Join(state.Criteria(), ", "),
		Visible:     session.Visible(),
		All:         session.Companies(),
		Anchors:     make(map[string]string, len(data.Companies)),
		ChartHeight: len(model.TerminationCategories) * barRowHeight,
		Radius:      fmt.Sprintf("%.4f", donutRadius),
	}

	for i, c := range p.All {
		if _, ok := p.Anchors[c.Name]; !ok {
			p.Anchors[c.Name] = fmt.Sprintf("company-%d", i)
		}
	}

	for _, a := range model.Approaches {
		p.Approaches = append(p.Approaches, approachStat{
			Label: a.String(),
			Class: a.BadgeClass(),
			Count: p.Full.ApproachCount(a),
		})
	}

	for _, col := range model.SortColumns {
		c := column{Title: col.Title()}
		if col == state.SortColumn {
			c.Active = true
			c.Arrow = state.SortDirection.Arrow()
		}
		p.Columns = append(p.Columns, c)
	}

	p.Bars = terminationBars(stats)
	p.Slices = refundSlices(stats)
	return p
}

func terminationBars(stats model.SummaryStats) []bar {
	maxCount := 0
	for _, c := range model.TerminationCategories {
		maxCount = max(maxCount, stats.TerminationFeeStats.Count(c))
	}

	bars := make([]bar, 0, len(model.TerminationCategories))
	for i, c := range model.TerminationCategories {
		n := stats.TerminationFeeStats.Count(c)
		width := 0.0
		if maxCount > 0 {
			width = float64(n) / float64(maxCount) * barMaxWidth
		}
		bars = append(bars, bar{
			Label:   c.Label(),
			Color:   palette[i%len(palette)],
			Count:   n,
			Percent: stats.Percent(n),
			RectY:   i*barRowHeight + 6,
			TextY:   i*barRowHeight + 24,
			Width:   fmt.Sprintf("%.2f", width),
			ValueX:  fmt.Sprintf("%.2f", barX+width+8),
		})
	}
	return bars
}

func refundSlices(stats model.SummaryStats) []slice {
	total := stats.RefundStats.Total()
	out := make([]slice, 0, len(model.RefundCategories))

	// Slices start at twelve o'clock, which is a quarter turn back from the
	// circle's default start.
	offset := 25.0
	for i, c := range model.RefundCategories {
		n := stats.RefundStats.Count(c)
		share := 0.0
		if total > 0 {
			share = float64(n) / float64(total) * 100
		}
		out = append(out, slice{
			Label:   c.Label(),
			Color:   palette[i%len(palette)],
			Count:   n,
			Percent: stats.Percent(n),
			Dash:    fmt.Sprintf("%.2f %.2f", share, 100-share),
			Offset:  fmt.Sprintf("%.2f", offset),
		})
		offset -= share
	}
	return out
}
