package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/dataact/internal/model"
	"github.com/Veraticus/dataact/internal/testutil/companies"
)

var generatedAt = time.Date(2025, 9, 12, 10, 30, 0, 0, time.UTC)

func renderString(t *testing.T, data Data) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, data))
	return buf.String()
}

func TestRender_Benchmark(t *testing.T) {
	html := renderString(t, Data{
		GeneratedAt: generatedAt,
		Source:      "embedded",
		Companies:   companies.Benchmark(),
		State:       model.DefaultFilterState(),
	})

	assert.Contains(t, html, "<title>"+DefaultTitle+"</title>")
	assert.Contains(t, html, "Generated September 12, 2025 10:30 from embedded")
	assert.Contains(t, html, `<div class="value" id="total-companies">11</div>`)
	assert.Equal(t, 11, strings.Count(html, `class="modal" id="company-`))
	assert.Equal(t, 11, strings.Count(html, `class="company-card"`))
	assert.Contains(t, html, `id="company-3"`)
	assert.Contains(t, html, "Extended Transition Clause")
	assert.Contains(t, html, "Customer may extend the Transition Period once.")
	assert.Contains(t, html, "Not Specified: 2 companies (18%)")
	assert.Contains(t, html, "No Refunds: 5 companies (45%)")
	assert.Contains(t, html, "6 (55%)")
	assert.NotContains(t, html, "No companies match")
}

func TestRender_FilteredAndSorted(t *testing.T) {
	html := renderString(t, Data{
		GeneratedAt: generatedAt,
		Companies:   companies.Benchmark(),
		State: model.FilterState{
			SearchTerm:    "sa",
			SortColumn:    model.SortName,
			SortDirection: model.SortDesc,
		},
	})

	table := html[strings.Index(html, `<table id="companyTable">`):strings.Index(html, "</table>")]
	assert.Contains(t, table, `<th class="sortable active">Company ▼</th>`)
	samsara := strings.Index(table, "<strong>Samsara</strong>")
	salesforce := strings.Index(table, "<strong>Salesforce</strong>")
	require.NotEqual(t, -1, samsara)
	require.NotEqual(t, -1, salesforce)
	assert.Less(t, samsara, salesforce)
	assert.NotContains(t, table, "<strong>Teradata</strong>")

	assert.Contains(t, html, `Filters: name contains &#34;sa&#34;`)
	assert.Contains(t, html, "Charts cover the 2 companies matching the current filters.")
	// Cards and detail views still cover the whole dataset.
	assert.Equal(t, 11, strings.Count(html, `class="company-card"`))
}

func TestRender_FilterLineJoinsCriteria(t *testing.T) {
	html := renderString(t, Data{
		Companies: companies.Benchmark(),
		State: model.FilterState{
			SearchTerm:   "sa",
			Approach:     "Strict",
			RefundPolicy: companies.NoRefunds,
		},
	})

	assert.Contains(t, html,
		`<p class="meta">Filters: name contains &#34;sa&#34;, approach Strict, refund policy &#34;`+companies.NoRefunds+`&#34;</p>`)
}

func TestBuild_DonutRadius(t *testing.T) {
	p := build(Data{Companies: companies.Benchmark()})
	assert.Equal(t, "15.9155", p.Radius)

	html := renderString(t, Data{Companies: companies.Benchmark()})
	assert.Contains(t, html, `r="15.9155"`)
	assert.NotContains(t, html, "Filters:")
}

func TestRender_NoMatches(t *testing.T) {
	html := renderString(t, Data{
		Companies: companies.Benchmark(),
		State:     model.FilterState{SearchTerm: "zzz"},
	})
	assert.Contains(t, html, "No companies match the current filters.")
}

func TestRender_MissingValuesAndEscaping(t *testing.T) {
	html := renderString(t, Data{
		Companies: []model.Company{
			companies.New("<script>alert(1)</script>").WithoutNotice().Build(),
		},
	})

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, html, "<td>"+model.NotSpecified+"</td>")
	assert.Contains(t, html, `<span class="approach-badge balanced">`+model.NotSpecified+`</span>`)
	assert.NotContains(t, html, "Extended Transition Clause")
}

func TestRender_EmptyDataset(t *testing.T) {
	html := renderString(t, Data{})
	assert.Contains(t, html, `<div class="value" id="total-companies">0</div>`)
	assert.Contains(t, html, "No companies match the current filters.")
}

func TestBuild_Charts(t *testing.T) {
	p := build(Data{Companies: companies.Benchmark()})

	require.Len(t, p.Bars, 4)
	assert.Equal(t, "Full Remaining Term (100%)", p.Bars[0].Label)
	assert.Equal(t, 3, p.Bars[0].Count)
	assert.Equal(t, 27, p.Bars[0].Percent)
	assert.Equal(t, "300.00", p.Bars[3].Width)
	assert.Equal(t, "50.00", p.Bars[1].Width)

	require.Len(t, p.Slices, 4)
	assert.Equal(t, "25.00", p.Slices[0].Offset)
	total := 0
	for _, s := range p.Slices {
		total += s.Count
	}
	assert.Equal(t, 11, total)

	require.Len(t, p.Approaches, 4)
	assert.Equal(t, approachStat{Label: "Strict", Class: "strict", Count: 4}, p.Approaches[0])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "index.html")
	require.NoError(t, WriteFile(path, Data{Companies: companies.Benchmark()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}
