package sheets

import (
	"fmt"
	"time"

	"github.com/Veraticus/dataact/internal/model"
)

// DetailHeader is the header of the per-company section.
var DetailHeader = []any{
	"Company",
	"Approach",
	"Termination Fee",
	"Refund Policy",
	"Notice Period",
	"Key Features",
	"Terms URL",
}

// BuildRows lays out the sheet: title, approach counts, both category
// breakdowns with shares, then the company rows in view order.
func BuildRows(companies []model.Company, stats model.SummaryStats, generatedAt time.Time) [][]any {
	estimatedRows := 20 + len(model.TerminationCategories) + len(model.RefundCategories) + len(companies)
	values := make([][]any, 0, estimatedRows)

	values = append(values,
		[]any{DefaultSpreadsheetName, "Generated " + generatedAt.Format("Jan 2, 2006")},
		[]any{},
		[]any{"Summary"},
		[]any{"Total Companies", stats.TotalCompanies},
	)
	for _, a := range model.Approaches {
		values = append(values, []any{a.String(), stats.ApproachCount(a)})
	}

	values = append(values,
		[]any{},
		[]any{"Termination Fees", "Count", "Share"},
	)
	for _, c := range model.TerminationCategories {
		n := stats.TerminationFeeStats.Count(c)
		values = append(values, []any{c.Label(), n, share(stats, n)})
	}

	values = append(values,
		[]any{},
		[]any{"Refund Policies", "Count", "Share"},
	)
	for _, c := range model.RefundCategories {
		n := stats.RefundStats.Count(c)
		values = append(values, []any{c.Label(), n, share(stats, n)})
	}

	values = append(values,
		[]any{},
		[]any{},
		[]any{"Company Details"},
		DetailHeader,
	)
	for _, c := range companies {
		values = append(values, []any{
			c.Name,
			c.Approach.String(),
			c.DisplayTerminationFee(),
			c.DisplayRefundPolicy(),
			c.NoticePeriod(),
			c.KeyFeatures,
			c.TermsURL,
		})
	}

	return values
}

func share(stats model.SummaryStats, n int) string {
	return fmt.Sprintf("%d%%", stats.Percent(n))
}
