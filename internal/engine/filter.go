// Package engine derives the visible company view from a dataset and the
// session's filter and sort selection.
package engine

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Veraticus/dataact/internal/model"
)

// Filter returns the companies matching every active criterion of state:
// case-insensitive name substring, exact approach, and exact raw refund policy.
// Empty criteria match everything. The input slice is never modified.
func Filter(companies []model.Company, state model.FilterState) []model.Company {
	search := strings.ToLower(state.SearchTerm)

	filtered := make([]model.Company, 0, len(companies))
	for _, c := range companies {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if state.Approach != "" && string(c.Approach) != state.Approach {
			continue
		}
		if state.RefundPolicy != "" && c.RefundPolicy != state.RefundPolicy {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// Sort returns a copy of companies ordered by column. The sort is stable, so
// companies with equal keys keep their input order. Strings compare
// case-insensitively and notice periods numerically, with an absent notice
// period ordered before any present one. SortNone returns the input order.
func Sort(companies []model.Company, column model.SortColumn, direction model.SortDirection) []model.Company {
	sorted := slices.Clone(companies)
	if column == model.SortNone {
		return sorted
	}

	compare := comparator(column)
	slices.SortStableFunc(sorted, func(a, b model.Company) int {
		if direction == model.SortDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return sorted
}

// Apply filters then sorts companies according to state.
func Apply(companies []model.Company, state model.FilterState) []model.Company {
	return Sort(Filter(companies, state), state.SortColumn, state.SortDirection)
}

func comparator(column model.SortColumn) func(a, b model.Company) int {
	switch column {
	case model.SortNoticeMonths:
		return func(a, b model.Company) int {
			return cmp.Compare(noticeKey(a), noticeKey(b))
		}
	default:
		field := stringField(column)
		return func(a, b model.Company) int {
			return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
		}
	}
}

func stringField(column model.SortColumn) func(model.Company) string {
	switch column {
	case model.SortApproach:
		return func(c model.Company) string { return string(c.Approach) }
	case model.SortTerminationFee:
		return func(c model.Company) string { return c.TerminationFee }
	case model.SortRefundPolicy:
		return func(c model.Company) string { return c.RefundPolicy }
	default:
		return func(c model.Company) string { return c.Name }
	}
}

func noticeKey(c model.Company) int {
	if c.NoticeMonths == nil {
		return -1
	}
	return *c.NoticeMonths
}

// ApproachOptions returns the values offered by the approach filter.
func ApproachOptions() []string {
	options := make([]string, len(model.Approaches))
	for i, a := range model.Approaches {
		options[i] = string(a)
	}
	return options
}

// RefundOptions returns the distinct, non-empty raw refund policies of
// companies in first-seen order.
func RefundOptions(companies []model.Company) []string {
	seen := make(map[string]bool)
	var options []string
	for _, c := range companies {
		if c.RefundPolicy == "" || seen[c.RefundPolicy] {
			continue
		}
		seen[c.RefundPolicy] = true
		options = append(options, c.RefundPolicy)
	}
	return options
}
