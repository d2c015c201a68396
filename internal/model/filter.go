package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSortColumn is returned when a sort column name is not recognized.
var ErrInvalidSortColumn = errors.New("invalid sort column")

// SortColumn names a sortable company field.
type SortColumn string

// Sortable columns.
const (
	SortNone           SortColumn = ""
	SortName           SortColumn = "name"
	SortApproach       SortColumn = "approach"
	SortTerminationFee SortColumn = "terminationFee"
	SortRefundPolicy   SortColumn = "refundPolicy"
	SortNoticeMonths   SortColumn = "noticeMonths"
)

// SortColumns lists the sortable columns in table order.
var SortColumns = []SortColumn{
	SortName,
	SortApproach,
	SortTerminationFee,
	SortRefundPolicy,
	SortNoticeMonths,
}

// Title returns the table header for the column.
func (c SortColumn) Title() string {
	switch c {
	case SortName:
		return "Company"
	case SortApproach:
		return "Approach"
	case SortTerminationFee:
		return "Termination Fee"
	case SortRefundPolicy:
		return "Refund Policy"
	case SortNoticeMonths:
		return "Notice Period"
	default:
		return ""
	}
}

// ParseSortColumn parses a column name. Matching is case-insensitive and also
// accepts the kebab-case spelling (e.g. "termination-fee").
func ParseSortColumn(s string) (SortColumn, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	if normalized == "" {
		return SortNone, nil
	}
	for _, c := range SortColumns {
		if strings.ToLower(string(c)) == normalized {
			return c, nil
		}
	}
	if normalized == "company" {
		return SortName, nil
	}
	return SortNone, fmt.Errorf("%w: %q", ErrInvalidSortColumn, s)
}

// SortDirection is ascending or descending.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// Arrow returns the header indicator for the direction.
func (d SortDirection) Arrow() string {
	if d == SortDesc {
		return "▼"
	}
	return "▲"
}

// FilterState is the session-scoped filter and sort selection.
type FilterState struct {
	SearchTerm    string        `json:"searchTerm"`
	Approach      string        `json:"approachFilter"`
	RefundPolicy  string        `json:"refundFilter"`
	SortColumn    SortColumn    `json:"sortColumn"`
	SortDirection SortDirection `json:"sortDirection"`
}

// DefaultFilterState returns the unfiltered, unsorted state.
func DefaultFilterState() FilterState {
	return FilterState{SortDirection: SortAsc}
}

// ToggleSort applies a column click: the same column flips the direction,
// a new column resets to ascending.
func (f *FilterState) ToggleSort(column SortColumn) {
	if f.SortColumn == column {
		f.SortDirection = f.SortDirection.Flip()
		return
	}
	f.SortColumn = column
	f.SortDirection = SortAsc
}

// Normalize repairs values that could not have been produced by the UI, such
// as an unknown sort column or direction read back from storage.
func (f FilterState) Normalize() FilterState {
	if f.SortDirection != SortDesc {
		f.SortDirection = SortAsc
	}
	column, err := ParseSortColumn(string(f.SortColumn))
	if err != nil {
		column = SortNone
	}
	f.SortColumn = column
	return f
}

// Criteria describes the active filters in a fixed order: name search,
// approach, then refund policy. Sorting is not included.
func (f FilterState) Criteria() []string {
	var parts []string
	if f.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("name contains %q", f.SearchTerm))
	}
	if f.Approach != "" {
		parts = append(parts, "approach "+f.Approach)
	}
	if f.RefundPolicy != "" {
		parts = append(parts, fmt.Sprintf("refund policy %q", f.RefundPolicy))
	}
	return parts
}

// IsFiltered reports whether any filter criterion is active.
func (f FilterState) IsFiltered() bool {
	return f.SearchTerm != "" || f.Approach != "" || f.RefundPolicy != ""
}
