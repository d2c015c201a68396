// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// NotSpecified is the placeholder shown for missing optional values.
const NotSpecified = "Not specified"

// Approach is the compliance posture label assigned to a company.
type Approach string

// Known approaches.
const (
	ApproachStrict           Approach = "Strict"
	ApproachModerate         Approach = "Moderate"
	ApproachCustomerFriendly Approach = "Customer-Friendly"
	ApproachBalanced         Approach = "Balanced"
)

// Approaches lists the known approaches in display order.
var Approaches = []Approach{
	ApproachStrict,
	ApproachModerate,
	ApproachCustomerFriendly,
	ApproachBalanced,
}

// Known reports whether a is one of the four recognized approaches.
func (a Approach) Known() bool {
	switch a {
	case ApproachStrict, ApproachModerate, ApproachCustomerFriendly, ApproachBalanced:
		return true
	default:
		return false
	}
}

// BadgeClass returns the style class used when rendering the approach badge.
// Unknown approaches are styled as balanced.
func (a Approach) BadgeClass() string {
	switch a {
	case ApproachStrict:
		return "strict"
	case ApproachModerate:
		return "moderate"
	case ApproachCustomerFriendly:
		return "friendly"
	default:
		return "balanced"
	}
}

// String returns the raw label, or the placeholder when empty.
func (a Approach) String() string {
	if a == "" {
		return NotSpecified
	}
	return string(a)
}

// Clauses holds the named contract clause excerpts for a company.
type Clauses struct {
	TerminationClause   string `json:"terminationClause,omitempty" yaml:"terminationClause,omitempty"`
	RefundClause        string `json:"refundClause,omitempty" yaml:"refundClause,omitempty"`
	NoticeClause        string `json:"noticeClause,omitempty" yaml:"noticeClause,omitempty"`
	SwitchingFeesClause string `json:"switchingFeesClause,omitempty" yaml:"switchingFeesClause,omitempty"`
	TransitionClause    string `json:"transitionClause,omitempty" yaml:"transitionClause,omitempty"`
}

// ClauseItem is a labeled clause ready for display.
type ClauseItem struct {
	Label      string
	Text       string
	Icon       string
	Transition bool
}

// Items returns the clauses in display order. The transition clause is only
// included when present.
func (c Clauses) Items() []ClauseItem {
	items := []ClauseItem{
		{Label: "Termination Clause", Icon: "📋", Text: orPlaceholder(c.TerminationClause)},
		{Label: "Refund Policy Clause", Icon: "💰", Text: orPlaceholder(c.RefundClause)},
		{Label: "Notice Period Clause", Icon: "⏰", Text: orPlaceholder(c.NoticeClause)},
		{Label: "Switching Fees Clause", Icon: "🔄", Text: orPlaceholder(c.SwitchingFeesClause)},
	}
	if c.TransitionClause != "" {
		items = append(items, ClauseItem{
			Label:      "Extended Transition Clause",
			Icon:       "⏳",
			Text:       c.TransitionClause,
			Transition: true,
		})
	}
	return items
}

// Company is a single company's EU Data Act compliance terms.
// Name is the lookup key across views and is assumed unique within a dataset.
type Company struct {
	NoticeMonths    *int     `json:"noticeMonths,omitempty" yaml:"noticeMonths,omitempty"`
	Name            string   `json:"name" yaml:"name"`
	TerminationFee  string   `json:"terminationFee" yaml:"terminationFee"`
	RefundPolicy    string   `json:"refundPolicy" yaml:"refundPolicy"`
	Approach        Approach `json:"approach" yaml:"approach"`
	KeyFeatures     string   `json:"keyFeatures,omitempty" yaml:"keyFeatures,omitempty"`
	Details         string   `json:"details" yaml:"details"`
	TermsURL        string   `json:"termsUrl,omitempty" yaml:"termsUrl,omitempty"`
	SpecificClauses Clauses  `json:"specificClauses" yaml:"specificClauses"`
}

// NoticePeriod renders the notice period for display.
func (c Company) NoticePeriod() string {
	if c.NoticeMonths == nil {
		return NotSpecified
	}
	return fmt.Sprintf("%d months", *c.NoticeMonths)
}

// DisplayTerminationFee returns the termination fee text or the placeholder.
func (c Company) DisplayTerminationFee() string {
	return orPlaceholder(c.TerminationFee)
}

// DisplayRefundPolicy returns the refund policy text or the placeholder.
func (c Company) DisplayRefundPolicy() string {
	return orPlaceholder(c.RefundPolicy)
}

// DisplayDetails returns the summary text or the placeholder.
func (c Company) DisplayDetails() string {
	return orPlaceholder(c.Details)
}

// Months returns a pointer to m, for building records with a notice period.
func Months(m int) *int {
	return &m
}

func orPlaceholder(s string) string {
	if s == "" {
		return NotSpecified
	}
	return s
}
