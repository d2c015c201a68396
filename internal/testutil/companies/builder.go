// Package companies provides fluent builders and fixtures for company records
// used in tests.
//
// Example usage:
//
//	mural := companies.New("Mural").
//		WithApproach(model.ApproachModerate).
//		WithTerminationFee("Partial Remaining Term (33%)").
//		Build()
package companies

import "github.com/Veraticus/dataact/internal/model"

// Builder constructs a single company record.
type Builder struct {
	company model.Company
}

// New starts a builder for a company with a two month notice period.
func New(name string) *Builder {
	return &Builder{company: model.Company{
		Name:         name,
		NoticeMonths: model.Months(2),
	}}
}

// WithApproach sets the compliance approach.
func (b *Builder) WithApproach(approach model.Approach) *Builder {
	b.company.Approach = approach
	return b
}

// WithTerminationFee sets the termination fee text.
func (b *Builder) WithTerminationFee(text string) *Builder {
	b.company.TerminationFee = text
	return b
}

// WithRefundPolicy sets the refund policy text.
func (b *Builder) WithRefundPolicy(text string) *Builder {
	b.company.RefundPolicy = text
	return b
}

// WithNoticeMonths sets the notice period.
func (b *Builder) WithNoticeMonths(months int) *Builder {
	b.company.NoticeMonths = model.Months(months)
	return b
}

// WithoutNotice clears the notice period.
func (b *Builder) WithoutNotice() *Builder {
	b.company.NoticeMonths = nil
	return b
}

// WithDetails sets the summary text.
func (b *Builder) WithDetails(details string) *Builder {
	b.company.Details = details
	return b
}

// WithClauses sets the contract clauses.
func (b *Builder) WithClauses(clauses model.Clauses) *Builder {
	b.company.SpecificClauses = clauses
	return b
}

// WithTermsURL sets the link to the published terms.
func (b *Builder) WithTermsURL(url string) *Builder {
	b.company.TermsURL = url
	return b
}

// Build returns the company.
func (b *Builder) Build() model.Company {
	return b.company
}
