package model

import "math"

// TerminationFeeStats counts companies per termination fee category.
type TerminationFeeStats struct {
	FullRemainingTerm    int `json:"fullRemainingTerm" yaml:"fullRemainingTerm"`
	PartialRemainingTerm int `json:"partialRemainingTerm" yaml:"partialRemainingTerm"`
	ProportionateFee     int `json:"proportionateFee" yaml:"proportionateFee"`
	NotSpecified         int `json:"notSpecified" yaml:"notSpecified"`
}

// Count returns the counter for a category.
func (s TerminationFeeStats) Count(c TerminationCategory) int {
	switch c {
	case TerminationFullRemainingTerm:
		return s.FullRemainingTerm
	case TerminationPartialRemainingTerm:
		return s.PartialRemainingTerm
	case TerminationProportionateFee:
		return s.ProportionateFee
	default:
		return s.NotSpecified
	}
}

// Total sums all termination counters.
func (s TerminationFeeStats) Total() int {
	return s.FullRemainingTerm + s.PartialRemainingTerm + s.ProportionateFee + s.NotSpecified
}

// RefundStats counts companies per refund policy category.
type RefundStats struct {
	NoRefunds       int `json:"noRefunds" yaml:"noRefunds"`
	CreditsTransfer int `json:"creditsTransfer" yaml:"creditsTransfer"`
	NotSpecified    int `json:"notSpecified" yaml:"notSpecified"`
	ProRatedFees    int `json:"proRatedFees" yaml:"proRatedFees"`
}

// Count returns the counter for a category.
func (s RefundStats) Count(c RefundCategory) int {
	switch c {
	case RefundNoRefunds:
		return s.NoRefunds
	case RefundCreditsTransfer:
		return s.CreditsTransfer
	case RefundProRatedFees:
		return s.ProRatedFees
	default:
		return s.NotSpecified
	}
}

// Total sums all refund counters.
func (s RefundStats) Total() int {
	return s.NoRefunds + s.CreditsTransfer + s.NotSpecified + s.ProRatedFees
}

// SummaryStats holds aggregate counts over a set of companies.
// Termination and refund counters always sum to TotalCompanies; approach
// counters may sum to less when a company carries an unknown approach.
type SummaryStats struct {
	TerminationFeeStats TerminationFeeStats `json:"terminationFeeStats" yaml:"terminationFeeStats"`
	RefundStats         RefundStats         `json:"refundStats" yaml:"refundStats"`
	TotalCompanies      int                 `json:"totalCompanies" yaml:"totalCompanies"`
	Strict              int                 `json:"strictApproach" yaml:"strictApproach"`
	Moderate            int                 `json:"moderate" yaml:"moderate"`
	CustomerFriendly    int                 `json:"customerFriendly" yaml:"customerFriendly"`
	Balanced            int                 `json:"balanced" yaml:"balanced"`
}

// ApproachCount returns the counter for an approach. Unknown approaches count zero.
func (s SummaryStats) ApproachCount(a Approach) int {
	switch a {
	case ApproachStrict:
		return s.Strict
	case ApproachModerate:
		return s.Moderate
	case ApproachCustomerFriendly:
		return s.CustomerFriendly
	case ApproachBalanced:
		return s.Balanced
	default:
		return 0
	}
}

// ApproachTotal sums the approach counters.
func (s SummaryStats) ApproachTotal() int {
	return s.Strict + s.Moderate + s.CustomerFriendly + s.Balanced
}

// Percent returns n as a rounded percentage of TotalCompanies.
func (s SummaryStats) Percent(n int) int {
	if s.TotalCompanies == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(s.TotalCompanies) * 100))
}
