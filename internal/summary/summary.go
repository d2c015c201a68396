// Package summary aggregates companies into category counts.
package summary

import (
	"fmt"

	"github.com/Veraticus/dataact/internal/classification"
	"github.com/Veraticus/dataact/internal/model"
)

// Summarize counts companies by approach, termination fee category and refund
// category in a single pass. Approach buckets use exact string equality, so a
// company with an unknown approach increments no approach bucket. The input is
// never modified.
func Summarize(companies []model.Company) model.SummaryStats {
	stats := model.SummaryStats{TotalCompanies: len(companies)}

	for i := range companies {
		c := &companies[i]

		switch c.Approach {
		case model.ApproachStrict:
			stats.Strict++
		case model.ApproachModerate:
			stats.Moderate++
		case model.ApproachCustomerFriendly:
			stats.CustomerFriendly++
		case model.ApproachBalanced:
			stats.Balanced++
		}

		switch classification.CategorizeTermination(c.TerminationFee) {
		case model.TerminationFullRemainingTerm:
			stats.TerminationFeeStats.FullRemainingTerm++
		case model.TerminationPartialRemainingTerm:
			stats.TerminationFeeStats.PartialRemainingTerm++
		case model.TerminationProportionateFee:
			stats.TerminationFeeStats.ProportionateFee++
		default:
			stats.TerminationFeeStats.NotSpecified++
		}

		switch classification.CategorizeRefund(c.RefundPolicy) {
		case model.RefundProRatedFees:
			stats.RefundStats.ProRatedFees++
		case model.RefundCreditsTransfer:
			stats.RefundStats.CreditsTransfer++
		case model.RefundNoRefunds:
			stats.RefundStats.NoRefunds++
		default:
			stats.RefundStats.NotSpecified++
		}
	}

	return stats
}

// Mismatch describes a field where a declared summary disagrees with the
// computed one.
type Mismatch struct {
	Field    string
	Declared int
	Computed int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: declared %d, computed %d", m.Field, m.Declared, m.Computed)
}

// Reconcile compares a summary shipped alongside a dataset with one computed
// from its companies and returns every differing field in a fixed order.
func Reconcile(declared, computed model.SummaryStats) []Mismatch {
	fields := []struct {
		name     string
		declared int
		computed int
	}{
		{"totalCompanies", declared.TotalCompanies, computed.TotalCompanies},
		{"strictApproach", declared.Strict, computed.Strict},
		{"moderate", declared.Moderate, computed.Moderate},
		{"customerFriendly", declared.CustomerFriendly, computed.CustomerFriendly},
		{"balanced", declared.Balanced, computed.Balanced},
		{"terminationFeeStats.fullRemainingTerm", declared.TerminationFeeStats.FullRemainingTerm, computed.TerminationFeeStats.FullRemainingTerm},
		{"terminationFeeStats.partialRemainingTerm", declared.TerminationFeeStats.PartialRemainingTerm, computed.TerminationFeeStats.PartialRemainingTerm},
		{"terminationFeeStats.proportionateFee", declared.TerminationFeeStats.ProportionateFee, computed.TerminationFeeStats.ProportionateFee},
		{"terminationFeeStats.notSpecified", declared.TerminationFeeStats.NotSpecified, computed.TerminationFeeStats.NotSpecified},
		{"refundStats.noRefunds", declared.RefundStats.NoRefunds, computed.RefundStats.NoRefunds},
		{"refundStats.creditsTransfer", declared.RefundStats.CreditsTransfer, computed.RefundStats.CreditsTransfer},
		{"refundStats.notSpecified", declared.RefundStats.NotSpecified, computed.RefundStats.NotSpecified},
		{"refundStats.proRatedFees", declared.RefundStats.ProRatedFees, computed.RefundStats.ProRatedFees},
	}

	var mismatches []Mismatch
	for _, f := range fields {
		if f.declared != f.computed {
			mismatches = append(mismatches, Mismatch{Field: f.name, Declared: f.declared, Computed: f.computed})
		}
	}
	return mismatches
}
