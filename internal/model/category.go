package model

// TerminationCategory buckets a free-text termination fee description.
type TerminationCategory string

// Termination fee categories.
const (
	TerminationNotSpecified         TerminationCategory = "notSpecified"
	TerminationFullRemainingTerm    TerminationCategory = "fullRemainingTerm"
	TerminationPartialRemainingTerm TerminationCategory = "partialRemainingTerm"
	TerminationProportionateFee     TerminationCategory = "proportionateFee"
)

// TerminationCategories lists the termination categories in chart order.
var TerminationCategories = []TerminationCategory{
	TerminationFullRemainingTerm,
	TerminationPartialRemainingTerm,
	TerminationProportionateFee,
	TerminationNotSpecified,
}

// Label returns the chart label for the category.
func (c TerminationCategory) Label() string {
	switch c {
	case TerminationFullRemainingTerm:
		return "Full Remaining Term (100%)"
	case TerminationPartialRemainingTerm:
		return "Partial Term (33%)"
	case TerminationProportionateFee:
		return "Proportionate Fee"
	default:
		return "Not Specified"
	}
}

// RefundCategory buckets a free-text refund policy description.
type RefundCategory string

// Refund policy categories.
const (
	RefundNotSpecified    RefundCategory = "notSpecified"
	RefundProRatedFees    RefundCategory = "proRatedFees"
	RefundCreditsTransfer RefundCategory = "creditsTransfer"
	RefundNoRefunds       RefundCategory = "noRefunds"
)

// RefundCategories lists the refund categories in chart order.
var RefundCategories = []RefundCategory{
	RefundNoRefunds,
	RefundCreditsTransfer,
	RefundNotSpecified,
	RefundProRatedFees,
}

// Label returns the chart label for the category.
func (c RefundCategory) Label() string {
	switch c {
	case RefundNoRefunds:
		return "No Refunds"
	case RefundCreditsTransfer:
		return "Credits/Free Transfer"
	case RefundProRatedFees:
		return "Pro-rated Fees"
	default:
		return "Not Specified"
	}
}
