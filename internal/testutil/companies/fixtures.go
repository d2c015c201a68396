package companies

import "github.com/Veraticus/dataact/internal/model"

// Common policy texts.
const (
	FullRemainingTerm = "Full Remaining Term (100%)"
	PartialTerm       = "Partial Remaining Term (33%)"
	ProportionateFee  = "Proportionate Fee"
	NotSpecified      = "Not Specified"
	NoRefunds         = "No Refunds"
	NoRefundsProRated = "No Refunds + Pro-rated Retrieval Fees"
	CreditsTransfer   = "Credits/Free Transfer"
)

// Benchmark returns the eleven companies of the published benchmark, in the
// order they appear in the dataset.
func Benchmark() []model.Company {
	return []model.Company{
		New("Teradata").WithApproach(model.ApproachStrict).WithTerminationFee(FullRemainingTerm).WithRefundPolicy(NoRefunds).Build(),
		New("Salesforce").WithApproach(model.ApproachStrict).WithTerminationFee(FullRemainingTerm).WithRefundPolicy(NoRefunds).Build(),
		New("BMC").WithApproach(model.ApproachStrict).WithTerminationFee(FullRemainingTerm).WithRefundPolicy(NoRefunds).Build(),
		New("Mural").WithApproach(model.ApproachModerate).WithTerminationFee(PartialTerm).WithRefundPolicy(NoRefundsProRated).
			WithClauses(model.Clauses{TransitionClause: "Customer may extend the Transition Period once."}).Build(),
		New("Samsara").WithApproach(model.ApproachBalanced).WithTerminationFee(ProportionateFee).WithRefundPolicy(NoRefunds).Build(),
		New("AWS").WithApproach(model.ApproachCustomerFriendly).WithTerminationFee(NotSpecified).WithRefundPolicy(CreditsTransfer).Build(),
		New("Google Cloud").WithApproach(model.ApproachCustomerFriendly).WithTerminationFee(NotSpecified).WithRefundPolicy(CreditsTransfer).Build(),
		New("Microsoft").WithApproach(model.ApproachCustomerFriendly).WithTerminationFee(NotSpecified).WithRefundPolicy(CreditsTransfer).Build(),
		New("Braze").WithApproach(model.ApproachStrict).WithTerminationFee(NotSpecified).WithRefundPolicy(NoRefunds).Build(),
		New("Cloudflare").WithApproach(model.ApproachBalanced).WithTerminationFee(NotSpecified).WithRefundPolicy(NotSpecified).Build(),
		New("Toggl").WithApproach(model.ApproachBalanced).WithTerminationFee(NotSpecified).WithRefundPolicy(NotSpecified).Build(),
	}
}

// Names returns the names of companies in order.
func Names(list []model.Company) []string {
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name
	}
	return names
}
