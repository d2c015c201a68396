// Package classification maps free-text policy descriptions to fixed categories.
package classification

import (
	"strings"

	"github.com/Veraticus/dataact/internal/model"
)

// notSpecifiedPhrase stands in for empty input so that blank descriptions
// take the same path as an explicit "Not specified".
const notSpecifiedPhrase = "not specified"

// Rule maps any of a set of substrings to a category. Rules are evaluated in
// slice order and the first rule with a matching substring wins.
type Rule[C ~string] struct {
	Category C
	Contains []string
}

// matches reports whether text contains any of the rule's substrings.
func (r Rule[C]) matches(text string) bool {
	for _, s := range r.Contains {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// TerminationRules is the precedence-ordered rule table for termination fees.
var TerminationRules = []Rule[model.TerminationCategory]{
	{Category: model.TerminationNotSpecified, Contains: []string{notSpecifiedPhrase}},
	{Category: model.TerminationFullRemainingTerm, Contains: []string{"full remaining term", "100%"}},
	{Category: model.TerminationPartialRemainingTerm, Contains: []string{"partial", "33%"}},
	{Category: model.TerminationProportionateFee, Contains: []string{"proportionate"}},
}

// RefundRules is the precedence-ordered rule table for refund policies.
// "pro-rated" is checked before "no refunds" so that combined policies such as
// "No Refunds + Pro-rated Retrieval Fees" land in proRatedFees.
var RefundRules = []Rule[model.RefundCategory]{
	{Category: model.RefundNotSpecified, Contains: []string{notSpecifiedPhrase}},
	{Category: model.RefundProRatedFees, Contains: []string{"pro-rated"}},
	{Category: model.RefundCreditsTransfer, Contains: []string{"credits", "transfer"}},
	{Category: model.RefundNoRefunds, Contains: []string{"no refunds"}},
}

// CategorizeTermination classifies a termination fee description. Every input
// resolves to exactly one category.
func CategorizeTermination(text string) model.TerminationCategory {
	return firstMatch(TerminationRules, text, model.TerminationNotSpecified)
}

// CategorizeRefund classifies a refund policy description. Every input
// resolves to exactly one category.
func CategorizeRefund(text string) model.RefundCategory {
	return firstMatch(RefundRules, text, model.RefundNotSpecified)
}

func firstMatch[C ~string](rules []Rule[C], text string, fallback C) C {
	normalized := normalize(text)
	for _, rule := range rules {
		if rule.matches(normalized) {
			return rule.Category
		}
	}
	return fallback
}

func normalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return notSpecifiedPhrase
	}
	return normalized
}
