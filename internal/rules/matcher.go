// Package rules implements the category rule matching engine: one pure
// matcher per rule type and a first-match-wins resolver over a scope's
// active rules.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nubikpaper2/finanza/internal/models"
)

// Matches reports whether a single rule matches a candidate transaction's
// description and amount. It is pure and never errors: rule patterns are
// validated when the rule is created (see ValidatePattern), so a pattern
// that fails to compile here means creation-time validation was bypassed,
// and Matches panics rather than guessing.
//
// String comparisons are case-insensitive. An empty description matches no
// description-based rule type.
func Matches(rule models.CategoryRule, description string, amount decimal.Decimal) bool {
	if rule.Type == models.RuleAmountRange {
		min, max, err := ParseAmountRange(rule.Pattern)
		if err != nil {
			panic(fmt.Sprintf("rules: invalid AMOUNT_RANGE pattern %q on rule %d: %v", rule.Pattern, rule.ID, err))
		}
		return amount.GreaterThanOrEqual(min) && amount.LessThanOrEqual(max)
	}

	if description == "" {
		return false
	}

	desc := strings.ToLower(description)
	pattern := strings.ToLower(rule.Pattern)

	switch rule.Type {
	case models.RuleContains:
		return strings.Contains(desc, pattern)
	case models.RuleStartsWith:
		return strings.HasPrefix(desc, pattern)
	case models.RuleEndsWith:
		return strings.HasSuffix(desc, pattern)
	case models.RuleExactMatch:
		return desc == pattern
	case models.RuleRegex:
		re, err := regexp.Compile("(?i)" + rule.Pattern)
		if err != nil {
			panic(fmt.Sprintf("rules: invalid REGEX pattern %q on rule %d: %v", rule.Pattern, rule.ID, err))
		}
		return re.MatchString(description)
	default:
		panic(fmt.Sprintf("rules: unknown rule type %q on rule %d", rule.Type, rule.ID))
	}
}
