package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nubikpaper2/finanza/internal/models"
)

// ValidatePattern checks that pattern is syntactically valid for the given
// rule type. It runs when a rule is created or updated, never at match
// time: a rule that passes here is guaranteed not to panic in Matches.
func ValidatePattern(ruleType models.RuleType, pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("pattern is empty")
	}

	switch ruleType {
	case models.RuleContains, models.RuleStartsWith, models.RuleEndsWith, models.RuleExactMatch:
		return nil
	case models.RuleRegex:
		if _, err := regexp.Compile("(?i)" + pattern); err != nil {
			return fmt.Errorf("invalid regular expression %q: %w", pattern, err)
		}
		return nil
	case models.RuleAmountRange:
		if _, _, err := ParseAmountRange(pattern); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown rule type %q", ruleType)
	}
}

// ParseAmountRange parses an AMOUNT_RANGE pattern of the form "min-max"
// (e.g. "100-500") into its two inclusive decimal bounds.
func ParseAmountRange(pattern string) (min, max decimal.Decimal, err error) {
	parts := strings.Split(pattern, "-")
	if len(parts) != 2 {
		return min, max, fmt.Errorf("amount range %q must be of the form \"min-max\"", pattern)
	}
	min, err = decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return min, max, fmt.Errorf("amount range %q: invalid lower bound: %w", pattern, err)
	}
	max, err = decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return min, max, fmt.Errorf("amount range %q: invalid upper bound: %w", pattern, err)
	}
	if min.GreaterThan(max) {
		return min, max, fmt.Errorf("amount range %q: lower bound exceeds upper bound", pattern)
	}
	return min, max, nil
}
