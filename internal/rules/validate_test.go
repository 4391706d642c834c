package rules

import (
	"testing"

	"github.com/nubikpaper2/finanza/internal/models"
)

func TestValidatePattern(t *testing.T) {
	cases := []struct {
		name     string
		ruleType models.RuleType
		pattern  string
		wantErr  bool
	}{
		{"contains ok", models.RuleContains, "supermercado", false},
		{"starts_with ok", models.RuleStartsWith, "pago", false},
		{"ends_with ok", models.RuleEndsWith, "mensual", false},
		{"exact ok", models.RuleExactMatch, "alquiler", false},
		{"regex ok", models.RuleRegex, "uber|taxi", false},
		{"regex broken", models.RuleRegex, "(", true},
		{"range ok", models.RuleAmountRange, "100-500", false},
		{"range decimals ok", models.RuleAmountRange, "0.50-99.99", false},
		{"range missing bound", models.RuleAmountRange, "100-", true},
		{"range not numeric", models.RuleAmountRange, "abc-def", true},
		{"range single value", models.RuleAmountRange, "100", true},
		{"range inverted", models.RuleAmountRange, "500-100", true},
		{"empty pattern", models.RuleContains, "  ", true},
		{"unknown type", models.RuleType("FUZZY"), "x", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePattern(tc.ruleType, tc.pattern)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidatePattern(%s, %q) error = %v, wantErr %v", tc.ruleType, tc.pattern, err, tc.wantErr)
			}
		})
	}
}

func TestParseAmountRange(t *testing.T) {
	min, max, err := ParseAmountRange("100-500")
	if err != nil {
		t.Fatalf("ParseAmountRange(100-500) error = %v", err)
	}
	if min.String() != "100" || max.String() != "500" {
		t.Errorf("ParseAmountRange(100-500) = (%s, %s)", min, max)
	}

	min, max, err = ParseAmountRange(" 10.5 - 20.75 ")
	if err != nil {
		t.Fatalf("ParseAmountRange with spaces error = %v", err)
	}
	if min.String() != "10.5" || max.String() != "20.75" {
		t.Errorf("ParseAmountRange with spaces = (%s, %s)", min, max)
	}
}
