package rules

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nubikpaper2/finanza/internal/models"
)

// Resolve returns the category assigned by the highest-priority active rule
// that matches the candidate, or ok=false when no rule matches. Ties on
// priority go to the lower rule id, so equal-priority outcomes are stable
// across runs. This is strictly first-match-wins: rule authors control the
// outcome through priority alone.
//
// The rule slice is treated as an immutable snapshot; Resolve does not
// mutate it.
func Resolve(scopeRules []models.CategoryRule, description string, amount decimal.Decimal) (uint, bool) {
	active := make([]models.CategoryRule, 0, len(scopeRules))
	for _, r := range scopeRules {
		if r.Active {
			active = append(active, r)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority > active[j].Priority
		}
		return active[i].ID < active[j].ID
	})

	for _, r := range active {
		if Matches(r, description, amount) {
			return r.CategoryID, true
		}
	}
	return 0, false
}
