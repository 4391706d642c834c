package rules

import (
	"testing"

	"github.com/nubikpaper2/finanza/internal/models"
)

func TestResolve_HighestPriorityWins(t *testing.T) {
	scope := []models.CategoryRule{
		{ID: 1, Type: models.RuleContains, Pattern: "super", CategoryID: 10, Active: true, Priority: 5},
		{ID: 2, Type: models.RuleContains, Pattern: "super", CategoryID: 20, Active: true, Priority: 10},
	}

	id, ok := Resolve(scope, "compra supermercado", amt("100"))
	if !ok || id != 20 {
		t.Errorf("Resolve = (%d, %v), want (20, true): priority 10 beats priority 5", id, ok)
	}
}

func TestResolve_TieBreaksOnLowerID(t *testing.T) {
	scope := []models.CategoryRule{
		{ID: 9, Type: models.RuleContains, Pattern: "luz", CategoryID: 90, Active: true, Priority: 3},
		{ID: 4, Type: models.RuleContains, Pattern: "luz", CategoryID: 40, Active: true, Priority: 3},
	}

	id, ok := Resolve(scope, "factura de luz", amt("100"))
	if !ok || id != 40 {
		t.Errorf("Resolve = (%d, %v), want (40, true): equal priority goes to the older rule", id, ok)
	}
}

func TestResolve_SkipsInactiveRules(t *testing.T) {
	scope := []models.CategoryRule{
		{ID: 1, Type: models.RuleContains, Pattern: "nafta", CategoryID: 10, Active: false, Priority: 100},
		{ID: 2, Type: models.RuleContains, Pattern: "nafta", CategoryID: 20, Active: true, Priority: 1},
	}

	id, ok := Resolve(scope, "carga de nafta", amt("50"))
	if !ok || id != 20 {
		t.Errorf("Resolve = (%d, %v), want (20, true): inactive rules must never be evaluated", id, ok)
	}
}

func TestResolve_NoMatchReturnsFalse(t *testing.T) {
	scope := []models.CategoryRule{
		{ID: 1, Type: models.RuleContains, Pattern: "super", CategoryID: 10, Active: true},
	}

	if id, ok := Resolve(scope, "farmacia", amt("10")); ok {
		t.Errorf("Resolve = (%d, true), want no match", id)
	}
}

func TestResolve_FirstMatchWinsOverLaterMatches(t *testing.T) {
	// Both rules match; only the higher-priority one decides, regardless
	// of how "specific" the lower one looks.
	scope := []models.CategoryRule{
		{ID: 1, Type: models.RuleExactMatch, Pattern: "pago alquiler enero", CategoryID: 10, Active: true, Priority: 1},
		{ID: 2, Type: models.RuleContains, Pattern: "alquiler", CategoryID: 20, Active: true, Priority: 2},
	}

	id, ok := Resolve(scope, "pago alquiler enero", amt("800"))
	if !ok || id != 20 {
		t.Errorf("Resolve = (%d, %v), want (20, true)", id, ok)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	scope := []models.CategoryRule{
		{ID: 3, Type: models.RuleAmountRange, Pattern: "0-100", CategoryID: 30, Active: true, Priority: 2},
		{ID: 1, Type: models.RuleContains, Pattern: "cafe", CategoryID: 10, Active: true, Priority: 2},
		{ID: 2, Type: models.RuleRegex, Pattern: "cafe|bar", CategoryID: 20, Active: true, Priority: 5},
	}

	firstID, firstOK := Resolve(scope, "cafe martinez", amt("20"))
	for i := 0; i < 10; i++ {
		id, ok := Resolve(scope, "cafe martinez", amt("20"))
		if id != firstID || ok != firstOK {
			t.Fatalf("run %d: Resolve = (%d, %v), want (%d, %v)", i, id, ok, firstID, firstOK)
		}
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	scope := []models.CategoryRule{
		{ID: 2, Type: models.RuleContains, Pattern: "b", CategoryID: 2, Active: true, Priority: 1},
		{ID: 1, Type: models.RuleContains, Pattern: "a", CategoryID: 1, Active: true, Priority: 2},
	}

	Resolve(scope, "ab", amt("1"))
	if scope[0].ID != 2 || scope[1].ID != 1 {
		t.Error("Resolve reordered the caller's rule slice")
	}
}
