package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nubikpaper2/finanza/internal/database"
	"github.com/nubikpaper2/finanza/internal/importer"
	"github.com/nubikpaper2/finanza/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open in-memory database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedScope creates an organization with one account, two categories and
// one active plus one inactive rule.
func seedScope(t *testing.T, db *gorm.DB) (org models.Organization, account models.Account) {
	t.Helper()

	org = models.Organization{Name: "Prueba SRL"}
	if err := db.Create(&org).Error; err != nil {
		t.Fatal(err)
	}

	account = models.Account{
		OrganizationID: org.ID,
		Name:           "Banco Principal",
		Type:           models.AccountBank,
		Balance:        dec("1000.00"),
		Active:         true,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatal(err)
	}

	categories := []models.Category{
		{OrganizationID: org.ID, Name: "Alimentación", Type: models.TypeExpense, Active: true},
		{OrganizationID: org.ID, Name: "Salario", Type: models.TypeIncome, Active: true},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	rules := []models.CategoryRule{
		{OrganizationID: org.ID, Name: "Supermercados", Type: models.RuleContains,
			Pattern: "supermercado", CategoryID: categories[0].ID, Active: true, Priority: 10},
		{OrganizationID: org.ID, Name: "Apagada", Type: models.RuleContains,
			Pattern: "lo que sea", CategoryID: categories[0].ID, Active: false, Priority: 100},
	}
	for i := range rules {
		if err := db.Create(&rules[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
	return org, account
}

func TestTransactionStore_PersistUpdatesBalance(t *testing.T) {
	db := testDB(t)
	_, account := seedScope(t, db)
	s := NewTransactionStore(db)

	candidate := importer.Candidate{
		RowIndex:    1,
		Date:        time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		Description: "Compra en supermercado",
		Amount:      dec("150.50"),
		Type:        models.TypeExpense,
	}
	tx, err := s.Persist(account.ID, candidate)
	if err != nil {
		t.Fatalf("Persist error = %v", err)
	}
	if tx.ID == 0 {
		t.Error("persisted transaction has no id")
	}
	if tx.OrganizationID != account.OrganizationID {
		t.Error("transaction must inherit the account's organization")
	}

	var reloaded models.Account
	if err := db.First(&reloaded, account.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !reloaded.Balance.Equal(dec("849.50")) {
		t.Errorf("balance = %s, want 849.50 after the expense", reloaded.Balance)
	}

	income := candidate
	income.Type = models.TypeIncome
	income.Amount = dec("200.00")
	income.Description = "Pago de salario"
	if _, err := s.Persist(account.ID, income); err != nil {
		t.Fatalf("Persist income error = %v", err)
	}
	if err := db.First(&reloaded, account.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !reloaded.Balance.Equal(dec("1049.50")) {
		t.Errorf("balance = %s, want 1049.50 after the income", reloaded.Balance)
	}
}

func TestTransactionStore_PersistRejectsUnknownAccount(t *testing.T) {
	db := testDB(t)
	seedScope(t, db)
	s := NewTransactionStore(db)

	_, err := s.Persist(9999, importer.Candidate{
		Date: time.Now(), Description: "x", Amount: dec("1"), Type: models.TypeExpense,
	})
	if err == nil {
		t.Fatal("expected an error for a missing account")
	}
}

func TestTransactionStore_PersistRejectsInactiveAccount(t *testing.T) {
	db := testDB(t)
	org, _ := seedScope(t, db)

	closed := models.Account{
		OrganizationID: org.ID, Name: "Cerrada", Type: models.AccountCash,
		Balance: dec("0"), Active: false,
	}
	if err := db.Create(&closed).Error; err != nil {
		t.Fatal(err)
	}

	_, err := NewTransactionStore(db).Persist(closed.ID, importer.Candidate{
		Date: time.Now(), Description: "x", Amount: dec("1"), Type: models.TypeExpense,
	})
	if err == nil {
		t.Fatal("expected an error for an inactive account")
	}

	var reloaded models.Account
	if err := db.First(&reloaded, closed.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !reloaded.Balance.Equal(dec("0")) {
		t.Errorf("balance = %s, want unchanged 0", reloaded.Balance)
	}
}

func TestCategoryStore_ByNameIsCaseInsensitive(t *testing.T) {
	db := testDB(t)
	org, _ := seedScope(t, db)
	s := NewCategoryStore(db)

	// SQLite's LOWER only folds ASCII, so the accented category is probed
	// with an ASCII-only case difference.
	c, err := s.ByName(org.ID, "SALARIO")
	if err != nil {
		t.Fatalf("ByName error = %v", err)
	}
	if c == nil || c.Name != "Salario" {
		t.Errorf("ByName(SALARIO) = %+v", c)
	}

	c, err = s.ByName(org.ID, "Inexistente")
	if err != nil {
		t.Fatalf("ByName error = %v", err)
	}
	if c != nil {
		t.Errorf("ByName(Inexistente) = %+v, want nil without error", c)
	}
}

func TestRuleStore_ActiveForOrganizationOrdersAndFilters(t *testing.T) {
	db := testDB(t)
	org, _ := seedScope(t, db)

	rules, err := NewRuleStore(db).ActiveForOrganization(org.ID)
	if err != nil {
		t.Fatalf("ActiveForOrganization error = %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1 (inactive excluded)", len(rules))
	}
	if rules[0].Name != "Supermercados" {
		t.Errorf("rule = %q", rules[0].Name)
	}
}

func TestAccountStore_ByIDScopesByOrganization(t *testing.T) {
	db := testDB(t)
	_, account := seedScope(t, db)

	other := models.Organization{Name: "Otra"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatal(err)
	}

	a, err := NewAccountStore(db).ByID(other.ID, account.ID)
	if err != nil {
		t.Fatalf("ByID error = %v", err)
	}
	if a != nil {
		t.Error("an account must not be visible from another organization")
	}
}

func TestLoadSnapshot(t *testing.T) {
	db := testDB(t)
	org, _ := seedScope(t, db)

	snapshot, err := LoadSnapshot(db, org.ID)
	if err != nil {
		t.Fatalf("LoadSnapshot error = %v", err)
	}
	if len(snapshot.Rules) != 1 {
		t.Errorf("snapshot has %d rules, want 1 active", len(snapshot.Rules))
	}
	if len(snapshot.Categories) != 2 {
		t.Errorf("snapshot has %d categories, want 2", len(snapshot.Categories))
	}
	if _, ok := snapshot.CategoryByName("salario", models.TypeIncome); !ok {
		t.Error("snapshot lookup by name failed")
	}
}
