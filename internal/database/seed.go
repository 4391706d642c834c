package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/models"
)

// Seed creates the demo organization with its accounts, categories and a
// few starter categorization rules. It runs only on an empty database.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Organization{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count organizations: %w", err)
	}
	if count > 0 {
		return nil
	}

	org := models.Organization{
		Name:        "Empresa Demo",
		Description: "Organización de demostración",
		Active:      true,
	}
	if err := db.Create(&org).Error; err != nil {
		return fmt.Errorf("seed organization: %w", err)
	}

	accounts := []models.Account{
		{Name: "Efectivo", Type: models.AccountCash, Balance: dec("5000.00"), Currency: "USD", Description: "Caja chica y efectivo disponible"},
		{Name: "Banco Principal", Type: models.AccountBank, Balance: dec("25000.00"), Currency: "USD", Description: "Cuenta corriente empresarial"},
		{Name: "Ahorros", Type: models.AccountSavings, Balance: dec("10000.00"), Currency: "USD", Description: "Fondo de ahorros"},
		{Name: "Tarjeta de Crédito", Type: models.AccountCreditCard, Balance: dec("-3500.00"), Currency: "USD", Description: "Visa Empresarial"},
		{Name: "Inversiones", Type: models.AccountInvestment, Balance: dec("50000.00"), Currency: "USD", Description: "Cartera de inversiones"},
	}
	for i := range accounts {
		accounts[i].OrganizationID = org.ID
		accounts[i].Active = true
		if err := db.Create(&accounts[i]).Error; err != nil {
			return fmt.Errorf("seed account %q: %w", accounts[i].Name, err)
		}
	}

	type seedCategory struct {
		name, description string
		txType            models.TransactionType
		icon, color       string
	}
	categories := []seedCategory{
		{"Ventas", "Ingresos por ventas de productos/servicios", models.TypeIncome, "💰", "#10B981"},
		{"Servicios", "Ingresos por prestación de servicios", models.TypeIncome, "🛠️", "#3B82F6"},
		{"Inversiones", "Rendimientos de inversiones", models.TypeIncome, "📈", "#8B5CF6"},
		{"Otros Ingresos", "Ingresos varios no categorizados", models.TypeIncome, "💵", "#6366F1"},
		{"Sueldos", "Pagos de salarios y beneficios", models.TypeExpense, "👥", "#EF4444"},
		{"Oficina", "Gastos de oficina y suministros", models.TypeExpense, "🏢", "#F59E0B"},
		{"Marketing", "Publicidad y marketing", models.TypeExpense, "📢", "#EC4899"},
		{"Servicios", "Servicios públicos y subscripciones", models.TypeExpense, "⚡", "#F97316"},
		{"Transporte", "Gastos de transporte y logística", models.TypeExpense, "🚗", "#14B8A6"},
		{"Alimentación", "Comidas y cafetería", models.TypeExpense, "🍽️", "#84CC16"},
		{"Tecnología", "Software, hardware y tecnología", models.TypeExpense, "💻", "#06B6D4"},
		{"Capacitación", "Cursos y entrenamiento", models.TypeExpense, "📚", "#8B5CF6"},
		{"Mantenimiento", "Mantenimiento y reparaciones", models.TypeExpense, "🔧", "#64748B"},
		{"Impuestos", "Impuestos y tasas", models.TypeExpense, "🏛️", "#DC2626"},
		{"Otros Gastos", "Gastos varios no categorizados", models.TypeExpense, "📝", "#6B7280"},
	}
	byName := make(map[string]uint)
	for _, sc := range categories {
		c := models.Category{
			OrganizationID: org.ID,
			Name:           sc.name,
			Description:    sc.description,
			Type:           sc.txType,
			Icon:           sc.icon,
			Color:          sc.color,
			Active:         true,
		}
		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", sc.name, err)
		}
		if _, dup := byName[sc.name]; !dup {
			byName[sc.name] = c.ID
		}
	}

	rules := []models.CategoryRule{
		{Name: "Supermercados", Type: models.RuleContains, Pattern: "supermercado", CategoryID: byName["Alimentación"], Priority: 10},
		{Name: "Transporte urbano", Type: models.RuleRegex, Pattern: "uber|taxi|remis", CategoryID: byName["Transporte"], Priority: 5},
		{Name: "Gastos menores", Type: models.RuleAmountRange, Pattern: "0-50", CategoryID: byName["Otros Gastos"], Priority: 0},
	}
	for i := range rules {
		rules[i].OrganizationID = org.ID
		rules[i].Active = true
		if err := db.Create(&rules[i]).Error; err != nil {
			return fmt.Errorf("seed rule %q: %w", rules[i].Name, err)
		}
	}

	log.Printf("seeded demo organization %q (id=%d)", org.Name, org.ID)
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
