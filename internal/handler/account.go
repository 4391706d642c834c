package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/models"
	"github.com/nubikpaper2/finanza/internal/store"
	"github.com/nubikpaper2/finanza/internal/util"
)

type AccountHandler struct {
	DB *gorm.DB
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{DB: db}
}

type accountReq struct {
	Name        string `json:"name" binding:"required,max=100"`
	Type        string `json:"type" binding:"required,oneof=CASH BANK CREDIT_CARD INVESTMENT LOAN SAVINGS OTHER"`
	Balance     string `json:"balance"`
	Currency    string `json:"currency" binding:"max=10"`
	Description string `json:"description" binding:"max=500"`
}

// List handles GET /api/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	accounts, err := store.NewAccountStore(h.DB).ForOrganization(org.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load accounts")
		return
	}
	util.Success(c, util.Response{"accounts": accounts})
}

// Create handles POST /api/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	var req accountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	balance := decimal.Zero
	if req.Balance != "" {
		var err error
		balance, err = decimal.NewFromString(req.Balance)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid balance")
			return
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	account := models.Account{
		OrganizationID: org.ID,
		Name:           strings.TrimSpace(req.Name),
		Type:           models.AccountType(req.Type),
		Balance:        balance,
		Currency:       currency,
		Description:    req.Description,
		Active:         true,
	}
	if err := store.NewAccountStore(h.DB).Create(&account); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save account")
		return
	}
	util.Success(c, util.Response{"account": account})
}
