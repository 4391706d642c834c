package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/importer"
	"github.com/nubikpaper2/finanza/internal/models"
	"github.com/nubikpaper2/finanza/internal/rules"
	"github.com/nubikpaper2/finanza/internal/store"
	"github.com/nubikpaper2/finanza/internal/util"
)

// TransactionHandler records and lists transactions. Manual entries
// without an explicit category go through the same rule engine the bulk
// import uses.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

type transactionReq struct {
	AccountID       uint   `json:"accountId" binding:"required"`
	Type            string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount          string `json:"amount" binding:"required"`
	TransactionDate string `json:"transactionDate"`
	Description     string `json:"description" binding:"required,max=500"`
	CategoryID      *uint  `json:"categoryId"`
	Notes           string `json:"notes"`
}

type transactionResp struct {
	ID              uint            `json:"id"`
	AccountID       uint            `json:"accountId"`
	CategoryID      *uint           `json:"categoryId"`
	CategoryName    string          `json:"categoryName,omitempty"`
	Type            models.TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate string          `json:"transactionDate"`
	Description     string          `json:"description"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (h *TransactionHandler) toResp(t models.Transaction) transactionResp {
	resp := transactionResp{
		ID:              t.ID,
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		Type:            t.Type,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		Description:     t.Description,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
	if t.CategoryID != nil {
		if category, err := store.NewCategoryStore(h.DB).ByID(*t.CategoryID); err == nil && category != nil {
			resp.CategoryName = category.Name
		}
	}
	return resp
}

// List handles GET /api/transactions with optional accountId and
// categoryId filters.
func (h *TransactionHandler) List(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	var accountID, categoryID *uint
	if raw := c.Query("accountId"); raw != "" {
		id, ok := parseUintParam(raw)
		if !ok {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid accountId")
			return
		}
		accountID = &id
	}
	if raw := c.Query("categoryId"); raw != "" {
		id, ok := parseUintParam(raw)
		if !ok {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid categoryId")
			return
		}
		categoryID = &id
	}

	txs, err := store.NewTransactionStore(h.DB).ForOrganization(org.ID, accountID, categoryID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load transactions")
		return
	}

	items := make([]transactionResp, 0, len(txs))
	for _, t := range txs {
		items = append(items, h.toResp(t))
	}
	util.Success(c, util.Response{"transactions": items})
}

// Create handles POST /api/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	account, err := store.NewAccountStore(h.DB).ByID(org.ID, req.AccountID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load account")
		return
	}
	if account == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "account not found")
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.IsNegative() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "amount must be a non-negative decimal")
		return
	}

	date := time.Now()
	if req.TransactionDate != "" {
		date, err = time.Parse("2006-01-02", req.TransactionDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "transactionDate must be YYYY-MM-DD")
			return
		}
	}

	txType := models.TransactionType(req.Type)

	categoryID := req.CategoryID
	if categoryID != nil {
		category, err := store.NewCategoryStore(h.DB).ByID(*categoryID)
		if err != nil || category == nil || category.OrganizationID != org.ID {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
			return
		}
	} else {
		snapshot, err := store.LoadSnapshot(h.DB, org.ID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load rules")
			return
		}
		if id, ok := rules.Resolve(snapshot.Rules, req.Description, amount); ok {
			categoryID = &id
		}
	}

	tx, err := store.NewTransactionStore(h.DB).Persist(account.ID, importer.Candidate{
		Date:        date,
		Description: strings.TrimSpace(req.Description),
		Amount:      amount,
		Type:        txType,
		CategoryID:  categoryID,
		Notes:       req.Notes,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save transaction")
		return
	}
	util.Success(c, util.Response{"transaction": h.toResp(tx)})
}
