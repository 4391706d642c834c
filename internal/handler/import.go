package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/importer"
	"github.com/nubikpaper2/finanza/internal/models"
	"github.com/nubikpaper2/finanza/internal/store"
	"github.com/nubikpaper2/finanza/internal/util"
)

// ImportHandler exposes the bulk import pipeline and the import template
// download.
type ImportHandler struct {
	DB             *gorm.DB
	MaxUploadBytes int64
	MaxRows        int
}

func NewImportHandler(db *gorm.DB, maxUploadBytes int64, maxRows int) *ImportHandler {
	return &ImportHandler{
		DB:             db,
		MaxUploadBytes: maxUploadBytes,
		MaxRows:        maxRows,
	}
}

// ImportFile handles POST /api/import: a multipart upload (csv/xlsx/xls)
// plus an accountId form value. The response body is the import report
// itself: {total, imported, failed, errors, transactions}.
func (h *ImportHandler) ImportFile(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	accountID, ok := parseUintParam(c.PostForm("accountId"))
	if !ok {
		accountID, ok = parseUintParam(c.Query("accountId"))
	}
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "accountId is required")
		return
	}
	account, err := store.NewAccountStore(h.DB).ByID(org.ID, accountID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load account")
		return
	}
	if account == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "account not found")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "file is required")
		return
	}
	if h.MaxUploadBytes > 0 && fileHeader.Size > h.MaxUploadBytes {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			fmt.Sprintf("file exceeds the %d byte upload limit", h.MaxUploadBytes))
		return
	}

	format, err := importer.FormatForFilename(fileHeader.Filename)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "could not read upload")
		return
	}
	defer file.Close()

	rows, err := importer.Decode(file, format)
	if err != nil {
		if errors.Is(err, importer.ErrDecode) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not decode file")
		return
	}
	if h.MaxRows > 0 && len(rows) > h.MaxRows {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			fmt.Sprintf("file has %d rows, limit is %d", len(rows), h.MaxRows))
		return
	}

	snapshot, err := store.LoadSnapshot(h.DB, org.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load rules")
		return
	}

	pipeline := importer.NewPipeline(store.NewTransactionStore(h.DB))
	report := pipeline.ImportRows(rows, account.ID, snapshot)
	c.JSON(http.StatusOK, report)
}

// jsonImportRow is one row of a POST /api/import/json body. Field names
// follow the manual entry API; amounts are strings to keep decimals exact.
type jsonImportRow struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Notes       string `json:"notes"`
}

// ImportJSON handles POST /api/import/json: the same pipeline fed from a
// JSON array instead of a file. When accountId is absent the
// organization's first account is used.
func (h *ImportHandler) ImportJSON(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	var body []jsonImportRow
	if err := c.ShouldBindJSON(&body); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if len(body) == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "no transactions to import")
		return
	}

	accounts := store.NewAccountStore(h.DB)
	var account *models.Account
	if raw := c.Query("accountId"); raw != "" {
		id, ok := parseUintParam(raw)
		if !ok {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid accountId")
			return
		}
		var err error
		account, err = accounts.ByID(org.ID, id)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load account")
			return
		}
	} else {
		all, err := accounts.ForOrganization(org.ID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load accounts")
			return
		}
		if len(all) > 0 {
			account = &all[0]
		}
	}
	if account == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "no account available for import")
		return
	}

	rows := make([]importer.Row, len(body))
	for i, item := range body {
		rows[i] = importer.Row{
			importer.ColDate:        item.Date,
			importer.ColDescription: item.Description,
			importer.ColAmount:      item.Amount,
			importer.ColType:        item.Type,
			importer.ColCategory:    item.Category,
			importer.ColNotes:       item.Notes,
		}
	}

	snapshot, err := store.LoadSnapshot(h.DB, org.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load rules")
		return
	}

	pipeline := importer.NewPipeline(store.NewTransactionStore(h.DB))
	report := pipeline.ImportRows(rows, account.ID, snapshot)
	c.JSON(http.StatusOK, report)
}

// Template handles GET /api/import/template?format=csv|xlsx.
func (h *ImportHandler) Template(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	stamp := time.Now().Format("20060102")

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", importer.TemplateFilename+"_"+stamp+".csv"))
		if err := importer.WriteTemplateCSV(c.Writer); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not write template")
		}
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", importer.TemplateFilename+"_"+stamp+".xlsx"))
		if err := importer.WriteTemplateXLSX(c.Writer); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not write template")
		}
	default:
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "format must be csv or xlsx")
	}
}
