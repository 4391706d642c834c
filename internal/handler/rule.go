package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/models"
	"github.com/nubikpaper2/finanza/internal/rules"
	"github.com/nubikpaper2/finanza/internal/store"
	"github.com/nubikpaper2/finanza/internal/util"
)

// RuleHandler manages categorization rules. Patterns are validated here,
// at creation and update time; the matcher relies on that and treats an
// invalid stored pattern as a programming error.
type RuleHandler struct {
	DB *gorm.DB
}

func NewRuleHandler(db *gorm.DB) *RuleHandler {
	return &RuleHandler{DB: db}
}

type ruleReq struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=500"`
	Type        string `json:"type" binding:"required"`
	Pattern     string `json:"pattern" binding:"required,max=500"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	Active      *bool  `json:"active"`
	Priority    *int   `json:"priority"`
}

type ruleResp struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Type         models.RuleType `json:"type"`
	Pattern      string    `json:"pattern"`
	CategoryID   uint      `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Active       bool      `json:"active"`
	Priority     int       `json:"priority"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (h *RuleHandler) toResp(r models.CategoryRule) ruleResp {
	resp := ruleResp{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Pattern:     r.Pattern,
		CategoryID:  r.CategoryID,
		Active:      r.Active,
		Priority:    r.Priority,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if category, err := store.NewCategoryStore(h.DB).ByID(r.CategoryID); err == nil && category != nil {
		resp.CategoryName = category.Name
	}
	return resp
}

// validateRule checks the request's type and pattern and resolves the
// target category inside the scope. Returns a user-facing message on
// failure.
func (h *RuleHandler) validateRule(orgID uint, req *ruleReq) (models.RuleType, string) {
	ruleType := models.RuleType(strings.ToUpper(strings.TrimSpace(req.Type)))
	valid := false
	for _, t := range models.RuleTypes {
		if t == ruleType {
			valid = true
			break
		}
	}
	if !valid {
		return "", "unknown rule type " + req.Type
	}

	if err := rules.ValidatePattern(ruleType, req.Pattern); err != nil {
		return "", err.Error()
	}

	category, err := store.NewCategoryStore(h.DB).ByID(req.CategoryID)
	if err != nil || category == nil || category.OrganizationID != orgID {
		return "", "category not found"
	}
	return ruleType, ""
}

// List handles GET /api/rules.
func (h *RuleHandler) List(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	all, err := store.NewRuleStore(h.DB).ForOrganization(org.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load rules")
		return
	}

	items := make([]ruleResp, 0, len(all))
	for _, r := range all {
		items = append(items, h.toResp(r))
	}
	util.Success(c, util.Response{"rules": items})
}

// Get handles GET /api/rules/:id.
func (h *RuleHandler) Get(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}
	id, ok := parseUintParam(c.Param("id"))
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid rule id")
		return
	}

	var rule models.CategoryRule
	if err := h.DB.Where("organization_id = ?", org.ID).First(&rule, id).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "rule not found")
		return
	}
	util.Success(c, util.Response{"rule": h.toResp(rule)})
}

// Create handles POST /api/rules.
func (h *RuleHandler) Create(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	var req ruleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	ruleType, msg := h.validateRule(org.ID, &req)
	if msg != "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	rule := models.CategoryRule{
		OrganizationID: org.ID,
		Name:           req.Name,
		Description:    req.Description,
		Type:           ruleType,
		Pattern:        req.Pattern,
		CategoryID:     req.CategoryID,
		Active:         true,
		Priority:       0,
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}

	if err := h.DB.Create(&rule).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save rule")
		return
	}
	util.Success(c, util.Response{"rule": h.toResp(rule)})
}

// Update handles PUT /api/rules/:id.
func (h *RuleHandler) Update(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}
	id, ok := parseUintParam(c.Param("id"))
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid rule id")
		return
	}

	var rule models.CategoryRule
	if err := h.DB.Where("organization_id = ?", org.ID).First(&rule, id).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "rule not found")
		return
	}

	var req ruleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	ruleType, msg := h.validateRule(org.ID, &req)
	if msg != "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	rule.Name = req.Name
	rule.Description = req.Description
	rule.Type = ruleType
	rule.Pattern = req.Pattern
	rule.CategoryID = req.CategoryID
	if req.Active != nil {
		rule.Active = *req.Active
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}

	if err := h.DB.Save(&rule).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save rule")
		return
	}
	util.Success(c, util.Response{"rule": h.toResp(rule)})
}

// Delete handles DELETE /api/rules/:id.
func (h *RuleHandler) Delete(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}
	id, ok := parseUintParam(c.Param("id"))
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid rule id")
		return
	}

	result := h.DB.Where("organization_id = ?", org.ID).Delete(&models.CategoryRule{}, id)
	if result.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete rule")
		return
	}
	if result.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "rule not found")
		return
	}
	util.Success(c, util.Response{"deleted": id})
}
