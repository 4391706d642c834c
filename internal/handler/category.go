package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/models"
	"github.com/nubikpaper2/finanza/internal/store"
	"github.com/nubikpaper2/finanza/internal/util"
)

type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

type categoryReq struct {
	Name        string `json:"name" binding:"required,max=64"`
	Description string `json:"description" binding:"max=500"`
	Type        string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Icon        string `json:"icon" binding:"max=16"`
	Color       string `json:"color" binding:"max=16"`
	Active      *bool  `json:"active"`
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	categories, err := store.NewCategoryStore(h.DB).ForOrganization(org.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not load categories")
		return
	}
	util.Success(c, util.Response{"categories": categories})
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	category := models.Category{
		OrganizationID: org.ID,
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Type:           models.TransactionType(req.Type),
		Icon:           req.Icon,
		Color:          req.Color,
		Active:         true,
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := h.DB.Create(&category).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save category")
		return
	}
	util.Success(c, util.Response{"category": category})
}

// Update handles PUT /api/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}
	id, ok := parseUintParam(c.Param("id"))
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid category id")
		return
	}

	var category models.Category
	if err := h.DB.Where("organization_id = ?", org.ID).First(&category, id).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		return
	}

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	category.Name = strings.TrimSpace(req.Name)
	category.Description = req.Description
	category.Type = models.TransactionType(req.Type)
	category.Icon = req.Icon
	category.Color = req.Color
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := h.DB.Save(&category).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save category")
		return
	}
	util.Success(c, util.Response{"category": category})
}

// Delete handles DELETE /api/categories/:id. Rules pointing at the
// category go with it; existing transactions keep a null category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	org, ok := resolveOrganization(c, h.DB)
	if !ok {
		return
	}
	id, ok := parseUintParam(c.Param("id"))
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid category id")
		return
	}

	err := h.DB.Transaction(func(db *gorm.DB) error {
		result := db.Where("organization_id = ?", org.ID).Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := db.Where("organization_id = ? AND category_id = ?", org.ID, id).
			Delete(&models.CategoryRule{}).Error; err != nil {
			return err
		}
		return db.Model(&models.Transaction{}).
			Where("organization_id = ? AND category_id = ?", org.ID, id).
			Update("category_id", nil).Error
	})
	if err == gorm.ErrRecordNotFound {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "category not found")
		return
	}
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete category")
		return
	}
	util.Success(c, util.Response{"deleted": id})
}
