package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nubikpaper2/finanza/internal/models"
	"github.com/nubikpaper2/finanza/internal/util"
)

// resolveOrganization picks the scope for a request: the orgId query
// parameter when present, otherwise the first (seeded) organization. On
// failure it writes the error response and returns ok=false.
func resolveOrganization(c *gin.Context, db *gorm.DB) (*models.Organization, bool) {
	var org models.Organization

	if raw := c.Query("orgId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid orgId")
			return nil, false
		}
		if err := db.First(&org, uint(id)).Error; err != nil {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "organization not found")
			return nil, false
		}
		return &org, true
	}

	if err := db.Order("id ASC").First(&org).Error; err != nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "no organization configured")
		return nil, false
	}
	return &org, true
}

// parseUintParam parses a positive integer path or query value.
func parseUintParam(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
