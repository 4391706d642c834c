package router

import (
	"github.com/nubikpaper2/finanza/internal/config"
	"github.com/nubikpaper2/finanza/internal/handler"
	"github.com/nubikpaper2/finanza/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")
	api.Use(middleware.AuditMiddleware(db))

	importHandler := handler.NewImportHandler(db, cfg.Import.MaxUploadBytes, cfg.Import.MaxRows)
	api.POST("/import", importHandler.ImportFile)
	api.POST("/import/json", importHandler.ImportJSON)
	api.GET("/import/template", importHandler.Template)

	ruleHandler := handler.NewRuleHandler(db)
	api.GET("/rules", ruleHandler.List)
	api.GET("/rules/:id", ruleHandler.Get)
	api.POST("/rules", ruleHandler.Create)
	api.PUT("/rules/:id", ruleHandler.Update)
	api.DELETE("/rules/:id", ruleHandler.Delete)

	categoryHandler := handler.NewCategoryHandler(db)
	api.GET("/categories", categoryHandler.List)
	api.POST("/categories", categoryHandler.Create)
	api.PUT("/categories/:id", categoryHandler.Update)
	api.DELETE("/categories/:id", categoryHandler.Delete)

	accountHandler := handler.NewAccountHandler(db)
	api.GET("/accounts", accountHandler.List)
	api.POST("/accounts", accountHandler.Create)

	transactionHandler := handler.NewTransactionHandler(db)
	api.GET("/transactions", transactionHandler.List)
	api.POST("/transactions", transactionHandler.Create)

	return r
}
