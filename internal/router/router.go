package router

import (
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/config"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/handler"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/middleware"
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services, middleware and routes onto a gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	users := service.NewUsers(db, cfg.Security.BcryptCost)
	ledger := service.NewLedger(db)
	subs := service.NewSubscriptions(db)

	authHandler := handler.NewAuthHandler(users, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	userHandler := handler.NewUserHandler(users)
	categoryHandler := handler.NewCategoryHandler(db)
	transactionHandler := handler.NewTransactionHandler(db)
	userCategoryHandler := handler.NewUserCategoryHandler(subs)
	userTransactionHandler := handler.NewUserTransactionHandler(ledger)
	exportHandler := handler.NewExportHandler()

	// public routes
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/category", categoryHandler.List)
	r.GET("/category/:name/users", categoryHandler.ListUsers)
	r.GET("/transaction", transactionHandler.List)

	// routes that require a bearer token
	protected := r.Group("")
	protected.Use(
		middleware.Auth(cfg.JWT.Secret, db),
		middleware.Audit(db),
	)

	protected.GET("/auth/verify-token", authHandler.VerifyToken)

	protected.GET("/users", userHandler.Get)
	protected.PUT("/users", userHandler.Update)
	protected.DELETE("/users", userHandler.Delete)

	protected.GET("/users/category", userCategoryHandler.List)
	protected.POST("/users/category", userCategoryHandler.Add)
	protected.DELETE("/users/category/:name", userCategoryHandler.Delete)

	protected.GET("/users/transaction", userTransactionHandler.List)
	protected.POST("/users/transaction", userTransactionHandler.Create)
	protected.PUT("/users/transaction/:id", userTransactionHandler.Update)
	protected.DELETE("/users/transaction/:id", userTransactionHandler.Delete)

	protected.POST("/users/transaction/export-csv", exportHandler.CSV)
	protected.POST("/users/transaction/export-xlsx", exportHandler.XLSX)
	protected.POST("/users/transaction/export-pdf", exportHandler.PDF)

	return r
}
