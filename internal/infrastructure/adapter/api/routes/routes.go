package routes

import (
	coreport "github.com/amirhossein-jamali/credit-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	walletHandler *handler.WalletHandler,
	adminHandler *handler.AdminHandler,
	jwtSecret string,
) {
	auth := middleware.Auth(jwtSecret)

	// Wallet routes operate on the authenticated caller's own wallet
	walletRoutes := router.Group("/wallet", auth)
	{
		walletRoutes.GET("", walletHandler.GetStatus)
		walletRoutes.POST("/consume", walletHandler.Consume)
		walletRoutes.POST("/welcome", walletHandler.ClaimWelcome)
		walletRoutes.GET("/transactions", walletHandler.GetTransactions)
	}

	// Admin routes require the admin role claim
	adminRoutes := router.Group("/admin", auth, middleware.RequireAdmin())
	{
		adminRoutes.POST("/credits/grant", adminHandler.GrantCredits)
		adminRoutes.POST("/users", adminHandler.CreateUser)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
}
