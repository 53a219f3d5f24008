package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickkart/backend/api/handlers"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/services/auth"
	"github.com/quickkart/backend/services/cart"
	"github.com/quickkart/backend/services/payment"
	"github.com/quickkart/backend/services/search"
	"github.com/quickkart/backend/validation"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, searchService *search.Service, authService *auth.Service, cartService *cart.Service, paymentService *payment.Service, validator *validation.Validator) {
	router.GET("/health", health())
	router.GET("/", root())

	handlers.SetupProducts(router, logger, searchService, validator)
	handlers.SetupAuth(router, logger, authService, validator)
	handlers.SetupCart(router, logger, cartService, validator)
	handlers.SetupPayment(router, logger, paymentService, validator)
}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "Server is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to QuickKart API",
			"version": "2.0",
			"endpoints": gin.H{
				"auth":     "/api/auth/*",
				"cart":     "/api/cart/*",
				"payment":  "/api/payment/*",
				"products": "/api/search, /api/categories, /api/trending",
			},
		})
	}
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.UseRawPath = true
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())

	return router
}
