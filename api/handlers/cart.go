package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/services/cart"
	"github.com/quickkart/backend/validation"
)

type AddToCartRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	ImageURL    string `json:"image_url"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func SetupCart(router *gin.Engine, logger logger.Logger, service *cart.Service, validator *validation.Validator) {
	router.GET("/api/cart/:user_id", handleGetCart(service, logger))
	router.POST("/api/cart/:user_id/add", handleAddToCart(service, logger, validator))
	router.DELETE("/api/cart/:user_id/remove/:product_id", handleRemoveFromCart(service, logger))
	router.PUT("/api/cart/:user_id/update/:product_id", handleUpdateQuantity(service, logger))
	router.DELETE("/api/cart/:user_id/clear", handleClearCart(service, logger))
}

func handleGetCart(service *cart.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, err := service.Get(c.Param("user_id"))
		if err != nil {
			logger.Error("failed to get cart", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, userCart)
	}
}

func handleAddToCart(service *cart.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := AddToCartRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract add-to-cart request body", "err", err.Error())
			writeError(c, http.StatusBadRequest, "failed to extract request body parameters")
			return
		}

		if err := validator.Validate(request); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}

		userCart, err := service.Add(c.Param("user_id"), models.CartItem{
			ProductID:   request.ProductID,
			ProductName: request.ProductName,
			Price:       request.Price,
			Quantity:    request.Quantity,
			ImageURL:    request.ImageURL,
		})
		if err != nil {
			logger.Error("failed to add to cart", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, userCart)
	}
}

func handleRemoveFromCart(service *cart.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, err := service.Remove(c.Param("user_id"), c.Param("product_id"))
		if err != nil {
			logger.Error("failed to remove from cart", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, userCart)
	}
}

func handleUpdateQuantity(service *cart.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := UpdateQuantityRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract update-quantity request body", "err", err.Error())
			writeError(c, http.StatusBadRequest, "failed to extract request body parameters")
			return
		}

		userCart, err := service.UpdateQuantity(c.Param("user_id"), c.Param("product_id"), request.Quantity)
		if err != nil {
			logger.Error("failed to update quantity", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, userCart)
	}
}

func handleClearCart(service *cart.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, err := service.Clear(c.Param("user_id"))
		if err != nil {
			logger.Error("failed to clear cart", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, userCart)
	}
}
