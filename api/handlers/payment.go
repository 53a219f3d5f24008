package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/services/payment"
	"github.com/quickkart/backend/validation"
)

type CreateOrderRequest struct {
	UserID          string            `json:"user_id" validate:"required"`
	UserEmail       string            `json:"user_email" validate:"required,email"`
	Items           []models.CartItem `json:"items" validate:"required"`
	TotalPrice      float64           `json:"total_price" validate:"min=0"`
	DeliveryAddress string            `json:"delivery_address" validate:"required"`
}

type ProcessPaymentRequest struct {
	OrderID       string  `json:"order_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"min=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	UserID        string  `json:"user_id" validate:"required"`
}

func SetupPayment(router *gin.Engine, logger logger.Logger, service *payment.Service, validator *validation.Validator) {
	router.POST("/api/payment/create-order", handleCreateOrder(service, logger, validator))
	router.POST("/api/payment/process", handleProcessPayment(service, logger, validator))
	router.GET("/api/payment/order/:order_id", handleGetOrder(service, logger))
	router.GET("/api/payment/orders/:user_id", handleGetUserOrders(service))
	router.GET("/api/payment/transaction/:transaction_id", handleGetTransaction(service, logger))
}

func handleCreateOrder(service *payment.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := CreateOrderRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract create-order request body", "err", err.Error())
			writeError(c, http.StatusBadRequest, "failed to extract request body parameters")
			return
		}

		if err := validator.Validate(request); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}

		order, err := service.CreateOrder(request.UserID, request.UserEmail, request.Items, request.TotalPrice, request.DeliveryAddress)
		if err != nil {
			logger.Error("failed to create order", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func handleProcessPayment(service *payment.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := ProcessPaymentRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract process-payment request body", "err", err.Error())
			writeError(c, http.StatusBadRequest, "failed to extract request body parameters")
			return
		}

		if err := validator.Validate(request); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}

		result, err := service.ProcessPayment(request.OrderID, request.Amount, request.PaymentMethod, request.UserID)
		if err != nil {
			if errors.Is(err, payment.ErrOrderNotFound) {
				writeError(c, http.StatusBadRequest, err.Error())
				return
			}
			logger.Error("failed to process payment", "err", err.Error())
			writeError(c, http.StatusInternalServerError, err.Error())
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func handleGetOrder(service *payment.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("order_id")

		order, err := service.GetOrder(orderID)
		if err != nil {
			logger.Warn("order not found", "order_id", orderID)
			writeError(c, http.StatusNotFound, err.Error())
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func handleGetUserOrders(service *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": service.GetUserOrders(c.Param("user_id"))})
	}
}

func handleGetTransaction(service *payment.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactionID := c.Param("transaction_id")

		transaction, err := service.GetTransaction(transactionID)
		if err != nil {
			logger.Warn("transaction not found", "transaction_id", transactionID)
			writeError(c, http.StatusNotFound, err.Error())
			return
		}

		c.JSON(http.StatusOK, transaction)
	}
}
