// Package payment simulates order creation and payment processing. No real
// payment provider is involved; outcomes are randomized.
package payment

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/store"
)

const (
	orderIDLength       = 12
	transactionIDLength = 16
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type Result struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transaction_id"`
	OrderID       string  `json:"order_id"`
	Amount        float64 `json:"amount"`
	Message       string  `json:"message"`
}

type Service struct {
	logger       logger.Logger
	orders       *store.Memory[models.Order]
	transactions *store.Memory[models.Transaction]
	succeed      func() bool
}

func New(log logger.Logger, orders *store.Memory[models.Order], transactions *store.Memory[models.Transaction]) *Service {
	return &Service{
		logger:       log,
		orders:       orders,
		transactions: transactions,
		// 3 in 4 simulated payments succeed.
		succeed: func() bool { return rand.Intn(4) != 0 },
	}
}

func (s *Service) CreateOrder(userID, userEmail string, items []models.CartItem, totalPrice float64, deliveryAddress string) (models.Order, error) {
	now := time.Now().Format(time.RFC3339)
	order := models.Order{
		ID:              uuid.NewString()[:orderIDLength],
		UserID:          userID,
		UserEmail:       userEmail,
		Items:           items,
		TotalPrice:      totalPrice,
		PaymentStatus:   "pending",
		OrderStatus:     "pending",
		DeliveryAddress: deliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Set(order.ID, order); err != nil {
		return models.Order{}, fmt.Errorf("failed to store order: %w", err)
	}
	s.logger.Info("created order", "order_id", order.ID, "user_id", userID)

	return order, nil
}

// ProcessPayment records a transaction for the order. On simulated success
// the order moves to completed/confirmed; on failure it stays pending so
// the payment can be retried.
func (s *Service) ProcessPayment(orderID string, amount float64, paymentMethod, userID string) (Result, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return Result{}, ErrOrderNotFound
	}

	success := s.succeed()
	transaction := models.Transaction{
		ID:            uuid.NewString()[:transactionIDLength],
		OrderID:       orderID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		UserID:        userID,
		Status:        "failed",
		Timestamp:     time.Now().Format(time.RFC3339),
	}
	if success {
		transaction.Status = "success"
	}

	if err := s.transactions.Set(transaction.ID, transaction); err != nil {
		return Result{}, fmt.Errorf("failed to store transaction: %w", err)
	}

	if success {
		order.PaymentStatus = "completed"
		order.OrderStatus = "confirmed"
		order.UpdatedAt = time.Now().Format(time.RFC3339)
		if err := s.orders.Set(orderID, order); err != nil {
			return Result{}, fmt.Errorf("failed to store order: %w", err)
		}
	}

	message := "Payment failed. Please try again."
	if success {
		message = "Payment processed successfully!"
	}

	return Result{
		Success:       success,
		TransactionID: transaction.ID,
		OrderID:       orderID,
		Amount:        amount,
		Message:       message,
	}, nil
}

func (s *Service) GetOrder(orderID string) (models.Order, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return models.Order{}, ErrOrderNotFound
	}

	return order, nil
}

func (s *Service) GetUserOrders(userID string) []models.Order {
	orders := []models.Order{}
	for _, order := range s.orders.List() {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}

	return orders
}

func (s *Service) GetTransaction(transactionID string) (models.Transaction, error) {
	transaction, err := s.transactions.Get(transactionID)
	if err != nil {
		return models.Transaction{}, ErrTransactionNotFound
	}

	return transaction, nil
}
