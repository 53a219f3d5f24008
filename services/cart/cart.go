package cart

import (
	"fmt"
	"time"

	"github.com/quickkart/backend/currency"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/store"
	"github.com/shopspring/decimal"
)

type Service struct {
	logger logger.Logger
	carts  *store.Memory[models.Cart]
}

func New(log logger.Logger, carts *store.Memory[models.Cart]) *Service {
	return &Service{
		logger: log,
		carts:  carts,
	}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *Service) Get(userID string) (models.Cart, error) {
	cart, err := s.carts.Get(userID)
	if err == nil {
		return cart, nil
	}

	now := time.Now().Format(time.RFC3339)
	cart = models.Cart{
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.carts.Set(userID, cart); err != nil {
		return models.Cart{}, fmt.Errorf("failed to store cart: %w", err)
	}

	return cart, nil
}

// Add puts an item in the cart, merging quantities when the product is
// already present.
func (s *Service) Add(userID string, item models.CartItem) (models.Cart, error) {
	cart, err := s.Get(userID)
	if err != nil {
		return models.Cart{}, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return s.save(userID, cart)
}

func (s *Service) Remove(userID, productID string) (models.Cart, error) {
	cart, err := s.Get(userID)
	if err != nil {
		return models.Cart{}, err
	}

	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	cart.Items = items

	return s.save(userID, cart)
}

// UpdateQuantity sets the quantity for a product; zero or negative removes
// it from the cart.
func (s *Service) UpdateQuantity(userID, productID string, quantity int) (models.Cart, error) {
	if quantity <= 0 {
		return s.Remove(userID, productID)
	}

	cart, err := s.Get(userID)
	if err != nil {
		return models.Cart{}, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	return s.save(userID, cart)
}

func (s *Service) Clear(userID string) (models.Cart, error) {
	now := time.Now().Format(time.RFC3339)
	cart := models.Cart{
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.carts.Set(userID, cart); err != nil {
		return models.Cart{}, fmt.Errorf("failed to store cart: %w", err)
	}

	return cart, nil
}

func (s *Service) save(userID string, cart models.Cart) (models.Cart, error) {
	cart.TotalPrice = totalPrice(cart.Items)
	cart.UpdatedAt = time.Now().Format(time.RFC3339)

	if err := s.carts.Set(userID, cart); err != nil {
		return models.Cart{}, fmt.Errorf("failed to store cart: %w", err)
	}

	return cart, nil
}

// totalPrice sums item prices times quantities. Items whose price string
// does not parse contribute nothing, same as the search pipeline's drop
// policy.
func totalPrice(items []models.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		price, ok := currency.ParsePrice(item.Price)
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(2).InexactFloat64()
}
