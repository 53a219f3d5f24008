package models

// Product is the unit served by search, trending and product-detail
// endpoints. Price, rating and reviews stay strings in the shape the
// storefront serves them ("₹49,999", "4.7", "28.5K"); numeric values are
// derived on demand via the currency package.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	Rating      string `json:"rating"`
	Reviews     string `json:"reviews"`
	Description string `json:"description,omitempty"`
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Token     string `json:"token,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type CartItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"image_url"`
}

type Cart struct {
	UserID     string     `json:"user_id"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  string     `json:"created_at"`
	UpdatedAt  string     `json:"updated_at"`
}

type Order struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	UserEmail       string     `json:"user_email"`
	Items           []CartItem `json:"items"`
	TotalPrice      float64    `json:"total_price"`
	PaymentStatus   string     `json:"payment_status"`
	OrderStatus     string     `json:"order_status"`
	DeliveryAddress string     `json:"delivery_address"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}

type Transaction struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	UserID        string  `json:"user_id"`
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
}
