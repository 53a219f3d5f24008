// Package catalog holds the static product and category data the API falls
// back to when live scraping is unavailable.
package catalog

import (
	"strconv"
	"strings"

	"github.com/quickkart/backend/models"
)

const fallbackCategory = "electronics"

type record struct {
	name        string
	price       string
	imageURL    string
	rating      string
	reviews     string
	description string
}

var mockData = map[string][]record{
	"electronics": {
		{
			name:        "Apple iPhone 15 (Black, 256GB)",
			price:       "₹49,999",
			imageURL:    "https://images.unsplash.com/photo-1592286927505-1def25115558?w=300",
			rating:      "4.7",
			reviews:     "28.5K",
			description: "Latest Apple iPhone 15 with advanced camera system",
		},
		{
			name:        "Samsung Galaxy S24 (Graphite, 256GB)",
			price:       "₹59,999",
			imageURL:    "https://images.unsplash.com/photo-1511707267537-b85faf00021e?w=300",
			rating:      "4.6",
			reviews:     "15.2K",
			description: "Premium Samsung smartphone with AMOLED display",
		},
		{
			name:        "OnePlus 12 (Pine Green, 256GB)",
			price:       "₹44,999",
			imageURL:    "https://images.unsplash.com/photo-1556656793-08538906a9f8?w=300",
			rating:      "4.5",
			reviews:     "12.3K",
			description: "OnePlus flagship with fast charging and 120Hz display",
		},
		{
			name:        "Redmi Note 13 (Midnight Black, 256GB)",
			price:       "₹17,999",
			imageURL:    "https://images.unsplash.com/photo-1511707267537-b85faf00021e?w=300",
			rating:      "4.4",
			reviews:     "18.9K",
			description: "Budget-friendly smartphone with great battery life",
		},
		{
			name:        "Sony WH-1000XM5 Headphones",
			price:       "₹24,999",
			imageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300",
			rating:      "4.8",
			reviews:     "8.2K",
			description: "Premium noise-cancelling wireless headphones",
		},
		{
			name:        "iPad Air (10.9-inch, 256GB)",
			price:       "₹59,900",
			imageURL:    "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=300",
			rating:      "4.6",
			reviews:     "5.1K",
			description: "Powerful tablet with M1 chip for professionals",
		},
	},
	"clothing": {
		{
			name:        "Men's Premium Cotton T-Shirt (Blue)",
			price:       "₹599",
			imageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300",
			rating:      "4.3",
			reviews:     "2.1K",
			description: "Comfortable and durable cotton t-shirt",
		},
		{
			name:        "Women's Casual Shirt (White)",
			price:       "₹799",
			imageURL:    "https://images.unsplash.com/photo-1551028719-00167b16ebc5?w=300",
			rating:      "4.5",
			reviews:     "3.2K",
			description: "Stylish casual wear for everyday use",
		},
	},
	"books": {
		{
			name:        "Atomic Habits by James Clear",
			price:       "₹400",
			imageURL:    "https://images.unsplash.com/photo-1495446815901-a7297e01fb7d?w=300",
			rating:      "4.7",
			reviews:     "5.2K",
			description: "Transform your life with tiny habits",
		},
		{
			name:        "The Midnight Library by Matt Haig",
			price:       "₹345",
			imageURL:    "https://images.unsplash.com/photo-1507842217343-583f1270b3fe?w=300",
			rating:      "4.6",
			reviews:     "1.8K",
			description: "Explore infinite possibilities in this novel",
		},
	},
}

var categories = []models.Category{
	{ID: 1, Name: "Electronics", Icon: "📱", Count: 245},
	{ID: 2, Name: "Clothing", Icon: "👕", Count: 892},
	{ID: 3, Name: "Books", Icon: "📚", Count: 156},
	{ID: 4, Name: "Home & Kitchen", Icon: "🏠", Count: 453},
	{ID: 5, Name: "Sports", Icon: "⚽", Count: 203},
	{ID: 6, Name: "Beauty", Icon: "💄", Count: 324},
	{ID: 7, Name: "Toys", Icon: "🧸", Count: 178},
	{ID: 8, Name: "Groceries", Icon: "🛒", Count: 521},
}

// Products returns the mock products for a category. Lookup is
// case-insensitive and unknown categories fall back to electronics, so the
// result is never empty. Ids are 1-based positions within the category
// list; they are not unique across categories.
func Products(category string) []models.Product {
	records, ok := mockData[strings.ToLower(category)]
	if !ok {
		records = mockData[fallbackCategory]
	}

	products := make([]models.Product, 0, len(records))
	for i, r := range records {
		products = append(products, models.Product{
			ID:          strconv.Itoa(i + 1),
			Name:        r.name,
			Price:       r.price,
			ImageURL:    r.imageURL,
			Rating:      r.rating,
			Reviews:     r.reviews,
			Description: r.description,
		})
	}

	return products
}

// Categories returns the static category list.
func Categories() []models.Category {
	result := make([]models.Category, len(categories))
	copy(result, categories)

	return result
}
