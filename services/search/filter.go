package search

import (
	"sort"
	"strings"

	"github.com/quickkart/backend/currency"
	"github.com/quickkart/backend/models"
	"github.com/shopspring/decimal"
)

const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
	SortRelevant  = "relevant"
)

// filterByQuery keeps products whose name or description contains the
// query, case-insensitively. An empty query is the identity.
func filterByQuery(products []models.Product, query string) []models.Product {
	if len(query) < 1 {
		return products
	}

	queryLower := strings.ToLower(query)
	results := []models.Product{}
	for _, p := range products {
		nameMatch := strings.Contains(strings.ToLower(p.Name), queryLower)
		descMatch := p.Description != "" && strings.Contains(strings.ToLower(p.Description), queryLower)
		if nameMatch || descMatch {
			results = append(results, p)
		}
	}

	return results
}

// filterByPrice keeps products whose derived numeric price lies in
// [minPrice, maxPrice]. Products with unparseable prices are dropped.
func filterByPrice(products []models.Product, minPrice, maxPrice float64) []models.Product {
	lower := decimal.NewFromFloat(minPrice)
	upper := decimal.NewFromFloat(maxPrice)

	results := []models.Product{}
	for _, p := range products {
		price, ok := currency.ParsePrice(p.Price)
		if !ok {
			continue
		}
		if price.GreaterThanOrEqual(lower) && price.LessThanOrEqual(upper) {
			results = append(results, p)
		}
	}

	return results
}

// filterByRating keeps products rated at least minRating, dropping
// products whose rating does not parse. Not part of the default search
// pipeline; kept for composition.
func filterByRating(products []models.Product, minRating float64) []models.Product {
	results := []models.Product{}
	for _, p := range products {
		rating, ok := currency.ParseRating(p.Rating)
		if !ok {
			continue
		}
		if rating >= minRating {
			results = append(results, p)
		}
	}

	return results
}

// sortProducts orders products by the given key. Unknown keys, including
// the default "relevant", preserve input order. The sort is stable and
// unparseable keys sort as zero.
func sortProducts(products []models.Product, sortBy string) []models.Product {
	results := make([]models.Product, len(products))
	copy(results, products)

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return numericPrice(results[i]).LessThan(numericPrice(results[j]))
		})
	case SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return numericPrice(results[i]).GreaterThan(numericPrice(results[j]))
		})
	case SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return numericRating(results[i]) > numericRating(results[j])
		})
	}

	return results
}

func numericPrice(p models.Product) decimal.Decimal {
	price, ok := currency.ParsePrice(p.Price)
	if !ok {
		return decimal.Zero
	}

	return price
}

func numericRating(p models.Product) float64 {
	rating, ok := currency.ParseRating(p.Rating)
	if !ok {
		return 0
	}

	return rating
}
