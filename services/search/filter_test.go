package search

import (
	"testing"

	"github.com/quickkart/backend/models"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Budget Phone", Price: "₹9,999", Rating: "4.1", Description: "Entry-level smartphone"},
		{ID: "2", Name: "Flagship Phone", Price: "₹79,999", Rating: "4.7", Description: "Top-end smartphone"},
		{ID: "3", Name: "Wireless Earbuds", Price: "₹2,499", Rating: "4.4", Description: "Compact earbuds"},
		{ID: "4", Name: "Mystery Gadget", Price: "Contact seller", Rating: "N/A", Description: "Price on request"},
		{ID: "5", Name: "Mid-range Phone", Price: "₹24,999", Rating: "4.4", Description: "Balanced smartphone"},
	}
}

func TestFilterByQuery(t *testing.T) {
	assert := require.New(t)
	products := sampleProducts()

	results := filterByQuery(products, "phone")
	assert.Len(results, 3)

	// Description matches count too.
	results = filterByQuery(products, "SMARTPHONE")
	assert.Len(results, 3)

	// Empty query is the identity.
	assert.Equal(products, filterByQuery(products, ""))

	assert.Empty(filterByQuery(products, "refrigerator"))
}

func TestFilterByPrice(t *testing.T) {
	assert := require.New(t)
	products := sampleProducts()

	results := filterByPrice(products, 0, 100000)
	assert.Len(results, 4, "unparseable price should be dropped, never raise")
	for _, p := range results {
		assert.NotEqual("4", p.ID)
	}

	// Bounds are inclusive.
	results = filterByPrice(products, 2499, 24999)
	assert.Len(results, 3)

	assert.Empty(filterByPrice(products, 100001, 200000))
}

func TestFilterByRating(t *testing.T) {
	assert := require.New(t)
	products := sampleProducts()

	results := filterByRating(products, 4.4)
	assert.Len(results, 3)

	// Unparseable ratings are dropped even with a zero threshold.
	results = filterByRating(products, 0)
	assert.Len(results, 4)
}

func TestSortProductsByPrice(t *testing.T) {
	assert := require.New(t)
	products := filterByPrice(sampleProducts(), 0, 100000)

	ascending := sortProducts(products, SortPriceLow)
	assert.Equal([]string{"3", "1", "5", "2"}, ids(ascending))

	descending := sortProducts(products, SortPriceHigh)
	assert.Equal([]string{"2", "5", "1", "3"}, ids(descending))
}

func TestSortProductsByRatingIsStable(t *testing.T) {
	assert := require.New(t)
	products := sampleProducts()

	once := sortProducts(products, SortRating)
	twice := sortProducts(once, SortRating)
	assert.Equal(once, twice)

	// Products 3 and 5 share a 4.4 rating; input order must be preserved.
	assert.Equal([]string{"2", "3", "5", "1", "4"}, ids(once))
}

func TestSortProductsUnknownKeyIsIdentity(t *testing.T) {
	assert := require.New(t)
	products := sampleProducts()

	for _, sortBy := range []string{SortRelevant, "", "newest"} {
		assert.Equal(products, sortProducts(products, sortBy))
	}
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	assert := require.New(t)
	products := sampleProducts()
	original := sampleProducts()

	sortProducts(products, SortPriceLow)
	assert.Equal(original, products)
}

func TestPipelineIsIdempotent(t *testing.T) {
	assert := require.New(t)
	products := sampleProducts()

	run := func() []models.Product {
		results := filterByQuery(products, "phone")
		results = filterByPrice(results, 0, 100000)
		return sortProducts(results, SortPriceLow)
	}

	assert.Equal(run(), run())
}

func ids(products []models.Product) []string {
	result := make([]string, 0, len(products))
	for _, p := range products {
		result = append(result, p.ID)
	}

	return result
}
