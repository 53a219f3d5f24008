// Package search composes the product retrieval pipeline: cache lookup,
// scrape-or-fallback retrieval, then pure filter/sort/limit stages in a
// fixed order.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/store"
)

// ProductSource retrieves products for a query. It never fails; the
// scraper's fallback guarantees a plausible list.
type ProductSource interface {
	GetProducts(ctx context.Context, query string, maxProducts int) []models.Product
}

type Params struct {
	Query    string
	Limit    int
	SortBy   string
	MinPrice float64
	MaxPrice float64
}

type Service struct {
	logger logger.Logger
	source ProductSource
	cache  *store.Memory[[]models.Product]
}

func New(log logger.Logger, source ProductSource) *Service {
	return &Service{
		logger: log,
		source: source,
		cache:  store.NewMemory[[]models.Product](),
	}
}

// Search runs the full pipeline. The boolean reports whether the product
// list came from the cache. Cache entries are keyed by the normalized
// (query, limit) signature and hold snapshots; filtering never touches
// cached data. Entries live for the life of the process.
func (s *Service) Search(ctx context.Context, params Params) ([]models.Product, bool) {
	key := cacheKey(params.Query, params.Limit)

	products, err := s.cache.Get(key)
	cached := err == nil
	if cached {
		products = snapshot(products)
	} else {
		products = s.source.GetProducts(ctx, params.Query, params.Limit)
		if err := s.cache.Set(key, snapshot(products)); err != nil {
			s.logger.Warn("failed to cache search results", "key", key, "err", err.Error())
		}
	}

	results := filterByQuery(products, params.Query)
	results = filterByPrice(results, params.MinPrice, params.MaxPrice)
	results = sortProducts(results, params.SortBy)
	if len(results) > params.Limit {
		results = results[:params.Limit]
	}

	return results, cached
}

func cacheKey(query string, limit int) string {
	return strings.ToLower(fmt.Sprintf("%s_%d", query, limit))
}

func snapshot(products []models.Product) []models.Product {
	copied := make([]models.Product, len(products))
	copy(copied, products)

	return copied
}
