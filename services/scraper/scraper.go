// Package scraper retrieves products from a third-party storefront's
// search page, degrading to the static catalog when the page cannot be
// fetched.
package scraper

import (
	"context"

	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/services/catalog"
)

type resultSource string

const (
	sourceScraped  resultSource = "scraped"
	sourceFallback resultSource = "fallback"
)

type Service struct {
	fetcher Fetcher
	logger  logger.Logger
}

func New(log logger.Logger, fetcher Fetcher) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  log,
	}
}

// GetProducts returns up to maxProducts products for the query. It never
// fails: any fetch error falls back to the mock catalog for the same
// query. A successful fetch that matches no candidates legitimately
// returns an empty list and does not trigger the fallback.
func (s *Service) GetProducts(ctx context.Context, query string, maxProducts int) []models.Product {
	products, source := s.getProducts(ctx, query, maxProducts)
	s.logger.Info("product retrieval complete", "query", query, "source", string(source), "count", len(products))

	return products
}

// getProducts keeps the scraped/fallback distinction explicit even though
// the response shape erases it.
func (s *Service) getProducts(ctx context.Context, query string, maxProducts int) ([]models.Product, resultSource) {
	markup, err := s.fetcher.Fetch(ctx, query)
	if err != nil {
		s.logger.Warn("falling back to mock catalog", "query", query, "err", err.Error())
		return catalog.Products(query), sourceFallback
	}

	return extractProducts(markup, maxProducts), sourceScraped
}
