package scraper

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/quickkart/backend/models"
)

// Structural selectors for the storefront's obfuscated class names. These
// are brittle by nature; a markup change silently yields zero candidates.
const (
	containerSelector = `div[class^="col"]`
	linkSelector      = `a[class*="1UQZyc"]`
	nameSelector      = `a[class*="s1Q50c"]`
	priceSelector     = `div[class*="30jeq3"]`
	ratingSelector    = `div[class*="1lRcqm"]`
	reviewsSelector   = `span[class*="1oKavI"]`
	imageSelector     = `img`
)

const maxNameLength = 100

// extractProducts parses search-result markup into products. Extraction is
// best-effort per candidate: optional fields degrade to sentinel defaults
// and a candidate missing its name or image is skipped without aborting
// the batch. It never returns an error; unparseable markup yields an
// empty list.
func extractProducts(markup []byte, maxProducts int) []models.Product {
	products := []models.Product{}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return products
	}

	doc.Find(containerSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(products) >= maxProducts || i >= maxProducts {
			return false
		}

		if product, ok := extractCandidate(s); ok {
			products = append(products, product)
		}

		return true
	})

	return products
}

// extractCandidate attempts each field independently. The detail-page link
// exists only to derive a stable id.
func extractCandidate(s *goquery.Selection) (models.Product, bool) {
	link := s.Find(linkSelector).First()
	if link.Length() == 0 {
		return models.Product{}, false
	}
	productURL, _ := link.Attr("href")

	name := strings.TrimSpace(s.Find(nameSelector).First().Text())
	imageURL, _ := s.Find(imageSelector).First().Attr("src")
	if name == "" || imageURL == "" {
		return models.Product{}, false
	}

	price := strings.TrimSpace(s.Find(priceSelector).First().Text())
	if price == "" {
		price = "N/A"
	}

	rating := strings.TrimSpace(s.Find(ratingSelector).First().Text())
	if rating == "" {
		rating = "N/A"
	}

	reviews := strings.TrimSpace(s.Find(reviewsSelector).First().Text())
	if reviews == "" {
		reviews = "0"
	}

	name = truncate(name, maxNameLength)

	return models.Product{
		ID:          deriveID(productURL),
		Name:        name,
		Price:       price,
		ImageURL:    imageURL,
		Rating:      rating,
		Reviews:     reviews,
		Description: fmt.Sprintf("High-quality %s. Check our amazing deals!", name),
	}, true
}

// deriveID hashes the detail-page URL into the positive 31-bit range. Hash
// collisions across products are possible; the id is stable per source but
// not guaranteed unique.
func deriveID(productURL string) string {
	h := fnv.New32a()
	h.Write([]byte(productURL))

	return strconv.FormatUint(uint64(h.Sum32()%(1<<31-1)), 10)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
