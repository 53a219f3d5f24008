package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/services/catalog"
	"github.com/quickkart/backend/services/search"
	"github.com/quickkart/backend/validation"
)

const (
	defaultLimit    = 20
	maxLimit        = 100
	defaultMaxPrice = 100000
	trendingCount   = 6
)

type SearchRequest struct {
	Query    string  `form:"q" json:"q" validate:"valid_query"`
	Limit    int     `form:"limit" json:"limit" validate:"min=0"`
	SortBy   string  `form:"sort_by" json:"sort_by"`
	MinPrice float64 `form:"min_price" json:"min_price" validate:"min=0"`
	MaxPrice float64 `form:"max_price" json:"max_price" validate:"min=0"`
}

func (r *SearchRequest) setDefaults() {
	if r.Limit == 0 {
		r.Limit = defaultLimit
	}
	if r.Limit > maxLimit {
		r.Limit = maxLimit
	}

	if r.SortBy == "" {
		r.SortBy = search.SortRelevant
	}

	if r.MaxPrice == 0 {
		r.MaxPrice = defaultMaxPrice
	}
}

type SearchFilters struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	SortBy   string  `json:"sort_by"`
}

type SearchResponse struct {
	Query    string           `json:"query"`
	Products []models.Product `json:"products"`
	Cached   bool             `json:"cached"`
	Count    int              `json:"count"`
	Filters  SearchFilters    `json:"filters"`
}

type Offer struct {
	Text string `json:"text"`
	Code string `json:"code"`
}

type ProductDetailResponse struct {
	Product        models.Product `json:"product"`
	Specifications gin.H          `json:"specifications"`
	Offers         []Offer        `json:"offers"`
}

func SetupProducts(router *gin.Engine, logger logger.Logger, service *search.Service, validator *validation.Validator) {
	router.GET("/api/search", handleSearch(service, logger, validator))
	router.GET("/api/product/:id", handleProductDetail(logger))
	router.GET("/api/categories", handleCategories())
	router.GET("/api/trending", handleTrending())
}

func handleSearch(service *search.Service, logger logger.Logger, validator *validation.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			writeError(c, http.StatusBadRequest, "failed to extract request parameters")
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		request.setDefaults()

		products, cached := service.Search(c.Request.Context(), search.Params{
			Query:    request.Query,
			Limit:    request.Limit,
			SortBy:   request.SortBy,
			MinPrice: request.MinPrice,
			MaxPrice: request.MaxPrice,
		})

		c.JSON(http.StatusOK, SearchResponse{
			Query:    request.Query,
			Products: products,
			Cached:   cached,
			Count:    len(products),
			Filters: SearchFilters{
				MinPrice: request.MinPrice,
				MaxPrice: request.MaxPrice,
				SortBy:   request.SortBy,
			},
		})
	}
}

// handleProductDetail looks ids up in the mock electronics list only, the
// same universe the trending endpoint serves.
func handleProductDetail(logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		for _, product := range catalog.Products("electronics") {
			if product.ID != productID {
				continue
			}

			c.JSON(http.StatusOK, ProductDetailResponse{
				Product: product,
				Specifications: gin.H{
					"warranty":      "1 year manufacturer warranty",
					"return_policy": "30 days return",
					"delivery":      "Free delivery across India",
					"seller":        "Authorized Seller",
					"cod_available": true,
				},
				Offers: []Offer{
					{Text: "₹3,315 off with Credit Card", Code: "CARD3K"},
					{Text: "₹1,000 off with Debit Card", Code: "DB1000"},
				},
			})
			return
		}

		logger.Warn("product not found", "product_id", productID)
		writeError(c, http.StatusNotFound, "Product not found")
	}
}

func handleCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
	}
}

func handleTrending() gin.HandlerFunc {
	return func(c *gin.Context) {
		trending := catalog.Products("electronics")
		if len(trending) > trendingCount {
			trending = trending[:trendingCount]
		}

		c.JSON(http.StatusOK, gin.H{
			"trending":     trending,
			"title":        "Trending Now",
			"last_updated": time.Now().Format(time.RFC3339),
		})
	}
}
