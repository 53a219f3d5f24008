// Common test helpers
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quickkart/backend/logger"
	"github.com/quickkart/backend/models"
	"github.com/quickkart/backend/services/auth"
	"github.com/quickkart/backend/services/cart"
	"github.com/quickkart/backend/services/payment"
	"github.com/quickkart/backend/services/search"
	"github.com/quickkart/backend/store"
	"github.com/quickkart/backend/validation"
	"github.com/stretchr/testify/require"
)

var defaultTestRequestHeaders = map[string]string{"Content-Type": "application/json"}

// stubSource serves a fixed product list, standing in for the scraper.
type stubSource struct {
	products []models.Product
}

func (s *stubSource) GetProducts(_ context.Context, _ string, _ int) []models.Product {
	return s.products
}

func newTestLogger() logger.Logger {

	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}

func setupTestRouter(t *testing.T, source search.ProductSource) *gin.Engine {
	t.Helper()
	assert := require.New(t)

	testLogger := newTestLogger()
	validator, err := validation.New(testLogger)
	assert.NoError(err, "could not create validator")

	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupProducts(router, testLogger, search.New(testLogger, source), validator)
	SetupAuth(router, testLogger, auth.New(testLogger, store.NewMemory[models.User](), "test-secret"), validator)
	SetupCart(router, testLogger, cart.New(testLogger, store.NewMemory[models.Cart]()), validator)
	SetupPayment(router, testLogger, payment.New(testLogger, store.NewMemory[models.Order](), store.NewMemory[models.Transaction]()), validator)

	return router
}

func makeTestHTTPRequest(router *gin.Engine, assert *require.Assertions, method string, endpoint string, headers map[string]string, requestBodyMap map[string]any, queryParams map[string]string) *httptest.ResponseRecorder {

	var err error
	w := httptest.NewRecorder()

	if len(queryParams) > 0 {
		endpoint = endpoint + "?"
		for key, value := range queryParams {
			if endpoint[len(endpoint)-1] != '?' {
				endpoint = endpoint + "&"
			}
			endpoint = endpoint + key + "=" + value
		}
	}
	var jsonBody []byte
	var req *http.Request
	if requestBodyMap != nil {
		jsonBody, err = json.Marshal(requestBodyMap)
		assert.NoError(err)
	}

	if len(jsonBody) > 0 {
		req, err = http.NewRequest(method, endpoint, bytes.NewBuffer(jsonBody))
	} else {
		req, err = http.NewRequest(method, endpoint, nil)
	}
	assert.NoError(err)

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	router.ServeHTTP(w, req)

	return w
}

func decodeResponse(assert *require.Assertions, w *httptest.ResponseRecorder) map[string]any {
	var responseMap map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &responseMap)
	assert.NoError(err, "response should be valid JSON: %s", w.Body.String())

	return responseMap
}
