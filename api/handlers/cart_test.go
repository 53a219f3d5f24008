package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func addItemBody(productID, price string, quantity int) map[string]any {
	return map[string]any{
		"product_id":   productID,
		"product_name": "Test Phone",
		"price":        price,
		"quantity":     quantity,
		"image_url":    "https://img.example/p.jpg",
	}
}

func TestHandleGetCartCreatesEmptyCart(t *testing.T) {
	assert := require.New(t)
	router := setupTestRouter(t, &stubSource{})

	w := makeTestHTTPRequest(router, assert, http.MethodGet, "/api/cart/user-1", nil, nil, nil)
	assert.Equal(http.StatusOK, w.Code)
	response := decodeResponse(assert, w)

	assert.Equal("user-1", response["user_id"])
	assert.Empty(response["items"])
	assert.Equal(float64(0), response["total_price"])
}

func TestHandleAddToCart(t *testing.T) {
	assert := require.New(t)
	router := setupTestRouter(t, &stubSource{})

	w := makeTestHTTPRequest(router, assert, http.MethodPost, "/api/cart/user-1/add", defaultTestRequestHeaders, addItemBody("p1", "₹9,999", 2), nil)
	assert.Equal(http.StatusOK, w.Code, "response gotten was %s", w.Body.String())
	response := decodeResponse(assert, w)

	assert.Len(response["items"].([]any), 1)
	assert.Equal(float64(19998), response["total_price"])

	// Adding the same product merges quantities.
	w = makeTestHTTPRequest(router, assert, http.MethodPost, "/api/cart/user-1/add", defaultTestRequestHeaders, addItemBody("p1", "₹9,999", 1), nil)
	assert.Equal(http.StatusOK, w.Code)
	response = decodeResponse(assert, w)
	items := response["items"].([]any)
	assert.Len(items, 1)
	assert.Equal(float64(3), items[0].(map[string]any)["quantity"])
}

func TestHandleAddToCartValidation(t *testing.T) {
	router := setupTestRouter(t, &stubSource{})

	testCases := []struct {
		name string
		body map[string]any
	}{
		{name: "NoBody", body: nil},
		{name: "MissingProductID", body: map[string]any{"product_name": "X", "price": "₹1", "quantity": 1}},
		{name: "ZeroQuantity", body: addItemBody("p1", "₹1", 0)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			w := makeTestHTTPRequest(router, assert, http.MethodPost, "/api/cart/user-1/add", defaultTestRequestHeaders, testCase.body, nil)
			assert.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleRemoveFromCart(t *testing.T) {
	assert := require.New(t)
	router := setupTestRouter(t, &stubSource{})

	w := makeTestHTTPRequest(router, assert, http.MethodPost, "/api/cart/user-1/add", defaultTestRequestHeaders, addItemBody("p1", "₹500", 1), nil)
	assert.Equal(http.StatusOK, w.Code)

	w = makeTestHTTPRequest(router, assert, http.MethodDelete, "/api/cart/user-1/remove/p1", nil, nil, nil)
	assert.Equal(http.StatusOK, w.Code)
	response := decodeResponse(assert, w)
	assert.Empty(response["items"])
	assert.Equal(float64(0), response["total_price"])
}

func TestHandleUpdateQuantity(t *testing.T) {
	assert := require.New(t)
	router := setupTestRouter(t, &stubSource{})

	w := makeTestHTTPRequest(router, assert, http.MethodPost, "/api/cart/user-1/add", defaultTestRequestHeaders, addItemBody("p1", "₹500", 1), nil)
	assert.Equal(http.StatusOK, w.Code)

	w = makeTestHTTPRequest(router, assert, http.MethodPut, "/api/cart/user-1/update/p1", defaultTestRequestHeaders, map[string]any{"quantity": 4}, nil)
	assert.Equal(http.StatusOK, w.Code)
	response := decodeResponse(assert, w)
	assert.Equal(float64(2000), response["total_price"])

	// Zero quantity removes the item.
	w = makeTestHTTPRequest(router, assert, http.MethodPut, "/api/cart/user-1/update/p1", defaultTestRequestHeaders, map[string]any{"quantity": 0}, nil)
	assert.Equal(http.StatusOK, w.Code)
	response = decodeResponse(assert, w)
	assert.Empty(response["items"])
}

func TestHandleClearCart(t *testing.T) {
	assert := require.New(t)
	router := setupTestRouter(t, &stubSource{})

	w := makeTestHTTPRequest(router, assert, http.MethodPost, "/api/cart/user-1/add", defaultTestRequestHeaders, addItemBody("p1", "₹500", 2), nil)
	assert.Equal(http.StatusOK, w.Code)

	w = makeTestHTTPRequest(router, assert, http.MethodDelete, "/api/cart/user-1/clear", nil, nil, nil)
	assert.Equal(http.StatusOK, w.Code)
	response := decodeResponse(assert, w)
	assert.Empty(response["items"])
	assert.Equal(float64(0), response["total_price"])
}
