package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutRequiresSignIn(t *testing.T) {
	var hits int32
	c, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	c.tokens.Clear()

	_, err := c.Checkout(context.Background(), Product{ID: 42, SellerID: 7})
	var sie *SignInRequiredError
	require.ErrorAs(t, err, &sie)
	assert.Equal(t, 42, sie.ProductID, "the product must survive the sign-in round trip")
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "no network call before sign-in")
}

func TestCheckoutRejectsOwnListing(t *testing.T) {
	var hits int32
	c, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	c.setUser(&User{ID: 7})

	_, err := c.Checkout(context.Background(), Product{ID: 42, SellerID: 7})
	assert.ErrorIs(t, err, ErrOwnListing)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "self-purchase is rejected before any network call")
}

func TestCheckoutNavigatesToGateway(t *testing.T) {
	var gotBody map[string]interface{}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payments/initialize", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"orderId":3,"reference":"ref-1","authorization_url":"https://pay.example/abc"}`))
	}))
	c.setUser(&User{ID: 1})

	res, err := c.Checkout(context.Background(), Product{ID: 42, SellerID: 7, Price: 5000, DeliveryFee: 500})
	require.NoError(t, err)

	// the full browser context goes to the gateway; a background fetch
	// would not complete the handoff
	assert.Equal(t, "https://pay.example/abc", res.Navigate)
	assert.Equal(t, "ref-1", res.Reference)
	assert.Equal(t, float64(42), gotBody["productId"])
	assert.Equal(t, "http://shop.example/payment/callback", gotBody["callbackUrl"])
}

func TestCheckoutDirectSettlement(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"orderId":8,"reference":"ref-2"}`))
	}))
	c.setUser(&User{ID: 1})

	res, err := c.Checkout(context.Background(), Product{ID: 42, SellerID: 7})
	require.NoError(t, err)
	assert.Empty(t, res.Navigate)
	assert.Equal(t, 8, res.OrderID)
	assert.False(t, res.ShowOrders)
}

func TestCheckoutAmbiguousSuccessFallsBackToOrders(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	c.setUser(&User{ID: 1})

	res, err := c.Checkout(context.Background(), Product{ID: 42, SellerID: 7})
	require.NoError(t, err)
	assert.True(t, res.ShowOrders)
}

func TestCheckoutSurfacesBackendMessageVerbatim(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"this item is sold out"}`))
	}))
	c.setUser(&User{ID: 1})

	_, err := c.Checkout(context.Background(), Product{ID: 42, SellerID: 7})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "this item is sold out", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestUnauthorizedClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	tokens := NewMemoryTokenStore()
	tokens.SetToken("stale")
	c := New(srv.URL, "", tokens)
	c.setUser(&User{ID: 1})

	_, err := c.Checkout(context.Background(), Product{ID: 42, SellerID: 7})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, tokens.Token(), "a rejected token is cleared, forcing re-auth")
	assert.Nil(t, c.CurrentUser())
}
