package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeGuestCartRequest(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cart/merge", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := New(server.URL, "tkn")
	err := c.MergeGuestCart(context.Background(), "u1", []CartLine{{ProductID: "p1", Quantity: 2}})
	require.NoError(t, err)

	assert.Equal(t, "u1", got["userid"])
	cart := got["guestCart"].([]interface{})
	require.Len(t, cart, 1)
	line := cart[0].(map[string]interface{})
	assert.Equal(t, "p1", line["productId"])
	assert.Equal(t, float64(2), line["quantity"])
}

func TestMergeGuestCartServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Internal Server Error"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL, "tkn")
	err := c.MergeGuestCart(context.Background(), "u1", nil)
	assert.Error(t, err)
}

func TestFetchCartParsesPopulatedLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cart/fetch/u1", r.URL.Path)
		w.Write([]byte(`{"cartItems":[{"id":"p1","title":"Mug","price":9.5,"quantity":2}]}`))
	}))
	defer server.Close()

	c := New(server.URL, "tkn")
	lines, err := c.FetchCart(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, []CartLine{{ProductID: "p1", Quantity: 2}}, lines)
}

func TestFetchWishlistParsesProductIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wishlist/fetch/u1", r.URL.Path)
		w.Write([]byte(`{"wishlistItems":[{"id":"p1"},{"id":"p2"}]}`))
	}))
	defer server.Close()

	c := New(server.URL, "tkn")
	ids, err := c.FetchWishlist(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, []string{"p1", "p2"}, ids)
}

func TestMergeGuestWishlistSendsBareIDs(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := New(server.URL, "tkn")
	err := c.MergeGuestWishlist(context.Background(), "u1", []string{"p1", "p2"})
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"p1", "p2"}, got["guestWishlist"])
}
