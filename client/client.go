// Package client is a Go consumer of the storefront API: a thin HTTP
// client plus the login-time hydration flow that folds a guest's local
// cart and wishlist into the account.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CartLine mirrors one guest cart entry on the wire.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// API is the slice of the storefront surface the hydrator needs.
type API interface {
	MergeGuestCart(ctx context.Context, userID string, guestCart []CartLine) error
	MergeGuestWishlist(ctx context.Context, userID string, guestWishlist []string) error
	FetchCart(ctx context.Context, userID string) ([]CartLine, error)
	FetchWishlist(ctx context.Context, userID string) ([]string, error)
}

// Client talks to the storefront REST API with a bearer token.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) MergeGuestCart(ctx context.Context, userID string, guestCart []CartLine) error {
	if guestCart == nil {
		guestCart = []CartLine{}
	}
	return c.postJSON(ctx, "/api/cart/merge", map[string]interface{}{
		"userid":    userID,
		"guestCart": guestCart,
	})
}

func (c *Client) MergeGuestWishlist(ctx context.Context, userID string, guestWishlist []string) error {
	if guestWishlist == nil {
		guestWishlist = []string{}
	}
	return c.postJSON(ctx, "/api/wishlist/merge", map[string]interface{}{
		"userid":        userID,
		"guestWishlist": guestWishlist,
	})
}

func (c *Client) FetchCart(ctx context.Context, userID string) ([]CartLine, error) {
	var payload struct {
		CartItems []struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
		} `json:"cartItems"`
	}
	if err := c.getJSON(ctx, "/api/cart/fetch/"+userID, &payload); err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(payload.CartItems))
	for _, item := range payload.CartItems {
		lines = append(lines, CartLine{ProductID: item.ID, Quantity: item.Quantity})
	}
	return lines, nil
}

func (c *Client) FetchWishlist(ctx context.Context, userID string) ([]string, error) {
	var payload struct {
		WishlistItems []struct {
			ID string `json:"id"`
		} `json:"wishlistItems"`
	}
	if err := c.getJSON(ctx, "/api/wishlist/fetch/"+userID, &payload); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(payload.WishlistItems))
	for _, item := range payload.WishlistItems {
		ids = append(ids, item.ID)
	}
	return ids, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
