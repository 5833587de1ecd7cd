package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/models"
)

type fakeCartRepo struct {
	carts      map[primitive.ObjectID][]models.CartItem
	failLoad   bool
	failUpsert bool
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[primitive.ObjectID][]models.CartItem{}}
}

func (r *fakeCartRepo) LoadByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	if r.failLoad {
		return nil, errors.New("load failed")
	}
	items, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	return &models.Cart{UserID: userID, Items: items}, nil
}

func (r *fakeCartRepo) UpsertByUser(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	if r.failUpsert {
		return errors.New("upsert failed")
	}
	r.carts[userID] = items
	return nil
}

type fakeWishlistRepo struct {
	wishlists  map[primitive.ObjectID][]models.WishlistItem
	failUpsert bool
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: map[primitive.ObjectID][]models.WishlistItem{}}
}

func (r *fakeWishlistRepo) LoadByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	items, ok := r.wishlists[userID]
	if !ok {
		return nil, nil
	}
	return &models.Wishlist{UserID: userID, Items: items}, nil
}

func (r *fakeWishlistRepo) UpsertByUser(ctx context.Context, userID primitive.ObjectID, items []models.WishlistItem) error {
	if r.failUpsert {
		return errors.New("upsert failed")
	}
	r.wishlists[userID] = items
	return nil
}

func mergeRouter(carts *fakeCartRepo, wishlists *fakeWishlistRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mc := NewMergeController(carts, wishlists)
	r.POST("/api/cart/merge", mc.MergeGuestCart)
	r.POST("/api/wishlist/merge", mc.MergeGuestWishlist)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMergeGuestCartCreatesAccountCart(t *testing.T) {
	carts := newFakeCartRepo()
	r := mergeRouter(carts, newFakeWishlistRepo())

	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()

	w := postJSON(t, r, "/api/cart/merge", gin.H{
		"userid": userID.Hex(),
		"guestCart": []gin.H{
			{"productId": p1.Hex(), "quantity": 2},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, []models.CartItem{{ProductID: p1, Quantity: 2}}, carts.carts[userID])
}

func TestMergeGuestCartAddsToExistingQuantities(t *testing.T) {
	carts := newFakeCartRepo()
	r := mergeRouter(carts, newFakeWishlistRepo())

	userID := primitive.NewObjectID()
	p1, p2 := primitive.NewObjectID(), primitive.NewObjectID()
	carts.carts[userID] = []models.CartItem{{ProductID: p1, Quantity: 1}}

	w := postJSON(t, r, "/api/cart/merge", gin.H{
		"userid": userID.Hex(),
		"guestCart": []gin.H{
			{"productId": p1.Hex(), "quantity": 3},
			{"productId": p2.Hex(), "quantity": 1},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.CartItem{
		{ProductID: p1, Quantity: 4},
		{ProductID: p2, Quantity: 1},
	}, carts.carts[userID])
}

func TestMergeGuestCartSkipsMalformedEntries(t *testing.T) {
	carts := newFakeCartRepo()
	r := mergeRouter(carts, newFakeWishlistRepo())

	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()

	w := postJSON(t, r, "/api/cart/merge", gin.H{
		"userid": userID.Hex(),
		"guestCart": []gin.H{
			{"productId": "not-an-id", "quantity": 2},
			{"productId": p1.Hex(), "quantity": 0},
			{"productId": p1.Hex(), "quantity": 2},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.CartItem{{ProductID: p1, Quantity: 2}}, carts.carts[userID])
}

func TestMergeGuestCartEmptySnapshotKeepsAccountCart(t *testing.T) {
	carts := newFakeCartRepo()
	r := mergeRouter(carts, newFakeWishlistRepo())

	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	carts.carts[userID] = []models.CartItem{{ProductID: p1, Quantity: 5}}

	w := postJSON(t, r, "/api/cart/merge", gin.H{
		"userid":    userID.Hex(),
		"guestCart": []gin.H{},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.CartItem{{ProductID: p1, Quantity: 5}}, carts.carts[userID])
}

func TestMergeGuestCartRejectsInvalidUserID(t *testing.T) {
	r := mergeRouter(newFakeCartRepo(), newFakeWishlistRepo())

	w := postJSON(t, r, "/api/cart/merge", gin.H{
		"userid":    "nope",
		"guestCart": []gin.H{},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMergeGuestCartStorageFailureLeavesAccountUntouched(t *testing.T) {
	carts := newFakeCartRepo()
	r := mergeRouter(carts, newFakeWishlistRepo())

	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	before := []models.CartItem{{ProductID: p1, Quantity: 1}}
	carts.carts[userID] = before
	carts.failUpsert = true

	w := postJSON(t, r, "/api/cart/merge", gin.H{
		"userid": userID.Hex(),
		"guestCart": []gin.H{
			{"productId": p1.Hex(), "quantity": 3},
		},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal Server Error", resp["message"])

	// Re-read: the pre-merge value must still be there.
	carts.failUpsert = false
	cart, err := carts.LoadByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, before, cart.Items)
}

func TestMergeGuestCartLoadFailure(t *testing.T) {
	carts := newFakeCartRepo()
	carts.failLoad = true
	r := mergeRouter(carts, newFakeWishlistRepo())

	w := postJSON(t, r, "/api/cart/merge", gin.H{
		"userid":    primitive.NewObjectID().Hex(),
		"guestCart": []gin.H{},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMergeGuestWishlistUnion(t *testing.T) {
	wishlists := newFakeWishlistRepo()
	r := mergeRouter(newFakeCartRepo(), wishlists)

	userID := primitive.NewObjectID()
	p1, p2 := primitive.NewObjectID(), primitive.NewObjectID()
	wishlists.wishlists[userID] = []models.WishlistItem{{ProductID: p1}}

	w := postJSON(t, r, "/api/wishlist/merge", gin.H{
		"userid":        userID.Hex(),
		"guestWishlist": []string{p1.Hex(), p2.Hex()},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, []models.WishlistItem{{ProductID: p1}, {ProductID: p2}}, wishlists.wishlists[userID])
}

func TestMergeGuestWishlistIsIdempotent(t *testing.T) {
	wishlists := newFakeWishlistRepo()
	r := mergeRouter(newFakeCartRepo(), wishlists)

	userID := primitive.NewObjectID()
	p1, p2 := primitive.NewObjectID(), primitive.NewObjectID()

	body := gin.H{
		"userid":        userID.Hex(),
		"guestWishlist": []string{p1.Hex(), p2.Hex()},
	}

	for i := 0; i < 2; i++ {
		w := postJSON(t, r, "/api/wishlist/merge", body)
		require.Equal(t, http.StatusOK, w.Code, fmt.Sprintf("attempt %d", i+1))
	}

	assert.Equal(t, []models.WishlistItem{{ProductID: p1}, {ProductID: p2}}, wishlists.wishlists[userID])
}

func TestMergeGuestWishlistSkipsMalformedIDs(t *testing.T) {
	wishlists := newFakeWishlistRepo()
	r := mergeRouter(newFakeCartRepo(), wishlists)

	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()

	w := postJSON(t, r, "/api/wishlist/merge", gin.H{
		"userid":        userID.Hex(),
		"guestWishlist": []string{"garbage", p1.Hex()},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.WishlistItem{{ProductID: p1}}, wishlists.wishlists[userID])
}

func TestMergeGuestWishlistStorageFailure(t *testing.T) {
	wishlists := newFakeWishlistRepo()
	wishlists.failUpsert = true
	r := mergeRouter(newFakeCartRepo(), wishlists)

	w := postJSON(t, r, "/api/wishlist/merge", gin.H{
		"userid":        primitive.NewObjectID().Hex(),
		"guestWishlist": []string{primitive.NewObjectID().Hex()},
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
